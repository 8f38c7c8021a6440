// Package project resolves the Maven project a build runs against.
package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// Well-known files at the project root.
const (
	DescriptorFile = "pom.xml"
	WrapperFile    = "mvnw"
	SettingsFile   = "ci-settings.xml"
)

// Project is a handle on a checked-out project directory.
type Project struct {
	root string
}

// Load resolves dir to an absolute project root. The directory must exist;
// whether it contains a Maven descriptor is the validate step's concern.
func Load(dir string) (*Project, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving project dir %s: %w", dir, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("loading project: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("loading project: %s is not a directory", root)
	}
	return &Project{root: root}, nil
}

// Root returns the absolute project root.
func (p *Project) Root() string {
	return p.root
}

// DescriptorPath returns the path of the build descriptor (pom.xml).
func (p *Project) DescriptorPath() string {
	return filepath.Join(p.root, DescriptorFile)
}

// HasDescriptor reports whether the project carries a build descriptor.
func (p *Project) HasDescriptor() bool {
	return fileExists(p.DescriptorPath())
}

// WrapperPath returns the path of the Maven wrapper script.
func (p *Project) WrapperPath() string {
	return filepath.Join(p.root, WrapperFile)
}

// HasWrapper reports whether the project ships its own Maven wrapper.
func (p *Project) HasWrapper() bool {
	return fileExists(p.WrapperPath())
}

// SettingsPath returns the fixed path settings content is written to.
func (p *Project) SettingsPath() string {
	return filepath.Join(p.root, SettingsFile)
}

// WriteSettings writes user-supplied settings content verbatim.
func (p *Project) WriteSettings(content string) error {
	if err := os.WriteFile(p.SettingsPath(), []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", SettingsFile, err)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
