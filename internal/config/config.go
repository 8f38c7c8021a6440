package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied when an option is not present in the options file.
const (
	DefaultMvn          = "clean install"
	DefaultVersion      = "17"
	DefaultInstaller    = "install-jdk.sh"
	DefaultToolchainDir = "/opt/java"
)

// Options are the recognized handler options.
//
// Mvn is the raw Maven argument string, Version the requested JDK version,
// Settings the verbatim content of a settings file to write into the project,
// and Command an arbitrary shell command to run before toolchain setup.
type Options struct {
	Mvn          string `yaml:"mvn"`
	Version      string `yaml:"version"`
	Settings     string `yaml:"settings"`
	Command      string `yaml:"command"`
	Installer    string `yaml:"installer"`
	ToolchainDir string `yaml:"toolchain_dir"`
}

// Default returns the options used when no file is given.
func Default() *Options {
	return &Options{
		Mvn:          DefaultMvn,
		Version:      DefaultVersion,
		Installer:    DefaultInstaller,
		ToolchainDir: DefaultToolchainDir,
	}
}

// Load reads an options file. A missing file is clean state and yields the
// defaults; a present but malformed file is an error.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading options file %s: %w", path, err)
	}

	opts := Default()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("parsing options file %s: %w", path, err)
	}
	if opts.Mvn == "" {
		opts.Mvn = DefaultMvn
	}
	if opts.Version == "" {
		opts.Version = DefaultVersion
	}
	if opts.Installer == "" {
		opts.Installer = DefaultInstaller
	}
	if opts.ToolchainDir == "" {
		opts.ToolchainDir = DefaultToolchainDir
	}
	return opts, nil
}
