// Package maven defines the build pipeline: an ordered list of steps that
// provisions a toolchain, runs a configurable Maven build, and reports the
// result through the check-run boundary.
package maven

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/vifraa/gopom"

	"github.com/mavenhook/mavenhook/internal/checkrun"
	"github.com/mavenhook/mavenhook/internal/config"
	"github.com/mavenhook/mavenhook/internal/mavenlog"
	"github.com/mavenhook/mavenhook/internal/pipeline"
	"github.com/mavenhook/mavenhook/internal/project"
	"github.com/mavenhook/mavenhook/internal/shellargs"
)

const (
	checkName  = "mavenhook"
	checkTitle = "Maven build"

	// maxEmbeddedOutput caps how much captured process output is embedded
	// in a report fragment; the platform rejects oversized bodies.
	maxEmbeddedOutput = 16 * 1024
)

// Builder wires the build pipeline's external collaborators together and
// produces the ordered step list.
type Builder struct {
	Checks     checkrun.Client
	Exec       Execer
	Options    *config.Options
	ProjectDir string

	// Environ supplies the ambient environment; nil means os.Environ.
	Environ func() []string
}

// Steps returns the pipeline steps in execution order.
func (b *Builder) Steps() []pipeline.Step {
	return []pipeline.Step{
		{Name: "load", Run: b.load},
		{Name: "validate", Run: b.validate},
		{Name: "create-check", When: hasEvent, Run: b.createCheck},
		{Name: "command", When: b.hasCommand, Run: b.runCommand},
		{Name: "settings", When: b.hasSettings, Run: b.writeSettings},
		{Name: "install-toolchain", Run: b.installToolchain},
		{Name: "build", Run: b.build},
	}
}

func hasEvent(p *pipeline.Params) bool { return p.Event != nil }

func (b *Builder) hasCommand(p *pipeline.Params) bool { return b.Options.Command != "" }

func (b *Builder) hasSettings(p *pipeline.Params) bool { return b.Options.Settings != "" }

func (b *Builder) environ() []string {
	if b.Environ != nil {
		return b.Environ()
	}
	return os.Environ()
}

// load resolves the project handle.
func (b *Builder) load(ctx context.Context, p *pipeline.Params) pipeline.Outcome {
	proj, err := project.Load(b.ProjectDir)
	if err != nil {
		return pipeline.Failf("loading project: %v", err)
	}
	p.Project = proj
	return pipeline.Pass()
}

// validate checks for a build descriptor. A project without one is not an
// error; the pipeline aborts quietly because there is nothing to build.
func (b *Builder) validate(ctx context.Context, p *pipeline.Params) pipeline.Outcome {
	if !p.Project.HasDescriptor() {
		return pipeline.AbortQuietly("not a Maven project")
	}

	pom, err := gopom.Parse(p.Project.DescriptorPath())
	if err != nil {
		return pipeline.Failf("parsing %s: %v", project.DescriptorFile, err)
	}

	p.AddReport(fmt.Sprintf("Maven project `%s`.", coordinates(pom)))
	return pipeline.Pass()
}

// createCheck opens the check run, or adopts the one the platform already
// resolved for this commit. It runs after validate so a repository that is
// not a Maven project never gets one.
func (b *Builder) createCheck(ctx context.Context, p *pipeline.Params) pipeline.Outcome {
	if p.Event.CheckRunID != 0 {
		p.Check = &checkrun.Handle{
			Owner: p.Event.Repository.Owner,
			Repo:  p.Event.Repository.Name,
			ID:    p.Event.CheckRunID,
		}
		b.publish(ctx, p, checkTitle)
		return pipeline.Pass()
	}

	h, err := b.Checks.Create(ctx, checkrun.CreateOptions{
		Owner: p.Event.Repository.Owner,
		Repo:  p.Event.Repository.Name,
		SHA:   p.Event.SHA,
		Name:  checkName,
		Title: checkTitle,
		Body:  p.ReportBody(),
	})
	if err != nil {
		return pipeline.Failf("creating check run: %v", err)
	}
	p.Check = h
	return pipeline.Pass()
}

// runCommand spawns the user's setup command through the shell.
func (b *Builder) runCommand(ctx context.Context, p *pipeline.Params) pipeline.Outcome {
	res, err := b.Exec.Run(ctx, Command{
		Dir:  p.Project.Root(),
		Env:  b.environ(),
		Name: "sh",
		Args: []string{"-c", b.Options.Command},
	})
	if err != nil {
		return b.fail(ctx, p, fmt.Sprintf("setup command: %v", err))
	}

	p.AddReport(commandFragment(b.Options.Command, res.Output))
	if res.ExitCode != 0 {
		return b.fail(ctx, p, fmt.Sprintf("setup command exited with status %d", res.ExitCode))
	}
	b.publish(ctx, p, checkTitle)
	return pipeline.Pass()
}

// writeSettings writes the user-supplied settings content into the project.
func (b *Builder) writeSettings(ctx context.Context, p *pipeline.Params) pipeline.Outcome {
	if err := p.Project.WriteSettings(b.Options.Settings); err != nil {
		return b.fail(ctx, p, err.Error())
	}
	p.AddReport(fmt.Sprintf("Wrote `%s`.", project.SettingsFile))
	b.publish(ctx, p, checkTitle)
	return pipeline.Pass()
}

// installToolchain runs the JDK installer for the requested version.
func (b *Builder) installToolchain(ctx context.Context, p *pipeline.Params) pipeline.Outcome {
	tokens := shellargs.Split(b.Options.Installer)
	if len(tokens) == 0 {
		return b.fail(ctx, p, "installer command is empty")
	}

	res, err := b.Exec.Run(ctx, Command{
		Dir:  p.Project.Root(),
		Env:  b.environ(),
		Name: tokens[0],
		Args: append(tokens[1:], b.Options.Version),
	})
	if err != nil {
		return b.fail(ctx, p, fmt.Sprintf("toolchain installer: %v", err))
	}
	if res.ExitCode != 0 {
		p.AddReport(commandFragment(b.Options.Installer+" "+b.Options.Version, res.Output))
		return b.fail(ctx, p, fmt.Sprintf("toolchain installer exited with status %d", res.ExitCode))
	}

	p.AddReport(fmt.Sprintf("Installed JDK %s.", b.Options.Version))
	b.publish(ctx, p, checkTitle)
	return pipeline.Pass()
}

// build invokes the build tool, extracts diagnostics from its output, and
// reports the terminal conclusion.
func (b *Builder) build(ctx context.Context, p *pipeline.Params) pipeline.Outcome {
	root := p.Project.Root()

	exe, args := splitExecutable(shellargs.Split(b.Options.Mvn))
	if exe == "" {
		if p.Project.HasWrapper() {
			exe = p.Project.WrapperPath()
		} else {
			exe = "mvn"
		}
	}
	args = buildArgs(args, root, b.Options.Settings != "")

	res, err := b.Exec.Run(ctx, Command{
		Dir:  root,
		Env:  toolchainEnv(b.environ(), b.Options.ToolchainDir, b.Options.Version),
		Name: exe,
		Args: args,
	})
	cmdline := exe + " " + strings.Join(args, " ")
	if err != nil {
		p.AddReport(commandFragment(cmdline, res.Output))
		return b.fail(ctx, p, fmt.Sprintf("spawning build tool: %v", err))
	}

	p.Diagnostics = mavenlog.Extract(res.Output)
	p.AddReport(commandFragment(cmdline, res.Output))

	// A zero exit code with diagnostics still fails the build: tool-level
	// success does not override detected findings.
	if res.ExitCode != 0 || len(p.Diagnostics) > 0 {
		reason := fmt.Sprintf("build exited with status %d", res.ExitCode)
		if n := len(p.Diagnostics); n > 0 {
			reason = fmt.Sprintf("%s, %d finding(s)", reason, n)
		}
		b.conclude(ctx, p, "Build failed", checkrun.ConclusionFailure, annotations(p.Diagnostics, root))
		return pipeline.Fail(reason)
	}

	b.conclude(ctx, p, "Build passed", checkrun.ConclusionSuccess, nil)
	return pipeline.PassReason("build passed")
}

// publish pushes the accumulated report body to the check run, if one exists.
func (b *Builder) publish(ctx context.Context, p *pipeline.Params, title string) {
	if p.Check == nil {
		return
	}
	err := b.Checks.Update(ctx, p.Check, checkrun.Update{Title: title, Body: p.ReportBody()})
	if err != nil {
		fmt.Printf("WARN: updating check run: %v\n", err)
	}
}

// fail records the reason in the report, concludes the check run as failed,
// and returns the terminal failure outcome.
func (b *Builder) fail(ctx context.Context, p *pipeline.Params, reason string) pipeline.Outcome {
	p.AddReport("Failed: " + reason)
	b.conclude(ctx, p, "Build failed", checkrun.ConclusionFailure, nil)
	return pipeline.Fail(reason)
}

func (b *Builder) conclude(ctx context.Context, p *pipeline.Params, title string, conclusion checkrun.Conclusion, anns []checkrun.Annotation) {
	if p.Check == nil {
		return
	}
	err := b.Checks.Update(ctx, p.Check, checkrun.Update{
		Title:       title,
		Body:        p.ReportBody(),
		Conclusion:  conclusion,
		Annotations: anns,
	})
	if err != nil {
		fmt.Printf("WARN: concluding check run: %v\n", err)
	}
}

// annotations converts diagnostics into check-run annotations, with paths
// relativized to the project root for presentation.
func annotations(diags []mavenlog.Diagnostic, root string) []checkrun.Annotation {
	anns := make([]checkrun.Annotation, 0, len(diags))
	for _, d := range diags {
		line := d.Line
		if line == 0 {
			line = 1
		}
		anns = append(anns, checkrun.Annotation{
			Level:       string(d.Severity),
			Path:        mavenlog.RelativizePath(d.Path, root),
			StartLine:   line,
			EndLine:     line,
			StartColumn: d.Column,
			EndColumn:   d.Column,
			Title:       d.Title,
			Message:     d.Message,
		})
	}
	return anns
}

// commandFragment formats a command line and its captured output as one
// report paragraph.
func commandFragment(cmdline, output string) string {
	output = strings.TrimRight(output, "\n")
	if output == "" {
		return fmt.Sprintf("`$ %s`", cmdline)
	}
	if len(output) > maxEmbeddedOutput {
		output = output[:maxEmbeddedOutput] + "\n... (truncated)"
	}
	return fmt.Sprintf("`$ %s`\n\n```\n%s\n```", cmdline, output)
}

// coordinates renders a parsed descriptor as groupId:artifactId:version,
// falling back to the parent's values where the module inherits them.
func coordinates(pom *gopom.Project) string {
	group := deref(pom.GroupID)
	version := deref(pom.Version)
	if pom.Parent != nil {
		if group == "" {
			group = deref(pom.Parent.GroupID)
		}
		if version == "" {
			version = deref(pom.Parent.Version)
		}
	}

	id := deref(pom.ArtifactID)
	if group != "" {
		id = group + ":" + id
	}
	if version != "" {
		id = id + ":" + version
	}
	return id
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
