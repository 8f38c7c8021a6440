// Package mavenlog parses raw build-tool output into positioned diagnostics.
package mavenlog

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Severity classifies a diagnostic for check-run annotation purposes.
type Severity string

const (
	SeverityNotice  Severity = "notice"
	SeverityWarning Severity = "warning"
	SeverityFailure Severity = "failure"
)

// Diagnostic is one parsed build-log finding. Line and Column are 1-based;
// zero means the pattern did not capture them.
type Diagnostic struct {
	Severity Severity
	Path     string
	Line     int
	Column   int
	Title    string
	Message  string
}

// Extract scans captured build output line by line and returns every
// diagnostic recognized by the registered matchers, in order of appearance.
// Every matcher is tried on every line, so a log mixing output formats still
// yields all of its findings. Lines matching no pattern are normal build
// chatter and produce nothing.
func Extract(log string) []Diagnostic {
	var diags []Diagnostic

	// Walk the lines by hand: build logs routinely contain single lines far
	// beyond any fixed scanner buffer, and a line of any length must only
	// ever fail to match, never stop the scan.
	for len(log) > 0 {
		line := log
		if i := strings.IndexByte(log, '\n'); i >= 0 {
			line = log[:i]
			log = log[i+1:]
		} else {
			log = ""
		}
		line = strings.TrimSuffix(line, "\r")

		for _, m := range matchers {
			if d, ok := m.match(line); ok {
				diags = append(diags, d)
			}
		}
	}
	return diags
}

// mapSeverity maps a tool-specific level token to a Severity. Unrecognized
// tokens become warnings rather than being dropped, so a new or unexpected
// level never hides a finding.
func mapSeverity(token string) Severity {
	switch strings.ToUpper(token) {
	case "ERROR", "ERR", "FATAL", "SEVERE":
		return SeverityFailure
	case "WARNING", "WARN":
		return SeverityWarning
	case "INFO", "NOTE", "NOTICE":
		return SeverityNotice
	default:
		return SeverityWarning
	}
}

// RelativizePath strips a known workspace-root prefix from a parsed path.
// This is a presentation concern at the check-run boundary; Extract itself
// reports paths as they appear in the log.
func RelativizePath(path, root string) string {
	if root == "" || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
