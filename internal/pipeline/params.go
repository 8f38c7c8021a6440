package pipeline

import (
	"strings"

	"github.com/mavenhook/mavenhook/internal/checkrun"
	"github.com/mavenhook/mavenhook/internal/event"
	"github.com/mavenhook/mavenhook/internal/mavenlog"
	"github.com/mavenhook/mavenhook/internal/project"
)

// reportSeparator joins report fragments into the check-run body.
const reportSeparator = "\n\n"

// Params is the mutable record shared by reference across all steps of one
// pipeline invocation. It is created fresh per invocation, owned exclusively
// by the running pipeline, and discarded at the end.
type Params struct {
	Event       *event.Event
	Project     *project.Project
	Check       *checkrun.Handle
	Diagnostics []mavenlog.Diagnostic

	report []string
}

// AddReport appends one paragraph to the accumulated report body.
func (p *Params) AddReport(fragment string) {
	if fragment == "" {
		return
	}
	p.report = append(p.report, fragment)
}

// ReportBody returns the report fragments joined in order.
func (p *Params) ReportBody() string {
	return strings.Join(p.report, reportSeparator)
}
