package pipeline

import "context"

// Step is one named unit of pipeline work. Steps are stateless definitions;
// all mutation happens on the shared Params.
type Step struct {
	// Name identifies the step in state records and CLI output.
	Name string

	// When, if set, decides whether the step runs at all. A skipped step
	// has no side effects. Nil means always run.
	When func(p *Params) bool

	// Run executes the step against the shared parameters.
	Run func(ctx context.Context, p *Params) Outcome
}
