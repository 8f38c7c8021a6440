package pipeline

import (
	"context"
	"fmt"
)

// Runner executes an ordered list of steps against shared parameters.
//
// Execution is fail-fast: the first failing outcome is terminal and no later
// step runs. An aborting outcome is equally terminal but non-failing. The
// runner itself has no side effects beyond sequencing and state records;
// process spawning and collaborator calls belong to the steps.
type Runner struct {
	steps []Step
	store *StateStore
}

// NewRunner creates a runner over the given steps. The store may be nil when
// no run state should be persisted.
func NewRunner(steps []Step, store *StateStore) *Runner {
	return &Runner{steps: steps, store: store}
}

// Run drives every step in order and returns the pipeline's terminal outcome.
func (r *Runner) Run(ctx context.Context, params *Params) Outcome {
	var names []string
	last := Pass()

	for _, step := range r.steps {
		names = append(names, step.Name)

		if step.When != nil && !step.When(params) {
			fmt.Printf("SKIP: %s\n", step.Name)
			r.record(StepResult{Step: step.Name, Status: StatusSkipped})
			continue
		}

		fmt.Printf("==> %s\n", step.Name)
		out := step.Run(ctx, params)
		r.record(StepResult{Step: step.Name, Status: out.Status, Reason: out.Reason})

		if out.Failed() {
			fmt.Printf("FAIL: %s (%s)\n", step.Name, out.Reason)
			r.finish(names, step.Name, out)
			return out
		}
		if out.Abort {
			if !out.Hidden {
				fmt.Printf("DONE: %s (%s)\n", step.Name, out.Reason)
			}
			r.finish(names, "", out)
			return out
		}

		fmt.Printf("PASS: %s\n", step.Name)
		last = out
	}

	r.finish(names, "", last)
	return last
}

func (r *Runner) record(res StepResult) {
	if r.store == nil {
		return
	}
	if err := r.store.WriteStepResult(res); err != nil {
		fmt.Printf("WARN: writing step state for %s: %v\n", res.Step, err)
	}
}

func (r *Runner) finish(names []string, failed string, out Outcome) {
	if r.store == nil {
		return
	}
	last := LastRun{
		Status:  string(out.Status),
		Steps:   names,
		Failed:  failed,
		Aborted: out.Abort,
	}
	if err := r.store.WriteLastRun(last); err != nil {
		fmt.Printf("WARN: writing last run state: %v\n", err)
	}
}
