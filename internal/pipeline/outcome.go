package pipeline

import "fmt"

// Status represents the terminal state of a step execution.
type Status string

const (
	StatusPassed  Status = "pass"
	StatusFailed  Status = "fail"
	StatusSkipped Status = "skip"
)

// Outcome is the result of one step, and of the pipeline as a whole.
//
// A failed outcome is terminal: no later step runs. An aborting outcome is
// also terminal but non-failing; it means there was legitimately nothing to
// do. Hidden marks outcomes that should not surface in normal reporting.
type Outcome struct {
	Status Status
	Reason string
	Hidden bool
	Abort  bool
}

// Pass returns a plain successful outcome.
func Pass() Outcome {
	return Outcome{Status: StatusPassed}
}

// PassReason returns a successful outcome with a human-readable reason.
func PassReason(reason string) Outcome {
	return Outcome{Status: StatusPassed, Reason: reason}
}

// Fail returns a failing outcome with a reason. It stops the pipeline.
func Fail(reason string) Outcome {
	return Outcome{Status: StatusFailed, Reason: reason}
}

// Failf is a formatted variant of Fail.
func Failf(format string, args ...any) Outcome {
	return Fail(fmt.Sprintf(format, args...))
}

// AbortQuietly returns a hidden, aborting success. It stops the pipeline
// without marking it failed.
func AbortQuietly(reason string) Outcome {
	return Outcome{Status: StatusPassed, Reason: reason, Hidden: true, Abort: true}
}

// Failed reports whether the outcome is a failure.
func (o Outcome) Failed() bool {
	return o.Status == StatusFailed
}
