package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedStep builds a Step that notes whether it ran and returns a fixed
// outcome.
func recordedStep(name string, out Outcome, ran *[]string) Step {
	return Step{
		Name: name,
		Run: func(ctx context.Context, p *Params) Outcome {
			*ran = append(*ran, name)
			return out
		},
	}
}

func TestRunner_AllPass(t *testing.T) {
	dir := t.TempDir()
	store := NewStateStore(dir)

	var ran []string
	r := NewRunner([]Step{
		recordedStep("one", Pass(), &ran),
		recordedStep("two", PassReason("done"), &ran),
	}, store)

	out := r.Run(context.Background(), &Params{})
	assert.False(t, out.Failed())
	assert.Equal(t, "done", out.Reason)
	assert.Equal(t, []string{"one", "two"}, ran)

	last, err := store.ReadLastRun()
	require.NoError(t, err)
	assert.Equal(t, "pass", last.Status)
	assert.Equal(t, []string{"one", "two"}, last.Steps)
	assert.Empty(t, last.Failed)
}

func TestRunner_FailureStopsPipeline(t *testing.T) {
	dir := t.TempDir()
	store := NewStateStore(dir)

	var ran []string
	r := NewRunner([]Step{
		recordedStep("one", Pass(), &ran),
		recordedStep("two", Fail("boom"), &ran),
		recordedStep("three", Pass(), &ran),
	}, store)

	out := r.Run(context.Background(), &Params{})
	assert.True(t, out.Failed())
	assert.Equal(t, "boom", out.Reason)
	// Steps after the failure never execute.
	assert.Equal(t, []string{"one", "two"}, ran)

	last, err := store.ReadLastRun()
	require.NoError(t, err)
	assert.Equal(t, "fail", last.Status)
	assert.Equal(t, "two", last.Failed)

	res, err := store.ReadStep("two")
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, "boom", res.Reason)
}

func TestRunner_AbortStopsWithoutFailing(t *testing.T) {
	dir := t.TempDir()
	store := NewStateStore(dir)

	var ran []string
	r := NewRunner([]Step{
		recordedStep("one", AbortQuietly("nothing to do"), &ran),
		recordedStep("two", Fail("should never run"), &ran),
	}, store)

	out := r.Run(context.Background(), &Params{})
	assert.False(t, out.Failed())
	assert.True(t, out.Abort)
	assert.True(t, out.Hidden)
	assert.Equal(t, []string{"one"}, ran)

	last, err := store.ReadLastRun()
	require.NoError(t, err)
	assert.Equal(t, "pass", last.Status)
	assert.True(t, last.Aborted)
}

func TestRunner_WhenPredicateSkips(t *testing.T) {
	var ran []string
	skipped := recordedStep("conditional", Pass(), &ran)
	skipped.When = func(p *Params) bool { return false }

	store := NewStateStore(t.TempDir())
	r := NewRunner([]Step{
		skipped,
		recordedStep("after", Pass(), &ran),
	}, store)

	out := r.Run(context.Background(), &Params{})
	assert.False(t, out.Failed())
	assert.Equal(t, []string{"after"}, ran)

	res, err := store.ReadStep("conditional")
	require.NoError(t, err)
	assert.Equal(t, StatusSkipped, res.Status)
}

func TestRunner_SharedParamsMutation(t *testing.T) {
	r := NewRunner([]Step{
		{
			Name: "writer",
			Run: func(ctx context.Context, p *Params) Outcome {
				p.AddReport("first paragraph")
				return Pass()
			},
		},
		{
			Name: "reader",
			Run: func(ctx context.Context, p *Params) Outcome {
				if p.ReportBody() != "first paragraph" {
					return Fail("mutation not visible")
				}
				p.AddReport("second paragraph")
				return Pass()
			},
		},
	}, nil)

	params := &Params{}
	out := r.Run(context.Background(), params)
	require.False(t, out.Failed())
	assert.Equal(t, "first paragraph\n\nsecond paragraph", params.ReportBody())
}

func TestRunner_NilStore(t *testing.T) {
	var ran []string
	r := NewRunner([]Step{recordedStep("one", Pass(), &ran)}, nil)
	out := r.Run(context.Background(), &Params{})
	assert.False(t, out.Failed())
	assert.Equal(t, []string{"one"}, ran)
}
