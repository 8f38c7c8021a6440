// Package checkrun is the boundary to the code-hosting platform's check-run
// API. The pipeline core only ever talks to the Client interface; the
// GitHub REST implementation is thin glue.
package checkrun

import "context"

// Conclusion is the terminal state of a check run. Empty means still pending.
type Conclusion string

const (
	ConclusionNone    Conclusion = ""
	ConclusionSuccess Conclusion = "success"
	ConclusionFailure Conclusion = "failure"
)

// Annotation is one file/line annotation attached to a check run.
type Annotation struct {
	Level       string `json:"annotation_level"`
	Path        string `json:"path"`
	StartLine   int    `json:"start_line"`
	EndLine     int    `json:"end_line"`
	StartColumn int    `json:"start_column,omitempty"`
	EndColumn   int    `json:"end_column,omitempty"`
	Title       string `json:"title,omitempty"`
	Message     string `json:"message"`
}

// Handle identifies a created check run for later updates.
type Handle struct {
	Owner string
	Repo  string
	ID    int64
}

// CreateOptions names the commit and initial presentation of a check run.
type CreateOptions struct {
	Owner string
	Repo  string
	SHA   string
	Name  string
	Title string
	Body  string
}

// Update carries an incremental or terminal state change for a check run.
type Update struct {
	Title       string
	Body        string
	Conclusion  Conclusion
	Annotations []Annotation
}

// Client is the external collaborator the pipeline reports through.
type Client interface {
	Create(ctx context.Context, opts CreateOptions) (*Handle, error)
	Update(ctx context.Context, h *Handle, u Update) error
}

// NullClient discards all reporting. Used when no platform credentials are
// available, so the pipeline still runs locally.
type NullClient struct{}

func (NullClient) Create(ctx context.Context, opts CreateOptions) (*Handle, error) {
	return &Handle{Owner: opts.Owner, Repo: opts.Repo}, nil
}

func (NullClient) Update(ctx context.Context, h *Handle, u Update) error {
	return nil
}
