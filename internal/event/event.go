package event

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Repository identifies the repository an event belongs to.
type Repository struct {
	Owner         string
	Name          string
	DefaultBranch string
}

// FullName returns "owner/name".
func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

// Event is a push-or-tag notification: repository identity plus the commit
// the build should run against. CheckRunID is non-zero when the platform
// already resolved a check run for this commit.
type Event struct {
	Repository Repository
	SHA        string
	Ref        string
	CheckRunID int64
}

// IsTag reports whether the event was triggered by a tag push.
func (e *Event) IsTag() bool {
	return strings.HasPrefix(e.Ref, "refs/tags/")
}

// payload mirrors the webhook JSON shape for push and tag events.
type payload struct {
	Ref        string `json:"ref"`
	After      string `json:"after"`
	HeadCommit *struct {
		ID string `json:"id"`
	} `json:"head_commit"`
	Repository struct {
		Name          string `json:"name"`
		DefaultBranch string `json:"default_branch"`
		Owner         struct {
			Login string `json:"login"`
			Name  string `json:"name"`
		} `json:"owner"`
	} `json:"repository"`
	CheckRun *struct {
		ID int64 `json:"id"`
	} `json:"check_run"`
}

// Decode reads a push-or-tag payload and validates the fields the pipeline
// depends on.
func Decode(r io.Reader) (*Event, error) {
	var p payload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decoding event payload: %w", err)
	}

	owner := p.Repository.Owner.Login
	if owner == "" {
		owner = p.Repository.Owner.Name
	}

	sha := p.After
	if sha == "" && p.HeadCommit != nil {
		sha = p.HeadCommit.ID
	}

	ev := &Event{
		Repository: Repository{
			Owner:         owner,
			Name:          p.Repository.Name,
			DefaultBranch: p.Repository.DefaultBranch,
		},
		SHA: sha,
		Ref: p.Ref,
	}
	if p.CheckRun != nil {
		ev.CheckRunID = p.CheckRun.ID
	}

	if ev.Repository.Owner == "" || ev.Repository.Name == "" {
		return nil, fmt.Errorf("event payload missing repository identity")
	}
	if ev.SHA == "" {
		return nil, fmt.Errorf("event payload missing commit sha")
	}
	return ev, nil
}

// Load reads and decodes an event payload file.
func Load(path string) (*Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening event payload %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return Decode(f)
}
