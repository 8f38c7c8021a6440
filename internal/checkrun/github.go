// SPDX-License-Identifier: AGPL-3.0-or-later

package checkrun

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxAnnotationsPerUpdate is the platform's per-request annotation limit.
const maxAnnotationsPerUpdate = 50

// GitHubClient implements Client against the GitHub checks REST API.
type GitHubClient struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewGitHubClient creates a client authenticating with the given token.
func NewGitHubClient(token string) *GitHubClient {
	return &GitHubClient{
		baseURL: "https://api.github.com",
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// NewGitHubClientAt is like NewGitHubClient with an explicit API base URL.
// Used for GitHub Enterprise hosts and in tests.
func NewGitHubClientAt(baseURL, token string) *GitHubClient {
	c := NewGitHubClient(token)
	c.baseURL = baseURL
	return c
}

type checkOutput struct {
	Title       string       `json:"title"`
	Summary     string       `json:"summary"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

func (c *GitHubClient) Create(ctx context.Context, opts CreateOptions) (*Handle, error) {
	body := map[string]any{
		"name":     opts.Name,
		"head_sha": opts.SHA,
		"status":   "in_progress",
		"output": checkOutput{
			Title:   opts.Title,
			Summary: opts.Body,
		},
	}

	url := fmt.Sprintf("%s/repos/%s/%s/check-runs", c.baseURL, opts.Owner, opts.Repo)
	var created struct {
		ID int64 `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, url, body, &created); err != nil {
		return nil, fmt.Errorf("creating check run for %s/%s@%s: %w", opts.Owner, opts.Repo, opts.SHA, err)
	}
	return &Handle{Owner: opts.Owner, Repo: opts.Repo, ID: created.ID}, nil
}

func (c *GitHubClient) Update(ctx context.Context, h *Handle, u Update) error {
	anns := u.Annotations
	if len(anns) > maxAnnotationsPerUpdate {
		anns = anns[:maxAnnotationsPerUpdate]
	}

	body := map[string]any{
		"output": checkOutput{
			Title:       u.Title,
			Summary:     u.Body,
			Annotations: anns,
		},
	}
	if u.Conclusion != ConclusionNone {
		body["status"] = "completed"
		body["conclusion"] = string(u.Conclusion)
	}

	url := fmt.Sprintf("%s/repos/%s/%s/check-runs/%d", c.baseURL, h.Owner, h.Repo, h.ID)
	if err := c.do(ctx, http.MethodPatch, url, body, nil); err != nil {
		return fmt.Errorf("updating check run %d: %w", h.ID, err)
	}
	return nil
}

func (c *GitHubClient) do(ctx context.Context, method, url string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s %s: %s: %s", method, url, resp.Status, bytes.TrimSpace(msg))
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
