package checkrun

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitHubClient_CreateAndUpdate(t *testing.T) {
	var gotCreate, gotUpdate map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/repos/acme/demo/check-runs":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotCreate))
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"id": 99}`)
		case r.Method == http.MethodPatch && r.URL.Path == "/repos/acme/demo/check-runs/99":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotUpdate))
			fmt.Fprint(w, `{}`)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewGitHubClientAt(srv.URL, "tok")
	ctx := context.Background()

	h, err := c.Create(ctx, CreateOptions{
		Owner: "acme", Repo: "demo", SHA: "a1b2", Name: "mavenhook", Title: "Maven build", Body: "starting",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(99), h.ID)
	assert.Equal(t, "a1b2", gotCreate["head_sha"])
	assert.Equal(t, "in_progress", gotCreate["status"])

	err = c.Update(ctx, h, Update{
		Title:      "Build failed",
		Body:       "dead",
		Conclusion: ConclusionFailure,
		Annotations: []Annotation{
			{Level: "failure", Path: "src/Foo.java", StartLine: 10, EndLine: 10, Message: "cannot find symbol"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", gotUpdate["status"])
	assert.Equal(t, "failure", gotUpdate["conclusion"])

	output := gotUpdate["output"].(map[string]any)
	anns := output["annotations"].([]any)
	require.Len(t, anns, 1)
	first := anns[0].(map[string]any)
	assert.Equal(t, "src/Foo.java", first["path"])
	assert.Equal(t, float64(10), first["start_line"])
}

func TestGitHubClient_AnnotationCap(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	c := NewGitHubClientAt(srv.URL, "tok")

	anns := make([]Annotation, 80)
	for i := range anns {
		anns[i] = Annotation{Level: "warning", Path: "F.java", StartLine: i + 1, EndLine: i + 1, Message: "m"}
	}

	err := c.Update(context.Background(), &Handle{Owner: "a", Repo: "b", ID: 1}, Update{Annotations: anns})
	require.NoError(t, err)

	output := got["output"].(map[string]any)
	assert.Len(t, output["annotations"], 50)
}

func TestGitHubClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{"message":"Invalid request"}`)
	}))
	defer srv.Close()

	c := NewGitHubClientAt(srv.URL, "tok")
	_, err := c.Create(context.Background(), CreateOptions{Owner: "a", Repo: "b", SHA: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestNullClient(t *testing.T) {
	var c Client = NullClient{}
	h, err := c.Create(context.Background(), CreateOptions{Owner: "a", Repo: "b"})
	require.NoError(t, err)
	require.NotNil(t, h)
	require.NoError(t, c.Update(context.Background(), h, Update{Conclusion: ConclusionSuccess}))
}
