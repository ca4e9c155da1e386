package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postcard/internal/config"
	"postcard/internal/pager"
	"postcard/internal/post"
	"postcard/internal/search"
)

func startPostServer(t *testing.T, count int) *httptest.Server {
	t.Helper()

	posts := make([]post.Post, count)
	for i := range posts {
		posts[i] = post.Post{
			UserID: i/10 + 1,
			ID:     i + 1,
			Title:  fmt.Sprintf("integration post %d", i+1),
			Body:   fmt.Sprintf("body for integration post %d", i+1),
		}
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(posts)
	}))
	t.Cleanup(server.Close)
	return server
}

func newClient(url string) *post.Client {
	cfg := config.TestConfig()
	cfg.API.URL = url
	return post.NewClient(cfg)
}

// The full happy path: fetch the collection once, seed the pager, walk
// it end to end, and search it.
func TestLoadAndWalkCollection(t *testing.T) {
	server := startPostServer(t, 25)

	posts, err := newClient(server.URL).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 25)

	p, err := pager.New(posts)
	require.NoError(t, err)

	// After load: first post, full position label, ratio 1/25.
	cur, total := p.Position()
	assert.Equal(t, 1, cur)
	assert.Equal(t, 25, total)
	assert.Equal(t, posts[0], p.Current())
	assert.InDelta(t, 1.0/25.0, p.Ratio(), 1e-12)

	// Walk forward past the end.
	for i := 0; i < 40; i++ {
		p.Next()
	}
	assert.True(t, p.AtEnd())
	assert.Equal(t, posts[24], p.Current())
	assert.InDelta(t, 1.0, p.Ratio(), 1e-12)

	// Reset and walk backwards past the start.
	p.Reset()
	for i := 0; i < 5; i++ {
		p.Prev()
	}
	assert.True(t, p.AtStart())
	assert.Equal(t, posts[0], p.Current())
}

func TestLoadAndSearchCollection(t *testing.T) {
	server := startPostServer(t, 10)

	posts, err := newClient(server.URL).Fetch(context.Background())
	require.NoError(t, err)

	idx, err := search.NewIndex(posts)
	require.NoError(t, err)
	defer idx.Close()

	results, err := idx.Search("integration", 5)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.LessOrEqual(t, len(results), 5)

	p, err := pager.New(posts)
	require.NoError(t, err)

	// A search hit jumps the pager straight to the matching post.
	p.JumpTo(results[0].Position)
	assert.Equal(t, results[0].Post, p.Current())
}

func TestServerFailureIsTerminal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	_, err := newClient(server.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestEmptyCollectionPolicy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	posts, err := newClient(server.URL).Fetch(context.Background())
	require.NoError(t, err)
	require.Empty(t, posts)

	// The empty collection resolves to a failure, never to a Ready
	// pager with an out-of-range index.
	_, err = pager.New(posts)
	assert.ErrorIs(t, err, pager.ErrEmpty)
}
