package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postcard/internal/post"
)

func testPosts() []post.Post {
	return []post.Post{
		{UserID: 1, ID: 1, Title: "gardening in spring", Body: "tulips and daffodils bloom early"},
		{UserID: 1, ID: 2, Title: "terminal emulators compared", Body: "a tour of modern terminal emulators"},
		{UserID: 2, ID: 3, Title: "sourdough basics", Body: "flour, water, salt, and patience"},
		{UserID: 2, ID: 4, Title: "spring cleaning", Body: "decluttering the garage"},
	}
}

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := NewIndex(testPosts())
	require.NoError(t, err)
	t.Cleanup(func() { idx.Close() })
	return idx
}

func TestNewIndexCountsAllPosts(t *testing.T) {
	idx := newTestIndex(t)

	count, err := idx.DocCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(4), count)
}

func TestSearchFindsTitleMatch(t *testing.T) {
	idx := newTestIndex(t)

	results, err := idx.Search("sourdough", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].Position)
	assert.Equal(t, "sourdough basics", results[0].Post.Title)
}

func TestSearchFindsBodyMatch(t *testing.T) {
	idx := newTestIndex(t)

	results, err := idx.Search("daffodils", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 0, results[0].Position)
}

func TestSearchRanksTitleAboveBody(t *testing.T) {
	idx := newTestIndex(t)

	// "spring" appears in two titles; both must come back and carry
	// their collection positions.
	results, err := idx.Search("spring", 10)
	require.NoError(t, err)
	require.Len(t, results, 2)

	positions := []int{results[0].Position, results[1].Position}
	assert.ElementsMatch(t, []int{0, 3}, positions)
}

func TestSearchPrefixMatch(t *testing.T) {
	idx := newTestIndex(t)

	results, err := idx.Search("termi", 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, 1, results[0].Position)
}

func TestSearchShortQueryReturnsNothing(t *testing.T) {
	idx := newTestIndex(t)

	results, err := idx.Search("a", 10)
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = idx.Search("  ", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchRespectsLimit(t *testing.T) {
	idx := newTestIndex(t)

	results, err := idx.Search("spring", 1)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"hello", "world"}, tokenize("Hello, World!"))
	assert.Equal(t, []string{"abc123"}, tokenize("abc123"))
	assert.Empty(t, tokenize("a b c"))
}
