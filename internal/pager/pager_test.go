package pager

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postcard/internal/post"
)

func makePosts(n int) []post.Post {
	posts := make([]post.Post, n)
	for i := range posts {
		posts[i] = post.Post{
			UserID: i/10 + 1,
			ID:     i + 1,
			Title:  fmt.Sprintf("post %d", i+1),
			Body:   fmt.Sprintf("body of post %d", i+1),
		}
	}
	return posts
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		wantErr error
	}{
		{name: "single post", count: 1},
		{name: "many posts", count: 100},
		{name: "empty collection", count: 0, wantErr: ErrEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(makePosts(tt.count))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 0, p.Index())
			assert.Equal(t, tt.count, p.Len())
		})
	}
}

func TestNextStopsAtLastPosition(t *testing.T) {
	p, err := New(makePosts(3))
	require.NoError(t, err)

	p.Next()
	p.Next()
	assert.Equal(t, 2, p.Index())
	assert.True(t, p.AtEnd())

	p.Next()
	assert.Equal(t, 2, p.Index(), "Next at the last position must be a no-op")
}

func TestPrevStopsAtFirstPosition(t *testing.T) {
	p, err := New(makePosts(3))
	require.NoError(t, err)

	assert.True(t, p.AtStart())
	p.Prev()
	assert.Equal(t, 0, p.Index(), "Prev at the first position must be a no-op")

	p.Next()
	p.Prev()
	assert.Equal(t, 0, p.Index())
}

func TestResetAlwaysReturnsToFirst(t *testing.T) {
	p, err := New(makePosts(5))
	require.NoError(t, err)

	p.Next()
	p.Next()
	p.Next()
	p.Reset()
	assert.Equal(t, 0, p.Index())

	// Reset at the start stays at the start.
	p.Reset()
	assert.Equal(t, 0, p.Index())
}

func TestJumpToClampsIntoRange(t *testing.T) {
	p, err := New(makePosts(4))
	require.NoError(t, err)

	p.JumpTo(2)
	assert.Equal(t, 2, p.Index())

	p.JumpTo(-3)
	assert.Equal(t, 0, p.Index())

	p.JumpTo(99)
	assert.Equal(t, 3, p.Index())
}

func TestDerivedProjections(t *testing.T) {
	posts := makePosts(4)
	p, err := New(posts)
	require.NoError(t, err)

	cur, total := p.Position()
	assert.Equal(t, 1, cur)
	assert.Equal(t, 4, total)
	assert.Equal(t, posts[0], p.Current())
	assert.InDelta(t, 0.25, p.Ratio(), 1e-12)

	p.Next()
	cur, total = p.Position()
	assert.Equal(t, 2, cur)
	assert.Equal(t, 4, total)
	assert.Equal(t, posts[1], p.Current())
	assert.InDelta(t, 0.5, p.Ratio(), 1e-12)
}

// The canonical three-post walk: forward past the end, reset, then back
// past the start.
func TestThreePostWalk(t *testing.T) {
	p, err := New(makePosts(3))
	require.NoError(t, err)

	cur, total := p.Position()
	assert.Equal(t, 1, cur)
	assert.Equal(t, 3, total)

	p.Next()
	p.Next()
	cur, _ = p.Position()
	assert.Equal(t, 3, cur)

	p.Next()
	cur, _ = p.Position()
	assert.Equal(t, 3, cur)

	p.Reset()
	assert.Equal(t, 0, p.Index())

	p.Prev()
	assert.Equal(t, 0, p.Index())
}

// Random walks never push the index out of range and the ratio always
// matches (index+1)/n exactly.
func TestRandomWalkStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, n := range []int{1, 2, 7, 50} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			p, err := New(makePosts(n))
			require.NoError(t, err)

			for step := 0; step < 500; step++ {
				switch rng.Intn(3) {
				case 0:
					p.Next()
				case 1:
					p.Prev()
				default:
					p.Reset()
				}

				require.GreaterOrEqual(t, p.Index(), 0)
				require.Less(t, p.Index(), n)
				require.InDelta(t, float64(p.Index()+1)/float64(n), p.Ratio(), 1e-12)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "loading", StatusLoading.String())
	assert.Equal(t, "ready", StatusReady.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "unknown", Status(42).String())
}
