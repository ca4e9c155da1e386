// Package pager holds the navigation state machine over a loaded post
// collection: a current-position index moved one step at a time, with
// derived projections for the presentation layer.
package pager

import (
	"errors"

	"postcard/internal/post"
)

// Status is the load phase of a session. It moves from Loading to
// exactly one of Ready or Failed and never changes again.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrEmpty is returned when the endpoint answered with an empty
// collection. An empty collection is treated as a load failure, so a
// Ready pager always has at least one post and the completion ratio is
// always defined.
var ErrEmpty = errors.New("no posts in collection")

// Pager owns the index into a fixed post collection. The index only
// moves through Next/Prev/Reset/JumpTo, which keep it in range, so
// every read accessor is total.
type Pager struct {
	posts []post.Post
	index int
}

// New seeds a pager at the first post. The collection must be
// non-empty; callers surface ErrEmpty the same way as any other load
// failure.
func New(posts []post.Post) (*Pager, error) {
	if len(posts) == 0 {
		return nil, ErrEmpty
	}
	return &Pager{posts: posts}, nil
}

// Next advances one post. Inert at the last position.
func (p *Pager) Next() {
	if p.index < len(p.posts)-1 {
		p.index++
	}
}

// Prev steps back one post. Inert at the first position.
func (p *Pager) Prev() {
	if p.index > 0 {
		p.index--
	}
}

// Reset returns to the first post unconditionally.
func (p *Pager) Reset() {
	p.index = 0
}

// JumpTo moves to an absolute position, clamped into range.
func (p *Pager) JumpTo(i int) {
	if i < 0 {
		i = 0
	}
	if i > len(p.posts)-1 {
		i = len(p.posts) - 1
	}
	p.index = i
}

// Current returns the post at the current position.
func (p *Pager) Current() post.Post {
	return p.posts[p.index]
}

// Index returns the zero-based current position.
func (p *Pager) Index() int {
	return p.index
}

// Len returns the collection size.
func (p *Pager) Len() int {
	return len(p.posts)
}

// Position returns the 1-based display pair (current, total).
func (p *Pager) Position() (int, int) {
	return p.index + 1, len(p.posts)
}

// Ratio returns the completion fraction (index+1)/len, used for the
// proportional progress indicator.
func (p *Pager) Ratio() float64 {
	return float64(p.index+1) / float64(len(p.posts))
}

// AtStart reports whether Prev would be a no-op.
func (p *Pager) AtStart() bool {
	return p.index == 0
}

// AtEnd reports whether Next would be a no-op.
func (p *Pager) AtEnd() bool {
	return p.index == len(p.posts)-1
}
