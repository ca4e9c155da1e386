package tui

import "fmt"

// Canonical short status messages used across the app.
const (
	MsgLoadingPosts = "Loading posts…"
	MsgNoResults    = "No results"
	MsgLoadFailed   = "Could not load posts"
)

func MsgResultsCount(n int) string {
	if n == 1 {
		return "1 result"
	}
	return fmt.Sprintf("%d results", n)
}

func MsgPosition(cur, total int) string {
	return fmt.Sprintf("%d/%d", cur, total)
}
