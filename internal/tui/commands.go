package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"postcard/internal/debuglog"
	"postcard/internal/post"
	"postcard/internal/search"
)

type postsLoadedMsg struct {
	posts []post.Post
}

type loadFailedMsg struct {
	err error
}

type indexReadyMsg struct {
	index *search.Index
}

type postRenderedMsg struct {
	position int
	content  string
}

type searchResultsMsg struct {
	results []search.Result
}

// loadPosts issues the session's single fetch.
func (a *App) loadPosts() tea.Cmd {
	return func() tea.Msg {
		posts, err := a.client.Fetch(context.Background())
		if err != nil {
			debuglog.Errorf("load failed: %v", err)
			return loadFailedMsg{err: err}
		}
		return postsLoadedMsg{posts: posts}
	}
}

// buildIndex builds the in-memory search index once the collection is
// loaded. Search is optional, so a failure only disables it.
func (a *App) buildIndex(posts []post.Post) tea.Cmd {
	return func() tea.Msg {
		idx, err := search.NewIndex(posts)
		if err != nil {
			debuglog.Warnf("search index unavailable: %v", err)
			return nil
		}
		return indexReadyMsg{index: idx}
	}
}

// renderPost renders the post at the given position through glamour.
// The position tags the result so a stale render is dropped when the
// user has already moved on.
func (a *App) renderPost(position int, p post.Post) tea.Cmd {
	return func() tea.Msg {
		var content strings.Builder
		content.WriteString(fmt.Sprintf("# %s\n\n", p.Title))
		content.WriteString(fmt.Sprintf("*post #%d · author #%d*\n\n", p.ID, p.UserID))
		content.WriteString("---\n\n")
		content.WriteString(p.Body)
		content.WriteString("\n")

		r, err := a.getRenderer()
		if err != nil {
			return postRenderedMsg{position: position, content: "Error initializing renderer: " + err.Error()}
		}

		rendered, err := r.Render(content.String())
		if err != nil {
			return postRenderedMsg{position: position, content: fmt.Sprintf("Failed to render post: %s", err.Error())}
		}

		return postRenderedMsg{position: position, content: rendered}
	}
}

// performSearch queries the in-memory index.
func (a *App) performSearch(query string) tea.Cmd {
	return func() tea.Msg {
		if a.index == nil {
			return searchResultsMsg{results: []search.Result{}}
		}
		results, err := a.index.Search(query, 20)
		if err != nil {
			debuglog.Warnf("search %q failed: %v", query, err)
			return searchResultsMsg{results: []search.Result{}}
		}
		return searchResultsMsg{results: results}
	}
}
