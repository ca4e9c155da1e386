package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"postcard/internal/config"
	"postcard/internal/pager"
)

type KeyHandler struct {
	app      *App
	bindings config.KeyBindings
}

func NewKeyHandler(app *App, cfg *config.Config) *KeyHandler {
	return &KeyHandler{app: app, bindings: cfg.Keys.Bindings}
}

func (kh *KeyHandler) HandleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if kh.isInTextInputMode() {
		return kh.handleTextInputMode(msg)
	}

	if model, cmd, handled := kh.handleCustomKeys(key); handled {
		return model, cmd
	}

	return kh.delegateToComponents(msg)
}

func (kh *KeyHandler) isInTextInputMode() bool {
	return kh.app.view == ViewSearch && kh.app.searchInput.Focused()
}

func (kh *KeyHandler) handleTextInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return kh.app, tea.Quit
	case kh.bindings.Back:
		return kh.exitSearch()
	case "enter":
		// Jump to the first result if there is one
		if items := kh.app.searchList.Items(); len(items) > 0 {
			kh.app.searchList.Select(0)
			return kh.selectResult()
		}
		return kh.app, nil
	case "tab", "down":
		if len(kh.app.searchList.Items()) > 0 {
			kh.app.searchInput.Blur()
			kh.app.searchList.Select(0)
		}
		return kh.app, nil
	default:
		return kh.delegateToSearchInput(msg)
	}
}

// delegateToSearchInput passes the key to the search input and queries
// the index whenever the text changed.
func (kh *KeyHandler) delegateToSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	prev := kh.app.searchInput.Value()
	newSearchInput, cmd := kh.app.searchInput.Update(msg)
	kh.app.searchInput = newSearchInput

	query := kh.app.searchInput.Value()
	if query != prev {
		if len(query) > 1 {
			return kh.app, tea.Batch(cmd, kh.app.performSearch(query))
		}
		kh.app.searchList.SetItems(nil)
	}
	return kh.app, cmd
}

// handleCustomKeys handles only our custom action keys
func (kh *KeyHandler) handleCustomKeys(key string) (tea.Model, tea.Cmd, bool) {
	// Global custom keys
	switch key {
	case "ctrl+c", kh.bindings.Quit:
		return kh.app, tea.Quit, true
	case kh.bindings.Back:
		if kh.app.view == ViewSearch {
			model, cmd := kh.exitSearch()
			return model, cmd, true
		}
		return kh.app, nil, true
	case kh.bindings.Search:
		if kh.app.status == pager.StatusReady {
			model, cmd := kh.enterSearch()
			return model, cmd, true
		}
		return kh.app, nil, true
	case kh.bindings.Help:
		kh.app.showFullHelp = !kh.app.showFullHelp
		return kh.app, nil, true
	}

	if kh.app.view == ViewPost {
		return kh.handlePostCustomKeys(key)
	}
	return kh.app, nil, false
}

// handlePostCustomKeys handles the navigation keys in the post view
func (kh *KeyHandler) handlePostCustomKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case kh.bindings.Next, "l", "n", " ":
		return kh.app, kh.app.navigate((*pager.Pager).Next), true
	case kh.bindings.Prev, "h", "p":
		return kh.app, kh.app.navigate((*pager.Pager).Prev), true
	case kh.bindings.Reset, "g", "home":
		return kh.app, kh.app.navigate((*pager.Pager).Reset), true
	case "G", "end":
		return kh.app, kh.app.navigate(func(p *pager.Pager) { p.JumpTo(p.Len() - 1) }), true
	}
	return kh.app, nil, false
}

// delegateToComponents lets the Charm components handle everything we
// don't intercept.
func (kh *KeyHandler) delegateToComponents(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch kh.app.view {
	case ViewPost:
		// Scrolling within the post body
		kh.app.viewport, cmd = kh.app.viewport.Update(msg)
		return kh.app, cmd

	case ViewSearch:
		switch msg.String() {
		case "enter":
			return kh.selectResult()
		case "tab", "/", "i":
			kh.app.searchInput.Focus()
			return kh.app, nil
		case "up":
			// Refocus the input when leaving the top of the results
			if kh.app.searchList.Index() == 0 {
				kh.app.searchInput.Focus()
				return kh.app, nil
			}
		}
		kh.app.searchList, cmd = kh.app.searchList.Update(msg)
		return kh.app, cmd
	}

	return kh.app, nil
}

func (kh *KeyHandler) enterSearch() (tea.Model, tea.Cmd) {
	if kh.app.view == ViewSearch {
		// Already searching: just hand focus back to the input
		kh.app.searchInput.Focus()
		return kh.app, nil
	}
	kh.app.view = ViewSearch
	kh.app.searchInput.SetValue("")
	kh.app.searchList.SetItems(nil)
	kh.app.searchInput.Focus()
	return kh.app, nil
}

func (kh *KeyHandler) exitSearch() (tea.Model, tea.Cmd) {
	kh.app.view = ViewPost
	kh.app.searchInput.Blur()
	return kh.app, nil
}

func (kh *KeyHandler) selectResult() (tea.Model, tea.Cmd) {
	item, ok := kh.app.searchList.SelectedItem().(searchResultItem)
	if !ok {
		return kh.app, nil
	}

	kh.app.pager.JumpTo(item.result.Position)
	kh.app.view = ViewPost
	kh.app.searchInput.Blur()
	return kh.app, kh.app.renderPost(kh.app.pager.Index(), kh.app.pager.Current())
}

// GetHelpForCurrentView returns the status bar hints for the current
// state. Inert directions at the collection boundaries render dimmed.
func (kh *KeyHandler) GetHelpForCurrentView() []string {
	a := kh.app

	if a.status != pager.StatusReady {
		return []string{"q: quit"}
	}

	if a.view == ViewSearch {
		return []string{"enter: jump", "esc: back", "q: quit"}
	}

	dim := a.styles.muted.Faint(true)
	prevHint := "←: prev"
	if a.pager.AtStart() {
		prevHint = dim.Render(prevHint)
	}
	nextHint := "→: next"
	if a.pager.AtEnd() {
		nextHint = dim.Render(nextHint)
	}

	hints := []string{prevHint, nextHint, "r: reset", "/: search"}
	if a.showFullHelp {
		hints = append(hints, "↑/↓: scroll", "g/G: first/last", "?: less")
	} else {
		hints = append(hints, "?: help")
	}
	return append(hints, "q: quit")
}
