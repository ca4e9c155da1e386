package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"postcard/internal/config"
	"postcard/internal/pager"
	"postcard/internal/post"
	"postcard/internal/search"
	"postcard/internal/theme"
)

// chromeHeight is the number of rows reserved around the viewport:
// header, progress bar, a blank line, separator, and status bar.
const chromeHeight = 5

type App struct {
	config     *config.Config
	theme      theme.Theme
	styles     styles
	client     *post.Client
	keyHandler *KeyHandler

	status  pager.Status
	loadErr error
	pager   *pager.Pager
	index   *search.Index

	view View

	viewport    viewport.Model
	spinner     spinner.Model
	progressBar progress.Model
	searchInput textinput.Model
	searchList  list.Model

	width        int
	height       int
	showFullHelp bool

	glamourRenderer *glamour.TermRenderer
	rendererWidth   int
}

func NewApp(cfg *config.Config, th theme.Theme) *App {
	st := newStyles(th)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = st.accent

	pb := progress.New(progress.WithScaledGradient(th.ProgressStart, th.ProgressEnd))
	pb.ShowPercentage = false

	si := textinput.New()
	si.Placeholder = "Search posts..."

	searchList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	searchList.Title = "› results"
	searchList.SetShowStatusBar(false)
	searchList.SetShowHelp(false)
	searchList.SetFilteringEnabled(false)

	vp := viewport.New(0, 0)

	app := &App{
		config:      cfg,
		theme:       th,
		styles:      st,
		client:      post.NewClient(cfg),
		status:      pager.StatusLoading,
		view:        ViewPost,
		viewport:    vp,
		spinner:     sp,
		progressBar: pb,
		searchInput: si,
		searchList:  searchList,
	}

	app.keyHandler = NewKeyHandler(app, cfg)

	return app
}

func (a *App) getRenderer() (*glamour.TermRenderer, error) {
	maxWidth := a.config.UI.WordWrapMaxWidth
	minWidth := a.config.UI.WordWrapMinWidth

	wordWrapWidth := (a.width * 9) / 10
	if wordWrapWidth > maxWidth {
		wordWrapWidth = maxWidth
	}
	if wordWrapWidth < minWidth {
		wordWrapWidth = minWidth
	}
	if a.width > 0 && a.width < minWidth+10 {
		wordWrapWidth = a.width - 4
		if wordWrapWidth < 20 {
			wordWrapWidth = 20
		}
	}

	if a.glamourRenderer == nil || abs(a.rendererWidth-wordWrapWidth) > 10 {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wordWrapWidth),
		)
		if err != nil {
			return nil, err
		}
		a.glamourRenderer = r
		a.rendererWidth = wordWrapWidth
	}

	return a.glamourRenderer, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.spinner.Tick,
		a.loadPosts(),
		tea.EnterAltScreen,
	)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.viewport.Width = msg.Width
		a.viewport.Height = msg.Height - chromeHeight

		barWidth := msg.Width - 4
		if barWidth < 10 {
			barWidth = msg.Width
		}
		a.progressBar.Width = barWidth

		// Search view layout needs room for the input frame and header
		searchListHeight := msg.Height - 10
		if searchListHeight < 5 {
			searchListHeight = 5
		}
		a.searchList.SetSize(msg.Width, searchListHeight)

		inputWidth := msg.Width - 8
		if inputWidth < 20 {
			inputWidth = msg.Width
		}
		a.searchInput.Width = inputWidth

		// Re-render against the new wrap width
		if a.status == pager.StatusReady {
			cmds = append(cmds, a.renderPost(a.pager.Index(), a.pager.Current()))
		}

	case tea.KeyMsg:
		return a.keyHandler.HandleKey(msg)

	case spinner.TickMsg:
		if a.status == pager.StatusLoading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}

	case postsLoadedMsg:
		p, err := pager.New(msg.posts)
		if err != nil {
			a.status = pager.StatusFailed
			a.loadErr = err
			return a, nil
		}
		a.pager = p
		a.status = pager.StatusReady
		return a, tea.Batch(
			a.renderPost(p.Index(), p.Current()),
			a.buildIndex(msg.posts),
		)

	case loadFailedMsg:
		a.status = pager.StatusFailed
		a.loadErr = msg.err

	case indexReadyMsg:
		a.index = msg.index

	case postRenderedMsg:
		// Drop stale renders when the user has already navigated on.
		if a.pager != nil && msg.position == a.pager.Index() {
			a.viewport.SetContent(msg.content)
			a.viewport.GotoTop()
		}

	case searchResultsMsg:
		if a.view == ViewSearch {
			items := make([]list.Item, len(msg.results))
			for i, result := range msg.results {
				items[i] = searchResultItem{result: result}
			}
			a.searchList.SetItems(items)
		}
	}

	switch a.view {
	case ViewPost:
		switch msg.(type) {
		case tea.MouseMsg:
			newViewport, cmd := a.viewport.Update(msg)
			a.viewport = newViewport
			cmds = append(cmds, cmd)
		}
	case ViewSearch:
		newSearchList, cmd := a.searchList.Update(msg)
		a.searchList = newSearchList
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// navigate applies a pager mutation and re-renders when the position
// actually moved. Boundary presses are inert, not errors.
func (a *App) navigate(move func(*pager.Pager)) tea.Cmd {
	if a.status != pager.StatusReady {
		return nil
	}
	before := a.pager.Index()
	move(a.pager)
	if a.pager.Index() == before {
		return nil
	}
	return a.renderPost(a.pager.Index(), a.pager.Current())
}

func (a *App) View() string {
	switch a.status {
	case pager.StatusLoading:
		return renderCentered(a.width, a.height,
			a.spinner.View()+" "+a.styles.muted.Render(MsgLoadingPosts))

	case pager.StatusFailed:
		return a.failedView()
	}

	var content string
	switch a.view {
	case ViewPost:
		content = a.postView()
	case ViewSearch:
		content = a.searchView()
	}

	separatorWidth := a.width - 1
	if separatorWidth < 0 {
		separatorWidth = 0
	}
	separator := a.styles.muted.Render(strings.Repeat("─", separatorWidth+1))

	return lipgloss.JoinVertical(lipgloss.Top, content, separator, a.statusBar())
}

func (a *App) failedView() string {
	endpoint := truncateMiddle(a.config.API.URL, a.width-10)

	message := ""
	if a.loadErr != nil {
		message = a.loadErr.Error()
	}

	panel := lipgloss.JoinVertical(
		lipgloss.Center,
		a.styles.errText.Render("✗ "+MsgLoadFailed),
		"",
		a.styles.text.Width(min(a.width-4, 70)).Align(lipgloss.Center).Render(message),
		"",
		a.styles.muted.Render(endpoint),
		"",
		a.styles.help.Render("q: quit"),
	)

	return renderCentered(a.width, a.height, panel)
}

func (a *App) postView() string {
	if a.pager == nil {
		return ""
	}

	return lipgloss.JoinVertical(
		lipgloss.Top,
		a.headerView(),
		a.progressView(),
		"",
		a.viewport.View(),
	)
}

func (a *App) headerView() string {
	cur, total := a.pager.Position()

	left := a.styles.header.Render(CompactLogo)
	pos := a.styles.position.Render(MsgPosition(cur, total))
	meta := a.styles.muted.Render(fmt.Sprintf("post #%d · author #%d",
		a.pager.Current().ID, a.pager.Current().UserID))

	header := left + " " + pos + "  " + meta
	return lipgloss.NewStyle().Padding(0, 1).Render(truncateEnd(header, a.width+40))
}

func (a *App) progressView() string {
	return lipgloss.NewStyle().Padding(0, 2).Render(a.progressBar.ViewAs(a.pager.Ratio()))
}

func (a *App) searchView() string {
	header := a.styles.header.Render("› search posts")

	input := a.renderInputFrame(a.searchInput.View(), a.searchInput.Focused(), a.searchInput.Width)

	var helpText string
	switch {
	case a.searchInput.Focused():
		helpText = "Type to search • Tab/↓: results • Esc: back"
	case len(a.searchList.Items()) > 0:
		helpText = MsgResultsCount(len(a.searchList.Items())) + " • ↑↓: navigate • Enter: jump to post • Esc: back"
	default:
		helpText = MsgNoResults + " • Tab: search box • Esc: back"
	}

	content := lipgloss.JoinVertical(
		lipgloss.Top,
		header,
		"",
		input,
		a.styles.muted.Render(helpText),
		"",
		a.searchList.View(),
	)

	return lipgloss.NewStyle().
		Width(a.width).
		Height(a.height - 2).
		MaxHeight(a.height - 2).
		Padding(0, 1).
		Render(content)
}

func (a *App) statusBar() string {
	hints := a.keyHandler.GetHelpForCurrentView()
	if len(hints) == 0 {
		return ""
	}

	return lipgloss.NewStyle().
		Width(a.width).
		Padding(0, 1).
		Render(a.styles.muted.Render(strings.Join(hints, " • ")))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

type searchResultItem struct {
	result search.Result
}

func (i searchResultItem) Title() string {
	return fmt.Sprintf("%d · %s", i.result.Position+1, i.result.Post.Title)
}

func (i searchResultItem) Description() string {
	return truncateEnd(i.result.Post.Body, 80)
}

func (i searchResultItem) FilterValue() string {
	return i.result.Post.Title
}
