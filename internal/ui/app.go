package ui

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/pages"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/resource"
	"github.com/five82/marquee/internal/tmdb"
)

// Options configures the UI.
type Options struct {
	Context      context.Context
	Fetcher      tmdb.Fetcher
	ImageBaseURL string
	ThemeName    string
	Prefs        *prefs.Prefs
	PrefsPath    string // empty disables saving preferences
	Logger       *slog.Logger
	StartRoute   string // opened above Home, e.g. "/movie/550"
}

// Model is the root application state for Bubble Tea.
type Model struct {
	deps      deps
	prefsPath string
	logger    *slog.Logger

	router  *Router
	keys    keyMap
	spinner spinner.Model
	theme   Theme

	width    int
	height   int
	ready    bool
	showHelp bool
}

// New creates a new Bubble Tea model with Home at the bottom of the stack.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	p := opts.Prefs
	if p == nil {
		p = &prefs.Prefs{}
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = p.Theme
	}
	imageBase := opts.ImageBaseURL
	if imageBase == "" {
		imageBase = tmdb.DefaultImageBaseURL
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		deps: deps{
			ctx:       ctx,
			fetcher:   opts.Fetcher,
			logger:    logger,
			imageBase: imageBase,
			prefs:     p,
		},
		prefsPath: opts.PrefsPath,
		logger:    logger,
		router:    &Router{},
		keys:      DefaultKeyMap(),
		spinner:   sp,
		theme:     GetTheme(themeName),
	}

	m.router.Push(m.screenFor(Route{Kind: RouteHome}))
	if start := ParseRoute(opts.StartRoute); start.Kind != RouteHome {
		m.router.Push(m.screenFor(start))
	}
	return m
}

// Init implements tea.Model. Every screen already on the stack starts its
// load so a deep link still has Home ready underneath.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	for _, s := range m.router.Screens() {
		cmds = append(cmds, s.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case resource.UpdatedMsg:
		// Every screen on the stack sees the message; only the owner of the
		// resource acts on it.
		m.logger.Debug("resource settled", "resource", msg.Name, "id", msg.ID)
		var cmds []tea.Cmd
		for _, s := range m.router.Screens() {
			cmds = append(cmds, s.Update(msg))
		}
		return m, tea.Batch(cmds...)

	case navigateMsg:
		return m, m.navigate(msg.route)

	case replaceMsg:
		next := m.screenFor(msg.route)
		m.logger.Debug("replace screen", "route", msg.route.String())
		m.router.Replace(next)
		return m, next.Init()

	case backMsg:
		m.back()
		return m, nil

	case recentSearchMsg:
		m.deps.prefs.AddRecentSearch(msg.query)
		m.savePrefs()
		return m, nil
	}

	if current := m.router.Current(); current != nil {
		return m, current.Update(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	return b.String()
}

func (m Model) renderContent() string {
	current := m.router.Current()
	if current == nil {
		return ""
	}
	f := frame{
		theme:   m.theme,
		styles:  m.theme.Styles(),
		keys:    m.keys,
		width:   m.width,
		height:  max(m.height-2, 1),
		spinner: m.spinner.View(),
	}
	return lipgloss.NewStyle().MaxHeight(f.height).Render(current.View(f))
}

// handleKey applies global bindings, then hands the key to the current
// screen. A screen with a focused text input gets every key but ctrl+c.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	current := m.router.Current()
	if c, ok := current.(inputCapturer); ok && c.InputActive() {
		return m, current.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.deps.prefs.Theme = m.theme.Name
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.back()
		return m, nil

	case key.Matches(msg, m.keys.Home):
		return m, m.goHome()

	case key.Matches(msg, m.keys.Search):
		if current != nil && current.Route().Kind == RouteSearch {
			return m, current.Update(msg)
		}
		return m, m.navigate(Route{Kind: RouteSearch})

	case key.Matches(msg, m.keys.Menu):
		if current != nil && current.Route().Kind == RouteMenu {
			m.back()
			return m, nil
		}
		return m, m.navigate(Route{Kind: RouteMenu})

	case key.Matches(msg, m.keys.Genre):
		if g, ok := headerGenre(msg.String()); ok {
			return m, m.navigate(Route{Kind: RouteGenre, ID: g.ID})
		}
	}

	if current != nil {
		return m, current.Update(msg)
	}
	return m, nil
}

// headerGenre maps a digit key to its header genre.
func headerGenre(k string) (tmdb.Genre, bool) {
	if len(k) != 1 || k[0] < '1' || k[0] > '9' {
		return tmdb.Genre{}, false
	}
	i := int(k[0] - '1')
	genres := tmdb.Genres()
	if i >= headerGenreCount || i >= len(genres) {
		return tmdb.Genre{}, false
	}
	return genres[i], true
}

// navigate opens route. Opening the current route is a no-op and one genre
// replaces another instead of stacking.
func (m Model) navigate(r Route) tea.Cmd {
	current := m.router.Current()
	if current != nil && current.Route() == r {
		return nil
	}
	next := m.screenFor(r)
	if current != nil && r.Kind == RouteGenre && current.Route().Kind == RouteGenre {
		m.logger.Debug("replace screen", "route", r.String())
		m.router.Replace(next)
	} else {
		m.logger.Debug("push screen", "route", r.String(), "depth", m.router.Depth()+1)
		m.router.Push(next)
	}
	return next.Init()
}

func (m Model) back() {
	if m.router.Pop() != nil {
		m.logger.Debug("pop screen", "depth", m.router.Depth())
	}
}

// goHome drops back to the root, replacing it with Home if needed.
func (m Model) goHome() tea.Cmd {
	root := m.router.PopToRoot()
	if root != nil && root.Route().Kind == RouteHome {
		return nil
	}
	home := m.screenFor(Route{Kind: RouteHome})
	m.router.Replace(home)
	return home.Init()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.router.CloseAll()
	return m, tea.Quit
}

// screenFor builds the screen for a route. Unknown pages fall back to Home.
func (m Model) screenFor(r Route) screen {
	switch r.Kind {
	case RouteMovie:
		return newDetailScreen(m.deps, m.keys, r.ID)
	case RouteGenre:
		return newGenreScreen(m.deps, m.keys, r.ID)
	case RouteSearch:
		return newSearchScreen(m.deps, m.keys)
	case RouteMenu:
		return newMenuScreen(m.keys)
	case RoutePage:
		if p, ok := pages.Lookup(r.Slug); ok {
			return newPageScreen(m.keys, p)
		}
	}
	return newHomeScreen(m.deps, m.keys)
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, *m.deps.prefs); err != nil {
		m.logger.Warn("save preferences failed", "path", m.prefsPath, "error", err)
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.deps.ctx))
	_, err := p.Run()
	m.router.CloseAll()
	return err
}
