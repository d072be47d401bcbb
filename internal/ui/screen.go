package ui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/resource"
	"github.com/five82/marquee/internal/tmdb"
)

// screen is one entry on the navigation stack. Screens are pointers and
// mutate in place; the Model owns them through the Router.
type screen interface {
	// Title returns the breadcrumb segment.
	Title() string

	// Route returns the path that reopens this screen.
	Route() Route

	// Init starts the screen's first load, if any.
	Init() tea.Cmd

	// Update handles a message the Model did not consume.
	Update(msg tea.Msg) tea.Cmd

	// View renders the content area.
	View(f frame) string

	// Commands lists the hints shown in the command bar.
	Commands() []command

	// Close abandons any in-flight load. Called when the screen is popped.
	Close()
}

// inputCapturer is implemented by screens with a focused text input. While
// InputActive is true, global single-key bindings are not applied.
type inputCapturer interface {
	InputActive() bool
}

// frame carries what a screen needs to render one frame.
type frame struct {
	theme   Theme
	styles  Styles
	keys    keyMap
	width   int
	height  int
	spinner string
}

// command is one command bar hint.
type command struct {
	key  string
	desc string
}

// deps are the collaborators shared by every screen.
type deps struct {
	ctx       context.Context
	fetcher   tmdb.Fetcher
	logger    *slog.Logger
	imageBase string
	prefs     *prefs.Prefs
}

func (d deps) resourceOpts() []resource.Option {
	return []resource.Option{resource.WithLogger(d.logger)}
}

// Messages

// navigateMsg pushes the screen for route.
type navigateMsg struct {
	route Route
}

// replaceMsg swaps the current screen for the screen for route.
type replaceMsg struct {
	route Route
}

// backMsg pops the current screen.
type backMsg struct{}

// recentSearchMsg records a submitted query in the preferences.
type recentSearchMsg struct {
	query string
}

// Commands

func navigateCmd(r Route) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{route: r}
	}
}

func replaceCmd(r Route) tea.Cmd {
	return func() tea.Msg {
		return replaceMsg{route: r}
	}
}

func backCmd() tea.Msg {
	return backMsg{}
}

func recentSearchCmd(query string) tea.Cmd {
	return func() tea.Msg {
		return recentSearchMsg{query: query}
	}
}
