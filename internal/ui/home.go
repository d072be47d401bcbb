package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/resource"
)

// homeKey is the single key the home resource is ever requested with.
type homeKey struct{}

type homeSection int

const (
	sectionTrending homeSection = iota
	sectionTopRated
)

func (s homeSection) label() string {
	if s == sectionTopRated {
		return "Top Rated"
	}
	return "Trending This Week"
}

type homeScreen struct {
	deps     deps
	keys     keyMap
	res      *resource.Resource[homeKey, catalog.Home]
	section  homeSection
	trending movieList
	topRated movieList
	rows     int
}

func newHomeScreen(d deps, keys keyMap) *homeScreen {
	return &homeScreen{
		deps: d,
		keys: keys,
		res:  resource.New[homeKey, catalog.Home](d.ctx, "home", d.resourceOpts()...),
	}
}

func (s *homeScreen) Title() string { return "Home" }

func (s *homeScreen) Route() Route { return Route{Kind: RouteHome} }

func (s *homeScreen) Init() tea.Cmd { return s.load() }

func (s *homeScreen) load() tea.Cmd {
	f := s.deps.fetcher
	return s.res.Request(homeKey{}, func(ctx context.Context) (catalog.Home, error) {
		return catalog.LoadHome(ctx, f)
	})
}

func (s *homeScreen) Close() { s.res.Cancel() }

func (s *homeScreen) current() *movieList {
	if s.section == sectionTopRated {
		return &s.topRated
	}
	return &s.trending
}

func (s *homeScreen) sync(home catalog.Home) {
	s.trending.Sync(home.Trending)
	s.topRated.Sync(home.TopRated)
}

func (s *homeScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case resource.UpdatedMsg:
		if s.res.Owns(msg) {
			if st := s.res.State(); st.IsReady() {
				s.sync(st.Value)
			}
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.Retry):
			return s.load()
		case key.Matches(msg, s.keys.NextSection), key.Matches(msg, s.keys.PrevSection):
			s.section = 1 - s.section
		case key.Matches(msg, s.keys.Open):
			if m, ok := s.current().Selected(); ok && s.res.State().IsReady() {
				return navigateCmd(Route{Kind: RouteMovie, ID: m.ID})
			}
		default:
			s.current().HandleKey(msg, s.keys, s.rows)
		}
	}
	return nil
}

func (s *homeScreen) View(f frame) string {
	return renderState(f, s.res.State(), "movies", func(home catalog.Home) string {
		s.sync(home)
		tabs := s.renderTabs(f)
		boxHeight := f.height - lipgloss.Height(tabs)
		s.rows = max(boxHeight-2, 1)

		list := s.current()
		title := fmt.Sprintf("%s (%d)", s.section.label(), len(list.movies))
		var content string
		if len(list.movies) == 0 {
			content = f.styles.MutedText.Background(lipgloss.Color(f.theme.FocusBg)).Render("No movies found.")
		} else {
			content = list.View(f, f.width-2, s.rows, f.theme.FocusBg)
		}
		return tabs + "\n" + renderTitledBox(f.theme, title, content, f.width, boxHeight, true)
	})
}

func (s *homeScreen) renderTabs(f frame) string {
	bg := NewBgStyle(f.theme.Background)
	var parts []string
	for _, sec := range []homeSection{sectionTrending, sectionTopRated} {
		style := f.styles.MutedText
		if sec == s.section {
			style = f.styles.AccentText.Bold(true).Underline(true)
		}
		parts = append(parts, bg.Render(sec.label(), style))
	}
	return bg.FillLine(bg.Space()+bg.Join(parts, "   "), f.width)
}

func (s *homeScreen) Commands() []command {
	return []command{
		{"tab", "Section"},
		{"enter", "Open"},
		{"j/k", "Navigate"},
		{"r", "Reload"},
	}
}
