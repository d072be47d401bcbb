package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/resource"
	"github.com/five82/marquee/internal/tmdb"
)

// genreScreen lists popular movies for one genre. Switching genre in place
// re-requests the same resource under a new key, so a slow response for the
// previous genre is dropped.
type genreScreen struct {
	deps    deps
	keys    keyMap
	genreID int
	res     *resource.Resource[int, []tmdb.Movie]
	list    movieList
	rows    int
}

func newGenreScreen(d deps, keys keyMap, genreID int) *genreScreen {
	return &genreScreen{
		deps:    d,
		keys:    keys,
		genreID: genreID,
		res:     resource.New[int, []tmdb.Movie](d.ctx, "genre", d.resourceOpts()...),
	}
}

func (s *genreScreen) Title() string { return tmdb.GenreName(s.genreID) }

func (s *genreScreen) Route() Route { return Route{Kind: RouteGenre, ID: s.genreID} }

func (s *genreScreen) Init() tea.Cmd { return s.load() }

func (s *genreScreen) load() tea.Cmd {
	f, id := s.deps.fetcher, s.genreID
	return s.res.Request(id, func(ctx context.Context) ([]tmdb.Movie, error) {
		return catalog.LoadGenre(ctx, f, id)
	})
}

func (s *genreScreen) Close() { s.res.Cancel() }

// switchGenre moves step genres along the static list.
func (s *genreScreen) switchGenre(step int) tea.Cmd {
	s.genreID = tmdb.AdjacentGenre(s.genreID, step).ID
	s.list = movieList{}
	return s.load()
}

func (s *genreScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case resource.UpdatedMsg:
		if s.res.Owns(msg) {
			if st := s.res.State(); st.IsReady() {
				s.list.Sync(st.Value)
			}
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.Retry):
			return s.load()
		case key.Matches(msg, s.keys.NextGenre):
			return s.switchGenre(1)
		case key.Matches(msg, s.keys.PrevGenre):
			return s.switchGenre(-1)
		case key.Matches(msg, s.keys.Open):
			if m, ok := s.list.Selected(); ok && s.res.State().IsReady() {
				return navigateCmd(Route{Kind: RouteMovie, ID: m.ID})
			}
		default:
			s.list.HandleKey(msg, s.keys, s.rows)
		}
	}
	return nil
}

func (s *genreScreen) View(f frame) string {
	name := tmdb.GenreName(s.genreID)
	return renderState(f, s.res.State(), name+" movies", func(movies []tmdb.Movie) string {
		s.list.Sync(movies)
		s.rows = max(f.height-2, 1)
		title := fmt.Sprintf("%s Movies (%d)", name, len(movies))
		var content string
		if len(movies) == 0 {
			content = f.styles.MutedText.Background(lipgloss.Color(f.theme.FocusBg)).Render("No movies found.")
		} else {
			content = s.list.View(f, f.width-2, s.rows, f.theme.FocusBg)
		}
		return renderTitledBox(f.theme, title, content, f.width, f.height, true)
	})
}

func (s *genreScreen) Commands() []command {
	prev := tmdb.AdjacentGenre(s.genreID, -1).Name
	next := tmdb.AdjacentGenre(s.genreID, 1).Name
	return []command{
		{"[", prev},
		{"]", next},
		{"enter", "Open"},
		{"j/k", "Navigate"},
		{"r", "Reload"},
	}
}
