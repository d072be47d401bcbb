package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/resource"
	"github.com/five82/marquee/internal/tmdb"
)

// searchScreen runs title searches with an optional genre filter. Each
// submitted query is a new key on one resource, so an older search that
// returns late never replaces the newer results.
type searchScreen struct {
	deps       deps
	keys       keyMap
	input      textinput.Model
	genreIdx   int // 0 is "All genres", otherwise an index into tmdb.Genres()+1
	focusInput bool
	history    int // position while recalling recent searches, -1 when not
	res        *resource.Resource[tmdb.SearchQuery, []tmdb.Movie]
	list       movieList
	rows       int
}

func newSearchScreen(d deps, keys keyMap) *searchScreen {
	ti := textinput.New()
	ti.Placeholder = "Enter movie title..."
	ti.Prompt = ""
	ti.CharLimit = 100
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()

	return &searchScreen{
		deps:       d,
		keys:       keys,
		input:      ti,
		focusInput: true,
		history:    -1,
		res:        resource.New[tmdb.SearchQuery, []tmdb.Movie](d.ctx, "search", d.resourceOpts()...),
	}
}

func (s *searchScreen) Title() string { return "Search" }

func (s *searchScreen) Route() Route { return Route{Kind: RouteSearch} }

func (s *searchScreen) Init() tea.Cmd { return nil }

func (s *searchScreen) Close() { s.res.Cancel() }

// InputActive reports whether the query box has focus.
func (s *searchScreen) InputActive() bool { return s.focusInput }

func (s *searchScreen) genreID() int {
	if s.genreIdx <= 0 {
		return 0
	}
	return tmdb.Genres()[s.genreIdx-1].ID
}

func (s *searchScreen) genreLabel() string {
	if s.genreIdx <= 0 {
		return "All genres"
	}
	return tmdb.Genres()[s.genreIdx-1].Name
}

func (s *searchScreen) cycleGenre() {
	s.genreIdx = (s.genreIdx + 1) % (len(tmdb.Genres()) + 1)
}

func (s *searchScreen) focus(input bool) {
	s.focusInput = input
	if input {
		s.input.Focus()
	} else {
		s.input.Blur()
	}
}

// submit starts a search for the current input. Blank queries are ignored.
func (s *searchScreen) submit() tea.Cmd {
	q := tmdb.SearchQuery{Query: s.input.Value(), GenreID: s.genreID()}.Normalize()
	if q.Query == "" {
		return nil
	}
	s.history = -1
	s.list = movieList{}
	s.focus(false)
	return tea.Batch(s.request(q), recentSearchCmd(q.Query))
}

func (s *searchScreen) request(q tmdb.SearchQuery) tea.Cmd {
	f := s.deps.fetcher
	return s.res.Request(q, func(ctx context.Context) ([]tmdb.Movie, error) {
		return catalog.Search(ctx, f, q)
	})
}

func (s *searchScreen) recent() []string {
	if s.deps.prefs == nil {
		return nil
	}
	return s.deps.prefs.RecentSearches
}

// recall steps through recent searches into the input.
func (s *searchScreen) recall(step int) {
	recent := s.recent()
	if len(recent) == 0 {
		return
	}
	next := s.history + step
	if next < 0 {
		s.history = -1
		s.input.SetValue("")
		return
	}
	if next >= len(recent) {
		next = len(recent) - 1
	}
	s.history = next
	s.input.SetValue(recent[next])
	s.input.CursorEnd()
}

func (s *searchScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case resource.UpdatedMsg:
		if s.res.Owns(msg) {
			if st := s.res.State(); st.IsReady() {
				s.list.Sync(st.Value)
			}
		}
		return nil
	case tea.KeyMsg:
		if s.focusInput {
			return s.updateInput(msg)
		}
		return s.updateResults(msg)
	}
	if s.focusInput {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return cmd
	}
	return nil
}

func (s *searchScreen) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Submit):
		return s.submit()
	case key.Matches(msg, s.keys.GenreFilter):
		s.cycleGenre()
		return nil
	case msg.Type == tea.KeyUp:
		s.recall(1)
		return nil
	case msg.Type == tea.KeyDown:
		if s.history >= 0 {
			s.recall(-1)
			return nil
		}
		if len(s.list.movies) > 0 {
			s.focus(false)
		}
		return nil
	case msg.Type == tea.KeyTab:
		if !s.res.State().IsIdle() {
			s.focus(false)
		}
		return nil
	case msg.Type == tea.KeyEsc:
		if s.res.State().IsIdle() {
			return backCmd
		}
		s.focus(false)
		return nil
	}
	s.history = -1
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *searchScreen) updateResults(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Search), key.Matches(msg, s.keys.NextSection):
		s.focus(true)
	case key.Matches(msg, s.keys.GenreFilter):
		s.cycleGenre()
	case key.Matches(msg, s.keys.Retry):
		if st := s.res.State(); !st.IsIdle() {
			return s.request(st.Key)
		}
	case key.Matches(msg, s.keys.Open):
		if m, ok := s.list.Selected(); ok && s.res.State().IsReady() {
			return navigateCmd(Route{Kind: RouteMovie, ID: m.ID})
		}
	default:
		s.list.HandleKey(msg, s.keys, s.rows)
	}
	return nil
}

func (s *searchScreen) View(f frame) string {
	form := s.renderForm(f)
	body := f
	body.height = max(f.height-lipgloss.Height(form), 3)

	st := s.res.State()
	var results string
	if st.IsIdle() {
		results = s.renderRecent(body)
	} else {
		results = renderState(body, st, "search results", func(movies []tmdb.Movie) string {
			s.list.Sync(movies)
			s.rows = max(body.height-2, 1)
			title := fmt.Sprintf("Results for %q (%d)", st.Key.Query, len(movies))
			if st.Key.GenreID > 0 {
				title = fmt.Sprintf("Results for %q in %s (%d)", st.Key.Query, tmdb.GenreName(st.Key.GenreID), len(movies))
			}
			var content string
			if len(movies) == 0 {
				content = f.styles.MutedText.Background(lipgloss.Color(f.theme.FocusBg)).Render("No movies found.")
			} else {
				content = s.list.View(f, body.width-2, s.rows, f.theme.FocusBg)
			}
			return renderTitledBox(f.theme, title, content, body.width, body.height, !s.focusInput)
		})
	}
	return form + "\n" + results
}

func (s *searchScreen) renderForm(f frame) string {
	s.input.Width = max(f.width-8, 10)
	label := f.styles.MutedText.Render("Genre: ") +
		f.styles.AccentText.Render(s.genreLabel()) +
		f.styles.FaintText.Render("  ("+s.keys.GenreFilter.Help().Key+" to change)")
	if s.res.State().IsLoading() {
		label += "  " + f.styles.AccentText.Render(f.spinner) + f.styles.MutedText.Render(" searching")
	}
	content := s.input.View() + "\n" + label
	return renderTitledBox(f.theme, "Search Movies", content, f.width, 4, s.focusInput)
}

func (s *searchScreen) renderRecent(f frame) string {
	recent := s.recent()
	if len(recent) == 0 {
		return renderEmpty(f, "Type a title and press enter to search.")
	}
	lines := []string{f.styles.AccentText.Bold(true).Render("Recent searches"), ""}
	for _, q := range recent {
		lines = append(lines, "  "+f.styles.Text.Render(q))
	}
	lines = append(lines, "", f.styles.FaintText.Render("up/down recalls a recent search"))
	return strings.Join(lines, "\n")
}

func (s *searchScreen) Commands() []command {
	if s.focusInput {
		return []command{
			{"enter", "Search"},
			{"ctrl+g", s.genreLabel()},
			{"up", "Recent"},
			{"tab", "Results"},
			{"esc", "Back"},
		}
	}
	commands := []command{
		{"/", "Edit query"},
		{"ctrl+g", s.genreLabel()},
		{"enter", "Open"},
		{"j/k", "Navigate"},
	}
	if !s.res.State().IsLoading() {
		commands = append(commands, command{"r", "Retry"})
	}
	return commands
}
