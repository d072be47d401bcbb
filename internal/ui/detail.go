package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/resource"
	"github.com/five82/marquee/internal/tmdb"
)

// narrowWidth switches money to the compact form.
const narrowWidth = 70

// detailScreen shows one movie with its cast and crew.
type detailScreen struct {
	deps deps
	keys keyMap
	id   int
	res  *resource.Resource[int, *catalog.Movie]
	vp   viewport.Model

	// content cache, rebuilt when any of these change
	cachedFor   *catalog.Movie
	cachedWidth int
	cachedTheme string
}

func newDetailScreen(d deps, keys keyMap, id int) *detailScreen {
	return &detailScreen{
		deps: d,
		keys: keys,
		id:   id,
		res:  resource.New[int, *catalog.Movie](d.ctx, "movie", d.resourceOpts()...),
		vp:   viewport.New(0, 0),
	}
}

func (s *detailScreen) Title() string {
	if st := s.res.State(); st.IsReady() && st.Value != nil {
		return st.Value.Details.Title
	}
	return fmt.Sprintf("Movie %d", s.id)
}

func (s *detailScreen) Route() Route { return Route{Kind: RouteMovie, ID: s.id} }

func (s *detailScreen) Init() tea.Cmd { return s.load() }

func (s *detailScreen) load() tea.Cmd {
	f, id := s.deps.fetcher, s.id
	return s.res.Request(id, func(ctx context.Context) (*catalog.Movie, error) {
		return catalog.LoadMovie(ctx, f, id)
	})
}

func (s *detailScreen) Close() { s.res.Cancel() }

func (s *detailScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case resource.UpdatedMsg:
		if s.res.Owns(msg) {
			s.vp.GotoTop()
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.Retry):
			return s.load()
		case key.Matches(msg, s.keys.Up):
			s.vp.ScrollUp(1)
		case key.Matches(msg, s.keys.Down):
			s.vp.ScrollDown(1)
		case key.Matches(msg, s.keys.Top):
			s.vp.GotoTop()
		case key.Matches(msg, s.keys.Bottom):
			s.vp.GotoBottom()
		case key.Matches(msg, s.keys.PageUp):
			s.vp.ViewUp()
		case key.Matches(msg, s.keys.PageDown):
			s.vp.ViewDown()
		case key.Matches(msg, s.keys.HalfPageUp):
			s.vp.HalfViewUp()
		case key.Matches(msg, s.keys.HalfPageDown):
			s.vp.HalfViewDown()
		}
	}
	return nil
}

func (s *detailScreen) View(f frame) string {
	return renderState(f, s.res.State(), "movie", func(m *catalog.Movie) string {
		if m == nil {
			return renderEmpty(f, "Movie not found.")
		}
		s.vp.Width = max(f.width-2, 1)
		s.vp.Height = max(f.height-2, 1)
		s.vp.Style = lipgloss.NewStyle().Background(lipgloss.Color(f.theme.FocusBg))
		if s.cachedFor != m || s.cachedWidth != s.vp.Width || s.cachedTheme != f.theme.Name {
			s.vp.SetContent(s.renderContent(f, m, s.vp.Width))
			s.cachedFor, s.cachedWidth, s.cachedTheme = m, s.vp.Width, f.theme.Name
		}
		title := m.Details.Title
		if pct := s.vp.ScrollPercent(); !s.vp.AtTop() || !s.vp.AtBottom() {
			title = fmt.Sprintf("%s  %3.0f%%", title, pct*100)
		}
		return renderTitledBox(f.theme, title, s.vp.View(), f.width, f.height, true)
	})
}

func (s *detailScreen) renderContent(f frame, m *catalog.Movie, width int) string {
	bgColor := f.theme.FocusBg
	styles := f.styles.WithBackground(bgColor)
	bg := NewBgStyle(bgColor)
	d := m.Details

	var b strings.Builder

	// Title line: "Heat (1995)  8.2"
	b.WriteString(bg.Space())
	b.WriteString(bg.Render(d.Title, styles.Title))
	b.WriteString(bg.Render(" ("+d.Year()+")", styles.MutedText))
	b.WriteString(bg.Spaces(2))
	b.WriteString(styles.RatingBadge(d.VoteAverage).Render("★ " + d.Rating()))
	b.WriteString("\n")

	if tagline := strings.TrimSpace(d.Tagline); tagline != "" {
		b.WriteString(bg.Space())
		b.WriteString(bg.Render(truncate(tagline, width-2), styles.MutedText.Italic(true)))
		b.WriteString("\n")
	}

	meta := joinNonEmpty(" · ", d.RuntimeText(), strings.Join(d.GenreNames(), ", "), d.Status)
	b.WriteString(bg.Space())
	b.WriteString(bg.Render(truncate(meta, width-2), styles.AccentText))
	b.WriteString("\n\n")

	budget, revenue := orNA(d.BudgetText()), orNA(d.RevenueText())
	if width < narrowWidth {
		budget, revenue = formatCompact(d.Budget), formatCompact(d.Revenue)
	}
	urlWidth := max(width-14, 12)
	facts := []struct{ label, value string }{
		{"Released", strings.TrimSpace(d.ReleaseDate)},
		{"Votes", formatCount(d.VoteCount)},
		{"Budget", budget},
		{"Revenue", revenue},
		{"Language", strings.ToUpper(d.OriginalLanguage)},
		{"Original", originalTitle(d)},
		{"Homepage", truncateMiddle(d.Homepage, urlWidth)},
		{"IMDb", imdbURL(d.IMDBID)},
		{"Poster", truncateMiddle(tmdb.ImageURL(s.deps.imageBase, "w500", d.PosterPath), urlWidth)},
		{"Backdrop", truncateMiddle(tmdb.ImageURL(s.deps.imageBase, "original", d.BackdropPath), urlWidth)},
	}
	for _, fact := range facts {
		if fact.value == "" {
			continue
		}
		b.WriteString(bg.Space())
		b.WriteString(bg.Render(fmt.Sprintf("%-11s", fact.label+":"), styles.MutedText))
		b.WriteString(bg.Render(fact.value, styles.Text))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.renderSection(styles, bg, "Overview"))
	overview := strings.TrimSpace(d.Overview)
	if overview == "" {
		overview = "No overview available."
	}
	b.WriteString(lipgloss.NewStyle().
		Width(max(width-2, 10)).
		PaddingLeft(1).
		Background(lipgloss.Color(bgColor)).
		Foreground(lipgloss.Color(f.theme.Text)).
		Render(overview))
	b.WriteString("\n\n")

	b.WriteString(s.renderSection(styles, bg, "Cast"))
	if len(m.Cast) == 0 {
		b.WriteString(bg.Space() + bg.Render("No cast information.", styles.FaintText) + "\n")
	} else {
		rows := make([][]string, 0, len(m.Cast))
		for _, c := range m.Cast {
			rows = append(rows, []string{c.Name, c.Character})
		}
		b.WriteString(creditsTable(f, []string{"Name", "Character"}, rows, width))
		b.WriteString("\n")
	}

	if len(m.Crew) > 0 {
		b.WriteString("\n")
		b.WriteString(s.renderSection(styles, bg, "Crew"))
		rows := make([][]string, 0, len(m.Crew))
		for _, c := range m.Crew {
			rows = append(rows, []string{c.Name, c.Job, c.Department})
		}
		b.WriteString(creditsTable(f, []string{"Name", "Role", "Department"}, rows, width))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (s *detailScreen) renderSection(styles Styles, bg BgStyle, title string) string {
	return bg.Space() + bg.Render(title, styles.AccentText.Bold(true)) + "\n"
}

// creditsTable renders a table with a hidden border. The first column is
// the person, the rest are muted.
func creditsTable(f frame, headers []string, rows [][]string, width int) string {
	bg := lipgloss.Color(f.theme.FocusBg)
	header := lipgloss.NewStyle().Foreground(lipgloss.Color(f.theme.Muted)).Background(bg).Bold(true).Padding(0, 1)
	name := lipgloss.NewStyle().Foreground(lipgloss.Color(f.theme.Text)).Background(bg).Padding(0, 1)
	role := lipgloss.NewStyle().Foreground(lipgloss.Color(f.theme.Muted)).Background(bg).Padding(0, 1)

	colWidth := max((width-3*len(headers))/len(headers), 8)
	for i, row := range rows {
		for j := range row {
			rows[i][j] = truncate(row[j], colWidth)
		}
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderStyle(lipgloss.NewStyle().Background(bg)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 0:
				return name
			default:
				return role
			}
		})
	return t.Render()
}

func originalTitle(d tmdb.MovieDetails) string {
	orig := strings.TrimSpace(d.OriginalTitle)
	if orig == "" || orig == d.Title {
		return ""
	}
	return orig
}

func imdbURL(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return ""
	}
	return "https://www.imdb.com/title/" + id + "/"
}

func (s *detailScreen) Commands() []command {
	return []command{
		{"j/k", "Scroll"},
		{"g/G", "Top/Bottom"},
		{"r", "Reload"},
	}
}
