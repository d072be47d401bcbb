package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/pages"
	"github.com/five82/marquee/internal/tmdb"
)

type menuEntry struct {
	group string
	label string
	route Route
}

// menuEntries lists every destination: browse targets, genres, then pages.
func menuEntries() []menuEntry {
	entries := []menuEntry{
		{group: "Browse", label: "Home", route: Route{Kind: RouteHome}},
		{group: "Browse", label: "Search", route: Route{Kind: RouteSearch}},
	}
	for _, g := range tmdb.Genres() {
		entries = append(entries, menuEntry{group: "Genres", label: g.Name, route: Route{Kind: RouteGenre, ID: g.ID}})
	}
	for _, p := range pages.All() {
		entries = append(entries, menuEntry{group: "Pages", label: p.Title, route: Route{Kind: RoutePage, Slug: p.Slug}})
	}
	return entries
}

// menuScreen is the full navigation menu.
type menuScreen struct {
	keys     keyMap
	entries  []menuEntry
	selected int
}

func newMenuScreen(keys keyMap) *menuScreen {
	return &menuScreen{keys: keys, entries: menuEntries()}
}

func (s *menuScreen) Title() string { return "Menu" }

func (s *menuScreen) Route() Route { return Route{Kind: RouteMenu} }

func (s *menuScreen) Init() tea.Cmd { return nil }

func (s *menuScreen) Close() {}

func (s *menuScreen) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, s.keys.Up):
		s.selected = max(s.selected-1, 0)
	case key.Matches(keyMsg, s.keys.Down):
		s.selected = min(s.selected+1, len(s.entries)-1)
	case key.Matches(keyMsg, s.keys.Top):
		s.selected = 0
	case key.Matches(keyMsg, s.keys.Bottom):
		s.selected = len(s.entries) - 1
	case key.Matches(keyMsg, s.keys.Open):
		return replaceCmd(s.entries[s.selected].route)
	}
	return nil
}

func (s *menuScreen) View(f frame) string {
	bgColor := f.theme.FocusBg
	bg := NewBgStyle(bgColor)
	styles := f.styles.WithBackground(bgColor)
	innerWidth := max(f.width-2, 1)

	lines := make([]string, 0, len(s.entries)+6)
	group := ""
	for i, e := range s.entries {
		if e.group != group {
			if group != "" {
				lines = append(lines, "")
			}
			group = e.group
			lines = append(lines, bg.Space()+bg.Render(group, styles.AccentText.Bold(true)))
		}
		if i == s.selected {
			lines = append(lines, lipgloss.NewStyle().
				Background(lipgloss.Color(f.theme.SelectionBg)).
				Foreground(lipgloss.Color(f.theme.SelectionText)).
				Width(innerWidth).
				Render("   "+e.label))
			continue
		}
		lines = append(lines, bg.Spaces(3)+bg.Render(e.label, styles.Text))
	}

	// Keep the selection visible.
	boxRows := max(f.height-2, 1)
	selLine := s.selectedLine()
	start := 0
	if selLine >= boxRows {
		start = selLine - boxRows + 1
	}
	end := min(len(lines), start+boxRows)
	return renderTitledBox(f.theme, "Menu", strings.Join(lines[start:end], "\n"), f.width, f.height, true)
}

// selectedLine returns the rendered line index of the selection, counting
// group headings and the blank lines between groups.
func (s *menuScreen) selectedLine() int {
	line, group := 0, ""
	for i, e := range s.entries {
		if e.group != group {
			if group != "" {
				line++
			}
			group = e.group
			line++
		}
		if i == s.selected {
			return line
		}
		line++
	}
	return line
}

func (s *menuScreen) Commands() []command {
	return []command{
		{"j/k", "Navigate"},
		{"enter", "Go"},
		{"esc", "Close"},
	}
}
