package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/tmdb"
)

const logoText = "marquee"

// renderHeader renders the top bar: logo, genre shortcuts and breadcrumbs.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < 100
	sep := bg.Spaces(2)

	parts := []string{bg.Render(logoText, styles.Logo)}

	current := m.router.Current()
	activeGenre := 0
	if current != nil && current.Route().Kind == RouteGenre {
		activeGenre = current.Route().ID
	}

	genres := tmdb.Genres()
	shortcuts := make([]string, 0, headerGenreCount)
	for i := 0; i < headerGenreCount && i < len(genres); i++ {
		g := genres[i]
		style := styles.MutedText
		if g.ID == activeGenre {
			style = styles.AccentText.Bold(true)
		}
		label := g.Name
		if compact {
			label = truncate(label, 5)
		}
		shortcuts = append(shortcuts,
			bg.Render(fmt.Sprintf("%d", i+1), styles.FaintText)+bg.Space()+bg.Render(label, style))
	}
	parts = append(parts, bg.Join(shortcuts, "  "))

	crumbs := m.router.Breadcrumbs()
	if len(crumbs) > 0 {
		maxCrumb := 24
		if compact {
			maxCrumb = 14
		}
		rendered := make([]string, len(crumbs))
		for i, c := range crumbs {
			style := styles.MutedText
			if i == len(crumbs)-1 {
				style = styles.Text.Bold(true)
			}
			rendered[i] = bg.Render(truncate(c, maxCrumb), style)
		}
		parts = append(parts, bg.Render("│", styles.FaintText)+bg.Space()+strings.Join(rendered, bg.Render(" › ", styles.FaintText)))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Padding(0, 1).
		Width(m.width).
		MaxHeight(1).
		Render(strings.Join(parts, sep))
}

// renderCommandBar renders the command hints for the current screen.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	var commands []command
	if current := m.router.Current(); current != nil {
		commands = append(commands, current.Commands()...)
	}
	if m.router.CanGoBack() && !slices.ContainsFunc(commands, func(c command) bool { return c.key == "esc" }) {
		commands = append(commands, command{"esc", "Back"})
	}
	commands = append(commands, command{"/", "Search"}, command{"m", "Menu"}, command{"?", "More"})

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).MaxHeight(1).Render(strings.Join(segments, bg.Spaces(2)))
}
