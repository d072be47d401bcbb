package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/tmdb"
)

// movieList is a selectable list of movies.
type movieList struct {
	movies   []tmdb.Movie
	selected int
}

// SetMovies replaces the list, keeping the selection on the same movie id
// when it is still present.
func (l *movieList) SetMovies(movies []tmdb.Movie) {
	var selectedID int
	if m, ok := l.Selected(); ok {
		selectedID = m.ID
	}
	l.movies = movies
	if selectedID > 0 {
		for i, m := range movies {
			if m.ID == selectedID {
				l.selected = i
				return
			}
		}
	}
	l.clamp()
}

// Sync adopts movies unless the list already holds that exact slice.
func (l *movieList) Sync(movies []tmdb.Movie) {
	if len(l.movies) == len(movies) && (len(movies) == 0 || &l.movies[0] == &movies[0]) {
		return
	}
	l.SetMovies(movies)
}

// Selected returns the highlighted movie.
func (l movieList) Selected() (tmdb.Movie, bool) {
	if l.selected < 0 || l.selected >= len(l.movies) {
		return tmdb.Movie{}, false
	}
	return l.movies[l.selected], true
}

// HandleKey moves the selection. It reports whether the key was consumed.
// pageSize is the number of visible rows.
func (l *movieList) HandleKey(msg tea.KeyMsg, keys keyMap, pageSize int) bool {
	if len(l.movies) == 0 {
		return false
	}
	pageSize = max(pageSize, 1)
	switch {
	case key.Matches(msg, keys.Up):
		l.selected--
	case key.Matches(msg, keys.Down):
		l.selected++
	case key.Matches(msg, keys.Top):
		l.selected = 0
	case key.Matches(msg, keys.Bottom):
		l.selected = len(l.movies) - 1
	case key.Matches(msg, keys.PageUp):
		l.selected -= pageSize
	case key.Matches(msg, keys.PageDown):
		l.selected += pageSize
	case key.Matches(msg, keys.HalfPageUp):
		l.selected -= max(pageSize/2, 1)
	case key.Matches(msg, keys.HalfPageDown):
		l.selected += max(pageSize/2, 1)
	default:
		return false
	}
	l.clamp()
	return true
}

func (l *movieList) clamp() {
	if l.selected >= len(l.movies) {
		l.selected = len(l.movies) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
}

// View renders at most height rows, scrolled so the selection is visible.
func (l movieList) View(f frame, width, height int, bgColor string) string {
	if len(l.movies) == 0 {
		return ""
	}
	start := 0
	if height > 0 && l.selected >= height {
		start = l.selected - height + 1
	}
	end := len(l.movies)
	if height > 0 {
		end = min(end, start+height)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		selected := i == l.selected
		rowBg := bgColor
		if selected {
			rowBg = f.theme.SelectionBg
		}
		content := formatMovieRow(f, l.movies[i], width, rowBg, selected)
		lines = append(lines, lipgloss.NewStyle().
			Background(lipgloss.Color(rowBg)).
			Width(width).
			Render(content))
	}
	return strings.Join(lines, "\n")
}

// formatMovieRow formats one row: "8.2  Title · 1999".
// Selected rows use SelectionText for every part to keep contrast.
func formatMovieRow(f frame, m tmdb.Movie, width int, bgColor string, selected bool) string {
	bg := NewBgStyle(bgColor)

	rating := m.Rating()
	year := m.Year()
	titleWidth := max(width-len(rating)-len(year)-7, 10)

	var ratingStyle, titleStyle, sepStyle, yearStyle lipgloss.Style
	if selected {
		selText := lipgloss.NewStyle().Foreground(lipgloss.Color(f.theme.SelectionText))
		ratingStyle, titleStyle, sepStyle, yearStyle = selText.Bold(true), selText, selText, selText
	} else {
		ratingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(f.styles.RatingColor(m.VoteAverage))).Bold(true)
		titleStyle = f.styles.Text
		sepStyle = f.styles.FaintText
		yearStyle = f.styles.MutedText
	}

	return bg.Space() +
		bg.Render(fmt.Sprintf("%4s", rating), ratingStyle) + bg.Spaces(2) +
		bg.Render(truncate(m.Title, titleWidth), titleStyle) +
		bg.Render(" · ", sepStyle) +
		bg.Render(year, yearStyle)
}
