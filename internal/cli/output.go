package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/tmdb"
)

// printer writes command results as styled tables or JSON.
type printer struct {
	out  io.Writer
	json bool

	title  lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
	muted  lipgloss.Style
	label  lipgloss.Style
}

func newPrinter(cmd *cobra.Command, flags *globalFlags) printer {
	return printer{
		out:    cmd.OutOrStdout(),
		json:   flags.JSON,
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f4a261")),
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#71839b")).Padding(0, 1),
		cell:   lipgloss.NewStyle().Padding(0, 1),
		muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("#71839b")).Padding(0, 1),
		label:  lipgloss.NewStyle().Foreground(lipgloss.Color("#71839b")),
	}
}

func (p printer) writeJSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// table renders rows with a hidden border. Columns listed in muted use the
// muted style.
func (p printer) table(headers []string, rows [][]string, muted ...int) string {
	isMuted := make(map[int]bool, len(muted))
	for _, c := range muted {
		isMuted[c] = true
	}
	return table.New().
		Border(lipgloss.HiddenBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return p.header
			case isMuted[col]:
				return p.muted
			default:
				return p.cell
			}
		}).
		Render()
}

func (p printer) movies(title string, movies []tmdb.Movie) error {
	if p.json {
		if movies == nil {
			movies = []tmdb.Movie{}
		}
		return p.writeJSON(movies)
	}

	fmt.Fprintln(p.out, p.title.Render(fmt.Sprintf("%s (%d)", title, len(movies))))
	if len(movies) == 0 {
		fmt.Fprintln(p.out, "No movies found.")
		return nil
	}
	rows := make([][]string, 0, len(movies))
	for _, m := range movies {
		rows = append(rows, []string{
			fmt.Sprintf("%d", m.ID),
			m.Rating(),
			m.Title,
			m.Year(),
		})
	}
	fmt.Fprintln(p.out, p.table([]string{"ID", "RATING", "TITLE", "YEAR"}, rows, 0, 3))
	return nil
}

func (p printer) genres(genres []tmdb.Genre) error {
	if p.json {
		return p.writeJSON(genres)
	}
	rows := make([][]string, 0, len(genres))
	for _, g := range genres {
		rows = append(rows, []string{fmt.Sprintf("%d", g.ID), g.Name})
	}
	fmt.Fprintln(p.out, p.table([]string{"ID", "GENRE"}, rows, 0))
	return nil
}

func (p printer) movie(m *catalog.Movie, posterURL, backdropURL string) error {
	if p.json {
		return p.writeJSON(m)
	}
	d := m.Details

	fmt.Fprintln(p.out, p.title.Render(fmt.Sprintf("%s (%s)", d.Title, d.Year())))
	if tagline := strings.TrimSpace(d.Tagline); tagline != "" {
		fmt.Fprintln(p.out, p.label.Italic(true).Render(tagline))
	}
	fmt.Fprintln(p.out)

	facts := [][2]string{
		{"Rating", fmt.Sprintf("%s (%s votes)", d.Rating(), humanize.Comma(int64(d.VoteCount)))},
		{"Released", d.ReleaseDate},
		{"Runtime", d.RuntimeText()},
		{"Genres", strings.Join(d.GenreNames(), ", ")},
		{"Status", d.Status},
		{"Budget", d.BudgetText()},
		{"Revenue", d.RevenueText()},
		{"Homepage", d.Homepage},
		{"Poster", posterURL},
		{"Backdrop", backdropURL},
	}
	for _, f := range facts {
		if strings.TrimSpace(f[1]) == "" {
			continue
		}
		fmt.Fprintf(p.out, "%s %s\n", p.label.Render(fmt.Sprintf("%-9s", f[0]+":")), f[1])
	}

	if overview := strings.TrimSpace(d.Overview); overview != "" {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, lipgloss.NewStyle().Width(80).Render(overview))
	}

	if len(m.Cast) > 0 {
		rows := make([][]string, 0, len(m.Cast))
		for _, c := range m.Cast {
			rows = append(rows, []string{c.Name, c.Character})
		}
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, p.title.Render("Cast"))
		fmt.Fprintln(p.out, p.table([]string{"NAME", "CHARACTER"}, rows, 1))
	}
	if len(m.Crew) > 0 {
		rows := make([][]string, 0, len(m.Crew))
		for _, c := range m.Crew {
			rows = append(rows, []string{c.Name, c.Job, c.Department})
		}
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, p.title.Render("Crew"))
		fmt.Fprintln(p.out, p.table([]string{"NAME", "ROLE", "DEPARTMENT"}, rows, 1, 2))
	}
	return nil
}
