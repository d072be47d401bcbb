package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Read returns at most maxLines from the end of the file at path. A
// maxLines of zero or less returns every line.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Palette holds the styles used to highlight slog text lines.
type Palette struct {
	Time  lipgloss.Style
	Key   lipgloss.Style
	Msg   lipgloss.Style
	Debug lipgloss.Style
	Info  lipgloss.Style
	Warn  lipgloss.Style
	Error lipgloss.Style
}

// DefaultPalette matches the level colors of the TUI's default theme.
func DefaultPalette() Palette {
	return Palette{
		Time:  lipgloss.NewStyle().Foreground(lipgloss.Color("#738091")),
		Key:   lipgloss.NewStyle().Foreground(lipgloss.Color("#71839b")),
		Msg:   lipgloss.NewStyle().Foreground(lipgloss.Color("#cdcecf")),
		Debug: lipgloss.NewStyle().Foreground(lipgloss.Color("#63cdcf")).Bold(true),
		Info:  lipgloss.NewStyle().Foreground(lipgloss.Color("#81b29a")).Bold(true),
		Warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("#dbc074")).Bold(true),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("#c94f6d")).Bold(true),
	}
}

// slog's text handler writes time=... level=... msg=... followed by attrs.
var linePattern = regexp.MustCompile(`^time=(\S+) level=(\S+) msg=("(?:[^"\\]|\\.)*"|\S+)(.*)$`)

// ColorizeLine highlights one slog text line. Lines in any other format are
// returned unchanged.
func ColorizeLine(line string, p Palette) string {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return line
	}
	var b strings.Builder
	b.WriteString(p.Time.Render(m[1]))
	b.WriteByte(' ')
	b.WriteString(p.levelStyle(m[2]).Render(fmt.Sprintf("%-5s", m[2])))
	b.WriteByte(' ')
	b.WriteString(p.Msg.Render(strings.Trim(m[3], `"`)))
	if rest := strings.TrimSpace(m[4]); rest != "" {
		b.WriteByte(' ')
		b.WriteString(p.Key.Render(rest))
	}
	return b.String()
}

// ColorizeLines applies ColorizeLine to every line.
func ColorizeLines(lines []string, p Palette) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = ColorizeLine(line, p)
	}
	return out
}

func (p Palette) levelStyle(level string) lipgloss.Style {
	switch {
	case strings.HasPrefix(level, "DEBUG"):
		return p.Debug
	case strings.HasPrefix(level, "WARN"):
		return p.Warn
	case strings.HasPrefix(level, "ERROR"):
		return p.Error
	default:
		return p.Info
	}
}
