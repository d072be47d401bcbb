package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRead(t *testing.T) {
	// Create a temporary log file
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	// Write 10 lines of content
	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "read all (0)",
			maxLines: 0,
			expected: expectedAll,
		},
		{
			name:     "read all (negative)",
			maxLines: -1,
			expected: expectedAll,
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil || got != nil {
		t.Fatalf("Read() = %v, %v; want nil, nil", got, err)
	}
}

// plainPalette renders without escapes so output can be compared directly.
func plainPalette() Palette {
	s := lipgloss.NewStyle()
	return Palette{Time: s, Key: s, Msg: s, Debug: s, Info: s, Warn: s, Error: s}
}

func TestColorizeLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty line",
			input:    "",
			expected: "",
		},
		{
			name:     "foreign format",
			input:    "2025-10-08 21:01:05 INFO something",
			expected: "2025-10-08 21:01:05 INFO something",
		},
		{
			name:     "quoted message with attrs",
			input:    `time=2026-01-02T15:04:05.000Z level=INFO msg="tmdb request" path=/movie/42 status=200`,
			expected: `2026-01-02T15:04:05.000Z INFO  tmdb request path=/movie/42 status=200`,
		},
		{
			name:     "bare message",
			input:    `time=2026-01-02T15:04:05.000Z level=DEBUG msg=stale`,
			expected: `2026-01-02T15:04:05.000Z DEBUG stale`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ColorizeLine(tt.input, plainPalette())
			if result != tt.expected {
				t.Errorf("ColorizeLine() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestColorizeLines_PicksLevelStyle(t *testing.T) {
	p := plainPalette()
	p.Error = lipgloss.NewStyle().SetString("!")

	lines := ColorizeLines([]string{
		`time=t level=ERROR msg=boom`,
		`time=t level=WARN msg=hmm`,
	}, p)
	if len(lines) != 2 {
		t.Fatalf("ColorizeLines returned %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "!") {
		t.Errorf("error line not styled with Error style: %q", lines[0])
	}
	if strings.Contains(lines[1], "!") {
		t.Errorf("warn line styled with Error style: %q", lines[1])
	}
}
