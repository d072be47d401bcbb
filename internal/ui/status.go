package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/resource"
)

// renderState renders a resource snapshot. Ready delegates to ready; the
// other phases render a centered placeholder.
func renderState[K comparable, T any](f frame, st resource.State[K, T], what string, ready func(T) string) string {
	switch st.Phase {
	case resource.Ready:
		return ready(st.Value)
	case resource.Loading:
		msg := f.styles.AccentText.Render(f.spinner) + " " + f.styles.MutedText.Render("Loading "+what+"...")
		return lipgloss.Place(f.width, f.height, lipgloss.Center, lipgloss.Center, msg)
	case resource.Failed:
		return renderFailure(f, what, st.Failure)
	default:
		return ""
	}
}

// renderFailure renders the error affordance. Every failure kind renders
// the same way; the kind only reaches the log.
func renderFailure(f frame, what string, failure *resource.Failure) string {
	lines := []string{
		f.styles.DangerText.Render("Failed to load " + what + "."),
	}
	if failure != nil && failure.Message != "" {
		lines = append(lines, f.styles.MutedText.Render(truncate(failure.Message, max(f.width-4, 20))))
	}
	lines = append(lines, "",
		f.styles.AccentText.Render(f.keys.Retry.Help().Key)+f.styles.MutedText.Render(" retry")+
			f.styles.FaintText.Render("  ·  ")+
			f.styles.AccentText.Render(f.keys.Back.Help().Key)+f.styles.MutedText.Render(" back"))
	block := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.Place(f.width, f.height, lipgloss.Center, lipgloss.Center, block)
}

// renderEmpty renders a centered muted message.
func renderEmpty(f frame, msg string) string {
	return lipgloss.Place(f.width, f.height, lipgloss.Center, lipgloss.Center, f.styles.MutedText.Render(msg))
}

// renderTitledBox renders content in a box with the title embedded in the top border.
// ┌─── Title ───┐
func renderTitledBox(t Theme, title, content string, width, height int, focused bool) string {
	var borderColorStr, bgColorStr string
	if focused {
		borderColorStr = t.BorderFocus
		bgColorStr = t.FocusBg
	} else {
		borderColorStr = t.Border
		bgColorStr = t.SurfaceAlt
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Text))

	innerWidth := max(width-2, 0)
	title = truncate(title, max(innerWidth-4, 1))
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Background(lipgloss.Color(bgColorStr))
	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	lines := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		lines = append(lines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(lines, "\n") + "\n" + bottomBorder
}
