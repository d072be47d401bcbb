package ui

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// truncateMiddle shortens a string by removing characters from the middle,
// keeping more of the end. Used for URLs where the file name matters.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 5 {
		return string(runes[:limit])
	}
	suffix := (limit - 1) * 2 / 3
	prefix := limit - 1 - suffix
	return string(runes[:prefix]) + "…" + string(runes[len(runes)-suffix:])
}

// orNA substitutes "N/A" for an unknown value.
func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

// formatCount renders a count with separators.
func formatCount(n int) string {
	return humanize.Comma(int64(n))
}

// formatCompact renders large numbers compactly ("1.2M") for narrow layouts.
func formatCompact(amount int64) string {
	if amount <= 0 {
		return "N/A"
	}
	value, suffix := humanize.ComputeSI(float64(amount))
	return "$" + humanize.FtoaWithDigits(value, 1) + suffix
}

// joinNonEmpty joins the non-blank parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
