package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeNames(t *testing.T) {
	assert.Equal(t, []string{"Nightfox", "Kanagawa", "Slate"}, ThemeNames())
}

func TestNextTheme(t *testing.T) {
	assert.Equal(t, "Kanagawa", NextTheme("Nightfox"))
	assert.Equal(t, "Slate", NextTheme("Kanagawa"))
	assert.Equal(t, "Nightfox", NextTheme("Slate"))
	assert.Equal(t, "Nightfox", NextTheme("Unknown"))
}

func TestGetTheme_FallsBackToNightfox(t *testing.T) {
	assert.Equal(t, "Slate", GetTheme("Slate").Name)
	assert.Equal(t, "Nightfox", GetTheme("Dracula").Name)
}

func TestThemesDefineMarkdownStyle(t *testing.T) {
	for _, name := range ThemeNames() {
		assert.NotEmpty(t, GetTheme(name).MarkdownStyle, name)
	}
}

func TestRatingColor_Thresholds(t *testing.T) {
	th := GetTheme("Nightfox")
	s := th.Styles()

	assert.Equal(t, th.RatingHigh, s.RatingColor(8.2))
	assert.Equal(t, th.RatingHigh, s.RatingColor(7.5))
	assert.Equal(t, th.RatingMid, s.RatingColor(6.0))
	assert.Equal(t, th.RatingLow, s.RatingColor(5.9))
	assert.Equal(t, th.RatingLow, s.RatingColor(0))

	// WithBackground keeps rating colors
	assert.Equal(t, th.RatingMid, s.WithBackground(th.Surface).RatingColor(6.5))
}
