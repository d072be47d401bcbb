package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/pages"
	"github.com/five82/marquee/internal/resource"
)

// pageScreen renders an embedded markdown page. Rendering is local and
// synchronous, so the page has no resource.
type pageScreen struct {
	keys    keyMap
	page    pages.Page
	related []pages.Page
	link    int // selected related page
	vp      viewport.Model

	cachedWidth int
	cachedStyle string
	rendered    string
	renderErr   error
}

func newPageScreen(keys keyMap, p pages.Page) *pageScreen {
	return &pageScreen{
		keys:    keys,
		page:    p,
		related: pages.Related(p),
		vp:      viewport.New(0, 0),
	}
}

func (s *pageScreen) Title() string { return s.page.Title }

func (s *pageScreen) Route() Route { return Route{Kind: RoutePage, Slug: s.page.Slug} }

func (s *pageScreen) Init() tea.Cmd { return nil }

func (s *pageScreen) Close() {}

func (s *pageScreen) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, s.keys.NextSection):
		if len(s.related) > 0 {
			s.link = (s.link + 1) % len(s.related)
		}
	case key.Matches(keyMsg, s.keys.PrevSection):
		if len(s.related) > 0 {
			s.link = (s.link - 1 + len(s.related)) % len(s.related)
		}
	case key.Matches(keyMsg, s.keys.Open):
		if s.link < len(s.related) {
			return navigateCmd(Route{Kind: RoutePage, Slug: s.related[s.link].Slug})
		}
	case key.Matches(keyMsg, s.keys.Retry):
		s.cachedWidth = 0
	case key.Matches(keyMsg, s.keys.Up):
		s.vp.ScrollUp(1)
	case key.Matches(keyMsg, s.keys.Down):
		s.vp.ScrollDown(1)
	case key.Matches(keyMsg, s.keys.Top):
		s.vp.GotoTop()
	case key.Matches(keyMsg, s.keys.Bottom):
		s.vp.GotoBottom()
	case key.Matches(keyMsg, s.keys.PageUp):
		s.vp.ViewUp()
	case key.Matches(keyMsg, s.keys.PageDown):
		s.vp.ViewDown()
	case key.Matches(keyMsg, s.keys.HalfPageUp):
		s.vp.HalfViewUp()
	case key.Matches(keyMsg, s.keys.HalfPageDown):
		s.vp.HalfViewDown()
	}
	return nil
}

func (s *pageScreen) View(f frame) string {
	links := s.renderLinks(f)
	boxHeight := max(f.height-lipgloss.Height(links), 3)

	width := max(f.width-2, 1)
	if width != s.cachedWidth || f.theme.MarkdownStyle != s.cachedStyle {
		s.rendered, s.renderErr = pages.Render(s.page.Slug, width, f.theme.MarkdownStyle)
		s.cachedWidth, s.cachedStyle = width, f.theme.MarkdownStyle
		s.vp.SetContent(strings.TrimRight(s.rendered, "\n"))
	}
	if s.renderErr != nil {
		return renderFailure(f, "page", &resource.Failure{Kind: resource.KindParse, Message: s.renderErr.Error(), Err: s.renderErr})
	}

	s.vp.Width = width
	s.vp.Height = max(boxHeight-2, 1)
	box := renderTitledBox(f.theme, s.page.Title, s.vp.View(), f.width, boxHeight, true)
	return box + "\n" + links
}

func (s *pageScreen) renderLinks(f frame) string {
	bg := NewBgStyle(f.theme.Background)
	parts := make([]string, 0, len(s.related))
	for i, p := range s.related {
		style := f.styles.MutedText
		if i == s.link {
			style = f.styles.AccentText.Bold(true).Underline(true)
		}
		parts = append(parts, bg.Render(p.Title, style))
	}
	line := bg.Space() + bg.Render("See also: ", f.styles.FaintText) + bg.Join(parts, " · ")
	return bg.FillLine(line, f.width)
}

func (s *pageScreen) Commands() []command {
	return []command{
		{"j/k", "Scroll"},
		{"tab", "Next link"},
		{"enter", "Open link"},
	}
}
