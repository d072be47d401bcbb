// Package pages holds marquee's static informational pages and renders
// them as terminal markdown.
package pages

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

const (
	// ContactEmail is shown on the contact and DMCA pages.
	ContactEmail = "support@marquee.example"

	lastUpdated = "October 1, 2026"
)

//go:embed content/*.md
var content embed.FS

// Page describes one static page.
type Page struct {
	Slug  string
	Title string
}

// Route returns the page's route path.
func (p Page) Route() string {
	return "/" + p.Slug
}

var all = []Page{
	{Slug: "about", Title: "About"},
	{Slug: "contact", Title: "Contact"},
	{Slug: "privacy", Title: "Privacy Policy"},
	{Slug: "terms", Title: "Terms of Service"},
	{Slug: "dmca", Title: "DMCA"},
}

// All returns every page in menu order.
func All() []Page {
	out := make([]Page, len(all))
	copy(out, all)
	return out
}

// Lookup finds a page by slug, case-insensitively.
func Lookup(slug string) (Page, bool) {
	slug = strings.ToLower(strings.Trim(strings.TrimSpace(slug), "/"))
	for _, p := range all {
		if p.Slug == slug {
			return p, true
		}
	}
	return Page{}, false
}

// Related returns the pages linked from the bottom of p.
func Related(p Page) []Page {
	out := make([]Page, 0, len(all)-1)
	for _, other := range all {
		if other.Slug != p.Slug {
			out = append(out, other)
		}
	}
	return out
}

// Markdown returns the page source with placeholders filled in.
func Markdown(slug string) (string, error) {
	p, ok := Lookup(slug)
	if !ok {
		return "", fmt.Errorf("unknown page %q", slug)
	}
	raw, err := content.ReadFile("content/" + p.Slug + ".md")
	if err != nil {
		return "", fmt.Errorf("read page %s: %w", p.Slug, err)
	}
	r := strings.NewReplacer("{{email}}", ContactEmail, "{{updated}}", lastUpdated)
	return r.Replace(string(raw)), nil
}

// Render renders a page for a terminal of the given width. style is a
// glamour standard style name such as "dark", "light" or "notty".
func Render(slug string, width int, style string) (string, error) {
	md, err := Markdown(slug)
	if err != nil {
		return "", err
	}
	if width <= 0 {
		width = 80
	}
	if style == "" {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render page %s: %w", slug, err)
	}
	return strings.TrimSpace(out), nil
}
