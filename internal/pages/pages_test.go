package pages

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	for _, slug := range []string{"about", "/privacy", " DMCA "} {
		if _, ok := Lookup(slug); !ok {
			t.Fatalf("Lookup(%q) not found", slug)
		}
	}
	if _, ok := Lookup("faq"); ok {
		t.Fatalf("Lookup(faq) found, want missing")
	}
}

func TestMarkdown_FillsPlaceholders(t *testing.T) {
	for _, p := range All() {
		md, err := Markdown(p.Slug)
		if err != nil {
			t.Fatalf("Markdown(%s) returned error: %v", p.Slug, err)
		}
		if strings.Contains(md, "{{") {
			t.Fatalf("Markdown(%s) has unfilled placeholder", p.Slug)
		}
	}
	md, _ := Markdown("contact")
	if !strings.Contains(md, ContactEmail) {
		t.Fatalf("contact page missing email")
	}
	if _, err := Markdown("nope"); err == nil {
		t.Fatalf("Markdown(nope) returned nil error")
	}
}

func TestRelated_ExcludesCurrent(t *testing.T) {
	about, _ := Lookup("about")
	related := Related(about)
	if len(related) != len(All())-1 {
		t.Fatalf("Related len = %d, want %d", len(related), len(All())-1)
	}
	for _, p := range related {
		if p.Slug == "about" {
			t.Fatalf("Related includes the current page")
		}
	}
	if about.Route() != "/about" {
		t.Fatalf("Route = %q", about.Route())
	}
}

func TestRender_PlainStyle(t *testing.T) {
	out, err := Render("privacy", 60, "notty")
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.Contains(out, "Privacy Policy") {
		t.Fatalf("rendered output missing title:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("notty output contains escape codes")
	}
}
