package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "marquee")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	prefsFile := filepath.Join(prefsDir, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("theme = \"Slate\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != "Slate" {
		t.Fatalf("Theme = %q, want %q", p.Theme, "Slate")
	}
}

func TestLoad_ExplicitPath(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "custom.toml")
	if err := os.WriteFile(prefsFile, []byte("theme = \"Slate\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != "Slate" {
		t.Fatalf("Theme = %q, want %q", p.Theme, "Slate")
	}
}

func TestSave_CreatesFileAndDirs(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "subdir", "prefs.toml")

	p := Prefs{Theme: "Slate"}
	if err := Save(prefsFile, p); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Theme != "Slate" {
		t.Fatalf("Theme = %q, want %q", loaded.Theme, "Slate")
	}
}

func TestLoad_EmptyThemeFallsBackToDefault(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("theme = \"\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
}

func TestLoad_InvalidTOMLFallsBackToDefault(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
}

func TestSave_RoundTripsRecentSearches(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")

	p := Prefs{Theme: "Slate"}
	p.AddRecentSearch("dune")
	p.AddRecentSearch("  blade   runner ")
	if err := Save(prefsFile, p); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(loaded.RecentSearches) != 2 || loaded.RecentSearches[0] != "blade runner" || loaded.RecentSearches[1] != "dune" {
		t.Fatalf("RecentSearches = %q, want [blade runner dune]", loaded.RecentSearches)
	}
}

func TestAddRecentSearch_DedupesAndCaps(t *testing.T) {
	var p Prefs
	p.AddRecentSearch("   ")
	if len(p.RecentSearches) != 0 {
		t.Fatalf("blank query recorded: %q", p.RecentSearches)
	}

	for i := 0; i < MaxRecentSearches+5; i++ {
		p.AddRecentSearch(fmt.Sprintf("query %d", i))
	}
	if len(p.RecentSearches) != MaxRecentSearches {
		t.Fatalf("len = %d, want %d", len(p.RecentSearches), MaxRecentSearches)
	}

	p.AddRecentSearch("QUERY 7")
	if p.RecentSearches[0] != "QUERY 7" {
		t.Fatalf("front = %q, want QUERY 7", p.RecentSearches[0])
	}
	count := 0
	for _, q := range p.RecentSearches {
		if q == "query 7" || q == "QUERY 7" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("duplicate kept: %q", p.RecentSearches)
	}
}

func TestLoad_NormalizesStoredRecentSearches(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	body := "theme = \"Slate\"\nrecent_searches = [\"Alien\", \"alien\", \"\", \"Heat\"]\n"
	if err := os.WriteFile(prefsFile, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(p.RecentSearches) != 2 || p.RecentSearches[0] != "Alien" || p.RecentSearches[1] != "Heat" {
		t.Fatalf("RecentSearches = %q, want [Alien Heat]", p.RecentSearches)
	}
}
