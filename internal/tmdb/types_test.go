package tmdb

import (
	"encoding/json"
	"math"
	"testing"
)

func TestMovie_YearAndRating(t *testing.T) {
	tests := []struct {
		name       string
		movie      Movie
		wantYear   string
		wantRating string
	}{
		{"full", Movie{ReleaseDate: "1999-03-31", VoteAverage: 8.16}, "1999", "8.2"},
		{"missing date", Movie{VoteAverage: 7}, "N/A", "7.0"},
		{"bad date", Movie{ReleaseDate: "soon"}, "N/A", "0.0"},
		{"nan rating", Movie{ReleaseDate: "2024-01-02", VoteAverage: math.NaN()}, "2024", "0.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.movie.Year(); got != tt.wantYear {
				t.Fatalf("Year() = %q, want %q", got, tt.wantYear)
			}
			if got := tt.movie.Rating(); got != tt.wantRating {
				t.Fatalf("Rating() = %q, want %q", got, tt.wantRating)
			}
		})
	}
}

func TestMovie_NullPosterDecodesEmpty(t *testing.T) {
	var m Movie
	if err := json.Unmarshal([]byte(`{"id":1,"title":"A","poster_path":null}`), &m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if m.PosterPath != "" {
		t.Fatalf("PosterPath = %q, want empty", m.PosterPath)
	}
}

func TestMovieDetails_EmbedsListFields(t *testing.T) {
	var d MovieDetails
	payload := `{"id":603,"title":"The Matrix","vote_average":8.2,"release_date":"1999-03-31",
		"runtime":136,"genres":[{"id":28,"name":"Action"},{"id":878,"name":" "}],"budget":63000000}`
	if err := json.Unmarshal([]byte(payload), &d); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if d.ID != 603 || d.Title != "The Matrix" || d.Year() != "1999" {
		t.Fatalf("details = %#v, want embedded movie fields", d)
	}
	names := d.GenreNames()
	if len(names) != 1 || names[0] != "Action" {
		t.Fatalf("GenreNames = %v, want [Action]", names)
	}
}

func TestMovieDetails_Text(t *testing.T) {
	tests := []struct {
		name        string
		details     MovieDetails
		wantRuntime string
		wantBudget  string
		wantRevenue string
	}{
		{"unknown", MovieDetails{}, "", "", ""},
		{"short", MovieDetails{Runtime: 45, Budget: 950}, "45m", "$950", ""},
		{"feature", MovieDetails{Runtime: 139, Budget: 63_000_000, Revenue: 100_853_753}, "2h 19m", "$63,000,000", "$100,853,753"},
		{"padded minutes", MovieDetails{Runtime: 65}, "1h 05m", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.details.RuntimeText(); got != tt.wantRuntime {
				t.Fatalf("RuntimeText() = %q, want %q", got, tt.wantRuntime)
			}
			if got := tt.details.BudgetText(); got != tt.wantBudget {
				t.Fatalf("BudgetText() = %q, want %q", got, tt.wantBudget)
			}
			if got := tt.details.RevenueText(); got != tt.wantRevenue {
				t.Fatalf("RevenueText() = %q, want %q", got, tt.wantRevenue)
			}
		})
	}
}

func TestSearchQuery_NormalizeKeepsKeysComparable(t *testing.T) {
	a := SearchQuery{Query: " dune ", GenreID: 878}.Normalize()
	b := SearchQuery{Query: "dune", GenreID: 878}
	if a != b {
		t.Fatalf("normalized %#v != %#v", a, b)
	}
}

func TestLookupGenre(t *testing.T) {
	tests := []struct {
		in     string
		wantID int
		ok     bool
	}{
		{"28", 28, true},
		{"science fiction", 878, true},
		{"  Horror ", 27, true},
		{"99", 0, false},
		{"western", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		g, ok := LookupGenre(tt.in)
		if ok != tt.ok || g.ID != tt.wantID {
			t.Fatalf("LookupGenre(%q) = %v, %v; want %d, %v", tt.in, g, ok, tt.wantID, tt.ok)
		}
	}
}

func TestAdjacentGenreWraps(t *testing.T) {
	all := Genres()
	first, last := all[0], all[len(all)-1]

	if got := AdjacentGenre(last.ID, 1); got != first {
		t.Fatalf("next after last = %v, want %v", got, first)
	}
	if got := AdjacentGenre(first.ID, -1); got != last {
		t.Fatalf("previous before first = %v, want %v", got, last)
	}
	if got := AdjacentGenre(-5, 1); got != first {
		t.Fatalf("unknown id = %v, want %v", got, first)
	}
	if GenreName(12345) != "Genre" || GenreName(28) != "Action" {
		t.Fatalf("GenreName fallbacks wrong")
	}
}
