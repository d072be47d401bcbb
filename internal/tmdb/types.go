package tmdb

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const releaseDateLayout = "2006-01-02"

// Movie mirrors a list entry returned by the trending, top-rated, discover
// and search endpoints.
type Movie struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	Popularity   float64 `json:"popularity"`
	ReleaseDate  string  `json:"release_date"`
	GenreIDs     []int   `json:"genre_ids,omitempty"`
}

// Released parses ReleaseDate, returning the zero time when absent or invalid.
func (m Movie) Released() time.Time {
	t, err := time.Parse(releaseDateLayout, strings.TrimSpace(m.ReleaseDate))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Year returns the release year or "N/A".
func (m Movie) Year() string {
	t := m.Released()
	if t.IsZero() {
		return "N/A"
	}
	return fmt.Sprintf("%d", t.Year())
}

// Rating formats VoteAverage with one decimal, "0.0" for invalid values.
func (m Movie) Rating() string {
	if math.IsNaN(m.VoteAverage) || math.IsInf(m.VoteAverage, 0) {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", m.VoteAverage)
}

// HasGenre reports whether the list entry is tagged with genreID.
func (m Movie) HasGenre(genreID int) bool {
	for _, id := range m.GenreIDs {
		if id == genreID {
			return true
		}
	}
	return false
}

// MovieDetails mirrors /movie/{id}.
type MovieDetails struct {
	Movie
	Tagline          string  `json:"tagline"`
	Runtime          int     `json:"runtime"`
	Status           string  `json:"status"`
	Genres           []Genre `json:"genres"`
	Budget           int64   `json:"budget"`
	Revenue          int64   `json:"revenue"`
	Homepage         string  `json:"homepage"`
	IMDBID           string  `json:"imdb_id"`
	OriginalLanguage string  `json:"original_language"`
	OriginalTitle    string  `json:"original_title"`
}

// GenreNames returns the detail genres as display names.
func (d MovieDetails) GenreNames() []string {
	names := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		if name := strings.TrimSpace(g.Name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// RuntimeText renders the runtime as "2h 16m", or "45m" under an hour.
// It is empty when TMDB has no runtime.
func (d MovieDetails) RuntimeText() string {
	switch {
	case d.Runtime <= 0:
		return ""
	case d.Runtime < 60:
		return fmt.Sprintf("%dm", d.Runtime)
	default:
		return fmt.Sprintf("%dh %02dm", d.Runtime/60, d.Runtime%60)
	}
}

// BudgetText renders the budget in whole dollars, or "" when unknown.
func (d MovieDetails) BudgetText() string { return dollars(d.Budget) }

// RevenueText renders the revenue in whole dollars, or "" when unknown.
func (d MovieDetails) RevenueText() string { return dollars(d.Revenue) }

// dollars formats an amount with separators. TMDB reports unknown budgets
// and revenues as zero.
func dollars(amount int64) string {
	if amount <= 0 {
		return ""
	}
	return "$" + humanize.Comma(amount)
}

// CastMember mirrors an entry of credits.cast.
type CastMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

// CrewMember mirrors an entry of credits.crew.
type CrewMember struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

// Credits mirrors /movie/{id}/credits.
type Credits struct {
	ID   int          `json:"id"`
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// SearchQuery is the comparable key of a title search.
type SearchQuery struct {
	Query   string
	GenreID int // zero means all genres
}

// Normalize trims the query text.
func (q SearchQuery) Normalize() SearchQuery {
	q.Query = strings.TrimSpace(q.Query)
	return q
}

// listResponse is the paged envelope shared by list endpoints. Results is a
// pointer so a missing array can be told apart from an empty one.
type listResponse struct {
	Page         int      `json:"page"`
	Results      *[]Movie `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

type creditsResponse struct {
	ID   int           `json:"id"`
	Cast *[]CastMember `json:"cast"`
	Crew *[]CrewMember `json:"crew"`
}

// errorResponse is the envelope TMDB returns with non-2xx statuses.
type errorResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}

func (r listResponse) movies(path string) ([]Movie, error) {
	if r.Results == nil {
		return nil, &ParseError{Path: path, Field: "results"}
	}
	movies := *r.Results
	for i, m := range movies {
		if err := validateMovie(path, m); err != nil {
			return nil, fmt.Errorf("result %d: %w", i, err)
		}
	}
	return movies, nil
}

func (r creditsResponse) credits(path string) (*Credits, error) {
	if r.Cast == nil {
		return nil, &ParseError{Path: path, Field: "cast"}
	}
	if r.Crew == nil {
		return nil, &ParseError{Path: path, Field: "crew"}
	}
	return &Credits{ID: r.ID, Cast: *r.Cast, Crew: *r.Crew}, nil
}

func validateMovie(path string, m Movie) error {
	if m.ID <= 0 {
		return &ParseError{Path: path, Field: "id"}
	}
	if strings.TrimSpace(m.Title) == "" {
		return &ParseError{Path: path, Field: "title"}
	}
	return nil
}
