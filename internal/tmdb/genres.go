package tmdb

import (
	"strconv"
	"strings"
)

// Genre is a TMDB movie genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// genres is the fixed set of genres offered for browsing and filtering.
var genres = []Genre{
	{ID: 28, Name: "Action"},
	{ID: 12, Name: "Adventure"},
	{ID: 16, Name: "Animation"},
	{ID: 35, Name: "Comedy"},
	{ID: 80, Name: "Crime"},
	{ID: 18, Name: "Drama"},
	{ID: 14, Name: "Fantasy"},
	{ID: 27, Name: "Horror"},
	{ID: 10749, Name: "Romance"},
	{ID: 878, Name: "Science Fiction"},
	{ID: 53, Name: "Thriller"},
}

// Genres returns the browsable genres in display order.
func Genres() []Genre {
	out := make([]Genre, len(genres))
	copy(out, genres)
	return out
}

// GenreByID finds a browsable genre by id.
func GenreByID(id int) (Genre, bool) {
	for _, g := range genres {
		if g.ID == id {
			return g, true
		}
	}
	return Genre{}, false
}

// LookupGenre resolves a genre from an id or a case-insensitive name.
func LookupGenre(value string) (Genre, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Genre{}, false
	}
	if id, err := strconv.Atoi(trimmed); err == nil {
		return GenreByID(id)
	}
	for _, g := range genres {
		if strings.EqualFold(g.Name, trimmed) {
			return g, true
		}
	}
	return Genre{}, false
}

// GenreName returns the name for id, or "Genre" when unknown.
func GenreName(id int) string {
	if g, ok := GenreByID(id); ok {
		return g.Name
	}
	return "Genre"
}

// AdjacentGenre steps through the browsable genres, wrapping at both ends.
// An unknown id starts from the first genre.
func AdjacentGenre(id, step int) Genre {
	idx := -1
	for i, g := range genres {
		if g.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return genres[0]
	}
	n := len(genres)
	return genres[((idx+step)%n+n)%n]
}
