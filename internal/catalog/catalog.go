// Package catalog composes TMDB calls into the payloads marquee screens
// render. Loaders that need more than one endpoint fetch them concurrently.
package catalog

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/five82/marquee/internal/tmdb"
)

// CastLimit caps the cast shown on a movie page.
const CastLimit = 10

// featuredJobs are the crew roles listed on a movie page, in display order.
var featuredJobs = []string{
	"Director",
	"Producer",
	"Screenplay",
	"Writer",
	"Director of Photography",
}

// Home holds both home page sections.
type Home struct {
	Trending []tmdb.Movie `json:"trending"`
	TopRated []tmdb.Movie `json:"top_rated"`
}

// Movie is everything the movie page renders.
type Movie struct {
	Details tmdb.MovieDetails `json:"details"`
	Cast    []tmdb.CastMember `json:"cast"`
	Crew    []tmdb.CrewMember `json:"crew"`
}

// LoadHome fetches trending and top-rated movies in parallel. Either
// failing fails the whole page.
func LoadHome(ctx context.Context, f tmdb.Fetcher) (Home, error) {
	var home Home
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		movies, err := f.FetchTrending(ctx)
		if err != nil {
			return fmt.Errorf("trending: %w", err)
		}
		home.Trending = movies
		return nil
	})
	g.Go(func() error {
		movies, err := f.FetchTopRated(ctx)
		if err != nil {
			return fmt.Errorf("top rated: %w", err)
		}
		home.TopRated = movies
		return nil
	})
	if err := g.Wait(); err != nil {
		return Home{}, err
	}
	return home, nil
}

// LoadMovie fetches details and credits in parallel and trims the credits
// to the featured cast and crew.
func LoadMovie(ctx context.Context, f tmdb.Fetcher, id int) (*Movie, error) {
	var (
		details *tmdb.MovieDetails
		credits *tmdb.Credits
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := f.FetchMovie(ctx, id)
		if err != nil {
			return fmt.Errorf("movie %d: %w", id, err)
		}
		details = d
		return nil
	})
	g.Go(func() error {
		c, err := f.FetchCredits(ctx, id)
		if err != nil {
			return fmt.Errorf("credits %d: %w", id, err)
		}
		credits = c
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &Movie{
		Details: *details,
		Cast:    TopCast(credits.Cast, CastLimit),
		Crew:    FeaturedCrew(credits.Crew),
	}, nil
}

// LoadGenre fetches the popular movies for a genre.
func LoadGenre(ctx context.Context, f tmdb.Fetcher, genreID int) ([]tmdb.Movie, error) {
	movies, err := f.FetchByGenre(ctx, genreID)
	if err != nil {
		return nil, fmt.Errorf("genre %d: %w", genreID, err)
	}
	return movies, nil
}

// Search runs a title search, optionally restricted to one genre.
func Search(ctx context.Context, f tmdb.Fetcher, query tmdb.SearchQuery) ([]tmdb.Movie, error) {
	movies, err := f.SearchMovies(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query.Query, err)
	}
	return movies, nil
}

// TopCast returns at most limit cast members in billing order.
func TopCast(cast []tmdb.CastMember, limit int) []tmdb.CastMember {
	sorted := slices.Clone(cast)
	slices.SortStableFunc(sorted, func(a, b tmdb.CastMember) int {
		return a.Order - b.Order
	})
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// FeaturedCrew keeps the crew whose job is one of the featured roles,
// preserving API order.
func FeaturedCrew(crew []tmdb.CrewMember) []tmdb.CrewMember {
	out := make([]tmdb.CrewMember, 0, len(crew))
	for _, member := range crew {
		if slices.Contains(featuredJobs, member.Job) {
			out = append(out, member)
		}
	}
	return out
}
