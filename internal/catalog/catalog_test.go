package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/five82/marquee/internal/tmdb"
)

type fakeFetcher struct {
	trending   []tmdb.Movie
	topRated   []tmdb.Movie
	byGenre    map[int][]tmdb.Movie
	search     []tmdb.Movie
	details    *tmdb.MovieDetails
	credits    *tmdb.Credits
	topErr     error
	creditsErr error
}

func (f *fakeFetcher) FetchTrending(ctx context.Context) ([]tmdb.Movie, error) {
	return f.trending, nil
}

func (f *fakeFetcher) FetchTopRated(ctx context.Context) ([]tmdb.Movie, error) {
	return f.topRated, f.topErr
}

func (f *fakeFetcher) FetchByGenre(ctx context.Context, genreID int) ([]tmdb.Movie, error) {
	return f.byGenre[genreID], nil
}

func (f *fakeFetcher) SearchMovies(ctx context.Context, q tmdb.SearchQuery) ([]tmdb.Movie, error) {
	if strings.TrimSpace(q.Query) == "" {
		return nil, tmdb.ErrEmptyQuery
	}
	return f.search, nil
}

func (f *fakeFetcher) FetchMovie(ctx context.Context, id int) (*tmdb.MovieDetails, error) {
	return f.details, nil
}

func (f *fakeFetcher) FetchCredits(ctx context.Context, id int) (*tmdb.Credits, error) {
	return f.credits, f.creditsErr
}

func TestLoadHome_CombinesSections(t *testing.T) {
	f := &fakeFetcher{
		trending: []tmdb.Movie{{ID: 1, Title: "A"}},
		topRated: []tmdb.Movie{{ID: 2, Title: "B"}, {ID: 3, Title: "C"}},
	}
	home, err := LoadHome(context.Background(), f)
	if err != nil {
		t.Fatalf("LoadHome returned error: %v", err)
	}
	if len(home.Trending) != 1 || len(home.TopRated) != 2 {
		t.Fatalf("home = %#v, want 1 trending and 2 top rated", home)
	}
}

func TestLoadHome_AnySectionFailureFailsPage(t *testing.T) {
	boom := errors.New("boom")
	f := &fakeFetcher{trending: []tmdb.Movie{{ID: 1, Title: "A"}}, topErr: boom}

	home, err := LoadHome(context.Background(), f)
	if !errors.Is(err, boom) {
		t.Fatalf("LoadHome error = %v, want boom", err)
	}
	if !strings.Contains(err.Error(), "top rated") {
		t.Fatalf("LoadHome error = %q, want it to name the section", err)
	}
	if home.Trending != nil {
		t.Fatalf("LoadHome returned partial data on failure: %#v", home)
	}
}

func TestLoadMovie_TrimsCastAndFiltersCrew(t *testing.T) {
	cast := make([]tmdb.CastMember, 0, 14)
	for i := 13; i >= 0; i-- {
		cast = append(cast, tmdb.CastMember{ID: i, Name: "Actor", Order: i})
	}
	f := &fakeFetcher{
		details: &tmdb.MovieDetails{Movie: tmdb.Movie{ID: 42, Title: "Answer"}},
		credits: &tmdb.Credits{
			ID:   42,
			Cast: cast,
			Crew: []tmdb.CrewMember{
				{ID: 1, Name: "D", Job: "Director"},
				{ID: 2, Name: "G", Job: "Gaffer"},
				{ID: 3, Name: "W", Job: "Writer"},
				{ID: 4, Name: "P", Job: "Director of Photography"},
			},
		},
	}

	movie, err := LoadMovie(context.Background(), f, 42)
	if err != nil {
		t.Fatalf("LoadMovie returned error: %v", err)
	}
	if movie.Details.Title != "Answer" {
		t.Fatalf("Details = %#v, want Answer", movie.Details)
	}
	if len(movie.Cast) != CastLimit || movie.Cast[0].Order != 0 || movie.Cast[CastLimit-1].Order != CastLimit-1 {
		t.Fatalf("Cast = %#v, want first %d by billing order", movie.Cast, CastLimit)
	}
	if len(movie.Crew) != 3 {
		t.Fatalf("Crew = %#v, want Director, Writer, DoP", movie.Crew)
	}
	for _, member := range movie.Crew {
		if member.Job == "Gaffer" {
			t.Fatalf("Crew kept non-featured job: %#v", member)
		}
	}
}

func TestLoadMovie_CreditsFailureFailsPage(t *testing.T) {
	boom := errors.New("credits down")
	f := &fakeFetcher{
		details:    &tmdb.MovieDetails{Movie: tmdb.Movie{ID: 42, Title: "Answer"}},
		creditsErr: boom,
	}
	movie, err := LoadMovie(context.Background(), f, 42)
	if !errors.Is(err, boom) || movie != nil {
		t.Fatalf("LoadMovie = %v, %v; want nil, credits error", movie, err)
	}
}

func TestLoadGenreAndSearch(t *testing.T) {
	f := &fakeFetcher{
		byGenre: map[int][]tmdb.Movie{28: {{ID: 1, Title: "A"}}},
		search:  []tmdb.Movie{{ID: 2, Title: "B"}},
	}
	ctx := context.Background()

	movies, err := LoadGenre(ctx, f, 28)
	if err != nil || len(movies) != 1 {
		t.Fatalf("LoadGenre = %v, %v; want one movie", movies, err)
	}

	found, err := Search(ctx, f, tmdb.SearchQuery{Query: "b"})
	if err != nil || len(found) != 1 {
		t.Fatalf("Search = %v, %v; want one movie", found, err)
	}

	if _, err := Search(ctx, f, tmdb.SearchQuery{Query: " "}); !errors.Is(err, tmdb.ErrEmptyQuery) {
		t.Fatalf("Search error = %v, want ErrEmptyQuery", err)
	}
}

func TestTopCast_DoesNotMutateInput(t *testing.T) {
	cast := []tmdb.CastMember{{ID: 1, Order: 2}, {ID: 2, Order: 1}}
	got := TopCast(cast, 1)
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("TopCast = %#v, want id 2", got)
	}
	if cast[0].ID != 1 {
		t.Fatalf("TopCast reordered its input")
	}
}
