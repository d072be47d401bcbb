package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/marquee/internal/app"
	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/resource"
	"github.com/five82/marquee/internal/tmdb"
)

// fetch runs one load through a Resource, the same path the TUI takes, and
// returns its settled value or failure.
func fetch[K comparable, T any](ctx context.Context, sess *app.Session, name string, key K, load resource.Loader[T]) (T, error) {
	r := resource.New[K, T](ctx, name, resource.WithLogger(sess.Logger))
	if cmd := r.Request(key, load); cmd != nil {
		cmd()
	}
	st := r.State()
	if st.IsFailed() {
		var zero T
		return zero, st.Err()
	}
	return st.Value, nil
}

// withSession opens a session for the duration of fn.
func withSession(flags *globalFlags, fn func(sess *app.Session) error) error {
	sess, err := app.Open(flags.appOptions())
	if err != nil {
		return err
	}
	defer func() { _ = sess.Close() }()
	return fn(sess)
}

func newTrendingCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "trending",
		Short: "List this week's trending movies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(flags, func(sess *app.Session) error {
				movies, err := fetch(cmd.Context(), sess, "trending", "week", func(ctx context.Context) ([]tmdb.Movie, error) {
					return sess.Client.FetchTrending(ctx)
				})
				if err != nil {
					return err
				}
				return newPrinter(cmd, flags).movies("Trending This Week", movies)
			})
		},
	}
}

func newTopRatedCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "top-rated",
		Aliases: []string{"top"},
		Short:   "List the top rated movies",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(flags, func(sess *app.Session) error {
				movies, err := fetch(cmd.Context(), sess, "top-rated", "all", func(ctx context.Context) ([]tmdb.Movie, error) {
					return sess.Client.FetchTopRated(ctx)
				})
				if err != nil {
					return err
				}
				return newPrinter(cmd, flags).movies("Top Rated", movies)
			})
		},
	}
}

func newGenreCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "genre <id|name>",
		Short: "List popular movies in a genre",
		Example: `  marquee genre 28
  marquee genre "science fiction"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, ok := tmdb.LookupGenre(args[0])
			if !ok {
				return fmt.Errorf("unknown genre %q (see `marquee genres`)", args[0])
			}
			return withSession(flags, func(sess *app.Session) error {
				movies, err := fetch(cmd.Context(), sess, "genre", g.ID, func(ctx context.Context) ([]tmdb.Movie, error) {
					return catalog.LoadGenre(ctx, sess.Client, g.ID)
				})
				if err != nil {
					return err
				}
				return newPrinter(cmd, flags).movies(g.Name+" Movies", movies)
			})
		},
	}
}

func newGenresCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List the browsable genres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newPrinter(cmd, flags).genres(tmdb.Genres())
		},
	}
}

func newSearchCmd(flags *globalFlags) *cobra.Command {
	var genre string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search movies by title",
		Example: `  marquee search heat
  marquee search "the thing" --genre horror`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := tmdb.SearchQuery{Query: strings.Join(args, " ")}.Normalize()
			if q.Query == "" {
				return tmdb.ErrEmptyQuery
			}
			if genre != "" {
				g, ok := tmdb.LookupGenre(genre)
				if !ok {
					return fmt.Errorf("unknown genre %q (see `marquee genres`)", genre)
				}
				q.GenreID = g.ID
			}
			return withSession(flags, func(sess *app.Session) error {
				movies, err := fetch(cmd.Context(), sess, "search", q, func(ctx context.Context) ([]tmdb.Movie, error) {
					return catalog.Search(ctx, sess.Client, q)
				})
				if err != nil {
					return err
				}
				sess.Prefs.AddRecentSearch(q.Query)
				if err := savePrefs(sess); err != nil {
					sess.Logger.Warn("save preferences failed", "error", err)
				}
				title := fmt.Sprintf("Results for %q", q.Query)
				if q.GenreID > 0 {
					title += " in " + tmdb.GenreName(q.GenreID)
				}
				return newPrinter(cmd, flags).movies(title, movies)
			})
		},
	}

	cmd.Flags().StringVarP(&genre, "genre", "g", "", "Only keep results in this genre (id or name)")
	return cmd
}

func newMovieCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "movie <id>",
		Short: "Show a movie with its cast and crew",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid movie id %q", args[0])
			}
			return withSession(flags, func(sess *app.Session) error {
				movie, err := fetch(cmd.Context(), sess, "movie", id, func(ctx context.Context) (*catalog.Movie, error) {
					return catalog.LoadMovie(ctx, sess.Client, id)
				})
				if err != nil {
					return err
				}
				d := movie.Details
				return newPrinter(cmd, flags).movie(movie, sess.Client.PosterURL(d.PosterPath), sess.Client.BackdropURL(d.BackdropPath))
			})
		},
	}
}
