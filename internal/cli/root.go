// Package cli defines marquee's command line.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/five82/marquee/internal/app"
)

// globalFlags are shared by every command.
type globalFlags struct {
	ConfigPath string
	PrefsPath  string
	APIKey     string
	JSON       bool
}

func (f *globalFlags) appOptions() app.Options {
	return app.Options{
		ConfigPath: f.ConfigPath,
		PrefsPath:  f.PrefsPath,
		APIKey:     f.APIKey,
	}
}

// NewRootCmd creates the root cobra command. With no subcommand it starts
// the TUI on the home screen.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "marquee",
		Short:         "Browse movies from The Movie Database in your terminal",
		Long:          "marquee is a terminal movie browser backed by TMDB: trending and top rated lists, genres, search and full movie details.",
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), flags.appOptions())
		},
	}

	// Allow flags anywhere in the command line
	cmd.Flags().SetInterspersed(true)
	cmd.PersistentFlags().SetInterspersed(true)

	cmd.PersistentFlags().StringVar(&flags.ConfigPath, "config", "", "Config file (default ~/.config/marquee/config.toml)")
	cmd.PersistentFlags().StringVar(&flags.PrefsPath, "prefs", "", "Preferences file (default ~/.config/marquee/prefs.toml)")
	cmd.PersistentFlags().StringVar(&flags.APIKey, "api-key", "", "TMDB API key or read access token")
	cmd.PersistentFlags().BoolVarP(&flags.JSON, "json", "j", false, "Output as JSON")

	cmd.AddCommand(
		newTrendingCmd(flags),
		newTopRatedCmd(flags),
		newGenreCmd(flags),
		newGenresCmd(flags),
		newSearchCmd(flags),
		newMovieCmd(flags),
		newPageCmd(flags),
		newAuthCmd(flags),
		newLogsCmd(flags),
		newOpenCmd(flags),
		newVersionCmd(),
	)

	return cmd
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "marquee: %v\n", err)
		return 1
	}
	return 0
}
