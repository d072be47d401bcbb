package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/five82/marquee/internal/app"
	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/logtail"
	"github.com/five82/marquee/internal/pages"
	"github.com/five82/marquee/internal/prefs"
)

func loadConfig(flags *globalFlags) (config.Config, error) {
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func savePrefs(sess *app.Session) error {
	return prefs.Save(sess.PrefsPath, sess.Prefs)
}

// isTerminal reports whether the command writes to a terminal.
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(f.Fd())
}

func newLogsCmd(flags *globalFlags) *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the end of the marquee log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			path := cfg.LogPath()
			out, err := logtail.Read(path, lines)
			if err != nil {
				return fmt.Errorf("read log: %w", err)
			}
			if flags.JSON {
				if out == nil {
					out = []string{}
				}
				return newPrinter(cmd, flags).writeJSON(map[string]any{"path": path, "lines": out})
			}
			if len(out) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No log entries in %s\n", path)
				return nil
			}
			if isTerminal(cmd) {
				out = logtail.ColorizeLines(out, logtail.DefaultPalette())
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, "\n"))
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of lines to show (0 for all)")
	return cmd
}

func newPageCmd(flags *globalFlags) *cobra.Command {
	var style string
	slugs := make([]string, 0, len(pages.All()))
	for _, p := range pages.All() {
		slugs = append(slugs, p.Slug)
	}

	cmd := &cobra.Command{
		Use:       "page <" + strings.Join(slugs, "|") + ">",
		Short:     "Show an informational page",
		Args:      cobra.ExactArgs(1),
		ValidArgs: slugs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := pages.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown page %q (one of %s)", args[0], strings.Join(slugs, ", "))
			}
			if flags.JSON {
				md, err := pages.Markdown(p.Slug)
				if err != nil {
					return err
				}
				return newPrinter(cmd, flags).writeJSON(map[string]string{
					"slug":     p.Slug,
					"title":    p.Title,
					"markdown": md,
				})
			}
			if style == "" {
				style = "dark"
				if !isTerminal(cmd) {
					style = "notty"
				}
			}
			out, err := pages.Render(p.Slug, 80, style)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&style, "style", "", "Glamour style (dark, light, dracula, tokyo-night, notty)")
	return cmd
}

func newOpenCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "open <route>",
		Short: "Start the browser at a route",
		Example: `  marquee open /movie/550
  marquee open /genre/27
  marquee open /search`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.appOptions()
			opts.StartRoute = args[0]
			return app.Run(cmd.Context(), opts)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "marquee %s\n", app.Version)
		},
	}
}
