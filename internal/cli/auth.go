package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/five82/marquee/internal/app"
	"github.com/five82/marquee/internal/credentials"
)

func newAuthCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the TMDB API key",
		Long:  "Store, remove or inspect the TMDB API key. The key is kept in the system keyring when one is available.",
	}

	cmd.AddCommand(
		newAuthLoginCmd(),
		newAuthLogoutCmd(),
		newAuthStatusCmd(flags),
	)
	return cmd
}

func credentialStore() *credentials.Store {
	return credentials.NewStore(app.CredentialsDir())
}

func newAuthLoginCmd() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a TMDB API key",
		Long: `Store a TMDB API key (v3) or read access token (v4).

Without --key the key is prompted for on a terminal, or read from the
first line of stdin otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(key) == "" {
				var err error
				key, err = promptKey(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}
			store := credentialStore()
			if err := store.Save(key); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "API key saved to %s\n", store.Location())
			return nil
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "API key to store")
	return cmd
}

// promptKey asks for the key with a masked input on a terminal and reads a
// line from in otherwise.
func promptKey(in io.Reader) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(f.Fd()) {
		var key string
		input := huh.NewInput().
			Title("TMDB API key").
			Description("Find it at https://www.themoviedb.org/settings/api").
			EchoMode(huh.EchoModePassword).
			Value(&key).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("key is required")
				}
				return nil
			})
		if err := huh.NewForm(huh.NewGroup(input)).Run(); err != nil {
			return "", fmt.Errorf("read api key: %w", err)
		}
		return strings.TrimSpace(key), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read api key: %w", err)
	}
	key := strings.TrimSpace(line)
	if key == "" {
		return "", errors.New("no api key given")
	}
	return key, nil
}

func newAuthLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored TMDB API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := credentialStore()
			if err := store.Delete(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "API key removed from %s\n", store.Location())
			return nil
		},
	}
}

// authStatus is the JSON form of `auth status`.
type authStatus struct {
	Configured bool   `json:"configured"`
	Source     string `json:"source,omitempty"`
	Key        string `json:"key,omitempty"`
	Store      string `json:"store"`
}

func newAuthStatusCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show where the TMDB API key comes from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := credentialStore()
			status := authStatus{Store: store.Location()}

			cfgKey := ""
			if cfg, err := loadConfig(flags); err == nil {
				cfgKey = cfg.APIKey
			}
			key, source, err := app.ResolveAPIKey(flags.APIKey, os.Getenv, store, cfgKey)
			switch {
			case errors.Is(err, app.ErrNoAPIKey):
			case err != nil:
				return err
			default:
				status.Configured, status.Source, status.Key = true, source, maskKey(key)
			}

			p := newPrinter(cmd, flags)
			if p.json {
				return p.writeJSON(status)
			}
			if !status.Configured {
				fmt.Fprintln(p.out, "Not configured. Run `marquee auth login`.")
				return nil
			}
			fmt.Fprintf(p.out, "Key %s from %s (store: %s)\n", status.Key, status.Source, status.Store)
			return nil
		},
	}
}

// maskKey keeps the last four characters.
func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", 8) + key[len(key)-4:]
}
