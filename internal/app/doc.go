// Package app is marquee's composition root.
//
// Open loads the config file, resolves the TMDB API key, opens the log file
// and builds the TMDB client. Run does that and then starts the TUI, which
// blocks until the user quits or the context is cancelled. The cli package
// uses Open directly for its one-shot commands.
//
// # API Key Resolution
//
// The first non-empty source wins:
//
//  1. the --api-key flag
//  2. MARQUEE_API_KEY, then TMDB_API_KEY
//  3. the credential store (OS keyring, or a 0600 file when no keyring is
//     available), written by `marquee auth login`
//  4. api_key in config.toml
//
// With no key at all, Open fails with ErrNoAPIKey.
//
// # Logging
//
// Logs are slog text records appended to log_file, by default
// ~/.local/state/marquee/marquee.log. Nothing is written to the terminal
// while the TUI runs. `marquee logs` prints the tail.
package app
