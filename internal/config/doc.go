// Package config loads marquee's TOML configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/marquee/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or blank, use defaults
//
// # TOML Format
//
//	api_key = "..."
//	api_base_url = "https://api.themoviedb.org/3"
//	image_base_url = "https://image.tmdb.org/t/p"
//	language = "en-US"
//	request_timeout_seconds = 10
//	log_file = "~/.local/state/marquee/marquee.log"
//	log_level = "info"
//
// Every field is optional. Values are trimmed and log_file is tilde
// expanded.
//
// The api_key field is the lowest-precedence source for the TMDB key; the
// command line flag, the MARQUEE_API_KEY and TMDB_API_KEY environment
// variables and the OS keyring all win over it. That resolution lives in
// the app package.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and TOML parse errors. A missing file is not an error.
package config
