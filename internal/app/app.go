package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/credentials"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/tmdb"
	"github.com/five82/marquee/internal/ui"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// Environment variables consulted for the API key, in order.
const (
	EnvAPIKey     = "MARQUEE_API_KEY"
	EnvTMDBAPIKey = "TMDB_API_KEY"
)

// ErrNoAPIKey is returned when no source provides a TMDB key.
var ErrNoAPIKey = errors.New("no TMDB API key configured: run `marquee auth login` or set " + EnvAPIKey)

// Options configure a marquee session.
type Options struct {
	ConfigPath string // empty uses ~/.config/marquee/config.toml
	PrefsPath  string // empty uses ~/.config/marquee/prefs.toml
	APIKey     string // overrides every other key source
	StartRoute string // TUI only, e.g. "/movie/550"
}

// Session holds everything a command needs to talk to TMDB.
type Session struct {
	Config    config.Config
	Client    *tmdb.Client
	Logger    *slog.Logger
	Prefs     prefs.Prefs
	PrefsPath string
	KeySource string

	logFile io.Closer
}

// Open loads configuration, resolves the API key and builds the client.
func Open(opts Options) (*Session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, logFile, err := NewLogger(cfg.LogPath(), cfg.SlogLevel())
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	key, source, err := ResolveAPIKey(opts.APIKey, os.Getenv, lazyStore{}, cfg.APIKey)
	if err != nil {
		_ = logFile.Close()
		return nil, err
	}

	client, err := tmdb.NewClient(tmdb.Options{
		APIKey:       key,
		BaseURL:      cfg.APIBaseURL,
		ImageBaseURL: cfg.ImageBaseURL,
		Language:     cfg.Language,
		Timeout:      cfg.RequestTimeout,
		UserAgent:    "marquee/" + Version,
		Logger:       logger,
	})
	if err != nil {
		_ = logFile.Close()
		return nil, fmt.Errorf("init tmdb client: %w", err)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, _ := prefs.Load(prefsPath)

	logger.Debug("session opened", "key_source", source, "api", cfg.APIBaseURL, "language", cfg.Language)
	return &Session{
		Config:    cfg,
		Client:    client,
		Logger:    logger,
		Prefs:     userPrefs,
		PrefsPath: prefsPath,
		KeySource: source,
		logFile:   logFile,
	}, nil
}

// Close flushes and closes the log file.
func (s *Session) Close() error {
	if s == nil || s.logFile == nil {
		return nil
	}
	return s.logFile.Close()
}

// Run boots the TUI until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	sess, err := Open(opts)
	if err != nil {
		return err
	}
	defer func() { _ = sess.Close() }()

	sess.Logger.Info("marquee starting", "version", Version, "route", opts.StartRoute)
	err = ui.Run(ui.Options{
		Context:      ctx,
		Fetcher:      sess.Client,
		ImageBaseURL: sess.Config.ImageBaseURL,
		ThemeName:    sess.Prefs.Theme,
		Prefs:        &sess.Prefs,
		PrefsPath:    sess.PrefsPath,
		Logger:       sess.Logger,
		StartRoute:   opts.StartRoute,
	})
	if err != nil && !errors.Is(ctx.Err(), context.Canceled) {
		sess.Logger.Error("ui exited with error", "error", err)
		return err
	}
	sess.Logger.Info("marquee stopped")
	return nil
}

// KeyLoader is a stored key source such as the OS keyring.
type KeyLoader interface {
	Load() (string, error)
}

// ResolveAPIKey picks the key from, in order: the flag value, the
// environment, the credential store, then the config file. It returns the
// key and a short name for where it came from.
func ResolveAPIKey(flagValue string, getenv func(string) string, stored KeyLoader, configValue string) (string, string, error) {
	if key := strings.TrimSpace(flagValue); key != "" {
		return key, "flag", nil
	}
	for _, name := range []string{EnvAPIKey, EnvTMDBAPIKey} {
		if key := strings.TrimSpace(getenv(name)); key != "" {
			return key, "env " + name, nil
		}
	}
	if stored != nil {
		key, err := stored.Load()
		switch {
		case err == nil && strings.TrimSpace(key) != "":
			return strings.TrimSpace(key), "credentials", nil
		case err != nil && !errors.Is(err, credentials.ErrNotFound):
			return "", "", fmt.Errorf("read stored api key: %w", err)
		}
	}
	if key := strings.TrimSpace(configValue); key != "" {
		return key, "config", nil
	}
	return "", "", ErrNoAPIKey
}

// CredentialsDir is where the file fallback for the API key lives.
func CredentialsDir() string {
	path, err := config.ExpandPath(config.DefaultPath())
	if err != nil {
		return filepath.Dir(config.DefaultPath())
	}
	return filepath.Dir(path)
}

// lazyStore opens the credential store on first use so a flag or env key
// never touches the keyring.
type lazyStore struct{}

func (lazyStore) Load() (string, error) {
	return credentials.NewStore(CredentialsDir()).Load()
}

// NewLogger opens path for appending and returns a text slog logger writing
// to it. The TUI owns the terminal, so logs never go to stderr.
func NewLogger(path string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(handler), f, nil
}
