package app

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/marquee/internal/credentials"
)

type fakeLoader struct {
	key   string
	err   error
	calls int
}

func (f *fakeLoader) Load() (string, error) {
	f.calls++
	return f.key, f.err
}

func env(values map[string]string) func(string) string {
	return func(name string) string { return values[name] }
}

func TestResolveAPIKey_Precedence(t *testing.T) {
	stored := &fakeLoader{key: "stored"}
	tests := []struct {
		name       string
		flag       string
		env        map[string]string
		config     string
		wantKey    string
		wantSource string
	}{
		{"flag wins", " flag ", map[string]string{EnvAPIKey: "env"}, "cfg", "flag", "flag"},
		{"marquee env", "", map[string]string{EnvAPIKey: "env1", EnvTMDBAPIKey: "env2"}, "cfg", "env1", "env " + EnvAPIKey},
		{"tmdb env", "", map[string]string{EnvTMDBAPIKey: "env2"}, "cfg", "env2", "env " + EnvTMDBAPIKey},
		{"credentials", "", nil, "cfg", "stored", "credentials"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, source, err := ResolveAPIKey(tt.flag, env(tt.env), stored, tt.config)
			if err != nil {
				t.Fatalf("ResolveAPIKey returned error: %v", err)
			}
			if key != tt.wantKey || source != tt.wantSource {
				t.Fatalf("ResolveAPIKey = %q from %q, want %q from %q", key, source, tt.wantKey, tt.wantSource)
			}
		})
	}
}

func TestResolveAPIKey_SkipsStoreWhenFlagSet(t *testing.T) {
	stored := &fakeLoader{key: "stored"}
	if _, _, err := ResolveAPIKey("flag", env(nil), stored, ""); err != nil {
		t.Fatalf("ResolveAPIKey returned error: %v", err)
	}
	if stored.calls != 0 {
		t.Fatalf("store consulted %d times, want 0", stored.calls)
	}
}

func TestResolveAPIKey_FallsBackToConfig(t *testing.T) {
	stored := &fakeLoader{err: credentials.ErrNotFound}
	key, source, err := ResolveAPIKey("", env(nil), stored, " cfg ")
	if err != nil {
		t.Fatalf("ResolveAPIKey returned error: %v", err)
	}
	if key != "cfg" || source != "config" {
		t.Fatalf("ResolveAPIKey = %q from %q, want cfg from config", key, source)
	}
}

func TestResolveAPIKey_MissingNamesLoginCommand(t *testing.T) {
	_, _, err := ResolveAPIKey("", env(nil), &fakeLoader{err: credentials.ErrNotFound}, "")
	if !errors.Is(err, ErrNoAPIKey) {
		t.Fatalf("err = %v, want ErrNoAPIKey", err)
	}
	if !strings.Contains(err.Error(), "marquee auth login") {
		t.Fatalf("err = %q, want it to name the login command", err.Error())
	}
}

func TestResolveAPIKey_StoreErrorIsReported(t *testing.T) {
	_, _, err := ResolveAPIKey("", env(nil), &fakeLoader{err: errors.New("dbus down")}, "cfg")
	if err == nil || !strings.Contains(err.Error(), "dbus down") {
		t.Fatalf("err = %v, want the store error", err)
	}
}

func TestNewLogger_WritesTextRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "marquee.log")
	logger, closer, err := NewLogger(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("NewLogger returned error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("tmdb request", "path", "/movie/42", "status", 200)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record written at info level: %q", out)
	}
	if !strings.Contains(out, `level=INFO msg="tmdb request" path=/movie/42 status=200`) {
		t.Fatalf("log output = %q", out)
	}
}

func TestOpen_UsesConfigKeyAndPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvTMDBAPIKey, "")
	t.Setenv(credentials.DisableEnv, "1")

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	logPath := filepath.Join(dir, "marquee.log")
	cfg := "api_key = \"abc\"\nlog_file = \"" + filepath.ToSlash(logPath) + "\"\nlanguage = \"fr-FR\"\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	sess, err := Open(Options{ConfigPath: cfgPath, PrefsPath: filepath.Join(dir, "prefs.toml")})
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer func() { _ = sess.Close() }()

	if sess.KeySource != "config" {
		t.Fatalf("KeySource = %q, want config", sess.KeySource)
	}
	if sess.Config.Language != "fr-FR" {
		t.Fatalf("Language = %q", sess.Config.Language)
	}
	if sess.Prefs.Theme == "" {
		t.Fatalf("Prefs.Theme is empty, want default")
	}
	if _, err := os.Stat(logPath); err != nil {
		t.Fatalf("log file not created: %v", err)
	}
}

func TestOpen_NoKeyFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvTMDBAPIKey, "")
	t.Setenv(credentials.DisableEnv, "1")

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	cfg := "log_file = \"" + filepath.ToSlash(filepath.Join(dir, "m.log")) + "\"\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := Open(Options{ConfigPath: cfgPath})
	if !errors.Is(err, ErrNoAPIKey) {
		t.Fatalf("Open error = %v, want ErrNoAPIKey", err)
	}
}
