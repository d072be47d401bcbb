package credentials

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/zalando/go-keyring"
)

func TestStore_KeyringRoundTrip(t *testing.T) {
	keyring.MockInit()
	t.Setenv(DisableEnv, "")

	s := NewStore(t.TempDir())
	if !s.UsingKeyring() {
		t.Fatalf("UsingKeyring = false with mock keyring")
	}
	if s.Location() != "system keyring" {
		t.Fatalf("Location = %q", s.Location())
	}

	if _, err := s.Load(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load on empty keyring = %v, want ErrNotFound", err)
	}
	if err := s.Save("  abc123 "); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	key, err := s.Load()
	if err != nil || key != "abc123" {
		t.Fatalf("Load = %q, %v; want abc123", key, err)
	}
	if err := s.Delete(); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := s.Delete(); err != nil {
		t.Fatalf("second Delete returned error: %v", err)
	}
	if _, err := s.Load(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load after Delete = %v, want ErrNotFound", err)
	}
}

func TestStore_KeyringUnavailableFallsBackToFile(t *testing.T) {
	keyring.MockInitWithError(errors.New("no dbus"))
	t.Setenv(DisableEnv, "")

	s := NewStore(t.TempDir())
	if s.UsingKeyring() {
		t.Fatalf("UsingKeyring = true with failing keyring")
	}
}

func TestStore_FileFallback(t *testing.T) {
	t.Setenv(DisableEnv, "1")
	dir := filepath.Join(t.TempDir(), "marquee")

	s := NewStore(dir)
	if s.UsingKeyring() {
		t.Fatalf("UsingKeyring = true with %s set", DisableEnv)
	}
	if _, err := s.Load(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load with no file = %v, want ErrNotFound", err)
	}
	if err := s.Save(""); err == nil {
		t.Fatalf("Save(\"\") returned nil error")
	}
	if err := s.Save("file-key"); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, fileName))
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("credentials mode = %o, want 600", perm)
	}

	key, err := s.Load()
	if err != nil || key != "file-key" {
		t.Fatalf("Load = %q, %v; want file-key", key, err)
	}
	if err := s.Delete(); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := s.Load(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load after Delete = %v, want ErrNotFound", err)
	}
}
