// Package credentials stores the TMDB API key, preferring the system
// keyring and falling back to a 0600 file when no keyring is available.
package credentials

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/zalando/go-keyring"
)

const (
	serviceName = "marquee"
	accountName = "tmdb-api-key"
	fileName    = "credentials.toml"

	// DisableEnv skips the keyring when set to any non-empty value.
	DisableEnv = "MARQUEE_NO_KEYRING"
)

// ErrNotFound is returned when no key has been stored.
var ErrNotFound = errors.New("api key not found")

// Store reads and writes the API key.
type Store struct {
	useKeyring  bool
	fallbackDir string
}

type fileCredentials struct {
	APIKey string `toml:"api_key"`
}

// NewStore creates a credential store. The keyring is probed once; when it
// is unusable the key is kept in fallbackDir.
func NewStore(fallbackDir string) *Store {
	if os.Getenv(DisableEnv) != "" {
		return &Store{useKeyring: false, fallbackDir: fallbackDir}
	}

	probe := serviceName + "::probe"
	if err := keyring.Set(serviceName, probe, "probe"); err == nil {
		_ = keyring.Delete(serviceName, probe)
		return &Store{useKeyring: true, fallbackDir: fallbackDir}
	}
	return &Store{useKeyring: false, fallbackDir: fallbackDir}
}

// UsingKeyring reports whether the store is backed by the system keyring.
func (s *Store) UsingKeyring() bool {
	return s.useKeyring
}

// Location describes where the key lives, for status output.
func (s *Store) Location() string {
	if s.useKeyring {
		return "system keyring"
	}
	return s.path()
}

// Load returns the stored key or ErrNotFound.
func (s *Store) Load() (string, error) {
	if s.useKeyring {
		key, err := keyring.Get(serviceName, accountName)
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		if err != nil {
			return "", fmt.Errorf("read keyring: %w", err)
		}
		return strings.TrimSpace(key), nil
	}

	data, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("read credentials: %w", err)
	}
	var creds fileCredentials
	if err := toml.Unmarshal(data, &creds); err != nil {
		return "", fmt.Errorf("parse credentials: %w", err)
	}
	key := strings.TrimSpace(creds.APIKey)
	if key == "" {
		return "", ErrNotFound
	}
	return key, nil
}

// Save stores key, replacing any previous value.
func (s *Store) Save(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("api key is empty")
	}
	if s.useKeyring {
		if err := keyring.Set(serviceName, accountName, key); err != nil {
			return fmt.Errorf("write keyring: %w", err)
		}
		return nil
	}

	if err := os.MkdirAll(s.fallbackDir, 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	data, err := toml.Marshal(fileCredentials{APIKey: key})
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}
	tmp, err := os.CreateTemp(s.fallbackDir, "credentials-*.toml.tmp")
	if err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := os.Rename(tmpPath, s.path()); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// Delete removes the stored key. Deleting a missing key is not an error.
func (s *Store) Delete() error {
	if s.useKeyring {
		err := keyring.Delete(serviceName, accountName)
		if err != nil && !errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("delete keyring entry: %w", err)
		}
		return nil
	}
	if err := os.Remove(s.path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete credentials: %w", err)
	}
	return nil
}

func (s *Store) path() string {
	return filepath.Join(s.fallbackDir, fileName)
}
