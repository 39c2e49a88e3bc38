package client

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Token cache: the CLI's stand-in for the browser's local storage. One
// file under the user config dir holding the bearer token.

func tokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("token cache: %w", err)
	}
	return filepath.Join(dir, "sertika", "token"), nil
}

// SaveToken persists the bearer token for later sessions.
func SaveToken(token string) error {
	path, err := tokenPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("token cache: %w", err)
	}
	if err := os.WriteFile(path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("token cache: %w", err)
	}
	return nil
}

// LoadToken reads the cached bearer token. A missing cache returns an
// empty token, not an error.
func LoadToken() (string, error) {
	path, err := tokenPath()
	if err != nil {
		return "", err
	}
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("token cache: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

// ClearToken removes the cached token, e.g. after a definitive server
// rejection.
func ClearToken() error {
	path, err := tokenPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("token cache: %w", err)
	}
	return nil
}
