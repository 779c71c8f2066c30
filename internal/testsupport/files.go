package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"movieclip/internal/config"
)

// WriteConfig encodes cfg as TOML into a fresh temp directory and returns the
// file path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := cfg.Encode()
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	path := filepath.Join(t.TempDir(), "movieclip.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
