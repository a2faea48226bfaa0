package env

import (
	"os"
	"path/filepath"
	"testing"
)

func TestToken(t *testing.T) {
	t.Setenv(TokenVar, "abc123")
	if got := Token(); got != "abc123" {
		t.Errorf("Token() = %q, want %q", got, "abc123")
	}
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	if err := os.WriteFile(file, []byte("GH_TOKEN=from-file\nDUOSERVE_TEST_EXTRA=1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Run("loads unset variables", func(t *testing.T) {
		t.Setenv(TokenVar, "")
		_ = os.Unsetenv(TokenVar)
		t.Setenv("DUOSERVE_TEST_EXTRA", "")
		_ = os.Unsetenv("DUOSERVE_TEST_EXTRA")

		if err := LoadDotenv(file); err != nil {
			t.Fatalf("LoadDotenv() error = %v", err)
		}
		if got := Token(); got != "from-file" {
			t.Errorf("Token() = %q, want %q", got, "from-file")
		}
	})

	t.Run("keeps existing variables", func(t *testing.T) {
		t.Setenv(TokenVar, "from-env")

		if err := LoadDotenv(file); err != nil {
			t.Fatalf("LoadDotenv() error = %v", err)
		}
		if got := Token(); got != "from-env" {
			t.Errorf("Token() = %q, want %q", got, "from-env")
		}
	})

	t.Run("missing file is skipped", func(t *testing.T) {
		if err := LoadDotenv(filepath.Join(dir, "missing.env")); err != nil {
			t.Errorf("LoadDotenv() error = %v, want nil", err)
		}
	})
}
