package secrets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("  s3cret \n"), 0o600); err != nil {
		t.Fatalf("write secret: %v", err)
	}

	got, err := Load(Source{Name: "gemini api key", File: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "s3cret" {
		t.Fatalf("expected trimmed secret, got %q", got)
	}
}

func TestLoadFilePrecedesEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("from-file"), 0o600); err != nil {
		t.Fatalf("write secret: %v", err)
	}
	t.Setenv("AIREADY_TEST_SECRET", "from-env")

	got, err := Load(Source{File: path, Env: "AIREADY_TEST_SECRET"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from-file" {
		t.Fatalf("expected file to win, got %q", got)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("AIREADY_TEST_SECRET", " from-env ")

	got, err := Load(Source{Env: "AIREADY_TEST_SECRET"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from-env" {
		t.Fatalf("expected env secret, got %q", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(Source{Name: "gemini api key"}); err == nil {
		t.Fatalf("expected error when nothing is configured")
	}

	empty := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(empty, []byte("  \n"), 0o600); err != nil {
		t.Fatalf("write secret: %v", err)
	}
	if _, err := Load(Source{File: empty}); err == nil {
		t.Fatalf("expected error for empty secret file")
	}

	if _, err := Load(Source{File: filepath.Join(t.TempDir(), "absent")}); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
