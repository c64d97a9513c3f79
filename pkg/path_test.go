package pkg

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestPrefix_NotEmpty(t *testing.T) {
	if Prefix() == "" {
		t.Error("expected a non-empty prefix")
	}
}

func TestConfigDir_EndsWithPrefix(t *testing.T) {
	if base := filepath.Base(ConfigDir()); base != Prefix() {
		t.Errorf("expected config dir to end with %q, got %q", Prefix(), base)
	}
}

func TestCacheDir_EndsWithPrefix(t *testing.T) {
	if base := filepath.Base(CacheDir()); base != Prefix() {
		t.Errorf("expected cache dir to end with %q, got %q", Prefix(), base)
	}
}

func TestUserDir_FallsBackToHomeDot(t *testing.T) {
	failing := func() (string, error) {
		return "", errors.New("not available")
	}

	dir := userDir(failing, ".config")

	// Either the home fallback or, without a home, a working directory.
	if dir == "" {
		t.Fatal("expected a non-empty directory")
	}

	if strings.HasSuffix(dir, ".config") {
		return
	}

	if !filepath.IsAbs(dir) && dir != "." {
		t.Errorf("unexpected fallback directory %q", dir)
	}
}

func TestUserDir_UsesLookup(t *testing.T) {
	lookup := func() (string, error) { return "/tmp/dirs", nil }

	if dir := userDir(lookup, ".cache"); dir != "/tmp/dirs" {
		t.Errorf("expected lookup result, got %q", dir)
	}
}
