package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const scanSource = `package sample

func Alpha() int { return 1 }

func beta(n int) int {
	return n * 2
}

type Gamma struct{}

func (g *Gamma) Delta() {}
`

func TestScan(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(
		filepath.Join(dir, "sample.go"), []byte(scanSource), 0o600,
	)
	if err != nil {
		t.Fatalf("write sample: %v", err)
	}

	c := CLI{Dir: []string{dir}, List: true}

	if err := c.scan(t.Context()); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
}

func TestScanMissingDir(t *testing.T) {
	c := CLI{Dir: []string{filepath.Join(t.TempDir(), "absent")}}

	err := c.scan(t.Context())
	if err == nil {
		t.Fatal("expected error for missing directory")
	}

	if !strings.Contains(err.Error(), "failed to read input") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRunParsesFlags(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(
		filepath.Join(dir, "empty.go"), []byte("package empty\n"), 0o600,
	)
	if err != nil {
		t.Fatalf("write sample: %v", err)
	}

	exited := -1

	err = Run(t.Context(), func(code int) { exited = code }, dir)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if exited != -1 {
		t.Errorf("unexpected exit with code %d", exited)
	}
}
