package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const goSource = `package sample

func short() int {
	return 1
}

func long(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += i
	}

	return total
}
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLines(t *testing.T) {
	t.Cleanup(ClearCache)

	path := writeTemp(t, "sample.go", goSource)

	lines, err := Lines(path)
	if err != nil {
		t.Fatalf("Lines() error = %v", err)
	}

	if want := strings.Count(goSource, "\n"); len(lines) != want {
		t.Errorf("Lines() returned %d lines, want %d", len(lines), want)
	}

	if lines[0] != "package sample" {
		t.Errorf("first line = %q, want %q", lines[0], "package sample")
	}
}

func TestLinesMissingFile(t *testing.T) {
	t.Cleanup(ClearCache)

	if _, err := Lines(filepath.Join(t.TempDir(), "absent.go")); err == nil {
		t.Error("Lines() on missing file returned nil error")
	}
}

func TestLinesCached(t *testing.T) {
	t.Cleanup(ClearCache)

	path := writeTemp(t, "sample.go", "first\n")

	if _, err := Lines(path); err != nil {
		t.Fatal(err)
	}

	// Rewrites are invisible until the cache is cleared.
	if err := os.WriteFile(path, []byte("second\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	lines, err := Lines(path)
	if err != nil {
		t.Fatal(err)
	}

	if lines[0] != "first" {
		t.Errorf("cached line = %q, want %q", lines[0], "first")
	}

	ClearCache()

	lines, err = Lines(path)
	if err != nil {
		t.Fatal(err)
	}

	if lines[0] != "second" {
		t.Errorf("line after ClearCache = %q, want %q", lines[0], "second")
	}
}

func TestBlock(t *testing.T) {
	t.Cleanup(ClearCache)

	path := writeTemp(t, "sample.go", goSource)

	tests := []struct {
		name      string
		start     int
		wantLen   int
		wantFirst string
	}{
		{"short func", 3, 3, "func short() int {"},
		{"long func", 7, 8, "func long(n int) int {"},
		{"not a func start", 2, 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, err := Block(path, tt.start)
			if err != nil {
				t.Fatalf("Block() error = %v", err)
			}

			if len(block) != tt.wantLen {
				t.Fatalf("Block() = %q, want %d lines", block, tt.wantLen)
			}

			if tt.wantFirst != "" && block[0] != tt.wantFirst {
				t.Errorf("first line = %q, want %q", block[0], tt.wantFirst)
			}
		})
	}
}

func TestBlockFallback(t *testing.T) {
	t.Cleanup(ClearCache)

	// Not valid Go: block isolation falls back to brace counting.
	content := "def outer {\n  a\n  b\n}\ntrailing\n"
	path := writeTemp(t, "sample.txt", content)

	block, err := Block(path, 1)
	if err != nil {
		t.Fatalf("Block() error = %v", err)
	}

	if len(block) != 4 || block[3] != "}" {
		t.Errorf("Block() = %q, want the 4-line braced block", block)
	}
}

func TestBlockOutOfRange(t *testing.T) {
	t.Cleanup(ClearCache)

	path := writeTemp(t, "sample.go", goSource)

	for _, start := range []int{0, -1, 1000} {
		block, err := Block(path, start)
		if err != nil {
			t.Fatalf("Block(%d) error = %v", start, err)
		}

		if len(block) != 0 {
			t.Errorf("Block(%d) = %q, want empty", start, block)
		}
	}
}
