package wrap

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const scanSource = `package sample

type Box struct {
	items []int
}

func Top() int {
	return 0
}

func (b *Box) Get(i int) int {
	return b.items[i]
}

func (b Box) Len() int {
	return len(b.items)
}

var helper = func() {
	// function literals are not profilable declarations
}
`

func writeScanDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	files := map[string]string{
		"sample.go":      scanSource,
		"extra.go":       "package sample\n\nfunc Extra() {}\n",
		"skip_test.go":   "package sample\n\nfunc TestSkip() {}\n",
		"notgo.txt":      "not go source",
		"nested/deep.go": "package nested\n\nfunc Deep() {}\n",
	}

	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	return dir
}

func TestPackage(t *testing.T) {
	_, tr, d := session(t)

	dir := writeScanDir(t)

	count, err := d.Package(dir)
	if err != nil {
		t.Fatalf("Package() error = %v", err)
	}

	// Top, (*Box).Get, Box.Len, and Extra; the function literal, the
	// test file, and the nested package are all excluded.
	if count != 4 {
		t.Errorf("Package() = %d, want 4", count)
	}

	names := map[string]bool{}
	for _, target := range tr.Targets() {
		names[target.Name] = true
	}

	for _, want := range []string{
		"sample.Top",
		"sample.(*Box).Get",
		"sample.Box.Len",
		"sample.Extra",
	} {
		if !names[want] {
			t.Errorf("Package() did not register %q (got %v)", want, names)
		}
	}

	if names["nested.Deep"] || names["sample.TestSkip"] {
		t.Errorf("Package() registered excluded functions: %v", names)
	}
}

func TestPackageTargetIdentity(t *testing.T) {
	_, tr, d := session(t)

	dir := writeScanDir(t)

	if _, err := d.Package(dir); err != nil {
		t.Fatal(err)
	}

	for _, target := range tr.Targets() {
		if target.Name == "sample.Top" {
			if filepath.Base(target.File) != "sample.go" || target.Line != 7 {
				t.Errorf("sample.Top identity = %+v, want sample.go:7", target)
			}

			return
		}
	}

	t.Fatal("sample.Top not registered")
}

func TestPackageMissingDir(t *testing.T) {
	_, _, d := session(t)

	_, err := d.Package(filepath.Join(t.TempDir(), "absent"))
	if !errors.Is(err, ErrScanPackage) {
		t.Errorf("Package() error = %v, want ErrScanPackage", err)
	}
}

func TestPackageParseError(t *testing.T) {
	_, _, d := session(t)

	dir := t.TempDir()
	if err := os.WriteFile(
		filepath.Join(dir, "broken.go"), []byte("func {"), 0o600,
	); err != nil {
		t.Fatal(err)
	}

	if _, err := d.Package(dir); !errors.Is(err, ErrScanPackage) {
		t.Errorf("Package() error = %v, want ErrScanPackage", err)
	}
}
