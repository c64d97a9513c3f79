package source

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"
)

// cache stores file contents keyed by path.
//
//nolint:gochecknoglobals
var cache sync.Map // string -> *entry

// entry holds the cached content of one file.
type entry struct {
	data  []byte
	lines []string
	hash  uint64
}

// Lines returns the literal lines of the given file, without line
// terminators. The content is cached after the first read until
// [ClearCache] is called.
func Lines(path string) ([]string, error) {
	e, err := load(path)
	if err != nil {
		return nil, err
	}

	return e.lines, nil
}

// ClearCache drops all cached file contents and block indexes.
func ClearCache() {
	cache.Clear()
	blocks.Clear()
}

// load returns the cache entry for path, reading the file on first
// reference.
func load(path string) (*entry, error) {
	if v, ok := cache.Load(path); ok {
		return v.(*entry), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Wrap reader with async read-ahead for concurrent I/O.
	ra := readahead.NewReader(f)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, err
	}

	e := &entry{
		data:  data,
		lines: splitLines(data),
		hash:  xxh3.Hash(data),
	}

	// A concurrent first read of the same path keeps whichever entry
	// landed first.
	v, _ := cache.LoadOrStore(path, e)

	return v.(*entry), nil
}

// splitLines splits file content into lines without terminators.
// A trailing newline does not produce a final empty line.
func splitLines(data []byte) []string {
	lines := strings.Split(string(data), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	return lines
}
