package source

import (
	"go/parser"
	"go/token"
	"strings"
	"sync"
)

// blocks caches the function block index of parsed files, keyed by
// content hash so a re-read of changed content re-parses.
//
//nolint:gochecknoglobals
var blocks sync.Map // uint64 -> map[int]int (start line -> end line)

// Block returns the contiguous lines of the function definition starting
// at the given 1-based line of the file, from its declaration through the
// end of its syntactic block.
//
// When the file parses as Go source, block boundaries come from the
// parser. Otherwise a brace-counting heuristic isolates the block. A
// start line with no discernible block yields just that single line.
func Block(path string, start int) ([]string, error) {
	e, err := load(path)
	if err != nil {
		return nil, err
	}

	if start < 1 || start > len(e.lines) {
		return nil, nil
	}

	if end, ok := index(e)[start]; ok && end >= start && end <= len(e.lines) {
		return e.lines[start-1 : end], nil
	}

	return e.lines[start-1 : start-1+countBlock(e.lines[start-1:])], nil
}

// index returns the start-line to end-line mapping of every function
// declared in the entry's content, parsing on first reference.
func index(e *entry) map[int]int {
	if v, ok := blocks.Load(e.hash); ok {
		return v.(map[int]int)
	}

	idx := map[int]int{}

	fset := token.NewFileSet()

	file, err := parser.ParseFile(
		fset,
		"",
		e.data,
		parser.ParseComments|parser.SkipObjectResolution,
	)
	if err == nil {
		for _, decl := range file.Decls {
			idx[fset.Position(decl.Pos()).Line] = fset.Position(decl.End()).Line
		}
	}

	v, _ := blocks.LoadOrStore(e.hash, idx)

	return v.(map[int]int)
}

// countBlock counts the lines of the brace-delimited block opening on the
// first of the given lines. It is a fallback for content the Go parser
// rejects and deliberately ignores braces inside strings and comments.
func countBlock(lines []string) int {
	if len(lines) == 0 {
		return 0
	}

	if !strings.Contains(lines[0], "{") {
		return 1
	}

	depth := 0

	for i, line := range lines {
		depth += strings.Count(line, "{") - strings.Count(line, "}")
		if depth <= 0 {
			return i + 1
		}
	}

	return len(lines)
}
