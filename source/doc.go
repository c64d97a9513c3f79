// Package source retrieves the literal text lines of profiled source
// files.
//
// File contents are cached process-wide after the first read, so a report
// covering many targets in one file reads it once. [ClearCache] drops all
// cached contents, which report rendering does before each pass so that a
// report always reflects the files as they exist on disk at that moment.
//
// [Block] isolates the contiguous lines belonging to one function
// definition starting at a given line, using the Go parser when the file
// parses and a brace-counting heuristic otherwise.
package source
