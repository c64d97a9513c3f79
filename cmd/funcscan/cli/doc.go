// Package cli contains the command line interface for funcscan.
//
// funcscan walks one or more Go package directories, registers every
// top-level function and method declaration with a fresh tracer, and
// prints how many were found:
//
//	funcscan ./tracer ./report
//
// Use --list to print each discovered function with its file and
// starting line:
//
//	funcscan --list ./wrap
//
// Declarations in _test.go files, function literals, and nested
// directories are not scanned.
package cli
