package wrap

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ardnew/lprof/tracer"
)

// ErrScanPackage is returned when a package directory cannot be scanned
// for profilable functions.
var ErrScanPackage = tracer.NewError("cannot scan package directory")

// Package registers every function declared at the top level of the Go
// package in the given directory, including methods declared on its
// types, without wrapping any of them. Bulk-registered functions are
// armed for tracing and appear in reports; they remain callable directly
// by reference.
//
// Function literals are not registered, and subdirectories are not
// scanned. Test files are skipped. The count of registered functions is
// returned.
func (d *Dispatcher) Package(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, ErrScanPackage.Wrap(err).
			With(slog.String("dir", dir))
	}

	count := 0
	fset := token.NewFileSet()

	for _, ent := range entries {
		name := ent.Name()
		if ent.IsDir() ||
			!strings.HasSuffix(name, ".go") ||
			strings.HasSuffix(name, "_test.go") {
			continue
		}

		path := filepath.Join(dir, name)

		abs, err := filepath.Abs(path)
		if err == nil {
			path = abs
		}

		file, err := parser.ParseFile(fset, path, nil, parser.SkipObjectResolution)
		if err != nil {
			return count, ErrScanPackage.Wrap(err).
				With(slog.String("file", path))
		}

		for _, decl := range file.Decls {
			fd, ok := decl.(*ast.FuncDecl)
			if !ok {
				continue
			}

			d.tracer.Register(tracer.Target{
				File: path,
				Line: fset.Position(fd.Pos()).Line,
				Name: qualifiedName(file.Name.Name, fd),
			})

			count++
		}
	}

	return count, nil
}

// qualifiedName builds the package-qualified name of a declared function,
// in the runtime's pkg.Func and pkg.(*Recv).Method forms.
func qualifiedName(pkg string, fd *ast.FuncDecl) string {
	if fd.Recv == nil || len(fd.Recv.List) == 0 {
		return fmt.Sprintf("%s.%s", pkg, fd.Name.Name)
	}

	recv := ""

	switch t := fd.Recv.List[0].Type.(type) {
	case *ast.StarExpr:
		if id, ok := t.X.(*ast.Ident); ok {
			recv = "(*" + id.Name + ")"
		}
	case *ast.Ident:
		recv = t.Name
	}

	if recv == "" {
		return fmt.Sprintf("%s.%s", pkg, fd.Name.Name)
	}

	return fmt.Sprintf("%s.%s.%s", pkg, recv, fd.Name.Name)
}
