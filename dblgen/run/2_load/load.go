// Package load parses the Go package that declares a doubled interface.
package load

import (
	"go/build"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/pkg/errors"
)

// Exported variables.
var (
	// ErrNoPackage is returned when no parsable .go files exist for an import path.
	ErrNoPackage = errors.New("no package found")
)

// PackageDST loads a package by import path and returns its DST files and FileSet.
// An import path of "." means the current directory, test files included.
// Uses DST parsing with no type checking.
func PackageDST(importPath string) ([]*dst.File, *token.FileSet, error) {
	dir, err := resolveDir(importPath)
	if err != nil {
		return nil, nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to read directory %s", dir)
	}

	includeTests := importPath == "."
	goFiles := make([]string, 0, len(entries))

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") {
			continue
		}

		// Skip test files for non-local packages
		if !includeTests && strings.HasSuffix(name, "_test.go") {
			continue
		}

		// Never read our own output back in
		if strings.HasPrefix(name, "generated_") {
			continue
		}

		goFiles = append(goFiles, filepath.Join(dir, name))
	}

	if len(goFiles) == 0 {
		return nil, nil, errors.Wrapf(ErrNoPackage, "no .go files in %s", dir)
	}

	return ParseFiles(goFiles)
}

// ParseFiles parses the named files into DST, skipping files that fail to parse.
func ParseFiles(paths []string) ([]*dst.File, *token.FileSet, error) {
	fset := token.NewFileSet()
	dec := decorator.NewDecorator(fset)

	files := make([]*dst.File, 0, len(paths))

	for _, path := range paths {
		file, err := parseFile(fset, dec, path, nil)
		if err != nil {
			continue
		}

		files = append(files, file)
	}

	if len(files) == 0 {
		return nil, nil, errors.Wrap(ErrNoPackage, "failed to parse any .go files")
	}

	return files, fset, nil
}

// ParseSource parses a single in-memory file. Used for the file that invoked
// go:generate, whose imports name the package to load.
func ParseSource(filename string, src []byte) (*dst.File, error) {
	fset := token.NewFileSet()

	return parseFile(fset, decorator.NewDecorator(fset), filename, src)
}

// parseFile parses with go/parser before decorating. The decorator must never
// see the partial AST go/parser returns alongside an error.
func parseFile(fset *token.FileSet, dec *decorator.Decorator, filename string, src any) (*dst.File, error) {
	astFile, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", filename)
	}

	file, err := dec.DecorateFile(astFile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decorate %s", filename)
	}

	return file, nil
}

func resolveDir(importPath string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "failed to get working directory")
	}

	if importPath == "." {
		return cwd, nil
	}

	pkg, err := build.Import(importPath, cwd, build.FindOnly)
	if err != nil {
		return "", errors.Wrapf(err, "failed to find package %q", importPath)
	}

	return pkg.Dir, nil
}
