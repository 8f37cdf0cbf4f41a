// dblgen is a tool to generate test doubles for Go interfaces.
// To use it, install it with `go install github.com/toejough/catcalc/dblgen@latest`
// and in your test files, add a `//go:generate dblgen <interface>` comment. By default the generated
// constructor is named Mock<Interface>; add `--spy` to generate Spy<Interface>, a double that falls through to a
// real implementation, and `--name <Constructor>` to pick a custom name. The output is written to
// generated_<Constructor>.go (generated_<Constructor>_test.go from test files) in the invoking package.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dave/dst"
	"github.com/toejough/catcalc/dblgen/run"
	load "github.com/toejough/catcalc/dblgen/run/2_load"
)

// main is the entry point of the dblgen tool.
func main() {
	err := run.Run(os.Args, os.Getenv, &realFileSystem{}, &realPackageLoader{}, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// realFileSystem implements FileSystem using os package.
type realFileSystem struct{}

// ReadFile reads the file named by name and returns the contents.
func (fs *realFileSystem) ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Clean(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", name, err)
	}

	return data, nil
}

// WriteFile writes data to the file named by name.
func (fs *realFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	err := os.WriteFile(name, data, perm)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", name, err)
	}

	return nil
}

// realPackageLoader implements PackageLoader using direct DST parsing.
type realPackageLoader struct{}

// Load loads a package by import path and returns its DST files.
func (pl *realPackageLoader) Load(importPath string) ([]*dst.File, error) {
	files, _, err := load.PackageDST(importPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load package %q: %w", importPath, err)
	}

	return files, nil
}
