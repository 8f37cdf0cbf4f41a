// Package run implements the main logic for the dblgen tool in a testable way.
package run

import (
	"fmt"
	"io"

	"github.com/alexflint/go-arg"
	"github.com/dave/dst"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/pkg/errors"
	load "github.com/toejough/catcalc/dblgen/run/2_load"
	detect "github.com/toejough/catcalc/dblgen/run/3_detect"
	generate "github.com/toejough/catcalc/dblgen/run/5_generate"
	output "github.com/toejough/catcalc/dblgen/run/6_output"
)

// Exported variables.
var (
	// ErrNotGenerate is returned when the go:generate environment is missing.
	ErrNotGenerate = errors.New("GOPACKAGE and GOFILE must be set; run dblgen via go generate")
)

// FileSystem is the file access dblgen needs.
type FileSystem = output.FileSystem

// PackageLoader loads the parsed files of a package by import path.
type PackageLoader interface {
	Load(importPath string) ([]*dst.File, error)
}

// Run executes the dblgen tool logic. It takes command-line arguments, an
// environment variable getter, a FileSystem for file operations, a
// PackageLoader, and a writer for progress output. On success it writes a Go
// source file with a mock (or, with --spy, a spy) of the target interface
// into the package that invoked go:generate.
func Run(args []string, getEnv func(string) string, fileSys FileSystem, pkgLoader PackageLoader, out io.Writer) error {
	parsed, err := parseArgs(args, out)
	if err != nil || parsed == nil {
		return err
	}

	logger := newLogger(out, parsed.Verbose)

	pkgName, goFile := getEnv("GOPACKAGE"), getEnv("GOFILE")
	if pkgName == "" || goFile == "" {
		return ErrNotGenerate
	}

	target, err := detect.ParseTarget(parsed.Target)
	if err != nil {
		return err
	}

	importPath, err := resolveImportPath(target, goFile, fileSys)
	if err != nil {
		return err
	}

	logger.V(1).Info("loading package", "importPath", importPath)

	files, err := pkgLoader.Load(importPath)
	if err != nil {
		return errors.Wrapf(err, "failed to load package %q", importPath)
	}

	iface, err := detect.FindInterface(files, target.InterfaceName, target.PkgRef)
	if err != nil {
		return err
	}

	if target.PkgRef == "" && iface.PkgName != pkgName {
		return errors.Wrapf(detect.ErrBadTarget, "%s is declared in package %s; qualify it as %s.%s",
			iface.Name, iface.PkgName, iface.PkgName, iface.Name)
	}

	logger.V(1).Info("found interface", "interface", iface.Name, "methods", len(iface.Methods))

	constructor := parsed.Name
	if constructor == "" {
		constructor = generate.DefaultConstructor(iface.Name, parsed.Spy)
	}

	code, err := generate.Code(iface, generate.Info{
		PkgName:     pkgName,
		ImportPath:  importPath,
		Qualifier:   target.PkgRef,
		Constructor: constructor,
		Spy:         parsed.Spy,
	})
	if err != nil {
		return err
	}

	code = output.Prepare(code, logger)
	filename := output.Filename(constructor, pkgName, goFile)

	if parsed.Check {
		return output.Check(filename, code, fileSys)
	}

	return output.Write(filename, code, fileSys, logger)
}

// cliArgs defines the command-line arguments for the generator.
type cliArgs struct {
	Target  string `arg:"positional,required" help:"interface to double (e.g. Ops or pkg.Ops)"`
	Name    string `arg:"--name"              help:"constructor name (defaults to Mock<Interface> or Spy<Interface>)"`
	Spy     bool   `arg:"--spy"               help:"generate a spy that falls through to a real implementation"`
	Check   bool   `arg:"--check"             help:"fail if the generated file is missing or stale instead of writing it"`
	Verbose bool   `arg:"-v,--verbose"        help:"log each generation stage"`
}

func newLogger(out io.Writer, verbose bool) logr.Logger {
	verbosity := 0
	if verbose {
		verbosity = 1
	}

	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			_, _ = fmt.Fprintln(out, prefix, args)

			return
		}

		_, _ = fmt.Fprintln(out, args)
	}, funcr.Options{Verbosity: verbosity})
}

// parseArgs parses command-line arguments into cliArgs. It returns nil args
// and nil error when help was requested and printed.
func parseArgs(args []string, out io.Writer) (*cliArgs, error) {
	var parsed cliArgs

	parser, err := arg.NewParser(arg.Config{Program: "dblgen"}, &parsed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create argument parser")
	}

	var cmdArgs []string
	if len(args) > 1 {
		cmdArgs = args[1:]
	}

	err = parser.Parse(cmdArgs)
	if errors.Is(err, arg.ErrHelp) {
		parser.WriteHelp(out)

		return nil, nil
	}

	if err != nil {
		return nil, errors.Wrap(err, "failed to parse arguments")
	}

	return &parsed, nil
}

// resolveImportPath maps the target's package reference to an import path
// using the imports of the file that invoked go:generate.
func resolveImportPath(target detect.Target, goFile string, fileSys FileSystem) (string, error) {
	if target.PkgRef == "" {
		return ".", nil
	}

	src, err := fileSys.ReadFile(goFile)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", goFile)
	}

	file, err := load.ParseSource(goFile, src)
	if err != nil {
		return "", err
	}

	path, ok := detect.ImportPathFor(file, target.PkgRef)
	if !ok {
		return "", errors.Wrapf(detect.ErrBadTarget, "%s does not import a package named %s", goFile, target.PkgRef)
	}

	return path, nil
}
