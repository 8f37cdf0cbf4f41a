// Package output names, orders and writes generated double files.
package output

import (
	"os"
	"strings"

	"github.com/akedrou/textdiff"
	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"github.com/toejough/go-reorder"
)

// Exported variables.
var (
	// ErrStale is returned in check mode when the file on disk differs from
	// what would be generated.
	ErrStale = errors.New("generated file is stale")
)

// FileSystem is the file access output needs.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// Filename returns generated_<constructor>.go, or generated_<constructor>_test.go
// when the invoking package or file is a test (blackbox or whitebox testing).
func Filename(constructor, pkgName, goFile string) string {
	isTest := strings.HasSuffix(pkgName, "_test") || strings.HasSuffix(goFile, "_test.go")
	if isTest {
		return "generated_" + constructor + "_test.go"
	}

	return "generated_" + constructor + ".go"
}

// Prepare reorders declarations according to project conventions. If
// reordering fails the code is returned unchanged and the failure is logged.
func Prepare(code string, logger logr.Logger) string {
	reordered, err := reorder.Source(code)
	if err != nil {
		logger.Error(err, "failed to reorder generated code, keeping template order")

		return code
	}

	return reordered
}

// Check compares code with the existing file and returns ErrStale, with a
// unified diff in the message, when they differ or the file is missing.
func Check(filename, code string, fileSys FileSystem) error {
	existing, err := fileSys.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(ErrStale, "%s is missing: %v", filename, err)
	}

	if string(existing) == code {
		return nil
	}

	diff := textdiff.Unified(filename+" (current)", filename+" (generated)", string(existing), code)

	return errors.Wrapf(ErrStale, "%s differs:\n%s", filename, diff)
}

// Write writes code to filename. A file that already holds code is left
// untouched so its modification time only moves when the double changes.
func Write(filename, code string, fileSys FileSystem, logger logr.Logger) error {
	const generatedFilePermissions = 0o600

	existing, err := fileSys.ReadFile(filename)
	if err == nil && string(existing) == code {
		logger.V(1).Info("unchanged, skipping write", "file", filename)

		return nil
	}

	err = fileSys.WriteFile(filename, []byte(code), generatedFilePermissions)
	if err != nil {
		return errors.Wrapf(err, "error writing %s", filename)
	}

	logger.Info("written successfully", "file", filename)

	return nil
}
