// Package vsfile discovers C# source files referenced by Visual Studio
// solution (.sln) and project (.csproj) files.
package vsfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for the load lifecycle.
var (
	// ErrNotFound indicates the path does not reference an existing file.
	ErrNotFound = errors.New("file not found")
	// ErrInvalidExtension indicates the path's extension does not match the
	// extension expected by the concrete file type.
	ErrInvalidExtension = errors.New("invalid file extension")
	// ErrParse indicates a project file contains malformed XML.
	ErrParse = errors.New("malformed project file")
)

// file is the shared state of every Visual Studio file type. The path is
// fixed at construction; derived state is populated by Load on the concrete
// type.
type file struct {
	path string
}

// Path returns the path the file was constructed with.
func (f *file) Path() string { return f.path }

// Dir returns the directory containing the file.
func (f *file) Dir() string { return filepath.Dir(f.path) }

// FullPath resolves rel against the file's directory. Backslash separators,
// as written in solution and project files, are normalized to the platform
// separator. No I/O is performed.
func (f *file) FullPath(rel string) string {
	rel = strings.ReplaceAll(rel, `\`, string(filepath.Separator))

	return filepath.Join(f.Dir(), rel)
}

// load validates the file before handing off to the format-specific read
// step: the path must reference an existing file and carry the expected
// extension (compared case-insensitively). Validation failures are reported
// before any content is read.
func load(path, wantExt string, read func() error) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	if !strings.EqualFold(filepath.Ext(path), wantExt) {
		return fmt.Errorf("%w: %s (want %s)", ErrInvalidExtension, path, wantExt)
	}

	return read()
}
