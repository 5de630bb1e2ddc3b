// Package adapter contains the infrastructure adapters used by libwizard:
// filesystem access, configuration loading, repository acquisition and
// logging.
package adapter

import (
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/libwizard/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the domain layer relies
// on when rewriting a project tree. It hides direct `os` access so the
// rewriting logic can be driven against any tree in tests.
type SourceFSAdapter interface {
	// Files lazily enumerates regular files under root. skip is called with
	// the path relative to root; a skipped directory prunes its whole subtree.
	// Enumeration errors are yielded alongside the offending path.
	Files(root m.Path, skip SkipFunc) iter.Seq2[m.Path, error]

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile replaces the content of path, creating it with perm if missing.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path so the domain can check existence or
	// keep the mode of a file it rewrites.
	FileInfo(path m.Path) (os.FileInfo, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// SkipFunc decides whether an entry found during enumeration is left out.
type SkipFunc func(rel m.Path, isDir bool) bool

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Files walks root in lexical order and yields every regular file that skip
// does not exclude. The sequence is single-pass; stopping the range loop
// stops the walk.
func (a *LocalSourceFSAdapter) Files(root m.Path, skip SkipFunc) iter.Seq2[m.Path, error] {
	rootStr := string(root)

	return func(yield func(m.Path, error) bool) {
		err := filepath.WalkDir(rootStr, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if !yield(m.Path(path), err) {
					return fs.SkipAll
				}

				return nil
			}

			if path == rootStr {
				return nil
			}

			rel, err := filepath.Rel(rootStr, path)
			if err != nil {
				return err
			}

			if skip != nil && skip(m.Path(filepath.ToSlash(rel)), d.IsDir()) {
				if d.IsDir() {
					return filepath.SkipDir
				}

				return nil
			}

			if d.IsDir() || !d.Type().IsRegular() {
				return nil
			}

			if !yield(m.Path(path), nil) {
				return fs.SkipAll
			}

			return nil
		})
		if err != nil && !errors.Is(err, fs.SkipAll) {
			yield(root, err)
		}
	}
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
