package filesystem

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/cixtor/interview/internal/domain"
)

// WalkMode selects how a traversal reacts to unreadable directories
type WalkMode int

const (
	// Lenient skips unreadable subdirectories; their subtree contributes nothing
	Lenient WalkMode = iota
	// Strict fails on the first unreadable directory
	Strict
)

func (m WalkMode) String() string {
	if m == Strict {
		return "strict"
	}
	return "lenient"
}

// Visit walks root recursively and calls fn for every regular file.
// A failure to read root itself is returned in both modes.
func Visit(root string, mode WalkMode, logger *slog.Logger, fn func(path string)) error {
	if logger == nil {
		logger = slog.Default()
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root || mode == Strict {
				return &domain.DirectoryUnreadableError{Path: path, Err: err}
			}
			logger.Debug("skipping unreadable directory",
				slog.String("path", path),
				slog.String("error", err.Error()))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		if d.Type().IsRegular() || isFileLink(path, d) {
			fn(path)
		}
		return nil
	})
}

// Walk returns every regular file under root, sorted by full path
func Walk(root string, mode WalkMode, logger *slog.Logger) ([]string, error) {
	var paths []string
	if err := Visit(root, mode, logger, func(path string) {
		paths = append(paths, path)
	}); err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// isFileLink reports whether d is a symlink that resolves to a regular file
func isFileLink(path string, d fs.DirEntry) bool {
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
