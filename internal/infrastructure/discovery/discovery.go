// Package discovery walks a project's source tree for files feeding the
// generated array.
package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrSourceRootMissing means the configured source root does not exist under
// the project root.
var ErrSourceRootMissing = errors.New("source directory not found")

// Scanner discovers source files under a single project root. Traversal is
// read-only.
type Scanner struct {
	projectRoot string
}

func NewScanner(projectRoot string) *Scanner {
	return &Scanner{projectRoot: projectRoot}
}

// Sources returns every file under sourceRoot (a slash path relative to the
// project root) whose name ends in extension, at any depth. Paths are sorted
// lexicographically by absolute path before relativization, then returned
// relative to the project root with forward-slash separators, so the result
// is independent of filesystem traversal order.
func (s *Scanner) Sources(sourceRoot, extension string) ([]string, error) {
	root := filepath.Join(s.projectRoot, filepath.FromSlash(sourceRoot))
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrSourceRootMissing, root)
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	sort.Strings(paths)

	entries := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(s.projectRoot, p)
		if err != nil {
			return nil, fmt.Errorf("failed to relativize %s: %w", p, err)
		}
		entries = append(entries, filepath.ToSlash(rel))
	}
	return entries, nil
}
