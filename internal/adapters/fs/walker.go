// Package fs provides file system adapters for walking, comparing, copying and hashing assets.
package fs

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/assetsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileWalker = (*Walker)(nil)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files under root in lexical order, including symlinks to files.
// Yielded paths include the root prefix, as filepath.WalkDir produces them.
// Directories whose path equals an entry of skip are not entered.
func (w *Walker) WalkFiles(root string, skip []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		cleaned := make([]string, 0, len(skip))
		for _, s := range skip {
			cleaned = append(cleaned, filepath.Clean(s))
		}

		stopped := false
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && slices.Contains(cleaned, path) {
					return filepath.SkipDir
				}
				return nil
			}

			if !isFile(path, d) {
				return nil
			}

			if !yield(path, nil) {
				stopped = true
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil && !stopped {
			yield("", zerr.With(zerr.Wrap(err, "failed to walk source tree"), "root", root))
		}
	}
}

// isFile reports whether d is a regular file or a symlink that does not resolve to a directory.
// A dangling symlink counts as a file so copying it reports the broken link.
func isFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return true
	}
	return info.Mode().IsRegular()
}
