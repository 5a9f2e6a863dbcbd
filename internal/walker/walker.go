// Package walker enumerates the Markdown files of a source tree.
//
// The walk is depth-first in directory-listing order. Symbolic links are
// followed, so a link pointing to an ancestor directory recurses until the
// path becomes too long for the OS. Any read failure aborts the walk.
package walker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-md2site/internal/fileutil"
)

// ErrReadDir indicates a directory or entry could not be read.
var ErrReadDir = errors.New("failed to read directory")

// DefaultExtensions lists the Markdown extensions used when none are set.
var DefaultExtensions = []string{".md"}

// Options controls which entries are visited.
type Options struct {
	Extensions []string // Markdown extensions, e.g. ".md" (empty = DefaultExtensions)
	Exclude    []string // doublestar globs matched against the root-relative path and base name
}

// VisitFunc is called for every Markdown file, with the path joined onto root.
// A non-nil error stops the walk and is returned unchanged by Walk.
type VisitFunc func(path string) error

// Walk visits every Markdown file under root.
func Walk(ctx context.Context, root string, opts Options, visit VisitFunc) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrReadDir, root)
	}

	exts := opts.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	w := &walk{root: root, exts: exts, exclude: opts.Exclude, visit: visit}
	return w.dir(ctx, root)
}

type walk struct {
	root    string
	exts    []string
	exclude []string
	visit   VisitFunc
}

func (w *walk) dir(ctx context.Context, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadDir, err)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		path := filepath.Join(dir, entry.Name())
		if w.excluded(path) {
			continue
		}

		isDir := entry.IsDir()
		if entry.Type()&os.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrReadDir, err)
			}
			isDir = target.IsDir()
		}

		if isDir {
			if err := w.dir(ctx, path); err != nil {
				return err
			}
			continue
		}

		if !fileutil.HasExtension(entry.Name(), w.exts) {
			continue
		}
		if err := w.visit(path); err != nil {
			return err
		}
	}
	return nil
}

func (w *walk) excluded(path string) bool {
	if len(w.exclude) == 0 {
		return false
	}
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return false
	}
	return MatchesExclude(rel, w.exclude)
}
