// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty   = errors.New("extension cannot be empty")
	ErrExtensionInvalid = errors.New("extension must start with a dot and contain no path separator or null byte")
)

// FilePermissions is used for every generated file: rw-r--r--.
const FilePermissions = 0o644

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ReplaceExt swaps the extension of path for ext.
// A path without extension gets ext appended.
//
// Examples:
//   - ("docs/a.md", ".html") -> "docs/a.html"
//   - ("docs/v1.2/a.md", ".html") -> "docs/v1.2/a.html"
//   - ("README", ".html") -> "README.html"
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// RelSlash returns the path of target relative to the directory holding from,
// always with forward slashes. Both paths are made absolute first so the
// result does not depend on the working directory.
func RelSlash(from, target string) (string, error) {
	absFrom, err := filepath.Abs(from)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", from, err)
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", target, err)
	}

	rel, err := filepath.Rel(filepath.Dir(absFrom), absTarget)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// ValidateExtension checks that ext looks like ".md": leading dot, no
// separators, no null byte.
func ValidateExtension(ext string) error {
	if ext == "" {
		return ErrExtensionEmpty
	}
	if !strings.HasPrefix(ext, ".") || len(ext) == 1 || strings.ContainsAny(ext, "/\\\x00") {
		return fmt.Errorf("%w: %q", ErrExtensionInvalid, ext)
	}
	return nil
}

// HasExtension reports whether the name ends with one of exts.
// Matching is case-sensitive, like the filesystem on most hosts.
func HasExtension(name string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "site" -> false (name)
//   - "./site.yaml" -> true (relative path)
//   - "/etc/md2site/site.yaml" -> true (absolute)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsURL returns true if the string looks like a URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
