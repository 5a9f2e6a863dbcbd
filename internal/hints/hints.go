// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alnah/go-md2site/internal/config"
)

// ForRootNotFound returns a hint for a missing or unreadable source directory.
func ForRootNotFound() string {
	return format("run md2site inside the notes directory or pass it as the first argument")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-md2site/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path to suggest
	marker := string(filepath.Separator) + config.AppDirName + string(filepath.Separator)
	for _, p := range searchedPaths {
		if strings.Contains(p, marker) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForWritePermission returns hints for failures writing generated files.
func ForWritePermission() string {
	return format("pages are written beside their .md files; check those directories are writable")
}

// ForHighlightStyle returns the list of known styles.
func ForHighlightStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForAssetOverride returns hints for an invalid assets.basePath.
func ForAssetOverride() string {
	return format("assets.basePath must be a directory holding styles/, scripts/ or templates/")
}

// ForAddressInUse returns a hint when the preview port is taken.
func ForAddressInUse(addr string) string {
	return format(addr + " is already in use; pick another with --addr :8081")
}

// ForCommentIndex returns a hint for an out-of-range element number.
func ForCommentIndex(count int) string {
	if count == 0 {
		return format("the page has no paragraphs or list items")
	}
	return format("numbers go from 1 to " + strconv.Itoa(count) + "; list them with md2site annotate --list <page>")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
