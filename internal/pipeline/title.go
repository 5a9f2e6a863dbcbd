package pipeline

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// numericPrefix matches an ordering prefix such as "03_".
var numericPrefix = regexp.MustCompile(`^\d+_`)

// CleanSegment turns a file or directory name into display text: one leading
// run of digits followed by an underscore is dropped and the remaining
// underscores become spaces. Clean names are returned unchanged.
func CleanSegment(name string) string {
	return strings.ReplaceAll(numericPrefix.ReplaceAllString(name, ""), "_", " ")
}

// TitleFromPath derives a page title from a file path: the base name without
// its extension, cleaned with CleanSegment. "docs/03_My_Doc.md" -> "My Doc".
func TitleFromPath(p string) string {
	base := path.Base(filepath.ToSlash(p))
	base = strings.TrimSuffix(base, path.Ext(base))
	return CleanSegment(base)
}
