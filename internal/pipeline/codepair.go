package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// ErrReadCode indicates a paired code file exists but could not be read.
var ErrReadCode = errors.New("failed to read paired code file")

// PairedCode is the source file found beside a Markdown file.
// Path is empty when no candidate exists.
type PairedCode struct {
	Path    string
	Content string
}

// Found reports whether a paired file was located.
func (c PairedCode) Found() bool {
	return c.Path != ""
}

// FindPairedCode looks for "<base><ext>" beside mdPath for each extension in
// order and returns the first regular file found. A missing file is not an
// error.
func FindPairedCode(mdPath string, exts []string) (PairedCode, error) {
	base := strings.TrimSuffix(mdPath, filepath.Ext(mdPath))
	for _, ext := range exts {
		candidate := base + ext
		info, err := os.Stat(candidate)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return PairedCode{}, fmt.Errorf("%w: %s: %v", ErrReadCode, candidate, err)
		}
		if info.IsDir() {
			continue
		}
		data, err := os.ReadFile(candidate) // #nosec G304 -- sibling of a walked file
		if err != nil {
			return PairedCode{}, fmt.Errorf("%w: %s: %v", ErrReadCode, candidate, err)
		}
		return PairedCode{Path: candidate, Content: string(data)}, nil
	}
	return PairedCode{}, nil
}

// CodeLanguage returns the highlight.js class for a code file name, such as
// "language-python" for "a.py". It returns "" when chroma has no lexer for it.
func CodeLanguage(name string) string {
	lexer := lexers.Match(filepath.Base(name))
	if lexer == nil {
		return ""
	}
	cfg := lexer.Config()
	lang := cfg.Name
	if len(cfg.Aliases) > 0 {
		lang = cfg.Aliases[0]
	}
	return "language-" + strings.ToLower(lang)
}
