package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// AltFence is accepted in source documents as a code fence delimiter.
const AltFence = `"""`

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// SourcePreprocessor applies transformations before Goldmark conversion.
type SourcePreprocessor struct{}

// PreprocessMarkdown applies all transformations to prepare Markdown for conversion.
func (p *SourcePreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = normalizeLineEndings(content)
	content = normalizeFences(content)
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// normalizeFences replaces every """ with ```, wherever it occurs.
func normalizeFences(content string) string {
	return strings.ReplaceAll(content, AltFence, "```")
}
