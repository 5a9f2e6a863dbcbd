package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Sentinel errors for HTML conversion.
var (
	ErrHTMLConversion        = errors.New("HTML conversion failed")
	ErrUnknownHighlightStyle = errors.New("unknown highlight style")
)

// DefaultHighlightStyle is the chroma style used when server highlighting is
// enabled without an explicit style.
const DefaultHighlightStyle = "github"

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// GoldmarkOption configures a GoldmarkConverter.
type GoldmarkOption func(*goldmarkSettings)

type goldmarkSettings struct {
	serverHighlight bool
	style           string
}

// WithServerHighlighting renders fenced code with chroma inline styles
// instead of leaving it to highlight.js in the browser.
func WithServerHighlighting(style string) GoldmarkOption {
	return func(s *goldmarkSettings) {
		s.serverHighlight = true
		s.style = style
	}
}

// GoldmarkConverter converts Markdown to an HTML fragment using goldmark (pure Go).
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with tables, strikethrough
// and trailing attribute blocks. Raw HTML in the source is omitted.
func NewGoldmarkConverter(opts ...GoldmarkOption) (*GoldmarkConverter, error) {
	var s goldmarkSettings
	for _, opt := range opts {
		opt(&s)
	}

	exts := []goldmark.Extender{
		extension.Table,
		extension.Strikethrough,
		TrailingAttributes,
	}
	if s.serverHighlight {
		style := s.style
		if style == "" {
			style = DefaultHighlightStyle
		}
		if !ValidHighlightStyle(style) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownHighlightStyle, style)
		}
		exts = append(exts, highlighting.NewHighlighting(highlighting.WithStyle(style)))
	}

	md := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(
			parser.WithHeadingAttribute(), // # Title {.class #id}
		),
	)
	return &GoldmarkConverter{md: md}, nil
}

// ValidHighlightStyle reports whether chroma knows the named style.
func ValidHighlightStyle(name string) bool {
	return slices.Contains(styles.Names(), name)
}

// ToHTML converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
