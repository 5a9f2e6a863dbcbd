package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"html/template"
)

// Sentinel errors for document rendering.
var (
	ErrPageRender  = errors.New("page template rendering failed")
	ErrIndexRender = errors.New("index template rendering failed")
)

// PageData holds everything the page template needs.
type PageData struct {
	Title           string
	StylesheetHref  string // markdown.css, relative to the page
	ScriptHref      string // markdown.js, relative to the page
	Body            template.HTML
	CodeLabel       string
	CodeClass       string // e.g. "language-python", may be empty
	Code            template.HTML
	ClientHighlight bool // load highlight.js from the CDN
}

// CodeBlock returns the escaped content of code, or the escaped placeholder
// when no paired file was found. The result is safe to place inside <code>.
func CodeBlock(code PairedCode, placeholder string) template.HTML {
	if !code.Found() {
		return template.HTML(html.EscapeString(placeholder)) // #nosec G203 -- escaped above
	}
	return template.HTML(html.EscapeString(code.Content)) // #nosec G203 -- escaped above
}

// PageRenderer renders a standalone page document.
type PageRenderer struct {
	tmpl *template.Template
}

// NewPageRenderer creates a PageRenderer from template content.
// Returns error if the template cannot be parsed.
func NewPageRenderer(tmplContent string) (*PageRenderer, error) {
	tmpl, err := template.New("page").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &PageRenderer{tmpl: tmpl}, nil
}

// Render executes the page template.
func (r *PageRenderer) Render(ctx context.Context, data *PageData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return buf.String(), nil
}

// IndexData holds everything the index template needs.
type IndexData struct {
	Title          string
	StylesheetHref string
	Tree           template.HTML // outline from sitetree.RenderOutline, already escaped
}

// IndexRenderer renders the index document.
type IndexRenderer struct {
	tmpl *template.Template
}

// NewIndexRenderer creates an IndexRenderer from template content.
func NewIndexRenderer(tmplContent string) (*IndexRenderer, error) {
	tmpl, err := template.New("index").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing index template: %w", err)
	}
	return &IndexRenderer{tmpl: tmpl}, nil
}

// Render executes the index template.
func (r *IndexRenderer) Render(ctx context.Context, data *IndexData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrIndexRender, err)
	}
	return buf.String(), nil
}
