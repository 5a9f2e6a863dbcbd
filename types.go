package md2site

import (
	"io"
	"time"
)

// Defaults applied when no option overrides them.
const (
	DefaultIndexPath   = "index.html"
	DefaultIndexTitle  = "Index Page"
	DefaultStylesheet  = "style.css"
	DefaultCodeLabel   = "Python File"
	DefaultPlaceholder = "The corresponding Python file does not exist."
)

// Default extension lists. Copied before use, never mutated.
var (
	DefaultMarkdownExtensions = []string{".md"}
	DefaultCodeExtensions     = []string{".py"}
)

// Page describes one converted Markdown file.
type Page struct {
	SourcePath string // the .md file
	OutputPath string // the .html file written beside it
	Title      string // derived from the file name
	HTML       string // the rendered fragment, without the page wrapper
	CodePath   string // paired code file, empty when none was found
}

// BuildResult summarises a Build run.
type BuildResult struct {
	Pages     []Page
	Links     []string // index links in walk order, relative to the index
	IndexPath string
	Assets    []string // markdown.css and markdown.js as written
	Duration  time.Duration
}

// Option configures a Builder.
type Option func(*Builder)

// builderConfig holds internal configuration for Builder.
type builderConfig struct {
	assetPath       string
	assetDir        string
	indexPath       string
	indexTitle      string
	stylesheet      string
	mdExtensions    []string
	codeExtensions  []string
	exclude         []string
	codeLabel       string
	placeholder     string
	highlightStyle  string
	serverHighlight bool
	logWriter       io.Writer
}

func defaultConfig() builderConfig {
	return builderConfig{
		indexPath:      DefaultIndexPath,
		indexTitle:     DefaultIndexTitle,
		stylesheet:     DefaultStylesheet,
		mdExtensions:   DefaultMarkdownExtensions,
		codeExtensions: DefaultCodeExtensions,
		codeLabel:      DefaultCodeLabel,
		placeholder:    DefaultPlaceholder,
		logWriter:      io.Discard,
	}
}

// WithAssetPath loads the stylesheet, script and templates from dir, falling
// back to the embedded copies for anything dir does not provide.
func WithAssetPath(dir string) Option {
	return func(b *Builder) {
		b.cfg.assetPath = dir
	}
}

// WithAssetLoader sets a custom asset source. It takes precedence over
// WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(b *Builder) {
		b.publicAssetLoader = loader
	}
}

// WithAssetDir sets the directory that receives markdown.css and markdown.js.
// By default they are written to the build root.
func WithAssetDir(dir string) Option {
	return func(b *Builder) {
		b.cfg.assetDir = dir
	}
}

// WithIndexPath sets where the index page is written.
// Panics if path is empty (programmer error).
func WithIndexPath(path string) Option {
	if path == "" {
		panic("md2site: WithIndexPath path must not be empty")
	}
	return func(b *Builder) {
		b.cfg.indexPath = path
	}
}

// WithIndexTitle sets the heading and title of the index page.
func WithIndexTitle(title string) Option {
	return func(b *Builder) {
		b.cfg.indexTitle = title
	}
}

// WithStylesheet sets the stylesheet referenced by the index page.
// URLs are used verbatim, absolute paths are made relative to the index.
func WithStylesheet(href string) Option {
	return func(b *Builder) {
		b.cfg.stylesheet = href
	}
}

// WithMarkdownExtensions sets which files are converted (default ".md").
func WithMarkdownExtensions(exts ...string) Option {
	return func(b *Builder) {
		b.cfg.mdExtensions = append([]string(nil), exts...)
	}
}

// WithCodeExtensions sets the paired code extensions tried in order
// (default ".py").
func WithCodeExtensions(exts ...string) Option {
	return func(b *Builder) {
		b.cfg.codeExtensions = append([]string(nil), exts...)
	}
}

// WithExclude skips files and directories matching any doublestar pattern.
func WithExclude(patterns ...string) Option {
	return func(b *Builder) {
		b.cfg.exclude = append(b.cfg.exclude, patterns...)
	}
}

// WithCodeLabel sets the heading shown above the paired code block.
func WithCodeLabel(label string) Option {
	return func(b *Builder) {
		b.cfg.codeLabel = label
	}
}

// WithPlaceholder sets the text shown when no paired code file exists.
func WithPlaceholder(text string) Option {
	return func(b *Builder) {
		b.cfg.placeholder = text
	}
}

// WithServerHighlighting highlights fenced code at build time with the given
// chroma style instead of loading highlight.js in the browser.
func WithServerHighlighting(style string) Option {
	return func(b *Builder) {
		b.cfg.serverHighlight = true
		b.cfg.highlightStyle = style
	}
}

// WithLogWriter receives one line per generated file. Nil silences output.
func WithLogWriter(w io.Writer) Option {
	return func(b *Builder) {
		if w == nil {
			w = io.Discard
		}
		b.cfg.logWriter = w
	}
}
