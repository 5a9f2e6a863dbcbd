package md2site

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/pipeline"
	"github.com/alnah/go-md2site/internal/sitetree"
	"github.com/alnah/go-md2site/internal/walker"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.SourcePreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ assets.AssetLoader            = (AssetLoader)(nil)
)

// Builder converts a directory of Markdown files into standalone HTML pages
// and writes an index page linking them.
// Create with NewBuilder(), then call Build() or ConvertPage().
type Builder struct {
	cfg               builderConfig
	assetLoader       assets.AssetLoader
	publicAssetLoader AssetLoader // from WithAssetLoader
	preprocessor      pipeline.MarkdownPreprocessor
	htmlConverter     pipeline.HTMLConverter
	pageRenderer      *pipeline.PageRenderer
	indexRenderer     *pipeline.IndexRenderer
	style             string
	script            string
}

// NewBuilder creates a Builder with default configuration.
// Returns error if an option is invalid or an asset cannot be loaded.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		cfg:          defaultConfig(),
		assetLoader:  assets.NewEmbeddedLoader(),
		preprocessor: &pipeline.SourcePreprocessor{},
	}

	for _, opt := range opts {
		opt(b)
	}

	if err := b.cfg.validate(); err != nil {
		return nil, err
	}

	if b.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(b.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		b.assetLoader = resolver
	}
	if b.publicAssetLoader != nil {
		b.assetLoader = b.publicAssetLoader
	}

	// Tests may inject a converter.
	if b.htmlConverter == nil {
		var gopts []pipeline.GoldmarkOption
		if b.cfg.serverHighlight {
			gopts = append(gopts, pipeline.WithServerHighlighting(b.cfg.highlightStyle))
		}
		conv, err := pipeline.NewGoldmarkConverter(gopts...)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidHighlightStyle, err)
		}
		b.htmlConverter = conv
	}

	if err := b.loadAssets(); err != nil {
		return nil, err
	}
	return b, nil
}

// loadAssets reads the templates, stylesheet and script once so that a
// broken override fails before any file is written.
func (b *Builder) loadAssets() error {
	pageTmpl, err := b.assetLoader.LoadTemplate(assets.PageTemplateName)
	if err != nil {
		return fmt.Errorf("loading page template: %w", convertAssetError(err))
	}
	if b.pageRenderer, err = pipeline.NewPageRenderer(pageTmpl); err != nil {
		return fmt.Errorf("%w: %v", ErrPageRender, err)
	}

	indexTmpl, err := b.assetLoader.LoadTemplate(assets.IndexTemplateName)
	if err != nil {
		return fmt.Errorf("loading index template: %w", convertAssetError(err))
	}
	if b.indexRenderer, err = pipeline.NewIndexRenderer(indexTmpl); err != nil {
		return fmt.Errorf("%w: %v", ErrPageRender, err)
	}

	if b.style, err = b.assetLoader.LoadStyle(assets.StyleName); err != nil {
		return fmt.Errorf("loading stylesheet: %w", convertAssetError(err))
	}
	if b.script, err = b.assetLoader.LoadScript(assets.ScriptName); err != nil {
		return fmt.Errorf("loading script: %w", convertAssetError(err))
	}
	return nil
}

// validate checks option values that can be wrong at runtime.
func (c *builderConfig) validate() error {
	if len(c.mdExtensions) == 0 {
		return fmt.Errorf("%w: at least one markdown extension is required", ErrInvalidExtension)
	}
	for _, ext := range c.mdExtensions {
		if err := fileutil.ValidateExtension(ext); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidExtension, err)
		}
	}
	for _, ext := range c.codeExtensions {
		if err := fileutil.ValidateExtension(ext); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidExtension, err)
		}
	}
	if err := walker.ValidatePatterns(c.exclude); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidExclude, err)
	}
	if c.serverHighlight {
		if c.highlightStyle == "" {
			c.highlightStyle = pipeline.DefaultHighlightStyle
		}
		if !pipeline.ValidHighlightStyle(c.highlightStyle) {
			return fmt.Errorf("%w: %q", ErrInvalidHighlightStyle, c.highlightStyle)
		}
	}
	return nil
}

// Build converts every Markdown file under root, writes markdown.css and
// markdown.js to the asset directory, then writes the index page.
// Files already written are left in place when a later step fails.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (b *Builder) Build(ctx context.Context, root string) (result *BuildResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	start := time.Now()
	assetDir := b.cfg.assetDir
	if assetDir == "" {
		assetDir = root
	}

	result = &BuildResult{IndexPath: b.cfg.indexPath}
	walkOpts := walker.Options{Extensions: b.cfg.mdExtensions, Exclude: b.cfg.exclude}
	err = walker.Walk(ctx, root, walkOpts, func(path string) error {
		page, err := b.ConvertPage(ctx, path, assetDir)
		if err != nil {
			return err
		}
		link, err := fileutil.RelSlash(b.cfg.indexPath, page.OutputPath)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWriteIndex, err)
		}
		result.Pages = append(result.Pages, *page)
		result.Links = append(result.Links, link)
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Assets, err = b.WriteAssets(assetDir)
	if err != nil {
		return nil, err
	}

	if err := b.writeIndex(ctx, result.Links); err != nil {
		return nil, err
	}

	result.Duration = time.Since(start)
	return result, nil
}

// ConvertPage renders the Markdown file at mdPath into "<base>.html" beside
// it. The page links markdown.css and markdown.js from assetDir by a path
// relative to the page itself. The source file is never modified.
func (b *Builder) ConvertPage(ctx context.Context, mdPath, assetDir string) (*Page, error) {
	data, err := os.ReadFile(mdPath) // #nosec G304 -- path comes from the directory walk or the caller
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	content := b.preprocessor.PreprocessMarkdown(ctx, string(data))
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	fragment, err := b.htmlConverter.ToHTML(ctx, content)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if !errors.Is(err, ErrHTMLConversion) {
			err = fmt.Errorf("%w: %v", ErrHTMLConversion, err)
		}
		return nil, fmt.Errorf("%s: %w", mdPath, err)
	}

	code, err := pipeline.FindPairedCode(mdPath, b.cfg.codeExtensions)
	if err != nil {
		return nil, err
	}

	outPath := fileutil.ReplaceExt(mdPath, ".html")
	styleHref, err := fileutil.RelSlash(outPath, filepath.Join(assetDir, StyleFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}
	scriptHref, err := fileutil.RelSlash(outPath, filepath.Join(assetDir, ScriptFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}

	title := pipeline.TitleFromPath(mdPath)
	doc, err := b.pageRenderer.Render(ctx, &pipeline.PageData{
		Title:           title,
		StylesheetHref:  styleHref,
		ScriptHref:      scriptHref,
		Body:            template.HTML(fragment), // #nosec G203 -- goldmark output, raw HTML disabled
		CodeLabel:       b.cfg.codeLabel,
		CodeClass:       b.codeClass(code),
		Code:            pipeline.CodeBlock(code, b.cfg.placeholder),
		ClientHighlight: !b.cfg.serverHighlight,
	})
	if err != nil {
		if errors.Is(err, ctx.Err()) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrPageRender, err)
	}

	if err := os.WriteFile(outPath, []byte(doc), fileutil.FilePermissions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}
	fmt.Fprintf(b.cfg.logWriter, "Converted: %s -> %s\n", mdPath, outPath)

	return &Page{
		SourcePath: mdPath,
		OutputPath: outPath,
		Title:      title,
		HTML:       fragment,
		CodePath:   code.Path,
	}, nil
}

// codeClass names the highlight.js language of the paired file. Without a
// paired file the first configured extension decides, so the placeholder
// block keeps the same class.
func (b *Builder) codeClass(code pipeline.PairedCode) string {
	if code.Found() {
		return pipeline.CodeLanguage(code.Path)
	}
	if len(b.cfg.codeExtensions) == 0 {
		return ""
	}
	return pipeline.CodeLanguage("paired" + b.cfg.codeExtensions[0])
}

// WriteAssets writes markdown.css and markdown.js into dir, creating it if
// needed, and returns the written paths.
func (b *Builder) WriteAssets(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteAsset, err)
	}

	files := []struct {
		name    string
		content string
	}{
		{StyleFile, b.style},
		{ScriptFile, b.script},
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, []byte(f.content), fileutil.FilePermissions); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrWriteAsset, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// writeIndex renders the outline of links into the index page.
func (b *Builder) writeIndex(ctx context.Context, links []string) error {
	href, err := b.indexStylesheet()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteIndex, err)
	}

	outline := sitetree.RenderOutline(sitetree.Build(links))
	doc, err := b.indexRenderer.Render(ctx, &pipeline.IndexData{
		Title:          b.cfg.indexTitle,
		StylesheetHref: href,
		Tree:           template.HTML(outline), // #nosec G203 -- RenderOutline escapes titles and links
	})
	if err != nil {
		if errors.Is(err, ctx.Err()) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrWriteIndex, err)
	}

	if dir := filepath.Dir(b.cfg.indexPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteIndex, err)
		}
	}
	if err := os.WriteFile(b.cfg.indexPath, []byte(doc), fileutil.FilePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteIndex, err)
	}
	fmt.Fprintf(b.cfg.logWriter, "Generated: %s\n", b.cfg.indexPath)
	return nil
}

// indexStylesheet returns the stylesheet href for the index page.
func (b *Builder) indexStylesheet() (string, error) {
	href := b.cfg.stylesheet
	if fileutil.IsURL(href) || !filepath.IsAbs(href) {
		return href, nil
	}
	return fileutil.RelSlash(b.cfg.indexPath, href)
}
