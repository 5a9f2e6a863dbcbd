// Package md2site turns a directory of Markdown notes into standalone HTML
// pages plus an index page that links them as a nested outline.
//
// # Quick Start
//
// Create a builder and build the current directory:
//
//	b, err := md2site.NewBuilder(md2site.WithLogWriter(os.Stdout))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := b.Build(ctx, ".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(result.Pages), "pages")
//
// Every "notes/01_Intro.md" becomes "notes/01_Intro.html" beside it, titled
// "Intro". markdown.css and markdown.js are written to the build root and
// index.html to the current directory.
//
// # Pipeline
//
// Each page goes through these stages:
//
//  1. Source preprocessing (line endings, """ fences)
//  2. Markdown to HTML via Goldmark (GFM tables, strikethrough, trailing
//     {.class #id key=value} attribute blocks)
//  3. Paired code lookup ("<base>.py" beside the Markdown file)
//  4. Page template rendering with asset links relative to the page
//
// The index outline is built from the page links in walk order; the first
// page to claim a title at a given level wins.
//
// # Configuration
//
// Use functional options to customize the builder:
//
//	b, err := md2site.NewBuilder(
//	    md2site.WithExclude("drafts/**", "*_private.md"),
//	    md2site.WithCodeExtensions(".py", ".go"),
//	    md2site.WithServerHighlighting("monokai"),
//	    md2site.WithIndexPath("public/index.html"),
//	)
//
// # Custom Assets
//
// Override the built-in stylesheet, script or templates using AssetLoader:
//
//	loader, err := md2site.NewAssetLoader("/path/to/assets")
//	b, err := md2site.NewBuilder(md2site.WithAssetLoader(loader))
//
// Asset directory structure:
//
//	assets/
//	├── styles/
//	│   └── markdown.css
//	├── scripts/
//	│   └── markdown.js
//	└── templates/
//	    ├── page.html
//	    └── index.html
//
// Missing files fall back to the embedded defaults.
package md2site
