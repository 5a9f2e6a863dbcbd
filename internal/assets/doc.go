// Package assets provides the stylesheet, annotation script and HTML
// templates used by the site builder.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in assets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver is the loader used by the builder. It tries the custom
// FilesystemLoader first, falling back to EmbeddedLoader if the asset is not
// found. This allows overriding one asset (say the page template) while
// keeping every other default.
//
// # Directory Structure
//
// Assets are organized by type:
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css       # page stylesheet (markdown.css)
//	├── scripts/
//	│   └── {name}.js        # annotation script (markdown.js)
//	└── templates/
//	    └── {name}.html      # html/template sources (page.html, index.html)
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
