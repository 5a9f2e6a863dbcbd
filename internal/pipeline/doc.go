// Package pipeline implements the Markdown-to-page conversion stages.
//
// A page goes through these stages:
//   - source preprocessing (line endings, alternate """ code fences)
//   - Markdown to HTML fragment via Goldmark, with trailing {.class #id}
//     attribute blocks on headings, paragraphs and list items
//   - paired source-code lookup beside the Markdown file
//   - rendering of the standalone page document from an html/template
//
// The same package renders the index document around an outline produced by
// the sitetree package. File system traversal and writing are left to the
// caller.
package pipeline
