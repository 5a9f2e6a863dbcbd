package md2site

import (
	"errors"

	"github.com/alnah/go-md2site/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrPageRender   = errors.New("page rendering failed")
	ErrWriteHTML    = errors.New("failed to write HTML page")
	ErrWriteAsset   = errors.New("failed to write asset")
	ErrWriteIndex   = errors.New("failed to write index page")

	// Pipeline errors, shared so each failure is wrapped once.
	ErrReadCode       = pipeline.ErrReadCode
	ErrHTMLConversion = pipeline.ErrHTMLConversion

	// Option validation errors.
	ErrInvalidExtension      = errors.New("invalid file extension")
	ErrInvalidExclude        = errors.New("invalid exclude pattern")
	ErrInvalidHighlightStyle = errors.New("unknown highlight style")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrScriptNotFound   = errors.New("script not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
