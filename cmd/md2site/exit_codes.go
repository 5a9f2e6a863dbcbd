package main

import (
	"errors"
	"os"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/annotate"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/preview"
	"github.com/alnah/go-md2site/internal/walker"
)

// Exit codes for md2site CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful build
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, walker.ErrReadDir) ||
		errors.Is(err, md2site.ErrReadMarkdown) ||
		errors.Is(err, md2site.ErrReadCode) ||
		errors.Is(err, md2site.ErrWriteHTML) ||
		errors.Is(err, md2site.ErrWriteAsset) ||
		errors.Is(err, md2site.ErrWriteIndex) ||
		errors.Is(err, preview.ErrNotDirectory) ||
		errors.Is(err, ErrReadPage) ||
		errors.Is(err, ErrWriteExport) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, md2site.ErrInvalidExtension) ||
		errors.Is(err, md2site.ErrInvalidExclude) ||
		errors.Is(err, md2site.ErrInvalidHighlightStyle) ||
		errors.Is(err, md2site.ErrStyleNotFound) ||
		errors.Is(err, md2site.ErrScriptNotFound) ||
		errors.Is(err, md2site.ErrTemplateNotFound) ||
		errors.Is(err, md2site.ErrInvalidAssetPath) ||
		errors.Is(err, annotate.ErrNotCommentable) ||
		errors.Is(err, ErrCommentIndex) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrUsage) {
		return ExitUsage
	}

	return ExitGeneral
}
