package main

import (
	"errors"

	"github.com/alecthomas/chroma/v2/styles"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/hints"
	"github.com/alnah/go-md2site/internal/walker"
)

// hintFor returns a hint for errors whose fix does not depend on where they
// were raised. Call sites with more context append their own hint instead.
func hintFor(err error) string {
	switch {
	case errors.Is(err, walker.ErrReadDir):
		return hints.ForRootNotFound()
	case errors.Is(err, md2site.ErrWriteHTML),
		errors.Is(err, md2site.ErrWriteAsset),
		errors.Is(err, md2site.ErrWriteIndex):
		return hints.ForWritePermission()
	case errors.Is(err, md2site.ErrInvalidHighlightStyle):
		return hints.ForHighlightStyle(styles.Names())
	case errors.Is(err, md2site.ErrInvalidAssetPath):
		return hints.ForAssetOverride()
	default:
		return ""
	}
}
