package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common     commonFlags
	index      string
	indexTitle string
	stylesheet string
	exclude    []string
	codeExts   []string
	assetPath  string
	assetDir   string
	highlight  string
	style      string
}

// annotateFlags holds flags for the annotate command.
type annotateFlags struct {
	comments []string // "N=text", N is 1-based
	output   string
	list     bool
}

// extractFlags holds flags for the extract command.
type extractFlags struct {
	output string
}

// serveFlags holds flags for the serve command.
type serveFlags struct {
	addr    string
	quiet   bool
	verbose bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// newFlagSet returns a FlagSet that reports errors to the caller instead of
// printing them.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string) (*buildFlags, []string, error) {
	fs := newFlagSet("build")
	f := &buildFlags{}

	fs.StringVar(&f.index, "index", "", "index page path (default ./index.html)")
	fs.StringVar(&f.indexTitle, "index-title", "", "index page title")
	fs.StringVar(&f.stylesheet, "stylesheet", "", "stylesheet linked from the index page")
	fs.StringArrayVarP(&f.exclude, "exclude", "e", nil, "glob of files or directories to skip (repeatable)")
	fs.StringSliceVar(&f.codeExts, "code-ext", nil, "paired code extensions, tried in order")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory overriding the built-in assets")
	fs.StringVar(&f.assetDir, "asset-dir", "", "where markdown.css and markdown.js are written")
	fs.StringVar(&f.highlight, "highlight", "", "code highlighting: client or server")
	fs.StringVar(&f.style, "style", "", "chroma style for server highlighting")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError("build", err)
	}
	return f, fs.Args(), nil
}

// parseAnnotateFlags parses annotate command flags and returns positional args.
func parseAnnotateFlags(args []string) (*annotateFlags, []string, error) {
	fs := newFlagSet("annotate")
	f := &annotateFlags{}

	fs.StringArrayVarP(&f.comments, "message", "m", nil, "comment as N=text, N from --list (repeatable)")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default ./article_with_comments.html)")
	fs.BoolVarP(&f.list, "list", "l", false, "list commentable elements and exit")

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError("annotate", err)
	}
	return f, fs.Args(), nil
}

// parseExtractFlags parses extract command flags and returns positional args.
func parseExtractFlags(args []string) (*extractFlags, []string, error) {
	fs := newFlagSet("extract")
	f := &extractFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file (default ./article_with_comments.html)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError("extract", err)
	}
	return f, fs.Args(), nil
}

// parseServeFlags parses serve command flags and returns positional args.
func parseServeFlags(args []string) (*serveFlags, []string, error) {
	fs := newFlagSet("serve")
	f := &serveFlags{}

	fs.StringVarP(&f.addr, "addr", "a", "", "listen address (default :8080)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "do not log requests")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log at debug level")

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError("serve", err)
	}
	return f, fs.Args(), nil
}
