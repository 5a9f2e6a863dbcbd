package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site [command] [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "With no command, md2site builds the current directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Convert markdown files to HTML pages and write index.html")
	fmt.Fprintln(w, "  annotate   Add comments to a generated page offline")
	fmt.Fprintln(w, "  extract    Export the comments of an annotated page")
	fmt.Fprintln(w, "  serve      Preview a built site over HTTP")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2site help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site build [root] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert every markdown file under root (default .) into an HTML page")
	fmt.Fprintln(w, "beside it, then write an index page linking them.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -e, --exclude <glob>      Skip matching files or directories (repeatable)")
	fmt.Fprintln(w, "      --code-ext <exts>     Paired code extensions, tried in order (default .py)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Index:")
	fmt.Fprintln(w, "      --index <path>        Index page path (default ./index.html)")
	fmt.Fprintln(w, "      --index-title <s>     Index page title (default \"Index Page\")")
	fmt.Fprintln(w, "      --stylesheet <href>   Stylesheet linked from the index (default style.css)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory overriding the built-in assets")
	fmt.Fprintln(w, "      --asset-dir <dir>     Where markdown.css and markdown.js are written")
	fmt.Fprintln(w, "      --highlight <mode>    Code highlighting: client (default) or server")
	fmt.Fprintln(w, "      --style <name>        Chroma style for server highlighting")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printAnnotateUsage prints usage for the annotate command.
func printAnnotateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site annotate <page.html> -m N=text [-m N=text]... [-o out]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Attach comments to paragraphs and list items of a page, then save the")
	fmt.Fprintln(w, "same export as the page's save button.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -m, --message <N=text>    Comment element N (repeatable)")
	fmt.Fprintln(w, "  -l, --list                List numbered elements and exit")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default ./article_with_comments.html)")
}

// printExtractUsage prints usage for the extract command.
func printExtractUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site extract <page.html> [-o out]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Export the headings, paragraphs, list items and comments of a page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default ./article_with_comments.html)")
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site serve [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Serve a built site (default .) until interrupted.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -a, --addr <addr>         Listen address (default :8080)")
	fmt.Fprintln(w, "  -q, --quiet               Do not log requests")
	fmt.Fprintln(w, "  -v, --verbose             Log at debug level")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "annotate":
		printAnnotateUsage(env.Stdout)
	case "extract":
		printExtractUsage(env.Stdout)
	case "serve":
		printServeUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2site version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2site help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
