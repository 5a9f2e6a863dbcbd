package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/alnah/go-md2site/internal/annotate"
	"github.com/alnah/go-md2site/internal/hints"
)

// listPreviewLength caps the text shown per element by --list.
const listPreviewLength = 60

// runAnnotate attaches comments to a generated page offline, the way the
// double-click overlay does in the browser, and saves the export.
func runAnnotate(args []string, env *Environment) error {
	flags, positional, err := parseAnnotateFlags(args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: annotate takes exactly one page", ErrUsage)
	}

	doc, err := loadPage(positional[0])
	if err != nil {
		return err
	}
	hosts := annotate.Commentables(doc)

	if flags.list {
		printCommentables(env.Stdout, hosts)
		return nil
	}
	if len(flags.comments) == 0 {
		return fmt.Errorf("%w: no comment given, use -m N=text", ErrUsage)
	}

	session := annotate.NewSession(doc)
	for _, c := range flags.comments {
		n, text, err := parseComment(c)
		if err != nil {
			return err
		}
		if n < 1 || n > len(hosts) {
			return fmt.Errorf("%w: %d%s", ErrCommentIndex, n, hints.ForCommentIndex(len(hosts)))
		}
		if err := session.Comment(hosts[n-1], text); err != nil {
			return err
		}
	}

	return writeExport(doc, flags.output, env)
}

// runExtract re-exports a page that was annotated in the browser or by
// annotate, keeping only headings, paragraphs, list items and comments.
func runExtract(args []string, env *Environment) error {
	flags, positional, err := parseExtractFlags(args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: extract takes exactly one page", ErrUsage)
	}

	doc, err := loadPage(positional[0])
	if err != nil {
		return err
	}
	return writeExport(doc, flags.output, env)
}

// parseComment splits "N=text".
func parseComment(s string) (int, string, error) {
	num, text, ok := strings.Cut(s, "=")
	if !ok {
		return 0, "", fmt.Errorf("%w: comment %q must be N=text", ErrUsage, s)
	}
	n, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil {
		return 0, "", fmt.Errorf("%w: comment %q: %q is not a number", ErrUsage, s, num)
	}
	return n, text, nil
}

func loadPage(path string) (*html.Node, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided page
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadPage, err)
	}
	defer f.Close()

	doc, err := annotate.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadPage, path, err)
	}
	return doc, nil
}

// writeExport saves the export of doc to output, or to
// ./article_with_comments.html when output is empty.
func writeExport(doc *html.Node, output string, env *Environment) error {
	if output == "" {
		output = annotate.ExportName
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteExport, err)
		}
	}

	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermissions) // #nosec G304 -- user-provided output
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteExport, err)
	}
	if err := annotate.Export(f, doc); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %v", ErrWriteExport, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteExport, err)
	}

	fmt.Fprintf(env.Stdout, "Saved: %s\n", output)
	return nil
}

// printCommentables numbers every paragraph and list item for -m.
func printCommentables(w io.Writer, hosts []*html.Node) {
	for i, h := range hosts {
		text := strings.Join(strings.Fields(annotate.TextContent(h)), " ")
		if len([]rune(text)) > listPreviewLength {
			text = string([]rune(text)[:listPreviewLength]) + "..."
		}
		fmt.Fprintf(w, "%4d  <%s>  %s", i+1, h.Data, text)
		if n := len(annotate.Comments(h)); n > 0 {
			fmt.Fprintf(w, "  [%d comment(s)]", n)
		}
		fmt.Fprintln(w)
	}
}
