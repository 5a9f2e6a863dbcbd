package annotate

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ExportName is the file name the browser script downloads.
const ExportName = "article_with_comments.html"

// Export writes what the page's save button downloads: for every heading,
// paragraph and list item in document order, its outer HTML followed by the
// outer HTML of each comment inside it, one per line.
func Export(w io.Writer, doc *html.Node) error {
	bw := bufio.NewWriter(w)
	for _, el := range collect(doc, isExported) {
		if err := writeOuter(bw, el); err != nil {
			return err
		}
		for _, c := range collect(el, isComment) {
			if c == el {
				continue
			}
			if err := writeOuter(bw, c); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func writeOuter(w *bufio.Writer, n *html.Node) error {
	if err := html.Render(w, n); err != nil {
		return fmt.Errorf("rendering <%s>: %w", n.Data, err)
	}
	return w.WriteByte('\n')
}

// Commentables lists the p and li elements of doc in document order.
func Commentables(doc *html.Node) []*html.Node {
	return collect(doc, IsCommentable)
}

// Comments returns the text of the comments attached to host.
func Comments(host *html.Node) []string {
	var out []string
	for _, c := range collect(host, isComment) {
		if c == host {
			continue
		}
		out = append(out, TextContent(c))
	}
	return out
}

// TextContent concatenates the text below n, skipping comments and overlays.
func TextContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		if hasClass(n, CommentClass) || hasClass(n, OverlayClass) {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return sb.String()
}

func isExported(n *html.Node) bool {
	return isHeading(n) || IsCommentable(n)
}

func isComment(n *html.Node) bool {
	return hasClass(n, CommentClass)
}

// collect returns n and its descendants matching match, in document order.
func collect(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}
