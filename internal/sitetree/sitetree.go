// Package sitetree builds the index outline from the list of generated page
// links. Each link is split on "/" into cleaned segments; the tree keeps one
// node per segment per level, in first-insertion order. Page segments keep
// their extension in the key, so "intro.html" and a directory "intro" are
// distinct even though both display as "intro".
package sitetree

import (
	"html"
	"strconv"
	"strings"

	"github.com/alnah/go-md2site/internal/pipeline"
)

// maxHeadingLevel caps the heading used for deep directories.
const maxHeadingLevel = 6

// Node is either a leaf (a page link) or an interior node (a directory).
type Node struct {
	Title    string
	Link     string  // leaves only
	Children []*Node // interior nodes only, in insertion order
	key      string
	leaf     bool
}

// NewLeaf creates a leaf pointing to link. Its key is the cleaned last
// segment of link, extension included.
func NewLeaf(title, link string) *Node {
	segs := splitLink(link)
	key := title
	if len(segs) > 0 {
		key = pipeline.CleanSegment(segs[len(segs)-1])
	}
	return &Node{Title: title, Link: link, key: key, leaf: true}
}

// NewInterior creates an empty interior node.
func NewInterior(title string) *Node {
	return &Node{Title: title, key: title}
}

// IsLeaf reports whether n is a page link.
func (n *Node) IsLeaf() bool {
	return n.leaf
}

// Child returns the first direct child titled title, or nil.
func (n *Node) Child(title string) *Node {
	for _, c := range n.Children {
		if c.Title == title {
			return c
		}
	}
	return nil
}

// lookup returns the direct child keyed key, or nil.
func (n *Node) lookup(key string) *Node {
	for _, c := range n.Children {
		if c.key == key {
			return c
		}
	}
	return nil
}

// Insert adds link under n. Every segment is keyed by pipeline.CleanSegment;
// the leaf is titled by pipeline.TitleFromPath. Existing nodes are reused and
// never replaced: a link that would descend through a leaf or land on a
// taken key is dropped, and Insert returns false.
func (n *Node) Insert(link string) bool {
	if n.leaf {
		return false
	}
	segs := splitLink(link)
	if len(segs) == 0 {
		return false
	}

	cur := n
	for _, seg := range segs[:len(segs)-1] {
		key := pipeline.CleanSegment(seg)
		child := cur.lookup(key)
		switch {
		case child == nil:
			child = NewInterior(key)
			cur.Children = append(cur.Children, child)
		case child.leaf:
			return false
		}
		cur = child
	}

	leaf := NewLeaf(pipeline.TitleFromPath(segs[len(segs)-1]), link)
	if cur.lookup(leaf.key) != nil {
		return false
	}
	cur.Children = append(cur.Children, leaf)
	return true
}

// splitLink splits a slash-separated link, ignoring empty and "." segments.
func splitLink(link string) []string {
	parts := strings.Split(link, "/")
	segs := parts[:0]
	for _, p := range parts {
		if p == "" || p == "." {
			continue
		}
		segs = append(segs, p)
	}
	return segs
}

// Build returns the root of the tree holding links in order.
func Build(links []string) *Node {
	root := NewInterior("")
	for _, link := range links {
		root.Insert(link)
	}
	return root
}

// RenderOutline renders root's children as nested HTML. Interior nodes
// become a heading, h1 at the top level down to h6, followed by a
// tree-container div; leaves become link-item divs. Titles and links are
// escaped.
func RenderOutline(root *Node) string {
	var sb strings.Builder
	renderChildren(&sb, root, 0)
	return sb.String()
}

func renderChildren(sb *strings.Builder, n *Node, depth int) {
	for i, c := range n.Children {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if c.leaf {
			sb.WriteString(`<div class="link-item"><a href="`)
			sb.WriteString(html.EscapeString(c.Link))
			sb.WriteString(`">`)
			sb.WriteString(html.EscapeString(c.Title))
			sb.WriteString(`</a></div>`)
			continue
		}

		tag := "h" + strconv.Itoa(min(depth+1, maxHeadingLevel))
		sb.WriteString("<" + tag + ">")
		sb.WriteString(html.EscapeString(c.Title))
		sb.WriteString("</" + tag + ">\n")
		sb.WriteString(`<div class="tree-container">` + "\n")
		renderChildren(sb, c, depth+1)
		sb.WriteString("\n</div>")
	}
}
