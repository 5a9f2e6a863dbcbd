package pipeline

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// TrailingAttributes adds "{.note #intro lang=fr}" attribute blocks. Written
// right after an inline element with no space, as in "*word*{.note}" or
// "[docs](url){target=_blank}", the block applies to that element. Ending the
// last line of a paragraph or list item after a space, it applies to the
// enclosing element. The block is removed from the text. Headings get the
// same syntax from goldmark's own heading attribute option.
var TrailingAttributes goldmark.Extender = &trailingAttributes{}

type trailingAttributes struct{}

func (e *trailingAttributes) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithASTTransformers(
			util.Prioritized(&trailingAttributeTransformer{}, 100),
		),
	)
}

type trailingAttributeTransformer struct{}

func (t *trailingAttributeTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	source := reader.Source()

	var blocks []ast.Node
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindParagraph, ast.KindTextBlock:
			blocks = append(blocks, n)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	for _, blk := range blocks {
		applyTrailingAttributes(blk, source)
	}

	var texts []*ast.Text
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := n.(*ast.Text); ok && t.PreviousSibling() != nil && isInlineTarget(t.PreviousSibling()) {
			texts = append(texts, t)
		}
		return ast.WalkContinue, nil
	})

	for _, t := range texts {
		applyInlineAttributes(t, source)
	}
}

// isInlineTarget reports whether n takes an attribute block written directly
// after it.
func isInlineTarget(n ast.Node) bool {
	switch n.Kind() {
	case ast.KindEmphasis, ast.KindLink, ast.KindImage, ast.KindCodeSpan, extast.KindStrikethrough:
		return true
	}
	return false
}

// applyInlineAttributes moves an attribute block that starts t onto the
// inline element right before it. The block must begin at the first byte of
// t and close on the same line.
func applyInlineAttributes(t *ast.Text, source []byte) {
	start := t.Segment.Start
	if start <= 0 || start >= len(source) || source[start] != '{' {
		return
	}
	switch source[start-1] {
	case ' ', '\t', '\n', '\r', '\\':
		return
	}

	end := len(source)
	if i := bytes.IndexByte(source[start:], '\n'); i >= 0 {
		end = start + i
	}
	r := text.NewReader(source[start:end])
	attrs, ok := parser.ParseAttributes(r)
	if !ok {
		return
	}
	_, pos := r.Position()

	if !trimInlineHead(t, start+pos.Start) {
		return
	}
	target := t.PreviousSibling()
	for _, attr := range attrs {
		target.SetAttribute(attr.Name, attr.Value)
	}
}

// trimInlineHead empties the text from first up to cut. It reports false,
// leaving the nodes untouched, if a non-text inline sits before cut. Consumed
// nodes are emptied rather than removed so their line breaks survive.
func trimInlineHead(first *ast.Text, cut int) bool {
	var consumed []*ast.Text
	var edit *ast.Text
	for n := ast.Node(first); ; n = n.NextSibling() {
		t, ok := n.(*ast.Text)
		if !ok {
			return false
		}
		if t.Segment.Stop > cut {
			edit = t
			break
		}
		consumed = append(consumed, t)
		if t.Segment.Stop == cut {
			break
		}
	}

	for _, t := range consumed {
		t.Segment = t.Segment.WithStart(t.Segment.Stop)
	}
	if edit != nil {
		edit.Segment = edit.Segment.WithStart(cut)
	}
	return true
}

// applyTrailingAttributes moves a trailing {...} block of blk onto its target
// element. Nothing changes when the last line does not end with a complete
// attribute block or when the block overlaps an inline element.
func applyTrailingAttributes(blk ast.Node, source []byte) {
	lines := blk.Lines()
	if lines.Len() == 0 {
		return
	}
	last := lines.At(lines.Len() - 1)
	line := bytes.TrimRight(last.Value(source), " \t\n")

	idx, attrs := findAttributeBlock(line)
	if idx <= 0 {
		return
	}
	cut := last.Start + idx

	if !trimInlineTail(blk, source, cut) {
		return
	}

	target := blk
	if blk.Kind() == ast.KindTextBlock && blk.Parent() != nil && blk.Parent().Kind() == ast.KindListItem {
		target = blk.Parent()
	}
	for _, attr := range attrs {
		target.SetAttribute(attr.Name, attr.Value)
	}
}

// findAttributeBlock returns the offset of the "{" that starts an attribute
// block running to the end of line, with the parsed attributes. The offset is
// -1 when there is none.
func findAttributeBlock(line []byte) (int, parser.Attributes) {
	if len(line) == 0 || line[len(line)-1] != '}' {
		return -1, nil
	}
	for i := bytes.LastIndexByte(line, '{'); i >= 0; i = bytes.LastIndexByte(line[:i], '{') {
		if i > 0 && line[i-1] == '\\' {
			continue
		}
		r := text.NewReader(line[i:])
		attrs, ok := parser.ParseAttributes(r)
		if !ok {
			continue
		}
		r.SkipSpaces()
		if r.Peek() != text.EOF {
			continue
		}
		return i, attrs
	}
	return -1, nil
}

// trimInlineTail removes the inline text at or after cut from blk's children.
// It reports false, leaving blk untouched, if the block touches a non-text
// inline: either one still open at cut or one the block directly follows.
func trimInlineTail(blk ast.Node, source []byte, cut int) bool {
	var edit *ast.Text
	var drop []ast.Node
	for c := blk.LastChild(); c != nil; c = c.PreviousSibling() {
		t, ok := c.(*ast.Text)
		if !ok {
			return false
		}
		if t.Segment.Start >= cut {
			drop = append(drop, t)
			continue
		}
		if t.Segment.Stop > cut {
			edit = t
		}
		break
	}

	for _, n := range drop {
		blk.RemoveChild(blk, n)
	}
	if edit != nil {
		edit.Segment = edit.Segment.WithStop(cut)
	}

	// Drop the spaces that separated the text from the attribute block.
	for c := blk.LastChild(); c != nil; {
		t, ok := c.(*ast.Text)
		if !ok {
			break
		}
		stop := t.Segment.Stop
		for stop > t.Segment.Start && (source[stop-1] == ' ' || source[stop-1] == '\t') {
			stop--
		}
		t.Segment = t.Segment.WithStop(stop)
		if t.Segment.Len() > 0 {
			break
		}
		prev := c.PreviousSibling()
		blk.RemoveChild(blk, c)
		c = prev
	}
	return true
}
