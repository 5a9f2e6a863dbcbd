// Package annotate reproduces the behaviour of the page annotation script on
// a parsed HTML document, so comments can be added and exported offline.
//
// A Session owns the document while it is annotated. Interactions are fed in
// as events; the session keeps one overlay per host element (p or li) and
// appends a div.comment for every non-empty commit.
package annotate

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Sentinel errors for annotation.
var (
	ErrNotCommentable = errors.New("element cannot hold comments")
	ErrNoSuchElement  = errors.New("no such element")
	ErrParsePage      = errors.New("failed to parse page")
)

// Class names shared with the browser script and stylesheet.
const (
	CommentClass      = "comment"
	OverlayClass      = "comment-input-container"
	InputClass        = "comment-input"
	inputPlaceholder  = "Type a comment and press Enter"
	hostPositionStyle = "position: relative;"
)

// hostState is the owned state of one commentable element.
type hostState struct {
	open    bool
	overlay *html.Node // div.comment-input-container while open
	input   *html.Node
}

// Session tracks overlays and comments for one document.
type Session struct {
	doc    *html.Node
	events *Dispatcher
	hosts  map[*html.Node]*hostState
	inputs map[*html.Node]*html.Node // overlay input -> host
	scroll *html.Node
}

// Load parses an HTML page.
func Load(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParsePage, err)
	}
	return doc, nil
}

// NewSession wires the default handlers onto a fresh Dispatcher.
func NewSession(doc *html.Node) *Session {
	s := &Session{
		doc:    doc,
		events: NewDispatcher(),
		hosts:  make(map[*html.Node]*hostState),
		inputs: make(map[*html.Node]*html.Node),
	}
	s.events.Subscribe(Click, s.onClick)
	s.events.Subscribe(DoubleClick, s.onDoubleClick)
	s.events.Subscribe(Blur, s.onCommitEvent)
	s.events.Subscribe(KeyDown, s.onCommitEvent)
	return s
}

// Document returns the annotated document.
func (s *Session) Document() *html.Node {
	return s.doc
}

// Subscribe adds an observer after the built-in handlers.
func (s *Session) Subscribe(kind EventKind, h Handler) {
	s.events.Subscribe(kind, h)
}

// Dispatch feeds one event to the session.
func (s *Session) Dispatch(ev Event) {
	s.events.Dispatch(ev)
}

// ScrollTarget returns the heading most recently clicked, or nil.
func (s *Session) ScrollTarget() *html.Node {
	return s.scroll
}

// Overlay returns the input of host's open overlay, or nil.
func (s *Session) Overlay(host *html.Node) *html.Node {
	st := s.hosts[host]
	if st == nil || !st.open {
		return nil
	}
	return st.input
}

// Type sets the text of an overlay input.
func (s *Session) Type(input *html.Node, text string) error {
	if _, ok := s.inputs[input]; !ok {
		return fmt.Errorf("%w: not an open comment input", ErrNoSuchElement)
	}
	setAttr(input, "value", text)
	return nil
}

// Comment opens host's overlay, types text and presses Enter.
// An empty text leaves no comment.
func (s *Session) Comment(host *html.Node, text string) error {
	if !IsCommentable(host) {
		return fmt.Errorf("%w: <%s>", ErrNotCommentable, nodeName(host))
	}
	s.Dispatch(Event{Kind: DoubleClick, Target: host})
	input := s.Overlay(host)
	if err := s.Type(input, text); err != nil {
		return err
	}
	s.Dispatch(Event{Kind: KeyDown, Target: input, Key: "Enter"})
	return nil
}

func (s *Session) onClick(ev Event) {
	if h := closest(ev.Target, isHeading); h != nil {
		s.scroll = h
	}
}

func (s *Session) onDoubleClick(ev Event) {
	host := closest(ev.Target, IsCommentable)
	if host == nil {
		return
	}
	if st := s.hosts[host]; st != nil && st.open {
		return
	}

	input := &html.Node{Type: html.ElementNode, Data: "input", DataAtom: atom.Input, Attr: []html.Attribute{
		{Key: "type", Val: "text"},
		{Key: "class", Val: InputClass},
		{Key: "placeholder", Val: inputPlaceholder},
	}}
	overlay := element(atom.Div, OverlayClass)
	overlay.AppendChild(input)

	addStyle(host, hostPositionStyle)
	host.AppendChild(overlay)

	s.hosts[host] = &hostState{open: true, overlay: overlay, input: input}
	s.inputs[input] = host
}

// onCommitEvent handles blur and Enter on an overlay input. The input is
// forgotten on the first commit, so a blur following Enter does nothing.
func (s *Session) onCommitEvent(ev Event) {
	if ev.Kind == KeyDown && ev.Key != "Enter" {
		return
	}
	host, ok := s.inputs[ev.Target]
	if !ok {
		return
	}
	s.commit(host)
}

func (s *Session) commit(host *html.Node) {
	st := s.hosts[host]
	delete(s.inputs, st.input)

	if text := attr(st.input, "value"); text != "" {
		comment := element(atom.Div, CommentClass)
		comment.AppendChild(&html.Node{Type: html.TextNode, Data: text})
		host.AppendChild(comment)
	}
	if st.overlay.Parent == host {
		host.RemoveChild(st.overlay)
	}
	st.open = false
	st.overlay = nil
	st.input = nil
}

// ---------------------------------------------------------------------------
// Node helpers
// ---------------------------------------------------------------------------

// IsCommentable reports whether n is a p or li element.
func IsCommentable(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode && (n.DataAtom == atom.P || n.DataAtom == atom.Li)
}

func isHeading(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return true
	}
	return false
}

// closest returns n or its nearest ancestor satisfying match.
func closest(n *html.Node, match func(*html.Node) bool) *html.Node {
	for ; n != nil; n = n.Parent {
		if match(n) {
			return n
		}
	}
	return nil
}

func element(a atom.Atom, class string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     a.String(),
		DataAtom: a,
		Attr:     []html.Attribute{{Key: "class", Val: class}},
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// addStyle appends decl to n's style attribute unless it is already there.
func addStyle(n *html.Node, decl string) {
	style := strings.TrimSpace(attr(n, "style"))
	if strings.Contains(style, decl) {
		return
	}
	if style != "" && !strings.HasSuffix(style, ";") {
		style += ";"
	}
	if style != "" {
		style += " "
	}
	setAttr(n, "style", style+decl)
}

func hasClass(n *html.Node, class string) bool {
	return n.Type == html.ElementNode && slices.Contains(strings.Fields(attr(n, "class")), class)
}

func nodeName(n *html.Node) string {
	if n == nil {
		return "nil"
	}
	if n.Type != html.ElementNode {
		return "non-element"
	}
	return n.Data
}
