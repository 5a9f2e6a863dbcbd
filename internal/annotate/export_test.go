package annotate

import (
	"strings"
	"testing"
)

func TestCommentables(t *testing.T) {
	t.Parallel()

	doc := load(t, fixture)

	var ids []string
	for _, n := range Commentables(doc) {
		ids = append(ids, attr(n, "id"))
	}
	if got := strings.Join(ids, ","); got != "p1,li1,p2,li2,p3" {
		t.Errorf("Commentables() = %s, want p1,li1,p2,li2,p3", got)
	}
}

func TestExport(t *testing.T) {
	t.Parallel()

	doc := load(t, `<h2>T</h2><p id="a">Hi</p><ul><li>One</li></ul>`)
	s := NewSession(doc)
	if err := s.Comment(byID(t, doc, "a"), "a <note>"); err != nil {
		t.Fatalf("Comment() unexpected error: %v", err)
	}

	var sb strings.Builder
	if err := Export(&sb, doc); err != nil {
		t.Fatalf("Export() unexpected error: %v", err)
	}

	want := "<h2>T</h2>\n" +
		`<p id="a" style="position: relative;">Hi<div class="comment">a &lt;note&gt;</div></p>` + "\n" +
		`<div class="comment">a &lt;note&gt;</div>` + "\n" +
		"<li>One</li>\n"
	if got := sb.String(); got != want {
		t.Errorf("Export() =\n%s\nwant\n%s", got, want)
	}
}

func TestExport_NestedHostsRepeatComments(t *testing.T) {
	t.Parallel()

	doc := load(t, `<ul><li id="li"><p id="p">x</p></li></ul>`)
	s := NewSession(doc)
	_ = s.Comment(byID(t, doc, "p"), "c")

	var sb strings.Builder
	if err := Export(&sb, doc); err != nil {
		t.Fatalf("Export() unexpected error: %v", err)
	}

	// Both the li and the p list the comment nested in them.
	if n := strings.Count(sb.String(), "\n"+`<div class="comment">c</div>`+"\n"); n != 2 {
		t.Errorf("standalone comment lines = %d, want 2\n%s", n, sb.String())
	}
}

func TestTextContent(t *testing.T) {
	t.Parallel()

	doc := load(t, fixture)
	s := NewSession(doc)
	p := byID(t, doc, "p1")
	_ = s.Comment(p, "hidden")
	s.Dispatch(Event{Kind: DoubleClick, Target: p})

	if got := TextContent(p); got != "First bold paragraph." {
		t.Errorf("TextContent() = %q", got)
	}
}
