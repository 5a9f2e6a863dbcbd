//go:build integration

package assets

// Notes:
// - These tests drive the embedded annotation script in headless Chrome via
//   go-rod. The fixture page links only the local script so no network is
//   needed; MathJax is absent and the script must tolerate that.
// - ROD_BROWSER_BIN selects a preinstalled browser (Docker/CI), otherwise rod
//   downloads a managed Chromium on first run.

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const scriptTestTimeout = 30 * time.Second

const fixturePage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>fixture</title>
<script src="markdown.js"></script>
</head>
<body>
<h1>Heading</h1>
<p id="first">First paragraph.</p>
<ul><li id="item">List item</li></ul>
</body>
</html>`

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// openFixture writes the fixture and the embedded script to a temp dir and
// opens the page in a fresh browser. Cleanup is registered on t.
func openFixture(t *testing.T) *rod.Page {
	t.Helper()

	script, err := NewEmbeddedLoader().LoadScript(ScriptName)
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "markdown.js"), []byte(script), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	pagePath := filepath.Join(dir, "page.html")
	if err := os.WriteFile(pagePath, []byte(fixturePage), 0o644); err != nil {
		t.Fatalf("write page: %v", err)
	}

	l := launcher.New()
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin).NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		t.Fatalf("launch browser: %v", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		t.Fatalf("connect browser: %v", err)
	}
	t.Cleanup(func() { _ = browser.Close() })

	page, err := browser.Page(proto.TargetCreateTarget{URL: "file://" + filepath.ToSlash(pagePath)})
	if err != nil {
		t.Fatalf("open page: %v", err)
	}
	page = page.Timeout(scriptTestTimeout)
	if err := page.WaitLoad(); err != nil {
		t.Fatalf("wait load: %v", err)
	}
	return page
}

// count returns the number of elements matching selector.
func count(t *testing.T, page *rod.Page, selector string) int {
	t.Helper()

	res, err := page.Eval(`(s) => document.querySelectorAll(s).length`, selector)
	if err != nil {
		t.Fatalf("count %s: %v", selector, err)
	}
	return res.Value.Int()
}

// doubleClick double-clicks the element matching selector.
func doubleClick(t *testing.T, page *rod.Page, selector string) {
	t.Helper()

	el, err := page.Element(selector)
	if err != nil {
		t.Fatalf("find %s: %v", selector, err)
	}
	if err := el.Click(proto.InputMouseButtonLeft, 2); err != nil {
		t.Fatalf("double click %s: %v", selector, err)
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestScript_SaveButtonAddedOnce(t *testing.T) {
	page := openFixture(t)

	if got := count(t, page, "button.save-button"); got != 1 {
		t.Errorf("save buttons = %d, want 1", got)
	}
}

func TestScript_DoubleClickShowsSingleOverlay(t *testing.T) {
	page := openFixture(t)

	doubleClick(t, page, "#first")
	if got := count(t, page, "#first .comment-input"); got != 1 {
		t.Fatalf("overlays after first dblclick = %d, want 1", got)
	}

	doubleClick(t, page, "#first")
	if got := count(t, page, "#first .comment-input"); got != 1 {
		t.Errorf("overlays after second dblclick = %d, want 1", got)
	}
}

func TestScript_EnterCommitsComment(t *testing.T) {
	page := openFixture(t)

	doubleClick(t, page, "#first")
	in, err := page.Element("#first .comment-input")
	if err != nil {
		t.Fatalf("find input: %v", err)
	}
	if err := in.Input("needs a source"); err != nil {
		t.Fatalf("type comment: %v", err)
	}
	if err := page.Keyboard.Type(input.Enter); err != nil {
		t.Fatalf("press enter: %v", err)
	}

	if got := count(t, page, "#first > .comment"); got != 1 {
		t.Errorf("comments = %d, want 1", got)
	}
	if got := count(t, page, "#first .comment-input-container"); got != 0 {
		t.Errorf("overlay containers after commit = %d, want 0", got)
	}

	text, err := page.Eval(`() => document.querySelector('#first > .comment').innerText`)
	if err != nil {
		t.Fatalf("read comment: %v", err)
	}
	if got := text.Value.Str(); got != "needs a source" {
		t.Errorf("comment text = %q, want %q", got, "needs a source")
	}
}

func TestScript_EmptyCommitRemovesOverlayOnly(t *testing.T) {
	page := openFixture(t)

	doubleClick(t, page, "#item")
	if _, err := page.Element("#item .comment-input"); err != nil {
		t.Fatalf("find input: %v", err)
	}
	if err := page.Keyboard.Type(input.Enter); err != nil {
		t.Fatalf("press enter: %v", err)
	}

	if got := count(t, page, "#item .comment"); got != 0 {
		t.Errorf("comments = %d, want 0", got)
	}
	if got := count(t, page, "#item .comment-input-container"); got != 0 {
		t.Errorf("overlay containers = %d, want 0", got)
	}

	// The host accepts a new overlay once the previous one is gone.
	doubleClick(t, page, "#item")
	if got := count(t, page, "#item .comment-input"); got != 1 {
		t.Errorf("overlays after reopen = %d, want 1", got)
	}
}
