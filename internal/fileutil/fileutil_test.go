package fileutil_test

// Notes:
// - RelSlash: we only test hosts with forward-slash paths in fixtures; the
//   ToSlash conversion is what makes Windows output identical.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-md2site/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestValidateExtension - Extension validation
// ---------------------------------------------------------------------------

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{
			name:      "valid extension md",
			extension: ".md",
			wantErr:   nil,
		},
		{
			name:      "valid extension markdown",
			extension: ".markdown",
			wantErr:   nil,
		},
		{
			name:      "empty extension",
			extension: "",
			wantErr:   fileutil.ErrExtensionEmpty,
		},
		{
			name:      "missing dot",
			extension: "md",
			wantErr:   fileutil.ErrExtensionInvalid,
		},
		{
			name:      "lone dot",
			extension: ".",
			wantErr:   fileutil.ErrExtensionInvalid,
		},
		{
			name:      "forward slash",
			extension: "./etc",
			wantErr:   fileutil.ErrExtensionInvalid,
		},
		{
			name:      "backslash",
			extension: ".\\windows",
			wantErr:   fileutil.ErrExtensionInvalid,
		},
		{
			name:      "null byte injection",
			extension: ".md\x00exe",
			wantErr:   fileutil.ErrExtensionInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateExtension(tt.extension)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestReplaceExt - Output path derivation
// ---------------------------------------------------------------------------

func TestReplaceExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		ext  string
		want string
	}{
		{"markdown to html", "docs/a.md", ".html", "docs/a.html"},
		{"dotted directory untouched", "docs/v1.2/a.md", ".html", "docs/v1.2/a.html"},
		{"numeric prefix kept", "01_intro/03_My_Doc.md", ".html", "01_intro/03_My_Doc.html"},
		{"no extension appends", "README", ".html", "README.html"},
		{"markdown long extension", "notes.markdown", ".html", "notes.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.ReplaceExt(tt.path, tt.ext); got != tt.want {
				t.Errorf("ReplaceExt(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRelSlash - Relative asset paths
// ---------------------------------------------------------------------------

func TestRelSlash(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	tests := []struct {
		name   string
		from   string
		target string
		want   string
	}{
		{
			name:   "same directory",
			from:   filepath.Join(root, "a.html"),
			target: filepath.Join(root, "markdown.css"),
			want:   "markdown.css",
		},
		{
			name:   "one level deep",
			from:   filepath.Join(root, "docs", "a.html"),
			target: filepath.Join(root, "markdown.css"),
			want:   "../markdown.css",
		},
		{
			name:   "two levels deep",
			from:   filepath.Join(root, "docs", "guide", "a.html"),
			target: filepath.Join(root, "markdown.js"),
			want:   "../../markdown.js",
		},
		{
			name:   "sibling directory",
			from:   filepath.Join(root, "docs", "a.html"),
			target: filepath.Join(root, "assets", "markdown.css"),
			want:   "../assets/markdown.css",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fileutil.RelSlash(tt.from, tt.target)
			if err != nil {
				t.Fatalf("RelSlash() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("RelSlash() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRelSlash_IndependentOfWorkingDirectory(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	from := filepath.Join(root, "docs", "a.html")
	target := filepath.Join(root, "markdown.css")

	// A relative spelling of the same files must give the same answer as
	// long as it resolves to the same absolute locations.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	relFrom, err := filepath.Rel(wd, from)
	if err != nil {
		t.Skipf("temp dir not relative to cwd: %v", err)
	}

	abs, err := fileutil.RelSlash(from, target)
	if err != nil {
		t.Fatalf("RelSlash(abs) error: %v", err)
	}
	rel, err := fileutil.RelSlash(relFrom, target)
	if err != nil {
		t.Fatalf("RelSlash(rel) error: %v", err)
	}
	if abs != rel {
		t.Errorf("RelSlash differs: abs=%q rel=%q", abs, rel)
	}
}

// ---------------------------------------------------------------------------
// TestHasExtension - Markdown detection
// ---------------------------------------------------------------------------

func TestHasExtension(t *testing.T) {
	t.Parallel()

	exts := []string{".md", ".markdown"}

	tests := []struct {
		name string
		file string
		want bool
	}{
		{"md file", "a.md", true},
		{"markdown file", "a.markdown", true},
		{"python file", "a.py", false},
		{"upper case not matched", "A.MD", false},
		{"md inside name", "a.md.bak", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.HasExtension(tt.file, exts); got != tt.want {
				t.Errorf("HasExtension(%q) = %v, want %v", tt.file, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFileExists - File existence check
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.py")
	if err := os.WriteFile(file, []byte("print(1)"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if !fileutil.FileExists(file) {
		t.Errorf("FileExists(%q) = false, want true", file)
	}
	if fileutil.FileExists(dir) {
		t.Errorf("FileExists(dir) = true, want false")
	}
	if fileutil.FileExists(filepath.Join(dir, "missing.py")) {
		t.Errorf("FileExists(missing) = true, want false")
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath / TestIsURL - String classification
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"site", false},
		{"./site.yaml", true},
		{"/etc/site.yaml", true},
		{"C:\\site.yaml", true},
		{"my-site", false},
	}

	for _, tt := range tests {
		if got := fileutil.IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"https://cdn.example.com/a.js", true},
		{"http://localhost:8080", true},
		{"markdown.css", false},
		{"//cdn.example.com", false},
	}

	for _, tt := range tests {
		if got := fileutil.IsURL(tt.input); got != tt.want {
			t.Errorf("IsURL(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
