package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name        string
		styleName   string
		wantErr     error
		wantContain string
	}{
		{
			name:        "loads page stylesheet",
			styleName:   StyleName,
			wantContain: ".comment",
		},
		{
			name:      "returns ErrStyleNotFound for nonexistent",
			styleName: "nonexistent-style-xyz",
			wantErr:   ErrStyleNotFound,
		},
		{
			name:      "returns ErrInvalidAssetName for empty name",
			styleName: "",
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "returns ErrInvalidAssetName for path traversal",
			styleName: "../secret",
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "returns ErrInvalidAssetName for name with dot",
			styleName: "style.name",
			wantErr:   ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadStyle(tt.styleName)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadStyle(%q) error = %v, want %v", tt.styleName, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.styleName, err)
			}

			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("LoadStyle(%q) content should contain %q", tt.styleName, tt.wantContain)
			}
		})
	}
}

func TestEmbeddedLoader_LoadScript(t *testing.T) {
	t.Parallel()

	got, err := NewEmbeddedLoader().LoadScript(ScriptName)
	if err != nil {
		t.Fatalf("LoadScript(%q) error: %v", ScriptName, err)
	}

	// The annotation script's observable contract.
	wantParts := []string{
		"window.MathJax",
		"addMenu: [0, '', '']",
		"scrollIntoView({ behavior: 'smooth' })",
		"'dblclick'",
		"comment-input-container",
		"comment-input",
		"'comment'",
		"save-button",
		"article_with_comments.html",
		"URL.revokeObjectURL(url)",
		"new WeakSet()",
	}
	for _, part := range wantParts {
		if !strings.Contains(got, part) {
			t.Errorf("annotation script should contain %q", part)
		}
	}

	if _, err := NewEmbeddedLoader().LoadScript("missing"); !errors.Is(err, ErrScriptNotFound) {
		t.Errorf("LoadScript(missing) error = %v, want ErrScriptNotFound", err)
	}
}

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name         string
		templateName string
		wantErr      error
		wantContain  []string
	}{
		{
			name:         "loads page template",
			templateName: PageTemplateName,
			wantContain: []string{
				"<!DOCTYPE html>",
				"{{.StylesheetHref}}",
				"{{.ScriptHref}}",
				"highlight.js/11.4.0",
				"tex-mml-chtml.js",
				"polyfill.min.js",
				"STIX+Two+Math",
				"{{.Code}}",
			},
		},
		{
			name:         "loads index template",
			templateName: IndexTemplateName,
			wantContain:  []string{"{{.Tree}}", "{{.StylesheetHref}}", "tree-container"},
		},
		{
			name:         "returns ErrTemplateNotFound for nonexistent",
			templateName: "nonexistent-template-xyz",
			wantErr:      ErrTemplateNotFound,
		},
		{
			name:         "returns ErrInvalidAssetName for path traversal",
			templateName: "../secret",
			wantErr:      ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadTemplate(tt.templateName)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadTemplate(%q) error = %v, want %v", tt.templateName, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("LoadTemplate(%q) unexpected error: %v", tt.templateName, err)
			}

			for _, part := range tt.wantContain {
				if !strings.Contains(got, part) {
					t.Errorf("LoadTemplate(%q) content should contain %q", tt.templateName, part)
				}
			}
		})
	}
}

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		wantErr error
	}{
		{"markdown", nil},
		{"my-style", nil},
		{"my_style", nil},
		{"Style123", nil},
		{"", ErrInvalidAssetName},
		{"path/to/style", ErrInvalidAssetName},
		{"path\\to\\style", ErrInvalidAssetName},
		{"..", ErrInvalidAssetName},
		{"style.css", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssetName(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
