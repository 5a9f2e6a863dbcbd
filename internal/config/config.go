package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/pipeline"
	"github.com/alnah/go-md2site/internal/walker"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// MaxInputSize limits YAML input to prevent memory exhaustion (1MB).
const MaxInputSize = 1 << 20

// AppDirName is the directory searched under the user config directory.
const AppDirName = "go-md2site"

// Field length limits.
const (
	MaxPathLength        = 4096 // Typical PATH_MAX
	MaxURLLength         = 2048 // Browser limit
	MaxLabelLength       = 100  // Code section heading
	MaxPlaceholderLength = 500  // Missing code text
	MaxTitleLength       = 200  // Index page title
	MaxStyleLength       = 50   // Chroma style name
	MaxPatternLength     = 256  // One exclude glob
)

// Highlight modes.
const (
	HighlightClient = "client" // highlight.js in the browser (default)
	HighlightServer = "server" // chroma at build time
)

// Config holds all configuration for a site build.
// Empty fields keep the builder defaults.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Code      CodeConfig      `yaml:"code"`
	Assets    AssetsConfig    `yaml:"assets"`
	Index     IndexConfig     `yaml:"index"`
	Highlight HighlightConfig `yaml:"highlight"`
}

// InputConfig defines the source tree.
type InputConfig struct {
	Root       string   `yaml:"root"`       // Directory to walk (empty = current directory)
	Extensions []string `yaml:"extensions"` // Markdown extensions (empty = [".md"])
	Exclude    []string `yaml:"exclude"`    // doublestar globs skipped during the walk
}

// CodeConfig defines the paired source-code section of each page.
type CodeConfig struct {
	Extensions  []string `yaml:"extensions"`  // Tried in order (empty = [".py"])
	Label       string   `yaml:"label"`       // Heading above the code block
	Placeholder string   `yaml:"placeholder"` // Shown when no paired file exists
}

// AssetsConfig defines asset loading and output options.
type AssetsConfig struct {
	BasePath  string `yaml:"basePath"`  // Override directory (empty = embedded assets only)
	OutputDir string `yaml:"outputDir"` // Where markdown.css/js are written (empty = root)
}

// IndexConfig defines the index page.
type IndexConfig struct {
	Path       string `yaml:"path"`       // Output file (empty = ./index.html)
	Title      string `yaml:"title"`      // Page title (empty = "Index Page")
	Stylesheet string `yaml:"stylesheet"` // href of the index stylesheet (empty = "style.css")
}

// HighlightConfig selects where code is highlighted.
type HighlightConfig struct {
	Mode  string `yaml:"mode"`  // "client" or "server" (empty = client)
	Style string `yaml:"style"` // Chroma style, server mode only
}

// ServerHighlight reports whether code is highlighted at build time.
func (h HighlightConfig) ServerHighlight() bool {
	return strings.EqualFold(h.Mode, HighlightServer)
}

// Validate checks enums, extensions, globs and field lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually (e.g., library users).
func (c *Config) Validate() error {
	if err := validateFieldLength("input.root", c.Input.Root, MaxPathLength); err != nil {
		return err
	}
	if err := validateExtensions("input.extensions", c.Input.Extensions); err != nil {
		return err
	}
	for i, p := range c.Input.Exclude {
		if err := validateFieldLength(fmt.Sprintf("input.exclude[%d]", i), p, MaxPatternLength); err != nil {
			return err
		}
	}
	if err := walker.ValidatePatterns(c.Input.Exclude); err != nil {
		return fmt.Errorf("%w: input.exclude: %v", ErrInvalidConfig, err)
	}

	// Validate code fields
	if err := validateExtensions("code.extensions", c.Code.Extensions); err != nil {
		return err
	}
	if err := validateFieldLength("code.label", c.Code.Label, MaxLabelLength); err != nil {
		return err
	}
	if err := validateFieldLength("code.placeholder", c.Code.Placeholder, MaxPlaceholderLength); err != nil {
		return err
	}

	// Validate assets fields
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.outputDir", c.Assets.OutputDir, MaxPathLength); err != nil {
		return err
	}

	// Validate index fields
	if err := validateFieldLength("index.path", c.Index.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("index.title", c.Index.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("index.stylesheet", c.Index.Stylesheet, MaxURLLength); err != nil {
		return err
	}

	// Validate highlight fields
	if c.Highlight.Mode != "" {
		switch strings.ToLower(c.Highlight.Mode) {
		case HighlightClient, HighlightServer:
			// valid
		default:
			return fmt.Errorf("%w: highlight.mode: invalid value %q (must be client or server)", ErrInvalidConfig, c.Highlight.Mode)
		}
	}
	if err := validateFieldLength("highlight.style", c.Highlight.Style, MaxStyleLength); err != nil {
		return err
	}
	if c.Highlight.Style != "" && !pipeline.ValidHighlightStyle(c.Highlight.Style) {
		return fmt.Errorf("%w: highlight.style: unknown style %q", ErrInvalidConfig, c.Highlight.Style)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

func validateExtensions(fieldName string, exts []string) error {
	for i, ext := range exts {
		if err := fileutil.ValidateExtension(ext); err != nil {
			return fmt.Errorf("%w: %s[%d]: %v", ErrInvalidConfig, fieldName, i, err)
		}
	}
	return nil
}

// DefaultConfig returns a neutral configuration: every field empty, so the
// builder defaults apply.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := unmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// unmarshalStrict parses YAML, rejecting unknown fields and oversized input.
func unmarshalStrict(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return errors.New("empty document")
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("input exceeds maximum size: %d bytes (max %d)", len(data), MaxInputSize)
	}
	return yaml.UnmarshalWithOptions(data, v, yaml.Strict())
}

// SearchPaths lists the files tried for a config name, in order:
// current directory then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
