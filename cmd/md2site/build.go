package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/hints"
)

// runBuild converts a directory tree and writes the index page.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: build takes at most one directory, got %d", ErrUsage, len(positional))
	}

	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(flags.common.config)))
			}
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	if err := mergeFlags(flags, positional, cfg); err != nil {
		return err
	}

	var logWriter io.Writer = env.Stdout
	if flags.common.quiet {
		logWriter = nil
	}

	builder, err := md2site.NewBuilder(builderOptions(cfg, logWriter)...)
	if err != nil {
		return err
	}

	root := cfg.Input.Root
	if root == "" {
		root = "."
	}

	start := env.Now()
	result, err := builder.Build(ctx, root)
	if err != nil {
		return err
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Built %d page(s) in %v\n", len(result.Pages), env.Now().Sub(start).Round(time.Millisecond))
	}
	return nil
}

// mergeFlags copies explicitly set flags over config values.
func mergeFlags(flags *buildFlags, positional []string, cfg *config.Config) error {
	if len(positional) == 1 {
		cfg.Input.Root = positional[0]
	}
	if flags.index != "" {
		cfg.Index.Path = flags.index
	}
	if flags.indexTitle != "" {
		cfg.Index.Title = flags.indexTitle
	}
	if flags.stylesheet != "" {
		cfg.Index.Stylesheet = flags.stylesheet
	}
	cfg.Input.Exclude = append(cfg.Input.Exclude, flags.exclude...)
	if len(flags.codeExts) > 0 {
		cfg.Code.Extensions = flags.codeExts
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}
	if flags.assetDir != "" {
		cfg.Assets.OutputDir = flags.assetDir
	}
	if flags.highlight != "" {
		switch strings.ToLower(flags.highlight) {
		case config.HighlightClient, config.HighlightServer:
			cfg.Highlight.Mode = flags.highlight
		default:
			return fmt.Errorf("%w: --highlight must be client or server, got %q", ErrUsage, flags.highlight)
		}
	}
	if flags.style != "" {
		cfg.Highlight.Style = flags.style
	}
	return nil
}

// builderOptions maps the non-empty config fields to builder options.
// Empty fields keep the builder defaults.
func builderOptions(cfg *config.Config, logWriter io.Writer) []md2site.Option {
	opts := []md2site.Option{md2site.WithLogWriter(logWriter)}

	if len(cfg.Input.Extensions) > 0 {
		opts = append(opts, md2site.WithMarkdownExtensions(cfg.Input.Extensions...))
	}
	if len(cfg.Input.Exclude) > 0 {
		opts = append(opts, md2site.WithExclude(cfg.Input.Exclude...))
	}
	if len(cfg.Code.Extensions) > 0 {
		opts = append(opts, md2site.WithCodeExtensions(cfg.Code.Extensions...))
	}
	if cfg.Code.Label != "" {
		opts = append(opts, md2site.WithCodeLabel(cfg.Code.Label))
	}
	if cfg.Code.Placeholder != "" {
		opts = append(opts, md2site.WithPlaceholder(cfg.Code.Placeholder))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, md2site.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Assets.OutputDir != "" {
		opts = append(opts, md2site.WithAssetDir(cfg.Assets.OutputDir))
	}
	if cfg.Index.Path != "" {
		opts = append(opts, md2site.WithIndexPath(cfg.Index.Path))
	}
	if cfg.Index.Title != "" {
		opts = append(opts, md2site.WithIndexTitle(cfg.Index.Title))
	}
	if cfg.Index.Stylesheet != "" {
		opts = append(opts, md2site.WithStylesheet(cfg.Index.Stylesheet))
	}
	if cfg.Highlight.ServerHighlight() {
		opts = append(opts, md2site.WithServerHighlighting(cfg.Highlight.Style))
	}
	return opts
}
