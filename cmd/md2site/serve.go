package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"syscall"

	"github.com/alnah/go-md2site/internal/hints"
	"github.com/alnah/go-md2site/internal/preview"
)

// runServe serves a built site until interrupted.
func runServe(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseServeFlags(args)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: serve takes at most one directory", ErrUsage)
	}

	dir := "."
	if len(positional) == 1 {
		dir = positional[0]
	}
	addr := flags.addr
	if addr == "" {
		addr = preview.DefaultAddr
	}

	log := newServeLogger(env, flags)
	srv, err := preview.New(dir, log)
	if err != nil {
		return err
	}

	fmt.Fprintf(env.Stdout, "Serving %s on %s (Ctrl-C to stop)\n", dir, addr)
	if err := preview.ListenAndServe(ctx, addr, srv, log); err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return fmt.Errorf("serving %s: %w%s", addr, err, hints.ForAddressInUse(addr))
		}
		return fmt.Errorf("serving %s: %w", addr, err)
	}
	return nil
}

// newServeLogger returns the request logger for serve.
func newServeLogger(env *Environment, flags *serveFlags) *slog.Logger {
	if flags.quiet {
		return slog.New(slog.DiscardHandler)
	}
	level := slog.LevelInfo
	if flags.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(env.Stderr, &slog.HandlerOptions{Level: level}))
}
