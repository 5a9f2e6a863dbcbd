package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for CLI operations.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("invalid usage")
	ErrReadPage       = errors.New("failed to read HTML page")
	ErrWriteExport    = errors.New("failed to write annotated page")
	ErrCommentIndex   = errors.New("no such element")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// runMain runs the CLI and returns the process exit code.
// Errors are printed to env.Stderr with a hint when one applies.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	err := run(ctx, args[1:], env)
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	return exitCodeFor(err)
}

// run dispatches to a command. With no command, or when the first argument
// is a flag or an existing directory, it builds.
func run(ctx context.Context, args []string, env *Environment) error {
	if len(args) == 0 {
		return runBuild(ctx, nil, env)
	}

	cmd, rest := args[0], args[1:]
	var err error
	switch cmd {
	case "build":
		err = runBuild(ctx, rest, env)
	case "annotate":
		err = runAnnotate(rest, env)
	case "extract":
		err = runExtract(rest, env)
	case "serve":
		err = runServe(ctx, rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "md2site %s\n", Version)
		return nil
	case "help", "-h", "--help":
		return runHelp(rest, env)
	default:
		if !isBuildArg(cmd) {
			return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
		}
		cmd = "build"
		err = runBuild(ctx, args, env)
	}

	if errors.Is(err, flag.ErrHelp) {
		return runHelp([]string{cmd}, env)
	}
	return err
}

// isBuildArg reports whether arg starts an implicit build: a flag or a
// directory.
func isBuildArg(arg string) bool {
	if strings.HasPrefix(arg, "-") {
		return true
	}
	info, err := os.Stat(arg)
	return err == nil && info.IsDir()
}

// usageError wraps a flag parsing error. flag.ErrHelp passes through so the
// caller can print help instead.
func usageError(cmd string, err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", ErrUsage, cmd, err)
}
