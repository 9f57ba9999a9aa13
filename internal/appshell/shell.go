package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is an app entry point returning a process exit code.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs run under a context canceled by SIGINT/SIGTERM and exits with
// its code. A run that was interrupted but reported success exits 130.
func Main(run RunFunc) {
	os.Exit(exec(run, os.Args[1:], os.Stdout, os.Stderr))
}

func exec(run RunFunc, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, argv, stdout, stderr)
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	return code
}
