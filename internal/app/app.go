package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"hydropathy/internal/cli"
	"hydropathy/internal/cmdutil"
	"hydropathy/internal/config"
	"hydropathy/internal/fasta"
	"hydropathy/internal/hydropathy"
	"hydropathy/internal/region"
	"hydropathy/internal/render"
	"hydropathy/internal/version"
	"hydropathy/internal/writers"
)

// Exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 2
	exitStdout   = 3
	exitCanceled = 130
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("hydropathy")
	fs.SetOutput(io.Discard)

	usage := func(code int) int {
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return exitOK
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return exitStdout
		}
		return code
	}

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		return usage(exitOK)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return usage(exitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return usage(exitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "hydropathy version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return exitOK
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return exitStdout
		}
		return exitOK
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitUsage
	}
	cfg = opts.Apply(cfg)
	logger := cmdutil.NewLogger(stderr, cfg.LogLevel)
	logger.Debug("settings", "input", opts.Input, "window", cfg.WindowSize, "threshold", cfg.Threshold,
		"format", cfg.Format, "output", cfg.Output, "strict", cfg.Strict, "threads", cfg.Threads, "size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height), "config", opts.ConfigFile)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid settings", "err", err)
		return exitUsage
	}
	format, err := writers.Lookup(cfg.Format)
	if err != nil {
		logger.Error("invalid settings", "err", err)
		return exitUsage
	}

	if code := run(parent, logger, opts.Input, cfg, format, outw, stdout); code != exitOK {
		return code
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return exitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return exitStdout
	}
	return exitOK
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// run executes load → compute → present → render.
func run(ctx context.Context, logger *log.Logger, input string, cfg config.Config, format writers.Format, outw, stdout io.Writer) int {
	rec, err := fasta.Load(input, fasta.Options{Strict: cfg.Strict})
	if err != nil {
		var fae *fasta.FileAccessError
		if errors.As(err, &fae) {
			logger.Error("cannot read input", "path", fae.Path, "err", fae.Err)
		} else {
			logger.Error("invalid input", "err", err)
		}
		return exitFailure
	}
	scale := hydropathy.KyteDoolittle()
	logger.Debug("loaded sequence", "id", rec.ID, "residues", len([]rune(rec.Seq)), "unscored", countUnscored(scale, rec.Seq))

	calc := hydropathy.Calculator{Scale: scale, Window: cfg.WindowSize, Workers: cfg.Threads}
	prof, err := calc.ProfileContext(ctx, rec.Seq)
	if err != nil {
		if ctx.Err() != nil {
			return exitCanceled
		}
		logger.Error("profile failed", "err", err)
		return exitUsage
	}

	pres := region.NewPresenter(cfg.Threshold)
	bundle := pres.Present(rec.ID, prof)
	logger.Info("profile computed", "id", rec.ID, "residues", len(prof), "window", cfg.WindowSize,
		"scale", scale.Name(), "highlighted", len(bundle.Highlighted))

	if !format.File {
		width := cfg.Width
		if width == 0 {
			width = terminalWidth(stdout)
		}
		err := pres.Render(ctx, format.New(writers.Target{Out: outw, Width: width, Height: cfg.Height}), bundle)
		return renderExit(ctx, logger, err)
	}

	path := cfg.Output
	if path == "" {
		path = format.DefaultPath
	}
	fh, err := os.Create(path)
	if err != nil {
		logger.Error("cannot create output", "path", path, "err", err)
		return exitFailure
	}
	bw := bufio.NewWriter(fh)
	err = pres.Render(ctx, format.New(writers.Target{Out: bw, Width: cfg.Width, Height: cfg.Height}), bundle)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := fh.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return renderExit(ctx, logger, err)
	}
	logger.Info("wrote chart", "path", path, "format", format.Name)
	return exitOK
}

func renderExit(ctx context.Context, logger *log.Logger, err error) int {
	switch {
	case err == nil:
		return exitOK
	case ctx.Err() != nil:
		return exitCanceled
	case writers.IsBrokenPipe(err):
		return exitOK
	case errors.Is(err, render.ErrEmptyChart):
		logger.Error("nothing to plot: the input has no residues")
		return exitFailure
	default:
		logger.Error("render failed", "err", err)
		return exitFailure
	}
}

// countUnscored counts residues outside the scale; they score 0.
func countUnscored(s hydropathy.Scale, seq string) int {
	n := 0
	for _, r := range seq {
		if !s.Has(r) {
			n++
		}
	}
	return n
}
