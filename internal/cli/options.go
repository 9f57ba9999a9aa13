// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"hydropathy/internal/cliutil"
	"hydropathy/internal/config"
	"hydropathy/internal/hydropathy"
)

// Options holds all CLI flags and the input path.
type Options struct {
	Input string

	// Calculation
	WindowSize int
	Threads    int
	Strict     bool

	// Output
	Format string
	Output string
	Width  int
	Height int

	// Run
	ConfigFile string
	Verbose    bool
	Quiet      bool
	Version    bool

	set map[string]bool
}

// IsSet reports whether flag name was given explicitly.
func (o Options) IsSet(name string) bool { return o.set[name] }

// ParseArgs registers and parses all flags, returns an Options struct.
// Flags and the input path may appear in any order.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.IntVar(&opt.WindowSize, "s", hydropathy.DefaultWindow, "sliding window size (residues) [6]")
	fs.IntVar(&opt.Threads, "threads", 0, "calculator workers (0 = all CPUs) [0]")
	fs.BoolVar(&opt.Strict, "strict", false, "reject a second '>' header instead of reading it as sequence [false]")

	fs.StringVar(&opt.Format, "format", "terminal", "output: terminal | png | svg [terminal]")
	fs.StringVar(&opt.Output, "o", "", "image output path (png/svg) [hydropathy.<format>]")
	fs.IntVar(&opt.Width, "width", 0, "chart width: columns, or pixels for images (0 = auto) [0]")
	fs.IntVar(&opt.Height, "height", 0, "chart height: rows, or pixels for images (0 = default) [0]")

	fs.StringVar(&opt.ConfigFile, "config", "", "YAML or TOML settings file []")
	fs.BoolVar(&opt.Verbose, "verbose", false, "debug logging [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "errors only [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	opt.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { opt.set[f.Name] = true })
	if opt.Version {
		return opt, nil
	}

	// Validation
	posArgs = append(posArgs, fs.Args()...)
	inputs, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	switch len(inputs) {
	case 0:
		return opt, errors.New("an input FASTA file is required")
	case 1:
		opt.Input = inputs[0]
	default:
		return opt, fmt.Errorf("exactly one input file is supported, got %d", len(inputs))
	}
	if opt.IsSet("s") && opt.WindowSize < 1 {
		return opt, fmt.Errorf("-s: %w: got %d", hydropathy.ErrInvalidWindowSize, opt.WindowSize)
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.Width < 0 || opt.Height < 0 {
		return opt, errors.New("--width and --height must be ≥ 0")
	}
	if opt.Verbose && opt.Quiet {
		return opt, errors.New("--verbose conflicts with --quiet")
	}
	return opt, nil
}

// Apply overlays explicitly set flags on cfg. Defaults of unset flags never
// override values from a config file.
func (o Options) Apply(cfg config.Config) config.Config {
	if o.IsSet("s") {
		cfg.WindowSize = o.WindowSize
	}
	if o.IsSet("threads") {
		cfg.Threads = o.Threads
	}
	if o.IsSet("strict") {
		cfg.Strict = o.Strict
	}
	if o.IsSet("format") {
		cfg.Format = o.Format
	}
	if o.IsSet("o") {
		cfg.Output = o.Output
	}
	if o.IsSet("width") {
		cfg.Width = o.Width
	}
	if o.IsSet("height") {
		cfg.Height = o.Height
	}
	if o.Verbose {
		cfg.LogLevel = "debug"
	}
	if o.Quiet {
		cfg.LogLevel = "error"
	}
	return cfg
}
