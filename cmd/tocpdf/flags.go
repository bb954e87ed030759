package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"
)

// Default file names used when positional arguments are omitted.
const (
	defaultInput   = "readme.md"
	defaultOutput  = "output.pdf"
	defaultTimeout = 30 * time.Second
)

// errQuietVerbose is returned when both --quiet and --verbose are set.
var errQuietVerbose = errors.New("--quiet and --verbose cannot be used together")

// cliFlags holds the parsed command-line flags.
type cliFlags struct {
	timeout time.Duration
	html    bool
	quiet   bool
	verbose bool
	version bool
	help    bool
}

// parseFlags parses args (without the program name) and returns positional args.
// Flags may appear before or after the file names.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	f := &cliFlags{}
	fs.DurationVarP(&f.timeout, "timeout", "t", defaultTimeout, "PDF generation timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.html, "html", false, "also write the assembled HTML")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed logs")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	if f.timeout <= 0 {
		return nil, nil, fmt.Errorf("invalid --timeout %s: must be positive", f.timeout)
	}
	if f.quiet && f.verbose {
		return nil, nil, errQuietVerbose
	}

	return f, fs.Args(), nil
}

// resolvePaths applies the default input and output names.
// Arguments beyond the second are returned as extra.
func resolvePaths(positional []string) (input, output string, extra []string) {
	input, output = defaultInput, defaultOutput
	if len(positional) > 0 {
		input = positional[0]
	}
	if len(positional) > 1 {
		output = positional[1]
	}
	if len(positional) > 2 {
		extra = positional[2:]
	}
	return input, output, extra
}
