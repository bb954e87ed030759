package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tocpdf "github.com/alnah/go-tocpdf"
	"github.com/alnah/go-tocpdf/internal/fileutil"
)

// runMain executes the CLI with args (without the program name) and returns
// the exit code. SIGINT and SIGTERM cancel a running conversion.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()
	return runContext(ctx, args, env)
}

// runContext is runMain with the cancellation context supplied by the caller.
func runContext(ctx context.Context, args []string, env *Environment) int {
	// Help is checked before anything touches the filesystem.
	if len(args) > 0 && isHelpToken(args[0]) {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	flags, positional, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		fmt.Fprintf(env.Stderr, "Run '%s --help' for usage.\n", programName)
		return ExitFailure
	}
	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "%s %s\n", programName, Version)
		return ExitSuccess
	}

	logger := newLogger(env.Stderr, flags)
	configureMaxProcs(logger)

	input, output, extra := resolvePaths(positional)
	if len(extra) > 0 {
		logger.Warn("ignoring extra arguments", "args", extra)
	}

	if !fileutil.FileExists(input) {
		printMissingInput(env.Stderr, input)
		return ExitFailure
	}

	err = convertFile(ctx, env, logger, flags, input, output)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error converting %s to PDF: %v%s\n", input, err, hintFor(err))
		return exitCodeFor(err)
	}

	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "PDF successfully created: %s\n", output)
	}
	return ExitSuccess
}

// convertFile converts input to output and writes the optional HTML copy.
func convertFile(ctx context.Context, env *Environment, logger *slog.Logger, flags *cliFlags, input, output string) error {
	start := env.Now()

	conv, err := env.NewConverter(flags.timeout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := conv.Close(); cerr != nil {
			logger.Warn("failed to close converter", "error", cerr)
		}
	}()

	logger.Debug("converting", "input", input, "output", output, "timeout", flags.timeout)

	result, err := conv.ConvertFile(ctx, input, output)
	if err != nil {
		return err
	}

	if flags.html {
		htmlPath := htmlPathFor(output)
		if err := fileutil.ReplaceFile(htmlPath, result.HTML); err != nil {
			return fmt.Errorf("writing HTML %s: %w", htmlPath, err)
		}
		logger.Info("wrote HTML", "path", htmlPath)
	}

	logResult(logger, result, env.Now().Sub(start))
	return nil
}

// htmlPathFor returns where --html writes the assembled document.
// It never collides with the PDF itself.
func htmlPathFor(output string) string {
	p := fileutil.SiblingPath(output, ".html")
	if p == output {
		return output + ".html"
	}
	return p
}

// logResult logs conversion statistics at debug level.
func logResult(logger *slog.Logger, result *tocpdf.ConvertResult, elapsed time.Duration) {
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	pages, err := result.PageCount()
	if err != nil {
		logger.Debug("could not count pages", "error", err)
	}
	logger.Debug("conversion finished",
		"headings", len(result.Headings),
		"bytes", len(result.PDF),
		"pages", pages,
		"duration", elapsed.Round(time.Millisecond),
	)
}
