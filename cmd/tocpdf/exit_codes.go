package main

import (
	"context"
	"errors"

	tocpdf "github.com/alnah/go-tocpdf"
	"github.com/alnah/go-tocpdf/internal/hints"
)

// Exit codes for the tocpdf CLI.
const (
	ExitSuccess = 0 // Successful conversion or help
	ExitFailure = 1 // Missing input, bad flags or failed conversion
)

// exitCodeFor returns the exit code for an error.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}

// hintFor returns an actionable hint for well-known failures, or "".
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func hintFor(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, tocpdf.ErrBrowserConnect),
		errors.Is(err, tocpdf.ErrPageCreate):
		return hints.ForBrowserConnect()
	case errors.Is(err, tocpdf.ErrPageLoad):
		return hints.ForTimeout()
	case errors.Is(err, tocpdf.ErrWritePDF):
		return hints.ForOutputDirectory()
	}
	return ""
}
