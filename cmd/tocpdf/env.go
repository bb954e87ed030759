package main

import (
	"context"
	"io"
	"os"
	"time"

	tocpdf "github.com/alnah/go-tocpdf"
)

// fileConverter is the part of tocpdf.Converter the CLI depends on.
type fileConverter interface {
	ConvertFile(ctx context.Context, inputPath, outputPath string) (*tocpdf.ConvertResult, error)
	Close() error
}

// Environment holds injectable dependencies for testability.
// Includes I/O, time, and the converter factory.
type Environment struct {
	Now          func() time.Time
	Stdout       io.Writer
	Stderr       io.Writer
	NewConverter func(timeout time.Duration) (fileConverter, error)
}

// DefaultEnv returns the production environment backed by headless Chrome.
func DefaultEnv() *Environment {
	return &Environment{
		Now:          time.Now,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		NewConverter: newChromeConverter,
	}
}

func newChromeConverter(timeout time.Duration) (fileConverter, error) {
	return tocpdf.NewConverter(tocpdf.WithTimeout(timeout))
}
