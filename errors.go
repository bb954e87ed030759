package tocpdf

import (
	"errors"

	"github.com/alnah/go-tocpdf/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// File errors.
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWritePDF     = errors.New("failed to write PDF file")

	// Result inspection errors.
	ErrNoPDF      = errors.New("result has no PDF")
	ErrPDFInspect = errors.New("failed to inspect PDF")
)
