package tocpdf

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Input contains conversion parameters.
type Input struct {
	Markdown  string // Markdown content, may be empty
	SourceDir string // Directory relative image and link paths resolve against; empty leaves them as written
	HTMLOnly  bool   // Skip PDF generation
}

// Heading is a table of contents entry.
type Heading struct {
	Level int    // number of '#' characters
	Text  string // heading text as written
	ID    string // anchor shared by the TOC link and the body heading
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	HTML     []byte    // assembled HTML document
	PDF      []byte    // nil when Input.HTMLOnly is set
	Headings []Heading // TOC entries in document order
}

// pdfcpuSetup keeps pdfcpu away from the user's config directory.
var pdfcpuSetup sync.Once

// PageCount returns the number of pages in the rendered PDF.
func (r *ConvertResult) PageCount() (int, error) {
	if r == nil || len(r.PDF) == 0 {
		return 0, ErrNoPDF
	}

	pdfcpuSetup.Do(api.DisableConfigDir)

	n, err := api.PageCount(bytes.NewReader(r.PDF), nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPDFInspect, err)
	}
	return n, nil
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout time.Duration
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("tocpdf: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}
