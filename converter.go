package tocpdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-tocpdf/internal/fileutil"
	"github.com/alnah/go-tocpdf/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
	_ pdfConverter           = (*rodConverter)(nil)
	_ pdfRenderer            = (*rodRenderer)(nil)
)

// Converter orchestrates the markdown-to-PDF conversion pipeline.
// Create with NewConverter(), use Convert() or ConvertFile(), and Close() when done.
type Converter struct {
	cfg           converterConfig
	htmlConverter pipeline.HTMLConverter
	pdfConverter  pdfConverter
}

// NewConverter creates a Converter with default configuration.
// The browser is started lazily on the first PDF conversion.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:           converterConfig{timeout: defaultTimeout},
		htmlConverter: pipeline.NewGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(c)
	}

	// Create PDF converter if not injected (e.g., by tests)
	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}

	return c, nil
}

// Convert runs the full pipeline and returns the result containing HTML and PDF.
// The converter timeout bounds the whole call on top of any deadline in ctx.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	htmlContent, headings, err := pipeline.Render(ctx, c.htmlConverter, input.Markdown, input.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	res := &ConvertResult{
		HTML:     []byte(htmlContent),
		Headings: toHeadings(headings),
	}

	if input.HTMLOnly {
		return res, nil
	}

	pdfBytes, err := c.pdfConverter.ToPDF(ctx, htmlContent)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	res.PDF = pdfBytes
	return res, nil
}

// ConvertFile reads the Markdown file at inputPath, converts it and writes the
// PDF to outputPath, replacing any existing file.
func (c *Converter) ConvertFile(ctx context.Context, inputPath, outputPath string) (*ConvertResult, error) {
	content, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}

	result, err := c.Convert(ctx, Input{
		Markdown:  string(content),
		SourceDir: filepath.Dir(inputPath),
	})
	if err != nil {
		return nil, err
	}

	if err := fileutil.ReplaceFile(outputPath, result.PDF); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWritePDF, err)
	}

	return result, nil
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// toHeadings converts internal pipeline headings to the public type.
func toHeadings(in []pipeline.Heading) []Heading {
	if len(in) == 0 {
		return nil
	}
	out := make([]Heading, len(in))
	for i, h := range in {
		out[i] = Heading(h)
	}
	return out
}
