// Package pipeline implements the Markdown-to-HTML side of the conversion.
//
// The stages run in order:
//   - Heading scan of the raw Markdown (ExtractHeadings)
//   - Markdown to HTML fragment conversion via Goldmark (GoldmarkConverter)
//   - TOC generation and document assembly with the fixed stylesheet
//
// PDF generation is handled separately by the root tocpdf package using
// headless Chrome (go-rod).
package pipeline
