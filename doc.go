// Package tocpdf converts Markdown documents to PDF with a clickable table of
// contents, using headless Chrome.
//
// # Quick Start
//
//	conv, err := tocpdf.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.ConvertFile(ctx, "readme.md", "output.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Convert works on in-memory Markdown and returns the assembled HTML
// (result.HTML), the PDF bytes (result.PDF) and the headings listed in the
// table of contents. Use Input.HTMLOnly to skip PDF generation.
//
// # Conversion Pipeline
//
//  1. Heading scan: every line starting with one or more '#' followed by
//     whitespace becomes a TOC entry, in document order
//  2. Markdown to HTML via Goldmark (tables, highlighted fenced code, heading ids)
//  3. Assembly: TOC, page break and body wrapped in a fixed HTML/CSS document
//  4. PDF rendering via headless Chrome (go-rod)
//
// Heading identifiers are derived by Slugify and shared by the TOC links and
// the body anchors. Identical headings get identical identifiers.
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package tocpdf
