package pipeline

import (
	"context"
	"fmt"
	"html"
	"strings"
)

// TOCTitle is the heading text of the generated table of contents.
const TOCTitle = "Table of Contents"

// stylesheet is the fixed CSS embedded in every document.
const stylesheet = `
        body {
            font-family: Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
        }

        h1 {
            color: #2c3e50;
            border-bottom: 2px solid #3498db;
            padding-bottom: 10px;
        }

        h2 {
            color: #34495e;
            margin-top: 30px;
            border-bottom: 1px solid #bdc3c7;
            padding-bottom: 5px;
        }

        h3 {
            color: #555;
            margin-top: 20px;
        }

        .table-of-contents {
            background-color: #f8f9fa;
            padding: 20px;
            border-radius: 5px;
            margin-bottom: 30px;
        }

        .table-of-contents h1 {
            margin-top: 0;
        }

        .table-of-contents ul {
            list-style-type: none;
            padding-left: 0;
        }

        .table-of-contents li {
            margin: 5px 0;
            padding-left: 20px;
        }

        .table-of-contents a {
            color: #3498db;
            text-decoration: none;
        }

        .table-of-contents a:hover {
            text-decoration: underline;
        }

        code {
            background-color: #f4f4f4;
            padding: 2px 5px;
            border-radius: 3px;
            font-family: 'Courier New', monospace;
        }

        pre {
            background-color: #f4f4f4;
            padding: 15px;
            border-radius: 5px;
            overflow-x: auto;
        }

        pre code {
            background-color: transparent;
            padding: 0;
        }

        table {
            border-collapse: collapse;
            width: 100%;
            margin: 20px 0;
        }

        table th, table td {
            border: 1px solid #ddd;
            padding: 8px;
            text-align: left;
        }

        table th {
            background-color: #3498db;
            color: white;
        }

        table tr:nth-child(even) {
            background-color: #f9f9f9;
        }

        hr {
            border: none;
            border-top: 2px solid #bdc3c7;
            margin: 30px 0;
        }

        a {
            color: #3498db;
        }
`

// documentHead and documentTail surround the TOC and body fragments.
// The document is a plain concatenation, so content is never scanned for placeholders.
const (
	documentHead = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>` + stylesheet + `    </style>
</head>
<body>
`
	documentTail = `
</body>
</html>
`
)

// pageBreak forces the body to start on a new page after the TOC.
const pageBreak = `<div style="page-break-after: always;"></div>` + "\n"

// BuildTOC renders the table of contents for headings in the given order.
// Items are indented by two spaces per level below 1 in the markup only;
// the list itself stays flat.
func BuildTOC(headings []Heading) string {
	var buf strings.Builder
	buf.WriteString(`<div class="table-of-contents">` + "\n")
	buf.WriteString("<h1>" + TOCTitle + "</h1>\n")
	buf.WriteString("<ul>\n")
	for _, h := range headings {
		if h.Level > 1 {
			buf.WriteString(strings.Repeat("  ", h.Level-1))
		}
		buf.WriteString(`<li><a href="#`)
		buf.WriteString(html.EscapeString(h.ID))
		buf.WriteString(`">`)
		buf.WriteString(html.EscapeString(h.Text))
		buf.WriteString("</a></li>\n")
	}
	buf.WriteString("</ul>\n</div>\n")
	buf.WriteString(pageBreak)
	return buf.String()
}

// AssembleDocument wraps the TOC and body fragments in a complete HTML
// document carrying the fixed stylesheet.
func AssembleDocument(toc, body string) string {
	return documentHead + toc + body + documentTail
}

// Render runs the HTML side of the pipeline: heading scan, Markdown
// conversion, relative path rewriting against sourceDir and assembly.
// It returns the full document and the headings used for its TOC.
func Render(ctx context.Context, conv HTMLConverter, content, sourceDir string) (string, []Heading, error) {
	headings := ExtractHeadings(content)

	body, err := conv.ToHTML(ctx, content)
	if err != nil {
		return "", nil, err
	}

	body, err = RewriteRelativePaths(body, sourceDir)
	if err != nil {
		return "", nil, fmt.Errorf("rewriting relative paths: %w", err)
	}

	return AssembleDocument(BuildTOC(headings), body), headings, nil
}
