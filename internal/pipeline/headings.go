package pipeline

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Heading is a Markdown heading found by a line scan of the source.
type Heading struct {
	Level int    // number of leading '#' characters, 1 or more
	Text  string // remainder of the line after the marker
	ID    string // anchor identifier, see Slugify
}

// space is a regexp class body for Unicode whitespace. RE2's \s is ASCII only,
// so vertical tab, the information separators, NEL and the Z categories
// (no-break space, line and paragraph separators) are listed explicitly.
const space = `\s\x0b\x1c-\x1f\x85\p{Z}`

var (
	// atxHeadingLine matches a trimmed line: one or more '#', whitespace, then the text.
	atxHeadingLine = regexp.MustCompile(`^(#+)[` + space + `]+(.+)$`)

	// slugDisallowed matches runes that are not word characters, whitespace or hyphens.
	slugDisallowed = regexp.MustCompile(`[^\p{L}\p{N}_` + space + `-]`)

	// slugSeparators matches runs of whitespace and hyphens.
	slugSeparators = regexp.MustCompile(`[` + space + `-]+`)
)

// isSpace reports whether r is trimmed from heading lines.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// ExtractHeadings scans content line by line and returns every heading in document order.
// The scan is purely line based: a '#' line inside a fenced code block counts too,
// and lines such as "###NoSpace" are skipped.
func ExtractHeadings(content string) []Heading {
	var headings []Heading
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimFunc(line, isSpace)
		if !strings.HasPrefix(line, "#") {
			continue
		}
		m := atxHeadingLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		headings = append(headings, Heading{
			Level: len(m[1]),
			Text:  m[2],
			ID:    Slugify(m[2]),
		})
	}
	return headings
}

// Slugify derives an anchor identifier from heading text.
// Text is lowercased, characters other than letters, digits, underscores,
// whitespace and hyphens are removed, separator runs collapse to a single
// hyphen and edge hyphens are trimmed. Slugify(Slugify(s)) == Slugify(s).
//
// Two headings with the same text get the same identifier.
func Slugify(text string) string {
	s := cases.Lower(language.Und).String(text)
	s = slugDisallowed.ReplaceAllString(s, "")
	s = slugSeparators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
