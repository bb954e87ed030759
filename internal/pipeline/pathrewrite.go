package pipeline

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// rewrittenAttrs lists, per element, the attribute holding a local reference.
var rewrittenAttrs = map[atom.Atom]string{
	atom.Img: "src",
	atom.A:   "href",
}

// RewriteRelativePaths turns relative img src and link href values in an HTML
// body fragment into absolute file:// URLs under sourceDir, so they resolve
// when the document is loaded from a temporary file elsewhere.
//
// URLs, anchors, absolute paths and paths escaping sourceDir are left alone.
// An empty sourceDir returns the fragment unchanged.
func RewriteRelativePaths(fragment, sourceDir string) (string, error) {
	if sourceDir == "" {
		return fragment, nil
	}

	absDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", sourceDir, err)
	}

	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	var buf strings.Builder
	for _, n := range nodes {
		rewriteTree(n, absDir)
		if err := html.Render(&buf, n); err != nil {
			return "", fmt.Errorf("rendering HTML: %w", err)
		}
	}
	return buf.String(), nil
}

func rewriteTree(n *html.Node, dir string) {
	if n.Type == html.ElementNode {
		if key, ok := rewrittenAttrs[n.DataAtom]; ok {
			for i, a := range n.Attr {
				if a.Namespace == "" && a.Key == key {
					if u, ok := localFileURL(a.Val, dir); ok {
						n.Attr[i].Val = u
					}
				}
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteTree(c, dir)
	}
}

// localFileURL resolves ref against dir and returns it as a file:// URL.
// It reports false for references that must not be rewritten.
func localFileURL(ref, dir string) (string, bool) {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") {
		return "", false
	}
	ru, err := url.Parse(ref)
	if err != nil || ru.Scheme != "" || ru.Path == "" {
		// http, https, file, data, mailto and unparsable values
		return "", false
	}
	if filepath.IsAbs(ru.Path) || strings.HasPrefix(ru.Path, "/") {
		return "", false
	}

	target := filepath.Join(dir, filepath.FromSlash(ru.Path))
	if !withinDir(target, dir) {
		return "", false
	}

	u := url.URL{
		Scheme:   "file",
		Path:     filepath.ToSlash(target),
		RawQuery: ru.RawQuery,
		Fragment: ru.Fragment,
	}
	if !strings.HasPrefix(u.Path, "/") {
		u.Path = "/" + u.Path // Windows drive letters
	}
	return u.String(), true
}

// withinDir reports whether path is dir or lies below it.
func withinDir(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
