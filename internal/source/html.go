package source

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// HTMLAdapter extracts visible text from terms-of-service and policy pages
type HTMLAdapter struct {
	skip   map[string]bool
	blocks map[string]bool
}

// NewHTMLAdapter creates an HTML adapter
func NewHTMLAdapter() *HTMLAdapter {
	return &HTMLAdapter{
		skip: map[string]bool{
			"script": true, "style": true, "noscript": true, "iframe": true,
			"nav": true, "svg": true, "template": true,
		},
		blocks: map[string]bool{
			"p": true, "div": true, "section": true, "article": true, "li": true,
			"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
			"br": true, "tr": true, "td": true, "blockquote": true, "pre": true,
		},
	}
}

// Name returns the adapter name
func (a *HTMLAdapter) Name() string {
	return "html"
}

// CanHandle accepts HTML content types and .html/.htm names
func (a *HTMLAdapter) CanHandle(name string, contentType string) bool {
	switch mediaType(contentType) {
	case "text/html", "application/xhtml+xml":
		return true
	}
	switch extension(name) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}

// ExtractText returns the text of <main> or <article> when present, else <body>
func (a *HTMLAdapter) ExtractText(data []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	root := findFirst(doc, func(n *html.Node) bool {
		return isElement(n, "main") || getAttribute(n, "role") == "main"
	})
	if root == nil {
		root = findFirst(doc, func(n *html.Node) bool { return isElement(n, "article") })
	}
	if root == nil {
		root = findFirst(doc, func(n *html.Node) bool { return isElement(n, "body") })
	}
	if root == nil {
		root = doc
	}

	var buf strings.Builder
	a.visibleText(root, &buf)
	return tidyLines(buf.String()), nil
}

// visibleText writes text nodes, breaking lines at block elements
func (a *HTMLAdapter) visibleText(n *html.Node, buf *strings.Builder) {
	if n.Type == html.ElementNode && a.skip[n.Data] {
		return
	}
	if n.Type == html.TextNode {
		buf.WriteString(n.Data)
		return
	}

	block := n.Type == html.ElementNode && a.blocks[n.Data]
	if block {
		buf.WriteString("\n")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		a.visibleText(c, buf)
	}
	if block {
		buf.WriteString("\n")
	}
}

// tidyLines collapses spaces within lines and drops blank lines
func tidyLines(s string) string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

func getAttribute(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}
