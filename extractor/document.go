package extractor

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is an immutable parsed view of one fetched page. It is built
// once per extraction pass and discarded afterwards.
type Document struct {
	doc  *goquery.Document
	root *html.Node
}

// ParseDocument parses raw HTML into a Document. Malformed markup that
// cannot be parsed at all is a ParseFailure for the caller to recover
// from; goquery is otherwise lenient about broken nesting.
func ParseDocument(content string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	root := doc.Selection.Nodes[0]
	for root.Parent != nil {
		root = root.Parent
	}
	return &Document{doc: doc, root: root}, nil
}

// Text returns the full visible text of the document, space-joined and
// whitespace-collapsed. Script and style content is excluded.
func (d *Document) Text() string {
	return nodeText(d.root)
}

// Find exposes goquery selector queries over the document.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// Node is one element in the document's containment hierarchy.
type Node struct {
	n *html.Node
}

// Text returns the space-joined visible text of the node's subtree.
func (n Node) Text() string {
	return nodeText(n.n)
}

// Ancestors returns the node itself followed by up to max-1 of its
// element ancestors, innermost first. The tree is read-only for this
// pass, so the walk never follows mutable aliases.
func (n Node) Ancestors(max int) []Node {
	var out []Node
	for cur := n.n; cur != nil && len(out) < max; cur = cur.Parent {
		if cur.Type == html.ElementNode {
			out = append(out, Node{n: cur})
		}
	}
	return out
}

// skippedElements never contribute visible text.
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
}

// nodeText aggregates the visible text of a subtree, joining text runs
// with single spaces.
func nodeText(n *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.ElementNode && skippedElements[cur.Data] {
			return
		}
		if cur.Type == html.TextNode {
			parts = append(parts, strings.Fields(cur.Data)...)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}
