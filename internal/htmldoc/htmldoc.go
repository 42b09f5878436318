// Package htmldoc provides the parsed-document abstraction used by the
// extraction pipeline. It wraps golang.org/x/net/html behind the two query
// primitives the pipeline needs (find first / find all descendant elements
// matching a tag plus attribute predicates), keeping the node type of the
// underlying library out of the rest of the codebase.
package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"fjacquet/purchases-csv/internal/textutils"
)

// Document is an immutable parsed HTML tree.
type Document struct {
	root *html.Node
}

// Node is one element within a Document.
type Node struct {
	n *html.Node
}

// Matcher is a predicate over an element, combined conjunctively in queries.
type Matcher func(n *Node) bool

// LoadFile reads and parses an HTML file. An unreadable file and an
// unparsable document are reported as distinct errors so the caller can tell
// I/O problems from markup problems.
func LoadFile(filePath string) (*Document, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open HTML file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	doc, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML file %s: %w", filePath, err)
	}
	return doc, nil
}

// Parse parses HTML from a reader.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &Document{root: root}, nil
}

// FindFirst returns the first descendant element with the given tag matching
// every matcher, or nil.
func (d *Document) FindFirst(tag string, matchers ...Matcher) *Node {
	return findFirst(d.root, tag, matchers)
}

// FindAll returns all descendant elements with the given tag matching every
// matcher, in document order.
func (d *Document) FindAll(tag string, matchers ...Matcher) []*Node {
	return findAll(d.root, tag, matchers)
}

// FindFirst returns the first descendant element (the node itself excluded)
// with the given tag matching every matcher, or nil.
func (nd *Node) FindFirst(tag string, matchers ...Matcher) *Node {
	return findFirst(nd.n, tag, matchers)
}

// FindAll returns all descendant elements matching tag and matchers.
func (nd *Node) FindAll(tag string, matchers ...Matcher) []*Node {
	return findAll(nd.n, tag, matchers)
}

// Attr returns the value of the named attribute, or "".
func (nd *Node) Attr(name string) string {
	for _, a := range nd.n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether the named attribute is present, even if empty.
func (nd *Node) HasAttr(name string) bool {
	for _, a := range nd.n.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}

// Tag returns the element's tag name.
func (nd *Node) Tag() string {
	return nd.n.Data
}

// Text returns the concatenated text of all descendant text nodes, raw.
func (nd *Node) Text() string {
	var sb strings.Builder
	collectText(nd.n, &sb)
	return sb.String()
}

// CollapsedText returns the visible text with whitespace runs collapsed to
// single spaces and the ends trimmed.
func (nd *Node) CollapsedText() string {
	return textutils.CollapseWhitespace(nd.Text())
}

// WithClass matches elements whose class attribute contains the given token.
func WithClass(class string) Matcher {
	return func(n *Node) bool {
		return hasClassToken(n.Attr("class"), class)
	}
}

// WithAllClasses matches elements carrying every one of the given class
// tokens, in any order.
func WithAllClasses(classes ...string) Matcher {
	return func(n *Node) bool {
		attr := n.Attr("class")
		for _, c := range classes {
			if !hasClassToken(attr, c) {
				return false
			}
		}
		return true
	}
}

// WithAttr matches elements whose attribute equals the given value.
func WithAttr(key, value string) Matcher {
	return func(n *Node) bool {
		return n.HasAttr(key) && n.Attr(key) == value
	}
}

// WithAttrPresent matches elements that carry the attribute at all.
func WithAttrPresent(key string) Matcher {
	return func(n *Node) bool {
		return n.HasAttr(key)
	}
}

// WithAttrContaining matches elements whose attribute value contains the
// given substring.
func WithAttrContaining(key, substring string) Matcher {
	return func(n *Node) bool {
		return n.HasAttr(key) && strings.Contains(n.Attr(key), substring)
	}
}

func hasClassToken(classAttr, token string) bool {
	for _, c := range strings.Fields(classAttr) {
		if c == token {
			return true
		}
	}
	return false
}

func matches(n *html.Node, tag string, matchers []Matcher) bool {
	if n.Type != html.ElementNode || n.Data != tag {
		return false
	}
	node := &Node{n: n}
	for _, m := range matchers {
		if !m(node) {
			return false
		}
	}
	return true
}

func findFirst(root *html.Node, tag string, matchers []Matcher) *Node {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if matches(c, tag, matchers) {
			return &Node{n: c}
		}
		if found := findFirst(c, tag, matchers); found != nil {
			return found
		}
	}
	return nil
}

func findAll(root *html.Node, tag string, matchers []Matcher) []*Node {
	var results []*Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if matches(c, tag, matchers) {
				results = append(results, &Node{n: c})
			}
			walk(c)
		}
	}
	walk(root)
	return results
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
