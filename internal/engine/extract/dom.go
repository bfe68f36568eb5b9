package extract

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

type predicate func(*html.Node) bool

func hasClass(class string) predicate {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		for _, c := range strings.Fields(getAttr(n, "class")) {
			if c == class {
				return true
			}
		}
		return false
	}
}

func hasTag(tag string) predicate {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

func or(preds ...predicate) predicate {
	return func(n *html.Node) bool {
		for _, p := range preds {
			if p(n) {
				return true
			}
		}
		return false
	}
}

// childOf matches nodes accepted by child whose parent is accepted by parent.
func childOf(parent, child predicate) predicate {
	return func(n *html.Node) bool {
		return n.Parent != nil && parent(n.Parent) && child(n)
	}
}

// findAll returns the descendants of n (not n itself) accepted by p, in
// document order.
func findAll(n *html.Node, p predicate) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if p(c) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// findFirst returns the first descendant of n accepted by p, or nil.
func findFirst(n *html.Node, p predicate) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if p(c) {
			return c
		}
		if found := findFirst(c, p); found != nil {
			return found
		}
	}
	return nil
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// Text returns the text content of n with runs of whitespace collapsed to a
// single space and the result in Unicode NFC, so that labels compare equal
// regardless of how the page encoded accents or indentation.
func Text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return NormalizeText(sb.String())
}

// NormalizeText collapses whitespace and applies NFC. Every label and dish
// name is compared in this form, never as raw node text.
func NormalizeText(s string) string {
	return norm.NFC.String(strings.Join(strings.Fields(s), " "))
}
