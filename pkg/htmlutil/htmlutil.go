package htmlutil

import (
	"bytes"
	"strings"

	"nlrb-data/pkg/textutil"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// GetText concatenates every text node under node, in document order.
func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// line breaking elements, anything else is treated as inline
var blockElements = map[atom.Atom]bool{
	atom.Br:    true,
	atom.P:     true,
	atom.Div:   true,
	atom.Li:    true,
	atom.Tr:    true,
	atom.H1:    true,
	atom.H2:    true,
	atom.H3:    true,
	atom.H4:    true,
	atom.Ul:    true,
	atom.Ol:    true,
	atom.Table: true,
}

// newlines in the source are formatting, only elements break lines
var sourceNewlines = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func getLinesRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node.Type == html.TextNode {
		buffer.WriteString(sourceNewlines.Replace(node.Data))
		return
	}
	isBlock := node.Type == html.ElementNode && blockElements[node.DataAtom]
	if isBlock {
		buffer.WriteByte('\n')
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		getLinesRecursive(child, buffer)
	}
	if isBlock {
		buffer.WriteByte('\n')
	}
}

// Lines renders node as text with line breaks at <br> and block elements and returns
// the cleaned, non-empty lines.
func Lines(node *html.Node) []string {
	if node == nil {
		return nil
	}
	var buffer bytes.Buffer
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		getLinesRecursive(child, &buffer)
	}

	var lines []string
	for _, line := range strings.Split(buffer.String(), "\n") {
		line = textutil.Clean(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// NextElementSibling skips text and comment nodes to find the next element.
func NextElementSibling(node *html.Node) *html.Node {
	if node == nil {
		return nil
	}
	for sibling := node.NextSibling; sibling != nil; sibling = sibling.NextSibling {
		if sibling.Type == html.ElementNode {
			return sibling
		}
	}
	return nil
}

// ChildElements returns the direct element children of node.
func ChildElements(node *html.Node) []*html.Node {
	if node == nil {
		return nil
	}
	var out []*html.Node
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			out = append(out, child)
		}
	}
	return out
}
