package cssom

import (
	"fmt"
	"io"

	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseHTML reads an HTML document and returns the style sheets of its
// <style> elements.
func ParseHTML(r io.Reader) ([]*Stylesheet, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("cannot parse HTML: %w", err)
	}
	return ExtractStyleElements(doc), nil
}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets. Style elements which do not parse are
// skipped.
func ExtractStyleElements(htmldoc *html.Node) []*Stylesheet {
	sheets := extractStyles(findElement(atom.Head, htmldoc))
	return append(sheets, extractStyles(findElement(atom.Body, htmldoc))...)
}

func extractStyles(h *html.Node) []*Stylesheet {
	if h == nil {
		return nil
	}
	var sheets []*Stylesheet
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style || ch.FirstChild == nil {
			continue
		}
		c, err := parser.Parse(ch.FirstChild.Data)
		if err != nil {
			tracer().Errorf("skipping <style> element: %v", err)
			continue
		}
		sheets = append(sheets, Wrap(c))
	}
	return sheets
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
