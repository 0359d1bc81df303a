// Package reference compares minidown output with a full CommonMark
// implementation (goldmark) at the level of top-level block elements.
package reference

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/boolean-maybe/minidown/minidown"
)

// Element is one top-level block of an HTML fragment.
type Element struct {
	Tag   string
	Text  string   // whitespace-collapsed text content
	Hrefs []string // href of every anchor, in order
}

func (e Element) String() string {
	s := "<" + e.Tag + "> " + e.Text
	if len(e.Hrefs) > 0 {
		s += " " + fmt.Sprint(e.Hrefs)
	}
	return s
}

func (e Element) equal(o Element) bool {
	if e.Tag != o.Tag || e.Text != o.Text || len(e.Hrefs) != len(o.Hrefs) {
		return false
	}
	for i := range e.Hrefs {
		if e.Hrefs[i] != o.Hrefs[i] {
			return false
		}
	}
	return true
}

// Difference is a position where the two outlines disagree. A nil side means
// that outline has no element at Index.
type Difference struct {
	Index    int
	Minidown *Element
	Markdown *Element
}

func (d Difference) String() string {
	side := func(e *Element) string {
		if e == nil {
			return "(none)"
		}
		return e.String()
	}
	return fmt.Sprintf("#%d minidown: %s | commonmark: %s", d.Index, side(d.Minidown), side(d.Markdown))
}

// Convert renders markdown to HTML with goldmark's CommonMark renderer.
func Convert(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("commonmark convert: %w", err)
	}
	return buf.String(), nil
}

// Outline parses an HTML fragment into its top-level elements.
func Outline(fragment string) ([]Element, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var out []Element
	for _, n := range nodes {
		if n.Type != html.ElementNode {
			continue
		}
		var text strings.Builder
		var hrefs []string
		walk(n, &text, &hrefs)
		out = append(out, Element{
			Tag:   n.Data,
			Text:  strings.Join(strings.Fields(text.String()), " "),
			Hrefs: hrefs,
		})
	}
	return out, nil
}

func walk(n *html.Node, text *strings.Builder, hrefs *[]string) {
	switch n.Type {
	case html.TextNode:
		text.WriteString(n.Data)
	case html.ElementNode:
		if n.DataAtom == atom.A {
			for _, a := range n.Attr {
				if a.Key == "href" {
					*hrefs = append(*hrefs, a.Val)
				}
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, text, hrefs)
	}
}

// Compare converts markdown with both minidown and CommonMark and reports
// where their block outlines differ. An empty result means they agree.
func Compare(conv *minidown.Converter, markdown string) ([]Difference, error) {
	result := conv.Convert(markdown)
	if !result.OK() {
		return nil, result.Err
	}
	ref, err := Convert(markdown)
	if err != nil {
		return nil, err
	}

	ours, err := Outline(result.HTML)
	if err != nil {
		return nil, err
	}
	theirs, err := Outline(ref)
	if err != nil {
		return nil, err
	}

	var diffs []Difference
	for i := 0; i < max(len(ours), len(theirs)); i++ {
		var d Difference
		d.Index = i
		if i < len(ours) {
			d.Minidown = &ours[i]
		}
		if i < len(theirs) {
			d.Markdown = &theirs[i]
		}
		if d.Minidown != nil && d.Markdown != nil && d.Minidown.equal(*d.Markdown) {
			continue
		}
		diffs = append(diffs, d)
	}
	return diffs, nil
}
