package minidown

import (
	"strings"

	"golang.org/x/net/html"
)

// Anchor is an <a href> element located in converted HTML.
type Anchor struct {
	Start, End int // byte offsets of the whole element
	Link       Link
}

// FindAnchors returns the <a href> elements of fragment in document order.
// Link.Block is the index of the BlockSeparator-joined line holding the anchor.
// Session links and viewer link regions are both numbered from this list.
func FindAnchors(fragment, sourceFilePath string) []Anchor {
	z := html.NewTokenizer(strings.NewReader(fragment))

	var (
		anchors []Anchor
		open    *Anchor
		text    strings.Builder
		offset  int
	)
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return anchors
		}
		size := len(z.Raw())

		switch tt {
		case html.StartTagToken:
			name, hasAttr := z.TagName()
			if open != nil || string(name) != "a" || !hasAttr {
				break
			}
			if href, ok := hrefAttr(z); ok {
				open = &Anchor{
					Start: offset,
					Link: Link{
						URL:            href,
						Block:          strings.Count(fragment[:offset], BlockSeparator),
						SourceFilePath: sourceFilePath,
					},
				}
				text.Reset()
			}
		case html.TextToken:
			if open != nil {
				text.Write(z.Text())
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if open != nil && string(name) == "a" {
				open.End = offset + size
				open.Link.Text = text.String()
				anchors = append(anchors, *open)
				open = nil
			}
		}
		offset += size
	}
}

func hrefAttr(z *html.Tokenizer) (string, bool) {
	for {
		key, val, more := z.TagAttr()
		if string(key) == "href" {
			return string(val), true
		}
		if !more {
			return "", false
		}
	}
}

func linksOf(fragment, sourceFilePath string) []Link {
	anchors := FindAnchors(fragment, sourceFilePath)
	if len(anchors) == 0 {
		return nil
	}
	links := make([]Link, len(anchors))
	for i, a := range anchors {
		links[i] = a.Link
	}
	return links
}
