package minidown

import "strconv"

// Kind distinguishes the block variants a formatter can produce.
type Kind int

const (
	KindParagraph Kind = iota
	KindHeader
)

func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindParagraph:
		return "paragraph"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Block is one classified unit of input: a header or a paragraph.
//
// Text holds the block content with any header prefix removed and with link
// syntax still in markdown form. Level is 1-6 for headers and 0 for paragraphs.
type Block struct {
	Kind  Kind
	Level int
	Text  string
}

// Classify trims a raw block and decides whether it is a header or a paragraph.
// It returns false for blocks that are empty after trimming.
//
// A block is a header only if the header pattern matches at its very start;
// hashes without a following space stay in the text of a paragraph.
func Classify(raw string) (Block, bool) {
	trimmed := trimSpace(raw)
	if trimmed == "" {
		return Block{}, false
	}

	m := headerPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return Block{Kind: KindParagraph, Text: trimmed}, true
	}

	return Block{
		Kind:  KindHeader,
		Level: len(m[1]),
		Text:  trimmed[len(m[0]):],
	}, true
}

// Tags returns the opening and closing tag pair for the block.
func (b Block) Tags() (open, close string) {
	if b.Kind == KindHeader && b.Level >= 1 && b.Level <= MaxHeaderLevel {
		level := strconv.Itoa(b.Level)
		return "<h" + level + ">", "</h" + level + ">"
	}
	return "<p>", "</p>"
}

// HTML renders the block as a single tagged fragment with links rewritten.
func (b Block) HTML() string {
	open, close := b.Tags()
	return open + RewriteLinks(b.Text) + close
}
