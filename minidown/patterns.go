package minidown

import (
	"regexp"
	"strings"
	"unicode"
)

// space is the whitespace class shared by every pattern. It matches exactly
// the runes isSpace accepts.
const space = `[\t\n\v\f\r \x{85}\x{A0}\p{Zs}\x{2028}\x{2029}\x{FEFF}]`

var (
	// headerPattern matches 1-6 leading hashes followed by whitespace.
	headerPattern = regexp.MustCompile(`^(#{1,6})` + space + `+`)

	// headerLinePattern is headerPattern applied to every line of the input.
	headerLinePattern = regexp.MustCompile(`(?m)^#{1,6}` + space + `+`)

	// blankSeparatorPattern is a newline, optional whitespace, and another newline.
	blankSeparatorPattern = regexp.MustCompile(`\n` + space + `*\n`)

	// linkPattern matches [display](url) with no brackets in display and no parens in url.
	linkPattern = regexp.MustCompile(`\[([^\[\]]*)\]\(([^()]*)\)`)
)

const (
	// BlockSeparator joins formatted lines in the converted output.
	BlockSeparator = "\n\n"

	// MaxHeaderLevel is the deepest header level recognized.
	MaxHeaderLevel = 6
)

// isSpace reports whether r is whitespace: unicode.IsSpace plus the byte order mark.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}
