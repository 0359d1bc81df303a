package minidown

// Split partitions markdown into blocks separated by blank lines.
//
// Every header-like line is first pushed onto a fresh line so that a header
// glued to the previous line (no blank line in between) becomes its own block.
// Pieces are returned verbatim; blank pieces are expected and left to the caller.
func Split(markdown string) []string {
	normalized := headerLinePattern.ReplaceAllString(markdown, "\n${0}")
	return blankSeparatorPattern.Split(normalized, -1)
}
