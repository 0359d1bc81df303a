package minidown

// Link is an inline [display](url) token found in a block.
type Link struct {
	Text string
	URL  string

	// Block is the index of the formatted line containing the link.
	Block int

	// SourceFilePath is the markdown file the link was read from, if any.
	SourceFilePath string
}

// IsHTTP reports whether the link target is an absolute HTTP(S) URL.
func (l Link) IsHTTP() bool {
	return isHTTPURL(l.URL)
}

// RewriteLinks replaces every [display](url) token with an anchor element.
// Display text and URL are copied verbatim.
func RewriteLinks(text string) string {
	return linkPattern.ReplaceAllString(text, "<a href='${2}'>${1}</a>")
}
