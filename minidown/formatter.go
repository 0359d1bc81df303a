package minidown

// Formatter turns one raw block into a formatted line.
//
// ok is false when the block produces no output (blank blocks). A non-nil
// error aborts the whole conversion.
type Formatter interface {
	Format(block string) (line string, ok bool, err error)
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc func(block string) (string, bool, error)

func (f FormatterFunc) Format(block string) (string, bool, error) {
	return f(block)
}

// LineFormatter is the default Formatter. It never fails.
type LineFormatter struct{}

func (LineFormatter) Format(block string) (string, bool, error) {
	line, ok := FormatBlock(block)
	return line, ok, nil
}

// FormatBlock classifies a raw block and renders it as <tag>content</tag>.
// It returns false when the block is blank.
func FormatBlock(block string) (string, bool) {
	b, ok := Classify(block)
	if !ok {
		return "", false
	}
	return b.HTML(), true
}
