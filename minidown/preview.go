package minidown

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
)

// ANSIPreview renders markdown source to ANSI-styled terminal text with
// glamour. It is the "what the author meant" pane shown next to the HTML.
type ANSIPreview struct {
	style    ansi.StyleConfig
	wordWrap int
}

func uintPtr(v uint) *uint {
	return &v
}

// NewANSIPreview creates a preview with the named style: "dark", "light" or
// "auto". "auto" reads COLORFGBG; anything unknown means dark.
func NewANSIPreview(styleName string) *ANSIPreview {
	var style ansi.StyleConfig
	switch styleName {
	case "light":
		style = styles.LightStyleConfig
	case "auto":
		style = detectStyleFromEnvironment()
	default:
		style = styles.DarkStyleConfig
	}

	style.Document.Margin = uintPtr(0)
	style.CodeBlock.Margin = uintPtr(0)

	return &ANSIPreview{style: style}
}

// detectStyleFromEnvironment picks light when the COLORFGBG background
// (last ";" field) is a bright color (>= 8), dark otherwise.
func detectStyleFromEnvironment() ansi.StyleConfig {
	colorfgbg := os.Getenv("COLORFGBG")
	if colorfgbg == "" {
		return styles.DarkStyleConfig
	}

	parts := strings.Split(colorfgbg, ";")
	if len(parts) < 2 {
		return styles.DarkStyleConfig
	}
	bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil {
		return styles.DarkStyleConfig
	}
	if bg >= 8 {
		return styles.LightStyleConfig
	}
	return styles.DarkStyleConfig
}

// WithWordWrap sets the wrap column (0 disables wrapping).
func (p *ANSIPreview) WithWordWrap(cols int) *ANSIPreview {
	p.wordWrap = cols
	return p
}

// Render returns the ANSI rendering of markdown. On error the source is
// returned unchanged together with the error.
func (p *ANSIPreview) Render(markdown string) (string, error) {
	tr, err := glamour.NewTermRenderer(
		glamour.WithStyles(p.style),
		glamour.WithWordWrap(p.wordWrap),
	)
	if err != nil {
		return markdown, err
	}
	out, err := tr.Render(markdown)
	if err != nil {
		return markdown, err
	}
	return out, nil
}
