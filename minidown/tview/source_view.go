package tview

import (
	"github.com/boolean-maybe/minidown/minidown"
	"github.com/rivo/tview"
)

// SourceView shows markdown source as glamour renders it.
type SourceView struct {
	*tview.TextView
	preview *minidown.ANSIPreview
}

// NewSourceView creates a SourceView. A nil preview uses the dark style.
func NewSourceView(preview *minidown.ANSIPreview) *SourceView {
	if preview == nil {
		preview = minidown.NewANSIPreview("dark")
	}
	textView := tview.NewTextView()
	textView.SetDynamicColors(true)
	textView.SetWrap(false)
	return &SourceView{TextView: textView, preview: preview}
}

// SetMarkdown renders and shows markdown. On a render error the raw source
// is shown and the error returned.
func (v *SourceView) SetMarkdown(markdown string) error {
	out, err := v.preview.Render(markdown)
	if err != nil {
		v.SetText(tview.Escape(markdown))
		return err
	}
	v.SetText(tview.TranslateANSI(out))
	v.ScrollToBeginning()
	return nil
}
