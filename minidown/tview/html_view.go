package tview

import (
	"strconv"
	"strings"

	"github.com/boolean-maybe/minidown/minidown"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func regionID(i int) string { return "link-" + strconv.Itoa(i) }

// HTMLView is a TextView that displays the HTML of a minidown.Session and
// lets the user walk and follow its links. It is the session's Renderer.
type HTMLView struct {
	*tview.TextView

	session *minidown.Session
	html    string

	onSelect       func(*HTMLView, minidown.Link)
	onStateChanged func(*HTMLView)
}

// NewHTMLView creates a view with its own session. opts.Renderer is ignored.
func NewHTMLView(opts minidown.SessionOptions) *HTMLView {
	textView := tview.NewTextView()
	textView.SetBorder(false)
	textView.SetDynamicColors(true)
	textView.SetRegions(true)
	textView.SetWrap(true)
	textView.SetWordWrap(true)

	v := &HTMLView{TextView: textView}
	opts.Renderer = v
	v.session = minidown.NewSession(opts)
	return v
}

// Session exposes the underlying UI-agnostic session.
func (v *HTMLView) Session() *minidown.Session { return v.session }

// SetSelectHandler sets the callback for Enter on a selected link.
func (v *HTMLView) SetSelectHandler(handler func(*HTMLView, minidown.Link)) *HTMLView {
	v.onSelect = handler
	return v
}

// SetStateChangedHandler sets the callback for page, selection and history changes.
func (v *HTMLView) SetStateChangedHandler(handler func(*HTMLView)) *HTMLView {
	v.onStateChanged = handler
	return v
}

// Display implements minidown.Renderer.
func (v *HTMLView) Display(html string) error {
	v.html = html
	v.refresh()
	return nil
}

// SetMarkdownWithSource converts and shows content. The error is the
// conversion failure, already shown as a diagnostic.
func (v *HTMLView) SetMarkdownWithSource(content, sourceFilePath string, pushToHistory bool) error {
	v.syncScroll()
	err := v.session.SetMarkdownWithSource(content, sourceFilePath, pushToHistory)
	if err == nil {
		v.ScrollTo(v.session.ScrollOffset(), 0)
	}
	v.fireStateChanged()
	return err
}

// Update runs fn against the session (for example to follow a link) and
// then refreshes scroll position and state listeners.
func (v *HTMLView) Update(fn func(*minidown.Session)) {
	v.syncScroll()
	fn(v.session)
	v.ScrollTo(v.session.ScrollOffset(), 0)
	v.fireStateChanged()
}

func (v *HTMLView) syncScroll() {
	row, _ := v.GetScrollOffset()
	v.session.SetScrollOffset(row)
}

func (v *HTMLView) fireStateChanged() {
	if v.onStateChanged != nil {
		v.onStateChanged(v)
	}
}

func (v *HTMLView) refresh() {
	v.SetText(decorate(v.html))
	v.updateHighlight()
}

func (v *HTMLView) updateHighlight() {
	sel := v.session.SelectedIndex()
	if sel < 0 {
		v.Highlight()
		return
	}
	v.Highlight(regionID(sel))
	v.ScrollToHighlight()
}

// decorate escapes html for tview and wraps the n-th anchor in region link-n,
// matching the n-th entry of Session.Links.
func decorate(html string) string {
	var b strings.Builder
	last := 0
	for i, a := range minidown.FindAnchors(html, "") {
		b.WriteString(tview.Escape(html[last:a.Start]))
		b.WriteString(`["` + regionID(i) + `"]`)
		b.WriteString(tview.Escape(html[a.Start:a.End]))
		b.WriteString(`[""]`)
		last = a.End
	}
	b.WriteString(tview.Escape(html[last:]))
	return b.String()
}

// InputHandler returns the input handler for this component.
func (v *HTMLView) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	base := v.TextView.InputHandler()
	return v.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		plainOrAlt := event.Modifiers() == 0 || event.Modifiers()&tcell.ModAlt != 0

		switch event.Key() {
		case tcell.KeyLeft:
			// plain Left works on terminals with broken Alt-key support
			if plainOrAlt && v.navigate(v.session.GoBack) {
				return
			}
		case tcell.KeyRight:
			if plainOrAlt && v.navigate(v.session.GoForward) {
				return
			}
		case tcell.KeyTab:
			if v.session.MoveToNextLink() {
				v.updateHighlight()
				v.fireStateChanged()
				return
			}
		case tcell.KeyBacktab:
			if v.session.MoveToPreviousLink() {
				v.updateHighlight()
				v.fireStateChanged()
				return
			}
		case tcell.KeyEnter:
			if v.onSelect != nil {
				if sel := v.session.Selected(); sel != nil {
					v.onSelect(v, *sel)
					return
				}
			}
		}

		base(event, setFocus)
	})
}

func (v *HTMLView) navigate(move func() bool) bool {
	v.syncScroll()
	if !move() {
		return false
	}
	v.ScrollTo(v.session.ScrollOffset(), 0)
	v.fireStateChanged()
	return true
}
