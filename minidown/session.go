package minidown

import "log/slog"

// PageState captures one converted page for navigation history.
type PageState struct {
	Markdown       string
	SourceFilePath string
	HTML           string
	Blocks         []Block
	Links          []Link
	SelectedIndex  int
	ScrollOffset   int
}

// SessionOptions configures a Session.
type SessionOptions struct {
	Converter  *Converter
	Renderer   Renderer
	HistoryMax int
	Logger     *slog.Logger
}

// Session is a UI-agnostic model of a markdown page being viewed: the
// converted HTML, its links, the selected link, and back/forward history.
//
// Every successful page change is handed to the Renderer. A failed
// conversion hands over the diagnostic instead and leaves the current page
// untouched.
type Session struct {
	page      PageState
	history   *NavigationHistory[PageState]
	converter *Converter
	renderer  Renderer
	logger    *slog.Logger
}

// NewSession creates an empty Session.
func NewSession(opts SessionOptions) *Session {
	conv := opts.Converter
	if conv == nil {
		conv = defaultConverter
	}
	hmax := opts.HistoryMax
	if hmax <= 0 {
		hmax = 50
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Session{
		page:      PageState{SelectedIndex: -1},
		history:   NewNavigationHistory[PageState](hmax),
		converter: conv,
		renderer:  opts.Renderer,
		logger:    logger,
	}
}

// SetRenderer replaces the display target. nil disables display.
func (s *Session) SetRenderer(r Renderer) { s.renderer = r }

func (s *Session) Markdown() string       { return s.page.Markdown }
func (s *Session) SourceFilePath() string { return s.page.SourceFilePath }
func (s *Session) HTML() string           { return s.page.HTML }
func (s *Session) Blocks() []Block        { return s.page.Blocks }
func (s *Session) Links() []Link          { return s.page.Links }
func (s *Session) SelectedIndex() int     { return s.page.SelectedIndex }
func (s *Session) ScrollOffset() int      { return s.page.ScrollOffset }

// SetScrollOffset records the first visible line so history can restore it.
func (s *Session) SetScrollOffset(offset int) {
	if offset < 0 {
		offset = 0
	}
	s.page.ScrollOffset = offset
}

// Selected returns a copy of the selected link, or nil.
func (s *Session) Selected() *Link {
	i := s.page.SelectedIndex
	if i < 0 || i >= len(s.page.Links) {
		return nil
	}
	link := s.page.Links[i]
	return &link
}

// SetMarkdown loads markdown without source context or history.
func (s *Session) SetMarkdown(content string) error {
	return s.SetMarkdownWithSource(content, "", false)
}

// SetMarkdownWithSource converts content and makes it the current page.
// If pushToHistory is set, the current page is kept for GoBack.
func (s *Session) SetMarkdownWithSource(content, sourceFilePath string, pushToHistory bool) error {
	result := s.converter.Convert(content)
	if !result.OK() {
		s.display(result.Diagnostic())
		return result.Err
	}

	if pushToHistory && s.page.Markdown != "" {
		s.history.Visit(s.page)
	}

	s.page = PageState{
		Markdown:       content,
		SourceFilePath: sourceFilePath,
		HTML:           result.HTML,
		Blocks:         s.converter.Blocks(content),
		Links:          linksOf(result.HTML, sourceFilePath),
		SelectedIndex:  -1,
	}
	s.logger.Debug("page loaded", "source", sourceFilePath, "blocks", len(s.page.Blocks), "links", len(s.page.Links))
	s.display(s.page.HTML)
	return nil
}

func (s *Session) display(html string) {
	if s.renderer == nil {
		return
	}
	if err := s.renderer.Display(html); err != nil {
		s.logger.Warn("display failed", "error", err)
	}
}

func (s *Session) CanGoBack() bool    { return s.history.CanGoBack() }
func (s *Session) CanGoForward() bool { return s.history.CanGoForward() }

// GoBack restores the previous page, keeping its selection and scroll offset.
func (s *Session) GoBack() bool {
	prev, ok := s.history.Back(s.page)
	if !ok {
		return false
	}
	s.restore(prev)
	return true
}

// GoForward restores the next page after a GoBack.
func (s *Session) GoForward() bool {
	next, ok := s.history.Forward(s.page)
	if !ok {
		return false
	}
	s.restore(next)
	return true
}

func (s *Session) restore(state PageState) {
	if state.SelectedIndex >= len(state.Links) {
		state.SelectedIndex = -1
	}
	s.page = state
	s.display(s.page.HTML)
}

// MoveToNextLink selects the link after the current one, or the first link
// if none is selected.
func (s *Session) MoveToNextLink() bool {
	next := s.page.SelectedIndex + 1
	if next >= len(s.page.Links) {
		return false
	}
	s.page.SelectedIndex = next
	return true
}

// MoveToPreviousLink selects the link before the current one, or the last
// link if none is selected.
func (s *Session) MoveToPreviousLink() bool {
	switch {
	case len(s.page.Links) == 0:
		return false
	case s.page.SelectedIndex < 0:
		s.page.SelectedIndex = len(s.page.Links) - 1
		return true
	case s.page.SelectedIndex == 0:
		return false
	}
	s.page.SelectedIndex--
	return true
}

// MoveToFirst selects the first link.
func (s *Session) MoveToFirst() bool {
	if len(s.page.Links) == 0 {
		return false
	}
	s.page.SelectedIndex = 0
	return true
}

// MoveToLast selects the last link.
func (s *Session) MoveToLast() bool {
	if len(s.page.Links) == 0 {
		return false
	}
	s.page.SelectedIndex = len(s.page.Links) - 1
	return true
}

// ClearSelection deselects any link.
func (s *Session) ClearSelection() { s.page.SelectedIndex = -1 }
