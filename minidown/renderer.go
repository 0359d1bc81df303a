package minidown

import (
	"fmt"
	"io"
)

// Renderer displays converted HTML (or a failure diagnostic) somewhere:
// a terminal, a file, a UI widget.
type Renderer interface {
	Display(html string) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(html string) error

func (f RendererFunc) Display(html string) error {
	return f(html)
}

// WriterRenderer writes the HTML to W followed by a newline.
type WriterRenderer struct {
	W io.Writer
}

func (r WriterRenderer) Display(html string) error {
	if _, err := fmt.Fprintln(r.W, html); err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	return nil
}
