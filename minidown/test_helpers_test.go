package minidown

import (
	"context"
	"errors"
	"strings"
)

// recordingRenderer keeps every string it is asked to display.
type recordingRenderer struct {
	shown []string
	err   error
}

func (r *recordingRenderer) Display(html string) error {
	r.shown = append(r.shown, html)
	return r.err
}

func (r *recordingRenderer) last() string {
	if len(r.shown) == 0 {
		return ""
	}
	return r.shown[len(r.shown)-1]
}

var errBoom = errors.New("boom failed")

// failingFormatter formats normally except for blocks containing "boom".
func failingFormatter() Formatter {
	return FormatterFunc(func(block string) (string, bool, error) {
		if strings.Contains(block, "boom") {
			return "", false, errBoom
		}
		return LineFormatter{}.Format(block)
	})
}

// panickingFormatter panics on blocks containing "boom".
func panickingFormatter() Formatter {
	return FormatterFunc(func(block string) (string, bool, error) {
		if strings.Contains(block, "boom") {
			panic("kaboom")
		}
		return LineFormatter{}.Format(block)
	})
}

// mapProvider serves content keyed by link URL.
type mapProvider struct {
	pages map[string]string
	err   error
}

func (p mapProvider) FetchContent(_ context.Context, link Link) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return p.pages[link.URL], nil
}

const (
	demoInput1 = `Hello there
  
  

How are you?
####      What's going on?
###Line with a missing space after ###.


   

###### Another Header
`

	demoInput2 = `# Header one

Hello there

How are you?
What's going on?

This is a paragraph [with an inline link](http://google.com). Neat, [eh](https://www.yahoo.com)?

## Another Header
`
)
