package minidown

import (
	"context"
	"log/slog"
	"runtime"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of a conversion: either HTML or an error.
type Result struct {
	HTML string
	Err  error
}

// OK reports whether the conversion succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Diagnostic returns the human-readable failure message, or "" on success.
func (r Result) Diagnostic() string {
	if r.Err == nil {
		return ""
	}
	return DiagnosticPrefix + r.Err.Error()
}

// Options configures a Converter.
type Options struct {
	// Formatter formats individual blocks. Defaults to LineFormatter.
	Formatter Formatter
	// Logger receives debug and failure records. Defaults to a discarding logger.
	Logger *slog.Logger
	// Sanitize passes the output through a user-generated-content HTML policy.
	Sanitize bool
	// Workers bounds ConvertContext parallelism. Defaults to GOMAXPROCS.
	Workers int
}

// Converter turns markdown into HTML. It holds no per-call state and is safe
// for concurrent use.
type Converter struct {
	formatter Formatter
	logger    *slog.Logger
	policy    *bluemonday.Policy
	workers   int
}

// NewConverter creates a Converter.
func NewConverter(opts Options) *Converter {
	formatter := opts.Formatter
	if formatter == nil {
		formatter = LineFormatter{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	c := &Converter{
		formatter: formatter,
		logger:    logger,
		workers:   workers,
	}
	if opts.Sanitize {
		c.policy = bluemonday.UGCPolicy()
	}
	return c
}

var defaultConverter = NewConverter(Options{})

// Convert converts markdown with the default Converter.
func Convert(markdown string) (string, error) {
	r := defaultConverter.Convert(markdown)
	return r.HTML, r.Err
}

// Render converts markdown with the default Converter and displays the outcome.
func Render(r Renderer, markdown string) (string, bool) {
	return defaultConverter.Render(r, markdown)
}

// Convert splits markdown into blocks, formats them in order, and joins the
// non-empty results with BlockSeparator. A failure in any block discards the
// lines already formatted.
func (c *Converter) Convert(markdown string) Result {
	blocks := Split(markdown)

	lines, err := c.formatAll(blocks)
	if err != nil {
		c.logger.Error("conversion failed", "error", err)
		return Result{Err: err}
	}

	c.logger.Debug("converted markdown", "blocks", len(blocks), "lines", len(lines))
	return Result{HTML: c.finish(lines)}
}

func (c *Converter) formatAll(blocks []string) (lines []string, err error) {
	current := -1
	defer func() {
		if v := recover(); v != nil {
			lines = nil
			err = &ProcessingError{Block: current, Cause: panicError(v)}
		}
	}()

	for i, block := range blocks {
		current = i
		line, ok, ferr := c.formatter.Format(block)
		if ferr != nil {
			return nil, &ProcessingError{Block: i, Cause: ferr}
		}
		if ok {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// ConvertContext is Convert with blocks formatted by a bounded pool of
// goroutines. Output order matches input order. A canceled ctx fails the call.
func (c *Converter) ConvertContext(ctx context.Context, markdown string) Result {
	blocks := Split(markdown)
	formatted := make([]string, len(blocks))
	present := make([]bool, len(blocks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, block := range blocks {
		g.Go(func() (err error) {
			defer func() {
				if v := recover(); v != nil {
					err = &ProcessingError{Block: i, Cause: panicError(v)}
				}
			}()
			if err := gctx.Err(); err != nil {
				return err
			}
			line, ok, ferr := c.formatter.Format(block)
			if ferr != nil {
				return &ProcessingError{Block: i, Cause: ferr}
			}
			formatted[i], present[i] = line, ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		c.logger.Error("conversion failed", "error", err)
		return Result{Err: err}
	}

	lines := make([]string, 0, len(blocks))
	for i, ok := range present {
		if ok {
			lines = append(lines, formatted[i])
		}
	}

	c.logger.Debug("converted markdown", "blocks", len(blocks), "lines", len(lines), "workers", c.workers)
	return Result{HTML: c.finish(lines)}
}

func (c *Converter) finish(lines []string) string {
	html := strings.Join(lines, BlockSeparator)
	if c.policy != nil && html != "" {
		html = c.policy.Sanitize(html)
	}
	return html
}

// Render converts markdown and hands the outcome to r: the HTML on success,
// the diagnostic on failure. On failure it returns false and no HTML, which is
// distinct from a successful conversion to the empty string.
func (c *Converter) Render(r Renderer, markdown string) (string, bool) {
	result := c.Convert(markdown)
	if !result.OK() {
		if err := r.Display(result.Diagnostic()); err != nil {
			c.logger.Warn("display diagnostic", "error", err)
		}
		return "", false
	}

	if err := r.Display(result.HTML); err != nil {
		c.logger.Warn("display html", "error", err)
	}
	return result.HTML, true
}

// Blocks returns the classified, non-blank blocks of markdown in output order.
// It describes the source as LineFormatter reads it; a custom Formatter may
// render the same blocks differently.
func (c *Converter) Blocks(markdown string) []Block {
	var blocks []Block
	for _, raw := range Split(markdown) {
		if b, ok := Classify(raw); ok {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// Links returns the links of the converted markdown in document order, as
// they appear in the HTML. A failed conversion has no links.
func (c *Converter) Links(markdown, sourceFilePath string) []Link {
	result := c.Convert(markdown)
	if !result.OK() {
		return nil
	}
	return linksOf(result.HTML, sourceFilePath)
}
