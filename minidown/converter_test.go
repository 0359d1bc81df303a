package minidown

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", " \n\n\t\n   \n", ""},
		{"header and paragraph", "# Title\n\nBody text", "<h1>Title</h1>\n\n<p>Body text</p>"},
		{"glued header is split out", "Body text\n## Subtitle", "<p>Body text</p>\n\n<h2>Subtitle</h2>"},
		{"missing space is literal", "###Nospace", "<p>###Nospace</p>"},
		{"inline link", "A [link](http://x.com) here", "<p>A <a href='http://x.com'>link</a> here</p>"},
		{"seven hashes", "####### Deep", "<p>####### Deep</p>"},
		{"NBSP blank line separates paragraphs", "a\n\u00a0\nb", "<p>a</p>\n\n<p>b</p>"},
		{"vertical tab after hashes", "#\vTitle", "<h1>Title</h1>"},
		{
			"demo input one",
			demoInput1,
			"<p>Hello there</p>\n\n<p>How are you?</p>\n\n<h4>What's going on?\n###Line with a missing space after ###.</h4>\n\n<h6>Another Header</h6>",
		},
		{
			"demo input two",
			demoInput2,
			"<h1>Header one</h1>\n\n<p>Hello there</p>\n\n<p>How are you?\nWhat's going on?</p>\n\n" +
				"<p>This is a paragraph <a href='http://google.com'>with an inline link</a>. Neat, <a href='https://www.yahoo.com'>eh</a>?</p>\n\n" +
				"<h2>Another Header</h2>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.input)
			if err != nil {
				t.Fatalf("Convert returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Convert(%q)\n got: %q\nwant: %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvert_HeaderLevels(t *testing.T) {
	for n := 1; n <= MaxHeaderLevel; n++ {
		input := strings.Repeat("#", n) + " Title"
		want := "<h" + string(rune('0'+n)) + ">Title</h" + string(rune('0'+n)) + ">"
		got, err := Convert("intro\n" + input)
		if err != nil {
			t.Fatalf("Convert returned error: %v", err)
		}
		if got != "<p>intro</p>\n\n"+want {
			t.Errorf("level %d: got %q", n, got)
		}
	}
}

func TestConvert_OutputCountMatchesNonBlankBlocks(t *testing.T) {
	inputs := []string{demoInput1, demoInput2, "a\n# b\nc\n\n\n## d", "\n\n\n", "x"}
	for _, input := range inputs {
		nonBlank := 0
		for _, piece := range Split(input) {
			if strings.TrimSpace(piece) != "" {
				nonBlank++
			}
		}

		got, err := Convert(input)
		if err != nil {
			t.Fatalf("Convert returned error: %v", err)
		}
		lines := 0
		if got != "" {
			lines = len(strings.Split(got, BlockSeparator))
		}
		if lines != nonBlank {
			t.Errorf("input %q: %d formatted lines, want %d", input, lines, nonBlank)
		}
	}
}

func TestConverter_FormatterErrorDiscardsOutput(t *testing.T) {
	c := NewConverter(Options{Formatter: failingFormatter()})

	result := c.Convert("# fine\n\nboom\n\nalso fine")
	if result.OK() {
		t.Fatal("expected failure")
	}
	if result.HTML != "" {
		t.Errorf("partial HTML returned: %q", result.HTML)
	}
	if !errors.Is(result.Err, ErrUnexpectedFailure) || !errors.Is(result.Err, errBoom) {
		t.Errorf("error %v should match ErrUnexpectedFailure and errBoom", result.Err)
	}

	var perr *ProcessingError
	if !errors.As(result.Err, &perr) || perr.Block != 1 {
		t.Fatalf("expected ProcessingError for block 1, got %#v", result.Err)
	}
	if got, want := result.Diagnostic(), "System Error: block 1: boom failed"; got != want {
		t.Errorf("Diagnostic() = %q, want %q", got, want)
	}
}

func TestConverter_PanicIsRecovered(t *testing.T) {
	c := NewConverter(Options{Formatter: panickingFormatter()})

	result := c.Convert("boom")
	if result.OK() {
		t.Fatal("expected failure")
	}
	if !errors.Is(result.Err, ErrUnexpectedFailure) {
		t.Errorf("error %v should match ErrUnexpectedFailure", result.Err)
	}
	if got, want := result.Diagnostic(), "System Error: block 0: panic: kaboom"; got != want {
		t.Errorf("Diagnostic() = %q, want %q", got, want)
	}
}

func TestResult_DiagnosticEmptyOnSuccess(t *testing.T) {
	if d := (Result{HTML: "<p>x</p>"}).Diagnostic(); d != "" {
		t.Fatalf("Diagnostic() = %q, want empty", d)
	}
}

func TestRender(t *testing.T) {
	t.Run("success displays html", func(t *testing.T) {
		r := &recordingRenderer{}
		html, ok := Render(r, "# Title\n\nBody text")
		if !ok || html != "<h1>Title</h1>\n\n<p>Body text</p>" {
			t.Fatalf("Render = %q, %v", html, ok)
		}
		if len(r.shown) != 1 || r.last() != html {
			t.Fatalf("renderer got %q", r.shown)
		}
	})

	t.Run("blank input is an empty success", func(t *testing.T) {
		r := &recordingRenderer{}
		html, ok := Render(r, "\n \n")
		if !ok || html != "" {
			t.Fatalf("Render = %q, %v; want empty success", html, ok)
		}
		if len(r.shown) != 1 || r.last() != "" {
			t.Fatalf("renderer got %q", r.shown)
		}
	})

	t.Run("failure displays diagnostic and returns no result", func(t *testing.T) {
		r := &recordingRenderer{}
		c := NewConverter(Options{Formatter: failingFormatter()})
		html, ok := c.Render(r, "fine\n\nboom")
		if ok || html != "" {
			t.Fatalf("Render = %q, %v; want no result", html, ok)
		}
		if len(r.shown) != 1 || !strings.HasPrefix(r.last(), DiagnosticPrefix) {
			t.Fatalf("renderer got %q, want a diagnostic", r.shown)
		}
		if strings.Contains(r.last(), "<p>fine</p>") {
			t.Fatalf("diagnostic leaked partial html: %q", r.last())
		}
	})

	t.Run("display error does not change the result", func(t *testing.T) {
		r := &recordingRenderer{err: errors.New("screen gone")}
		html, ok := Render(r, "x")
		if !ok || html != "<p>x</p>" {
			t.Fatalf("Render = %q, %v", html, ok)
		}
	})
}

func TestConverter_ConvertContextMatchesSequential(t *testing.T) {
	inputs := []string{"", demoInput1, demoInput2, "a\n# b\nc\n\n## d\n\n[x](y) [z](w)", strings.Repeat("para\n\n# head\n", 50)}

	for _, workers := range []int{1, 3, 16} {
		c := NewConverter(Options{Workers: workers})
		for _, input := range inputs {
			want := c.Convert(input)
			got := c.ConvertContext(context.Background(), input)
			if !got.OK() {
				t.Fatalf("workers=%d: unexpected error %v", workers, got.Err)
			}
			if got.HTML != want.HTML {
				t.Errorf("workers=%d input %q:\n got %q\nwant %q", workers, input, got.HTML, want.HTML)
			}
		}
	}
}

func TestConverter_ConvertContextFailures(t *testing.T) {
	t.Run("formatter error", func(t *testing.T) {
		c := NewConverter(Options{Formatter: failingFormatter(), Workers: 2})
		result := c.ConvertContext(context.Background(), "a\n\nb\n\nboom\n\nc")
		if result.OK() || result.HTML != "" {
			t.Fatalf("expected failure without html, got %#v", result)
		}
		if !errors.Is(result.Err, ErrUnexpectedFailure) {
			t.Errorf("error %v should match ErrUnexpectedFailure", result.Err)
		}
	})

	t.Run("panic", func(t *testing.T) {
		c := NewConverter(Options{Formatter: panickingFormatter(), Workers: 2})
		result := c.ConvertContext(context.Background(), "a\n\nboom")
		if !errors.Is(result.Err, ErrUnexpectedFailure) {
			t.Fatalf("error %v should match ErrUnexpectedFailure", result.Err)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		result := NewConverter(Options{}).ConvertContext(ctx, "a\n\nb")
		if !errors.Is(result.Err, context.Canceled) {
			t.Fatalf("error %v should match context.Canceled", result.Err)
		}
	})
}

func TestConverter_Sanitize(t *testing.T) {
	plain := NewConverter(Options{})
	clean := NewConverter(Options{Sanitize: true})
	input := "hi <script>alert(1)</script>\n\n[ok](http://x.com)"

	raw := plain.Convert(input)
	if !strings.Contains(raw.HTML, "<script>") {
		t.Fatalf("unsanitized output should keep markup verbatim: %q", raw.HTML)
	}

	safe := clean.Convert(input)
	if !safe.OK() {
		t.Fatalf("unexpected error %v", safe.Err)
	}
	if strings.Contains(safe.HTML, "<script>") {
		t.Errorf("sanitized output still has script: %q", safe.HTML)
	}
	if !strings.Contains(safe.HTML, `href="http://x.com"`) {
		t.Errorf("sanitized output lost the link: %q", safe.HTML)
	}
}

func TestConverter_BlocksAndLinks(t *testing.T) {
	c := NewConverter(Options{})
	blocks := c.Blocks(demoInput2)
	if len(blocks) != 5 {
		t.Fatalf("got %d blocks, want 5", len(blocks))
	}
	if blocks[0].Kind != KindHeader || blocks[0].Level != 1 || blocks[0].Text != "Header one" {
		t.Errorf("unexpected first block %#v", blocks[0])
	}
	if blocks[4].Kind != KindHeader || blocks[4].Level != 2 {
		t.Errorf("unexpected last block %#v", blocks[4])
	}

	links := c.Links(demoInput2, "docs/demo.md")
	want := []Link{
		{Text: "with an inline link", URL: "http://google.com", Block: 3, SourceFilePath: "docs/demo.md"},
		{Text: "eh", URL: "https://www.yahoo.com", Block: 3, SourceFilePath: "docs/demo.md"},
	}
	if len(links) != len(want) {
		t.Fatalf("got %d links, want %d", len(links), len(want))
	}
	for i := range want {
		if links[i] != want[i] {
			t.Errorf("link %d = %#v, want %#v", i, links[i], want[i])
		}
	}
}

func TestConverter_SameDiagnosticSequentialAndConcurrent(t *testing.T) {
	for _, f := range []Formatter{failingFormatter(), panickingFormatter()} {
		c := NewConverter(Options{Formatter: f, Workers: 4})
		input := "fine\n\nboom\n\nalso fine"

		seq := c.Convert(input)
		par := c.ConvertContext(context.Background(), input)
		if seq.OK() || par.OK() {
			t.Fatalf("expected both to fail: %v, %v", seq.Err, par.Err)
		}
		if seq.Diagnostic() != par.Diagnostic() {
			t.Errorf("Convert diagnostic %q != ConvertContext diagnostic %q", seq.Diagnostic(), par.Diagnostic())
		}
	}
}
