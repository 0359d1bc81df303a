package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/boolean-maybe/minidown/loaders"
	"github.com/boolean-maybe/minidown/minidown"
	tviewAdapter "github.com/boolean-maybe/minidown/minidown/tview"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
)

var viewStyle string

var viewCmd = &cobra.Command{
	Use:   "view <file-path-or-url>",
	Short: "Browse converted HTML next to the rendered source in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

func init() {
	viewCmd.Flags().StringVar(&viewStyle, "style", "", "Source pane style: dark, light or auto")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	opts := cfg.View
	if cmd.Flags().Changed("style") {
		opts.Style = viewStyle
	}

	content, sourcePath, err := readInput(ctx, args)
	if err != nil {
		return err
	}
	if sourcePath != "" && !isURL(sourcePath) {
		if abs, aerr := filepath.Abs(sourcePath); aerr == nil {
			sourcePath = abs
		}
	}

	app := tview.NewApplication()

	htmlView := tviewAdapter.NewHTMLView(minidown.SessionOptions{
		Converter:  newConverter(cfg.Convert.Sanitize, 0),
		HistoryMax: opts.HistoryMax,
		Logger:     logger,
	})
	htmlView.SetBorder(true).SetTitle(" HTML ")

	sourceView := tviewAdapter.NewSourceView(minidown.NewANSIPreview(opts.Style))
	sourceView.SetBorder(true).SetTitle(" Source ")

	statusBar := tview.NewTextView()
	statusBar.SetDynamicColors(true)
	statusBar.SetTextAlign(tview.AlignLeft)

	provider := &loaders.FileHTTP{SearchRoots: opts.SearchRoots}
	fetcher := minidown.NewContentFetcher(provider, opts.SearchRoots)

	htmlView.SetSelectHandler(func(v *tviewAdapter.HTMLView, link minidown.Link) {
		v.Update(func(s *minidown.Session) {
			fetcher.OnSelectWithErrorDisplay(ctx, s, link)
		})
	})
	htmlView.SetStateChangedHandler(func(v *tviewAdapter.HTMLView) {
		syncPanes(v, sourceView, statusBar)
	})

	if err := htmlView.SetMarkdownWithSource(content, sourcePath, false); err != nil {
		logger.Warn("initial conversion failed", "error", err)
	}

	panes := tview.NewFlex().
		AddItem(htmlView, 0, 1, true).
		AddItem(sourceView, 0, 1, false)
	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(panes, 0, 1, true).
		AddItem(statusBar, 1, 0, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})

	go stopOnDone(ctx, app)

	if err := app.SetRoot(layout, true).Run(); err != nil {
		return fmt.Errorf("error running application: %w", err)
	}
	return nil
}

func stopOnDone(ctx context.Context, app *tview.Application) {
	<-ctx.Done()
	app.Stop()
}

func syncPanes(v *tviewAdapter.HTMLView, source *tviewAdapter.SourceView, status *tview.TextView) {
	if err := source.SetMarkdown(v.Session().Markdown()); err != nil {
		logger.Debug("source preview failed", "error", err)
	}
	updateStatusBar(status, v.Session())
}

// updateStatusBar refreshes the status bar with current session state.
func updateStatusBar(statusBar *tview.TextView, s *minidown.Session) {
	fileName := filepath.Base(s.SourceFilePath())
	if fileName == "" || fileName == "." {
		fileName = "minidown"
	}

	arrow := func(active bool, glyph string) string {
		if active {
			return "[white]" + glyph + "[-]"
		}
		return "[gray]" + glyph + "[-]"
	}

	link := "-"
	if sel := s.Selected(); sel != nil {
		link = tview.Escape(sel.URL)
	}

	statusBar.SetText(fmt.Sprintf(
		" [yellow]%s[-] | Link:[gray]Tab/Shift-Tab[-] %s | Back:%s Fwd:%s | Quit:[gray]q[-]",
		tview.Escape(fileName), link, arrow(s.CanGoBack(), "◀"), arrow(s.CanGoForward(), "▶"),
	))
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
