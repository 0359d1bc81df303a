package main

import (
	"fmt"
	"io"
	"os"

	"github.com/boolean-maybe/minidown/minidown"
	"github.com/spf13/cobra"
)

var (
	convertOutput     string
	convertStandalone bool
	convertTemplate   string
	convertCSS        string
	convertSanitize   bool
	convertWorkers    int
)

var convertCmd = &cobra.Command{
	Use:   "convert [file|url|-]",
	Short: "Convert markdown to HTML",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Write HTML to this file instead of stdout")
	convertCmd.Flags().BoolVarP(&convertStandalone, "standalone", "s", false, "Wrap output in a complete HTML page")
	convertCmd.Flags().StringVarP(&convertTemplate, "template", "t", "", "Page template file (implies --standalone)")
	convertCmd.Flags().StringVar(&convertCSS, "css", "", "Stylesheet file for --standalone pages")
	convertCmd.Flags().BoolVar(&convertSanitize, "sanitize", false, "Sanitize output with a user-content HTML policy")
	convertCmd.Flags().IntVarP(&convertWorkers, "workers", "w", 0, "Format blocks with this many goroutines (0 = sequential)")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) (err error) {
	flags := cmd.Flags()
	opts := cfg.Convert
	if flags.Changed("standalone") {
		opts.Standalone = convertStandalone
	}
	if flags.Changed("template") {
		opts.Template = convertTemplate
		opts.Standalone = true
	}
	if flags.Changed("css") {
		opts.CSS = convertCSS
	}
	if flags.Changed("sanitize") {
		opts.Sanitize = convertSanitize
	}
	if flags.Changed("workers") {
		opts.Workers = convertWorkers
	}

	content, _, err := readInput(cmd.Context(), args)
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if convertOutput != "" {
		f, err := os.Create(convertOutput)
		if err != nil {
			return fmt.Errorf("error creating output: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("error closing output: %w", cerr)
			}
		}()
		out = f
	}

	var renderer minidown.Renderer = minidown.WriterRenderer{W: out}
	if opts.Standalone {
		page, err := minidown.NewPageRenderer(out, opts.Template, opts.CSS)
		if err != nil {
			return err
		}
		renderer = page
	}

	conv := newConverter(opts.Sanitize, opts.Workers)
	var result minidown.Result
	if opts.Workers > 0 {
		result = conv.ConvertContext(cmd.Context(), content)
	} else {
		result = conv.Convert(content)
	}

	if !result.OK() {
		fmt.Fprintln(cmd.ErrOrStderr(), result.Diagnostic())
		return result.Err
	}
	return renderer.Display(result.HTML)
}
