package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var blocksCmd = &cobra.Command{
	Use:   "blocks [file|url|-]",
	Short: "List the classified blocks of a markdown document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, source, err := readInput(cmd.Context(), args)
		if err != nil {
			return err
		}

		conv := newConverter(false, 0)
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "#\tKIND\tLEVEL\tTEXT")
		for i, b := range conv.Blocks(content) {
			fmt.Fprintf(w, "%d\t%s\t%d\t%q\n", i, b.Kind, b.Level, b.Text)
		}
		for _, l := range conv.Links(content, source) {
			fmt.Fprintf(w, "%d\tlink\t\t%q -> %s\n", l.Block, l.Text, l.URL)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(blocksCmd)
}
