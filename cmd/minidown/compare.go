package main

import (
	"fmt"

	"github.com/boolean-maybe/minidown/reference"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare [file|url|-]",
	Short: "Show where minidown output differs from CommonMark",
	Long: `compare converts the input with minidown and with a CommonMark renderer
and lists the top-level blocks where the two disagree.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, _, err := readInput(cmd.Context(), args)
		if err != nil {
			return err
		}

		diffs, err := reference.Compare(newConverter(false, 0), content)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(diffs) == 0 {
			fmt.Fprintln(out, "no differences")
			return nil
		}
		for _, d := range diffs {
			fmt.Fprintln(out, d)
		}
		return fmt.Errorf("%d block(s) differ", len(diffs))
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
