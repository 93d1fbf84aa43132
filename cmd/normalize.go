package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	gestures "github.com/ThatOtherAndrew/unistroke/internal/gesture"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [stroke file]",
	Short: "Print the normalized form of a recorded stroke",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		normalized, err := readStroke(cmd, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), gestures.FormatPoints(normalized))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}
