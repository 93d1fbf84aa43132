package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered gestures",
	Args:  cobra.NoArgs,
	RunE:  listGestures,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func listGestures(cmd *cobra.Command, args []string) error {
	lib, _, err := loadLibrary()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if lib.Len() == 0 {
		fmt.Fprintln(out, "No gestures registered")
		return nil
	}
	fmt.Fprintln(out, "Registered gestures:")
	for _, name := range lib.Names() {
		g, _ := lib.Get(name)
		fmt.Fprintf(out, "   %s (%d samples)\n", g.Name, len(g.Templates))
	}
	return nil
}
