package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove [gesture]",
	Short: "Remove a gesture by name",
	Args:  cobra.ExactArgs(1),
	RunE:  removeGesture,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func removeGesture(cmd *cobra.Command, args []string) error {
	lib, path, err := loadLibrary()
	if err != nil {
		return err
	}

	if !lib.Remove(args[0]) {
		return fmt.Errorf("gesture not found: %s", args[0])
	}
	if err := lib.Save(path); err != nil {
		return fmt.Errorf("save gestures: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Removed gesture:", args[0])
	return nil
}
