package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var recognizeCmd = &cobra.Command{
	Use:   "recognize [stroke file]",
	Short: "Match a recorded stroke against the learned gestures",
	Args:  cobra.ExactArgs(1),
	RunE:  recognizeGesture,
}

func init() {
	rootCmd.AddCommand(recognizeCmd)
}

func recognizeGesture(cmd *cobra.Command, args []string) error {
	lib, _, err := loadLibrary()
	if err != nil {
		return err
	}

	normalized, err := readStroke(cmd, args[0])
	if err != nil {
		return err
	}

	templates := lib.Templates()
	match, err := recognizer.Recognize(normalized, templates)
	if err != nil {
		return fmt.Errorf("recognize: %w", err)
	}
	if !match.Found {
		fmt.Fprintln(cmd.OutOrStdout(), "No gesture found")
		return nil
	}

	log.Debug().
		Str("gesture", match.Name).
		Float64("distance", match.Distance).
		Int("templates", len(templates)).
		Msg("Recognized gesture")
	fmt.Fprintf(cmd.OutOrStdout(), "%s (score: %.4f)\n", match.Name, match.Score)
	return nil
}
