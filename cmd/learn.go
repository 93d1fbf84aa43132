package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ThatOtherAndrew/unistroke/internal/models"
)

var force bool

var learnCmd = &cobra.Command{
	Use:   "learn [gesture] [stroke file]...",
	Short: "Learn a gesture from one or more recorded strokes",
	Long: "Learn a gesture from one or more recorded strokes. Each file holds one\n" +
		"stroke as a point list, e.g. [(10,20),(12,25),...]; use - for stdin.",
	Args: cobra.MinimumNArgs(2),
	RunE: learnGesture,
}

func init() {
	rootCmd.AddCommand(learnCmd)
	learnCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing gesture")
}

func learnGesture(cmd *cobra.Command, args []string) error {
	name, files := args[0], args[1:]

	lib, path, err := loadLibrary()
	if err != nil {
		return err
	}
	if lib.Has(name) && !force {
		return fmt.Errorf("gesture %q already exists, use --force to overwrite it", name)
	}

	gesture := models.Gesture{Name: name}
	for i, file := range files {
		normalized, err := readStroke(cmd, file)
		if err != nil {
			return err
		}
		gesture.Templates = append(gesture.Templates, normalized)
		log.Info().Int("sample", i+1).Int("of", len(files)).Msg("Captured gesture")
	}

	replaced := lib.Put(gesture)
	if err := lib.Save(path); err != nil {
		return fmt.Errorf("save gestures: %w", err)
	}

	if replaced {
		fmt.Fprintf(cmd.OutOrStdout(), "Old content for gesture %q was successfully overwritten!\n", name)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Gesture %q was successfully saved!\n", name)
	}
	return nil
}
