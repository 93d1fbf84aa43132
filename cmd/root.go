package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ThatOtherAndrew/unistroke/internal/config"
	gestures "github.com/ThatOtherAndrew/unistroke/internal/gesture"
	"github.com/ThatOtherAndrew/unistroke/internal/models"
	"github.com/ThatOtherAndrew/unistroke/internal/stroke"
)

var (
	settingsPath string
	libraryPath  string
	logLevel     string

	points      int
	squareSize  float64
	workers     int
	minDistance float64

	settings   *config.Settings
	recognizer *stroke.Recognizer
)

var rootCmd = &cobra.Command{
	Use:               "unistroke",
	Short:             "Learn and recognize single-stroke gestures",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&settingsPath, "config", "", "settings file (default ~/.config/unistroke/settings.yaml)")
	flags.StringVar(&libraryPath, "library", "", "gesture library, .json or .csv (default ~/.config/unistroke/gestures.json)")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.IntVar(&points, "points", 0, "resample point count")
	flags.Float64Var(&squareSize, "size", 0, "reference square size")
	flags.IntVar(&workers, "workers", 0, "templates scored concurrently")
	flags.Float64Var(&minDistance, "min-distance", 0, "drop input points closer than this to the previous one")
}

func Execute() error {
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, args []string) error {
	configureLogger(cmd.ErrOrStderr(), logLevel)

	var err error
	if settings, err = config.LoadSettings(settingsPath); err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("library") {
		settings.Library = libraryPath
	}
	if flags.Changed("points") {
		settings.Points = points
	}
	if flags.Changed("size") {
		settings.SquareSize = squareSize
	}
	if flags.Changed("workers") {
		settings.Workers = workers
	}
	if flags.Changed("min-distance") {
		settings.MinPointDistance = minDistance
	}
	if !flags.Changed("log-level") {
		configureLogger(cmd.ErrOrStderr(), settings.LogLevel)
	}

	recognizer, err = stroke.New(settings.Options())
	return err
}

func configureLogger(w io.Writer, level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w}).
		With().Timestamp().Logger().
		Level(lvl)
}

func loadLibrary() (*gestures.Library, string, error) {
	path, err := settings.LibraryPath()
	if err != nil {
		return nil, "", fmt.Errorf("get library path: %w", err)
	}
	lib, err := gestures.Load(path)
	if err != nil {
		return nil, "", fmt.Errorf("load gestures: %w", err)
	}
	log.Debug().Str("path", path).Int("gestures", lib.Len()).Msg("Loaded library")
	return lib, path, nil
}

// readStroke reads a raw point list from path, or stdin for "-", and
// normalizes it.
func readStroke(cmd *cobra.Command, path string) ([]models.Point, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	raw, err := gestures.ParsePoints(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	// A stroke read from a file is complete, so none of it is dropped.
	rec := gestures.NewRecorder(settings.MinPointDistance, 0)
	for _, p := range raw {
		rec.AddPoint(p.X, p.Y)
	}
	log.Debug().Str("path", path).Int("raw", len(raw)).Int("kept", rec.Len()).Msg("Read stroke")

	normalized, err := rec.Finish(recognizer.Normalize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return normalized, nil
}
