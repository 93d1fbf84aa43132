package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/ThatOtherAndrew/unistroke/internal/stroke"
)

// DirEnv overrides the configuration directory.
const DirEnv = "UNISTROKE_HOME"

// Settings holds the overridable kernel constants and file locations.
// Angles are degrees here and radians everywhere else.
type Settings struct {
	Points            int     `yaml:"points"`
	SquareSize        float64 `yaml:"square_size"`
	AngleRangeDeg     float64 `yaml:"angle_range_deg"`
	AngleToleranceDeg float64 `yaml:"angle_tolerance_deg"`
	Workers           int     `yaml:"workers"`
	MinPointDistance  float64 `yaml:"min_point_distance"`
	Library           string  `yaml:"library,omitempty"`
	LogLevel          string  `yaml:"log_level"`
}

func Defaults() Settings {
	return Settings{
		Points:            64,
		SquareSize:        100,
		AngleRangeDeg:     45,
		AngleToleranceDeg: 2,
		Workers:           1,
		MinPointDistance:  2,
		LogLevel:          "info",
	}
}

// Options converts the settings into kernel options.
func (s Settings) Options() stroke.Options {
	return stroke.Options{
		Points:         s.Points,
		Size:           s.SquareSize,
		AngleRange:     s.AngleRangeDeg * math.Pi / 180,
		AngleTolerance: s.AngleToleranceDeg * math.Pi / 180,
		Workers:        s.Workers,
	}
}

// LibraryPath is the configured template file, or gestures.json in the
// configuration directory.
func (s Settings) LibraryPath() (string, error) {
	if s.Library != "" {
		return s.Library, nil
	}
	return GetPath()
}

func GetDir() (string, error) {
	configDir := os.Getenv(DirEnv)
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(homeDir, ".config", "unistroke")
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return configDir, nil
}

func GetPath() (string, error) {
	configDir, err := GetDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "gestures.json"), nil
}

func GetSettingsPath() (string, error) {
	configDir, err := GetDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "settings.yaml"), nil
}

// LoadSettings reads settings from path, or from the default location when
// path is empty. A missing file is created with the defaults. Unknown keys
// and out-of-range values are logged and do not fail the load.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		var err error
		if path, err = GetSettingsPath(); err != nil {
			return nil, err
		}
	}

	defaultSettings := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info().Str("path", path).Msg("Creating default settings file")
			if err := createDefaultSettings(path, &defaultSettings); err != nil {
				log.Warn().Err(err).Msg("Failed to create default settings file")
			}
			return &defaultSettings, nil
		}
		return nil, err
	}

	// Check for unrecognised keys
	var rawSettings map[string]interface{}
	if err := yaml.Unmarshal(data, &rawSettings); err != nil {
		log.Warn().Err(err).Msg("Invalid settings file, using defaults")
		return &defaultSettings, nil
	}

	knownKeys := getKnownKeys(Settings{})
	for key := range rawSettings {
		if !knownKeys[key] {
			log.Warn().Str("key", key).Msg("Unrecognised setting key in settings file")
		}
	}

	settings := Defaults()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		log.Warn().Err(err).Msg("Invalid settings file, using defaults")
		return &defaultSettings, nil
	}

	settings.validate(defaultSettings)
	return &settings, nil
}

// validate resets every out-of-range field to its default.
func (s *Settings) validate(d Settings) {
	if s.Points < 2 {
		log.Warn().Int("points", s.Points).Int("default", d.Points).Msg("Invalid points value, must be at least 2")
		s.Points = d.Points
	}
	if !(s.SquareSize > 0) {
		log.Warn().Float64("square_size", s.SquareSize).Float64("default", d.SquareSize).Msg("Invalid square_size value, must be positive")
		s.SquareSize = d.SquareSize
	}
	if !(s.AngleRangeDeg >= 0 && s.AngleRangeDeg <= 180) {
		log.Warn().Float64("angle_range_deg", s.AngleRangeDeg).Float64("default", d.AngleRangeDeg).Msg("Invalid angle_range_deg value, must be between 0 and 180")
		s.AngleRangeDeg = d.AngleRangeDeg
	}
	if !(s.AngleToleranceDeg > 0) {
		log.Warn().Float64("angle_tolerance_deg", s.AngleToleranceDeg).Float64("default", d.AngleToleranceDeg).Msg("Invalid angle_tolerance_deg value, must be positive")
		s.AngleToleranceDeg = d.AngleToleranceDeg
	}
	if s.Workers < 1 {
		log.Warn().Int("workers", s.Workers).Int("default", d.Workers).Msg("Invalid workers value, must be at least 1")
		s.Workers = d.Workers
	}
	if !(s.MinPointDistance >= 0) {
		log.Warn().Float64("min_point_distance", s.MinPointDistance).Float64("default", d.MinPointDistance).Msg("Invalid min_point_distance value, must not be negative")
		s.MinPointDistance = d.MinPointDistance
	}
	if _, err := zerolog.ParseLevel(s.LogLevel); err != nil {
		log.Warn().Str("log_level", s.LogLevel).Str("default", d.LogLevel).Msg("Invalid log_level value")
		s.LogLevel = d.LogLevel
	}
}

func createDefaultSettings(path string, settings *Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func getKnownKeys(v interface{}) map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if yamlTag := field.Tag.Get("yaml"); yamlTag != "" {
			// Handle yaml tags like "field,omitempty"
			tagName := strings.Split(yamlTag, ",")[0]
			if tagName != "-" {
				keys[tagName] = true
			}
		}
	}
	return keys
}
