package gestures

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ThatOtherAndrew/unistroke/internal/models"
	"github.com/ThatOtherAndrew/unistroke/internal/stroke"
)

// Format is the on-disk encoding of a library.
type Format int

const (
	FormatJSON Format = iota
	FormatCSV
)

// FormatFor picks the encoding from the file extension. Anything that is not
// .csv is JSON.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return FormatCSV
	}
	return FormatJSON
}

// Library is an ordered set of gestures with unique names. The order is the
// order they were first saved in and is the order templates are matched in.
type Library struct {
	gestures []models.Gesture
}

func NewLibrary(gestures ...models.Gesture) *Library {
	l := &Library{}
	for _, g := range gestures {
		l.Put(g)
	}
	return l
}

// Load reads a library from path. A missing file is an empty library.
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Library{}, nil
		}
		return nil, err
	}

	var gestures []models.Gesture
	switch FormatFor(path) {
	case FormatCSV:
		gestures, err = DecodeCSV(bytes.NewReader(data))
	default:
		err = json.Unmarshal(data, &gestures)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return NewLibrary(gestures...), nil
}

// Save writes the library to path through a temporary file.
func (l *Library) Save(path string) error {
	var data []byte
	switch FormatFor(path) {
	case FormatCSV:
		var buf bytes.Buffer
		if err := EncodeCSV(&buf, l.gestures); err != nil {
			return err
		}
		data = buf.Bytes()
	default:
		var err error
		if data, err = json.Marshal(l.gestures); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func (l *Library) Len() int { return len(l.gestures) }

func (l *Library) Names() []string {
	names := make([]string, len(l.gestures))
	for i, g := range l.gestures {
		names[i] = g.Name
	}
	return names
}

func (l *Library) index(name string) int {
	for i, g := range l.gestures {
		if g.Name == name {
			return i
		}
	}
	return -1
}

func (l *Library) Has(name string) bool { return l.index(name) >= 0 }

func (l *Library) Get(name string) (models.Gesture, bool) {
	if i := l.index(name); i >= 0 {
		return l.gestures[i], true
	}
	return models.Gesture{}, false
}

// Put adds a gesture, replacing all templates of an existing one with the
// same name in place. It reports whether a gesture was replaced.
func (l *Library) Put(g models.Gesture) bool {
	if i := l.index(g.Name); i >= 0 {
		l.gestures[i] = g
		return true
	}
	l.gestures = append(l.gestures, g)
	return false
}

func (l *Library) Remove(name string) bool {
	i := l.index(name)
	if i < 0 {
		return false
	}
	l.gestures = append(l.gestures[:i], l.gestures[i+1:]...)
	return true
}

// Templates flattens the library for the recognizer: gestures in library
// order, each gesture's samples in the order they were recorded.
func (l *Library) Templates() []stroke.Template {
	var templates []stroke.Template
	for _, g := range l.gestures {
		for _, t := range g.Templates {
			templates = append(templates, stroke.Template{Name: g.Name, Points: t})
		}
	}
	return templates
}
