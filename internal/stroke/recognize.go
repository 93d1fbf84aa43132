package stroke

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// Template is one normalized sample for a gesture name.
type Template struct {
	Name   string
	Points []Point
}

// Match is the outcome of a recognition. NoMatch is returned when there was
// nothing to match against.
type Match struct {
	Name     string
	Score    float64
	Distance float64
	Found    bool
}

var NoMatch = Match{}

type Recognizer struct {
	opts Options
}

func New(opts Options) (*Recognizer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Recognizer{opts: opts}, nil
}

func (r *Recognizer) Options() Options { return r.opts }

// Normalize has the signature of gesture.Filter so a recognizer can be
// handed straight to a stroke recorder.
func (r *Recognizer) Normalize(points []Point) ([]Point, error) {
	return Normalize(points, r.opts)
}

// Recognize scores a normalized query against every template and returns the
// closest. Templates are scanned in slice order and the first one wins ties.
func (r *Recognizer) Recognize(points []Point, templates []Template) (Match, error) {
	if len(templates) == 0 {
		return NoMatch, nil
	}

	distances, err := r.distances(points, templates)
	if err != nil {
		return NoMatch, err
	}

	b := math.Inf(1)
	best := -1
	for i, d := range distances {
		if d < b {
			b = d
			best = i
		}
	}
	if best < 0 {
		return NoMatch, nil
	}
	return Match{
		Name:     templates[best].Name,
		Score:    1 - b/r.opts.HalfDiagonal(),
		Distance: b,
		Found:    true,
	}, nil
}

func (r *Recognizer) distances(points []Point, templates []Template) ([]float64, error) {
	lo, hi, delta := -r.opts.AngleRange, r.opts.AngleRange, r.opts.AngleTolerance
	distances := make([]float64, len(templates))

	if r.opts.Workers <= 1 || len(templates) == 1 {
		for i, T := range templates {
			d, err := DistanceAtBestAngle(points, T.Points, lo, hi, delta)
			if err != nil {
				return nil, fmt.Errorf("template %q: %w", T.Name, err)
			}
			distances[i] = d
		}
		return distances, nil
	}

	var g errgroup.Group
	g.SetLimit(r.opts.Workers)
	for i, T := range templates {
		g.Go(func() error {
			d, err := DistanceAtBestAngle(points, T.Points, lo, hi, delta)
			if err != nil {
				return fmt.Errorf("template %q: %w", T.Name, err)
			}
			distances[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return distances, nil
}

// Recognize is a convenience wrapper using DefaultOptions.
func Recognize(points []Point, templates []Template) (Match, error) {
	r, err := New(DefaultOptions())
	if err != nil {
		return NoMatch, err
	}
	return r.Recognize(points, templates)
}
