package gestures

import (
	"github.com/ThatOtherAndrew/unistroke/internal/models"
)

const (
	// MaxPoints is the trail length kept while drawing live.
	MaxPoints = 2048

	// DefaultMinDistance is how far, in pixels, the pointer has to move
	// before another point is recorded.
	DefaultMinDistance = 2
)

// Filter turns a captured stroke into what the caller stores or matches,
// usually a recognizer's Normalize.
type Filter func([]models.Point) ([]models.Point, error)

// Recorder collects the points of one stroke as they arrive from a pointing
// device.
type Recorder struct {
	points    []models.Point
	minDist2  float64
	maxPoints int
}

// NewRecorder returns a recorder that drops points within minDistance of the
// previously recorded one. Repeated points are dropped even when minDistance
// is 0. A positive maxPoints keeps only that many of the most recent points,
// as a live trail does; maxPoints <= 0 keeps the whole stroke.
func NewRecorder(minDistance float64, maxPoints int) *Recorder {
	return &Recorder{minDist2: minDistance * minDistance, maxPoints: maxPoints}
}

// AddPoint records (x, y) and reports whether it was kept.
func (r *Recorder) AddPoint(x, y float64) bool {
	newPoint := models.Point{X: x, Y: y}

	if len(r.points) > 0 {
		lastPoint := r.points[len(r.points)-1]
		dx := newPoint.X - lastPoint.X
		dy := newPoint.Y - lastPoint.Y
		if dx*dx+dy*dy <= r.minDist2 {
			return false
		}
	}

	r.points = append(r.points, newPoint)
	if r.maxPoints > 0 && len(r.points) > r.maxPoints {
		r.points = r.points[len(r.points)-r.maxPoints:]
	}
	return true
}

func (r *Recorder) Len() int { return len(r.points) }

func (r *Recorder) Points() []models.Point {
	return append([]models.Point(nil), r.points...)
}

func (r *Recorder) Reset() { r.points = nil }

// Finish passes the recorded stroke through filter and resets the recorder,
// whether or not filter succeeds. A nil filter returns the raw points.
func (r *Recorder) Finish(filter Filter) ([]models.Point, error) {
	points := r.points
	r.points = nil
	if filter == nil {
		return points, nil
	}
	return filter(points)
}
