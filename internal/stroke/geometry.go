// https://depts.washington.edu/acelab/proj/dollar/dollar.pdf

package stroke

import (
	"fmt"
	"math"

	"github.com/ThatOtherAndrew/unistroke/internal/models"
)

type Point = models.Point

// Rect is an axis-aligned bounding box.
type Rect struct {
	Min, Max Point
}

// Width is the horizontal extent of r.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height is the vertical extent of r.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Distance is the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// PathLength sums the distances between consecutive points.
func PathLength(points []Point) float64 {
	d := 0.0
	for i := 1; i < len(points); i++ {
		d += Distance(points[i-1], points[i])
	}
	return d
}

// Centroid is the mean of the points.
func Centroid(points []Point) (Point, error) {
	if len(points) == 0 {
		return Point{}, fmt.Errorf("centroid of empty stroke: %w", ErrInsufficientPoints)
	}
	var x, y float64
	for _, p := range points {
		x += p.X
		y += p.Y
	}
	n := float64(len(points))
	return Point{X: x / n, Y: y / n}, nil
}

// BoundingBox is the smallest axis-aligned box containing the points.
func BoundingBox(points []Point) (Rect, error) {
	if len(points) == 0 {
		return Rect{}, fmt.Errorf("bounding box of empty stroke: %w", ErrInsufficientPoints)
	}
	r := Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r, nil
}

// RotateBy rotates every point about the centroid by angle radians. The
// input slice is left untouched.
func RotateBy(points []Point, angle float64) ([]Point, error) {
	c, err := Centroid(points)
	if err != nil {
		return nil, err
	}
	return rotateAbout(points, c, angle), nil
}

func rotateAbout(points []Point, c Point, angle float64) []Point {
	sin, cos := math.Sincos(angle)
	out := make([]Point, len(points))
	for i, p := range points {
		dx, dy := p.X-c.X, p.Y-c.Y
		out[i] = Point{
			X: dx*cos - dy*sin + c.X,
			Y: dx*sin + dy*cos + c.Y,
		}
	}
	return out
}

func lerp(a, b Point, t float64) Point {
	return Point{
		X: a.X + t*(b.X-a.X),
		Y: a.Y + t*(b.Y-a.Y),
	}
}
