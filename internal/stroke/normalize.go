package stroke

import (
	"fmt"
	"math"
)

// degenerateExtent is the fraction of the larger bounding box side below
// which the other side is treated as flat.
const degenerateExtent = 1e-9

// IndicativeAngle is the angle from the first point to the centroid. A
// stroke whose centroid is its first point has angle 0.
func IndicativeAngle(points []Point) (float64, error) {
	c, err := Centroid(points)
	if err != nil {
		return 0, err
	}
	first := points[0]
	if c == first {
		return 0, nil
	}
	return math.Atan2(c.Y-first.Y, c.X-first.X), nil
}

// RotateToZero rotates the stroke about its centroid so its indicative angle
// becomes 0.
func RotateToZero(points []Point) ([]Point, error) {
	c, err := Centroid(points)
	if err != nil {
		return nil, err
	}
	angle, err := IndicativeAngle(points)
	if err != nil {
		return nil, err
	}
	if angle == 0 {
		return append([]Point(nil), points...), nil
	}
	return rotateAbout(points, c, -angle), nil
}

// ScaleToSquare scales each axis independently so the bounding box becomes
// size x size. A flat axis is left unscaled; the stretch is not uniform.
func ScaleToSquare(points []Point, size float64) ([]Point, error) {
	B, err := BoundingBox(points)
	if err != nil {
		return nil, err
	}
	w, h := B.Width(), B.Height()
	extent := math.Max(w, h)
	if extent == 0 {
		return nil, fmt.Errorf("scale a single-point stroke: %w", ErrDegenerateGeometry)
	}

	sx, sy := 1.0, 1.0
	if w > extent*degenerateExtent {
		sx = size / w
	}
	if h > extent*degenerateExtent {
		sy = size / h
	}

	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{X: p.X * sx, Y: p.Y * sy}
	}
	return out, nil
}

// TranslateToOrigin moves the stroke so its centroid is at (0, 0).
func TranslateToOrigin(points []Point) ([]Point, error) {
	c, err := Centroid(points)
	if err != nil {
		return nil, err
	}
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{X: p.X - c.X, Y: p.Y - c.Y}
	}
	return out, nil
}

// Canonicalize runs steps 2 and 3 on an already resampled stroke.
func Canonicalize(points []Point, size float64) ([]Point, error) {
	points, err := RotateToZero(points)
	if err != nil {
		return nil, err
	}
	if points, err = ScaleToSquare(points, size); err != nil {
		return nil, err
	}
	return TranslateToOrigin(points)
}

// Normalize resamples a raw stroke and canonicalizes it.
func Normalize(points []Point, opts Options) ([]Point, error) {
	points, err := Resample(points, opts.Points)
	if err != nil {
		return nil, err
	}
	return Canonicalize(points, opts.Size)
}
