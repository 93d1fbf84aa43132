package stroke

import (
	"fmt"
	"math"
)

// phi is the golden ratio conjugate, 0.5 * (√5 - 1).
var phi = 0.5 * (math.Sqrt(5) - 1)

// PathDistance sums the distances between corresponding points from index 1
// on and divides by the magnitude of candidate's first point. The two
// arguments are not interchangeable.
func PathDistance(candidate, template []Point) (float64, error) {
	if len(candidate) != len(template) {
		return 0, fmt.Errorf("path distance between %d and %d points: %w",
			len(candidate), len(template), ErrLengthMismatch)
	}
	if len(candidate) == 0 {
		return 0, fmt.Errorf("path distance of empty stroke: %w", ErrInsufficientPoints)
	}
	norm := math.Hypot(candidate[0].X, candidate[0].Y)
	if norm == 0 {
		return 0, fmt.Errorf("candidate starts at the origin: %w", ErrDegenerateGeometry)
	}

	d := 0.0
	for i := 1; i < len(candidate); i++ {
		d += Distance(candidate[i], template[i])
	}
	return d / norm, nil
}

func DistanceAtAngle(points, template []Point, angle float64) (float64, error) {
	rotated, err := RotateBy(points, angle)
	if err != nil {
		return 0, err
	}
	return PathDistance(rotated, template)
}

// DistanceAtBestAngle runs a golden-section search for the rotation in
// [a, b] that minimises the path distance and returns that distance. Angles
// are radians.
func DistanceAtBestAngle(points, template []Point, a, b, delta float64) (float64, error) {
	if delta <= 0 || a > b {
		return 0, fmt.Errorf("angle search [%g, %g] with tolerance %g: %w", a, b, delta, ErrInvalidOptions)
	}

	x1 := phi*a + (1-phi)*b
	f1, err := DistanceAtAngle(points, template, x1)
	if err != nil {
		return 0, err
	}
	x2 := (1-phi)*a + phi*b
	f2, err := DistanceAtAngle(points, template, x2)
	if err != nil {
		return 0, err
	}

	for math.Abs(b-a) > delta {
		if f1 < f2 {
			b = x2
			x2 = x1
			f2 = f1
			x1 = phi*a + (1-phi)*b
			if f1, err = DistanceAtAngle(points, template, x1); err != nil {
				return 0, err
			}
		} else {
			a = x1
			x1 = x2
			f1 = f2
			x2 = (1-phi)*a + phi*b
			if f2, err = DistanceAtAngle(points, template, x2); err != nil {
				return 0, err
			}
		}
	}
	return math.Min(f1, f2), nil
}
