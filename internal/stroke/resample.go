package stroke

import "fmt"

// Resample returns n points spaced at equal arc-length intervals along the
// stroke. The first output point is the first input point.
func Resample(points []Point, n int) ([]Point, error) {
	if n < 2 {
		return nil, fmt.Errorf("resample to %d points: %w", n, ErrInvalidOptions)
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("resample %d point(s): %w", len(points), ErrInsufficientPoints)
	}
	length := PathLength(points)
	if length == 0 {
		return nil, fmt.Errorf("resample zero-length stroke: %w", ErrDegenerateGeometry)
	}

	I := length / float64(n-1)
	D := 0.0
	newPoints := make([]Point, 1, n)
	newPoints[0] = points[0]

	// prev is the start of the segment under the read cursor; it is either
	// an input point or the last interpolated point.
	prev := points[0]
	for i := 1; i < len(points) && len(newPoints) < n; {
		cur := points[i]
		d := Distance(prev, cur)
		if d == 0 {
			i++
			continue
		}
		if D+d >= I {
			q := lerp(prev, cur, (I-D)/d)
			newPoints = append(newPoints, q)
			prev = q
			D = 0
		} else {
			D += d
			prev = cur
			i++
		}
	}
	for len(newPoints) < n {
		newPoints = append(newPoints, points[len(points)-1])
	}
	return newPoints, nil
}
