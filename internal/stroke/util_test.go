package stroke

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approx(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

func pts(xy ...float64) []Point {
	out := make([]Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func circle(cx, cy, r float64, n int) []Point {
	out := make([]Point, n+1)
	for i := range out {
		a := 2 * math.Pi * float64(i) / float64(n)
		out[i] = Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	return out
}

func triangle() []Point {
	return pts(0, 0, 60, 100, 120, 0, 0, 0)
}

func square() []Point {
	return pts(0, 0, 0, 80, 80, 80, 80, 0, 0, 0)
}

func zigzag() []Point {
	return pts(0, 0, 20, 40, 40, 0, 60, 40, 80, 0, 100, 40)
}

// transform rotates points about the origin, then scales and translates.
func transform(points []Point, angle, scale, tx, ty float64) []Point {
	sin, cos := math.Sincos(angle)
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{
			X: (p.X*cos-p.Y*sin)*scale + tx,
			Y: (p.X*sin+p.Y*cos)*scale + ty,
		}
	}
	return out
}

func mustNormalize(t *testing.T, points []Point) []Point {
	t.Helper()
	out, err := Normalize(points, DefaultOptions())
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	return out
}
