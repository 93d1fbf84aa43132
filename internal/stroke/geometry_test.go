package stroke

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(Point{X: 0, Y: 10}, Point{X: 0, Y: 5}))
	assert.Equal(t, 5.0, Distance(Point{X: -11, Y: 1}, Point{X: -7, Y: -2}))
	assert.Equal(t, 0.0, Distance(Point{X: 3, Y: 3}, Point{X: 3, Y: 3}))
}

func TestPathLength(t *testing.T) {
	assert.Equal(t, 0.0, PathLength(nil))
	assert.Equal(t, 0.0, PathLength(pts(4, 2)))
	assert.Equal(t, 320.0, PathLength(square()))
	assert.InDelta(t, 2*math.Pi*50, PathLength(circle(0, 0, 50, 720)), 0.01)
}

func TestCentroid(t *testing.T) {
	c, err := Centroid(pts(0, 0, 10, 0, 10, 10, 0, 10))
	require.NoError(t, err)
	assert.Equal(t, Point{X: 5, Y: 5}, c)

	_, err = Centroid(nil)
	assert.ErrorIs(t, err, ErrInsufficientPoints)
}

func TestBoundingBox(t *testing.T) {
	r, err := BoundingBox(pts(3, -1, -2, 4, 7, 2))
	require.NoError(t, err)
	assert.Equal(t, Rect{Min: Point{X: -2, Y: -1}, Max: Point{X: 7, Y: 4}}, r)
	assert.Equal(t, 9.0, r.Width())
	assert.Equal(t, 5.0, r.Height())

	r, err = BoundingBox(pts(1, 1, 1, 5))
	require.NoError(t, err)
	assert.Zero(t, r.Width())

	_, err = BoundingBox(nil)
	assert.ErrorIs(t, err, ErrInsufficientPoints)
}

func TestRotateBy(t *testing.T) {
	in := pts(-1, 0, 1, 0)
	out, err := RotateBy(in, math.Pi/2)
	require.NoError(t, err)
	diff(t, pts(0, -1, 0, 1), out, approx(1e-12))
	diff(t, pts(-1, 0, 1, 0), in)

	_, err = RotateBy(nil, 1)
	assert.ErrorIs(t, err, ErrInsufficientPoints)
}
