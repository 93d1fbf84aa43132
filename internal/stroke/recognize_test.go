package stroke

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func library(t *testing.T) []Template {
	t.Helper()
	return []Template{
		{Name: "circle", Points: mustNormalize(t, circle(0, 0, 50, 180))},
		{Name: "square", Points: mustNormalize(t, square())},
		{Name: "triangle", Points: mustNormalize(t, triangle())},
		{Name: "zigzag", Points: mustNormalize(t, zigzag())},
	}
}

func TestRecognizeSelf(t *testing.T) {
	r, err := New(DefaultOptions())
	require.NoError(t, err)

	for _, T := range library(t) {
		m, err := r.Recognize(T.Points, []Template{{Name: "X", Points: T.Points}})
		require.NoError(t, err)
		assert.True(t, m.Found)
		assert.Equal(t, "X", m.Name)
		assert.InDelta(t, 1, m.Score, 0.03, T.Name)
	}
}

func TestRecognizeEmpty(t *testing.T) {
	m, err := Recognize(mustNormalize(t, square()), nil)
	require.NoError(t, err)
	assert.Equal(t, NoMatch, m)
	assert.False(t, m.Found)
}

func TestRecognizeLibrary(t *testing.T) {
	r, err := New(DefaultOptions())
	require.NoError(t, err)
	lib := library(t)

	tests := []struct {
		want  string
		input []Point
	}{
		{"circle", circle(400, 300, 120, 90)},
		{"square", transform(square(), 0.4, 0.5, 30, 30)},
		{"triangle", transform(triangle(), -2.5, 4, -100, 0)},
		{"zigzag", transform(zigzag(), math.Pi, 1.5, 10, 10)},
	}
	for _, tt := range tests {
		m, err := r.Recognize(mustNormalize(t, tt.input), lib)
		require.NoError(t, err)
		assert.Equal(t, tt.want, m.Name)
		assert.Greater(t, m.Score, 0.9, tt.want)
	}
}

func TestRecognizeScore(t *testing.T) {
	opts := DefaultOptions()
	lib := library(t)
	query := mustNormalize(t, triangle())

	m, err := Recognize(query, lib)
	require.NoError(t, err)
	d, err := DistanceAtBestAngle(query, lib[2].Points, -opts.AngleRange, opts.AngleRange, opts.AngleTolerance)
	require.NoError(t, err)
	assert.Equal(t, d, m.Distance)
	assert.InDelta(t, 1-d/(0.5*math.Sqrt(2*100*100)), m.Score, 1e-12)
}

func TestRecognizeTieFirstWins(t *testing.T) {
	s := mustNormalize(t, zigzag())
	for _, workers := range []int{1, 4} {
		opts := DefaultOptions()
		opts.Workers = workers
		r, err := New(opts)
		require.NoError(t, err)

		m, err := r.Recognize(s, []Template{{Name: "first", Points: s}, {Name: "second", Points: s}})
		require.NoError(t, err)
		assert.Equal(t, "first", m.Name, "workers=%d", workers)
	}
}

func TestRecognizeParallelMatchesSequential(t *testing.T) {
	var lib []Template
	for i := 0; i < 12; i++ {
		lib = append(lib, Template{
			Name:   fmt.Sprintf("zigzag-%d", i),
			Points: mustNormalize(t, transform(zigzag(), 0, 1, float64(i), 0)),
		})
		lib = append(lib, library(t)...)
	}
	query := mustNormalize(t, transform(square(), 1, 2, 0, 0))

	seq, err := Recognize(query, lib)
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.Workers = 8
	r, err := New(opts)
	require.NoError(t, err)
	par, err := r.Recognize(query, lib)
	require.NoError(t, err)

	assert.Equal(t, seq, par)
}

func TestRecognizeErrors(t *testing.T) {
	r, err := New(DefaultOptions())
	require.NoError(t, err)

	short := []Template{{Name: "short", Points: mustNormalize(t, square())[:32]}}
	_, err = r.Recognize(mustNormalize(t, square()), short)
	assert.ErrorIs(t, err, ErrLengthMismatch)
	assert.ErrorContains(t, err, `"short"`)
}

func TestOptionsValidate(t *testing.T) {
	require.NoError(t, DefaultOptions().Validate())

	for _, mutate := range []func(*Options){
		func(o *Options) { o.Points = 1 },
		func(o *Options) { o.Size = 0 },
		func(o *Options) { o.Size = math.NaN() },
		func(o *Options) { o.AngleRange = -1 },
		func(o *Options) { o.AngleTolerance = 0 },
		func(o *Options) { o.Workers = 0 },
	} {
		o := DefaultOptions()
		mutate(&o)
		_, err := New(o)
		assert.ErrorIs(t, err, ErrInvalidOptions)
	}
}

func TestRecognizerNormalize(t *testing.T) {
	opts := DefaultOptions()
	opts.Points = 32
	opts.Size = 250
	r, err := New(opts)
	require.NoError(t, err)

	got, err := r.Normalize(zigzag())
	require.NoError(t, err)
	assert.Len(t, got, 32)
	B, err := BoundingBox(got)
	require.NoError(t, err)
	assert.InDelta(t, 250, B.Width(), 1e-9)
}
