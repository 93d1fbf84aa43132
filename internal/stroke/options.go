package stroke

import (
	"fmt"
	"math"
)

// Options holds the kernel constants. Angles are radians.
type Options struct {
	Points         int
	Size           float64
	AngleRange     float64
	AngleTolerance float64
	// Workers > 1 scores templates concurrently.
	Workers int
}

func DefaultOptions() Options {
	return Options{
		Points:         64,
		Size:           100,
		AngleRange:     math.Pi / 4,
		AngleTolerance: math.Pi / 90,
		Workers:        1,
	}
}

func (o Options) Validate() error {
	switch {
	case o.Points < 2:
		return fmt.Errorf("points must be at least 2, got %d: %w", o.Points, ErrInvalidOptions)
	case !(o.Size > 0):
		return fmt.Errorf("size must be positive, got %g: %w", o.Size, ErrInvalidOptions)
	case !(o.AngleRange >= 0):
		return fmt.Errorf("angle range must not be negative, got %g: %w", o.AngleRange, ErrInvalidOptions)
	case !(o.AngleTolerance > 0):
		return fmt.Errorf("angle tolerance must be positive, got %g: %w", o.AngleTolerance, ErrInvalidOptions)
	case o.Workers < 1:
		return fmt.Errorf("workers must be at least 1, got %d: %w", o.Workers, ErrInvalidOptions)
	}
	return nil
}

// HalfDiagonal is half the diagonal of the reference square.
func (o Options) HalfDiagonal() float64 {
	return 0.5 * math.Sqrt(o.Size*o.Size+o.Size*o.Size)
}
