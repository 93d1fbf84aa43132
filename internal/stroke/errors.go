package stroke

import "errors"

var (
	// ErrInsufficientPoints is returned when a stroke has too few points for
	// the requested operation.
	ErrInsufficientPoints = errors.New("stroke: insufficient points")

	// ErrDegenerateGeometry is returned instead of dividing by zero: a stroke
	// with zero path length, a zero-area bounding box, or a candidate whose
	// first point sits on the origin.
	ErrDegenerateGeometry = errors.New("stroke: degenerate geometry")

	ErrLengthMismatch = errors.New("stroke: point count mismatch")
	ErrInvalidOptions = errors.New("stroke: invalid options")
)
