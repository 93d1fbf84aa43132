package models

type Point struct {
	X, Y float64
}

// Gesture is a named set of normalized templates. Every sample recorded
// under the same name is matched independently.
type Gesture struct {
	Name      string    `json:"name"`
	Templates [][]Point `json:"templates"`
}
