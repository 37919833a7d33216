package segment

import "image"

// Region is one 4-connected group of foreground pixels.
// Pixels holds every member coordinate exactly once, in BFS discovery
// order. Bounds is the tightest rectangle containing all members, using
// the usual image convention of an exclusive max.
type Region struct {
	Pixels []image.Point
	Bounds image.Rectangle
}

// Size returns the number of member pixels.
func (r Region) Size() int { return len(r.Pixels) }
