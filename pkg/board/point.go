package board

import "fmt"

// Point is a single cell of a Board. Coordinates are board-relative, with
// (0,0) at the bottom-left. Chain is the empty string until UpdateChains
// has run at least once; Liberties is nil until then too.
type Point struct {
	X, Y  int
	Color Color

	Chain     string
	Liberties []Point
}

// ID returns the chain-id rendering of the point's own coordinate, used as
// the canonical chain identifier for the chain it originates.
func (p Point) ID() string {
	return fmt.Sprintf("%v,%v", p.X, p.Y)
}

func (p Point) Equals(o Point) bool {
	return p.X == o.X && p.Y == o.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%v,%v)=%v", p.X, p.Y, p.Color)
}

// HasLiberty reports whether q is present in p's liberty list.
func (p Point) HasLiberty(q Point) bool {
	for _, l := range p.Liberties {
		if l.Equals(q) {
			return true
		}
	}
	return false
}
