package core

// Point is a grid cell coordinate, X in [0, Width) and Y in [0, Height)
type Point struct {
	X, Y int
}

// Delta is a signed per-axis displacement
type Delta struct {
	DX, DY int
}

// Neg returns the inverse displacement
func (d Delta) Neg() Delta {
	return Delta{DX: -d.DX, DY: -d.DY}
}

// IsZero reports whether the delta moves nothing
func (d Delta) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// Grid holds the dimensions of a toroidal board
type Grid struct {
	Width, Height int
}

// Cells returns the number of cells on the board
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Contains reports whether p lies on the board
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap applies d to p, crossing an edge onto the opposite one
// Axes wrap independently: below 0 lands on the last index, at or past the dimension lands on 0
func (g Grid) Wrap(p Point, d Delta) Point {
	return Point{
		X: wrapAxis(p.X+d.DX, g.Width),
		Y: wrapAxis(p.Y+d.DY, g.Height),
	}
}

func wrapAxis(v, dim int) int {
	if v < 0 {
		return dim - 1
	}
	if v >= dim {
		return 0
	}
	return v
}
