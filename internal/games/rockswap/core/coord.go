package core

import "fmt"

// Coord is a board cell position. X is the column, Y is the row, with Y
// growing downward.
type Coord struct {
	X, Y int
}

// C is a shorthand constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns the string representation of a coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the coordinate offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Equal reports whether two coordinates are the same cell.
func (c Coord) Equal(o Coord) bool {
	return c.X == o.X && c.Y == o.Y
}

// Manhattan returns the L1 distance between two coordinates.
func (c Coord) Manhattan(o Coord) int {
	dx := c.X - o.X
	if dx < 0 {
		dx = -dx
	}
	dy := c.Y - o.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
