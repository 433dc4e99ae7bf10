package core

// Board is a rectangular grid of tiles stored in row-major order.
type Board struct {
	W, H  int
	Cells []Tile
}

// NewBoard creates an empty board of the given size.
func NewBoard(w, h int) *Board {
	return &Board{
		W:     w,
		H:     h,
		Cells: make([]Tile, w*h),
	}
}

func (b *Board) index(c Coord) int {
	return c.Y*b.W + c.X
}

// InBounds reports whether the coordinate is on the board.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.W && c.Y >= 0 && c.Y < b.H
}

// At returns the tile at the coordinate, or an empty tile if out of bounds.
func (b *Board) At(c Coord) Tile {
	if !b.InBounds(c) {
		return EmptyTile()
	}
	return b.Cells[b.index(c)]
}

// Set places a tile at the coordinate. Out-of-bounds writes are ignored.
func (b *Board) Set(c Coord, t Tile) {
	if !b.InBounds(c) {
		return
	}
	b.Cells[b.index(c)] = t
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	nb := NewBoard(b.W, b.H)
	copy(nb.Cells, b.Cells)
	return nb
}

// Equal reports whether two boards have identical size and contents.
func (b *Board) Equal(o *Board) bool {
	if b.W != o.W || b.H != o.H {
		return false
	}
	for i := range b.Cells {
		if b.Cells[i] != o.Cells[i] {
			return false
		}
	}
	return true
}

// NonEmptyCount returns the number of occupied cells.
func (b *Board) NonEmptyCount() int {
	n := 0
	for _, t := range b.Cells {
		if !t.IsEmpty() {
			n++
		}
	}
	return n
}
