package core

// Mask is a set of board cells, sized to match a board.
type Mask struct {
	W, H int
	bits []bool
}

// NewMask creates an empty mask for a board of the given size.
func NewMask(w, h int) *Mask {
	return &Mask{
		W:    w,
		H:    h,
		bits: make([]bool, w*h),
	}
}

func (m *Mask) inBounds(c Coord) bool {
	return c.X >= 0 && c.X < m.W && c.Y >= 0 && c.Y < m.H
}

// Mark adds a cell to the mask. Out-of-bounds marks are ignored.
func (m *Mask) Mark(c Coord) {
	if !m.inBounds(c) {
		return
	}
	m.bits[c.Y*m.W+c.X] = true
}

// Unmark removes a cell from the mask.
func (m *Mask) Unmark(c Coord) {
	if !m.inBounds(c) {
		return
	}
	m.bits[c.Y*m.W+c.X] = false
}

// Has reports whether the cell is in the mask. Out-of-bounds cells are not.
func (m *Mask) Has(c Coord) bool {
	if !m.inBounds(c) {
		return false
	}
	return m.bits[c.Y*m.W+c.X]
}

// Any reports whether the mask contains at least one cell.
func (m *Mask) Any() bool {
	for _, b := range m.bits {
		if b {
			return true
		}
	}
	return false
}

// Count returns the number of cells in the mask.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Cells returns the marked cells in row-major order.
func (m *Mask) Cells() []Coord {
	var out []Coord
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if m.bits[y*m.W+x] {
				out = append(out, C(x, y))
			}
		}
	}
	return out
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	nm := NewMask(m.W, m.H)
	copy(nm.bits, m.bits)
	return nm
}
