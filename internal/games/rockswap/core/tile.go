package core

// Kind tags the content of a board cell.
type Kind uint8

const (
	KindEmpty     Kind = iota
	KindNormal         // ordinary colored tile
	KindAreaClear      // minted from a 4-run; clears its 3x3 neighborhood when consumed
	KindWildcard       // minted from a 5+ run; joins any run, wipes its partner color when consumed
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindNormal:
		return "normal"
	case KindAreaClear:
		return "areaclear"
	case KindWildcard:
		return "wildcard"
	default:
		return "unknown"
	}
}

// Tile is the content of one board cell. Empty tiles carry no meaningful
// color. A Wildcard's color is kept for rendering only; matching never reads
// it.
type Tile struct {
	Kind  Kind
	Color Color
}

// EmptyTile returns an empty cell value.
func EmptyTile() Tile {
	return Tile{Kind: KindEmpty}
}

// NormalTile returns an ordinary tile of the given color.
func NormalTile(c Color) Tile {
	return Tile{Kind: KindNormal, Color: c}
}

// AreaClearTile returns an area-clear special carrying the given base color.
func AreaClearTile(c Color) Tile {
	return Tile{Kind: KindAreaClear, Color: c}
}

// WildcardTile returns a wildcard special. The color is render-only.
func WildcardTile(c Color) Tile {
	return Tile{Kind: KindWildcard, Color: c}
}

// IsEmpty reports whether the cell holds nothing.
func (t Tile) IsEmpty() bool {
	return t.Kind == KindEmpty
}

// IsSpecial reports whether the tile is one of the two special kinds.
func (t Tile) IsSpecial() bool {
	return t.Kind == KindAreaClear || t.Kind == KindWildcard
}

// IsWildcard reports whether the tile is a wildcard.
func (t Tile) IsWildcard() bool {
	return t.Kind == KindWildcard
}

// HasMatchColor reports whether the tile's color participates in matching.
// Normal and AreaClear tiles match by color; Empty has none and a Wildcard's
// stored color is never a match anchor.
func (t Tile) HasMatchColor() bool {
	return t.Kind == KindNormal || t.Kind == KindAreaClear
}
