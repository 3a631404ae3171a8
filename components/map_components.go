package components

import (
	"errors"
	"fmt"
	"math"
)

// TileKind is the content of a single map cell
type TileKind int

// Tile types
const (
	TileFloor TileKind = iota
	TileWall1
	TileWall2
	TileWall3
	TileWall4
)

// IsWall reports whether the tile blocks movement, sight and rays
func (t TileKind) IsWall() bool {
	return t != TileFloor
}

// TextureIndex returns the wall texture sheet index for a wall kind.
// Floor has no texture and returns -1.
func (t TileKind) TextureIndex() int {
	return int(t) - 1
}

// ErrOutOfBounds is returned for tile lookups outside the grid
var ErrOutOfBounds = errors.New("tile out of bounds")

// BoundsError describes an out-of-range tile lookup
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("tile (%d,%d) outside %dx%d map", e.X, e.Y, e.Width, e.Height)
}

// Unwrap lets errors.Is match ErrOutOfBounds
func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// TileMap is the immutable tile grid, stored row-major
type TileMap struct {
	width  int
	height int
	tiles  []TileKind
}

// NewTileMap creates a map from row-major tiles. len(tiles) must equal width*height.
func NewTileMap(width, height int, tiles []TileKind) (*TileMap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid map size %dx%d", width, height)
	}
	if len(tiles) != width*height {
		return nil, fmt.Errorf("map %dx%d needs %d tiles, got %d", width, height, width*height, len(tiles))
	}
	cp := make([]TileKind, len(tiles))
	copy(cp, tiles)
	return &TileMap{width: width, height: height, tiles: cp}, nil
}

// Width returns the number of columns
func (m *TileMap) Width() int { return m.width }

// Height returns the number of rows
func (m *TileMap) Height() int { return m.height }

// InBounds reports whether (x, y) addresses a cell
func (m *TileMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// TileAt returns the tile at integer coordinates
func (m *TileMap) TileAt(x, y int) (TileKind, error) {
	if !m.InBounds(x, y) {
		return TileFloor, &BoundsError{X: x, Y: y, Width: m.width, Height: m.height}
	}
	return m.tiles[x+y*m.width], nil
}

// Tile returns the tile at (x, y) and whether the lookup was in bounds
func (m *TileMap) Tile(x, y int) (TileKind, bool) {
	if !m.InBounds(x, y) {
		return TileFloor, false
	}
	return m.tiles[x+y*m.width], true
}

// IsFloor reports whether (x, y) is walkable. Out of bounds counts as solid.
func (m *TileMap) IsFloor(x, y int) bool {
	t, ok := m.Tile(x, y)
	return ok && t == TileFloor
}

// IsFloorAt is IsFloor for world coordinates
func (m *TileMap) IsFloorAt(x, y float64) bool {
	return m.IsFloor(int(math.Floor(x)), int(math.Floor(y)))
}
