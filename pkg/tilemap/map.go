package tilemap

import "fmt"

// Map is the rectangular tile grid plus its full derived metadata. A Map
// is constructed empty via New, filled by a layout algorithm, mutated by
// the post-process pipeline, finalized by the derived-metadata pass, and
// thereafter read-only.
type Map struct {
	Width    int
	Height   int
	Tiles    []Tile
	Metadata *Metadata
}

// New allocates a Width*Height grid filled with Wall, as every layout
// algorithm's contract requires the grid to start from.
func New(width, height int) *Map {
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = Wall
	}
	return &Map{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether (x,y) lies within the grid.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the tile at (x,y). It does not check bounds, matching the
// teacher's style of trusting internally-validated coordinates rather than
// returning a sentinel: an out-of-range (x,y) either panics or, when its
// flat index y*Width+x still falls inside the buffer, reads another cell.
func (m *Map) At(x, y int) Tile {
	return m.Tiles[y*m.Width+x]
}

// Set writes the tile at (x,y).
func (m *Map) Set(x, y int, t Tile) {
	m.Tiles[y*m.Width+x] = t
}

// TryAt returns the tile at (x,y) and true, or Void and false if out of
// bounds. Used by algorithms scanning neighborhoods near the border.
func (m *Map) TryAt(x, y int) (Tile, bool) {
	if !m.InBounds(x, y) {
		return Void, false
	}
	return m.At(x, y), true
}

// WalkableNeighborCount4 counts the 4-connected walkable neighbors of
// (x,y).
func (m *Map) WalkableNeighborCount4(x, y int) int {
	n := 0
	for _, d := range Cardinals {
		if t, ok := m.TryAt(x+d.X, y+d.Y); ok && t.Walkable() {
			n++
		}
	}
	return n
}

// RecountWalkable recomputes WalkableTileCount/WallTileCount on Metadata
// by scanning the tile buffer. Used both by the derived-metadata pass and
// by post-process steps to populate before/after diagnostics.
func (m *Map) RecountWalkable() (walkable, wall int) {
	for _, t := range m.Tiles {
		if t.Walkable() {
			walkable++
		} else if t == Wall {
			wall++
		}
	}
	return walkable, wall
}

// String renders the map as an ASCII grid using each tile's glyph, one row
// per line.
func (m *Map) String() string {
	buf := make([]byte, 0, (m.Width+1)*m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			buf = append(buf, byte(m.At(x, y).Glyph()))
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

// Validate performs a handful of cheap structural sanity checks (bounds,
// buffer length) independent of the richer invariant checks performed by
// the derived-metadata pass.
func (m *Map) Validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("tilemap: invalid dimensions %dx%d", m.Width, m.Height)
	}
	if len(m.Tiles) != m.Width*m.Height {
		return fmt.Errorf("tilemap: tile buffer length %d does not match %dx%d", len(m.Tiles), m.Width, m.Height)
	}
	return nil
}
