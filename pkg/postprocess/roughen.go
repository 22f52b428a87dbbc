package postprocess

import (
	"github.com/dshills/dungeoneer/pkg/request"
	"github.com/dshills/dungeoneer/pkg/rng"
	"github.com/dshills/dungeoneer/pkg/tilemap"
)

// applyCorridorRoughen widens corridor tiles (walkable tiles outside every
// room's bounds) by carving adjacent wall cells to Floor. Uniform mode
// rolls independently per corridor cell; Organic mode spreads from a
// roughened cell into its neighbors for up to MaxDepth steps, giving
// spatially-correlated bulges instead of isolated pockmarks.
func applyCorridorRoughen(m *tilemap.Map, p *request.CorridorRoughenParams, r *rng.RNG) {
	inRoom := func(x, y int) bool {
		pt := tilemap.Point{X: x, Y: y}
		for _, room := range m.Metadata.Rooms {
			if room.Bounds.Contains(pt) {
				return true
			}
		}
		return false
	}

	var corridorCells []tilemap.Point
	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			if m.At(x, y).Walkable() && !inRoom(x, y) {
				corridorCells = append(corridorCells, tilemap.Point{X: x, Y: y})
			}
		}
	}

	switch p.Mode {
	case request.Organic:
		for _, cell := range corridorCells {
			if !r.PercentRoll(p.Strength) {
				continue
			}
			roughenWalk(m, cell, r, p.MaxDepth, inRoom)
		}
	default:
		for _, cell := range corridorCells {
			if !r.PercentRoll(p.Strength) {
				continue
			}
			carveOneAdjacentWall(m, cell, r, inRoom)
		}
	}
}

// carveOneAdjacentWall opens one random 4-connected Wall neighbor of cell
// to Floor, if one exists and is not inside a room.
func carveOneAdjacentWall(m *tilemap.Map, cell tilemap.Point, r *rng.RNG, inRoom func(x, y int) bool) {
	order := r.IntRange(0, 3)
	for i := 0; i < 4; i++ {
		d := tilemap.Cardinals[(order+i)%4]
		nx, ny := cell.X+d.X, cell.Y+d.Y
		if nx < 1 || nx > m.Width-2 || ny < 1 || ny > m.Height-2 {
			continue
		}
		if m.At(nx, ny) == tilemap.Wall && !inRoom(nx, ny) {
			m.Set(nx, ny, tilemap.Floor)
			return
		}
	}
}

// roughenWalk carves a short, depth-bounded random walk of wall cells
// into Floor starting adjacent to cell, so a single roll produces a
// correlated bulge rather than one isolated tile.
func roughenWalk(m *tilemap.Map, cell tilemap.Point, r *rng.RNG, maxDepth int, inRoom func(x, y int) bool) {
	x, y := cell.X, cell.Y
	for depth := 0; depth < maxDepth; depth++ {
		d := tilemap.Cardinals[r.IntRange(0, 3)]
		nx, ny := x+d.X, y+d.Y
		if nx < 1 || nx > m.Width-2 || ny < 1 || ny > m.Height-2 || inRoom(nx, ny) {
			break
		}
		if m.At(nx, ny) == tilemap.Wall {
			m.Set(nx, ny, tilemap.Floor)
		}
		x, y = nx, ny
		if !r.PercentRoll(60) {
			break
		}
	}
}
