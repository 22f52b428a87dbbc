package postprocess

import (
	"github.com/dshills/dungeoneer/pkg/request"
	"github.com/dshills/dungeoneer/pkg/tilemap"
)

// applyPathSmooth rounds jagged single-cell corners for p.Strength
// passes. Inner smoothing fills concave wall corners (merging floor,
// never disconnecting anything); outer smoothing shaves convex floor
// nubs that have at most one walkable neighbor, so only dead-end
// appendages are removed and the rest of the map's connectivity is
// unaffected.
func applyPathSmooth(m *tilemap.Map, p *request.PathSmoothParams) {
	for pass := 0; pass < p.Strength; pass++ {
		changed := false
		if p.InnerEnabled && fillConcaveCorners(m) {
			changed = true
		}
		if p.OuterEnabled && shaveConvexNubs(m) {
			changed = true
		}
		if !changed {
			break
		}
	}
}

// fillConcaveCorners converts a Wall cell to Floor whenever two of its
// orthogonal neighbors that form an L-shape (one horizontal, one
// vertical) are walkable and the diagonal cell between them is also
// walkable; its other two orthogonal neighbors are not inspected.
func fillConcaveCorners(m *tilemap.Map) bool {
	changed := false
	type corner struct{ dx1, dy1, dx2, dy2, ddx, ddy int }
	corners := []corner{
		{1, 0, 0, 1, 1, 1},
		{1, 0, 0, -1, 1, -1},
		{-1, 0, 0, 1, -1, 1},
		{-1, 0, 0, -1, -1, -1},
	}

	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			if m.At(x, y) != tilemap.Wall {
				continue
			}
			for _, c := range corners {
				a, aok := m.TryAt(x+c.dx1, y+c.dy1)
				b, bok := m.TryAt(x+c.dx2, y+c.dy2)
				d, dok := m.TryAt(x+c.ddx, y+c.ddy)
				if aok && bok && dok && a.Walkable() && b.Walkable() && d.Walkable() {
					m.Set(x, y, tilemap.Floor)
					changed = true
					break
				}
			}
		}
	}
	return changed
}

// shaveConvexNubs converts a Floor cell to Wall whenever it has at most
// one 4-connected walkable neighbor, i.e. it is a dead-end appendage
// rather than part of a through-path.
func shaveConvexNubs(m *tilemap.Map) bool {
	changed := false
	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			if m.At(x, y) != tilemap.Floor {
				continue
			}
			if m.WalkableNeighborCount4(x, y) <= 1 {
				m.Set(x, y, tilemap.Wall)
				changed = true
			}
		}
	}
	return changed
}
