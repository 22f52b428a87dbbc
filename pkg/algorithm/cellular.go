package algorithm

import (
	"github.com/dshills/dungeoneer/pkg/genstatus"
	"github.com/dshills/dungeoneer/pkg/request"
	"github.com/dshills/dungeoneer/pkg/rng"
	"github.com/dshills/dungeoneer/pkg/tilemap"
)

// generateCellularAutomata seeds the interior with InitialWallPercent
// noise, then repeatedly applies the standard 4-5 rule (a cell becomes
// wall if it has >= WallThreshold wall neighbors, floor otherwise) for
// SimulationSteps passes.
func generateCellularAutomata(m *tilemap.Map, r *rng.RNG, params interface{}, traversal request.TraversalConstraints) ([]tilemap.Room, []tilemap.Corridor, error) {
	p := params.(*request.CellularAutomataParams)

	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			if r.PercentRoll(p.InitialWallPercent) {
				m.Set(x, y, tilemap.Wall)
			} else {
				m.Set(x, y, tilemap.Floor)
			}
		}
	}

	for step := 0; step < p.SimulationSteps; step++ {
		next := make([]tilemap.Tile, len(m.Tiles))
		copy(next, m.Tiles)
		for y := 1; y < m.Height-1; y++ {
			for x := 1; x < m.Width-1; x++ {
				walls := wallNeighborCount8(m, x, y)
				if walls >= p.WallThreshold {
					next[y*m.Width+x] = tilemap.Wall
				} else {
					next[y*m.Width+x] = tilemap.Floor
				}
			}
		}
		m.Tiles = next
	}

	if p.EnsureConnected && traversal.RequireConnected {
		keepLargestComponent(m)
	}
	if floorCount(m) == 0 {
		return nil, nil, genstatus.Failed("cellular automata: simulation collapsed to zero floor tiles")
	}
	return nil, nil, nil
}

// wallNeighborCount8 counts non-walkable 8-connected neighbors of (x,y),
// treating out-of-bounds cells as walls.
func wallNeighborCount8(m *tilemap.Map, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			t, ok := m.TryAt(x+dx, y+dy)
			if !ok || !t.Walkable() {
				n++
			}
		}
	}
	return n
}
