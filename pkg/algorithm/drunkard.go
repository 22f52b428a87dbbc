package algorithm

import (
	"github.com/dshills/dungeoneer/pkg/genstatus"
	"github.com/dshills/dungeoneer/pkg/request"
	"github.com/dshills/dungeoneer/pkg/rng"
	"github.com/dshills/dungeoneer/pkg/tilemap"
)

// generateDrunkard runs a single walker from the map center, carving
// Floor as it moves, until TargetFloorPercent of the interior is
// walkable or MaxSteps is exhausted. WigglePercent controls how often
// the walker turns instead of continuing straight.
func generateDrunkard(m *tilemap.Map, r *rng.RNG, params interface{}, traversal request.TraversalConstraints) ([]tilemap.Room, []tilemap.Corridor, error) {
	p := params.(*request.DrunkardParams)

	interiorTiles := (m.Width - 2) * (m.Height - 2)
	target := interiorTiles * p.TargetFloorPercent / 100
	if target < 1 {
		target = 1
	}

	x, y := m.Width/2, m.Height/2
	dir := tilemap.Cardinals[r.IntRange(0, 3)]
	m.Set(x, y, tilemap.Floor)

	for step := 0; step < p.MaxSteps && floorCount(m) < target; step++ {
		if r.PercentRoll(p.WigglePercent) {
			dir = tilemap.Cardinals[r.IntRange(0, 3)]
		}
		nx, ny := x+dir.X, y+dir.Y
		if nx < 1 || nx > m.Width-2 || ny < 1 || ny > m.Height-2 {
			dir = tilemap.Cardinals[r.IntRange(0, 3)]
			continue
		}
		x, y = nx, ny
		m.Set(x, y, tilemap.Floor)
	}

	if traversal.RequireConnected {
		keepLargestComponent(m)
	}
	if floorCount(m) == 0 {
		return nil, nil, genstatus.Failed("drunkard: walker produced zero floor tiles")
	}
	return nil, nil, nil
}
