package algorithm

import (
	"github.com/dshills/dungeoneer/pkg/genstatus"
	"github.com/dshills/dungeoneer/pkg/request"
	"github.com/dshills/dungeoneer/pkg/rng"
	"github.com/dshills/dungeoneer/pkg/tilemap"
)

type wormAgent struct {
	x, y int
	dir  tilemap.Point
}

// generateWormCaves runs WormCount independent agents, each walking a
// random path and carving a BrushRadius disc at every step, occasionally
// branching a new agent. All agents share the same target floor budget.
func generateWormCaves(m *tilemap.Map, r *rng.RNG, params interface{}, traversal request.TraversalConstraints) ([]tilemap.Room, []tilemap.Corridor, error) {
	p := params.(*request.WormCavesParams)

	interiorTiles := (m.Width - 2) * (m.Height - 2)
	target := interiorTiles * p.TargetFloorPercent / 100
	if target < 1 {
		target = 1
	}

	agents := make([]wormAgent, 0, p.WormCount)
	for i := 0; i < p.WormCount; i++ {
		agents = append(agents, wormAgent{
			x:   m.Width / 2,
			y:   m.Height / 2,
			dir: tilemap.Cardinals[r.IntRange(0, 3)],
		})
	}

	steps := 0
	for floorCount(m) < target && steps < p.MaxStepsPerWorm*p.WormCount && len(agents) > 0 {
		next := make([]wormAgent, 0, len(agents)+4)
		for _, a := range agents {
			if floorCount(m) >= target {
				next = append(next, a)
				continue
			}
			carveBrush(m, a.x, a.y, p.BrushRadius)

			if r.PercentRoll(20) {
				a.dir = tilemap.Cardinals[r.IntRange(0, 3)]
			}
			nx, ny := a.x+a.dir.X, a.y+a.dir.Y
			if nx < 1+p.BrushRadius || nx > m.Width-2-p.BrushRadius || ny < 1+p.BrushRadius || ny > m.Height-2-p.BrushRadius {
				a.dir = tilemap.Cardinals[r.IntRange(0, 3)]
			} else {
				a.x, a.y = nx, ny
			}

			if r.PercentRoll(p.BranchChancePercent) && len(agents)+len(next) < p.WormCount*4 {
				next = append(next, wormAgent{x: a.x, y: a.y, dir: tilemap.Cardinals[r.IntRange(0, 3)]})
			}
			next = append(next, a)
			steps++
		}
		agents = next
	}

	if p.EnsureConnected && traversal.RequireConnected {
		keepLargestComponent(m)
	}
	if floorCount(m) == 0 {
		return nil, nil, genstatus.Failed("worm caves: agents produced zero floor tiles")
	}
	return nil, nil, nil
}

// carveBrush writes Floor to every interior cell within radius of (cx,cy)
// (Chebyshev distance, i.e. a square brush).
func carveBrush(m *tilemap.Map, cx, cy, radius int) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			setInterior(m, cx+dx, cy+dy)
		}
	}
}
