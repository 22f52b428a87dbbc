package algorithm

import (
	"sort"

	"github.com/dshills/dungeoneer/pkg/genstatus"
	"github.com/dshills/dungeoneer/pkg/request"
	"github.com/dshills/dungeoneer/pkg/rng"
	"github.com/dshills/dungeoneer/pkg/tilemap"
)

// generateRoomGraph scatters RoomCount non-overlapping rooms, builds a
// k-nearest-neighbor candidate graph, keeps its minimum spanning tree
// (guaranteeing connectivity), then adds extra edges probabilistically
// to introduce loops.
func generateRoomGraph(m *tilemap.Map, r *rng.RNG, params interface{}, traversal request.TraversalConstraints) ([]tilemap.Room, []tilemap.Corridor, error) {
	p := params.(*request.RoomGraphParams)

	rects := placeRoomGraphRooms(m, r, p)
	if len(rects) < 2 {
		return nil, nil, genstatus.Failed("room-graph: placed only %d of %d requested rooms within %d attempts", len(rects), p.RoomCount, p.MaxRoomPlacementAttempts)
	}
	for _, b := range rects {
		carveRect(m, b)
	}

	type candidate struct{ a, b int }
	neighborLists := make([][]int, len(rects))
	for i, bi := range rects {
		type distPair struct {
			id   int
			dist int
		}
		var dists []distPair
		ci := bi.Center()
		for j, bj := range rects {
			if i == j {
				continue
			}
			cj := bj.Center()
			dists = append(dists, distPair{j, sqDist(ci, cj)})
		}
		sort.Slice(dists, func(a, b int) bool { return dists[a].dist < dists[b].dist })
		k := p.NeighborCandidates
		if k > len(dists) {
			k = len(dists)
		}
		for _, d := range dists[:k] {
			neighborLists[i] = append(neighborLists[i], d.id)
		}
	}

	var candidates []candidate
	seen := make(map[[2]int]bool)
	for i, list := range neighborLists {
		for _, j := range list {
			key := [2]int{i, j}
			if i > j {
				key = [2]int{j, i}
			}
			if !seen[key] {
				seen[key] = true
				candidates = append(candidates, candidate{key[0], key[1]})
			}
		}
	}
	sort.Slice(candidates, func(a, b int) bool {
		da := sqDist(rects[candidates[a].a].Center(), rects[candidates[a].b].Center())
		db := sqDist(rects[candidates[b].a].Center(), rects[candidates[b].b].Center())
		return da < db
	})

	parent := make([]int, len(rects))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}

	var corridors []tilemap.Corridor
	used := make(map[[2]int]bool)
	connectEdge := func(a, b int) {
		key := [2]int{a, b}
		if a > b {
			key = [2]int{b, a}
		}
		if used[key] {
			return
		}
		used[key] = true
		ca, cb := rects[a].Center(), rects[b].Center()
		length := abs(cb.X-ca.X) + abs(cb.Y-ca.Y)
		if r.Bool() {
			carveLine(m, ca.X, ca.Y, cb.X, ca.Y)
			carveLine(m, cb.X, ca.Y, cb.X, cb.Y)
		} else {
			carveLine(m, ca.X, ca.Y, ca.X, cb.Y)
			carveLine(m, ca.X, cb.Y, cb.X, cb.Y)
		}
		corridors = append(corridors, tilemap.Corridor{FromRoomID: a, ToRoomID: b, Width: 1, Length: length})
	}

	for _, c := range candidates {
		ra, rb := find(c.a), find(c.b)
		if ra != rb {
			parent[ra] = rb
			connectEdge(c.a, c.b)
		}
	}

	for _, c := range candidates {
		if used[[2]int{min2(c.a, c.b), max2(c.a, c.b)}] {
			continue
		}
		if r.PercentRoll(p.ExtraConnectionChancePercent) {
			connectEdge(c.a, c.b)
		}
	}

	if traversal.RequireConnected && len(interiorComponents(m)) > 1 {
		return nil, nil, genstatus.Failed("room-graph: MST construction left disconnected components")
	}

	rooms := make([]tilemap.Room, len(rects))
	for i, b := range rects {
		role := tilemap.RoleNone
		if i == 0 {
			role = tilemap.RoleEntrance
		} else if i == len(rects)-1 {
			role = tilemap.RoleExit
		}
		rooms[i] = tilemap.Room{ID: i, Bounds: b, TypeID: tilemap.UnassignedType, Role: role}
	}
	return rooms, corridors, nil
}

func placeRoomGraphRooms(m *tilemap.Map, r *rng.RNG, p *request.RoomGraphParams) []tilemap.Rect {
	var rects []tilemap.Rect
	for attempt := 0; attempt < p.MaxRoomPlacementAttempts && len(rects) < p.RoomCount; attempt++ {
		w := r.IntRange(p.RoomMinSize, p.RoomMaxSize)
		h := r.IntRange(p.RoomMinSize, p.RoomMaxSize)
		if w >= m.Width-2 || h >= m.Height-2 {
			continue
		}
		x := 1 + r.IntRange(0, m.Width-2-w)
		y := 1 + r.IntRange(0, m.Height-2-h)
		candidate := tilemap.Rect{X: x, Y: y, Width: w, Height: h}
		margin := tilemap.Rect{X: x - 1, Y: y - 1, Width: w + 2, Height: h + 2}
		overlaps := false
		for _, other := range rects {
			if margin.Overlaps(other) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			rects = append(rects, candidate)
		}
	}
	return rects
}

func sqDist(a, b tilemap.Point) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

func min2(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max2(a, b int) int {
	if a > b {
		return a
	}
	return b
}
