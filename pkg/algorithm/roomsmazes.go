package algorithm

import (
	"github.com/dshills/dungeoneer/pkg/genstatus"
	"github.com/dshills/dungeoneer/pkg/request"
	"github.com/dshills/dungeoneer/pkg/rng"
	"github.com/dshills/dungeoneer/pkg/tilemap"
)

// generateRoomsAndMazes places non-overlapping rooms, fills the
// remaining interior with a recursive-backtracker maze on the odd
// sub-lattice, connects every room to the nearest maze passage, and
// finally prunes dead ends for DeadEndPruneSteps passes (-1: until
// stable, 0: no pruning).
func generateRoomsAndMazes(m *tilemap.Map, r *rng.RNG, params interface{}, traversal request.TraversalConstraints) ([]tilemap.Room, []tilemap.Corridor, error) {
	p := params.(*request.RoomsAndMazesParams)

	rooms := placeNonOverlappingRooms(m, r, p.RoomMinSize, p.RoomMaxSize, p.MaxRoomPlacementAttempts)
	if len(rooms) == 0 {
		return nil, nil, genstatus.Failed("rooms-and-mazes: could not place any room within %d attempts", p.MaxRoomPlacementAttempts)
	}
	for _, b := range rooms {
		carveRect(m, b)
	}

	carveMazeLattice(m, r, p.MazeWigglePercent, rooms)

	corridors := connectRoomsToMaze(m, rooms, r, p.MinRoomConnections, p.MaxRoomConnections)

	pruneDeadEnds(m, rooms, p.DeadEndPruneSteps)

	if p.EnsureFullConnectivity && traversal.RequireConnected && len(interiorComponents(m)) > 1 {
		return nil, nil, genstatus.Failed("rooms-and-mazes: layout left disconnected components")
	}

	out := make([]tilemap.Room, len(rooms))
	for i, b := range rooms {
		role := tilemap.RoleNone
		if i == 0 {
			role = tilemap.RoleEntrance
		} else if i == len(rooms)-1 {
			role = tilemap.RoleExit
		}
		out[i] = tilemap.Room{ID: i, Bounds: b, TypeID: tilemap.UnassignedType, Role: role}
	}
	return out, corridors, nil
}

// placeNonOverlappingRooms throws random rects at the interior,
// accepting ones that (after a 1-tile margin) don't overlap any
// previously placed room.
func placeNonOverlappingRooms(m *tilemap.Map, r *rng.RNG, minSize, maxSize, maxAttempts int) []tilemap.Rect {
	var rooms []tilemap.Rect
	for attempt := 0; attempt < maxAttempts; attempt++ {
		w := r.IntRange(minSize, maxSize)
		h := r.IntRange(minSize, maxSize)
		if w >= m.Width-2 || h >= m.Height-2 {
			continue
		}
		x := 1 + r.IntRange(0, m.Width-2-w)
		y := 1 + r.IntRange(0, m.Height-2-h)
		candidate := tilemap.Rect{X: x, Y: y, Width: w, Height: h}
		margin := tilemap.Rect{X: x - 1, Y: y - 1, Width: w + 2, Height: h + 2}

		overlaps := false
		for _, other := range rooms {
			if margin.Overlaps(other) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			rooms = append(rooms, candidate)
		}
	}
	return rooms
}

// carveMazeLattice runs a recursive-backtracker on the odd-coordinate
// sub-lattice of cells not already occupied by a room (with 1-tile
// margin), filling every reachable lattice cell with Floor corridor.
func carveMazeLattice(m *tilemap.Map, r *rng.RNG, wigglePercent int, rooms []tilemap.Rect) {
	blocked := make([]bool, m.Width*m.Height)
	for _, b := range rooms {
		for y := b.Y - 1; y <= b.Y+b.Height; y++ {
			for x := b.X - 1; x <= b.X+b.Width; x++ {
				if m.InBounds(x, y) {
					blocked[y*m.Width+x] = true
				}
			}
		}
	}

	type lcell struct{ x, y int }
	var starts []lcell
	for y := 1; y < m.Height-1; y += 2 {
		for x := 1; x < m.Width-1; x += 2 {
			if !blocked[y*m.Width+x] {
				starts = append(starts, lcell{x, y})
			}
		}
	}

	visited := make(map[lcell]bool, len(starts))
	for _, start := range starts {
		if visited[start] {
			continue
		}
		stack := []lcell{start}
		visited[start] = true
		m.Set(start.x, start.y, tilemap.Floor)

		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			var candidates []lcell
			for _, d := range tilemap.Cardinals {
				nx, ny := cur.x+2*d.X, cur.y+2*d.Y
				if nx < 1 || nx > m.Width-2 || ny < 1 || ny > m.Height-2 {
					continue
				}
				if blocked[ny*m.Width+nx] || visited[lcell{nx, ny}] {
					continue
				}
				candidates = append(candidates, lcell{nx, ny})
			}
			if len(candidates) == 0 {
				stack = stack[:len(stack)-1]
				continue
			}
			idx := 0
			if len(candidates) > 1 {
				if r.PercentRoll(wigglePercent) {
					idx = r.IntRange(0, len(candidates)-1)
				}
			}
			next := candidates[idx]
			wallX, wallY := (cur.x+next.x)/2, (cur.y+next.y)/2
			m.Set(wallX, wallY, tilemap.Floor)
			m.Set(next.x, next.y, tilemap.Floor)
			visited[next] = true
			stack = append(stack, next)
		}
	}
}

// connectRoomsToMaze carves a short connector from a cell on each room's
// border, through the room's margin, to the nearest carved maze passage
// (or neighboring room) within three cells, between MinRoomConnections
// and MaxRoomConnections times per room. A room none of whose border
// cells reaches a passage that way stays unconnected.
func connectRoomsToMaze(m *tilemap.Map, rooms []tilemap.Rect, r *rng.RNG, minConn, maxConn int) []tilemap.Corridor {
	var corridors []tilemap.Corridor
	for i, b := range rooms {
		perimeter := perimeterNonCornerRect(b)
		r.Shuffle(len(perimeter), func(a, c int) { perimeter[a], perimeter[c] = perimeter[c], perimeter[a] })

		target := minConn
		if maxConn > minConn {
			target = r.IntRange(minConn, maxConn)
		}
		made := 0
		for _, cell := range perimeter {
			if made >= target {
				break
			}
			for _, d := range tilemap.Cardinals {
				nx, ny := cell.X+d.X, cell.Y+d.Y
				if b.Contains(tilemap.Point{X: nx, Y: ny}) {
					continue
				}
				// The maze never carves a room's 1-tile margin, so the
				// nearest passage in direction d lies two or three steps
				// out (passages sit on every other row and column).
				reach := 0
				for step := 1; step <= 3 && reach == 0; step++ {
					if t, ok := m.TryAt(cell.X+step*d.X, cell.Y+step*d.Y); ok && t.Walkable() {
						reach = step
					}
				}
				if reach > 0 {
					for step := 1; step < reach; step++ {
						m.Set(cell.X+step*d.X, cell.Y+step*d.Y, tilemap.Floor)
					}
					made++
					corridors = append(corridors, tilemap.Corridor{FromRoomID: i, ToRoomID: i, Width: 1, Length: reach - 1})
					break
				}
			}
		}
	}
	return corridors
}

func perimeterNonCornerRect(b tilemap.Rect) []tilemap.Point {
	var cells []tilemap.Point
	left, right := b.X, b.X+b.Width-1
	top, bottom := b.Y, b.Y+b.Height-1
	for x := left + 1; x <= right-1; x++ {
		cells = append(cells, tilemap.Point{X: x, Y: top}, tilemap.Point{X: x, Y: bottom})
	}
	for y := top + 1; y <= bottom-1; y++ {
		cells = append(cells, tilemap.Point{X: left, Y: y}, tilemap.Point{X: right, Y: y})
	}
	return cells
}

// pruneDeadEnds iteratively fills in maze passage cells with at most one
// walkable neighbor (outside any room) back to Wall. steps < 0 means
// repeat until no dead end remains; steps == 0 is a no-op.
func pruneDeadEnds(m *tilemap.Map, rooms []tilemap.Rect, steps int) {
	if steps == 0 {
		return
	}
	inRoom := func(x, y int) bool {
		p := tilemap.Point{X: x, Y: y}
		for _, b := range rooms {
			if b.Contains(p) {
				return true
			}
		}
		return false
	}

	pass := func() bool {
		changed := false
		for y := 1; y < m.Height-1; y++ {
			for x := 1; x < m.Width-1; x++ {
				if m.At(x, y) != tilemap.Floor || inRoom(x, y) {
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

	if steps < 0 {
		for pass() {
		}
		return
	}
	for i := 0; i < steps; i++ {
		if !pass() {
			break
		}
	}
}
