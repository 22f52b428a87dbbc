package metadata

import (
	"sort"

	"github.com/dshills/dungeoneer/pkg/tilemap"
)

// Compute runs the full derived-metadata pass over m. It expects
// m.Metadata to already hold Rooms, Corridors, EdgeOpenings and
// GenerationClass from the layout algorithm and edge-opening planner; it
// fills in every remaining field.
func Compute(m *tilemap.Map) {
	md := m.Metadata

	walkable, wall := m.RecountWalkable()
	md.WalkableTileCount = walkable
	md.WallTileCount = wall

	components, componentOf := computeComponents(m)
	md.ConnectedComponentCount = len(components)
	md.LargestComponentSize = 0
	for _, size := range components {
		if size > md.LargestComponentSize {
			md.LargestComponentSize = size
		}
	}
	md.ConnectedFloor = md.ConnectedComponentCount <= 1

	for i := range md.EdgeOpenings {
		o := &md.EdgeOpenings[i]
		o.ComponentID = componentOf[o.InwardTile.Y*m.Width+o.InwardTile.X]
	}

	md.RoomEntrances = computeDoors(m)

	md.Graph = buildRoomGraph(md.Rooms, md.Corridors)

	md.LeafRoomCount = 0
	md.EntranceRoomCount, md.ExitRoomCount = 0, 0
	md.BossRoomCount, md.TreasureRoomCount, md.ShopRoomCount = 0, 0, 0
	entranceRoomID, exitRoomID := -1, -1
	for i := range md.Rooms {
		room := &md.Rooms[i]
		if md.Graph.Degree(room.ID) == 1 {
			md.LeafRoomCount++
		}
		switch room.Role {
		case tilemap.RoleEntrance:
			md.EntranceRoomCount++
			if entranceRoomID == -1 {
				entranceRoomID = room.ID
			}
		case tilemap.RoleExit:
			md.ExitRoomCount++
			if exitRoomID == -1 {
				exitRoomID = room.ID
			}
		case tilemap.RoleBoss:
			md.BossRoomCount++
		case tilemap.RoleTreasure:
			md.TreasureRoomCount++
		case tilemap.RoleShop:
			md.ShopRoomCount++
		}
	}

	md.EntranceExitDistance = graphDistance(&md.Graph, entranceRoomID, exitRoomID)
}

// Connectivity reports the number of connected walkable components in m
// and whether they number at most one. Exposed for callers (such as the
// post-process pipeline) that need a connectivity check without running
// the full derived-metadata pass.
func Connectivity(m *tilemap.Map) (components int, connected bool) {
	sizes, _ := computeComponents(m)
	return len(sizes), len(sizes) <= 1
}

// computeComponents returns, for each connected walkable component found
// via iterative 4-connected BFS, its size, plus a flat componentOf array
// (index = y*width+x) giving -1 for non-walkable cells.
func computeComponents(m *tilemap.Map) (sizes []int, componentOf []int) {
	componentOf = make([]int, m.Width*m.Height)
	for i := range componentOf {
		componentOf[i] = -1
	}

	queue := make([]int, 0, m.Width*m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx := y*m.Width + x
			if !m.Tiles[idx].Walkable() || componentOf[idx] != -1 {
				continue
			}
			id := len(sizes)
			size := 0
			queue = queue[:0]
			queue = append(queue, idx)
			componentOf[idx] = id
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				size++
				cx, cy := cur%m.Width, cur/m.Width
				for _, d := range tilemap.Cardinals {
					nx, ny := cx+d.X, cy+d.Y
					if !m.InBounds(nx, ny) {
						continue
					}
					nIdx := ny*m.Width + nx
					if m.Tiles[nIdx].Walkable() && componentOf[nIdx] == -1 {
						componentOf[nIdx] = id
						queue = append(queue, nIdx)
					}
				}
			}
			sizes = append(sizes, size)
		}
	}
	return sizes, componentOf
}

// computeDoors promotes room-border Floor cells to Door wherever a
// corridor touches them and returns the corresponding room-entrance
// records. Corner cells of a room's bounds are never door-eligible: a
// corner cell has two interior-side neighbors, which would break the
// "exactly one inward neighbor" door invariant.
func computeDoors(m *tilemap.Map) []tilemap.RoomEntrance {
	var entrances []tilemap.RoomEntrance

	for ri := range m.Metadata.Rooms {
		room := &m.Metadata.Rooms[ri]
		b := room.Bounds
		for _, cell := range perimeterNonCorner(b) {
			if m.At(cell.X, cell.Y) != tilemap.Floor {
				continue
			}
			var outward tilemap.Point
			outsideCount := 0
			for _, d := range tilemap.Cardinals {
				nx, ny := cell.X+d.X, cell.Y+d.Y
				if b.Contains(tilemap.Point{X: nx, Y: ny}) {
					continue // interior side, not a candidate corridor neighbor
				}
				if t, ok := m.TryAt(nx, ny); ok && t.Walkable() {
					outsideCount++
					outward = d
				}
			}
			if outsideCount != 1 {
				continue
			}
			m.Set(cell.X, cell.Y, tilemap.Door)
			entrances = append(entrances, tilemap.RoomEntrance{
				RoomID:       room.ID,
				RoomTile:     cell,
				CorridorTile: cell.Add(outward),
				Normal:       outward,
			})
		}
	}
	return entrances
}

// perimeterNonCorner returns the border cells of b's interior rect,
// excluding the four corners.
func perimeterNonCorner(b tilemap.Rect) []tilemap.Point {
	var cells []tilemap.Point
	if b.Width <= 0 || b.Height <= 0 {
		return cells
	}
	left, right := b.X, b.X+b.Width-1
	top, bottom := b.Y, b.Y+b.Height-1

	for x := left + 1; x <= right-1; x++ {
		cells = append(cells, tilemap.Point{X: x, Y: top})
		if b.Height > 1 {
			cells = append(cells, tilemap.Point{X: x, Y: bottom})
		}
	}
	for y := top + 1; y <= bottom-1; y++ {
		cells = append(cells, tilemap.Point{X: left, Y: y})
		if b.Width > 1 {
			cells = append(cells, tilemap.Point{X: right, Y: y})
		}
	}
	return cells
}

// buildRoomGraph flattens corridor records into adjacency spans: each
// corridor (a,b) contributes a->b and b->a neighbor entries, grouped per
// room and sorted by neighbor id ascending.
func buildRoomGraph(rooms []tilemap.Room, corridors []tilemap.Corridor) tilemap.RoomGraph {
	if len(rooms) == 0 {
		return tilemap.RoomGraph{}
	}

	type edge struct {
		neighborID    int
		corridorIndex int
	}
	perRoom := make([][]edge, len(rooms))

	for ci, c := range corridors {
		perRoom[c.FromRoomID] = append(perRoom[c.FromRoomID], edge{neighborID: c.ToRoomID, corridorIndex: ci})
		perRoom[c.ToRoomID] = append(perRoom[c.ToRoomID], edge{neighborID: c.FromRoomID, corridorIndex: ci})
	}

	graph := tilemap.RoomGraph{
		Adjacency: make([]tilemap.AdjacencySpan, len(rooms)),
	}
	for roomID, edges := range perRoom {
		sort.Slice(edges, func(i, j int) bool { return edges[i].neighborID < edges[j].neighborID })
		start := len(graph.Neighbors)
		for _, e := range edges {
			graph.Neighbors = append(graph.Neighbors, tilemap.NeighborEntry{RoomID: e.neighborID, CorridorIndex: e.corridorIndex})
		}
		graph.Adjacency[roomID] = tilemap.AdjacencySpan{Start: start, Count: len(edges)}
	}
	return graph
}

// graphDistance returns the BFS hop count between from and to over the
// room graph, or -1 if either id is missing or they are not connected.
func graphDistance(graph *tilemap.RoomGraph, from, to int) int {
	if from < 0 || to < 0 {
		return -1
	}
	if from == to {
		return 0
	}
	visited := make(map[int]bool)
	visited[from] = true
	queue := []struct {
		id, dist int
	}{{from, 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range graph.NeighborsOf(cur.id) {
			if n.RoomID == to {
				return cur.dist + 1
			}
			if !visited[n.RoomID] {
				visited[n.RoomID] = true
				queue = append(queue, struct{ id, dist int }{n.RoomID, cur.dist + 1})
			}
		}
	}
	return -1
}
