package algorithm

import "github.com/dshills/dungeoneer/pkg/tilemap"

// carveRect writes Floor into the interior of m at b, clipped to the
// map's inner bounds (the outermost ring is always left Wall so the
// edge-opening planner has a clean border to carve doorways into).
func carveRect(m *tilemap.Map, b tilemap.Rect) {
	minX, minY := 1, 1
	maxX, maxY := m.Width-2, m.Height-2
	for y := b.Y; y < b.Y+b.Height; y++ {
		if y < minY || y > maxY {
			continue
		}
		for x := b.X; x < b.X+b.Width; x++ {
			if x < minX || x > maxX {
				continue
			}
			m.Set(x, y, tilemap.Floor)
		}
	}
}

// carveLine writes Floor along every integer point from (x1,y1) to
// (x2,y2), both endpoints included, restricted to either a single row or
// a single column (border cells are skipped). Used for the L-shaped
// corridor connectors.
func carveLine(m *tilemap.Map, x1, y1, x2, y2 int) {
	if x1 == x2 {
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		for y := y1; y <= y2; y++ {
			setInterior(m, x1, y)
		}
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		setInterior(m, x, y1)
	}
}

func setInterior(m *tilemap.Map, x, y int) {
	if x < 1 || x > m.Width-2 || y < 1 || y > m.Height-2 {
		return
	}
	m.Set(x, y, tilemap.Floor)
}

// interiorComponents runs 4-connected BFS over every walkable tile of the
// grid (border cells included) and returns each component as a list of
// flat y*Width+x tile indices, largest first.
func interiorComponents(m *tilemap.Map) [][]int {
	seen := make([]bool, m.Width*m.Height)
	var components [][]int

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx := y*m.Width + x
			if seen[idx] || !m.Tiles[idx].Walkable() {
				continue
			}
			queue := []int{idx}
			seen[idx] = true
			var comp []int
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				comp = append(comp, cur)
				cx, cy := cur%m.Width, cur/m.Width
				for _, d := range tilemap.Cardinals {
					nx, ny := cx+d.X, cy+d.Y
					if !m.InBounds(nx, ny) {
						continue
					}
					nIdx := ny*m.Width + nx
					if !seen[nIdx] && m.Tiles[nIdx].Walkable() {
						seen[nIdx] = true
						queue = append(queue, nIdx)
					}
				}
			}
			components = append(components, comp)
		}
	}

	for i := 0; i < len(components); i++ {
		for j := i + 1; j < len(components); j++ {
			if len(components[j]) > len(components[i]) {
				components[i], components[j] = components[j], components[i]
			}
		}
	}
	return components
}

// keepLargestComponent fills every walkable tile not in the largest
// connected component back to Wall. Used by the cave-like algorithms
// when EnsureConnected is set.
func keepLargestComponent(m *tilemap.Map) {
	components := interiorComponents(m)
	if len(components) <= 1 {
		return
	}
	for _, comp := range components[1:] {
		for _, idx := range comp {
			m.Tiles[idx] = tilemap.Wall
		}
	}
}

// floorCount returns the number of Floor/Door tiles currently on the map.
func floorCount(m *tilemap.Map) int {
	n := 0
	for _, t := range m.Tiles {
		if t.Walkable() {
			n++
		}
	}
	return n
}
