package algorithm

import (
	"github.com/dshills/dungeoneer/pkg/genstatus"
	"github.com/dshills/dungeoneer/pkg/request"
	"github.com/dshills/dungeoneer/pkg/rng"
	"github.com/dshills/dungeoneer/pkg/tilemap"
)

// bspNode is one node of the binary space partition tree. Leaf nodes
// (left == right == nil) may hold a carved room.
type bspNode struct {
	bounds      tilemap.Rect
	left, right *bspNode
	room        *tilemap.Rect
}

// generateBSP recursively partitions the interior, carves one room per
// leaf, and connects sibling subtrees with L-shaped corridors, bottom-up.
func generateBSP(m *tilemap.Map, r *rng.RNG, params interface{}, traversal request.TraversalConstraints) ([]tilemap.Room, []tilemap.Corridor, error) {
	p := params.(*request.BSPParams)

	for attempt := 0; attempt < p.MaxPartitionAttempts; attempt++ {
		root := &bspNode{bounds: tilemap.Rect{X: 1, Y: 1, Width: m.Width - 2, Height: m.Height - 2}}
		splitBSPNode(root, r, p.RoomMaxSize+2)

		leaves := collectLeaves(root)
		if len(leaves) < p.MinRooms {
			continue
		}
		if len(leaves) > p.MaxRooms {
			leaves = leaves[:p.MaxRooms]
		}

		for _, leaf := range leaves {
			placeBSPRoom(leaf, r, p.RoomMinSize, p.RoomMaxSize)
		}

		rooms := make([]tilemap.Room, 0, len(leaves))
		for i, leaf := range leaves {
			carveRect(m, *leaf.room)
			role := tilemap.RoleNone
			if i == 0 {
				role = tilemap.RoleEntrance
			} else if i == len(leaves)-1 {
				role = tilemap.RoleExit
			}
			rooms = append(rooms, tilemap.Room{ID: i, Bounds: *leaf.room, TypeID: tilemap.UnassignedType, Role: role})
		}

		corridors := connectBSPSubtrees(m, root, leaves, r)

		if !traversal.RequireConnected || len(interiorComponents(m)) <= 1 {
			return rooms, corridors, nil
		}
	}

	return nil, nil, genstatus.Failed("BSP: could not produce a connected layout with %d-%d rooms within %d attempts", p.MinRooms, p.MaxRooms, p.MaxPartitionAttempts)
}

// splitBSPNode recursively splits node until both dimensions fall below
// minSplittable, choosing the split axis along the larger dimension (or
// randomly when both axes are splittable).
func splitBSPNode(node *bspNode, r *rng.RNG, minSplittable int) {
	b := node.bounds
	if b.Width < minSplittable && b.Height < minSplittable {
		return
	}

	var horizontal bool
	switch {
	case b.Width >= minSplittable && b.Height >= minSplittable:
		horizontal = r.Bool()
	case b.Height >= minSplittable:
		horizontal = true
	case b.Width >= minSplittable:
		horizontal = false
	default:
		return
	}

	if horizontal {
		minSplit := minSplittable / 2
		span := b.Height - 2*minSplit
		if span < 1 {
			return
		}
		splitAt := minSplit + r.IntRange(0, span)
		node.left = &bspNode{bounds: tilemap.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: splitAt}}
		node.right = &bspNode{bounds: tilemap.Rect{X: b.X, Y: b.Y + splitAt, Width: b.Width, Height: b.Height - splitAt}}
	} else {
		minSplit := minSplittable / 2
		span := b.Width - 2*minSplit
		if span < 1 {
			return
		}
		splitAt := minSplit + r.IntRange(0, span)
		node.left = &bspNode{bounds: tilemap.Rect{X: b.X, Y: b.Y, Width: splitAt, Height: b.Height}}
		node.right = &bspNode{bounds: tilemap.Rect{X: b.X + splitAt, Y: b.Y, Width: b.Width - splitAt, Height: b.Height}}
	}

	splitBSPNode(node.left, r, minSplittable)
	splitBSPNode(node.right, r, minSplittable)
}

func collectLeaves(node *bspNode) []*bspNode {
	if node.left == nil && node.right == nil {
		return []*bspNode{node}
	}
	var leaves []*bspNode
	if node.left != nil {
		leaves = append(leaves, collectLeaves(node.left)...)
	}
	if node.right != nil {
		leaves = append(leaves, collectLeaves(node.right)...)
	}
	return leaves
}

// placeBSPRoom picks a room rect within node's bounds, sized in
// [minSize,maxSize] and clipped to fit, leaving at least one cell of
// padding against the node's right and bottom edges so that rooms in
// neighboring leaves never touch.
func placeBSPRoom(node *bspNode, r *rng.RNG, minSize, maxSize int) {
	b := node.bounds
	maxW := b.Width - 1
	maxH := b.Height - 1
	if maxW < minSize {
		maxW = minSize
	}
	if maxH < minSize {
		maxH = minSize
	}
	hi := maxSize
	if hi > maxW {
		hi = maxW
	}
	w := minSize
	if hi > minSize {
		w = r.IntRange(minSize, hi)
	}
	hi = maxSize
	if hi > maxH {
		hi = maxH
	}
	h := minSize
	if hi > minSize {
		h = r.IntRange(minSize, hi)
	}
	if w > b.Width {
		w = b.Width
	}
	if h > b.Height {
		h = b.Height
	}

	xSpan := b.Width - w - 1
	ySpan := b.Height - h - 1
	x := b.X
	if xSpan > 0 {
		x = b.X + r.IntRange(0, xSpan)
	}
	y := b.Y
	if ySpan > 0 {
		y = b.Y + r.IntRange(0, ySpan)
	}

	room := tilemap.Rect{X: x, Y: y, Width: w, Height: h}
	node.room = &room
}

// connectBSPSubtrees walks the tree bottom-up, joining one representative
// room from each sibling subtree with an L-shaped corridor.
func connectBSPSubtrees(m *tilemap.Map, node *bspNode, leaves []*bspNode, r *rng.RNG) []tilemap.Corridor {
	idOf := make(map[*tilemap.Rect]int, len(leaves))
	for i, leaf := range leaves {
		idOf[leaf.room] = i
	}

	var corridors []tilemap.Corridor
	var connect func(n *bspNode)
	connect = func(n *bspNode) {
		if n.left == nil || n.right == nil {
			return
		}
		connect(n.left)
		connect(n.right)
		leftRoom := representativeRoom(n.left)
		rightRoom := representativeRoom(n.right)
		if leftRoom != nil && rightRoom != nil {
			lc, rc := leftRoom.Center(), rightRoom.Center()
			length := 0
			if r.Bool() {
				carveLine(m, lc.X, lc.Y, rc.X, lc.Y)
				carveLine(m, rc.X, lc.Y, rc.X, rc.Y)
			} else {
				carveLine(m, lc.X, lc.Y, lc.X, rc.Y)
				carveLine(m, lc.X, rc.Y, rc.X, rc.Y)
			}
			length = abs(rc.X-lc.X) + abs(rc.Y-lc.Y)
			if fromID, ok := idOf[leftRoom]; ok {
				if toID, ok2 := idOf[rightRoom]; ok2 {
					corridors = append(corridors, tilemap.Corridor{FromRoomID: fromID, ToRoomID: toID, Width: 1, Length: length})
				}
			}
		}
	}
	connect(node)
	return corridors
}

// representativeRoom picks (deterministically: always the first found in
// tree order) one room from the subtree rooted at node.
func representativeRoom(node *bspNode) *tilemap.Rect {
	if node.room != nil {
		return node.room
	}
	if node.left != nil {
		if rm := representativeRoom(node.left); rm != nil {
			return rm
		}
	}
	if node.right != nil {
		if rm := representativeRoom(node.right); rm != nil {
			return rm
		}
	}
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
