package tilemap

import "github.com/dshills/dungeoneer/pkg/request"

// EdgeOpening is a carved perimeter breach, with its geometry, orientation
// and (once the derived-metadata pass has run) the connected-component id
// of the walkable cell it opens onto.
type EdgeOpening struct {
	ID          int           `json:"id"`
	Side        request.Side  `json:"side"`
	Start       int           `json:"start"`
	End         int           `json:"end"`
	Length      int           `json:"length"`
	EdgeTile    Point         `json:"edgeTile"`
	InwardTile  Point         `json:"inwardTile"`
	Normal      Point         `json:"normal"`
	ComponentID int           `json:"componentId"`
	Role        request.EdgeRole `json:"role"`
}

// EdgeOpeningQuery filters QueryEdgeOpenings results.
type EdgeOpeningQuery struct {
	SideMask        []request.Side
	RoleMask        []request.EdgeRole
	EdgeCoordMin    int
	EdgeCoordMax    int
	HasCoordBounds  bool
	MinLength       int
	MaxLength       int
	HasLengthBounds bool
	RequireComponent int
	HasComponent    bool
}

func sideAllowed(mask []request.Side, s request.Side) bool {
	if len(mask) == 0 {
		return true
	}
	for _, m := range mask {
		if m == s {
			return true
		}
	}
	return false
}

func roleAllowed(mask []request.EdgeRole, r request.EdgeRole) bool {
	if len(mask) == 0 {
		return true
	}
	for _, m := range mask {
		if m == r {
			return true
		}
	}
	return false
}

// QueryEdgeOpenings returns the ids of edge openings matching q.
func (m *Map) QueryEdgeOpenings(q EdgeOpeningQuery) []int {
	var ids []int
	for _, o := range m.Metadata.EdgeOpenings {
		if !sideAllowed(q.SideMask, o.Side) {
			continue
		}
		if !roleAllowed(q.RoleMask, o.Role) {
			continue
		}
		if q.HasCoordBounds && (o.Start < q.EdgeCoordMin || o.End > q.EdgeCoordMax) {
			continue
		}
		if q.HasLengthBounds && (o.Length < q.MinLength || o.Length > q.MaxLength) {
			continue
		}
		if q.HasComponent && o.ComponentID != q.RequireComponent {
			continue
		}
		ids = append(ids, o.ID)
	}
	return ids
}
