package edgeopen

import (
	"github.com/dshills/dungeoneer/pkg/genstatus"
	"github.com/dshills/dungeoneer/pkg/request"
	"github.com/dshills/dungeoneer/pkg/tilemap"
)

// outwardNormal is the unit cardinal vector pointing from the map interior
// toward the outside of the grid, for each perimeter side.
func outwardNormal(side request.Side) tilemap.Point {
	switch side {
	case request.Top:
		return tilemap.North
	case request.Bottom:
		return tilemap.South
	case request.Left:
		return tilemap.West
	default: // request.Right
		return tilemap.East
	}
}

// edgeAndInwardAt returns the border cell and its single inward neighbor
// for position p along side's axis.
func edgeAndInwardAt(m *tilemap.Map, side request.Side, p int) (edge, inward tilemap.Point) {
	switch side {
	case request.Top:
		return tilemap.Point{X: p, Y: 0}, tilemap.Point{X: p, Y: 1}
	case request.Bottom:
		return tilemap.Point{X: p, Y: m.Height - 1}, tilemap.Point{X: p, Y: m.Height - 2}
	case request.Left:
		return tilemap.Point{X: 0, Y: p}, tilemap.Point{X: 1, Y: p}
	default: // request.Right
		return tilemap.Point{X: m.Width - 1, Y: p}, tilemap.Point{X: m.Width - 2, Y: p}
	}
}

// Apply carves every requested edge opening into m, assigns ids in
// insertion order, and returns the resulting openings plus the primary
// entrance/exit opening ids (-1 if none of that role was requested).
// Component ids are left at -1; the derived-metadata pass fills them in.
func Apply(m *tilemap.Map, specs []request.EdgeOpeningSpec) ([]tilemap.EdgeOpening, int, int, error) {
	openings := make([]tilemap.EdgeOpening, 0, len(specs))
	primaryEntrance, primaryExit := -1, -1

	for i, spec := range specs {
		if err := spec.Validate(m.Width, m.Height); err != nil {
			return nil, -1, -1, genstatus.Invalid("edgeOpenings", "opening %d: %w", i, err)
		}

		for p := spec.Start; p <= spec.End; p++ {
			edge, _ := edgeAndInwardAt(m, spec.Side, p)
			if m.At(edge.X, edge.Y) == tilemap.Wall {
				m.Set(edge.X, edge.Y, tilemap.Floor)
			}
		}

		anchorEdge, anchorInward := edgeAndInwardAt(m, spec.Side, spec.Start)
		if m.At(anchorInward.X, anchorInward.Y) == tilemap.Wall {
			m.Set(anchorInward.X, anchorInward.Y, tilemap.Floor)
		}

		opening := tilemap.EdgeOpening{
			ID:          i,
			Side:        spec.Side,
			Start:       spec.Start,
			End:         spec.End,
			Length:      spec.End - spec.Start + 1,
			EdgeTile:    anchorEdge,
			InwardTile:  anchorInward,
			Normal:      outwardNormal(spec.Side),
			ComponentID: -1,
			Role:        spec.Role,
		}
		openings = append(openings, opening)

		switch spec.Role {
		case request.RoleEntrance:
			if primaryEntrance == -1 {
				primaryEntrance = opening.ID
			}
		case request.RoleExit:
			if primaryExit == -1 {
				primaryExit = opening.ID
			}
		}
	}

	return openings, primaryEntrance, primaryExit, nil
}
