package roomtype

import (
	"sort"

	"github.com/dshills/dungeoneer/pkg/genstatus"
	"github.com/dshills/dungeoneer/pkg/request"
	"github.com/dshills/dungeoneer/pkg/tilemap"
)

// roomFeatures holds the per-room values RoomTypeConstraints filters on
// and RoomTypePreferences scores against.
type roomFeatures struct {
	area           int
	degree         int
	borderDistance int
	bfsDepth       int
}

// Assign fills in Room.TypeID for every room in m.Metadata.Rooms
// according to cfg, and records one TypeQuotaReport per definition in
// m.Metadata.TypeQuotas. In StrictMode, a definition whose MinCount
// cannot be satisfied makes Assign fail with GenerationFailed instead of
// leaving the shortfall unassigned.
func Assign(m *tilemap.Map, cfg request.RoomTypeConfig) error {
	rooms := m.Metadata.Rooms
	for i := range rooms {
		rooms[i].TypeID = request.UnassignedType
	}
	if len(cfg.Definitions) == 0 {
		return nil
	}

	features := computeFeatures(m)
	ranges := computeFeatureRanges(features)

	var enabled []request.RoomTypeDef
	for _, def := range cfg.Definitions {
		if def.Enabled {
			enabled = append(enabled, def)
		}
	}
	sort.Slice(enabled, func(a, b int) bool { return enabled[a].TypeID < enabled[b].TypeID })

	assigned := make([]bool, len(rooms))
	assignedCount := make(map[uint32]int, len(enabled))

	// Pass 1: reserve each type's minimum from the highest-scoring
	// admissible unassigned rooms, processing types in type_id order so
	// an earlier type's greedy fill never starves a later type's
	// minimum.
	for _, def := range enabled {
		fill(rooms, features, ranges, assigned, assignedCount, def, def.MinCount)
	}

	// Pass 2: top each type up toward its target_count (capped by
	// max_count), still in type_id order, from whatever admissible
	// rooms remain unassigned once every type's minimum is reserved.
	for _, def := range enabled {
		if def.TargetCount == -1 {
			continue
		}
		want := def.TargetCount - assignedCount[def.TypeID]
		if def.MaxCount != -1 {
			if room := def.MaxCount - assignedCount[def.TypeID]; room < want {
				want = room
			}
		}
		fill(rooms, features, ranges, assigned, assignedCount, def, want)
	}

	// Pass 3: for rooms still unassigned, assign each to whichever
	// admissible type (under its remaining max_count) scores it
	// highest. enabled is sorted ascending by type_id and only a
	// strictly higher score replaces the current best, so ties resolve
	// to the lowest type_id; processing rooms in ascending room-id
	// order makes the tie-break deterministic on the room axis too.
	var remaining []int
	for i := range rooms {
		if !assigned[i] {
			remaining = append(remaining, i)
		}
	}
	sort.Slice(remaining, func(a, b int) bool { return rooms[remaining[a]].ID < rooms[remaining[b]].ID })

	for _, idx := range remaining {
		f := features[rooms[idx].ID]
		bestFound := false
		var bestTypeID uint32
		var bestScore float64
		for _, def := range enabled {
			if def.MaxCount != -1 && assignedCount[def.TypeID] >= def.MaxCount {
				continue
			}
			if !admissible(f, def.Constraints) {
				continue
			}
			s := score(f, def.Preferences, ranges)
			if !bestFound || s > bestScore {
				bestFound = true
				bestScore = s
				bestTypeID = def.TypeID
			}
		}
		if bestFound {
			rooms[idx].TypeID = bestTypeID
			assigned[idx] = true
			assignedCount[bestTypeID]++
		}
	}

	if cfg.Policy.AllowUntypedRooms {
		for i := range rooms {
			if !assigned[i] {
				rooms[i].TypeID = request.UnassignedType
			}
		}
	} else {
		for i := range rooms {
			if !assigned[i] {
				rooms[i].TypeID = cfg.Policy.DefaultTypeID
			}
		}
	}

	reports := make([]tilemap.TypeQuotaReport, 0, len(cfg.Definitions))
	for _, def := range cfg.Definitions {
		if !def.Enabled {
			continue
		}
		ac := assignedCount[def.TypeID]
		report := tilemap.TypeQuotaReport{
			TypeID:          def.TypeID,
			AssignedCount:   ac,
			MinSatisfied:    ac >= def.MinCount,
			MaxSatisfied:    def.MaxCount == -1 || ac <= def.MaxCount,
			TargetSatisfied: def.TargetCount == -1 || ac >= def.TargetCount,
		}
		if ac < def.MinCount {
			report.MissCount = def.MinCount - ac
		}
		reports = append(reports, report)

		if cfg.Policy.StrictMode && !report.MinSatisfied {
			m.Metadata.TypeQuotas = reports
			return genstatus.Failed("roomtype: definition %d needs %d rooms but only %d admissible candidates were available", def.TypeID, def.MinCount, ac)
		}
	}

	m.Metadata.TypeQuotas = reports
	return nil
}

// fill assigns up to want of def's highest-scoring admissible,
// currently-unassigned rooms to def.TypeID. want <= 0 is a no-op.
func fill(rooms []tilemap.Room, features map[int]roomFeatures, ranges featureRanges, assigned []bool, assignedCount map[uint32]int, def request.RoomTypeDef, want int) {
	if want <= 0 {
		return
	}
	var candidates []int
	for i, room := range rooms {
		if assigned[i] {
			continue
		}
		if admissible(features[room.ID], def.Constraints) {
			candidates = append(candidates, i)
		}
	}
	sort.Slice(candidates, func(a, b int) bool {
		return score(features[rooms[candidates[a]].ID], def.Preferences, ranges) >
			score(features[rooms[candidates[b]].ID], def.Preferences, ranges)
	})
	if want > len(candidates) {
		want = len(candidates)
	}
	for _, idx := range candidates[:want] {
		rooms[idx].TypeID = def.TypeID
		assigned[idx] = true
		assignedCount[def.TypeID]++
	}
}

func admissible(f roomFeatures, c request.RoomTypeConstraints) bool {
	return inRange(f.area, c.AreaMin, c.AreaMax) &&
		inRange(f.degree, c.DegreeMin, c.DegreeMax) &&
		inRange(f.borderDistance, c.BorderDistanceMin, c.BorderDistanceMax) &&
		inRange(f.bfsDepth, c.BFSDepthMin, c.BFSDepthMax)
}

func inRange(v, min, max int) bool {
	if min >= 0 && v < min {
		return false
	}
	if max >= 0 && v > max {
		return false
	}
	return true
}

// featureRange holds the min/max value observed for one feature across
// the current room set, used to normalize that feature into [0,1]
// before it is weighted in score.
type featureRange struct {
	min, max float64
}

// norm maps v into [0,1] relative to the range; a degenerate range
// (every room ties on this feature) normalizes to 0 for every room.
func (r featureRange) norm(v float64) float64 {
	if r.max <= r.min {
		return 0
	}
	return (v - r.min) / (r.max - r.min)
}

// featureRanges bundles the normalization ranges for every feature
// score() weights.
type featureRanges struct {
	area, degree, borderDistance featureRange
}

// computeFeatureRanges scans every room's features once to build the
// min/max ranges score() normalizes against.
func computeFeatureRanges(features map[int]roomFeatures) featureRanges {
	var ranges featureRanges
	first := true
	for _, f := range features {
		a, d, b := float64(f.area), float64(f.degree), float64(f.borderDistance)
		if first {
			ranges.area = featureRange{a, a}
			ranges.degree = featureRange{d, d}
			ranges.borderDistance = featureRange{b, b}
			first = false
			continue
		}
		if a < ranges.area.min {
			ranges.area.min = a
		}
		if a > ranges.area.max {
			ranges.area.max = a
		}
		if d < ranges.degree.min {
			ranges.degree.min = d
		}
		if d > ranges.degree.max {
			ranges.degree.max = d
		}
		if b < ranges.borderDistance.min {
			ranges.borderDistance.min = b
		}
		if b > ranges.borderDistance.max {
			ranges.borderDistance.max = b
		}
	}
	return ranges
}

// score computes the additive preference score for f: weight plus each
// bias times its feature normalized to [0,1] over the current room set.
func score(f roomFeatures, p request.RoomTypePreferences, ranges featureRanges) float64 {
	return p.Weight +
		p.LargerRoomBias*ranges.area.norm(float64(f.area)) +
		p.HigherDegreeBias*ranges.degree.norm(float64(f.degree)) +
		p.BorderDistanceBias*ranges.borderDistance.norm(float64(f.borderDistance))
}

// computeFeatures derives area/degree/borderDistance/bfsDepth for every
// room, indexed by Room.ID.
func computeFeatures(m *tilemap.Map) map[int]roomFeatures {
	graph := m.Metadata.Graph
	out := make(map[int]roomFeatures, len(m.Metadata.Rooms))

	entranceID := -1
	for _, room := range m.Metadata.Rooms {
		if room.Role == tilemap.RoleEntrance {
			entranceID = room.ID
			break
		}
	}
	depths := bfsDepths(&graph, entranceID, len(m.Metadata.Rooms))

	for _, room := range m.Metadata.Rooms {
		b := room.Bounds
		borderDist := b.X
		if v := b.Y; v < borderDist {
			borderDist = v
		}
		if v := m.Width - 1 - (b.X + b.Width - 1); v < borderDist {
			borderDist = v
		}
		if v := m.Height - 1 - (b.Y + b.Height - 1); v < borderDist {
			borderDist = v
		}

		out[room.ID] = roomFeatures{
			area:           b.Area(),
			degree:         graph.Degree(room.ID),
			borderDistance: borderDist,
			bfsDepth:       depths[room.ID],
		}
	}
	return out
}

// bfsDepths returns, for each room id in [0,n), its hop distance from
// from via the room graph, or -1 if from is unset or the room is
// unreachable.
func bfsDepths(graph *tilemap.RoomGraph, from, n int) []int {
	depths := make([]int, n)
	for i := range depths {
		depths[i] = -1
	}
	if from < 0 || from >= n {
		return depths
	}
	depths[from] = 0
	queue := []int{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range graph.NeighborsOf(cur) {
			if depths[nb.RoomID] == -1 {
				depths[nb.RoomID] = depths[cur] + 1
				queue = append(queue, nb.RoomID)
			}
		}
	}
	return depths
}
