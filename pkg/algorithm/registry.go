package algorithm

import (
	"github.com/dshills/dungeoneer/pkg/genstatus"
	"github.com/dshills/dungeoneer/pkg/request"
	"github.com/dshills/dungeoneer/pkg/rng"
	"github.com/dshills/dungeoneer/pkg/tilemap"
)

// GenerateFunc carves one layout onto an already-allocated, Wall-filled
// map. params is the active *XxxParams value selected by the request's
// algorithm (already defaulted and validated). It returns the rooms and
// corridors it produced; cave-like algorithms return both nil.
type GenerateFunc func(m *tilemap.Map, r *rng.RNG, params interface{}, traversal request.TraversalConstraints) ([]tilemap.Room, []tilemap.Corridor, error)

var registry = map[request.AlgorithmID]GenerateFunc{
	request.BSP:              generateBSP,
	request.Drunkard:         generateDrunkard,
	request.CellularAutomata: generateCellularAutomata,
	request.ValueNoise:       generateValueNoise,
	request.SimplexNoise:     generateSimplexNoise,
	request.RoomsAndMazes:    generateRoomsAndMazes,
	request.RoomGraph:        generateRoomGraph,
	request.WormCaves:        generateWormCaves,
}

// Generate allocates a Wall-filled map sized by req, dispatches to the
// algorithm req.Algorithm names, and attaches a fresh Metadata populated
// with the produced rooms and corridors. The caller is still responsible
// for running edge-opening, post-process and derived-metadata passes.
func Generate(req *request.Request, r *rng.RNG) (*tilemap.Map, error) {
	fn, ok := registry[req.Algorithm]
	if !ok {
		return nil, genstatus.Invalid("algorithm", "no generator registered for algorithm id %d", int(req.Algorithm))
	}

	params, err := req.Params.ApplyDefaults(req.Algorithm)
	if err != nil {
		return nil, genstatus.Wrap(genstatus.InvalidArgument, "params", err)
	}

	m := tilemap.New(req.Width, req.Height)
	rooms, corridors, err := fn(m, r, params, req.Traversal)
	if err != nil {
		return nil, err
	}

	md := tilemap.NewMetadata(request.ClassOf(req.Algorithm))
	md.Rooms = rooms
	md.Corridors = corridors
	m.Metadata = md
	return m, nil
}
