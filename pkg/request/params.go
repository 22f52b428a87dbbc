package request

import "fmt"

// AlgorithmParams is a tagged variant: exactly the field matching the
// Request's Algorithm is consulted; the rest are ignored. Keeping each
// algorithm's parameters in their own named field (rather than a single
// untyped map or a C-style union) means a validator can be written once
// per variant and the "all-fields-zero" footgun never silently selects
// the wrong algorithm's defaults.
type AlgorithmParams struct {
	BSP              *BSPParams              `yaml:"bsp,omitempty" json:"bsp,omitempty"`
	Drunkard         *DrunkardParams         `yaml:"drunkard,omitempty" json:"drunkard,omitempty"`
	CellularAutomata *CellularAutomataParams `yaml:"cellularAutomata,omitempty" json:"cellularAutomata,omitempty"`
	ValueNoise       *NoiseParams            `yaml:"valueNoise,omitempty" json:"valueNoise,omitempty"`
	SimplexNoise     *NoiseParams            `yaml:"simplexNoise,omitempty" json:"simplexNoise,omitempty"`
	RoomsAndMazes    *RoomsAndMazesParams    `yaml:"roomsAndMazes,omitempty" json:"roomsAndMazes,omitempty"`
	RoomGraph        *RoomGraphParams        `yaml:"roomGraph,omitempty" json:"roomGraph,omitempty"`
	WormCaves        *WormCavesParams        `yaml:"wormCaves,omitempty" json:"wormCaves,omitempty"`
}

// ApplyDefaults fills in the params field for algo if it is nil, and
// returns the active params as an interface{} (one of the *Params types
// above) for the registry to type-switch on.
func (p *AlgorithmParams) ApplyDefaults(algo AlgorithmID) (interface{}, error) {
	switch algo {
	case BSP:
		if p.BSP == nil {
			p.BSP = DefaultBSPParams()
		}
		return p.BSP, nil
	case Drunkard:
		if p.Drunkard == nil {
			p.Drunkard = DefaultDrunkardParams()
		}
		return p.Drunkard, nil
	case CellularAutomata:
		if p.CellularAutomata == nil {
			p.CellularAutomata = DefaultCellularAutomataParams()
		}
		return p.CellularAutomata, nil
	case ValueNoise:
		if p.ValueNoise == nil {
			p.ValueNoise = DefaultNoiseParams(64)
		}
		return p.ValueNoise, nil
	case SimplexNoise:
		if p.SimplexNoise == nil {
			p.SimplexNoise = DefaultNoiseParams(128)
		}
		return p.SimplexNoise, nil
	case RoomsAndMazes:
		if p.RoomsAndMazes == nil {
			p.RoomsAndMazes = DefaultRoomsAndMazesParams()
		}
		return p.RoomsAndMazes, nil
	case RoomGraph:
		if p.RoomGraph == nil {
			p.RoomGraph = DefaultRoomGraphParams()
		}
		return p.RoomGraph, nil
	case WormCaves:
		if p.WormCaves == nil {
			p.WormCaves = DefaultWormCavesParams()
		}
		return p.WormCaves, nil
	default:
		return nil, fmt.Errorf("unknown algorithm id %d", int(algo))
	}
}

// BSPParams configures the BSP subdivision algorithm.
type BSPParams struct {
	MinRooms              int `yaml:"minRooms" json:"minRooms"`
	MaxRooms              int `yaml:"maxRooms" json:"maxRooms"`
	RoomMinSize           int `yaml:"roomMinSize" json:"roomMinSize"`
	RoomMaxSize           int `yaml:"roomMaxSize" json:"roomMaxSize"`
	MaxPartitionAttempts  int `yaml:"maxPartitionAttempts" json:"maxPartitionAttempts"`
}

// DefaultBSPParams returns the default BSP parameters.
func DefaultBSPParams() *BSPParams {
	return &BSPParams{
		MinRooms:             6,
		MaxRooms:             12,
		RoomMinSize:          4,
		RoomMaxSize:          10,
		MaxPartitionAttempts: 64,
	}
}

// Validate checks BSPParams for internal consistency.
func (p *BSPParams) Validate() error {
	if p.RoomMinSize < 2 {
		return fmt.Errorf("roomMinSize must be >= 2, got %d", p.RoomMinSize)
	}
	if p.RoomMaxSize < p.RoomMinSize {
		return fmt.Errorf("roomMaxSize (%d) must be >= roomMinSize (%d)", p.RoomMaxSize, p.RoomMinSize)
	}
	if p.MinRooms < 1 {
		return fmt.Errorf("minRooms must be >= 1, got %d", p.MinRooms)
	}
	if p.MaxRooms < p.MinRooms {
		return fmt.Errorf("maxRooms (%d) must be >= minRooms (%d)", p.MaxRooms, p.MinRooms)
	}
	if p.MaxPartitionAttempts < 1 {
		return fmt.Errorf("maxPartitionAttempts must be >= 1, got %d", p.MaxPartitionAttempts)
	}
	return nil
}

// DrunkardParams configures the drunkard's walk algorithm.
type DrunkardParams struct {
	TargetFloorPercent int `yaml:"targetFloorPercent" json:"targetFloorPercent"`
	WigglePercent      int `yaml:"wigglePercent" json:"wigglePercent"`
	MaxSteps           int `yaml:"maxSteps" json:"maxSteps"`
}

// DefaultDrunkardParams returns the default drunkard's-walk parameters.
func DefaultDrunkardParams() *DrunkardParams {
	return &DrunkardParams{
		TargetFloorPercent: 40,
		WigglePercent:      50,
		MaxSteps:           200000,
	}
}

// Validate checks DrunkardParams for internal consistency.
func (p *DrunkardParams) Validate() error {
	if p.TargetFloorPercent < 1 || p.TargetFloorPercent > 90 {
		return fmt.Errorf("targetFloorPercent must be in [1,90], got %d", p.TargetFloorPercent)
	}
	if p.WigglePercent < 0 || p.WigglePercent > 100 {
		return fmt.Errorf("wigglePercent must be in [0,100], got %d", p.WigglePercent)
	}
	if p.MaxSteps < 1 {
		return fmt.Errorf("maxSteps must be >= 1, got %d", p.MaxSteps)
	}
	return nil
}

// CellularAutomataParams configures the cellular-automata cave algorithm.
type CellularAutomataParams struct {
	InitialWallPercent int  `yaml:"initialWallPercent" json:"initialWallPercent"`
	SimulationSteps    int  `yaml:"simulationSteps" json:"simulationSteps"`
	WallThreshold      int  `yaml:"wallThreshold" json:"wallThreshold"`
	EnsureConnected    bool `yaml:"ensureConnected" json:"ensureConnected"`
}

// DefaultCellularAutomataParams returns the default cellular-automata parameters.
func DefaultCellularAutomataParams() *CellularAutomataParams {
	return &CellularAutomataParams{
		InitialWallPercent: 45,
		SimulationSteps:    4,
		WallThreshold:      5,
		EnsureConnected:    true,
	}
}

// Validate checks CellularAutomataParams for internal consistency.
func (p *CellularAutomataParams) Validate() error {
	if p.InitialWallPercent < 0 || p.InitialWallPercent > 100 {
		return fmt.Errorf("initialWallPercent must be in [0,100], got %d", p.InitialWallPercent)
	}
	if p.SimulationSteps < 1 || p.SimulationSteps > 12 {
		return fmt.Errorf("simulationSteps must be in [1,12], got %d", p.SimulationSteps)
	}
	if p.WallThreshold < 0 || p.WallThreshold > 8 {
		return fmt.Errorf("wallThreshold must be in [0,8], got %d", p.WallThreshold)
	}
	return nil
}

// NoiseParams configures the value-noise and simplex-noise algorithms.
type NoiseParams struct {
	Octaves             int  `yaml:"octaves" json:"octaves"`
	PersistencePercent  int  `yaml:"persistencePercent" json:"persistencePercent"`
	FeatureSize         int  `yaml:"featureSize" json:"featureSize"`
	FloorThresholdPercent int `yaml:"floorThresholdPercent" json:"floorThresholdPercent"`
	EnsureConnected     bool `yaml:"ensureConnected" json:"ensureConnected"`
}

// DefaultNoiseParams returns default noise parameters. maxFeatureSize
// differs between value-noise (64) and simplex-noise (128) per spec.
func DefaultNoiseParams(maxFeatureSize int) *NoiseParams {
	fs := 16
	if fs > maxFeatureSize {
		fs = maxFeatureSize
	}
	return &NoiseParams{
		Octaves:               4,
		PersistencePercent:    50,
		FeatureSize:           fs,
		FloorThresholdPercent: 45,
		EnsureConnected:       true,
	}
}

// ValidateFor checks NoiseParams, enforcing maxOctaves and maxFeatureSize
// (8/128 for simplex, 6/64 for value, per spec.md).
func (p *NoiseParams) ValidateFor(maxOctaves, maxFeatureSize int) error {
	if p.Octaves < 1 || p.Octaves > maxOctaves {
		return fmt.Errorf("octaves must be in [1,%d], got %d", maxOctaves, p.Octaves)
	}
	if p.PersistencePercent < 10 || p.PersistencePercent > 90 {
		return fmt.Errorf("persistencePercent must be in [10,90], got %d", p.PersistencePercent)
	}
	if p.FeatureSize < 2 || p.FeatureSize > maxFeatureSize {
		return fmt.Errorf("featureSize must be in [2,%d], got %d", maxFeatureSize, p.FeatureSize)
	}
	if p.FloorThresholdPercent < 0 || p.FloorThresholdPercent > 100 {
		return fmt.Errorf("floorThresholdPercent must be in [0,100], got %d", p.FloorThresholdPercent)
	}
	return nil
}

// RoomsAndMazesParams configures the rooms-and-mazes algorithm.
type RoomsAndMazesParams struct {
	RoomMinSize              int  `yaml:"roomMinSize" json:"roomMinSize"`
	RoomMaxSize              int  `yaml:"roomMaxSize" json:"roomMaxSize"`
	MaxRoomPlacementAttempts int  `yaml:"maxRoomPlacementAttempts" json:"maxRoomPlacementAttempts"`
	MazeWigglePercent        int  `yaml:"mazeWigglePercent" json:"mazeWigglePercent"`
	MinRoomConnections       int  `yaml:"minRoomConnections" json:"minRoomConnections"`
	MaxRoomConnections       int  `yaml:"maxRoomConnections" json:"maxRoomConnections"`
	EnsureFullConnectivity   bool `yaml:"ensureFullConnectivity" json:"ensureFullConnectivity"`
	// DeadEndPruneSteps: -1 means prune until stable, 0 means no pruning,
	// a positive value means that many pruning passes.
	DeadEndPruneSteps int `yaml:"deadEndPruneSteps" json:"deadEndPruneSteps"`
}

// DefaultRoomsAndMazesParams returns the default rooms-and-mazes parameters.
func DefaultRoomsAndMazesParams() *RoomsAndMazesParams {
	return &RoomsAndMazesParams{
		RoomMinSize:              3,
		RoomMaxSize:              8,
		MaxRoomPlacementAttempts: 200,
		MazeWigglePercent:        40,
		MinRoomConnections:       1,
		MaxRoomConnections:       3,
		EnsureFullConnectivity:   true,
		DeadEndPruneSteps:        0,
	}
}

// Validate checks RoomsAndMazesParams for internal consistency.
func (p *RoomsAndMazesParams) Validate() error {
	if p.RoomMinSize < 2 {
		return fmt.Errorf("roomMinSize must be >= 2, got %d", p.RoomMinSize)
	}
	if p.RoomMaxSize < p.RoomMinSize {
		return fmt.Errorf("roomMaxSize (%d) must be >= roomMinSize (%d)", p.RoomMaxSize, p.RoomMinSize)
	}
	if p.MaxRoomPlacementAttempts < 1 {
		return fmt.Errorf("maxRoomPlacementAttempts must be >= 1, got %d", p.MaxRoomPlacementAttempts)
	}
	if p.MazeWigglePercent < 0 || p.MazeWigglePercent > 100 {
		return fmt.Errorf("mazeWigglePercent must be in [0,100], got %d", p.MazeWigglePercent)
	}
	if p.MinRoomConnections < 0 {
		return fmt.Errorf("minRoomConnections must be >= 0, got %d", p.MinRoomConnections)
	}
	if p.MaxRoomConnections < p.MinRoomConnections {
		return fmt.Errorf("maxRoomConnections (%d) must be >= minRoomConnections (%d)", p.MaxRoomConnections, p.MinRoomConnections)
	}
	if p.DeadEndPruneSteps < -1 {
		return fmt.Errorf("deadEndPruneSteps must be >= -1, got %d", p.DeadEndPruneSteps)
	}
	return nil
}

// RoomGraphParams configures the room-graph algorithm.
type RoomGraphParams struct {
	RoomMinSize                  int `yaml:"roomMinSize" json:"roomMinSize"`
	RoomMaxSize                  int `yaml:"roomMaxSize" json:"roomMaxSize"`
	RoomCount                    int `yaml:"roomCount" json:"roomCount"`
	MaxRoomPlacementAttempts     int `yaml:"maxRoomPlacementAttempts" json:"maxRoomPlacementAttempts"`
	NeighborCandidates           int `yaml:"neighborCandidates" json:"neighborCandidates"`
	ExtraConnectionChancePercent int `yaml:"extraConnectionChancePercent" json:"extraConnectionChancePercent"`
}

// DefaultRoomGraphParams returns the default room-graph parameters.
func DefaultRoomGraphParams() *RoomGraphParams {
	return &RoomGraphParams{
		RoomMinSize:                  4,
		RoomMaxSize:                  9,
		RoomCount:                    10,
		MaxRoomPlacementAttempts:     200,
		NeighborCandidates:           3,
		ExtraConnectionChancePercent: 15,
	}
}

// Validate checks RoomGraphParams for internal consistency.
func (p *RoomGraphParams) Validate() error {
	if p.RoomMinSize < 2 {
		return fmt.Errorf("roomMinSize must be >= 2, got %d", p.RoomMinSize)
	}
	if p.RoomMaxSize < p.RoomMinSize {
		return fmt.Errorf("roomMaxSize (%d) must be >= roomMinSize (%d)", p.RoomMaxSize, p.RoomMinSize)
	}
	if p.RoomCount < 2 {
		return fmt.Errorf("roomCount must be >= 2, got %d", p.RoomCount)
	}
	if p.MaxRoomPlacementAttempts < 1 {
		return fmt.Errorf("maxRoomPlacementAttempts must be >= 1, got %d", p.MaxRoomPlacementAttempts)
	}
	if p.NeighborCandidates < 1 || p.NeighborCandidates > 8 {
		return fmt.Errorf("neighborCandidates must be in [1,8], got %d", p.NeighborCandidates)
	}
	if p.ExtraConnectionChancePercent < 0 || p.ExtraConnectionChancePercent > 100 {
		return fmt.Errorf("extraConnectionChancePercent must be in [0,100], got %d", p.ExtraConnectionChancePercent)
	}
	return nil
}

// WormCavesParams configures the worm-caves algorithm.
type WormCavesParams struct {
	WormCount           int  `yaml:"wormCount" json:"wormCount"`
	TargetFloorPercent  int  `yaml:"targetFloorPercent" json:"targetFloorPercent"`
	MaxStepsPerWorm     int  `yaml:"maxStepsPerWorm" json:"maxStepsPerWorm"`
	BranchChancePercent int  `yaml:"branchChancePercent" json:"branchChancePercent"`
	BrushRadius         int  `yaml:"brushRadius" json:"brushRadius"`
	EnsureConnected     bool `yaml:"ensureConnected" json:"ensureConnected"`
}

// DefaultWormCavesParams returns the default worm-caves parameters.
func DefaultWormCavesParams() *WormCavesParams {
	return &WormCavesParams{
		WormCount:           4,
		TargetFloorPercent:  40,
		MaxStepsPerWorm:     4000,
		BranchChancePercent: 5,
		BrushRadius:         1,
		EnsureConnected:     true,
	}
}

// Validate checks WormCavesParams for internal consistency.
func (p *WormCavesParams) Validate() error {
	if p.WormCount < 1 || p.WormCount > 128 {
		return fmt.Errorf("wormCount must be in [1,128], got %d", p.WormCount)
	}
	if p.TargetFloorPercent < 1 || p.TargetFloorPercent > 90 {
		return fmt.Errorf("targetFloorPercent must be in [1,90], got %d", p.TargetFloorPercent)
	}
	if p.MaxStepsPerWorm < 1 {
		return fmt.Errorf("maxStepsPerWorm must be >= 1, got %d", p.MaxStepsPerWorm)
	}
	if p.BranchChancePercent < 0 || p.BranchChancePercent > 100 {
		return fmt.Errorf("branchChancePercent must be in [0,100], got %d", p.BranchChancePercent)
	}
	if p.BrushRadius < 0 || p.BrushRadius > 3 {
		return fmt.Errorf("brushRadius must be in [0,3], got %d", p.BrushRadius)
	}
	return nil
}
