package tilemap

import "github.com/dshills/dungeoneer/pkg/request"

// StepReport is the before/after diagnostic recorded for one post-process
// pipeline step.
type StepReport struct {
	MethodType        request.ProcessStepType `json:"methodType"`
	WalkableBefore    int                     `json:"walkableBefore"`
	WalkableAfter     int                     `json:"walkableAfter"`
	ComponentsBefore  int                     `json:"componentsBefore"`
	ComponentsAfter   int                     `json:"componentsAfter"`
	ConnectedBefore   bool                    `json:"connectedBefore"`
	ConnectedAfter    bool                    `json:"connectedAfter"`
}

// TypeQuotaReport is the per-room-type diagnostic recorded by the
// room-type assignment solver.
type TypeQuotaReport struct {
	TypeID         uint32 `json:"typeId"`
	AssignedCount  int    `json:"assignedCount"`
	MinSatisfied   bool   `json:"minSatisfied"`
	MaxSatisfied   bool   `json:"maxSatisfied"`
	TargetSatisfied bool  `json:"targetSatisfied"`
	MissCount      int    `json:"missCount"`
}

// Metadata owns every vector derived from, or alongside, the tile grid.
type Metadata struct {
	WalkableTileCount int  `json:"walkableTileCount"`
	WallTileCount     int  `json:"wallTileCount"`

	ConnectedComponentCount int  `json:"connectedComponentCount"`
	LargestComponentSize    int  `json:"largestComponentSize"`
	ConnectedFloor          bool `json:"connectedFloor"`

	GenerationClass request.GenerationClass `json:"generationClass"`

	Rooms         []Room         `json:"rooms"`
	Corridors     []Corridor     `json:"corridors"`
	RoomEntrances []RoomEntrance `json:"roomEntrances"`
	EdgeOpenings  []EdgeOpening  `json:"edgeOpenings"`

	Graph RoomGraph `json:"graph"`

	LeafRoomCount     int `json:"leafRoomCount"`
	EntranceRoomCount int `json:"entranceRoomCount"`
	ExitRoomCount     int `json:"exitRoomCount"`
	BossRoomCount     int `json:"bossRoomCount"`
	TreasureRoomCount int `json:"treasureRoomCount"`
	ShopRoomCount     int `json:"shopRoomCount"`

	EntranceExitDistance int `json:"entranceExitDistance"`

	PrimaryEntranceOpeningID int `json:"primaryEntranceOpeningId"`
	PrimaryExitOpeningID     int `json:"primaryExitOpeningId"`

	Diagnostics []StepReport      `json:"diagnostics"`
	TypeQuotas  []TypeQuotaReport `json:"typeQuotas"`

	GenerationRequest *request.Request `json:"generationRequest"`
}

// NewMetadata returns an empty Metadata with sentinel fields initialized
// (-1 distances, no primary openings).
func NewMetadata(class request.GenerationClass) *Metadata {
	return &Metadata{
		GenerationClass:          class,
		EntranceExitDistance:     -1,
		PrimaryEntranceOpeningID: -1,
		PrimaryExitOpeningID:     -1,
	}
}
