package tilemap

import "math"

// RoomRole tags a room's narrative purpose.
type RoomRole int

const (
	RoleNone RoomRole = iota
	RoleEntrance
	RoleExit
	RoleBoss
	RoleTreasure
	RoleShop
)

func (r RoomRole) String() string {
	switch r {
	case RoleNone:
		return "None"
	case RoleEntrance:
		return "Entrance"
	case RoleExit:
		return "Exit"
	case RoleBoss:
		return "Boss"
	case RoleTreasure:
		return "Treasure"
	case RoleShop:
		return "Shop"
	default:
		return "Unknown"
	}
}

// RoomFlag is a bit in Room.Flags.
type RoomFlag uint32

const (
	FlagNone RoomFlag = 0
)

// UnassignedType is the sentinel Room.TypeID meaning "no room type
// assigned". Defined here (mirrored from pkg/request.UnassignedType) to
// avoid requiring every consumer of the tile/room model to import the
// request package just for this one constant.
const UnassignedType = math.MaxUint32

// Room is the interior floor rect of one room, plus its typing and role.
type Room struct {
	ID     int      `json:"id"`
	Bounds Rect     `json:"bounds"`
	Flags  uint32   `json:"flags"`
	Role   RoomRole `json:"role"`
	TypeID uint32   `json:"typeId"`
}

// HasFlag reports whether f is set.
func (r *Room) HasFlag(f RoomFlag) bool {
	return r.Flags&uint32(f) != 0
}

// Corridor represents an edge in the room graph: a carved connection
// between two rooms.
type Corridor struct {
	FromRoomID int `json:"fromRoomId"`
	ToRoomID   int `json:"toRoomId"`
	Width      int `json:"width"`
	Length     int `json:"length"`
}

// RoomEntrance records one Door cell on a room's perimeter and the
// corridor cell it opens onto.
type RoomEntrance struct {
	RoomID       int   `json:"roomId"`
	RoomTile     Point `json:"roomTile"`
	CorridorTile Point `json:"corridorTile"`
	Normal       Point `json:"normal"`
}

// AdjacencySpan indexes into RoomGraph.Neighbors for one room.
type AdjacencySpan struct {
	Start int `json:"start"`
	Count int `json:"count"`
}

// NeighborEntry is one flattened room-graph edge endpoint.
type NeighborEntry struct {
	RoomID        int `json:"roomId"`
	CorridorIndex int `json:"corridorIndex"`
}

// RoomGraph is the adjacency-span encoding of the undirected room graph.
type RoomGraph struct {
	Adjacency []AdjacencySpan `json:"adjacency"`
	Neighbors []NeighborEntry `json:"neighbors"`
}

// NeighborsOf returns the neighbor entries for room id.
func (g *RoomGraph) NeighborsOf(roomID int) []NeighborEntry {
	if roomID < 0 || roomID >= len(g.Adjacency) {
		return nil
	}
	span := g.Adjacency[roomID]
	return g.Neighbors[span.Start : span.Start+span.Count]
}

// Degree returns the number of distinct neighbor entries for room id.
func (g *RoomGraph) Degree(roomID int) int {
	if roomID < 0 || roomID >= len(g.Adjacency) {
		return 0
	}
	return g.Adjacency[roomID].Count
}
