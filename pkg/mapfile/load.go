package mapfile

import (
	"bytes"
	"encoding/binary"

	"gopkg.in/yaml.v3"

	"github.com/dshills/dungeoneer/pkg/genstatus"
	"github.com/dshills/dungeoneer/pkg/request"
	"github.com/dshills/dungeoneer/pkg/tilemap"
)

// reader walks a byte slice, returning IOError on any attempt to read
// past its end.
type reader struct {
	data []byte
	pos  int
}

func (r *reader) need(n int) error {
	if r.pos+n > len(r.data) {
		return genstatus.New(genstatus.IOError, "truncated")
	}
	return nil
}

func (r *reader) u16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *reader) u32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *reader) i32() (int, error) {
	v, err := r.u32()
	return int(int32(v)), err
}

func (r *reader) u64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return v, nil
}

func (r *reader) byte() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *reader) bytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *reader) point() (tilemap.Point, error) {
	x, err := r.i32()
	if err != nil {
		return tilemap.Point{}, err
	}
	y, err := r.i32()
	return tilemap.Point{X: x, Y: y}, err
}

func (r *reader) rect() (tilemap.Rect, error) {
	x, err := r.i32()
	if err != nil {
		return tilemap.Rect{}, err
	}
	y, err := r.i32()
	if err != nil {
		return tilemap.Rect{}, err
	}
	w, err := r.i32()
	if err != nil {
		return tilemap.Rect{}, err
	}
	h, err := r.i32()
	return tilemap.Rect{X: x, Y: y, Width: w, Height: h}, err
}

func (r *reader) boolean() (bool, error) {
	b, err := r.byte()
	return b != 0, err
}

// Load parses the binary map-file format produced by Save.
func Load(data []byte) (*tilemap.Map, error) {
	if len(data) < len(magic) || !bytes.Equal(data[:len(magic)], magic[:]) {
		return nil, genstatus.New(genstatus.UnsupportedFormat, "magic")
	}

	r := &reader{data: data, pos: len(magic)}
	version, err := r.u16()
	if err != nil {
		return nil, err
	}
	if version != formatVersion {
		return nil, genstatus.New(genstatus.UnsupportedFormat, "version")
	}

	width, err := r.u32()
	if err != nil {
		return nil, err
	}
	height, err := r.u32()
	if err != nil {
		return nil, err
	}
	algorithmID, err := r.u32()
	if err != nil {
		return nil, err
	}
	seed, err := r.u64()
	if err != nil {
		return nil, err
	}
	genClass, err := r.u32()
	if err != nil {
		return nil, err
	}
	if _, err := r.u32(); err != nil { // flags, reserved
		return nil, err
	}

	m := tilemap.New(int(width), int(height))

	tileCount, err := r.u32()
	if err != nil {
		return nil, err
	}
	tileBytes, err := r.bytes(int(tileCount))
	if err != nil {
		return nil, err
	}
	if int(tileCount) != len(m.Tiles) {
		return nil, genstatus.New(genstatus.IOError, "tiles: length mismatch with header dimensions")
	}
	for i, b := range tileBytes {
		m.Tiles[i] = tilemap.Tile(b)
	}

	md := tilemap.NewMetadata(request.GenerationClass(genClass))

	if md.Rooms, err = readRooms(r); err != nil {
		return nil, err
	}
	if md.Corridors, err = readCorridors(r); err != nil {
		return nil, err
	}
	if md.RoomEntrances, err = readEntrances(r); err != nil {
		return nil, err
	}
	if md.EdgeOpenings, err = readEdgeOpenings(r); err != nil {
		return nil, err
	}
	if md.Graph, err = readAdjacency(r); err != nil {
		return nil, err
	}
	if md.Diagnostics, err = readDiagnostics(r); err != nil {
		return nil, err
	}
	if md.TypeQuotas, err = readTypeQuotas(r); err != nil {
		return nil, err
	}
	if err := readSummary(r, md); err != nil {
		return nil, err
	}

	snapLen, err := r.u32()
	if err != nil {
		return nil, err
	}
	snapBytes, err := r.bytes(int(snapLen))
	if err != nil {
		return nil, err
	}
	if len(snapBytes) > 0 {
		var req request.Request
		if err := yaml.Unmarshal(snapBytes, &req); err != nil {
			return nil, genstatus.Wrap(genstatus.IOError, "requestSnapshot", err)
		}
		md.GenerationRequest = &req
	} else if algorithmID != 0 || seed != 0 {
		md.GenerationRequest = &request.Request{Algorithm: request.AlgorithmID(algorithmID), Seed: seed}
	}

	m.Metadata = md
	return m, nil
}

func readRooms(r *reader) ([]tilemap.Room, error) {
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	rooms := make([]tilemap.Room, n)
	for i := range rooms {
		id, err := r.i32()
		if err != nil {
			return nil, err
		}
		bounds, err := r.rect()
		if err != nil {
			return nil, err
		}
		flags, err := r.u32()
		if err != nil {
			return nil, err
		}
		role, err := r.u32()
		if err != nil {
			return nil, err
		}
		typeID, err := r.u32()
		if err != nil {
			return nil, err
		}
		rooms[i] = tilemap.Room{ID: id, Bounds: bounds, Flags: flags, Role: tilemap.RoomRole(role), TypeID: typeID}
	}
	return rooms, nil
}

func readCorridors(r *reader) ([]tilemap.Corridor, error) {
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	corridors := make([]tilemap.Corridor, n)
	for i := range corridors {
		from, err := r.i32()
		if err != nil {
			return nil, err
		}
		to, err := r.i32()
		if err != nil {
			return nil, err
		}
		width, err := r.i32()
		if err != nil {
			return nil, err
		}
		length, err := r.i32()
		if err != nil {
			return nil, err
		}
		corridors[i] = tilemap.Corridor{FromRoomID: from, ToRoomID: to, Width: width, Length: length}
	}
	return corridors, nil
}

func readEntrances(r *reader) ([]tilemap.RoomEntrance, error) {
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	entrances := make([]tilemap.RoomEntrance, n)
	for i := range entrances {
		roomID, err := r.i32()
		if err != nil {
			return nil, err
		}
		roomTile, err := r.point()
		if err != nil {
			return nil, err
		}
		corridorTile, err := r.point()
		if err != nil {
			return nil, err
		}
		normal, err := r.point()
		if err != nil {
			return nil, err
		}
		entrances[i] = tilemap.RoomEntrance{RoomID: roomID, RoomTile: roomTile, CorridorTile: corridorTile, Normal: normal}
	}
	return entrances, nil
}

func readEdgeOpenings(r *reader) ([]tilemap.EdgeOpening, error) {
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	openings := make([]tilemap.EdgeOpening, n)
	for i := range openings {
		id, err := r.i32()
		if err != nil {
			return nil, err
		}
		side, err := r.u32()
		if err != nil {
			return nil, err
		}
		start, err := r.i32()
		if err != nil {
			return nil, err
		}
		end, err := r.i32()
		if err != nil {
			return nil, err
		}
		length, err := r.i32()
		if err != nil {
			return nil, err
		}
		edgeTile, err := r.point()
		if err != nil {
			return nil, err
		}
		inwardTile, err := r.point()
		if err != nil {
			return nil, err
		}
		normal, err := r.point()
		if err != nil {
			return nil, err
		}
		componentID, err := r.i32()
		if err != nil {
			return nil, err
		}
		role, err := r.u32()
		if err != nil {
			return nil, err
		}
		openings[i] = tilemap.EdgeOpening{
			ID: id, Side: request.Side(side), Start: start, End: end, Length: length,
			EdgeTile: edgeTile, InwardTile: inwardTile, Normal: normal,
			ComponentID: componentID, Role: request.EdgeRole(role),
		}
	}
	return openings, nil
}

func readAdjacency(r *reader) (tilemap.RoomGraph, error) {
	n, err := r.u32()
	if err != nil {
		return tilemap.RoomGraph{}, err
	}
	adjacency := make([]tilemap.AdjacencySpan, n)
	for i := range adjacency {
		start, err := r.i32()
		if err != nil {
			return tilemap.RoomGraph{}, err
		}
		count, err := r.i32()
		if err != nil {
			return tilemap.RoomGraph{}, err
		}
		adjacency[i] = tilemap.AdjacencySpan{Start: start, Count: count}
	}

	m, err := r.u32()
	if err != nil {
		return tilemap.RoomGraph{}, err
	}
	neighbors := make([]tilemap.NeighborEntry, m)
	for i := range neighbors {
		roomID, err := r.i32()
		if err != nil {
			return tilemap.RoomGraph{}, err
		}
		corridorIndex, err := r.i32()
		if err != nil {
			return tilemap.RoomGraph{}, err
		}
		neighbors[i] = tilemap.NeighborEntry{RoomID: roomID, CorridorIndex: corridorIndex}
	}
	return tilemap.RoomGraph{Adjacency: adjacency, Neighbors: neighbors}, nil
}

func readDiagnostics(r *reader) ([]tilemap.StepReport, error) {
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	reports := make([]tilemap.StepReport, n)
	for i := range reports {
		methodType, err := r.u32()
		if err != nil {
			return nil, err
		}
		before, err := r.i32()
		if err != nil {
			return nil, err
		}
		after, err := r.i32()
		if err != nil {
			return nil, err
		}
		compBefore, err := r.i32()
		if err != nil {
			return nil, err
		}
		compAfter, err := r.i32()
		if err != nil {
			return nil, err
		}
		connBefore, err := r.boolean()
		if err != nil {
			return nil, err
		}
		connAfter, err := r.boolean()
		if err != nil {
			return nil, err
		}
		reports[i] = tilemap.StepReport{
			MethodType: request.ProcessStepType(methodType),
			WalkableBefore: before, WalkableAfter: after,
			ComponentsBefore: compBefore, ComponentsAfter: compAfter,
			ConnectedBefore: connBefore, ConnectedAfter: connAfter,
		}
	}
	return reports, nil
}

func readTypeQuotas(r *reader) ([]tilemap.TypeQuotaReport, error) {
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	quotas := make([]tilemap.TypeQuotaReport, n)
	for i := range quotas {
		typeID, err := r.u32()
		if err != nil {
			return nil, err
		}
		assigned, err := r.i32()
		if err != nil {
			return nil, err
		}
		minSat, err := r.boolean()
		if err != nil {
			return nil, err
		}
		maxSat, err := r.boolean()
		if err != nil {
			return nil, err
		}
		targetSat, err := r.boolean()
		if err != nil {
			return nil, err
		}
		miss, err := r.i32()
		if err != nil {
			return nil, err
		}
		quotas[i] = tilemap.TypeQuotaReport{
			TypeID: typeID, AssignedCount: assigned,
			MinSatisfied: minSat, MaxSatisfied: maxSat, TargetSatisfied: targetSat,
			MissCount: miss,
		}
	}
	return quotas, nil
}

func readSummary(r *reader, md *tilemap.Metadata) error {
	var err error
	if md.WalkableTileCount, err = r.i32(); err != nil {
		return err
	}
	if md.WallTileCount, err = r.i32(); err != nil {
		return err
	}
	if md.ConnectedComponentCount, err = r.i32(); err != nil {
		return err
	}
	if md.LargestComponentSize, err = r.i32(); err != nil {
		return err
	}
	if md.ConnectedFloor, err = r.boolean(); err != nil {
		return err
	}
	if md.LeafRoomCount, err = r.i32(); err != nil {
		return err
	}
	if md.EntranceRoomCount, err = r.i32(); err != nil {
		return err
	}
	if md.ExitRoomCount, err = r.i32(); err != nil {
		return err
	}
	if md.BossRoomCount, err = r.i32(); err != nil {
		return err
	}
	if md.TreasureRoomCount, err = r.i32(); err != nil {
		return err
	}
	if md.ShopRoomCount, err = r.i32(); err != nil {
		return err
	}
	if md.EntranceExitDistance, err = r.i32(); err != nil {
		return err
	}
	if md.PrimaryEntranceOpeningID, err = r.i32(); err != nil {
		return err
	}
	if md.PrimaryExitOpeningID, err = r.i32(); err != nil {
		return err
	}
	return nil
}
