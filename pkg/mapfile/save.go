package mapfile

import (
	"bytes"
	"encoding/binary"

	"github.com/dshills/dungeoneer/pkg/genstatus"
	"github.com/dshills/dungeoneer/pkg/tilemap"
)

// Save serializes m to the binary map-file format.
func Save(m *tilemap.Map) ([]byte, error) {
	if m.Metadata == nil {
		return nil, genstatus.Invalid("map", "map has no metadata attached")
	}
	var algorithmID uint32
	var seed uint64
	if m.Metadata.GenerationRequest != nil {
		algorithmID = uint32(m.Metadata.GenerationRequest.Algorithm)
		seed = m.Metadata.GenerationRequest.Seed
	}

	var buf bytes.Buffer

	buf.Write(magic[:])
	writeU16(&buf, formatVersion)
	writeU32(&buf, uint32(m.Width))
	writeU32(&buf, uint32(m.Height))
	writeU32(&buf, algorithmID)
	writeU64(&buf, seed)
	writeU32(&buf, uint32(m.Metadata.GenerationClass))
	writeU32(&buf, 0) // flags, reserved

	writeTileSection(&buf, m.Tiles)
	writeRoomSection(&buf, m.Metadata.Rooms)
	writeCorridorSection(&buf, m.Metadata.Corridors)
	writeEntranceSection(&buf, m.Metadata.RoomEntrances)
	writeEdgeOpeningSection(&buf, m.Metadata.EdgeOpenings)
	writeAdjacencySection(&buf, m.Metadata.Graph)
	writeDiagnosticsSection(&buf, m.Metadata.Diagnostics)
	writeTypeQuotaSection(&buf, m.Metadata.TypeQuotas)
	writeSummarySection(&buf, m.Metadata)

	snapshot, err := marshalSnapshot(m.Metadata)
	if err != nil {
		return nil, genstatus.Wrap(genstatus.IOError, "requestSnapshot", err)
	}
	writeU32(&buf, uint32(len(snapshot)))
	buf.Write(snapshot)

	return buf.Bytes(), nil
}

func writeU16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

func writeU32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeI32(buf *bytes.Buffer, v int) { writeU32(buf, uint32(int32(v))) }

func writeU64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

func writeTileSection(buf *bytes.Buffer, tiles []tilemap.Tile) {
	writeU32(buf, uint32(len(tiles)))
	for _, t := range tiles {
		buf.WriteByte(byte(t))
	}
}

func writePoint(buf *bytes.Buffer, p tilemap.Point) {
	writeI32(buf, p.X)
	writeI32(buf, p.Y)
}

func writeRect(buf *bytes.Buffer, r tilemap.Rect) {
	writeI32(buf, r.X)
	writeI32(buf, r.Y)
	writeI32(buf, r.Width)
	writeI32(buf, r.Height)
}

func writeRoomSection(buf *bytes.Buffer, rooms []tilemap.Room) {
	writeU32(buf, uint32(len(rooms)))
	for _, r := range rooms {
		writeI32(buf, r.ID)
		writeRect(buf, r.Bounds)
		writeU32(buf, r.Flags)
		writeU32(buf, uint32(r.Role))
		writeU32(buf, r.TypeID)
	}
}

func writeCorridorSection(buf *bytes.Buffer, corridors []tilemap.Corridor) {
	writeU32(buf, uint32(len(corridors)))
	for _, c := range corridors {
		writeI32(buf, c.FromRoomID)
		writeI32(buf, c.ToRoomID)
		writeI32(buf, c.Width)
		writeI32(buf, c.Length)
	}
}

func writeEntranceSection(buf *bytes.Buffer, entrances []tilemap.RoomEntrance) {
	writeU32(buf, uint32(len(entrances)))
	for _, e := range entrances {
		writeI32(buf, e.RoomID)
		writePoint(buf, e.RoomTile)
		writePoint(buf, e.CorridorTile)
		writePoint(buf, e.Normal)
	}
}

func writeEdgeOpeningSection(buf *bytes.Buffer, openings []tilemap.EdgeOpening) {
	writeU32(buf, uint32(len(openings)))
	for _, o := range openings {
		writeI32(buf, o.ID)
		writeU32(buf, uint32(o.Side))
		writeI32(buf, o.Start)
		writeI32(buf, o.End)
		writeI32(buf, o.Length)
		writePoint(buf, o.EdgeTile)
		writePoint(buf, o.InwardTile)
		writePoint(buf, o.Normal)
		writeI32(buf, o.ComponentID)
		writeU32(buf, uint32(o.Role))
	}
}

func writeAdjacencySection(buf *bytes.Buffer, g tilemap.RoomGraph) {
	writeU32(buf, uint32(len(g.Adjacency)))
	for _, a := range g.Adjacency {
		writeI32(buf, a.Start)
		writeI32(buf, a.Count)
	}
	writeU32(buf, uint32(len(g.Neighbors)))
	for _, n := range g.Neighbors {
		writeI32(buf, n.RoomID)
		writeI32(buf, n.CorridorIndex)
	}
}

func writeDiagnosticsSection(buf *bytes.Buffer, reports []tilemap.StepReport) {
	writeU32(buf, uint32(len(reports)))
	for _, d := range reports {
		writeU32(buf, uint32(d.MethodType))
		writeI32(buf, d.WalkableBefore)
		writeI32(buf, d.WalkableAfter)
		writeI32(buf, d.ComponentsBefore)
		writeI32(buf, d.ComponentsAfter)
		writeBool(buf, d.ConnectedBefore)
		writeBool(buf, d.ConnectedAfter)
	}
}

func writeBool(buf *bytes.Buffer, b bool) {
	if b {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
}

func writeTypeQuotaSection(buf *bytes.Buffer, quotas []tilemap.TypeQuotaReport) {
	writeU32(buf, uint32(len(quotas)))
	for _, q := range quotas {
		writeU32(buf, q.TypeID)
		writeI32(buf, q.AssignedCount)
		writeBool(buf, q.MinSatisfied)
		writeBool(buf, q.MaxSatisfied)
		writeBool(buf, q.TargetSatisfied)
		writeI32(buf, q.MissCount)
	}
}

// writeSummarySection persists the scalar fields Compute derives, so
// Load does not need to re-run derivation (and, for RoomEntrances in
// particular, safely cannot: computeDoors only promotes Floor cells,
// and a reloaded map's doors are already carved).
func writeSummarySection(buf *bytes.Buffer, md *tilemap.Metadata) {
	writeI32(buf, md.WalkableTileCount)
	writeI32(buf, md.WallTileCount)
	writeI32(buf, md.ConnectedComponentCount)
	writeI32(buf, md.LargestComponentSize)
	writeBool(buf, md.ConnectedFloor)
	writeI32(buf, md.LeafRoomCount)
	writeI32(buf, md.EntranceRoomCount)
	writeI32(buf, md.ExitRoomCount)
	writeI32(buf, md.BossRoomCount)
	writeI32(buf, md.TreasureRoomCount)
	writeI32(buf, md.ShopRoomCount)
	writeI32(buf, md.EntranceExitDistance)
	writeI32(buf, md.PrimaryEntranceOpeningID)
	writeI32(buf, md.PrimaryExitOpeningID)
}
