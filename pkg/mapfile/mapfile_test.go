package mapfile

import (
	"testing"

	"github.com/dshills/dungeoneer/pkg/algorithm"
	"github.com/dshills/dungeoneer/pkg/edgeopen"
	"github.com/dshills/dungeoneer/pkg/genstatus"
	"github.com/dshills/dungeoneer/pkg/metadata"
	"github.com/dshills/dungeoneer/pkg/request"
	"github.com/dshills/dungeoneer/pkg/rng"
	"github.com/dshills/dungeoneer/pkg/tilemap"
)

func genFullMap(t *testing.T) *tilemap.Map {
	t.Helper()
	req := request.New(48, 32, 1234, request.BSP)
	req.Params.BSP = &request.BSPParams{
		MinRooms: 6, MaxRooms: 6, RoomMinSize: 4, RoomMaxSize: 9, MaxPartitionAttempts: 64,
	}
	req.EdgeOpenings = []request.EdgeOpeningSpec{
		{Side: request.Top, Start: 2, End: 4, Role: request.RoleEntrance},
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	m, err := algorithm.Generate(req, rng.New(req.Seed))
	if err != nil {
		t.Fatalf("unexpected generation error: %v", err)
	}

	openings, entrance, exit, err := edgeopen.Apply(m, req.EdgeOpenings)
	if err != nil {
		t.Fatalf("unexpected edge-opening error: %v", err)
	}
	m.Metadata.EdgeOpenings = openings
	m.Metadata.PrimaryEntranceOpeningID = entrance
	m.Metadata.PrimaryExitOpeningID = exit

	metadata.Compute(m)
	m.Metadata.GenerationRequest = req

	return m
}

func TestSaveLoad_RoundTripsTileForTileAndFieldForField(t *testing.T) {
	m1 := genFullMap(t)

	data, err := Save(m1)
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	m2, err := Load(data)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if m2.Width != m1.Width || m2.Height != m1.Height {
		t.Fatalf("dimensions mismatch: got %dx%d, want %dx%d", m2.Width, m2.Height, m1.Width, m1.Height)
	}
	if len(m2.Tiles) != len(m1.Tiles) {
		t.Fatalf("tile count mismatch: got %d, want %d", len(m2.Tiles), len(m1.Tiles))
	}
	for i := range m1.Tiles {
		if m1.Tiles[i] != m2.Tiles[i] {
			t.Fatalf("tile %d mismatch: got %v, want %v", i, m2.Tiles[i], m1.Tiles[i])
		}
	}

	if len(m1.Metadata.Rooms) != len(m2.Metadata.Rooms) {
		t.Fatalf("room count mismatch: got %d, want %d", len(m2.Metadata.Rooms), len(m1.Metadata.Rooms))
	}
	for i := range m1.Metadata.Rooms {
		a, b := m1.Metadata.Rooms[i], m2.Metadata.Rooms[i]
		if a.ID != b.ID || a.Bounds != b.Bounds || a.Flags != b.Flags || a.Role != b.Role || a.TypeID != b.TypeID {
			t.Fatalf("room %d mismatch: got %+v, want %+v", i, b, a)
		}
	}

	if len(m1.Metadata.Corridors) != len(m2.Metadata.Corridors) {
		t.Fatalf("corridor count mismatch: got %d, want %d", len(m2.Metadata.Corridors), len(m1.Metadata.Corridors))
	}
	for i := range m1.Metadata.Corridors {
		if m1.Metadata.Corridors[i] != m2.Metadata.Corridors[i] {
			t.Fatalf("corridor %d mismatch: got %+v, want %+v", i, m2.Metadata.Corridors[i], m1.Metadata.Corridors[i])
		}
	}

	if len(m1.Metadata.EdgeOpenings) != len(m2.Metadata.EdgeOpenings) {
		t.Fatalf("edge opening count mismatch: got %d, want %d", len(m2.Metadata.EdgeOpenings), len(m1.Metadata.EdgeOpenings))
	}
	for i := range m1.Metadata.EdgeOpenings {
		if m1.Metadata.EdgeOpenings[i] != m2.Metadata.EdgeOpenings[i] {
			t.Fatalf("edge opening %d mismatch: got %+v, want %+v", i, m2.Metadata.EdgeOpenings[i], m1.Metadata.EdgeOpenings[i])
		}
	}

	if m2.Metadata.WalkableTileCount != m1.Metadata.WalkableTileCount {
		t.Fatalf("WalkableTileCount = %d, want %d", m2.Metadata.WalkableTileCount, m1.Metadata.WalkableTileCount)
	}
	if m2.Metadata.ConnectedComponentCount != m1.Metadata.ConnectedComponentCount {
		t.Fatalf("ConnectedComponentCount = %d, want %d", m2.Metadata.ConnectedComponentCount, m1.Metadata.ConnectedComponentCount)
	}
	if m2.Metadata.ConnectedFloor != m1.Metadata.ConnectedFloor {
		t.Fatalf("ConnectedFloor = %v, want %v", m2.Metadata.ConnectedFloor, m1.Metadata.ConnectedFloor)
	}
	if m2.Metadata.PrimaryEntranceOpeningID != m1.Metadata.PrimaryEntranceOpeningID {
		t.Fatalf("PrimaryEntranceOpeningID = %d, want %d", m2.Metadata.PrimaryEntranceOpeningID, m1.Metadata.PrimaryEntranceOpeningID)
	}
	if m2.Metadata.EntranceExitDistance != m1.Metadata.EntranceExitDistance {
		t.Fatalf("EntranceExitDistance = %d, want %d", m2.Metadata.EntranceExitDistance, m1.Metadata.EntranceExitDistance)
	}

	if m2.Metadata.GenerationRequest == nil {
		t.Fatal("expected GenerationRequest snapshot to survive round trip")
	}
	if m2.Metadata.GenerationRequest.Seed != m1.Metadata.GenerationRequest.Seed ||
		m2.Metadata.GenerationRequest.Algorithm != m1.Metadata.GenerationRequest.Algorithm {
		t.Fatalf("GenerationRequest snapshot mismatch: got %+v, want %+v", m2.Metadata.GenerationRequest, m1.Metadata.GenerationRequest)
	}
}

func TestLoad_RejectsCorruptedMagic(t *testing.T) {
	m1 := genFullMap(t)
	data, err := Save(m1)
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	data[0] = 'X'

	_, err = Load(data)
	if err == nil {
		t.Fatal("expected an error for corrupted magic")
	}
	var ge *genstatus.GenError
	if !asGenError(err, &ge) || ge.Status != genstatus.UnsupportedFormat {
		t.Fatalf("expected UnsupportedFormat, got %v", err)
	}
}

func TestLoad_RejectsTruncatedBuffer(t *testing.T) {
	m1 := genFullMap(t)
	data, err := Save(m1)
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	truncated := data[:len(data)-(len(data)/3)]
	_, err = Load(truncated)
	if err == nil {
		t.Fatal("expected an error for truncated buffer")
	}
	var ge *genstatus.GenError
	if !asGenError(err, &ge) || ge.Status != genstatus.IOError {
		t.Fatalf("expected IOError, got %v", err)
	}
}

func asGenError(err error, target **genstatus.GenError) bool {
	ge, ok := err.(*genstatus.GenError)
	if !ok {
		return false
	}
	*target = ge
	return true
}
