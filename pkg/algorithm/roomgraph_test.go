package algorithm

import (
	"testing"

	"github.com/dshills/dungeoneer/pkg/request"
	"github.com/dshills/dungeoneer/pkg/rng"
)

func TestGenerate_RoomGraph_ProducesConnectedSpanningGraph(t *testing.T) {
	req := request.New(90, 60, 5, request.RoomGraph)
	req.Params.RoomGraph = &request.RoomGraphParams{
		RoomMinSize: 4, RoomMaxSize: 9, RoomCount: 10,
		MaxRoomPlacementAttempts: 300, NeighborCandidates: 3, ExtraConnectionChancePercent: 15,
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	m, err := Generate(req, rng.New(req.Seed))
	if err != nil {
		t.Fatalf("unexpected generation error: %v", err)
	}
	if len(m.Metadata.Rooms) != 10 {
		t.Fatalf("room_count = %d, want 10", len(m.Metadata.Rooms))
	}
	if len(m.Metadata.Corridors) < len(m.Metadata.Rooms)-1 {
		t.Fatalf("corridor count %d is fewer than a spanning tree needs for %d rooms", len(m.Metadata.Corridors), len(m.Metadata.Rooms))
	}
	if len(interiorComponents(m)) != 1 {
		t.Fatal("expected the MST-guaranteed connected layout")
	}
}

func TestGenerate_RoomGraph_ExtraConnectionsAddLoops(t *testing.T) {
	req := request.New(90, 60, 77, request.RoomGraph)
	req.Params.RoomGraph = &request.RoomGraphParams{
		RoomMinSize: 4, RoomMaxSize: 8, RoomCount: 12,
		MaxRoomPlacementAttempts: 300, NeighborCandidates: 4, ExtraConnectionChancePercent: 100,
	}
	m, err := Generate(req, rng.New(req.Seed))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Metadata.Corridors) <= len(m.Metadata.Rooms)-1 {
		t.Fatalf("expected extra loop edges with 100%% extra-connection chance, got %d corridors for %d rooms", len(m.Metadata.Corridors), len(m.Metadata.Rooms))
	}
}
