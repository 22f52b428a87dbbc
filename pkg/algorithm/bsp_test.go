package algorithm

import (
	"testing"

	"github.com/dshills/dungeoneer/pkg/request"
	"github.com/dshills/dungeoneer/pkg/rng"
)

func TestGenerate_BSP_ScenarioProducesConnectedLayout(t *testing.T) {
	req := request.New(96, 54, 42, request.BSP)
	req.Params.BSP = &request.BSPParams{
		MinRooms: 10, MaxRooms: 10, RoomMinSize: 4, RoomMaxSize: 11, MaxPartitionAttempts: 64,
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
	if got := len(m.Metadata.Corridors); got != 9 {
		t.Fatalf("corridor_count = %d, want 9", got)
	}
	if floorCount(m) == 0 {
		t.Fatal("expected walkable_tile_count > 0")
	}
	if len(interiorComponents(m)) != 1 {
		t.Fatalf("expected a single connected component, got %d", len(interiorComponents(m)))
	}
}

func TestGenerate_BSP_DeterministicForSameSeed(t *testing.T) {
	req := request.New(40, 30, 7, request.BSP)
	m1, err := Generate(req, rng.New(req.Seed))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m2, err := Generate(req, rng.New(req.Seed))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m1.Tiles) != len(m2.Tiles) {
		t.Fatal("tile buffer length mismatch")
	}
	for i := range m1.Tiles {
		if m1.Tiles[i] != m2.Tiles[i] {
			t.Fatalf("tile %d differs between identical-seed runs", i)
		}
	}
}

func TestGenerate_BSP_BorderStaysWalled(t *testing.T) {
	req := request.New(32, 24, 99, request.BSP)
	m, err := Generate(req, rng.New(req.Seed))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for x := 0; x < m.Width; x++ {
		if m.At(x, 0).Walkable() || m.At(x, m.Height-1).Walkable() {
			t.Fatal("BSP carved into the outer border")
		}
	}
	for y := 0; y < m.Height; y++ {
		if m.At(0, y).Walkable() || m.At(m.Width-1, y).Walkable() {
			t.Fatal("BSP carved into the outer border")
		}
	}
}
