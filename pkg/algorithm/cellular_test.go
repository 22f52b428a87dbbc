package algorithm

import (
	"testing"

	"github.com/dshills/dungeoneer/pkg/request"
	"github.com/dshills/dungeoneer/pkg/rng"
)

func TestGenerate_CellularAutomata_ProducesConnectedCave(t *testing.T) {
	req := request.New(80, 50, 17, request.CellularAutomata)
	req.Params.CellularAutomata = &request.CellularAutomataParams{
		InitialWallPercent: 45, SimulationSteps: 5, WallThreshold: 5, EnsureConnected: true,
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	m, err := Generate(req, rng.New(req.Seed))
	if err != nil {
		t.Fatalf("unexpected generation error: %v", err)
	}
	if len(interiorComponents(m)) != 1 {
		t.Fatal("EnsureConnected=true should leave exactly one component")
	}
	if floorCount(m) == 0 {
		t.Fatal("expected nonzero floor tiles")
	}
}

func TestGenerate_CellularAutomata_Deterministic(t *testing.T) {
	req := request.New(40, 30, 55, request.CellularAutomata)
	m1, err := Generate(req, rng.New(req.Seed))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m2, err := Generate(req, rng.New(req.Seed))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range m1.Tiles {
		if m1.Tiles[i] != m2.Tiles[i] {
			t.Fatalf("tile %d differs between identical-seed runs", i)
		}
	}
}
