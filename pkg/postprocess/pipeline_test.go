package postprocess

import (
	"testing"

	"github.com/dshills/dungeoneer/pkg/algorithm"
	"github.com/dshills/dungeoneer/pkg/request"
	"github.com/dshills/dungeoneer/pkg/rng"
	"github.com/dshills/dungeoneer/pkg/tilemap"
)

func genTestMap(t *testing.T, seed uint64) *tilemap.Map {
	t.Helper()
	req := request.New(60, 40, seed, request.BSP)
	m, err := algorithm.Generate(req, rng.New(req.Seed))
	if err != nil {
		t.Fatalf("unexpected generation error: %v", err)
	}
	return m
}

func TestRun_DisabledPipelineIsIdentity(t *testing.T) {
	m := genTestMap(t, 1)
	before := append([]tilemap.Tile(nil), m.Tiles...)

	cfg := request.PostProcessConfig{Enabled: false, Steps: []request.ProcessStep{
		{Type: request.StepScale, Scale: &request.ScaleParams{Factor: 2}},
	}}
	if err := Run(m, cfg, rng.New(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range before {
		if before[i] != m.Tiles[i] {
			t.Fatal("disabled pipeline mutated the map")
		}
	}
}

func TestRun_ScaleMultipliesDimensionsAndWalkableCount(t *testing.T) {
	m := genTestMap(t, 2)
	beforeWalkable, _ := m.RecountWalkable()
	beforeW, beforeH := m.Width, m.Height

	cfg := request.PostProcessConfig{Enabled: true, Steps: []request.ProcessStep{
		{Type: request.StepScale, Scale: &request.ScaleParams{Factor: 3}},
	}}
	if err := Run(m, cfg, rng.New(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Width != beforeW*3 || m.Height != beforeH*3 {
		t.Fatalf("scaled dims = %dx%d, want %dx%d", m.Width, m.Height, beforeW*3, beforeH*3)
	}
	after, _ := m.RecountWalkable()
	if after != beforeWalkable*9 {
		t.Fatalf("scaled walkable count = %d, want %d", after, beforeWalkable*9)
	}
	if len(m.Metadata.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic report, got %d", len(m.Metadata.Diagnostics))
	}
}

func TestRun_CorridorRoughenNeverReducesWalkableCount(t *testing.T) {
	m := genTestMap(t, 3)
	before, _ := m.RecountWalkable()

	cfg := request.PostProcessConfig{Enabled: true, Steps: []request.ProcessStep{
		{Type: request.StepCorridorRoughen, CorridorRoughen: &request.CorridorRoughenParams{Strength: 80, MaxDepth: 4, Mode: request.Organic}},
	}}
	if err := Run(m, cfg, rng.New(42)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after, _ := m.RecountWalkable()
	if after < before {
		t.Fatalf("corridor roughen reduced walkable count: %d -> %d", before, after)
	}
}

func TestRun_UnknownStepTypeErrors(t *testing.T) {
	m := genTestMap(t, 4)
	cfg := request.PostProcessConfig{Enabled: true, Steps: []request.ProcessStep{{Type: request.ProcessStepType(99)}}}
	if err := Run(m, cfg, rng.New(1)); err == nil {
		t.Fatal("expected error for unknown step type")
	}
}
