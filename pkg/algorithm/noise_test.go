package algorithm

import (
	"testing"

	"github.com/dshills/dungeoneer/pkg/request"
	"github.com/dshills/dungeoneer/pkg/rng"
)

func TestGenerate_ValueNoise_ProducesConnectedField(t *testing.T) {
	req := request.New(64, 48, 3, request.ValueNoise)
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	m, err := Generate(req, rng.New(req.Seed))
	if err != nil {
		t.Fatalf("unexpected generation error: %v", err)
	}
	if floorCount(m) == 0 {
		t.Fatal("expected nonzero floor tiles")
	}
	if len(interiorComponents(m)) != 1 {
		t.Fatal("EnsureConnected default should leave one component")
	}
}

func TestGenerate_SimplexNoise_ProducesConnectedField(t *testing.T) {
	req := request.New(64, 48, 9, request.SimplexNoise)
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	m, err := Generate(req, rng.New(req.Seed))
	if err != nil {
		t.Fatalf("unexpected generation error: %v", err)
	}
	if floorCount(m) == 0 {
		t.Fatal("expected nonzero floor tiles")
	}
}

func TestGenerate_ValueNoise_RejectsOversizedFeatureSize(t *testing.T) {
	req := request.New(64, 48, 3, request.ValueNoise)
	req.Params.ValueNoise = &request.NoiseParams{
		Octaves: 4, PersistencePercent: 50, FeatureSize: 65, FloorThresholdPercent: 45, EnsureConnected: true,
	}
	if err := req.Validate(); err == nil {
		t.Fatal("expected validation error for value-noise featureSize above the 64 bound")
	}
}

func TestGenerate_SimplexNoise_Deterministic(t *testing.T) {
	req := request.New(48, 36, 123, request.SimplexNoise)
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
