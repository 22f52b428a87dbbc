package postprocess

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/dshills/dungeoneer/pkg/algorithm"
	"github.com/dshills/dungeoneer/pkg/metadata"
	"github.com/dshills/dungeoneer/pkg/request"
	"github.com/dshills/dungeoneer/pkg/rng"
	"github.com/dshills/dungeoneer/pkg/tilemap"
)

func genPropertyMap(seed uint64) (*tilemap.Map, error) {
	req := request.New(50, 34, seed, request.BSP)
	return algorithm.Generate(req, rng.New(req.Seed))
}

// TestProperty_ScaleMultipliesWalkableCountBySquareOfFactor verifies that
// scaling by any factor in its valid range multiplies the walkable tile
// count by the square of that factor, for any BSP map and any seed.
func TestProperty_ScaleMultipliesWalkableCountBySquareOfFactor(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		factor := rapid.IntRange(1, 4).Draw(t, "factor")

		m, err := genPropertyMap(seed)
		if err != nil {
			t.Fatalf("genPropertyMap returned error: %v", err)
		}
		before, _ := m.RecountWalkable()

		cfg := request.PostProcessConfig{Enabled: true, Steps: []request.ProcessStep{
			{Type: request.StepScale, Scale: &request.ScaleParams{Factor: factor}},
		}}
		if err := Run(m, cfg, rng.New(seed)); err != nil {
			t.Fatalf("Run returned error: %v", err)
		}

		after, _ := m.RecountWalkable()
		want := before * factor * factor
		if after != want {
			t.Fatalf("walkable count after scale by %d = %d, want %d", factor, after, want)
		}
	})
}

// TestProperty_CorridorRoughenNeverDisconnectsTheFloor verifies that
// corridor roughening, for any strength/depth combination in its valid
// range, never increases the number of connected components.
func TestProperty_CorridorRoughenNeverDisconnectsTheFloor(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		strength := rapid.IntRange(0, 100).Draw(t, "strength")
		maxDepth := rapid.IntRange(1, 6).Draw(t, "maxDepth")

		m, err := genPropertyMap(seed)
		if err != nil {
			t.Fatalf("genPropertyMap returned error: %v", err)
		}
		componentsBefore, _ := metadata.Connectivity(m)

		cfg := request.PostProcessConfig{Enabled: true, Steps: []request.ProcessStep{
			{Type: request.StepCorridorRoughen, CorridorRoughen: &request.CorridorRoughenParams{
				Strength: strength, MaxDepth: maxDepth, Mode: request.Organic,
			}},
		}}
		if err := Run(m, cfg, rng.New(seed+1)); err != nil {
			t.Fatalf("Run returned error: %v", err)
		}

		componentsAfter, _ := metadata.Connectivity(m)
		if componentsAfter > componentsBefore {
			t.Fatalf("corridor roughen increased component count: %d -> %d", componentsBefore, componentsAfter)
		}
	})
}
