package dungeon

import (
	"context"
	"testing"

	"pgregory.net/rapid"

	"github.com/dshills/dungeoneer/pkg/request"
)

// TestProperty_GenerateIsDeterministic checks that any valid request, run
// twice with identical fields, produces tile-for-tile identical maps.
func TestProperty_GenerateIsDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		width := rapid.IntRange(8, 64).Draw(t, "width")
		height := rapid.IntRange(8, 64).Draw(t, "height")
		algo := request.BSP
		if rapid.Bool().Draw(t, "useDrunkard") {
			algo = request.Drunkard
		}

		req1 := request.New(width, height, seed, algo)
		req2 := request.New(width, height, seed, algo)

		m1, err1 := Generate(context.Background(), req1)
		m2, err2 := Generate(context.Background(), req2)

		if (err1 == nil) != (err2 == nil) {
			t.Fatalf("error mismatch across identical requests: %v vs %v", err1, err2)
		}
		if err1 != nil {
			return
		}
		if len(m1.Tiles) != len(m2.Tiles) {
			t.Fatalf("tile count mismatch: %d vs %d", len(m1.Tiles), len(m2.Tiles))
		}
		for i := range m1.Tiles {
			if m1.Tiles[i] != m2.Tiles[i] {
				t.Fatalf("tile %d differs between identical requests: %v vs %v", i, m1.Tiles[i], m2.Tiles[i])
			}
		}
	})
}

// TestProperty_GenerateMatchesRequestedSize checks that any
// successful generation reports metadata whose size matches the request,
// regardless of seed, dimensions or algorithm.
func TestProperty_GenerateMatchesRequestedSize(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		width := rapid.IntRange(8, 48).Draw(t, "width")
		height := rapid.IntRange(8, 48).Draw(t, "height")
		algo := request.BSP
		if rapid.Bool().Draw(t, "useDrunkard") {
			algo = request.Drunkard
		}

		req := request.New(width, height, seed, algo)
		m, err := Generate(context.Background(), req)
		if err != nil {
			return
		}
		if m.Width != width || m.Height != height {
			t.Fatalf("map size = %dx%d, want %dx%d", m.Width, m.Height, width, height)
		}
		if m.Metadata == nil {
			t.Fatal("expected Metadata to be attached on a successful Generate")
		}
		if m.Metadata.GenerationRequest == nil {
			t.Fatal("expected a request snapshot to be attached")
		}
	})
}

// TestProperty_SnapshotRoundTripsRequest checks that the request snapshot
// attached to the generated map's metadata always reports the same
// algorithm, seed and dimensions the caller asked for.
func TestProperty_SnapshotRoundTripsRequest(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		width := rapid.IntRange(8, 48).Draw(t, "width")
		height := rapid.IntRange(8, 48).Draw(t, "height")
		algo := request.BSP
		if rapid.Bool().Draw(t, "useDrunkard") {
			algo = request.Drunkard
		}

		req := request.New(width, height, seed, algo)
		m, err := Generate(context.Background(), req)
		if err != nil {
			return
		}

		snap := m.Metadata.GenerationRequest
		if snap.Seed != seed || snap.Width != width || snap.Height != height || snap.Algorithm != algo {
			t.Fatalf("snapshot %+v does not match request seed=%d width=%d height=%d algo=%v",
				snap, seed, width, height, algo)
		}
	})
}
