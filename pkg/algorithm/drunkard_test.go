package algorithm

import (
	"testing"

	"github.com/dshills/dungeoneer/pkg/request"
	"github.com/dshills/dungeoneer/pkg/rng"
)

func TestGenerate_Drunkard_ScenarioIsConnectedWithNoRooms(t *testing.T) {
	req := request.New(96, 54, 4242, request.Drunkard)
	req.Params.Drunkard = &request.DrunkardParams{TargetFloorPercent: 40, WigglePercent: 70, MaxSteps: 200000}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	m, err := Generate(req, rng.New(req.Seed))
	if err != nil {
		t.Fatalf("unexpected generation error: %v", err)
	}
	if len(m.Metadata.Rooms) != 0 {
		t.Fatalf("room_count = %d, want 0", len(m.Metadata.Rooms))
	}
	if len(interiorComponents(m)) != 1 {
		t.Fatal("expected connected floor")
	}
	if floorCount(m) == 0 {
		t.Fatal("expected walkable tiles")
	}
}

func TestGenerate_Drunkard_ApproachesTargetFloorPercent(t *testing.T) {
	req := request.New(60, 40, 1, request.Drunkard)
	req.Params.Drunkard = &request.DrunkardParams{TargetFloorPercent: 30, WigglePercent: 40, MaxSteps: 200000}
	m, err := Generate(req, rng.New(req.Seed))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	interior := (m.Width - 2) * (m.Height - 2)
	got := floorCount(m)
	if got < interior*20/100 {
		t.Fatalf("floor count %d too far below target (interior=%d)", got, interior)
	}
}
