package edgeopen

import (
	"testing"

	"github.com/dshills/dungeoneer/pkg/request"
	"github.com/dshills/dungeoneer/pkg/tilemap"
)

func TestApply_NoSpecsLeavesBorderWalled(t *testing.T) {
	m := tilemap.New(10, 10)
	openings, entrance, exit, err := Apply(m, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(openings) != 0 {
		t.Fatalf("expected no openings, got %d", len(openings))
	}
	if entrance != -1 || exit != -1 {
		t.Fatalf("expected no primary entrance/exit, got %d/%d", entrance, exit)
	}
	for x := 0; x < m.Width; x++ {
		if m.At(x, 0) != tilemap.Wall || m.At(x, m.Height-1) != tilemap.Wall {
			t.Fatal("top/bottom border is not fully walled")
		}
	}
	for y := 0; y < m.Height; y++ {
		if m.At(0, y) != tilemap.Wall || m.At(m.Width-1, y) != tilemap.Wall {
			t.Fatal("left/right border is not fully walled")
		}
	}
}

func TestApply_CarvesTopOpeningAndInwardCell(t *testing.T) {
	m := tilemap.New(10, 10)
	specs := []request.EdgeOpeningSpec{{Side: request.Top, Start: 2, End: 4, Role: request.RoleEntrance}}
	openings, entrance, exit, err := Apply(m, specs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(openings) != 1 {
		t.Fatalf("expected 1 opening, got %d", len(openings))
	}
	if entrance != 0 {
		t.Fatalf("expected primary entrance id 0, got %d", entrance)
	}
	if exit != -1 {
		t.Fatalf("expected no exit, got %d", exit)
	}
	for x := 2; x <= 4; x++ {
		if m.At(x, 0) != tilemap.Floor {
			t.Fatalf("expected border cell (%d,0) carved to Floor", x)
		}
	}
	if m.At(2, 1) != tilemap.Floor {
		t.Fatal("expected inward anchor cell carved to Floor")
	}
	o := openings[0]
	if o.Length != 3 {
		t.Fatalf("Length = %d, want 3", o.Length)
	}
	if o.Normal != tilemap.North {
		t.Fatalf("Normal = %+v, want North", o.Normal)
	}
}

func TestApply_AssignsIdsInInsertionOrder(t *testing.T) {
	m := tilemap.New(20, 20)
	specs := []request.EdgeOpeningSpec{
		{Side: request.Top, Start: 1, End: 1, Role: request.RoleNone},
		{Side: request.Bottom, Start: 1, End: 1, Role: request.RoleExit},
		{Side: request.Left, Start: 1, End: 1, Role: request.RoleEntrance},
	}
	openings, entrance, exit, err := Apply(m, specs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, o := range openings {
		if o.ID != i {
			t.Fatalf("opening %d has id %d", i, o.ID)
		}
	}
	if entrance != 2 {
		t.Fatalf("expected primary entrance id 2, got %d", entrance)
	}
	if exit != 1 {
		t.Fatalf("expected primary exit id 1, got %d", exit)
	}
}

func TestApply_RejectsOutOfRangeSpec(t *testing.T) {
	m := tilemap.New(10, 10)
	specs := []request.EdgeOpeningSpec{{Side: request.Top, Start: 5, End: 50}}
	if _, _, _, err := Apply(m, specs); err == nil {
		t.Fatal("expected error for out-of-range spec")
	}
}
