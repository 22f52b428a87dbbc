package tilemap

import "testing"

func TestTile_Walkable(t *testing.T) {
	cases := map[Tile]bool{Void: false, Wall: false, Floor: true, Door: true}
	for tile, want := range cases {
		if got := tile.Walkable(); got != want {
			t.Errorf("%v.Walkable() = %v, want %v", tile, got, want)
		}
	}
}

func TestRect_Overlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 4, Height: 4}
	b := Rect{X: 3, Y: 3, Width: 4, Height: 4}
	c := Rect{X: 4, Y: 4, Width: 4, Height: 4}

	if !a.Overlaps(b) {
		t.Error("expected a and b to overlap")
	}
	if a.Overlaps(c) {
		t.Error("expected a and c to not overlap (adjacent, not overlapping)")
	}
}

func TestRect_Scaled(t *testing.T) {
	r := Rect{X: 1, Y: 2, Width: 3, Height: 4}
	got := r.Scaled(3)
	want := Rect{X: 3, Y: 6, Width: 9, Height: 12}
	if got != want {
		t.Errorf("Scaled(3) = %+v, want %+v", got, want)
	}
}

func TestMap_NewIsAllWall(t *testing.T) {
	m := New(10, 8)
	for _, tile := range m.Tiles {
		if tile != Wall {
			t.Fatalf("New map contains non-Wall tile %v", tile)
		}
	}
}

func TestMap_SetAndAt(t *testing.T) {
	m := New(5, 5)
	m.Set(2, 3, Floor)
	if got := m.At(2, 3); got != Floor {
		t.Fatalf("At(2,3) = %v, want Floor", got)
	}
}

func TestMap_RecountWalkable(t *testing.T) {
	m := New(4, 4)
	m.Set(1, 1, Floor)
	m.Set(2, 2, Door)
	walkable, wall := m.RecountWalkable()
	if walkable != 2 {
		t.Errorf("walkable = %d, want 2", walkable)
	}
	if wall != 14 {
		t.Errorf("wall = %d, want 14", wall)
	}
}

func TestMap_WalkableNeighborCount4(t *testing.T) {
	m := New(5, 5)
	m.Set(2, 2, Floor)
	m.Set(2, 1, Floor)
	m.Set(1, 2, Floor)
	if got := m.WalkableNeighborCount4(2, 2); got != 2 {
		t.Fatalf("WalkableNeighborCount4 = %d, want 2", got)
	}
}
