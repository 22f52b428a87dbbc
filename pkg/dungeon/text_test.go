package dungeon

import (
	"context"
	"strings"
	"testing"

	"github.com/dshills/dungeoneer/pkg/tilemap"
)

func TestRenderText_ProducesOneLinePerRowOfCorrectWidth(t *testing.T) {
	req := bspRequest(99)
	m, err := Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	out := RenderText(m)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != m.Height {
		t.Fatalf("line count = %d, want %d", len(lines), m.Height)
	}
	for i, line := range lines {
		if len([]rune(line)) != m.Width {
			t.Fatalf("line %d width = %d, want %d", i, len([]rune(line)), m.Width)
		}
	}
}

func TestRenderText_UsesFixedGlyphLegend(t *testing.T) {
	req := bspRequest(99)
	m, err := Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	out := RenderText(m)
	for _, r := range out {
		switch r {
		case ' ', '#', '.', '+', '\n':
		default:
			t.Fatalf("unexpected glyph %q in rendered output", r)
		}
	}
}

func TestRenderStats_ReportsRoomAndConnectivityCounts(t *testing.T) {
	req := bspRequest(99)
	m, err := Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	stats := RenderStats(m)
	if !strings.Contains(stats, "Rooms:") {
		t.Fatalf("expected stats to mention room count, got:\n%s", stats)
	}
	if !strings.Contains(stats, "Connected components:") {
		t.Fatalf("expected stats to mention connectivity, got:\n%s", stats)
	}
}

func TestRenderStats_HandlesMapWithoutMetadata(t *testing.T) {
	m := tilemap.New(8, 8)
	stats := RenderStats(m)
	if !strings.Contains(stats, "no metadata") {
		t.Fatalf("expected a no-metadata notice, got:\n%s", stats)
	}
}
