package export

import (
	"bytes"
	"encoding/json"
	"image/png"
	"testing"

	"github.com/dshills/dungeoneer/pkg/algorithm"
	"github.com/dshills/dungeoneer/pkg/edgeopen"
	"github.com/dshills/dungeoneer/pkg/metadata"
	"github.com/dshills/dungeoneer/pkg/request"
	"github.com/dshills/dungeoneer/pkg/rng"
	"github.com/dshills/dungeoneer/pkg/tilemap"
)

func genExportMap(t *testing.T) *tilemap.Map {
	t.Helper()
	req := request.New(40, 24, 99, request.BSP)
	req.Params.BSP = &request.BSPParams{
		MinRooms: 5, MaxRooms: 5, RoomMinSize: 4, RoomMaxSize: 8, MaxPartitionAttempts: 64,
	}
	req.RoomTypes = request.RoomTypeConfig{
		Definitions: []request.RoomTypeDef{
			{TypeID: 1, Enabled: true, MinCount: 1, MaxCount: 1, TargetCount: 1, Constraints: request.DefaultRoomTypeConstraints()},
		},
		Policy: request.RoomTypePolicy{AllowUntypedRooms: true},
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	m, err := algorithm.Generate(req, rng.New(req.Seed))
	if err != nil {
		t.Fatalf("unexpected generation error: %v", err)
	}
	openings, entrance, exit, err := edgeopen.Apply(m, nil)
	if err != nil {
		t.Fatalf("unexpected edge-opening error: %v", err)
	}
	m.Metadata.EdgeOpenings = openings
	m.Metadata.PrimaryEntranceOpeningID = entrance
	m.Metadata.PrimaryExitOpeningID = exit
	metadata.Compute(m)
	if len(m.Metadata.Rooms) > 0 {
		m.Metadata.Rooms[0].TypeID = 1
	}
	m.Metadata.GenerationRequest = req
	return m
}

func TestExportPNG_ProducesDecodableImageOfMapDimensions(t *testing.T) {
	m := genExportMap(t)
	data, err := ExportPNG(m)
	if err != nil {
		t.Fatalf("ExportPNG returned error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a decodable PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != m.Width || bounds.Dy() != m.Height {
		t.Fatalf("image size = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), m.Width, m.Height)
	}
}

func TestExportPNG_NilMapErrors(t *testing.T) {
	if _, err := ExportPNG(nil); err == nil {
		t.Fatal("expected an error for a nil map")
	}
}

func TestExportJSON_MatchesSchemaAndCounts(t *testing.T) {
	m := genExportMap(t)
	data, err := ExportJSON(m)
	if err != nil {
		t.Fatalf("ExportJSON returned error: %v", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc["format"] != jsonFormat {
		t.Fatalf("format = %v, want %v", doc["format"], jsonFormat)
	}
	rooms, ok := doc["rooms"].([]interface{})
	if !ok || len(rooms) != len(m.Metadata.Rooms) {
		t.Fatalf("rooms array length mismatch: got %v, want %d", doc["rooms"], len(m.Metadata.Rooms))
	}
	if int(doc["typed_room_count"].(float64)) != 1 {
		t.Fatalf("typed_room_count = %v, want 1", doc["typed_room_count"])
	}
	palette, ok := doc["room_type_palette"].([]interface{})
	if !ok || len(palette) != 1 {
		t.Fatalf("expected one room_type_palette entry, got %v", doc["room_type_palette"])
	}
}

func TestExportJSONCompact_IsValidAndSmallerThanIndented(t *testing.T) {
	m := genExportMap(t)
	indented, err := ExportJSON(m)
	if err != nil {
		t.Fatalf("ExportJSON returned error: %v", err)
	}
	compact, err := ExportJSONCompact(m)
	if err != nil {
		t.Fatalf("ExportJSONCompact returned error: %v", err)
	}
	if len(compact) >= len(indented) {
		t.Fatalf("compact output (%d bytes) should be smaller than indented (%d bytes)", len(compact), len(indented))
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(compact, &doc); err != nil {
		t.Fatalf("compact output is not valid JSON: %v", err)
	}
}

func TestExportSVG_ContainsOneRectPerRoom(t *testing.T) {
	m := genExportMap(t)
	data, err := ExportSVG(m, DefaultSVGOptions())
	if err != nil {
		t.Fatalf("ExportSVG returned error: %v", err)
	}
	got := bytes.Count(data, []byte("<rect"))
	// one background rect + one legend-panel rect + one legend swatch per
	// role entry (6) + one rect per room
	want := 1 + 1 + 6 + len(m.Metadata.Rooms)
	if got != want {
		t.Fatalf("<rect> count = %d, want %d", got, want)
	}
}

func TestExportTMJ_TileLayerMatchesGridAndRoomsBecomeObjects(t *testing.T) {
	m := genExportMap(t)
	tmjMap, err := ExportTMJ(m, false)
	if err != nil {
		t.Fatalf("ExportTMJ returned error: %v", err)
	}
	if tmjMap.Width != m.Width || tmjMap.Height != m.Height {
		t.Fatalf("TMJ dimensions = %dx%d, want %dx%d", tmjMap.Width, tmjMap.Height, m.Width, m.Height)
	}
	if len(tmjMap.Layers) != 2 {
		t.Fatalf("expected 2 layers (tiles+rooms), got %d", len(tmjMap.Layers))
	}

	tileLayer := tmjMap.Layers[0]
	gids, ok := tileLayer.Data.([]uint32)
	if !ok {
		t.Fatalf("tile layer data is not []uint32: %T", tileLayer.Data)
	}
	if len(gids) != len(m.Tiles) {
		t.Fatalf("tile layer length = %d, want %d", len(gids), len(m.Tiles))
	}
	for i, tile := range m.Tiles {
		if gids[i] != tileGID(tile) {
			t.Fatalf("gid %d = %d, want %d", i, gids[i], tileGID(tile))
		}
	}

	roomLayer := tmjMap.Layers[1]
	if len(roomLayer.Objects) != len(m.Metadata.Rooms) {
		t.Fatalf("room object count = %d, want %d", len(roomLayer.Objects), len(m.Metadata.Rooms))
	}
}

func TestExportTMJ_CompressionSwapsEncoding(t *testing.T) {
	m := genExportMap(t)
	tmjMap, err := ExportTMJ(m, true)
	if err != nil {
		t.Fatalf("ExportTMJ returned error: %v", err)
	}
	tileLayer := tmjMap.Layers[0]
	if tileLayer.Encoding != "base64" || tileLayer.Compression != "gzip" {
		t.Fatalf("expected base64/gzip layer, got encoding=%q compression=%q", tileLayer.Encoding, tileLayer.Compression)
	}
	if _, ok := tileLayer.Data.(string); !ok {
		t.Fatalf("compressed layer data should be a base64 string, got %T", tileLayer.Data)
	}
}

func TestMarshalTMJ_ProducesValidJSON(t *testing.T) {
	m := genExportMap(t)
	tmjMap, err := ExportTMJ(m, false)
	if err != nil {
		t.Fatalf("ExportTMJ returned error: %v", err)
	}
	data, err := MarshalTMJ(tmjMap)
	if err != nil {
		t.Fatalf("MarshalTMJ returned error: %v", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
}
