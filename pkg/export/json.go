package export

import (
	"encoding/json"
	"os"

	"github.com/dshills/dungeoneer/pkg/request"
	"github.com/dshills/dungeoneer/pkg/tilemap"
)

// jsonFormat is the format tag stamped into every JSON export, read back
// by any tool consuming these files to confirm the schema version.
const jsonFormat = "dungeoneer_png_json_v1"

// roomTypePaletteEntry pairs a configured room type with the color its
// PNG overlay uses.
type roomTypePaletteEntry struct {
	TypeID uint32 `json:"type_id"`
	Color  string `json:"color"`
}

// summaryMetadata is the scalar subset of tilemap.Metadata: everything
// that isn't already a top-level array in the export document.
type summaryMetadata struct {
	Width                   int                     `json:"width"`
	Height                  int                     `json:"height"`
	GenerationClass         request.GenerationClass `json:"generation_class"`
	WalkableTileCount       int                     `json:"walkable_tile_count"`
	WallTileCount           int                     `json:"wall_tile_count"`
	ConnectedComponentCount int                     `json:"connected_component_count"`
	LargestComponentSize    int                     `json:"largest_component_size"`
	ConnectedFloor          bool                    `json:"connected_floor"`
	LeafRoomCount           int                     `json:"leaf_room_count"`
	EntranceRoomCount       int                     `json:"entrance_room_count"`
	ExitRoomCount           int                     `json:"exit_room_count"`
	BossRoomCount           int                     `json:"boss_room_count"`
	TreasureRoomCount       int                     `json:"treasure_room_count"`
	ShopRoomCount           int                     `json:"shop_room_count"`
	EntranceExitDistance    int                     `json:"entrance_exit_distance"`
	PrimaryEntranceOpening  int                     `json:"primary_entrance_opening_id"`
	PrimaryExitOpening      int                     `json:"primary_exit_opening_id"`
}

// document is the root of the dungeoneer_png_json_v1 export schema.
type document struct {
	Format              string                 `json:"format"`
	Legend              map[string]string      `json:"legend"`
	RoomTypePalette     []roomTypePaletteEntry `json:"room_type_palette"`
	ConfiguredRoomTypes []request.RoomTypeDef  `json:"configured_room_types"`
	Metadata            summaryMetadata        `json:"metadata"`
	Rooms               []tilemap.Room         `json:"rooms"`
	Corridors           []tilemap.Corridor     `json:"corridors"`
	EdgeOpenings        []tilemap.EdgeOpening  `json:"edge_openings"`
	GenerationRequest   *request.Request       `json:"generation_request"`
	TypedRoomCount      int                    `json:"typed_room_count"`
	EdgeOpeningCount    int                    `json:"edge_opening_count"`
}

// buildDocument assembles the export schema from a generated map. m must
// have metadata attached (the output of the derived-metadata pass).
func buildDocument(m *tilemap.Map) (*document, error) {
	if m == nil || m.Metadata == nil {
		return nil, errNilMetadata
	}
	md := m.Metadata

	var roomTypes []request.RoomTypeDef
	if md.GenerationRequest != nil {
		roomTypes = md.GenerationRequest.RoomTypes.Definitions
	}

	palette := make([]roomTypePaletteEntry, 0, len(roomTypes))
	for _, def := range roomTypes {
		palette = append(palette, roomTypePaletteEntry{TypeID: def.TypeID, Color: roomTypeColor(def.TypeID)})
	}

	typedRooms := 0
	for _, r := range md.Rooms {
		if r.TypeID != request.UnassignedType {
			typedRooms++
		}
	}

	doc := &document{
		Format:              jsonFormat,
		Legend:              tileLegend(),
		RoomTypePalette:     palette,
		ConfiguredRoomTypes: roomTypes,
		Metadata: summaryMetadata{
			Width:                   m.Width,
			Height:                  m.Height,
			GenerationClass:         md.GenerationClass,
			WalkableTileCount:       md.WalkableTileCount,
			WallTileCount:           md.WallTileCount,
			ConnectedComponentCount: md.ConnectedComponentCount,
			LargestComponentSize:    md.LargestComponentSize,
			ConnectedFloor:          md.ConnectedFloor,
			LeafRoomCount:           md.LeafRoomCount,
			EntranceRoomCount:       md.EntranceRoomCount,
			ExitRoomCount:           md.ExitRoomCount,
			BossRoomCount:           md.BossRoomCount,
			TreasureRoomCount:       md.TreasureRoomCount,
			ShopRoomCount:           md.ShopRoomCount,
			EntranceExitDistance:    md.EntranceExitDistance,
			PrimaryEntranceOpening:  md.PrimaryEntranceOpeningID,
			PrimaryExitOpening:      md.PrimaryExitOpeningID,
		},
		Rooms:             md.Rooms,
		Corridors:         md.Corridors,
		EdgeOpenings:      md.EdgeOpenings,
		GenerationRequest: md.GenerationRequest,
		TypedRoomCount:    typedRooms,
		EdgeOpeningCount:  len(md.EdgeOpenings),
	}
	return doc, nil
}

// ExportJSON serializes m to the dungeoneer_png_json_v1 schema with
// 2-space indentation.
func ExportJSON(m *tilemap.Map) ([]byte, error) {
	doc, err := buildDocument(m)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ExportJSONCompact serializes m to the dungeoneer_png_json_v1 schema
// without indentation.
func ExportJSONCompact(m *tilemap.Map) ([]byte, error) {
	doc, err := buildDocument(m)
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// SaveJSONToFile exports m to an indented JSON file.
func SaveJSONToFile(m *tilemap.Map, filepath string) error {
	data, err := ExportJSON(m)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

// SaveJSONCompactToFile exports m to a compact JSON file.
func SaveJSONCompactToFile(m *tilemap.Map, filepath string) error {
	data, err := ExportJSONCompact(m)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}
