package export

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/dshills/dungeoneer/pkg/tilemap"
)

// TMJ Format Types
// Based on Tiled Map Editor JSON specification (TMJ 1.10)
// Reference: https://doc.mapeditor.org/en/stable/reference/json-map-format/

// TMJMap represents the root TMJ map structure.
type TMJMap struct {
	Type             string        `json:"type"`
	Version          string        `json:"version"`
	TiledVersion     string        `json:"tiledversion"`
	Width            int           `json:"width"`
	Height           int           `json:"height"`
	TileWidth        int           `json:"tilewidth"`
	TileHeight       int           `json:"tileheight"`
	Orientation      string        `json:"orientation"`
	RenderOrder      string        `json:"renderorder"`
	Infinite         bool          `json:"infinite"`
	NextLayerID      int           `json:"nextlayerid"`
	NextObjectID     int           `json:"nextobjectid"`
	BackgroundColor  *string       `json:"backgroundcolor,omitempty"`
	Class            string        `json:"class,omitempty"`
	CompressionLevel int           `json:"compressionlevel"`
	Layers           []TMJLayer    `json:"layers"`
	Tilesets         []TMJTileset  `json:"tilesets"`
	Properties       []TMJProperty `json:"properties,omitempty"`
}

// TMJLayer represents any layer type (tile, object, image, group).
type TMJLayer struct {
	ID         int           `json:"id"`
	Name       string        `json:"name"`
	Type       string        `json:"type"` // "tilelayer" or "objectgroup"
	Visible    bool          `json:"visible"`
	Opacity    float64       `json:"opacity"`
	X          int           `json:"x"`
	Y          int           `json:"y"`
	Width      int           `json:"width,omitempty"`
	Height     int           `json:"height,omitempty"`
	OffsetX    int           `json:"offsetx,omitempty"`
	OffsetY    int           `json:"offsety,omitempty"`
	ParallaxX  float64       `json:"parallaxx,omitempty"`
	ParallaxY  float64       `json:"parallaxy,omitempty"`
	Class      string        `json:"class,omitempty"`
	Properties []TMJProperty `json:"properties,omitempty"`

	// Tile layer specific
	Data        interface{} `json:"data,omitempty"`        // []uint32 or string (base64)
	Encoding    string      `json:"encoding,omitempty"`    // "csv" or "base64"
	Compression string      `json:"compression,omitempty"` // "" or "gzip"

	// Object layer specific
	DrawOrder string      `json:"draworder,omitempty"`
	Objects   []TMJObject `json:"objects,omitempty"`
}

// TMJObject represents an entity or collision shape.
type TMJObject struct {
	ID         int           `json:"id"`
	Name       string        `json:"name"`
	Type       string        `json:"type,omitempty"`
	Class      string        `json:"class,omitempty"`
	X          float64       `json:"x"`
	Y          float64       `json:"y"`
	Width      float64       `json:"width"`
	Height     float64       `json:"height"`
	Rotation   float64       `json:"rotation"`
	GID        uint32        `json:"gid,omitempty"`
	Visible    bool          `json:"visible"`
	Properties []TMJProperty `json:"properties,omitempty"`

	// Shape types
	Ellipse  bool       `json:"ellipse,omitempty"`
	Point    bool       `json:"point,omitempty"`
	Polygon  []TMJPoint `json:"polygon,omitempty"`
	Polyline []TMJPoint `json:"polyline,omitempty"`
}

// TMJPoint represents a coordinate in a polygon or polyline.
type TMJPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TMJTileset references a collection of tiles.
type TMJTileset struct {
	FirstGID         uint32        `json:"firstgid"`
	Source           string        `json:"source,omitempty"` // For external tilesets
	Name             string        `json:"name,omitempty"`
	Class            string        `json:"class,omitempty"`
	TileWidth        int           `json:"tilewidth,omitempty"`
	TileHeight       int           `json:"tileheight,omitempty"`
	Spacing          int           `json:"spacing,omitempty"`
	Margin           int           `json:"margin,omitempty"`
	TileCount        int           `json:"tilecount,omitempty"`
	Columns          int           `json:"columns,omitempty"`
	Image            string        `json:"image,omitempty"`
	ImageWidth       int           `json:"imagewidth,omitempty"`
	ImageHeight      int           `json:"imageheight,omitempty"`
	TransparentColor *string       `json:"transparentcolor,omitempty"`
	Properties       []TMJProperty `json:"properties,omitempty"`
}

// TMJProperty represents a custom property.
type TMJProperty struct {
	Name  string      `json:"name"`
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
}

// Builder Functions

// NewTMJMap creates a new TMJ map with default settings.
func NewTMJMap(width, height, tileWidth, tileHeight int) *TMJMap {
	return &TMJMap{
		Type:             "map",
		Version:          "1.10",
		TiledVersion:     "1.10.2",
		Width:            width,
		Height:           height,
		TileWidth:        tileWidth,
		TileHeight:       tileHeight,
		Orientation:      "orthogonal",
		RenderOrder:      "right-down",
		Infinite:         false,
		NextLayerID:      1,
		NextObjectID:     1,
		CompressionLevel: -1,
		Layers:           []TMJLayer{},
		Tilesets:         []TMJTileset{},
		Properties:       []TMJProperty{},
	}
}

// AddTileLayer adds a tile layer to the map.
func (m *TMJMap) AddTileLayer(name string, data []uint32) *TMJLayer {
	layer := TMJLayer{
		ID:       m.NextLayerID,
		Name:     name,
		Type:     "tilelayer",
		Visible:  true,
		Opacity:  1.0,
		X:        0,
		Y:        0,
		Width:    m.Width,
		Height:   m.Height,
		Data:     data,
		Encoding: "csv",
	}
	m.NextLayerID++
	m.Layers = append(m.Layers, layer)
	return &m.Layers[len(m.Layers)-1]
}

// AddObjectLayer adds an object layer to the map.
func (m *TMJMap) AddObjectLayer(name string) *TMJLayer {
	layer := TMJLayer{
		ID:        m.NextLayerID,
		Name:      name,
		Type:      "objectgroup",
		Visible:   true,
		Opacity:   1.0,
		DrawOrder: "topdown",
		Objects:   []TMJObject{},
	}
	m.NextLayerID++
	m.Layers = append(m.Layers, layer)
	return &m.Layers[len(m.Layers)-1]
}

// AddObject adds an object to an object layer.
func (l *TMJLayer) AddObject(obj TMJObject, m *TMJMap) {
	if l.Type != "objectgroup" {
		return
	}
	obj.ID = m.NextObjectID
	m.NextObjectID++
	l.Objects = append(l.Objects, obj)
}

// AddTileset adds a tileset reference to the map.
func (m *TMJMap) AddTileset(name, imagePath string, tileWidth, tileHeight, tileCount, columns int) *TMJTileset {
	firstGID := uint32(1)
	if len(m.Tilesets) > 0 {
		last := m.Tilesets[len(m.Tilesets)-1]
		firstGID = last.FirstGID + uint32(last.TileCount)
	}

	imageWidth := columns * tileWidth
	imageHeight := (tileCount / columns) * tileHeight
	if tileCount%columns != 0 {
		imageHeight += tileHeight
	}

	tileset := TMJTileset{
		FirstGID:    firstGID,
		Name:        name,
		TileWidth:   tileWidth,
		TileHeight:  tileHeight,
		TileCount:   tileCount,
		Columns:     columns,
		Image:       imagePath,
		ImageWidth:  imageWidth,
		ImageHeight: imageHeight,
		Spacing:     0,
		Margin:      0,
	}
	m.Tilesets = append(m.Tilesets, tileset)
	return &m.Tilesets[len(m.Tilesets)-1]
}

// Compression Support

// CompressLayerData compresses tile data with gzip and encodes as base64.
func (l *TMJLayer) CompressLayerData() error {
	if l.Type != "tilelayer" {
		return fmt.Errorf("cannot compress non-tile layer")
	}

	data, ok := l.Data.([]uint32)
	if !ok {
		return fmt.Errorf("layer data is not []uint32")
	}

	// Convert uint32 slice to byte slice (little-endian)
	buf := new(bytes.Buffer)
	for _, gid := range data {
		buf.WriteByte(byte(gid))
		buf.WriteByte(byte(gid >> 8))
		buf.WriteByte(byte(gid >> 16))
		buf.WriteByte(byte(gid >> 24))
	}

	// Compress with gzip
	var compressed bytes.Buffer
	gzipWriter := gzip.NewWriter(&compressed)
	if _, err := gzipWriter.Write(buf.Bytes()); err != nil {
		return err
	}
	if err := gzipWriter.Close(); err != nil {
		return err
	}

	// Base64 encode
	encoded := base64.StdEncoding.EncodeToString(compressed.Bytes())

	// Update layer
	l.Data = encoded
	l.Encoding = "base64"
	l.Compression = "gzip"

	return nil
}

// tmjTileWidth and tmjTileHeight are the pixel dimensions baked into every
// exported TMJ map; the core has no notion of pixel scale, so export
// fixes one.
const (
	tmjTileWidth  = 16
	tmjTileHeight = 16
)

// tileGID maps a tilemap.Tile to its Tiled global tile id. Void is GID 0
// ("no tile" in Tiled); Wall/Floor/Door occupy local ids 0-2 in the
// single dungeon_tiles tileset, whose firstgid is 1, so the tile's own
// numeric value already equals its GID.
func tileGID(t tilemap.Tile) uint32 {
	if t == tilemap.Void {
		return 0
	}
	return uint32(t)
}

// ExportTMJ converts a generated map to Tiled's JSON map format: one
// "tiles" tile layer holding the full grid, plus a "rooms" object layer
// with one rectangle object per room (room type and role carried as
// custom properties so downstream Tiled workflows can recolor them).
func ExportTMJ(m *tilemap.Map, compress bool) (*TMJMap, error) {
	if m == nil {
		return nil, fmt.Errorf("map cannot be nil")
	}

	tmjMap := NewTMJMap(m.Width, m.Height, tmjTileWidth, tmjTileHeight)
	tmjMap.Class = "dungeon"
	tmjMap.AddTileset("dungeon_tiles", "tilesets/dungeon.png", tmjTileWidth, tmjTileHeight, 4, 4)

	gids := make([]uint32, len(m.Tiles))
	for i, t := range m.Tiles {
		gids[i] = tileGID(t)
	}
	tileLayer := tmjMap.AddTileLayer("tiles", gids)
	if compress {
		if err := tileLayer.CompressLayerData(); err != nil {
			return nil, fmt.Errorf("failed to compress tile layer: %w", err)
		}
	}

	if m.Metadata != nil && len(m.Metadata.Rooms) > 0 {
		roomLayer := tmjMap.AddObjectLayer("rooms")
		for _, room := range m.Metadata.Rooms {
			obj := TMJObject{
				Name:    fmt.Sprintf("room_%d", room.ID),
				Type:    "room",
				Class:   "room",
				X:       float64(room.Bounds.X * tmjTileWidth),
				Y:       float64(room.Bounds.Y * tmjTileHeight),
				Width:   float64(room.Bounds.Width * tmjTileWidth),
				Height:  float64(room.Bounds.Height * tmjTileHeight),
				Visible: true,
				Properties: []TMJProperty{
					{Name: "roomId", Type: "int", Value: room.ID},
					{Name: "role", Type: "string", Value: room.Role.String()},
					{Name: "typeId", Type: "int", Value: int(room.TypeID)},
				},
			}
			roomLayer.AddObject(obj, tmjMap)
		}
	}

	tmjMap.Properties = append(tmjMap.Properties,
		TMJProperty{Name: "generator", Type: "string", Value: "dungeoneer"},
	)

	return tmjMap, nil
}

// MarshalTMJ serializes a TMJ map to JSON with indentation.
func MarshalTMJ(tmjMap *TMJMap) ([]byte, error) {
	return json.MarshalIndent(tmjMap, "", "  ")
}
