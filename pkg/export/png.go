package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/dshills/dungeoneer/pkg/request"
	"github.com/dshills/dungeoneer/pkg/tilemap"
)

// errNilMetadata is returned by any exporter given a map with no
// Metadata attached (i.e. one that never completed the derived-metadata
// pass).
var errNilMetadata = errors.New("export: map has no metadata attached")

// Fixed tile palette: Void=black, Wall=dark gray, Floor=light, Door=accent.
var (
	colorVoid  = color.RGBA{0, 0, 0, 255}
	colorWall  = color.RGBA{60, 60, 68, 255}
	colorFloor = color.RGBA{214, 214, 200, 255}
	colorDoor  = color.RGBA{196, 138, 60, 255}
)

func tileColor(t tilemap.Tile) color.RGBA {
	switch t {
	case tilemap.Wall:
		return colorWall
	case tilemap.Floor:
		return colorFloor
	case tilemap.Door:
		return colorDoor
	default:
		return colorVoid
	}
}

// tileLegend names the fixed PNG palette for the JSON export's "legend" field.
func tileLegend() map[string]string {
	return map[string]string{
		"void":  hexColor(colorVoid),
		"wall":  hexColor(colorWall),
		"floor": hexColor(colorFloor),
		"door":  hexColor(colorDoor),
	}
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// roomTypeRGB derives a stable color for a room type id by hashing it
// into hue space, so the same request always produces the same overlay
// regardless of definition order.
func roomTypeRGB(typeID uint32) (r, g, b uint8) {
	h := (typeID*2654435761 + 1) % 360
	return hsvToRGB(float64(h), 0.65, 0.95)
}

// roomTypeColor is the hex-string form of roomTypeRGB, used by the JSON
// exporter's room_type_palette field.
func roomTypeColor(typeID uint32) string {
	r, g, b := roomTypeRGB(typeID)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func hsvToRGB(h, s, v float64) (r, g, b uint8) {
	c := v * s
	x := c * (1 - absFloat(modFloat(h/60, 2)-1))
	m := v - c
	var rp, gp, bp float64
	switch {
	case h < 60:
		rp, gp, bp = c, x, 0
	case h < 120:
		rp, gp, bp = x, c, 0
	case h < 180:
		rp, gp, bp = 0, c, x
	case h < 240:
		rp, gp, bp = 0, x, c
	case h < 300:
		rp, gp, bp = x, 0, c
	default:
		rp, gp, bp = c, 0, x
	}
	return uint8((rp + m) * 255), uint8((gp + m) * 255), uint8((bp + m) * 255)
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func modFloat(f, m float64) float64 {
	for f >= m {
		f -= m
	}
	for f < 0 {
		f += m
	}
	return f
}

// roomTypeColors builds a typeID -> overlay color lookup from the
// request's configured room types, if any.
func roomTypeColors(m *tilemap.Map) map[uint32]color.RGBA {
	colors := make(map[uint32]color.RGBA)
	if m.Metadata == nil || m.Metadata.GenerationRequest == nil {
		return colors
	}
	for _, def := range m.Metadata.GenerationRequest.RoomTypes.Definitions {
		r, g, b := roomTypeRGB(def.TypeID)
		colors[def.TypeID] = color.RGBA{r, g, b, 255}
	}
	return colors
}

// ExportPNG renders m as one pixel per tile using the fixed Void/Wall/
// Floor/Door palette, overlaid with each typed room's palette color.
func ExportPNG(m *tilemap.Map) ([]byte, error) {
	if m == nil {
		return nil, errors.New("export: map cannot be nil")
	}

	img := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			img.SetRGBA(x, y, tileColor(m.At(x, y)))
		}
	}

	if m.Metadata != nil {
		overlay := roomTypeColors(m)
		for _, room := range m.Metadata.Rooms {
			if room.TypeID == request.UnassignedType {
				continue
			}
			c, ok := overlay[room.TypeID]
			if !ok {
				continue
			}
			b := room.Bounds
			for y := b.Y; y < b.Y+b.Height; y++ {
				for x := b.X; x < b.X+b.Width; x++ {
					if m.At(x, y).Walkable() {
						img.SetRGBA(x, y, c)
					}
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("export: encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// SavePNGToFile exports m as a PNG file.
func SavePNGToFile(m *tilemap.Map, filepath string) error {
	data, err := ExportPNG(m)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}
