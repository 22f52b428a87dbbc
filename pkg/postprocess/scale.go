package postprocess

import (
	"github.com/dshills/dungeoneer/pkg/request"
	"github.com/dshills/dungeoneer/pkg/tilemap"
)

// applyScale nearest-neighbor upscales the tile grid by p.Factor and
// rescales every geometric record riding along in Metadata so they stay
// consistent with the new coordinate space.
func applyScale(m *tilemap.Map, p *request.ScaleParams) error {
	factor := p.Factor
	newWidth, newHeight := m.Width*factor, m.Height*factor
	tiles := make([]tilemap.Tile, newWidth*newHeight)
	for y := 0; y < newHeight; y++ {
		srcY := y / factor
		for x := 0; x < newWidth; x++ {
			srcX := x / factor
			tiles[y*newWidth+x] = m.Tiles[srcY*m.Width+srcX]
		}
	}
	m.Tiles = tiles
	m.Width, m.Height = newWidth, newHeight

	for i := range m.Metadata.Rooms {
		m.Metadata.Rooms[i].Bounds = m.Metadata.Rooms[i].Bounds.Scaled(factor)
	}
	for i := range m.Metadata.Corridors {
		m.Metadata.Corridors[i].Length *= factor
		m.Metadata.Corridors[i].Width *= factor
	}
	for i := range m.Metadata.RoomEntrances {
		e := &m.Metadata.RoomEntrances[i]
		e.RoomTile = scalePoint(e.RoomTile, factor)
		e.CorridorTile = scalePoint(e.CorridorTile, factor)
	}
	for i := range m.Metadata.EdgeOpenings {
		o := &m.Metadata.EdgeOpenings[i]
		o.Start *= factor
		o.End = o.End*factor + (factor - 1)
		o.Length *= factor
		o.EdgeTile = scalePoint(o.EdgeTile, factor)
		o.InwardTile = scalePoint(o.InwardTile, factor)
	}
	return nil
}

func scalePoint(p tilemap.Point, factor int) tilemap.Point {
	return tilemap.Point{X: p.X * factor, Y: p.Y * factor}
}
