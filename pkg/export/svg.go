package export

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	svg "github.com/ajstarks/svgo"

	"github.com/dshills/dungeoneer/pkg/tilemap"
)

// SVGOptions configures the room-graph visualization.
type SVGOptions struct {
	Scale       int    // Pixels per tile
	ShowLabels  bool   // Show room ID labels
	ColorByRole bool   // Color rooms by narrative role
	ShowLegend  bool   // Show legend explaining colors
	EdgeWidth   int    // Width of corridor connector lines
	Margin      int    // Canvas margin in pixels
	Title       string // Optional title for the visualization
	ShowStats   bool   // Show dungeon statistics
}

// DefaultSVGOptions returns sensible default SVG export options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Scale:       12,
		ShowLabels:  true,
		ColorByRole: true,
		ShowLegend:  true,
		EdgeWidth:   2,
		Margin:      60,
		Title:       "Dungeon Map",
		ShowStats:   true,
	}
}

// ExportSVG renders m's room graph: rooms as rectangles at their real
// tile position, corridors as lines between room centers. Unlike the
// PNG/JSON exporters this does not render individual tiles; it is a
// structural diagram for inspecting room layout and connectivity.
func ExportSVG(m *tilemap.Map, opts SVGOptions) ([]byte, error) {
	if m == nil || m.Metadata == nil {
		return nil, errNilMetadata
	}
	if opts.Scale <= 0 {
		opts.Scale = 12
	}
	if opts.EdgeWidth <= 0 {
		opts.EdgeWidth = 2
	}
	if opts.Margin <= 0 {
		opts.Margin = 60
	}

	headerHeight := 0
	if opts.Title != "" || opts.ShowStats {
		headerHeight = 60
	}
	width := m.Width*opts.Scale + 2*opts.Margin
	height := m.Height*opts.Scale + 2*opts.Margin + headerHeight

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#1a1a2e")

	originX, originY := opts.Margin, opts.Margin+headerHeight

	drawCorridors(canvas, m, originX, originY, opts)
	drawRooms(canvas, m, originX, originY, opts)
	if opts.ShowLabels {
		drawRoomLabels(canvas, m, originX, originY, opts)
	}
	if opts.ShowLegend {
		drawLegend(canvas, width, opts)
	}
	if headerHeight > 0 {
		drawHeader(canvas, m, width, opts)
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveSVGToFile renders m and saves it to filepath.
func SaveSVGToFile(m *tilemap.Map, filepath string, opts SVGOptions) error {
	data, err := ExportSVG(m, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

func roomCenterPx(room tilemap.Room, originX, originY, scale int) (x, y int) {
	c := room.Bounds.Center()
	return originX + c.X*scale, originY + c.Y*scale
}

func drawCorridors(canvas *svg.SVG, m *tilemap.Map, originX, originY int, opts SVGOptions) {
	roomByID := make(map[int]tilemap.Room, len(m.Metadata.Rooms))
	for _, r := range m.Metadata.Rooms {
		roomByID[r.ID] = r
	}

	corridors := append([]tilemap.Corridor(nil), m.Metadata.Corridors...)
	sort.Slice(corridors, func(i, j int) bool {
		if corridors[i].FromRoomID != corridors[j].FromRoomID {
			return corridors[i].FromRoomID < corridors[j].FromRoomID
		}
		return corridors[i].ToRoomID < corridors[j].ToRoomID
	})

	for _, c := range corridors {
		from, ok1 := roomByID[c.FromRoomID]
		to, ok2 := roomByID[c.ToRoomID]
		if !ok1 || !ok2 {
			continue
		}
		fx, fy := roomCenterPx(from, originX, originY, opts.Scale)
		tx, ty := roomCenterPx(to, originX, originY, opts.Scale)
		canvas.Line(fx, fy, tx, ty, fmt.Sprintf("stroke:#4299e1;stroke-width:%d;opacity:0.8", opts.EdgeWidth))
	}
}

func drawRooms(canvas *svg.SVG, m *tilemap.Map, originX, originY int, opts SVGOptions) {
	rooms := append([]tilemap.Room(nil), m.Metadata.Rooms...)
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })

	for _, room := range rooms {
		b := room.Bounds
		x := originX + b.X*opts.Scale
		y := originY + b.Y*opts.Scale
		w := b.Width * opts.Scale
		h := b.Height * opts.Scale
		canvas.Rect(x, y, w, h,
			fmt.Sprintf("fill:%s;stroke:#fff;stroke-width:1;opacity:0.9", roleColor(room.Role, opts)))
	}
}

func drawRoomLabels(canvas *svg.SVG, m *tilemap.Map, originX, originY int, opts SVGOptions) {
	for _, room := range m.Metadata.Rooms {
		cx, cy := roomCenterPx(room, originX, originY, opts.Scale)
		canvas.Text(cx, cy+4, fmt.Sprintf("%d", room.ID),
			"text-anchor:middle;font-size:10px;font-family:monospace;fill:#e2e8f0")
	}
}

// roleColor maps a room's narrative role to a fixed accent color.
func roleColor(role tilemap.RoomRole, opts SVGOptions) string {
	if !opts.ColorByRole {
		return "#4a5568"
	}
	switch role {
	case tilemap.RoleEntrance:
		return "#48bb78"
	case tilemap.RoleExit:
		return "#f56565"
	case tilemap.RoleBoss:
		return "#9f3f3f"
	case tilemap.RoleTreasure:
		return "#ffd700"
	case tilemap.RoleShop:
		return "#ed8936"
	default:
		return "#4a5568"
	}
}

func drawLegend(canvas *svg.SVG, canvasWidth int, opts SVGOptions) {
	legendX := canvasWidth - opts.Margin - 150
	legendY := opts.Margin + 20

	canvas.Rect(legendX-10, legendY-15, 160, 160,
		"fill:#2d3748;stroke:#4a5568;stroke-width:1;opacity:0.95")
	canvas.Text(legendX, legendY, "Room Roles",
		"font-size:13px;font-weight:bold;fill:#e2e8f0")
	legendY += 22

	entries := []struct {
		name string
		role tilemap.RoomRole
	}{
		{"Entrance", tilemap.RoleEntrance},
		{"Exit", tilemap.RoleExit},
		{"Boss", tilemap.RoleBoss},
		{"Treasure", tilemap.RoleTreasure},
		{"Shop", tilemap.RoleShop},
		{"None", tilemap.RoleNone},
	}
	for _, e := range entries {
		canvas.Rect(legendX, legendY-8, 14, 14, fmt.Sprintf("fill:%s", roleColor(e.role, opts)))
		canvas.Text(legendX+22, legendY+3, e.name, "font-size:11px;fill:#cbd5e0")
		legendY += 20
	}
}

func drawHeader(canvas *svg.SVG, m *tilemap.Map, canvasWidth int, opts SVGOptions) {
	headerY := 25
	if opts.Title != "" {
		canvas.Text(canvasWidth/2, headerY, opts.Title,
			"text-anchor:middle;font-size:18px;font-weight:bold;fill:#e2e8f0;font-family:sans-serif")
		headerY += 25
	}
	if opts.ShowStats {
		md := m.Metadata
		stats := fmt.Sprintf("%dx%d | rooms:%d corridors:%d components:%d connected:%v",
			m.Width, m.Height, len(md.Rooms), len(md.Corridors), md.ConnectedComponentCount, md.ConnectedFloor)
		canvas.Text(canvasWidth/2, headerY, stats,
			"text-anchor:middle;font-size:11px;fill:#a0aec0;font-family:monospace")
	}
}
