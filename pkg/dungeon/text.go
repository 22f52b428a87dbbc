package dungeon

import (
	"fmt"
	"strings"

	"github.com/dshills/dungeoneer/pkg/tilemap"
)

// RenderText renders m's full tile grid as ASCII art. It is a thin wrapper
// around tilemap.Map.String so CLI callers have a single entry point
// alongside RenderStats.
func RenderText(m *tilemap.Map) string {
	return m.String()
}

// RenderStats renders the statistics block following the ASCII map: size,
// algorithm, connectivity, and room/role counts.
func RenderStats(m *tilemap.Map) string {
	var sb strings.Builder
	md := m.Metadata

	sb.WriteString("Statistics:\n")
	sb.WriteString(fmt.Sprintf("  Size: %dx%d\n", m.Width, m.Height))
	if md == nil {
		sb.WriteString("  (no metadata attached)\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("  Generation class: %s\n", md.GenerationClass))
	sb.WriteString(fmt.Sprintf("  Walkable tiles: %d  Wall tiles: %d\n", md.WalkableTileCount, md.WallTileCount))
	sb.WriteString(fmt.Sprintf("  Connected components: %d (largest %d)  Fully connected: %v\n",
		md.ConnectedComponentCount, md.LargestComponentSize, md.ConnectedFloor))
	sb.WriteString(fmt.Sprintf("  Rooms: %d  Corridors: %d  Room entrances: %d  Edge openings: %d\n",
		len(md.Rooms), len(md.Corridors), len(md.RoomEntrances), len(md.EdgeOpenings)))
	sb.WriteString(fmt.Sprintf("  Leaf rooms: %d  Entrance rooms: %d  Exit rooms: %d\n",
		md.LeafRoomCount, md.EntranceRoomCount, md.ExitRoomCount))
	sb.WriteString(fmt.Sprintf("  Boss rooms: %d  Treasure rooms: %d  Shop rooms: %d\n",
		md.BossRoomCount, md.TreasureRoomCount, md.ShopRoomCount))
	if md.EntranceExitDistance >= 0 {
		sb.WriteString(fmt.Sprintf("  Entrance->exit distance: %d\n", md.EntranceExitDistance))
	}
	if len(md.TypeQuotas) > 0 {
		sb.WriteString("  Room type quotas:\n")
		for _, q := range md.TypeQuotas {
			sb.WriteString(fmt.Sprintf("    type %d: assigned=%d min_ok=%v max_ok=%v target_ok=%v miss=%d\n",
				q.TypeID, q.AssignedCount, q.MinSatisfied, q.MaxSatisfied, q.TargetSatisfied, q.MissCount))
		}
	}
	return sb.String()
}
