// Package tilemap defines the owning container for a generated dungeon: the
// tile grid itself plus every derived structural record (rooms, corridors,
// room entrances, edge openings, the room graph, diagnostics, and the
// request snapshot). A Map is constructed empty, filled by a layout
// algorithm, mutated by the post-process pipeline, finalized by the
// derived-metadata pass, and thereafter read-only.
package tilemap
