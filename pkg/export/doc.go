// Package export renders a generated tilemap.Map to external formats:
// PNG (one pixel per tile, fixed palette plus a room-type overlay),
// JSON (the full metadata surface plus the generation request
// snapshot, as "dungeoneer_png_json_v1"), and SVG (a room-graph
// visualization: rooms as nodes positioned at their real bounds,
// corridors as edges between them).
package export
