// Package dungeon orchestrates the full generation pipeline: layout
// algorithm, edge openings, post-processing, derived metadata and
// room-type assignment, producing one *tilemap.Map per request. It also
// provides the ASCII renderer used by the CLI demo.
package dungeon
