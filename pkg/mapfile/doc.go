// Package mapfile persists a tilemap.Map to the binary on-disk format:
// magic "DG_MAP\0", a fixed header (format version, width, height,
// algorithm id, seed, generation class, flags), then one length-prefixed section per
// Metadata vector (tiles, rooms, corridors, room entrances, edge
// openings, room-graph adjacency/neighbors, diagnostics, room-type
// quotas), a fixed summary block of the scalar Metadata fields Compute
// derives, and finally a length-prefixed YAML request snapshot. Every
// integer is little-endian; no floats appear in the format. Save/Load
// round-trips a map tile-for-tile and field-for-field.
package mapfile
