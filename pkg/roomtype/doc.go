// Package roomtype assigns narrative room types to generated rooms. It
// filters each type definition's candidate set by RoomTypeConstraints
// (area, room-graph degree, distance to the map border, BFS depth from
// the entrance room), scores admissible candidates with
// RoomTypePreferences, and fills the enabled definitions in ascending
// type id order: first every MinCount, then each TargetCount (capped by
// MaxCount), then each remaining room goes to its best-scoring admissible
// type. Rooms left over are tagged with the policy's default type id, or
// left UnassignedType when untyped rooms are allowed.
package roomtype
