// Package algorithm is the registry and dispatch table mapping an
// algorithm identifier to its generator function, plus the eight
// independent layout algorithms themselves (BSP, Drunkard's walk,
// Cellular Automata, Value-Noise, Simplex-Noise, Rooms-and-Mazes,
// Room-Graph, Worm Caves). Every generator shares one contract: given an
// RNG, a Wall-filled map and its algorithm-specific parameters, write
// Floor tiles (and, for room-like algorithms, Room/Corridor records) while
// keeping the outer border Wall and, when the caller demands it, a single
// connected walkable component.
package algorithm
