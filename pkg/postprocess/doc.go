// Package postprocess runs the optional tile-mutation pipeline described
// by a request's PostProcessConfig: Scale (nearest-neighbor upscaling of
// the whole grid and every room/corridor/edge-opening record), PathSmooth
// (cellular-automata-style corner rounding applied to inner and/or outer
// wall corners) and CorridorRoughen (width variance added to corridors,
// either uniformly or as an organic, depth-limited random walk). Each
// step appends a tilemap.StepReport capturing its before/after walkable
// count and connectivity so a caller can audit what the pipeline did.
package postprocess
