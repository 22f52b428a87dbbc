// Package metadata implements the derived-metadata pass: the stage that
// runs after the post-process pipeline and computes everything that can
// only be known once tiles are final — connected components, door
// promotion and room-entrance records, the flattened room graph, and the
// handful of summary statistics (leaf room count, entrance/exit distance)
// that ride along with them.
package metadata
