// Package request defines the generation request: map dimensions, seed,
// algorithm selection and its tagged parameter variant, optional edge
// openings, traversal constraints, the post-process pipeline
// configuration, and room-type assignment configuration. Request supports
// YAML (de)serialization and field-level validation in the style of the
// teacher's own Config type, and Snapshot produces the deep copy embedded
// in generated map metadata so a persisted map can be fully reproduced.
package request
