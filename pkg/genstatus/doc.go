// Package genstatus defines the frozen error taxonomy shared by every stage
// of the generation pipeline: Ok, InvalidArgument, AllocationFailed,
// GenerationFailed, IOError, and UnsupportedFormat. There is no global
// error channel; pipeline stages return Go errors wrapping a *GenError
// (a canceled context is reported as the context's own error), and
// StatusMessage gives a stable, user-visible phrase for each status.
package genstatus
