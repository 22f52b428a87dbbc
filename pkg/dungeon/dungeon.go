package dungeon

import (
	"context"

	"github.com/dshills/dungeoneer/pkg/algorithm"
	"github.com/dshills/dungeoneer/pkg/edgeopen"
	"github.com/dshills/dungeoneer/pkg/genstatus"
	"github.com/dshills/dungeoneer/pkg/metadata"
	"github.com/dshills/dungeoneer/pkg/postprocess"
	"github.com/dshills/dungeoneer/pkg/request"
	"github.com/dshills/dungeoneer/pkg/rng"
	"github.com/dshills/dungeoneer/pkg/roomtype"
	"github.com/dshills/dungeoneer/pkg/tilemap"
)

// Generator is the entry point for procedural map generation.
// Implementations must be deterministic: the same Request produces a
// byte-identical Map every time, on every platform.
type Generator interface {
	// Generate runs the full pipeline and returns a fully-populated Map.
	// Context cancellation aborts between (not within) pipeline stages.
	Generate(ctx context.Context, req *request.Request) (*tilemap.Map, error)
}

// DefaultGenerator implements Generator. It orchestrates five stages in
// order: layout algorithm, edge openings, post-processing, derived
// metadata, room-type assignment.
type DefaultGenerator struct{}

// NewGenerator returns the default pipeline orchestration.
func NewGenerator() Generator {
	return DefaultGenerator{}
}

// Generate validates req, seeds one RNG per stage so each stage's
// randomness is decorrelated from the others, then runs the pipeline.
// The returned Map carries a snapshot of req in its Metadata so the map
// can be fully reproduced later.
func (DefaultGenerator) Generate(ctx context.Context, req *request.Request) (*tilemap.Map, error) {
	if err := req.Validate(); err != nil {
		return nil, genstatus.Wrap(genstatus.InvalidArgument, "request", err)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	layoutRNG := rng.New(req.Seed)
	m, err := algorithm.Generate(req, layoutRNG)
	if err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	openings, entranceID, exitID, err := edgeopen.Apply(m, req.EdgeOpenings)
	if err != nil {
		return nil, err
	}
	m.Metadata.EdgeOpenings = openings
	m.Metadata.PrimaryEntranceOpeningID = entranceID
	m.Metadata.PrimaryExitOpeningID = exitID

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	postRNG := rng.New(req.Seed).Derive("postprocess")
	if err := postprocess.Run(m, req.PostProcess, postRNG); err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	metadata.Compute(m)

	if err := roomtype.Assign(m, req.RoomTypes); err != nil {
		return nil, err
	}

	m.Metadata.GenerationRequest = req.Snapshot()
	return m, nil
}

// Generate is a convenience wrapper around NewGenerator().Generate for
// callers that don't need to keep a Generator around (the CLI, tests).
func Generate(ctx context.Context, req *request.Request) (*tilemap.Map, error) {
	return NewGenerator().Generate(ctx, req)
}
