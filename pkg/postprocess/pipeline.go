package postprocess

import (
	"github.com/dshills/dungeoneer/pkg/genstatus"
	"github.com/dshills/dungeoneer/pkg/metadata"
	"github.com/dshills/dungeoneer/pkg/request"
	"github.com/dshills/dungeoneer/pkg/rng"
	"github.com/dshills/dungeoneer/pkg/tilemap"
)

// Run applies every enabled step of cfg to m in order, appending one
// StepReport per step to m.Metadata.Diagnostics. A disabled config (or an
// empty step list) leaves m untouched.
func Run(m *tilemap.Map, cfg request.PostProcessConfig, r *rng.RNG) error {
	if !cfg.Enabled {
		return nil
	}
	for i := range cfg.Steps {
		step := &cfg.Steps[i]
		walkableBefore, _ := m.RecountWalkable()
		componentsBefore, connectedBefore := metadata.Connectivity(m)

		var err error
		switch step.Type {
		case request.StepScale:
			err = applyScale(m, step.Scale)
		case request.StepPathSmooth:
			applyPathSmooth(m, step.PathSmooth)
		case request.StepCorridorRoughen:
			applyCorridorRoughen(m, step.CorridorRoughen, r)
		default:
			err = genstatus.Invalid("postProcess.steps", "unknown step type %d", int(step.Type))
		}
		if err != nil {
			return err
		}

		walkableAfter, _ := m.RecountWalkable()
		componentsAfter, connectedAfter := metadata.Connectivity(m)
		m.Metadata.Diagnostics = append(m.Metadata.Diagnostics, tilemap.StepReport{
			MethodType:       step.Type,
			WalkableBefore:   walkableBefore,
			WalkableAfter:    walkableAfter,
			ComponentsBefore: componentsBefore,
			ComponentsAfter:  componentsAfter,
			ConnectedBefore:  connectedBefore,
			ConnectedAfter:   connectedAfter,
		})
	}
	return nil
}
