package request

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TraversalConstraints bounds how hard an algorithm may work to satisfy
// connectivity before giving up with GenerationFailed.
type TraversalConstraints struct {
	RequireConnected bool `yaml:"requireConnected" json:"requireConnected"`
	MaxAttempts      int  `yaml:"maxAttempts" json:"maxAttempts"`
}

// DefaultTraversalConstraints returns sensible defaults.
func DefaultTraversalConstraints() TraversalConstraints {
	return TraversalConstraints{RequireConnected: true, MaxAttempts: 64}
}

// Validate checks TraversalConstraints for internal consistency.
func (t *TraversalConstraints) Validate() error {
	if t.MaxAttempts < 1 {
		return fmt.Errorf("maxAttempts must be >= 1, got %d", t.MaxAttempts)
	}
	return nil
}

// Request carries everything needed to deterministically generate one map.
type Request struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`

	// Seed is the master seed. All downstream randomness derives from it;
	// it is the only source of entropy in the core.
	Seed uint64 `yaml:"seed" json:"seed"`

	Algorithm AlgorithmID `yaml:"algorithm" json:"algorithm"`

	// Perspective is an opaque rendering hint carried through to exporters
	// (e.g. "top_down"); the core does not interpret it.
	Perspective string `yaml:"perspective,omitempty" json:"perspective,omitempty"`

	EdgeOpenings []EdgeOpeningSpec `yaml:"edgeOpenings,omitempty" json:"edgeOpenings,omitempty"`

	Traversal TraversalConstraints `yaml:"traversal" json:"traversal"`

	PostProcess PostProcessConfig `yaml:"postProcess" json:"postProcess"`

	RoomTypes RoomTypeConfig `yaml:"roomTypes" json:"roomTypes"`

	Params AlgorithmParams `yaml:"params" json:"params"`
}

// New returns a Request with every section defaulted except Width, Height,
// Seed and Algorithm, which the caller must set.
func New(width, height int, seed uint64, algo AlgorithmID) *Request {
	return &Request{
		Width:       width,
		Height:      height,
		Seed:        seed,
		Algorithm:   algo,
		Perspective: "top_down",
		Traversal:   DefaultTraversalConstraints(),
		PostProcess: PostProcessConfig{Enabled: false},
		RoomTypes:   RoomTypeConfig{Policy: RoomTypePolicy{AllowUntypedRooms: true}},
	}
}

// LoadRequest reads and validates a YAML request file.
func LoadRequest(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading request file: %w", err)
	}
	return LoadRequestFromBytes(data)
}

// LoadRequestFromBytes parses and validates a YAML request from bytes.
func LoadRequestFromBytes(data []byte) (*Request, error) {
	var req Request
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &req, nil
}

// ToYAML serializes the request to YAML bytes.
func (r *Request) ToYAML() ([]byte, error) {
	return yaml.Marshal(r)
}

// Validate checks every section of the request. As part of checking the
// algorithm parameters it fills in the default parameter block for the
// active algorithm when that block is nil (see ValidateParams), so it
// may mutate r.Params.
func (r *Request) Validate() error {
	if r.Width < 8 {
		return fmt.Errorf("width must be >= 8, got %d", r.Width)
	}
	if r.Height < 8 {
		return fmt.Errorf("height must be >= 8, got %d", r.Height)
	}
	if !r.Algorithm.Valid() {
		return fmt.Errorf("algorithm: unknown id %d", int(r.Algorithm))
	}
	for i := range r.EdgeOpenings {
		if err := r.EdgeOpenings[i].Validate(r.Width, r.Height); err != nil {
			return fmt.Errorf("edgeOpenings[%d]: %w", i, err)
		}
	}
	if err := r.Traversal.Validate(); err != nil {
		return fmt.Errorf("traversal: %w", err)
	}
	if err := r.PostProcess.Validate(); err != nil {
		return fmt.Errorf("postProcess: %w", err)
	}
	if err := r.RoomTypes.Validate(); err != nil {
		return fmt.Errorf("roomTypes: %w", err)
	}
	return r.ValidateParams()
}

// ValidateParams applies defaults to the active algorithm's parameters (if
// missing) and validates them against that algorithm's bounds.
func (r *Request) ValidateParams() error {
	active, err := r.Params.ApplyDefaults(r.Algorithm)
	if err != nil {
		return fmt.Errorf("params: %w", err)
	}
	switch p := active.(type) {
	case *BSPParams:
		return wrapParamsErr(p.Validate())
	case *DrunkardParams:
		return wrapParamsErr(p.Validate())
	case *CellularAutomataParams:
		return wrapParamsErr(p.Validate())
	case *NoiseParams:
		if r.Algorithm == ValueNoise {
			return wrapParamsErr(p.ValidateFor(6, 64))
		}
		return wrapParamsErr(p.ValidateFor(8, 128))
	case *RoomsAndMazesParams:
		return wrapParamsErr(p.Validate())
	case *RoomGraphParams:
		return wrapParamsErr(p.Validate())
	case *WormCavesParams:
		return wrapParamsErr(p.Validate())
	default:
		return fmt.Errorf("params: unrecognized parameter type %T", active)
	}
}

func wrapParamsErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("params.%w", err)
}

// Snapshot returns a deep copy of the request, suitable for embedding in
// generated map metadata so the map can be fully reproduced later.
func (r *Request) Snapshot() *Request {
	out := *r
	if r.EdgeOpenings != nil {
		out.EdgeOpenings = make([]EdgeOpeningSpec, len(r.EdgeOpenings))
		copy(out.EdgeOpenings, r.EdgeOpenings)
	}
	out.PostProcess = r.PostProcess.Clone()
	out.RoomTypes = r.RoomTypes.Clone()
	out.Params = cloneParams(r.Params)
	return &out
}

func cloneParams(p AlgorithmParams) AlgorithmParams {
	var out AlgorithmParams
	if p.BSP != nil {
		v := *p.BSP
		out.BSP = &v
	}
	if p.Drunkard != nil {
		v := *p.Drunkard
		out.Drunkard = &v
	}
	if p.CellularAutomata != nil {
		v := *p.CellularAutomata
		out.CellularAutomata = &v
	}
	if p.ValueNoise != nil {
		v := *p.ValueNoise
		out.ValueNoise = &v
	}
	if p.SimplexNoise != nil {
		v := *p.SimplexNoise
		out.SimplexNoise = &v
	}
	if p.RoomsAndMazes != nil {
		v := *p.RoomsAndMazes
		out.RoomsAndMazes = &v
	}
	if p.RoomGraph != nil {
		v := *p.RoomGraph
		out.RoomGraph = &v
	}
	if p.WormCaves != nil {
		v := *p.WormCaves
		out.WormCaves = &v
	}
	return out
}
