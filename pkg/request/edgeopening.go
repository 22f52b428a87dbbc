package request

import "fmt"

// Side identifies one of the four map perimeter sides.
type Side int

const (
	Top Side = iota
	Bottom
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// EdgeRole tags the purpose of an edge opening.
type EdgeRole int

const (
	RoleNone EdgeRole = iota
	RoleEntrance
	RoleExit
)

func (r EdgeRole) String() string {
	switch r {
	case RoleNone:
		return "None"
	case RoleEntrance:
		return "Entrance"
	case RoleExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// EdgeOpeningSpec describes a requested perimeter breach. Start and End are
// inclusive coordinates along the side's axis (X for Top/Bottom, Y for
// Left/Right).
type EdgeOpeningSpec struct {
	Side  Side     `yaml:"side" json:"side"`
	Start int      `yaml:"start" json:"start"`
	End   int      `yaml:"end" json:"end"`
	Role  EdgeRole `yaml:"role" json:"role"`
}

// Validate checks the spec's internal consistency. width/height are the
// map dimensions, used to bound the side's coordinate range.
func (e *EdgeOpeningSpec) Validate(width, height int) error {
	if e.Start > e.End {
		return fmt.Errorf("start (%d) must be <= end (%d)", e.Start, e.End)
	}
	switch e.Side {
	case Top, Bottom:
		if e.Start < 0 || e.End > width-1 {
			return fmt.Errorf("start/end must be within [0,%d] for side %v", width-1, e.Side)
		}
	case Left, Right:
		if e.Start < 0 || e.End > height-1 {
			return fmt.Errorf("start/end must be within [0,%d] for side %v", height-1, e.Side)
		}
	default:
		return fmt.Errorf("unknown side %d", int(e.Side))
	}
	return nil
}
