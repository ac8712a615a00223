package bot

import (
	"time"

	"game-bot/internal/geometry/vector"
)

type TacticName string

const (
	TacticHold    TacticName = "hold"
	TacticChase   TacticName = "chase-ball"
	TacticRetreat TacticName = "retreat"
)

// Decision is one tick's worth of control output plus diagnostics.
type Decision struct {
	TS     time.Time  `json:"ts"`
	Tactic TacticName `json:"tactic"`

	Steer    float64 `json:"steer"`    // [-1, 1], positive = right
	Throttle float64 `json:"throttle"` // [-1, 1]
	Boost    bool    `json:"boost,omitempty"`

	// Target is the point the car is being steered toward, in world
	// coordinates.
	Target vector.Vec3 `json:"target"`
	// Note is a human-readable diagnostic, e.g. the target's display
	// form. Not machine-parseable.
	Note string `json:"note,omitempty"`
}
