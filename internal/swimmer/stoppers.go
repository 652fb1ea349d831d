package swimmer

import (
	"math"

	"github.com/san-kum/swimz/internal/swim"
)

// RadiusStopper ends a swim once the transverse radius sqrt(x^2+y^2)
// exceeds RMax (particle left the tracking volume).
type RadiusStopper struct {
	RMax  float64
	lastZ float64
}

func (s *RadiusStopper) RecordZ(z float64) { s.lastZ = z }

func (s *RadiusStopper) ShouldStop(z float64, y swim.State) bool {
	return math.Hypot(y[0], y[1]) > s.RMax
}

// LastZ reports the most recent z the driver reached.
func (s *RadiusStopper) LastZ() float64 { return s.lastZ }

// PlaneStopper ends a swim once z passes a plane, in either direction of
// travel. Use it with a swim target beyond the plane.
type PlaneStopper struct {
	Z       float64
	Forward bool
	lastZ   float64
}

func (s *PlaneStopper) RecordZ(z float64) { s.lastZ = z }

func (s *PlaneStopper) ShouldStop(z float64, y swim.State) bool {
	if s.Forward {
		return z > s.Z
	}
	return z < s.Z
}

func (s *PlaneStopper) LastZ() float64 { return s.lastZ }
