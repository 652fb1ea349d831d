// Package swimmer binds a field, a particle, and a driver configuration
// into a convenient facade that produces trajectory results.
package swimmer

import (
	"math"

	"github.com/san-kum/swimz/internal/advance"
	"github.com/san-kum/swimz/internal/field"
	"github.com/san-kum/swimz/internal/swim"
	"github.com/san-kum/swimz/internal/trajectory"
)

// boundaryEps is the slack allowed when deciding whether the final z
// landed on the target (the clamped final step is exact only up to
// floating-point rounding).
const boundaryEps = 1e-9

type Swimmer struct {
	deriv  swim.Derivative
	driver *swim.Driver
	adv    swim.Advancer
}

// New builds a swimmer for a particle of charge q (units of e) and
// momentum p (GeV/c) in the given field, using the half-step advancer.
func New(f field.Field, q, p float64) *Swimmer {
	return &Swimmer{
		deriv:  &field.ZDerivative{Field: f, Q: q, P: p},
		driver: swim.NewDriver(),
		adv:    advance.NewHalfStep(),
	}
}

// NewWithDerivative builds a swimmer over an arbitrary derivative provider.
func NewWithDerivative(deriv swim.Derivative) *Swimmer {
	return &Swimmer{
		deriv:  deriv,
		driver: swim.NewDriver(),
		adv:    advance.NewHalfStep(),
	}
}

// Driver exposes the underlying driver for step-size configuration.
func (s *Swimmer) Driver() *swim.Driver { return s.driver }

// SetAdvancer swaps the single-step strategy (e.g. an embedded-pair
// tableau instead of the half-step default).
func (s *Swimmer) SetAdvancer(a swim.Advancer) { s.adv = a }

// SwimZ swims from z0 to zf recording the trajectory.
func (s *Swimmer) SwimZ(y0 swim.State, z0, zf, h float64, tol []float64) (*trajectory.Result, error) {
	return s.SwimZWithStopper(y0, z0, zf, h, tol, nil)
}

// SwimZWithStopper swims with an optional early-termination predicate.
func (s *Swimmer) SwimZWithStopper(y0 swim.State, z0, zf, h float64, tol []float64, stopper swim.Stopper) (*trajectory.Result, error) {
	traj := &trajectory.Trajectory{}

	var tracker *stopTracker
	var st swim.Stopper
	if stopper != nil {
		tracker = &stopTracker{inner: stopper}
		st = tracker
	}

	var stats swim.StepStats
	nsteps, err := s.driver.SwimTrack(y0, z0, zf, h, s.deriv, st, traj, s.adv, tol, &stats)
	if err != nil {
		return nil, err
	}

	finalZ, final := traj.Last()
	res := &trajectory.Result{
		Final:  final,
		FinalZ: finalZ,
		NSteps: nsteps,
		Stats:  stats,
		Traj:   traj,
	}
	switch {
	case tracker != nil && tracker.fired:
		res.Status = trajectory.Stopped
	case reached(finalZ, zf):
		res.Status = trajectory.Success
	default:
		res.Status = trajectory.StepCollapsed
	}
	return res, nil
}

func reached(z, zf float64) bool {
	return math.Abs(z-zf) <= boundaryEps*math.Max(1, math.Abs(zf))
}

// stopTracker remembers whether the wrapped stopper actually fired, so the
// result status can distinguish an early stop from the degraded paths.
type stopTracker struct {
	inner swim.Stopper
	fired bool
}

func (t *stopTracker) RecordZ(z float64) { t.inner.RecordZ(z) }

func (t *stopTracker) ShouldStop(z float64, y swim.State) bool {
	if t.inner.ShouldStop(z, y) {
		t.fired = true
		return true
	}
	return false
}
