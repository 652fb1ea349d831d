package swim

import (
	"fmt"
	"math"
)

// hGrowth is how much h grows after an accepted step; rejected steps are
// halved. Both are fixed: changing them changes every trajectory.
const hGrowth = 1.5

// Default step-size bounds, in whatever length units the caller is using
// (think cm).
const (
	DefaultMinStepSize = 1.0e-3
	DefaultMaxStepSize = 40.0
)

// Driver runs the adaptive-stepsize integration loop. It holds only the
// configured step-size bounds plus scratch vectors reused across calls, so
// a single instance supports one live call at a time.
type Driver struct {
	minStepSize float64
	maxStepSize float64

	yt     State
	yt2    State
	dydz   State
	errEst State
}

func NewDriver() *Driver {
	return &Driver{
		minStepSize: DefaultMinStepSize,
		maxStepSize: DefaultMaxStepSize,
	}
}

func (d *Driver) SetMinStepSize(h float64) { d.minStepSize = h }
func (d *Driver) SetMaxStepSize(h float64) { d.maxStepSize = h }
func (d *Driver) MinStepSize() float64     { return d.minStepSize }
func (d *Driver) MaxStepSize() float64     { return d.maxStepSize }

func (d *Driver) ensureScratch(n int) {
	if len(d.yt) != n {
		d.yt = make(State, n)
		d.yt2 = make(State, n)
		d.dydz = make(State, n)
		d.errEst = make(State, n)
	}
}

// Final returns a copy of the working state left by the most recent call to
// Swim: the state at the point integration stopped.
func (d *Driver) Final() State {
	return d.yt.Clone()
}

// Swim integrates y' = deriv(z, y) from z0 toward zf with adaptive step
// size, starting from step size h. tol is a per-component absolute error
// bound; a candidate step is rejected as soon as any single component of
// the advancer's error estimate exceeds its bound.
//
// stopper and listener may be nil. stats, if non-nil, receives the
// min/average/max step size used. The returned count is the number of
// accepted steps.
//
// Three outcomes are possible: the boundary zf is reached exactly (the
// final step is clamped to land on it), the stopper ends the swim early,
// or repeated rejection drives h below the minimum and the loop gives up
// where it stands. The latter two are not errors; callers that need to
// distinguish them compare the last reported z against zf. If adv cannot
// estimate error, Swim returns 0 immediately.
func (d *Driver) Swim(y0 State, z0, zf, h float64, deriv Derivative, stopper Stopper, listener Listener, adv Advancer, tol []float64, stats *StepStats) (int, error) {
	if h <= 0 {
		return 0, fmt.Errorf("%w (got %v)", ErrBadStepSize, h)
	}
	if len(tol) != len(y0) {
		return 0, fmt.Errorf("%w (state %d, tolerance %d)", ErrDimensionMismatch, len(y0), len(tol))
	}

	// without an error estimate there is nothing to adapt on
	if !adv.ComputesError() {
		return 0, nil
	}

	normalDir := zf > z0

	if stats != nil {
		stats.init(h)
	}

	n := len(y0)
	d.ensureScratch(n)
	copy(d.yt, y0)

	z := z0
	nstep := 0
	keepGoing := true

	for keepGoing {
		deriv.Derivative(z, d.yt, d.dydz)

		// we might be going backwards
		newZ := z + h
		if !normalDir {
			newZ = z - h
		}

		oldSign := 1
		if zf-z < 0 {
			oldSign = -1
		}
		newSign := 1
		if zf-newZ < 0 {
			newSign = -1
		}

		if oldSign != newSign { // crossed zf
			h = math.Abs(zf - z) // h always positive
			keepGoing = false
		}

		if normalDir {
			adv.Advance(z, d.yt, d.dydz, h, deriv, d.yt2, d.errEst)
		} else {
			adv.Advance(z, d.yt, d.dydz, -h, deriv, d.yt2, d.errEst)
		}

		decreaseStep := false
		if keepGoing {
			for i := 0; i < n; i++ {
				decreaseStep = d.errEst[i] > tol[i]
				if decreaseStep {
					break
				}
			}
		}

		if decreaseStep {
			h = h / 2
			if h < d.minStepSize {
				keepGoing = false
			}
		} else { // accepted this step

			if stats != nil {
				stats.record(h)
			}

			copy(d.yt, d.yt2)

			if normalDir {
				z += h
			} else {
				z -= h
			}

			nstep++

			if listener != nil {
				listener.OnStep(z, d.yt.Clone(), h)
			}

			// premature termination? skip if stopper is nil
			if stopper != nil {
				stopper.RecordZ(z)
				if stopper.ShouldStop(z, d.yt) {
					if stats != nil {
						stats.finalize(nstep)
					}
					return nstep, nil
				}
			}

			h *= hGrowth
			h = math.Min(h, d.maxStepSize)
		}
	}

	if stats != nil {
		stats.finalize(nstep)
	}
	return nstep, nil
}

// SwimTrack is the path-capturing form of Swim: it seeds traj with the
// starting point (z0, y0) and then runs Swim with traj as the listener, so
// the recorded path always begins at the launch point even when no step is
// accepted.
func (d *Driver) SwimTrack(y0 State, z0, zf, h float64, deriv Derivative, stopper Stopper, traj Track, adv Advancer, tol []float64, stats *StepStats) (int, error) {
	traj.Start(z0, y0)
	return d.Swim(y0, z0, zf, h, deriv, stopper, traj, adv, tol, stats)
}
