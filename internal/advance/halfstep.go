package advance

import (
	"math"

	"github.com/san-kum/swimz/internal/swim"
)

// HalfStep is the reference step-doubling advancer: it compares one full
// RK4 step against two half steps. The two-half-step result is returned as
// the next state and the component-wise difference against the full step
// is the local error estimate.
type HalfStep struct {
	s1, s2 rk4Scratch

	full swim.State
	half swim.State
	dmid swim.State
}

func NewHalfStep() *HalfStep {
	return &HalfStep{}
}

func (a *HalfStep) ComputesError() bool { return true }

func (a *HalfStep) ensure(n int) {
	if len(a.full) != n {
		a.full = make(swim.State, n)
		a.half = make(swim.State, n)
		a.dmid = make(swim.State, n)
	}
}

func (a *HalfStep) Advance(z float64, y, dydz swim.State, h float64, deriv swim.Derivative, yout, errEst swim.State) {
	n := len(y)
	a.ensure(n)

	// one full step
	rk4Step(z, y, dydz, h, deriv, a.full, &a.s1)

	// two half steps
	hh := h * 0.5
	rk4Step(z, y, dydz, hh, deriv, a.half, &a.s2)
	deriv.Derivative(z+hh, a.half, a.dmid)
	rk4Step(z+hh, a.half, a.dmid, hh, deriv, yout, &a.s2)

	if errEst != nil {
		for i := 0; i < n; i++ {
			errEst[i] = math.Abs(yout[i] - a.full[i])
		}
	}
}
