package swim

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// Derivative computes dydz, the state derivative with respect to the
// independent variable z. Implementations fill dydz rather than allocate.
type Derivative interface {
	Derivative(z float64, y State, dydz State)
}

// DerivativeFunc adapts a plain function to the Derivative interface.
type DerivativeFunc func(z float64, y State, dydz State)

func (f DerivativeFunc) Derivative(z float64, y State, dydz State) { f(z, y, dydz) }

// Advancer takes a single candidate step of (signed) size h from (z, y),
// writing the next state into yout and, when supported, a per-component
// absolute error estimate into errEst. dydz holds the derivative already
// evaluated at (z, y) so implementations need not recompute it.
//
// Advance must be a pure function of its inputs: the driver retries with a
// different h after a rejection and relies on no state being carried over.
type Advancer interface {
	Advance(z float64, y, dydz State, h float64, deriv Derivative, yout, errEst State)

	// ComputesError reports whether Advance fills errEst. Advancers that
	// return false cannot be used for adaptive stepping.
	ComputesError() bool
}

// Stopper ends an integration early. RecordZ is called with every newly
// reached z before ShouldStop is consulted; ShouldStop must not mutate y.
type Stopper interface {
	RecordZ(z float64)
	ShouldStop(z float64, y State) bool
}

// StopperFunc adapts a predicate to the Stopper interface; RecordZ is a no-op.
type StopperFunc func(z float64, y State) bool

func (f StopperFunc) RecordZ(float64)                    {}
func (f StopperFunc) ShouldStop(z float64, y State) bool { return f(z, y) }

// Listener observes each accepted step. The state it receives is a fresh
// copy; retaining or mutating it cannot affect the integration.
type Listener interface {
	OnStep(z float64, y State, h float64)
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(z float64, y State, h float64)

func (f ListenerFunc) OnStep(z float64, y State, h float64) { f(z, y, h) }

// Track is a Listener that also records where a swim began. Start receives
// the caller's initial state directly; implementations that retain it must
// copy.
type Track interface {
	Start(z float64, y State)
	Listener
}
