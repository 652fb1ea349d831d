// Package swim provides the adaptive-stepsize integration core used to
// trace charged particles through a vector field.
//
// The package defines the capability interfaces the driver depends on:
//
//   - [State]: the fixed-size vector being integrated
//   - [Derivative]: computes dy/dz at a point (the equations of motion)
//   - [Advancer]: takes one candidate step and estimates its error
//   - [Stopper]: optional early-termination predicate
//   - [Listener]: optional per-step observer for trajectory recording
//   - [Track]: a Listener that also records the launch point (see SwimTrack)
//
// # Example
//
//	drv := swim.NewDriver()
//	n, err := drv.Swim(y0, 0, 10, 1.0, deriv, nil, traj, advance.NewHalfStep(), tol, nil)
//
// # Thread Safety
//
// Driver instances are NOT safe for concurrent calls: each call reuses the
// instance's scratch vectors. Use one Driver per goroutine or serialize.
package swim
