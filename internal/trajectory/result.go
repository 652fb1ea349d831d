package trajectory

import (
	"fmt"

	"github.com/san-kum/swimz/internal/swim"
)

// Status classifies how a swim ended. The driver itself stays silent about
// the degraded paths; the status is reconstructed by whoever ran the swim
// (did the stopper fire, did the final z land on the target).
type Status int

const (
	// Success means the target z was reached exactly.
	Success Status = iota
	// Stopped means the stopper ended the swim early.
	Stopped
	// StepCollapsed means the step size fell below the minimum before the
	// target was reached; the result is partial.
	StepCollapsed
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Stopped:
		return "stopped"
	case StepCollapsed:
		return "step_collapsed"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Result is the outcome of one swim.
type Result struct {
	Final  swim.State
	FinalZ float64
	NSteps int
	Status Status
	Stats  swim.StepStats

	// Traj is non-nil when the swim recorded its trajectory.
	Traj *Trajectory
}

// Summary renders a one-line human-readable account of the swim.
func (r *Result) Summary() string {
	return fmt.Sprintf("%s: %d steps to z=%.4f, h in [%.4g, %.4g] avg %.4g",
		r.Status, r.NSteps, r.FinalZ, r.Stats.Min, r.Stats.Max, r.Stats.Avg)
}
