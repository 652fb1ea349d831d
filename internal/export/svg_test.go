package export

import (
	"strings"
	"testing"

	"github.com/san-kum/swimz/internal/swim"
	"github.com/san-kum/swimz/internal/trajectory"
)

func TestTrajectorySVG(t *testing.T) {
	traj := &trajectory.Trajectory{}
	traj.Start(0, swim.State{0, 0, 0.1, 0})
	traj.OnStep(1, swim.State{0.1, 0, 0.1, 0}, 1)
	traj.OnStep(2, swim.State{0.2, 0, 0.1, 0}, 1)

	svg := TrajectorySVG(traj, 800, 400, "#00ff00")
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "<path") {
		t.Error("expected svg with a path element")
	}
	if !strings.Contains(svg, "#00ff00") {
		t.Error("stroke color not applied")
	}
}

func TestTrajectorySVGTooShort(t *testing.T) {
	traj := &trajectory.Trajectory{}
	traj.Start(0, swim.State{0, 0, 0, 0})

	if TrajectorySVG(traj, 100, 100, "#fff") != "" {
		t.Error("expected empty output for a single-sample trajectory")
	}
	if TrajectorySVG(nil, 100, 100, "#fff") != "" {
		t.Error("expected empty output for nil trajectory")
	}
}
