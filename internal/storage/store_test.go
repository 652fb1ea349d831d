package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/swimz/internal/swim"
	"github.com/san-kum/swimz/internal/trajectory"
)

func sampleResult() *trajectory.Result {
	traj := &trajectory.Trajectory{}
	traj.Start(0, swim.State{0, 0, 0.1, -0.05})
	traj.OnStep(1.0, swim.State{0.1, -0.05, 0.1, -0.05}, 1.0)
	traj.OnStep(2.5, swim.State{0.25, -0.125, 0.1, -0.05}, 1.5)

	return &trajectory.Result{
		Final:  swim.State{0.25, -0.125, 0.1, -0.05},
		FinalZ: 2.5,
		NSteps: 2,
		Status: trajectory.Success,
		Stats:  swim.StepStats{Min: 1.0, Avg: 1.25, Max: 1.5},
		Traj:   traj,
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("uniform", -1, 2.0, 0, 2.5, 1.0, "halfstep", sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Field != "uniform" {
		t.Errorf("expected field 'uniform', got '%s'", meta.Field)
	}
	if meta.Charge != -1 {
		t.Errorf("expected charge -1, got %f", meta.Charge)
	}
	if meta.NSteps != 2 {
		t.Errorf("expected 2 steps, got %d", meta.NSteps)
	}
	if meta.Status != "success" {
		t.Errorf("expected status success, got %s", meta.Status)
	}
	if meta.HAvg != 1.25 {
		t.Errorf("expected h avg 1.25, got %f", meta.HAvg)
	}
}

func TestStoreLoadTrajectory(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("uniform", -1, 2.0, 0, 2.5, 1.0, "halfstep", sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	traj, err := st.LoadTrajectory(runID)
	if err != nil {
		t.Fatalf("load trajectory failed: %v", err)
	}

	if traj.Len() != 3 {
		t.Fatalf("expected 3 samples, got %d", traj.Len())
	}
	if traj.Zs[2] != 2.5 {
		t.Errorf("expected final z 2.5, got %f", traj.Zs[2])
	}
	if len(traj.States[0]) != 4 {
		t.Errorf("expected 4 state components, got %d", len(traj.States[0]))
	}
	if traj.States[2][0] != 0.25 {
		t.Errorf("expected final x 0.25, got %f", traj.States[2][0])
	}
	if traj.Hs[2] != 1.5 {
		t.Errorf("expected final h 1.5, got %f", traj.Hs[2])
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if _, err := st.Save("uniform", -1, 2.0, 0, 2.5, 1.0, "halfstep", sampleResult()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("uniform", -1, 2.0, 0, 2.5, 1.0, "halfstep", sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmpDir, runID, "metadata.json")); err != nil {
		t.Errorf("metadata.json missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tmpDir, runID, "trajectory.csv")); err != nil {
		t.Errorf("trajectory.csv missing: %v", err)
	}
}

func TestStoreSaveWithoutTrajectory(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	res := sampleResult()
	res.Traj = nil

	runID, err := st.Save("uniform", -1, 2.0, 0, 2.5, 1.0, "halfstep", res)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmpDir, runID, "trajectory.csv")); !os.IsNotExist(err) {
		t.Error("trajectory.csv should not exist for a result without a trajectory")
	}
}
