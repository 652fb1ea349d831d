package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/swimz/internal/swim"
	"github.com/san-kum/swimz/internal/trajectory"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Field     string    `json:"field"`
	Timestamp time.Time `json:"timestamp"`
	Charge    float64   `json:"charge"`
	Momentum  float64   `json:"momentum"`
	Z0        float64   `json:"z0"`
	Zf        float64   `json:"zf"`
	StepSize  float64   `json:"step_size"`
	Advancer  string    `json:"advancer"`
	NSteps    int       `json:"n_steps"`
	FinalZ    float64   `json:"final_z"`
	Status    string    `json:"status"`
	HMin      float64   `json:"h_min"`
	HAvg      float64   `json:"h_avg"`
	HMax      float64   `json:"h_max"`
}

func (s *Store) Save(fieldName string, charge, momentum, z0, zf, h float64, advancer string, result *trajectory.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", fieldName, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Field:     fieldName,
		Timestamp: time.Now(),
		Charge:    charge,
		Momentum:  momentum,
		Z0:        z0,
		Zf:        zf,
		StepSize:  h,
		Advancer:  advancer,
		NSteps:    result.NSteps,
		FinalZ:    result.FinalZ,
		Status:    result.Status.String(),
		HMin:      result.Stats.Min,
		HAvg:      result.Stats.Avg,
		HMax:      result.Stats.Max,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if result.Traj == nil {
		return runID, nil
	}

	csvPath := filepath.Join(runDir, "trajectory.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"z", "x", "y", "tx", "ty", "h"}); err != nil {
		return "", err
	}

	traj := result.Traj
	for i := range traj.Zs {
		row := []string{strconv.FormatFloat(traj.Zs[i], 'f', 6, 64)}
		for _, val := range traj.States[i] {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		row = append(row, strconv.FormatFloat(traj.Hs[i], 'f', 6, 64))
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadTrajectory reads back the (z, state, h) samples of a saved run.
func (s *Store) LoadTrajectory(runID string) (*trajectory.Trajectory, error) {
	csvPath := filepath.Join(s.baseDir, runID, "trajectory.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	traj := &trajectory.Trajectory{}
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 3 {
			continue
		}

		z, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}

		state := make(swim.State, 0, len(record)-2)
		ok := true
		for _, field := range record[1 : len(record)-1] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				ok = false
				break
			}
			state = append(state, v)
		}
		if !ok {
			continue
		}

		h, err := strconv.ParseFloat(record[len(record)-1], 64)
		if err != nil {
			continue
		}

		traj.Zs = append(traj.Zs, z)
		traj.States = append(traj.States, state)
		traj.Hs = append(traj.Hs, h)
	}

	return traj, nil
}
