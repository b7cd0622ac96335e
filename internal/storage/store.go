// Package storage persists completed runs under a data directory, one
// subdirectory per run holding metadata.json and trajectory.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/apogee/internal/experiment"
	"github.com/san-kum/apogee/internal/ivp"
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
	ID           string             `json:"id"`
	Model        string             `json:"model"`
	Timestamp    time.Time          `json:"timestamp"`
	Integrator   string             `json:"integrator"`
	Horizon      float64            `json:"horizon"`
	Samples      int                `json:"samples"`
	Apogee       float64            `json:"apogee"`
	CrossingTime float64            `json:"crossing_time"`
	Metrics      map[string]float64 `json:"metrics"`
}

func (s *Store) Save(integrator string, cfg ivp.Config, out *experiment.Outcome) (string, error) {
	runID := fmt.Sprintf("%s_%d", out.Model, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:           runID,
		Model:        out.Model,
		Timestamp:    time.Now(),
		Integrator:   integrator,
		Horizon:      cfg.Horizon,
		Samples:      cfg.Samples,
		Apogee:       out.Apogee.Height,
		CrossingTime: out.Apogee.CrossingTime,
		Metrics:      out.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"time", "velocity"}); err != nil {
		return "", err
	}

	for i := range out.Trajectory.Times {
		row := []string{
			strconv.FormatFloat(out.Trajectory.Times[i], 'f', 6, 64),
			strconv.FormatFloat(out.Trajectory.Vels[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})

	return runs, nil
}

func (s *Store) LoadTrajectory(runID string) (*ivp.Trajectory, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("trajectory file for %s has no samples", runID)
	}

	tr := &ivp.Trajectory{
		Times: make([]float64, 0, len(records)-1),
		Vels:  make([]float64, 0, len(records)-1),
	}

	for _, rec := range records[1:] {
		if len(rec) < 2 {
			return nil, fmt.Errorf("malformed trajectory row: %v", rec)
		}
		t, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, err
		}
		v, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, err
		}
		tr.Times = append(tr.Times, t)
		tr.Vels = append(tr.Vels, v)
	}

	return tr, nil
}

// ExportJSON writes the run metadata together with its full trajectory.
func (s *Store) ExportJSON(w *json.Encoder, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	tr, err := s.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	export := struct {
		RunMetadata
		Times []float64 `json:"times"`
		Vels  []float64 `json:"velocities"`
	}{
		RunMetadata: *meta,
		Times:       tr.Times,
		Vels:        tr.Vels,
	}

	return w.Encode(export)
}
