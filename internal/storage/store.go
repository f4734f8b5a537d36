// Package storage keeps a history of completed runs under a data
// directory, one subdirectory per run with metadata.json and the output
// table.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/san-kum/orbitlab/internal/orbit"
	"github.com/san-kum/orbitlab/internal/sim"
	"github.com/san-kum/orbitlab/internal/table"
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
	ID            string         `json:"id"`
	Timestamp     time.Time      `json:"timestamp"`
	Orbit         orbit.Elements `json:"orbit"`
	Years         float64        `json:"years"`
	DtFraction    float64        `json:"dt_fraction"`
	Steps         int            `json:"steps"`
	Snapshots     int            `json:"snapshots"`
	InitialEnergy float64        `json:"initial_energy"`
	FinalEnergy   float64        `json:"final_energy"`
	FinalDrift    float64        `json:"final_drift"`
}

// Save records a finished run and returns its ID.
func (s *Store) Save(el orbit.Elements, cfg sim.Config, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:            runID,
		Timestamp:     time.Now(),
		Orbit:         el,
		Years:         cfg.Years,
		DtFraction:    cfg.DtFraction,
		Steps:         result.Steps,
		Snapshots:     len(result.Snapshots),
		InitialEnergy: result.InitialEnergy,
		FinalEnergy:   result.FinalEnergy,
	}
	if n := len(result.Snapshots); n > 0 {
		meta.FinalDrift = result.Snapshots[n-1].Drift
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

	if err := table.WriteFile(filepath.Join(runDir, "table.out"), result); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns metadata for every run found in the data directory.
// Unreadable entries are skipped.
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

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
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

// LoadTable reads a saved run's snapshot table.
func (s *Store) LoadTable(runID string) ([]sim.Snapshot, error) {
	return table.ReadFile(filepath.Join(s.baseDir, runID, "table.out"))
}
