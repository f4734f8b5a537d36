package storage

import (
	"encoding/json"
	"io"
)

// ExportData is the JSON export shape for a saved run.
type ExportData struct {
	Meta      RunMetadata `json:"meta"`
	Times     []float64   `json:"times"`
	Drifts    []float64   `json:"drifts"`
	Coords    [][]float64 `json:"coords"`
	Snapshots int         `json:"snapshots"`
}

// ExportJSON writes a saved run as indented JSON.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	snaps, err := s.LoadTable(runID)
	if err != nil {
		return err
	}

	data := ExportData{
		Meta:      *meta,
		Times:     make([]float64, len(snaps)),
		Drifts:    make([]float64, len(snaps)),
		Coords:    make([][]float64, len(snaps)),
		Snapshots: len(snaps),
	}
	for i, snap := range snaps {
		data.Times[i] = snap.Time
		data.Drifts[i] = snap.Drift
		data.Coords[i] = snap.Coords
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
