package storage

import (
	"encoding/json"
	"io"
)

type ExportData struct {
	RunMetadata
	Population []int `json:"population"`
}

// ExportJSON writes a run's metadata and population series as one
// indented JSON document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	population, err := s.LoadPopulation(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{RunMetadata: *meta, Population: population})
}
