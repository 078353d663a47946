// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/bookfinder/pkg/types"
)

// SaveFile is the on-disk representation of a search and its results. A
// saved search can be reloaded later without re-fetching the catalog.
// Implements: prd003-query R4.1.
type SaveFile struct {
	Params  map[string]string `yaml:"params"`
	Results []types.Result    `yaml:"results"`
	Summary SaveSummary       `yaml:"summary"`
}

// SaveSummary stores result statistics and a timestamp.
type SaveSummary struct {
	Total     int       `yaml:"total"`
	Listings  int       `yaml:"listings"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteSaveFile saves the session parameters and results to a YAML file.
func WriteSaveFile(path string, s Session, results []types.Result) error {
	listings := 0
	for _, r := range results {
		if r.Listing {
			listings++
		}
	}

	sf := SaveFile{
		Params:  s.Params(),
		Results: results,
		Summary: SaveSummary{
			Total:     len(results),
			Listings:  listings,
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&sf)
	if err != nil {
		return fmt.Errorf("marshaling save file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadSaveFile loads a previously saved search from disk.
func ReadSaveFile(path string) (*SaveFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading save file: %w", err)
	}
	var sf SaveFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing save file: %w", err)
	}
	return &sf, nil
}

// Session rebuilds the saved session. Unknown parameter keys are dropped,
// matching the live parameter interface.
func (f *SaveFile) Session() Session {
	s := NewSession()
	for key, value := range f.Params {
		s = s.WithKey(key, value)
	}
	return s
}
