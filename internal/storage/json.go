package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/isabella232/ducktape/internal/domain"
)

// Save writes the result collection to the configured JSON file.
func (s *JSONStorage) Save(results *domain.ResultCollection) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// Load reads a result collection from the configured JSON file and checks
// its directory invariant before handing it to reporters.
func (s *JSONStorage) Load() (*domain.ResultCollection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var results domain.ResultCollection
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	if err := results.Validate(); err != nil {
		return nil, fmt.Errorf("invalid results file: %w", err)
	}
	return &results, nil
}
