package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/stresslens/stresslens/pkg/dataset"
)

// LoadJSON reads a corpus from a JSON array of case objects.
func LoadJSON(path string) ([]dataset.HistoricalCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	var cases []dataset.HistoricalCase
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("parse dataset json: %w", err)
	}
	return cases, nil
}

// SaveJSON writes a corpus as an indented JSON array.
func SaveJSON(path string, cases []dataset.HistoricalCase) error {
	data, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal dataset: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	return nil
}
