package parsers

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONParser parses datasets from JSON format.
type JSONParser struct{}

// Parse reads JSON from the reader and returns the parsed dataset.
// Accepts either a full dataset document ({"philosophers": [...],
// "concepts": [...]}) or a bare philosopher array.
func (p *JSONParser) Parse(r io.Reader) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading JSON: %w", err)
	}

	var dataset Dataset
	if err := json.Unmarshal(data, &dataset); err == nil && dataset.Philosophers != nil {
		return &dataset, nil
	}

	var phils []RawPhilosopher
	if err := json.Unmarshal(data, &phils); err != nil {
		return nil, fmt.Errorf("parsing JSON dataset: %w", err)
	}
	return &Dataset{Philosophers: phils}, nil
}
