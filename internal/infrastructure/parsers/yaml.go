package parsers

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLParser parses datasets from YAML format, using the same document
// shape as the JSON parser.
type YAMLParser struct{}

// Parse reads YAML from the reader and returns the parsed dataset.
func (p *YAMLParser) Parse(r io.Reader) (*Dataset, error) {
	var dataset Dataset
	if err := yaml.NewDecoder(r).Decode(&dataset); err != nil {
		return nil, fmt.Errorf("parsing YAML dataset: %w", err)
	}
	return &dataset, nil
}
