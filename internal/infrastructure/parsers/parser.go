// Package parsers provides parsers for importing philosopher datasets from
// various formats.
package parsers

import (
	"io"
	"path/filepath"
	"strings"
)

// RawPhilosopher represents a philosopher record parsed from an external
// source before validation. Year holds the raw historical label; the
// numeric year is derived during import, never read from the source.
type RawPhilosopher struct {
	ID           string   `json:"id,omitempty" yaml:"id,omitempty"`
	Title        string   `json:"title" yaml:"title"`
	Year         string   `json:"year" yaml:"year"`
	Era          string   `json:"era,omitempty" yaml:"era,omitempty"`
	Type         string   `json:"type,omitempty" yaml:"type,omitempty"`
	Concepts     []string `json:"concepts,omitempty" yaml:"concepts,omitempty"`
	InfluencedBy []string `json:"influenced_by,omitempty" yaml:"influenced_by,omitempty"`
	Quotes       []string `json:"quotes,omitempty" yaml:"quotes,omitempty"`
	LineNum      int      `json:"-" yaml:"-"` // set by the CSV parser
}

// RawConcept represents a concept record parsed from an external source.
type RawConcept struct {
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

// Dataset is a parsed dataset document: philosophers plus an optional
// concept table carrying categories.
type Dataset struct {
	Philosophers []RawPhilosopher `json:"philosophers" yaml:"philosophers"`
	Concepts     []RawConcept     `json:"concepts,omitempty" yaml:"concepts,omitempty"`
}

// Parser defines the interface for parsing datasets from various formats.
type Parser interface {
	Parse(r io.Reader) (*Dataset, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "csv", "yaml".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "csv":
		return &CSVParser{}
	case "yaml", "yml":
		return &YAMLParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return &JSONParser{}
	case ".csv":
		return &CSVParser{}
	case ".yaml", ".yml":
		return &YAMLParser{}
	default:
		return nil
	}
}
