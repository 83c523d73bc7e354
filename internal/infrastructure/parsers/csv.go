package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVParser parses datasets from CSV format. Multi-valued columns
// (concepts, influenced_by, quotes) are semicolon-separated.
type CSVParser struct{}

// Parse reads CSV from the reader and returns the parsed dataset.
// Expected columns: title, year; optional: id, era, type, concepts,
// influenced_by, quotes. Header matching is case-insensitive.
func (p *CSVParser) Parse(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)

	colIndex, err := p.readHeader(reader)
	if err != nil {
		return nil, err
	}

	var phils []RawPhilosopher
	lineNum := 1 // header is line 1
	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		phils = append(phils, p.parseRecord(record, colIndex, lineNum))
	}

	return &Dataset{Philosophers: phils}, nil
}

// readHeader reads and validates the CSV header row.
func (p *CSVParser) readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[strings.ToLower(strings.TrimSpace(col))] = i
	}

	for _, col := range []string{"title", "year"} {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	return colIndex, nil
}

// parseRecord converts a CSV record to a RawPhilosopher.
func (p *CSVParser) parseRecord(record []string, colIndex map[string]int, lineNum int) RawPhilosopher {
	return RawPhilosopher{
		ID:           getColumn(record, colIndex, "id"),
		Title:        getColumn(record, colIndex, "title"),
		Year:         getColumn(record, colIndex, "year"),
		Era:          getColumn(record, colIndex, "era"),
		Type:         getColumn(record, colIndex, "type"),
		Concepts:     splitList(getColumn(record, colIndex, "concepts")),
		InfluencedBy: splitList(getColumn(record, colIndex, "influenced_by")),
		Quotes:       splitList(getColumn(record, colIndex, "quotes")),
		LineNum:      lineNum,
	}
}

// getColumn safely retrieves a column value from a record.
func getColumn(record []string, colIndex map[string]int, col string) string {
	if idx, ok := colIndex[col]; ok && idx < len(record) {
		return strings.TrimSpace(record[idx])
	}
	return ""
}

// splitList splits a semicolon-separated cell into trimmed values.
func splitList(cell string) []string {
	if cell == "" {
		return nil
	}
	var values []string
	for _, v := range strings.Split(cell, ";") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
