// Package handlers wires domain services to the CLI surface.
package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/RevoloerO/vqm-philosophy-explorer/internal/domain/entities"
	"github.com/RevoloerO/vqm-philosophy-explorer/internal/domain/ports"
	"github.com/RevoloerO/vqm-philosophy-explorer/internal/domain/services"
	"github.com/RevoloerO/vqm-philosophy-explorer/internal/infrastructure/parsers"
)

// ImportHandler imports philosopher datasets into the catalog.
type ImportHandler struct {
	catalog ports.Catalog
}

// NewImportHandler creates a new import handler.
func NewImportHandler(catalog ports.Catalog) *ImportHandler {
	return &ImportHandler{catalog: catalog}
}

// ImportResult contains the result of an import.
type ImportResult struct {
	Imported int
	Concepts int
	Skipped  int
	// Warnings carries per-record issues that did not block the import,
	// notably year labels that parsed to the 0 fallback.
	Warnings []string
}

// HandleFile parses and imports a dataset file. The format is derived from
// the file extension when not given explicitly.
func (h *ImportHandler) HandleFile(ctx context.Context, path, format string) (*ImportResult, error) {
	var parser parsers.Parser
	if format != "" {
		parser = parsers.ForFormat(format)
	} else {
		parser = parsers.ForFile(path)
	}
	if parser == nil {
		return nil, fmt.Errorf("unsupported dataset format for %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset file: %w", err)
	}
	defer f.Close()

	dataset, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}

	return h.HandleDataset(ctx, dataset)
}

// HandleDataset validates and stores a parsed dataset. Records without a
// title are skipped with a warning; everything else degrades gracefully
// (missing ids get generated, missing eras are derived from the year).
func (h *ImportHandler) HandleDataset(ctx context.Context, dataset *parsers.Dataset) (*ImportResult, error) {
	result := &ImportResult{}

	// Seed the built-in concept table first so dataset-provided categories
	// win on conflict.
	for i := range entities.DefaultConcepts {
		if err := h.catalog.SaveConcept(ctx, &entities.DefaultConcepts[i]); err != nil {
			return nil, fmt.Errorf("seeding default concepts: %w", err)
		}
	}
	for _, raw := range dataset.Concepts {
		if raw.Name == "" {
			continue
		}
		concept := entities.Concept{Name: raw.Name, Category: raw.Category}
		if concept.Category == "" {
			concept.Category = entities.CategoryUnknown
		}
		if err := h.catalog.SaveConcept(ctx, &concept); err != nil {
			return nil, fmt.Errorf("saving concept %q: %w", raw.Name, err)
		}
		result.Concepts++
	}

	for _, raw := range dataset.Philosophers {
		p, warnings := normalizeRecord(raw)
		if p == nil {
			result.Skipped++
			result.Warnings = append(result.Warnings, warnings...)
			continue
		}
		result.Warnings = append(result.Warnings, warnings...)

		if err := h.catalog.SavePhilosopher(ctx, p); err != nil {
			return nil, fmt.Errorf("saving philosopher %q: %w", p.Title, err)
		}
		result.Imported++
	}

	return result, nil
}

// normalizeRecord converts a raw record into a philosopher, collecting
// non-fatal warnings. A nil philosopher means the record was unusable.
func normalizeRecord(raw parsers.RawPhilosopher) (*entities.Philosopher, []string) {
	var warnings []string

	if raw.Title == "" {
		return nil, []string{recordWarning(raw, "missing title, record skipped")}
	}

	year := services.ParseYear(raw.Year)
	if year == 0 {
		warnings = append(warnings, recordWarning(raw,
			fmt.Sprintf("year label %q parsed to 0; treat as unknown", raw.Year)))
	}

	p := &entities.Philosopher{
		ID:           raw.ID,
		Title:        raw.Title,
		YearLabel:    raw.Year,
		NumericYear:  year,
		Concepts:     raw.Concepts,
		InfluencedBy: raw.InfluencedBy,
		Quotes:       raw.Quotes,
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.DedupConcepts()

	if entities.IsValidEra(raw.Era) {
		p.Era = entities.Era(raw.Era)
	} else {
		if raw.Era != "" {
			warnings = append(warnings, recordWarning(raw,
				fmt.Sprintf("unknown era %q, derived from year instead", raw.Era)))
		}
		p.Era = entities.EraForYear(year)
	}

	switch entities.EntityType(raw.Type) {
	case entities.EntityTypeMajor, entities.EntityTypeMinor:
		p.Type = entities.EntityType(raw.Type)
	default:
		p.Type = entities.EntityTypeMinor
	}

	return p, warnings
}

// recordWarning formats a warning with the best available record handle.
func recordWarning(raw parsers.RawPhilosopher, msg string) string {
	switch {
	case raw.Title != "":
		return fmt.Sprintf("%s: %s", raw.Title, msg)
	case raw.LineNum > 0:
		return fmt.Sprintf("line %d: %s", raw.LineNum, msg)
	default:
		return msg
	}
}
