package handlers

import (
	"context"
	"fmt"

	"github.com/RevoloerO/vqm-philosophy-explorer/internal/domain/entities"
	"github.com/RevoloerO/vqm-philosophy-explorer/internal/domain/ports"
)

// EntityHandler handles philosopher catalog queries.
type EntityHandler struct {
	catalog ports.Catalog
}

// NewEntityHandler creates a new entity handler.
func NewEntityHandler(catalog ports.Catalog) *EntityHandler {
	return &EntityHandler{catalog: catalog}
}

// EntityListResult contains a philosopher listing with a per-era summary.
type EntityListResult struct {
	Philosophers []entities.Philosopher
	Total        int
	EraCounts    map[entities.Era]int
}

// HandleList returns all philosophers in chronological order, with per-era
// counts for the summary line.
func (h *EntityHandler) HandleList(ctx context.Context) (*EntityListResult, error) {
	phils, err := h.catalog.ListPhilosophers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing philosophers: %w", err)
	}
	eraCounts, err := h.catalog.CountPhilosophersByEra(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting philosophers by era: %w", err)
	}
	return &EntityListResult{Philosophers: phils, Total: len(phils), EraCounts: eraCounts}, nil
}

// HandleSearch returns philosophers whose title matches the query.
func (h *EntityHandler) HandleSearch(ctx context.Context, query string, limit int) (*EntityListResult, error) {
	phils, err := h.catalog.SearchPhilosophers(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("searching philosophers: %w", err)
	}
	return &EntityListResult{Philosophers: phils, Total: len(phils)}, nil
}

// HandleGet returns one philosopher by id, or an error if absent.
func (h *EntityHandler) HandleGet(ctx context.Context, id string) (*entities.Philosopher, error) {
	p, err := h.catalog.FindPhilosopherByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding philosopher: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("philosopher not found: %s", id)
	}
	return p, nil
}

// HandleDelete removes a philosopher from the catalog.
func (h *EntityHandler) HandleDelete(ctx context.Context, id string) error {
	if err := h.catalog.DeletePhilosopher(ctx, id); err != nil {
		return fmt.Errorf("deleting philosopher: %w", err)
	}
	return nil
}

// HandleConcepts returns the stored concept table.
func (h *EntityHandler) HandleConcepts(ctx context.Context) ([]entities.Concept, error) {
	concepts, err := h.catalog.ListConcepts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing concepts: %w", err)
	}
	return concepts, nil
}
