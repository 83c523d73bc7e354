package handlers

import (
	"context"
	"fmt"

	"github.com/RevoloerO/vqm-philosophy-explorer/internal/domain/entities"
	"github.com/RevoloerO/vqm-philosophy-explorer/internal/domain/ports"
	"github.com/RevoloerO/vqm-philosophy-explorer/internal/domain/services"
)

// GraphHandler derives connection edges from the stored dataset.
type GraphHandler struct {
	catalog ports.Catalog
}

// NewGraphHandler creates a new graph handler.
func NewGraphHandler(catalog ports.Catalog) *GraphHandler {
	return &GraphHandler{catalog: catalog}
}

// ConnectionsResult contains the derived edge list.
type ConnectionsResult struct {
	Connections []entities.Connection
	Shared      int
	Influence   int
}

// HandleConnections rebuilds all edges from the catalog. kind filters the
// output to one connection kind; empty means both.
func (h *GraphHandler) HandleConnections(ctx context.Context, kind string) (*ConnectionsResult, error) {
	phils, err := h.catalog.ListPhilosophers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing philosophers: %w", err)
	}
	concepts, err := h.catalog.ListConcepts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing concepts: %w", err)
	}

	result := &ConnectionsResult{}
	if kind == "" || kind == string(entities.ConnectionSharedConcept) {
		shared := services.BuildSharedConceptEdges(phils, concepts)
		result.Connections = append(result.Connections, shared...)
		result.Shared = len(shared)
	}
	if kind == "" || kind == string(entities.ConnectionInfluence) {
		influence := services.BuildInfluenceEdges(phils)
		result.Connections = append(result.Connections, influence...)
		result.Influence = len(influence)
	}
	return result, nil
}
