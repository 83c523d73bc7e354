package handlers

import (
	"context"
	"fmt"

	"github.com/RevoloerO/vqm-philosophy-explorer/internal/domain/entities"
	"github.com/RevoloerO/vqm-philosophy-explorer/internal/domain/ports"
	"github.com/RevoloerO/vqm-philosophy-explorer/internal/domain/services"
)

// LayoutHandler runs the layout engines over the stored dataset.
type LayoutHandler struct {
	catalog       ports.Catalog
	constellation *services.ConstellationService
	metro         *services.MetroService
}

// NewLayoutHandler creates a new layout handler.
func NewLayoutHandler(catalog ports.Catalog, constellation *services.ConstellationService, metro *services.MetroService) *LayoutHandler {
	return &LayoutHandler{
		catalog:       catalog,
		constellation: constellation,
		metro:         metro,
	}
}

// StarLayoutResult is the constellation snapshot plus the dataset slices a
// renderer needs alongside it.
type StarLayoutResult struct {
	Canvas       entities.CanvasSize
	Philosophers []entities.Philosopher
	Positions    []entities.Position
	Connections  []entities.Connection
}

// MetroLayoutResult is the metro snapshot plus its inputs and any
// data-modeling warnings.
type MetroLayoutResult struct {
	Canvas       entities.CanvasSize
	Philosophers []entities.Philosopher
	Layout       entities.MetroLayout
	Warnings     []string
}

// HandleStar computes the star-map layout over the whole catalog.
func (h *LayoutHandler) HandleStar(ctx context.Context, canvas entities.CanvasSize, iterations int) (*StarLayoutResult, error) {
	phils, concepts, err := h.loadDataset(ctx)
	if err != nil {
		return nil, err
	}

	result := &StarLayoutResult{
		Canvas:       canvas,
		Philosophers: phils,
		Positions:    h.constellation.ComputeStarPositions(phils, canvas, iterations),
	}
	result.Connections = append(result.Connections, services.BuildSharedConceptEdges(phils, concepts)...)
	result.Connections = append(result.Connections, services.BuildInfluenceEdges(phils)...)
	return result, nil
}

// HandleMetro computes the transit-map layout over the whole catalog.
// Philosophers that matched no declared line are reported as warnings, not
// errors: the engine pins them to the fallback line deterministically.
func (h *LayoutHandler) HandleMetro(ctx context.Context, canvas entities.CanvasSize) (*MetroLayoutResult, error) {
	phils, _, err := h.loadDataset(ctx)
	if err != nil {
		return nil, err
	}

	result := &MetroLayoutResult{
		Canvas:       canvas,
		Philosophers: phils,
		Layout:       h.metro.ComputeMetroLayout(phils, canvas),
	}
	for _, id := range result.Layout.FallbackStations {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%s matches no declared line; pinned to the %s line", id, h.metro.Lines()[0].Concept))
	}
	return result, nil
}

// loadDataset reads the philosopher and concept tables once per layout
// invocation.
func (h *LayoutHandler) loadDataset(ctx context.Context) ([]entities.Philosopher, []entities.Concept, error) {
	phils, err := h.catalog.ListPhilosophers(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("listing philosophers: %w", err)
	}
	concepts, err := h.catalog.ListConcepts(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("listing concepts: %w", err)
	}
	return phils, concepts, nil
}
