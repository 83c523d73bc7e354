package handlers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/RevoloerO/vqm-philosophy-explorer/internal/domain/entities"
)

// ExportHandler writes layout snapshots as JSON for an external
// presentation layer.
type ExportHandler struct{}

// NewExportHandler creates a new export handler.
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// starExport is the JSON document shape for a constellation snapshot.
type starExport struct {
	Canvas      entities.CanvasSize   `json:"canvas"`
	Positions   []entities.Position   `json:"positions"`
	Connections []entities.Connection `json:"connections"`
}

// metroExport is the JSON document shape for a metro snapshot.
type metroExport struct {
	Canvas entities.CanvasSize `json:"canvas"`
	entities.MetroLayout
}

// HandleStar writes a constellation snapshot to w.
func (h *ExportHandler) HandleStar(w io.Writer, result *StarLayoutResult) error {
	doc := starExport{
		Canvas:      result.Canvas,
		Positions:   result.Positions,
		Connections: result.Connections,
	}
	if err := encodeIndented(w, doc); err != nil {
		return fmt.Errorf("exporting star layout: %w", err)
	}
	return nil
}

// HandleMetro writes a metro snapshot to w.
func (h *ExportHandler) HandleMetro(w io.Writer, result *MetroLayoutResult) error {
	doc := metroExport{
		Canvas:      result.Canvas,
		MetroLayout: result.Layout,
	}
	if err := encodeIndented(w, doc); err != nil {
		return fmt.Errorf("exporting metro layout: %w", err)
	}
	return nil
}

// encodeIndented writes v as indented JSON.
func encodeIndented(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
