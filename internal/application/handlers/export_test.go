package handlers

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RevoloerO/vqm-philosophy-explorer/internal/domain/entities"
)

func TestHandleStarExport(t *testing.T) {
	result := &StarLayoutResult{
		Canvas: entities.CanvasSize{Width: 1200, Height: 800},
		Positions: []entities.Position{
			{EntityID: "socrates", X: 100.5, Y: 300},
		},
		Connections: []entities.Connection{
			{Kind: entities.ConnectionInfluence, From: "socrates", To: "plato"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewExportHandler().HandleStar(&buf, result))

	var doc struct {
		Canvas      entities.CanvasSize   `json:"canvas"`
		Positions   []entities.Position   `json:"positions"`
		Connections []entities.Connection `json:"connections"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, result.Canvas, doc.Canvas)
	assert.Equal(t, result.Positions, doc.Positions)
	assert.Equal(t, result.Connections, doc.Connections)
}

func TestHandleMetroExport(t *testing.T) {
	result := &MetroLayoutResult{
		Canvas: entities.CanvasSize{Width: 1200, Height: 800},
		Layout: entities.MetroLayout{
			Stations: []entities.Position{{EntityID: "socrates", X: 100, Y: 200, Line: "Ethics"}},
			Lines: map[string]entities.LineGeometry{
				"Ethics": {Concept: "Ethics", Label: "Ethics Line", Path: "M 0 200.0 L 1200.0 200.0"},
			},
			FallbackStations: []string{"outsider"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewExportHandler().HandleMetro(&buf, result))

	var doc struct {
		Canvas           entities.CanvasSize              `json:"canvas"`
		Stations         []entities.Position              `json:"stations"`
		Lines            map[string]entities.LineGeometry `json:"lines"`
		FallbackStations []string                         `json:"fallback_stations"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, result.Layout.Stations, doc.Stations)
	assert.Equal(t, "Ethics Line", doc.Lines["Ethics"].Label)
	assert.Equal(t, []string{"outsider"}, doc.FallbackStations)
}
