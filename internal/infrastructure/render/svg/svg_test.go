package svg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RevoloerO/vqm-philosophy-explorer/internal/domain/entities"
	"github.com/RevoloerO/vqm-philosophy-explorer/internal/domain/services"
)

var canvas = entities.CanvasSize{Width: 1200, Height: 800}

func starFixture() ([]entities.Philosopher, []entities.Position, []entities.Connection) {
	phils := []entities.Philosopher{
		{ID: "socrates", Title: "Socrates", Era: entities.EraAncient, Type: entities.EntityTypeMajor},
		{ID: "plato", Title: "Plato & Co <Academy>", Era: entities.EraAncient, Type: entities.EntityTypeMinor},
	}
	positions := []entities.Position{
		{EntityID: "socrates", X: 100, Y: 300},
		{EntityID: "plato", X: 200, Y: 350},
	}
	conns := []entities.Connection{
		{Kind: entities.ConnectionSharedConcept, From: "socrates", To: "plato", Concept: "Ethics", Category: "Value"},
		{Kind: entities.ConnectionInfluence, From: "socrates", To: "plato"},
	}
	return phils, positions, conns
}

func TestStarMap(t *testing.T) {
	phils, positions, conns := starFixture()
	doc := NewRenderer(canvas).StarMap(phils, positions, conns)

	assert.True(t, strings.HasPrefix(doc, `<?xml version="1.0"`))
	assert.Contains(t, doc, `<svg width="1200" height="800"`)
	assert.True(t, strings.HasSuffix(doc, "</svg>\n"))

	assert.Contains(t, doc, `r="6.0"`, "major thinkers get the large marker")
	assert.Contains(t, doc, `r="4.0"`)
	assert.Contains(t, doc, `stroke="#2a9d8f"`, "shared-concept edge colored by category")
	assert.Contains(t, doc, `stroke-dasharray`, "influence edges dashed")
	assert.Contains(t, doc, ">Socrates</text>")
}

func TestStarMapEscapesLabels(t *testing.T) {
	phils, positions, conns := starFixture()
	doc := NewRenderer(canvas).StarMap(phils, positions, conns)

	assert.Contains(t, doc, "Plato &amp; Co &lt;Academy&gt;")
	assert.NotContains(t, doc, "<Academy>")
}

func TestStarMapSkipsUnplacedConnections(t *testing.T) {
	phils, positions, _ := starFixture()
	conns := []entities.Connection{
		{Kind: entities.ConnectionInfluence, From: "socrates", To: "ghost"},
	}

	doc := NewRenderer(canvas).StarMap(phils, positions, conns)
	assert.NotContains(t, doc, "<line", "edges to missing positions dropped")
}

func TestMetroMap(t *testing.T) {
	phils := []entities.Philosopher{
		{ID: "socrates", Title: "Socrates", NumericYear: -470, Concepts: []string{"Ethics"}},
		{ID: "aristotle", Title: "Aristotle", NumericYear: -384, Concepts: []string{"Logic", "Ethics"}},
	}
	metro := services.NewMetroService(nil)
	layout := metro.ComputeMetroLayout(phils, canvas)

	doc := NewRenderer(canvas).MetroMap(phils, layout, metro.Lines())

	require.Contains(t, doc, `<path d="M 0 `)
	assert.Contains(t, doc, `stroke="#2a9d8f"`, "line path uses the declared color")
	assert.Contains(t, doc, ">Ethics Line</text>")
	assert.Contains(t, doc, `r="7"`, "interchange marker present")
	assert.Contains(t, doc, `r="5"`)
	assert.Contains(t, doc, ">Aristotle</text>")
}

func TestMetroMapEmptyLayout(t *testing.T) {
	layout := services.NewMetroService(nil).ComputeMetroLayout(nil, canvas)

	doc := NewRenderer(canvas).MetroMap(nil, layout, entities.DefaultMetroLines)
	assert.Contains(t, doc, "<svg")
	assert.NotContains(t, doc, "<path", "no lines without stations")
	assert.NotContains(t, doc, "<circle cx=")
}
