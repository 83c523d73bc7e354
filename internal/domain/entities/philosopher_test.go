package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEraForYear(t *testing.T) {
	tests := []struct {
		year int
		want Era
	}{
		{-600, EraAncient},
		{499, EraAncient},
		{500, EraMedieval},
		{1399, EraMedieval},
		{1400, EraEnlightenment},
		{1799, EraEnlightenment},
		{1800, EraNineteenth},
		{1899, EraNineteenth},
		{1900, EraContemporary},
		{1950, EraContemporary},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EraForYear(tt.year), "year %d", tt.year)
	}
}

func TestIsValidEra(t *testing.T) {
	for _, e := range Eras {
		assert.True(t, IsValidEra(string(e)))
	}
	assert.False(t, IsValidEra("Modern"))
	assert.False(t, IsValidEra(""))
}

func TestHasConcept(t *testing.T) {
	p := Philosopher{Concepts: []string{"Ethics", "Logic"}}

	assert.True(t, p.HasConcept("Ethics"))
	assert.False(t, p.HasConcept("ethics"), "concept match is case sensitive")
	assert.False(t, p.HasConcept("Metaphysics"))
}

func TestDedupConcepts(t *testing.T) {
	p := Philosopher{Concepts: []string{"Ethics", "", "Logic", "Ethics", "Logic"}}
	p.DedupConcepts()

	assert.Equal(t, []string{"Ethics", "Logic"}, p.Concepts, "first occurrence order kept, empties dropped")

	empty := Philosopher{}
	empty.DedupConcepts()
	assert.Empty(t, empty.Concepts)
}

func TestConceptCategories(t *testing.T) {
	categories := ConceptCategories([]Concept{{Name: "Ethics", Category: "Custom"}, {Name: "Gardening", Category: "Leisure"}})

	assert.Equal(t, "Custom", categories["Ethics"], "provided concepts override defaults")
	assert.Equal(t, "Leisure", categories["Gardening"])
	assert.Equal(t, "Reality", categories["Metaphysics"], "defaults still present")
}

func TestConnectionKey(t *testing.T) {
	a := Connection{Kind: ConnectionSharedConcept, From: "a", To: "b", Concept: "Ethics"}
	b := Connection{Kind: ConnectionSharedConcept, From: "a", To: "b", Concept: "Logic"}

	assert.NotEqual(t, a.Key(), b.Key(), "concept participates in the identity")
	assert.Equal(t, a.Key(), a.Key())
}

func TestCanvasSizeValid(t *testing.T) {
	assert.True(t, CanvasSize{Width: 100, Height: 100}.Valid())
	assert.False(t, CanvasSize{}.Valid())
	assert.False(t, CanvasSize{Width: 100}.Valid())
	assert.False(t, CanvasSize{Width: -5, Height: 100}.Valid())
}

func TestDefaultMetroLinesOrder(t *testing.T) {
	// The first declared line is the fallback for unmatched philosophers;
	// its identity is a contract.
	assert.Equal(t, "Metaphysics", DefaultMetroLines[0].Concept)
	assert.Len(t, DefaultMetroLines, 7)
}
