package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RevoloerO/vqm-philosophy-explorer/internal/domain/entities"
)

func testPhilosophers() []entities.Philosopher {
	return []entities.Philosopher{
		{ID: "thales", Title: "Thales", NumericYear: -600, Concepts: []string{"Metaphysics"}},
		{ID: "socrates", Title: "Socrates", NumericYear: -470, Concepts: []string{"Ethics", "Epistemology"}},
		{ID: "plato", Title: "Plato", NumericYear: -428, Concepts: []string{"Metaphysics", "Ethics", "Politics"}, InfluencedBy: []string{"socrates"}},
		{ID: "aristotle", Title: "Aristotle", NumericYear: -384, Concepts: []string{"Logic", "Ethics", "Metaphysics"}, InfluencedBy: []string{"plato"}},
		{ID: "kant", Title: "Kant", NumericYear: 1724, Concepts: []string{"Ethics", "Epistemology"}},
	}
}

func TestBuildSharedConceptEdgesChains(t *testing.T) {
	phils := testPhilosophers()
	edges := BuildSharedConceptEdges(phils, entities.DefaultConcepts)

	// Each concept with N >= 2 members yields exactly N-1 edges.
	counts := map[string]int{}
	for _, e := range edges {
		assert.Equal(t, entities.ConnectionSharedConcept, e.Kind)
		counts[e.Concept]++
	}
	assert.Equal(t, 2, counts["Metaphysics"], "thales, plato, aristotle chain")
	assert.Equal(t, 3, counts["Ethics"], "socrates, plato, aristotle, kant chain")
	assert.Equal(t, 1, counts["Epistemology"])
	assert.Zero(t, counts["Politics"], "single member, no edge")
	assert.Zero(t, counts["Logic"], "single member, no edge")
}

func TestBuildSharedConceptEdgesChronological(t *testing.T) {
	phils := testPhilosophers()
	edges := BuildSharedConceptEdges(phils, entities.DefaultConcepts)

	var metaphysics []entities.Connection
	for _, e := range edges {
		if e.Concept == "Metaphysics" {
			metaphysics = append(metaphysics, e)
		}
	}
	require.Len(t, metaphysics, 2)

	// Chain connects chronologically-adjacent pairs, earlier entity first.
	assert.Equal(t, "thales", metaphysics[0].From)
	assert.Equal(t, "plato", metaphysics[0].To)
	assert.Equal(t, "plato", metaphysics[1].From)
	assert.Equal(t, "aristotle", metaphysics[1].To)
	assert.Equal(t, "Reality", metaphysics[0].Category)
}

func TestBuildSharedConceptEdgesUnknownCategory(t *testing.T) {
	phils := []entities.Philosopher{
		{ID: "a", NumericYear: -100, Concepts: []string{"Obscurantism"}},
		{ID: "b", NumericYear: 100, Concepts: []string{"Obscurantism"}},
	}
	edges := BuildSharedConceptEdges(phils, nil)

	require.Len(t, edges, 1)
	assert.Equal(t, entities.CategoryUnknown, edges[0].Category)
}

func TestBuildSharedConceptEdgesTieOrder(t *testing.T) {
	// Equal years keep dataset order (stable sort).
	phils := []entities.Philosopher{
		{ID: "first", NumericYear: -300, Concepts: []string{"Ethics"}},
		{ID: "second", NumericYear: -300, Concepts: []string{"Ethics"}},
	}
	edges := BuildSharedConceptEdges(phils, nil)

	require.Len(t, edges, 1)
	assert.Equal(t, "first", edges[0].From)
	assert.Equal(t, "second", edges[0].To)
}

func TestBuildInfluenceEdges(t *testing.T) {
	phils := testPhilosophers()
	edges := BuildInfluenceEdges(phils)

	require.Len(t, edges, 2, "one edge per InfluencedBy reference")
	assert.Equal(t, "socrates", edges[0].From)
	assert.Equal(t, "plato", edges[0].To)
	assert.Equal(t, "plato", edges[1].From)
	assert.Equal(t, "aristotle", edges[1].To)
	for _, e := range edges {
		assert.Equal(t, entities.ConnectionInfluence, e.Kind)
	}
}

func TestBuildInfluenceEdgesDropsDangling(t *testing.T) {
	phils := []entities.Philosopher{
		{ID: "a", NumericYear: 0, InfluencedBy: []string{"missing", "b"}},
		{ID: "b", NumericYear: -100},
	}
	edges := BuildInfluenceEdges(phils)

	require.Len(t, edges, 1, "dangling reference silently filtered")
	assert.Equal(t, "b", edges[0].From)
	assert.Equal(t, "a", edges[0].To)
}

func TestSharedConceptEndToEnd(t *testing.T) {
	// A-{X}, B-{X,Y}, C-{Y}: exactly (A,B,X) and (B,C,Y), never (A,C).
	phils := []entities.Philosopher{
		{ID: "A", NumericYear: -600, Concepts: []string{"X"}},
		{ID: "B", NumericYear: -400, Concepts: []string{"X", "Y"}},
		{ID: "C", NumericYear: 0, Concepts: []string{"Y"}},
	}
	edges := BuildSharedConceptEdges(phils, nil)

	require.Len(t, edges, 2)
	keys := []string{edges[0].From + "-" + edges[0].To + "-" + edges[0].Concept,
		edges[1].From + "-" + edges[1].To + "-" + edges[1].Concept}
	assert.Contains(t, keys, "A-B-X")
	assert.Contains(t, keys, "B-C-Y")
}

func TestConceptIndexNeighbors(t *testing.T) {
	phils := testPhilosophers()
	idx := BuildConceptIndex(phils)

	// Thales (index 0) shares Metaphysics with Plato (2) and Aristotle (3).
	assert.ElementsMatch(t, []int{2, 3}, idx.Neighbors(phils, 0))

	// A philosopher never appears in its own neighbor set.
	for _, n := range idx.Neighbors(phils, 2) {
		assert.NotEqual(t, 2, n)
	}
}
