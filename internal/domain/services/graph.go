package services

import (
	"sort"

	"github.com/RevoloerO/vqm-philosophy-explorer/internal/domain/entities"
)

// ConceptIndex maps each concept name to the indexes of the philosophers
// tagged with it, preserving dataset order. It is built fresh per layout
// invocation and read-only afterwards.
type ConceptIndex struct {
	members map[string][]int
	names   []string // first-appearance order, for deterministic iteration
}

// BuildConceptIndex builds the concept → philosophers lookup shared by the
// edge builder and the constellation gravity pass.
func BuildConceptIndex(phils []entities.Philosopher) ConceptIndex {
	idx := ConceptIndex{members: make(map[string][]int)}
	for i := range phils {
		for _, c := range phils[i].Concepts {
			if _, seen := idx.members[c]; !seen {
				idx.names = append(idx.names, c)
			}
			idx.members[c] = append(idx.members[c], i)
		}
	}
	return idx
}

// Names returns all concept names in first-appearance order.
func (idx ConceptIndex) Names() []string { return idx.names }

// Members returns the philosopher indexes tagged with the concept.
func (idx ConceptIndex) Members(name string) []int { return idx.members[name] }

// Neighbors returns the indexes of every other philosopher sharing at least
// one concept with phils[i], in first-encounter order.
func (idx ConceptIndex) Neighbors(phils []entities.Philosopher, i int) []int {
	var neighbors []int
	seen := map[int]bool{i: true}
	for _, c := range phils[i].Concepts {
		for _, j := range idx.members[c] {
			if !seen[j] {
				seen[j] = true
				neighbors = append(neighbors, j)
			}
		}
	}
	return neighbors
}

// BuildSharedConceptEdges derives one chronological chain of edges per
// concept: philosophers carrying the concept are sorted by year (stable, so
// ties keep dataset order) and each consecutive pair yields one edge with
// the earlier philosopher first. This bounds the edge count to members-1
// per concept rather than a complete graph, and reads as an idea passing
// from thinker to thinker over time.
func BuildSharedConceptEdges(phils []entities.Philosopher, concepts []entities.Concept) []entities.Connection {
	idx := BuildConceptIndex(phils)
	categories := entities.ConceptCategories(concepts)

	var edges []entities.Connection
	for _, name := range idx.names {
		members := idx.members[name]
		if len(members) < 2 {
			continue
		}

		ordered := make([]int, len(members))
		copy(ordered, members)
		sort.SliceStable(ordered, func(a, b int) bool {
			return phils[ordered[a]].NumericYear < phils[ordered[b]].NumericYear
		})

		category, ok := categories[name]
		if !ok {
			category = entities.CategoryUnknown
		}

		for i := 0; i < len(ordered)-1; i++ {
			edges = append(edges, entities.Connection{
				Kind:     entities.ConnectionSharedConcept,
				From:     phils[ordered[i]].ID,
				To:       phils[ordered[i+1]].ID,
				Concept:  name,
				Category: category,
			})
		}
	}
	return edges
}

// BuildInfluenceEdges emits one directed teacher → student edge per
// InfluencedBy reference. References to ids absent from the dataset are
// silently dropped: a partially-corrupt dataset must still render.
func BuildInfluenceEdges(phils []entities.Philosopher) []entities.Connection {
	known := make(map[string]bool, len(phils))
	for i := range phils {
		known[phils[i].ID] = true
	}

	var edges []entities.Connection
	for i := range phils {
		for _, teacherID := range phils[i].InfluencedBy {
			if !known[teacherID] {
				continue
			}
			edges = append(edges, entities.Connection{
				Kind: entities.ConnectionInfluence,
				From: teacherID,
				To:   phils[i].ID,
			})
		}
	}
	return edges
}
