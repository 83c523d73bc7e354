package entities

import "fmt"

// ConnectionKind is the category of a derived relation between philosophers.
type ConnectionKind string

// Connection kinds.
const (
	// ConnectionSharedConcept links chronologically-adjacent philosophers
	// that carry the same concept tag. From is always the earlier one.
	ConnectionSharedConcept ConnectionKind = "shared-concept"
	// ConnectionInfluence is a directed teacher → student relation.
	ConnectionInfluence ConnectionKind = "influence"
)

// Connection is a derived edge between two philosophers. Connections are
// recomputed from scratch whenever the dataset changes; their only identity
// is structural equality of (Kind, From, To, Concept).
type Connection struct {
	Kind     ConnectionKind `json:"kind"`
	From     string         `json:"from"`
	To       string         `json:"to"`
	Concept  string         `json:"concept,omitempty"`  // shared-concept edges only
	Category string         `json:"category,omitempty"` // inherited from the concept
}

// Key returns the structural identity of the edge, used for deduplication.
func (c Connection) Key() string {
	return fmt.Sprintf("%s|%s|%s|%s", c.Kind, c.From, c.To, c.Concept)
}
