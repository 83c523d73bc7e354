// Package ports defines the interfaces implemented by infrastructure
// adapters.
package ports

import (
	"context"

	"github.com/RevoloerO/vqm-philosophy-explorer/internal/domain/entities"
)

// Catalog is the persistent store of the philosopher dataset. The layout
// engines never touch it directly; handlers load the dataset once per
// invocation and pass plain slices into the engines.
type Catalog interface {
	// EnsureSchema creates the storage schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close closes the underlying store.
	Close() error

	// SavePhilosopher saves or replaces a philosopher record, including its
	// concept tags and influence references.
	SavePhilosopher(ctx context.Context, p *entities.Philosopher) error

	// FindPhilosopherByID returns the philosopher with the given id, or nil
	// if absent.
	FindPhilosopherByID(ctx context.Context, id string) (*entities.Philosopher, error)

	// ListPhilosophers returns all philosophers ordered by year, then title.
	ListPhilosophers(ctx context.Context) ([]entities.Philosopher, error)

	// SearchPhilosophers returns philosophers whose title contains the query
	// (case-insensitive), up to limit.
	SearchPhilosophers(ctx context.Context, query string, limit int) ([]entities.Philosopher, error)

	// DeletePhilosopher removes a philosopher and its tag rows.
	DeletePhilosopher(ctx context.Context, id string) error

	// CountPhilosophers returns the total number of stored philosophers.
	CountPhilosophers(ctx context.Context) (int, error)

	// CountPhilosophersByEra returns per-era philosopher counts.
	CountPhilosophersByEra(ctx context.Context) (map[entities.Era]int, error)

	// SaveConcept saves or replaces a concept.
	SaveConcept(ctx context.Context, c *entities.Concept) error

	// ListConcepts returns all concepts ordered by name.
	ListConcepts(ctx context.Context) ([]entities.Concept, error)
}
