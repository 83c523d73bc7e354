// Package sqlite provides a SQLite implementation of the Catalog interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/RevoloerO/vqm-philosophy-explorer/internal/domain/entities"
	"github.com/RevoloerO/vqm-philosophy-explorer/internal/infrastructure/config"
)

// Repository implements ports.Catalog using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite repository.
func NewRepository(cfg config.SQLiteConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Enable foreign keys for referential integrity
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Philosophers (historical figures and events)
	CREATE TABLE IF NOT EXISTS philosophers (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		year_label TEXT NOT NULL,
		numeric_year INTEGER NOT NULL,
		era TEXT NOT NULL,
		type TEXT NOT NULL DEFAULT 'minor',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_philosophers_year ON philosophers(numeric_year);
	CREATE INDEX IF NOT EXISTS idx_philosophers_era ON philosophers(era);

	-- Concept tags per philosopher, position preserves tag order
	CREATE TABLE IF NOT EXISTS philosopher_concepts (
		philosopher_id TEXT NOT NULL REFERENCES philosophers(id) ON DELETE CASCADE,
		concept TEXT NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (philosopher_id, concept)
	);
	CREATE INDEX IF NOT EXISTS idx_philosopher_concepts_concept ON philosopher_concepts(concept);

	-- Directed influence references (teacher -> student)
	CREATE TABLE IF NOT EXISTS influences (
		student_id TEXT NOT NULL REFERENCES philosophers(id) ON DELETE CASCADE,
		teacher_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (student_id, teacher_id)
	);
	CREATE INDEX IF NOT EXISTS idx_influences_teacher ON influences(teacher_id);

	-- Quotes per philosopher
	CREATE TABLE IF NOT EXISTS quotes (
		philosopher_id TEXT NOT NULL REFERENCES philosophers(id) ON DELETE CASCADE,
		quote TEXT NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (philosopher_id, position)
	);

	-- Concept themes with their rendering category
	CREATE TABLE IF NOT EXISTS concepts (
		name TEXT PRIMARY KEY,
		category TEXT NOT NULL DEFAULT 'Unknown'
	);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// SavePhilosopher saves or replaces a philosopher and its tag rows in one
// transaction.
func (r *Repository) SavePhilosopher(ctx context.Context, p *entities.Philosopher) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO philosophers (id, title, year_label, numeric_year, era, type)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			year_label = excluded.year_label,
			numeric_year = excluded.numeric_year,
			era = excluded.era,
			type = excluded.type
	`
	if _, err := tx.ExecContext(ctx, query, p.ID, p.Title, p.YearLabel, p.NumericYear, string(p.Era), string(p.Type)); err != nil {
		return fmt.Errorf("saving philosopher: %w", err)
	}

	if err := r.replaceTagRows(ctx, tx, "philosopher_concepts", p.ID, p.Concepts); err != nil {
		return err
	}
	if err := r.replaceTagRows(ctx, tx, "influences", p.ID, p.InfluencedBy); err != nil {
		return err
	}
	if err := r.replaceTagRows(ctx, tx, "quotes", p.ID, p.Quotes); err != nil {
		return err
	}

	return tx.Commit()
}

// replaceTagRows rewrites the ordered multi-valued rows for one philosopher.
func (r *Repository) replaceTagRows(ctx context.Context, tx *sql.Tx, table, philosopherID string, values []string) error {
	owner, value := "philosopher_id", tableValueColumn(table)
	if table == "influences" {
		owner = "student_id"
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE %s = ?", table, owner), philosopherID); err != nil {
		return fmt.Errorf("clearing %s: %w", table, err)
	}
	for i, v := range values {
		insert := fmt.Sprintf("INSERT OR IGNORE INTO %s (%s, %s, position) VALUES (?, ?, ?)", table, owner, value)
		if _, err := tx.ExecContext(ctx, insert, philosopherID, v, i); err != nil {
			return fmt.Errorf("saving %s row: %w", table, err)
		}
	}
	return nil
}

// tableValueColumn maps a tag table to its value column name.
func tableValueColumn(table string) string {
	switch table {
	case "philosopher_concepts":
		return "concept"
	case "influences":
		return "teacher_id"
	default:
		return "quote"
	}
}

// FindPhilosopherByID returns the philosopher with the given id, or nil if
// absent.
func (r *Repository) FindPhilosopherByID(ctx context.Context, id string) (*entities.Philosopher, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, year_label, numeric_year, era, type
		FROM philosophers WHERE id = ?`, id)

	p, err := scanPhilosopher(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding philosopher: %w", err)
	}

	if err := r.loadTags(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListPhilosophers returns all philosophers ordered by year, then title.
func (r *Repository) ListPhilosophers(ctx context.Context) ([]entities.Philosopher, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, year_label, numeric_year, era, type
		FROM philosophers ORDER BY numeric_year, title`)
	if err != nil {
		return nil, fmt.Errorf("listing philosophers: %w", err)
	}
	defer rows.Close()

	return r.collectPhilosophers(ctx, rows)
}

// SearchPhilosophers returns philosophers whose title contains the query,
// case-insensitively, up to limit.
func (r *Repository) SearchPhilosophers(ctx context.Context, query string, limit int) ([]entities.Philosopher, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, year_label, numeric_year, era, type
		FROM philosophers WHERE lower(title) LIKE ?
		ORDER BY numeric_year, title LIMIT ?`, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("searching philosophers: %w", err)
	}
	defer rows.Close()

	return r.collectPhilosophers(ctx, rows)
}

// collectPhilosophers scans result rows and attaches their tag rows.
func (r *Repository) collectPhilosophers(ctx context.Context, rows *sql.Rows) ([]entities.Philosopher, error) {
	var phils []entities.Philosopher
	for rows.Next() {
		p, err := scanPhilosopher(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning philosopher: %w", err)
		}
		phils = append(phils, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating philosophers: %w", err)
	}

	for i := range phils {
		if err := r.loadTags(ctx, &phils[i]); err != nil {
			return nil, err
		}
	}
	return phils, nil
}

// scanner abstracts sql.Row and sql.Rows for scanPhilosopher.
type scanner interface {
	Scan(dest ...any) error
}

// scanPhilosopher scans one philosopher row without tag columns.
func scanPhilosopher(s scanner) (*entities.Philosopher, error) {
	var p entities.Philosopher
	var era, ptype string
	if err := s.Scan(&p.ID, &p.Title, &p.YearLabel, &p.NumericYear, &era, &ptype); err != nil {
		return nil, err
	}
	p.Era = entities.Era(era)
	p.Type = entities.EntityType(ptype)
	return &p, nil
}

// loadTags populates the ordered multi-valued fields of a philosopher.
func (r *Repository) loadTags(ctx context.Context, p *entities.Philosopher) error {
	var err error
	if p.Concepts, err = r.queryTagValues(ctx,
		"SELECT concept FROM philosopher_concepts WHERE philosopher_id = ? ORDER BY position", p.ID); err != nil {
		return fmt.Errorf("loading concepts: %w", err)
	}
	if p.InfluencedBy, err = r.queryTagValues(ctx,
		"SELECT teacher_id FROM influences WHERE student_id = ? ORDER BY position", p.ID); err != nil {
		return fmt.Errorf("loading influences: %w", err)
	}
	if p.Quotes, err = r.queryTagValues(ctx,
		"SELECT quote FROM quotes WHERE philosopher_id = ? ORDER BY position", p.ID); err != nil {
		return fmt.Errorf("loading quotes: %w", err)
	}
	return nil
}

// queryTagValues runs a single-column query and collects the values.
func (r *Repository) queryTagValues(ctx context.Context, query, id string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// DeletePhilosopher removes a philosopher; tag rows cascade.
func (r *Repository) DeletePhilosopher(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM philosophers WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting philosopher: %w", err)
	}
	return nil
}

// CountPhilosophers returns the total number of stored philosophers.
func (r *Repository) CountPhilosophers(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM philosophers").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting philosophers: %w", err)
	}
	return count, nil
}

// CountPhilosophersByEra returns per-era philosopher counts.
func (r *Repository) CountPhilosophersByEra(ctx context.Context) (map[entities.Era]int, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT era, COUNT(*) FROM philosophers GROUP BY era")
	if err != nil {
		return nil, fmt.Errorf("counting philosophers by era: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.Era]int)
	for rows.Next() {
		var era string
		var count int
		if err := rows.Scan(&era, &count); err != nil {
			return nil, fmt.Errorf("scanning era count: %w", err)
		}
		counts[entities.Era(era)] = count
	}
	return counts, rows.Err()
}

// SaveConcept saves or replaces a concept.
func (r *Repository) SaveConcept(ctx context.Context, c *entities.Concept) error {
	query := `
		INSERT INTO concepts (name, category) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET category = excluded.category
	`
	if _, err := r.db.ExecContext(ctx, query, c.Name, c.Category); err != nil {
		return fmt.Errorf("saving concept: %w", err)
	}
	return nil
}

// ListConcepts returns all concepts ordered by name.
func (r *Repository) ListConcepts(ctx context.Context) ([]entities.Concept, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT name, category FROM concepts ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("listing concepts: %w", err)
	}
	defer rows.Close()

	var concepts []entities.Concept
	for rows.Next() {
		var c entities.Concept
		if err := rows.Scan(&c.Name, &c.Category); err != nil {
			return nil, fmt.Errorf("scanning concept: %w", err)
		}
		concepts = append(concepts, c)
	}
	return concepts, rows.Err()
}
