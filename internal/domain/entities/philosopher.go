// Package entities contains core domain data structures.
package entities

// EntityType distinguishes headline thinkers from supporting figures.
// It affects default visibility and visual weight, never layout math.
type EntityType string

// Known entity types.
const (
	EntityTypeMajor EntityType = "major"
	EntityTypeMinor EntityType = "minor"
)

// Era is one of the five fixed historical periods. Eras drive coloring and
// grouping in the presentation layer only.
type Era string

// The five historical periods, in chronological order.
const (
	EraAncient       Era = "Ancient"
	EraMedieval      Era = "Medieval"
	EraEnlightenment Era = "Enlightenment"
	EraNineteenth    Era = "19th Century"
	EraContemporary  Era = "Contemporary"
)

// Eras lists all periods in chronological order.
var Eras = []Era{EraAncient, EraMedieval, EraEnlightenment, EraNineteenth, EraContemporary}

// EraForYear returns the period a signed year falls into. Boundaries follow
// the dataset convention: Ancient up to 500, Medieval up to 1400,
// Enlightenment up to 1800, 19th Century up to 1900.
func EraForYear(year int) Era {
	switch {
	case year < 500:
		return EraAncient
	case year < 1400:
		return EraMedieval
	case year < 1800:
		return EraEnlightenment
	case year < 1900:
		return EraNineteenth
	default:
		return EraContemporary
	}
}

// IsValidEra reports whether name matches one of the five periods.
func IsValidEra(name string) bool {
	for _, e := range Eras {
		if string(e) == name {
			return true
		}
	}
	return false
}

// Philosopher represents a historical figure or event in the dataset.
// NumericYear is always derived from YearLabel on import; YearLabel is the
// source of truth.
type Philosopher struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	YearLabel    string     `json:"year_label"`    // e.g. "c. 600 BC", "1637"
	NumericYear  int        `json:"numeric_year"`  // BC negative, AD/CE positive
	Era          Era        `json:"era"`
	Type         EntityType `json:"type"`
	Concepts     []string   `json:"concepts"`
	InfluencedBy []string   `json:"influenced_by,omitempty"` // teacher ids; this record is the student
	Quotes       []string   `json:"quotes,omitempty"`
}

// HasConcept reports whether the philosopher carries the given concept tag.
func (p *Philosopher) HasConcept(name string) bool {
	for _, c := range p.Concepts {
		if c == name {
			return true
		}
	}
	return false
}

// DedupConcepts removes duplicate concept tags in place, preserving first
// occurrence order.
func (p *Philosopher) DedupConcepts() {
	seen := make(map[string]bool, len(p.Concepts))
	deduped := p.Concepts[:0]
	for _, c := range p.Concepts {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		deduped = append(deduped, c)
	}
	p.Concepts = deduped
}
