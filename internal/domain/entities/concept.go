package entities

// CategoryUnknown is the sentinel category attached to edges whose concept
// is missing from the concept dataset.
const CategoryUnknown = "Unknown"

// Concept is a named philosophical theme used to relate philosophers.
// Category classifies the concept for connection coloring only; it never
// participates in layout positioning math.
type Concept struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}
