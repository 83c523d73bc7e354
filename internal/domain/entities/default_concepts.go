package entities

// DefaultConcepts are the built-in concept themes seeded on catalog creation,
// with the categories used for connection coloring. Imported datasets can
// extend or override them.
var DefaultConcepts = []Concept{
	{Name: "Metaphysics", Category: "Reality"},
	{Name: "Ethics", Category: "Value"},
	{Name: "Epistemology", Category: "Knowledge"},
	{Name: "Politics", Category: "Society"},
	{Name: "Logic", Category: "Reason"},
	{Name: "Aesthetics", Category: "Value"},
	{Name: "Existentialism", Category: "Existence"},
	{Name: "Empiricism", Category: "Knowledge"},
	{Name: "Rationalism", Category: "Knowledge"},
	{Name: "Skepticism", Category: "Knowledge"},
	{Name: "Idealism", Category: "Reality"},
	{Name: "Materialism", Category: "Reality"},
	{Name: "Stoicism", Category: "Value"},
	{Name: "Phenomenology", Category: "Existence"},
}

// ConceptCategories builds a name → category lookup from a concept list,
// falling back to the defaults for names the list does not cover.
func ConceptCategories(concepts []Concept) map[string]string {
	categories := make(map[string]string, len(DefaultConcepts)+len(concepts))
	for _, c := range DefaultConcepts {
		categories[c.Name] = c.Category
	}
	for _, c := range concepts {
		if c.Name != "" && c.Category != "" {
			categories[c.Name] = c.Category
		}
	}
	return categories
}
