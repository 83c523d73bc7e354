package entities

// CanvasSize is the pixel dimensions of the drawing surface, supplied by
// the rendering layer. All layout output lives in [0,Width] × [0,Height].
type CanvasSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Valid reports whether the canvas has a drawable area.
func (c CanvasSize) Valid() bool {
	return c.Width > 0 && c.Height > 0
}

// Position is a computed per-philosopher 2D coordinate plus layout metadata.
// Positions are owned by the layout engine that produced them; the
// presentation layer only reads them.
type Position struct {
	EntityID      string  `json:"entity_id"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Line          string  `json:"line,omitempty"` // primary metro line concept, metro layout only
	IsInterchange bool    `json:"is_interchange,omitempty"`
}

// LineDecl declares a fixed metro line: a concept bound to a display label
// and color. Declaration order is priority order for primary-line
// assignment and also fixes the vertical row order.
type LineDecl struct {
	Concept string `json:"concept"`
	Label   string `json:"label"`
	Color   string `json:"color"`
}

// DefaultMetroLines are the built-in line declarations, in priority order.
// The first declared line doubles as the fallback for philosophers whose
// concepts match no declared line.
var DefaultMetroLines = []LineDecl{
	{Concept: "Metaphysics", Label: "Metaphysics Line", Color: "#e63946"},
	{Concept: "Ethics", Label: "Ethics Line", Color: "#2a9d8f"},
	{Concept: "Epistemology", Label: "Epistemology Line", Color: "#457b9d"},
	{Concept: "Politics", Label: "Politics Line", Color: "#f4a261"},
	{Concept: "Logic", Label: "Logic Line", Color: "#9b5de5"},
	{Concept: "Aesthetics", Label: "Aesthetics Line", Color: "#f15bb5"},
	{Concept: "Existentialism", Label: "Existentialism Line", Color: "#6d6875"},
}

// LineGeometry is the renderable shape of one metro line: its base row and
// the SVG path visiting every member station left to right.
type LineGeometry struct {
	Concept    string   `json:"concept"`
	Label      string   `json:"label"`
	Color      string   `json:"color"`
	Row        int      `json:"row"`
	BaseY      float64  `json:"base_y"`
	Path       string   `json:"path"` // continuous, monotonically increasing in X
	StationIDs []string `json:"station_ids"`
}

// Interchange records one unordered pair of lines meeting at a station.
// A station on n lines yields n*(n-1)/2 records.
type Interchange struct {
	StationID string    `json:"station_id"`
	Lines     [2]string `json:"lines"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
}

// MetroLayout is the disposable output snapshot of the metro engine.
// It is recomputed wholesale whenever inputs change, never patched.
type MetroLayout struct {
	Stations     []Position              `json:"stations"`
	Lines        map[string]LineGeometry `json:"lines"`
	Interchanges []Interchange           `json:"interchanges"`
	// FallbackStations lists philosophers that matched no declared line and
	// were pinned to the first declared line. Surfaced so callers can flag
	// the data gap; never a failure.
	FallbackStations []string `json:"fallback_stations,omitempty"`
}
