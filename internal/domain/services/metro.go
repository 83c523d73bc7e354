package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/RevoloerO/vqm-philosophy-explorer/internal/domain/entities"
)

// Metro engine defaults. Stations closer than DefaultMinStationDistance on
// the same line get nudged off the base row by DefaultStationOffset so
// markers and labels stay legible for temporally-close thinkers.
const (
	DefaultMinStationDistance = 60.0
	DefaultStationOffset      = 25.0
	DefaultMetroPaddingX      = 80.0
	DefaultMetroPaddingY      = 60.0
)

// MetroService computes the transit-map layout: declared concepts become
// fixed horizontal lines, philosophers become stations on their primary
// line. Like the constellation engine it is pure; each call reads its
// arguments and returns a fresh layout snapshot.
type MetroService struct {
	lines              []entities.LineDecl // declaration order is priority order
	padLeft, padRight  float64
	padTop, padBottom  float64
	minStationDistance float64
	stationOffset      float64
}

// NewMetroService creates a metro engine over the given line declarations.
// An empty declaration list falls back to the built-in lines.
func NewMetroService(lines []entities.LineDecl) *MetroService {
	if len(lines) == 0 {
		lines = entities.DefaultMetroLines
	}
	return &MetroService{
		lines:              lines,
		padLeft:            DefaultMetroPaddingX,
		padRight:           DefaultMetroPaddingX,
		padTop:             DefaultMetroPaddingY,
		padBottom:          DefaultMetroPaddingY,
		minStationDistance: DefaultMinStationDistance,
		stationOffset:      DefaultStationOffset,
	}
}

// SetSpacing overrides the overlap-resolution tuning.
func (s *MetroService) SetSpacing(minStationDistance, stationOffset float64) {
	if minStationDistance > 0 {
		s.minStationDistance = minStationDistance
	}
	if stationOffset > 0 {
		s.stationOffset = stationOffset
	}
}

// Lines returns the declared lines in priority order.
func (s *MetroService) Lines() []entities.LineDecl { return s.lines }

// PrimaryLine returns the first declared line whose concept the philosopher
// carries. Declaration order decides ties for multi-concept philosophers.
// A philosopher matching no declared line falls back to the first declared
// line; the second return value reports whether that fallback was taken.
func (s *MetroService) PrimaryLine(p entities.Philosopher) (entities.LineDecl, bool) {
	for _, line := range s.lines {
		if p.HasConcept(line.Concept) {
			return line, true
		}
	}
	return s.lines[0], false
}

// PhilosopherLines returns the subset of the philosopher's concepts that
// are declared lines, in declaration order. A philosopher on two or more
// lines is an interchange.
func (s *MetroService) PhilosopherLines(p entities.Philosopher) []string {
	var matched []string
	for _, line := range s.lines {
		if p.HasConcept(line.Concept) {
			matched = append(matched, line.Concept)
		}
	}
	return matched
}

// IsInterchange reports whether the philosopher sits on two or more
// declared lines.
func (s *MetroService) IsInterchange(p entities.Philosopher) bool {
	return len(s.PhilosopherLines(p)) >= 2
}

// ComputeMetroLayout places every philosopher as a station on its primary
// line, resolves same-line overlaps, synthesizes one smooth path per line,
// and derives interchange records. Degenerate input (no philosophers, or a
// canvas with no area) yields an empty layout, never an error.
func (s *MetroService) ComputeMetroLayout(phils []entities.Philosopher, canvas entities.CanvasSize) entities.MetroLayout {
	layout := entities.MetroLayout{Lines: make(map[string]entities.LineGeometry)}
	if len(phils) == 0 || !canvas.Valid() {
		return layout
	}

	usableWidth := canvas.Width - s.padLeft - s.padRight
	usableHeight := canvas.Height - s.padTop - s.padBottom
	lineSpacing := usableHeight / float64(len(s.lines)+1)

	baseY := make(map[string]float64, len(s.lines))
	for row, line := range s.lines {
		baseY[line.Concept] = s.padTop + float64(row+1)*lineSpacing
	}

	ordered := make([]entities.Philosopher, len(phils))
	copy(ordered, phils)
	sort.SliceStable(ordered, func(a, b int) bool {
		return ordered[a].NumericYear < ordered[b].NumericYear
	})

	// Station placement: time-proportional X, primary line row Y.
	stations := make([]entities.Position, len(ordered))
	byLine := make(map[string][]int, len(s.lines))
	for i := range ordered {
		line, matched := s.PrimaryLine(ordered[i])
		if !matched {
			layout.FallbackStations = append(layout.FallbackStations, ordered[i].ID)
		}
		t := clamp01(NormalizeYear(ordered[i].NumericYear, MinYear, MaxYear))
		stations[i] = entities.Position{
			EntityID:      ordered[i].ID,
			X:             s.padLeft + t*usableWidth,
			Y:             baseY[line.Concept],
			Line:          line.Concept,
			IsInterchange: s.IsInterchange(ordered[i]),
		}
		byLine[line.Concept] = append(byLine[line.Concept], i)
	}

	// Overlap resolution: stations within minStationDistance of the
	// previous station on the same line move off the row by ±stationOffset,
	// direction alternating with index parity. X (time) never moves.
	for _, members := range byLine {
		sort.SliceStable(members, func(a, b int) bool {
			return stations[members[a]].X < stations[members[b]].X
		})
		for k := 1; k < len(members); k++ {
			if stations[members[k]].X-stations[members[k-1]].X < s.minStationDistance {
				offset := s.stationOffset
				if k%2 == 0 {
					offset = -s.stationOffset
				}
				stations[members[k]].Y += offset
			}
		}
	}
	layout.Stations = stations

	// Path synthesis per declared line, stations visited left to right.
	for row, line := range s.lines {
		members := byLine[line.Concept]
		geometry := entities.LineGeometry{
			Concept: line.Concept,
			Label:   line.Label,
			Color:   line.Color,
			Row:     row,
			BaseY:   baseY[line.Concept],
		}
		points := make([]entities.Position, len(members))
		for k, i := range members {
			points[k] = stations[i]
			geometry.StationIDs = append(geometry.StationIDs, stations[i].EntityID)
		}
		geometry.Path = synthesizeLinePath(points, geometry.BaseY, canvas.Width)
		layout.Lines[line.Concept] = geometry
	}

	// Interchange derivation: one record per unordered pair of lines.
	for i := range ordered {
		matched := s.PhilosopherLines(ordered[i])
		if len(matched) < 2 {
			continue
		}
		for a := 0; a < len(matched)-1; a++ {
			for b := a + 1; b < len(matched); b++ {
				layout.Interchanges = append(layout.Interchanges, entities.Interchange{
					StationID: ordered[i].ID,
					Lines:     [2]string{matched[a], matched[b]},
					X:         stations[i].X,
					Y:         stations[i].Y,
				})
			}
		}
	}

	return layout
}

// synthesizeLinePath builds an SVG path that enters at the left canvas edge
// on the line's base row, visits every station left to right, and runs out
// to the right edge at the last station's row. Stations off the base row
// are reached with a cubic ease whose control points stay inside the
// segment, so X is monotonically increasing along the whole path.
func synthesizeLinePath(stations []entities.Position, baseY, width float64) string {
	var path strings.Builder
	fmt.Fprintf(&path, "M 0 %.1f", baseY)

	prevX, prevY := 0.0, baseY
	for _, st := range stations {
		if st.Y == prevY {
			fmt.Fprintf(&path, " L %.1f %.1f", st.X, st.Y)
		} else {
			// Control points sit at the segment midpoint, so the curve
			// never doubles back in X however close the stations are.
			midX := (prevX + st.X) / 2
			fmt.Fprintf(&path, " C %.1f %.1f %.1f %.1f %.1f %.1f",
				midX, prevY, midX, st.Y, st.X, st.Y)
		}
		prevX, prevY = st.X, st.Y
	}

	fmt.Fprintf(&path, " L %.1f %.1f", width, prevY)
	return path.String()
}
