// Package services implements the layout core: year parsing, concept graph
// derivation, and the constellation and metro layout engines. Everything in
// this package is a pure, synchronous computation over its arguments.
package services

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// The fixed historical window for the whole dataset. Both layout engines
// clamp philosopher years into this window.
const (
	MinYear = -600
	MaxYear = 1950
)

// yearPattern matches the first digit run with an optional era token.
// Longer tokens come first so "BCE" is not consumed as "BC".
var yearPattern = regexp.MustCompile(`(?i)(\d+)\s*(BCE|BC|CE|AD)?`)

// ParseYear converts a historical year label such as "c. 600 BC" or "1637"
// into a signed integer year (BC negative). A label with no digit run parses
// to 0; callers treating 0 as "unknown" must check for it themselves, since
// the fallback is indistinguishable from a literal year zero.
func ParseYear(label string) int {
	s := strings.TrimSpace(label)
	for _, circa := range []string{"c.", "C.", "ca."} {
		if rest, ok := strings.CutPrefix(s, circa); ok {
			s = strings.TrimSpace(rest)
			break
		}
	}

	m := yearPattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		// Digit run too long for an int; treat as unparseable.
		return 0
	}

	switch strings.ToUpper(m[2]) {
	case "BC", "BCE":
		return -year
	default:
		return year
	}
}

// NormalizeYear maps a signed year linearly into [0,1] over the given
// window. A degenerate window yields the midpoint instead of dividing by
// zero.
func NormalizeYear(year, minYear, maxYear int) float64 {
	if maxYear == minYear {
		return 0.5
	}
	return float64(year-minYear) / float64(maxYear-minYear)
}

// DenormalizeYear is the inverse of NormalizeYear, rounded to the nearest
// integer year.
func DenormalizeYear(t float64, minYear, maxYear int) int {
	return minYear + int(math.Round(t*float64(maxYear-minYear)))
}

// FormatYear renders a signed year for display: "600 BC", "400 AD" for
// years before 500, plain "1950" otherwise.
func FormatYear(year int) string {
	switch {
	case year < 0:
		return fmt.Sprintf("%d BC", -year)
	case year < 500:
		return fmt.Sprintf("%d AD", year)
	default:
		return strconv.Itoa(year)
	}
}

// clamp01 limits a normalized time coordinate to the unit interval.
func clamp01(t float64) float64 {
	return math.Min(1, math.Max(0, t))
}
