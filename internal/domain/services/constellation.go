package services

import (
	"hash/fnv"
	"math"

	"github.com/RevoloerO/vqm-philosophy-explorer/internal/domain/entities"
)

// Constellation engine defaults. Gravity and repulsion decay linearly over
// the iteration count so early iterations cluster aggressively by concept
// while late ones only resolve remaining overlaps.
const (
	DefaultStarIterations = 15
	DefaultPadding        = 50.0
	DefaultMinSeparation  = 40.0

	baseGravityStrength   = 0.15
	gravityDecayFraction  = 0.5 // decays toward 0.075
	baseRepulsionStrength = 0.3
	repulsionDecay        = 0.3 // decays toward 0.21
	repulsionXDamping     = 0.1 // keeps entities near their time-correct X
)

// ScatterOffset is the deterministic id → [0,1] hash used for the initial
// vertical scatter. The trigonometric construction keeps layouts
// reproducible across runs while spreading ids reasonably evenly.
func ScatterOffset(id string) float64 {
	h := fnv.New32a()
	h.Write([]byte(id))
	seed := float64(h.Sum32() % 1000)
	return (math.Sin(seed*137.5) + 1) / 2
}

// ConstellationService computes the force-adjusted star map: time on the X
// axis, concept affinity pulling related thinkers together on Y. Every
// method is a pure function of its arguments; no state survives a call.
type ConstellationService struct {
	padding       float64
	minSeparation float64
}

// NewConstellationService creates a constellation engine with the given
// boundary padding and repulsion distance. Non-positive values fall back to
// the defaults.
func NewConstellationService(padding, minSeparation float64) *ConstellationService {
	if padding <= 0 {
		padding = DefaultPadding
	}
	if minSeparation <= 0 {
		minSeparation = DefaultMinSeparation
	}
	return &ConstellationService{padding: padding, minSeparation: minSeparation}
}

// ComputeInitialPositions places each philosopher at its time-proportional
// X and a seeded pseudo-random Y in the middle 60% of the canvas.
func (s *ConstellationService) ComputeInitialPositions(phils []entities.Philosopher, canvas entities.CanvasSize) []entities.Position {
	positions := make([]entities.Position, len(phils))
	usableWidth := canvas.Width - 2*s.padding
	for i := range phils {
		t := clamp01(NormalizeYear(phils[i].NumericYear, MinYear, MaxYear))
		positions[i] = entities.Position{
			EntityID: phils[i].ID,
			X:        s.padding + t*usableWidth,
			Y:        canvas.Height*0.2 + ScatterOffset(phils[i].ID)*canvas.Height*0.6,
		}
	}
	return positions
}

// ApplyConceptGravity pulls each philosopher's Y a strength fraction of the
// way toward the mean Y of the others sharing at least one concept with it.
// X is never touched; the time axis stays fixed. Philosophers with no
// concept neighbors are left where they are.
func (s *ConstellationService) ApplyConceptGravity(positions []entities.Position, phils []entities.Philosopher, idx ConceptIndex, strength float64) []entities.Position {
	next := make([]entities.Position, len(positions))
	copy(next, positions)
	for i := range phils {
		neighbors := idx.Neighbors(phils, i)
		if len(neighbors) == 0 {
			continue
		}
		var sum float64
		for _, j := range neighbors {
			sum += positions[j].Y
		}
		meanY := sum / float64(len(neighbors))
		next[i].Y = positions[i].Y + (meanY-positions[i].Y)*strength
	}
	return next
}

// ApplyRepulsion pushes every pair closer than minSeparation apart along
// the line connecting them. X displacement is damped so repulsion resolves
// mainly through vertical spread. O(n²), fine for datasets of tens.
func (s *ConstellationService) ApplyRepulsion(positions []entities.Position, strength float64) []entities.Position {
	next := make([]entities.Position, len(positions))
	copy(next, positions)
	for i := 0; i < len(next); i++ {
		for j := i + 1; j < len(next); j++ {
			dx := next[j].X - next[i].X
			dy := next[j].Y - next[i].Y
			dist := math.Hypot(dx, dy)
			if dist >= s.minSeparation {
				continue
			}

			var ux, uy float64
			if dist > 0 {
				ux, uy = dx/dist, dy/dist
			} else {
				// Coincident points have no separation axis; push apart
				// vertically with a direction fixed by index order so runs
				// stay reproducible.
				ux, uy = 0, 1
			}

			push := (s.minSeparation - dist) / s.minSeparation * strength * s.minSeparation / 2
			next[i].X -= ux * push * repulsionXDamping
			next[i].Y -= uy * push
			next[j].X += ux * push * repulsionXDamping
			next[j].Y += uy * push
		}
	}
	return next
}

// ApplyBoundaryConstraints clamps both axes into the padded canvas.
func (s *ConstellationService) ApplyBoundaryConstraints(positions []entities.Position, canvas entities.CanvasSize) []entities.Position {
	next := make([]entities.Position, len(positions))
	copy(next, positions)
	for i := range next {
		next[i].X = math.Min(canvas.Width-s.padding, math.Max(s.padding, next[i].X))
		next[i].Y = math.Min(canvas.Height-s.padding, math.Max(s.padding, next[i].Y))
	}
	return next
}

// ComputeStarPositions runs the full relaxation: initial placement, then
// iterations rounds of gravity → repulsion → boundary clamp with linearly
// decaying strengths. Zero iterations returns the initial placement
// untouched. Identical inputs always produce identical output.
func (s *ConstellationService) ComputeStarPositions(phils []entities.Philosopher, canvas entities.CanvasSize, iterations int) []entities.Position {
	if len(phils) == 0 || !canvas.Valid() {
		return []entities.Position{}
	}

	positions := s.ComputeInitialPositions(phils, canvas)
	if iterations <= 0 {
		return positions
	}

	idx := BuildConceptIndex(phils)
	for i := 0; i < iterations; i++ {
		progress := float64(i) / float64(iterations)
		gravity := baseGravityStrength * (1 - gravityDecayFraction*progress)
		repulsion := baseRepulsionStrength * (1 - repulsionDecay*progress)

		positions = s.ApplyConceptGravity(positions, phils, idx, gravity)
		positions = s.ApplyRepulsion(positions, repulsion)
		positions = s.ApplyBoundaryConstraints(positions, canvas)
	}
	return positions
}
