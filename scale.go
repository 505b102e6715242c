package distplot

import (
	"math"

	"gonum.org/v1/plot"
)

// Scale is a continuous position scale (x- or y-axis) trained on data.
type Scale struct {
	Type string // "x" or "y"

	DomainMin float64
	DomainMax float64
}

// NewScale returns an untrained scale.
func NewScale(aesthetic string) *Scale {
	return &Scale{
		Type:      aesthetic,
		DomainMin: math.Inf(+1),
		DomainMax: math.Inf(-1),
	}
}

// Train widens the domain of s to contain all finite values.
func (s *Scale) Train(values []float64) {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < s.DomainMin {
			s.DomainMin = v
		}
		if v > s.DomainMax {
			s.DomainMax = v
		}
	}
}

// Trained reports whether s has seen at least one finite value.
func (s *Scale) Trained() bool {
	return s.DomainMin <= s.DomainMax
}

// Limits returns the domain expanded by the fraction expand of its
// range on both sides. A domain of a single value is widened by one on
// both sides.
func (s *Scale) Limits(expand float64) (min, max float64) {
	fullRange := s.DomainMax - s.DomainMin
	if fullRange == 0 {
		return s.DomainMin - 1, s.DomainMax + 1
	}
	e := fullRange * expand
	return s.DomainMin - e, s.DomainMax + e
}

// Apply sets the range of axis a to the expanded domain. An untrained
// scale leaves a unchanged.
func (s *Scale) Apply(a *plot.Axis, expand float64) {
	if !s.Trained() {
		return
	}
	a.Min, a.Max = s.Limits(expand)
}
