package stat

import (
	"math"
	"sort"
)

// Percentile returns the p-th percentile (0 <= p <= 100) of values,
// interpolating linearly between the two closest ranks. This is the
// default method of numpy.percentile. NaN values are ignored and
// Percentile of no values is NaN.
func Percentile(values []float64, p float64) float64 {
	sorted := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			sorted = append(sorted, v)
		}
	}
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	sort.Float64s(sorted)

	switch {
	case p <= 0:
		return sorted[0]
	case p >= 100:
		return sorted[n-1]
	}
	rank := p / 100 * float64(n-1)
	lower := int(math.Floor(rank))
	if lower+1 >= n {
		return sorted[n-1]
	}
	weight := rank - float64(lower)
	return sorted[lower] + weight*(sorted[lower+1]-sorted[lower])
}

// Cutoff is an open interval (Low, High) of accepted values.
type Cutoff struct {
	Low, High float64
}

// Contains reports whether Low < x < High.
func (c Cutoff) Contains(x float64) bool {
	return x > c.Low && x < c.High
}

// Cutoffs computes the low-th and high-th percentile of values.
func Cutoffs(values []float64, low, high float64) Cutoff {
	return Cutoff{
		Low:  Percentile(values, low),
		High: Percentile(values, high),
	}
}

// InclusionMask marks every element of values strictly inside c.
func InclusionMask(values []float64, c Cutoff) []bool {
	mask := make([]bool, len(values))
	for i, v := range values {
		mask[i] = c.Contains(v)
	}
	return mask
}

// PercentileMask is InclusionMask(values, Cutoffs(values, low, high)).
func PercentileMask(values []float64, low, high float64) []bool {
	return InclusionMask(values, Cutoffs(values, low, high))
}

// And combines masks elementwise. All masks must have the same length;
// And panics otherwise.
func And(masks ...[]bool) []bool {
	if len(masks) == 0 {
		return nil
	}
	out := make([]bool, len(masks[0]))
	for i := range out {
		out[i] = true
	}
	for _, m := range masks {
		if len(m) != len(out) {
			panic("stat: masks of different length")
		}
		for i, ok := range m {
			out[i] = out[i] && ok
		}
	}
	return out
}

// Count returns the number of set elements in mask.
func Count(mask []bool) int {
	n := 0
	for _, ok := range mask {
		if ok {
			n++
		}
	}
	return n
}
