// Package stat contains the statistical helpers behind the distribution
// plots: histogram binning and percentile based outlier masks.
package stat

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Bin is one histogram bin. A value v falls into the bin if
// Min <= v < Max; the last bin of a histogram also contains its Max.
type Bin struct {
	Min, Max float64
	Count    int
}

// Width of the bin.
func (b Bin) Width() float64 { return b.Max - b.Min }

// Histogram groups values into n bins of equal width spanning the range
// of the finite values. A constant input spans (v-0.5, v+0.5) like numpy
// does. Non finite values are not counted; no finite values yields nil.
// Histogram panics if n is not positive.
func Histogram(values []float64, n int) []Bin {
	if n <= 0 {
		panic("stat: non-positive number of bins")
	}
	finite := Finite(values)
	if len(finite) == 0 {
		return nil
	}

	min, max := floats.Min(finite), floats.Max(finite)
	if min == max {
		min -= 0.5
		max += 0.5
	}

	edges := make([]float64, n+1)
	floats.Span(edges, min, max)

	bins := make([]Bin, n)
	for i := range bins {
		bins[i].Min, bins[i].Max = edges[i], edges[i+1]
	}

	norm := float64(n) / (max - min)
	for _, v := range finite {
		i := int((v - min) * norm)
		if i >= n {
			i = n - 1
		}
		// Rounding in the division may put v one bin off.
		if v < edges[i] {
			i--
		} else if i != n-1 && v >= edges[i+1] {
			i++
		}
		bins[i].Count++
	}
	return bins
}

// Finite returns the values which are neither NaN nor infinite.
// The input is not modified.
func Finite(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// CountEqual counts the elements of values equal to x.
func CountEqual(values []float64, x float64) int {
	n := 0
	for _, v := range values {
		if v == x {
			n++
		}
	}
	return n
}
