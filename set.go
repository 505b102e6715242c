package distplot

import (
	"fmt"
	"sort"
	"strings"
)

// FloatSet is a set of float64 values, e.g. the distinct codes of a
// discretized feature.
type FloatSet map[float64]struct{}

func NewFloatSet() FloatSet {
	return make(FloatSet)
}

// NewFloatSetFrom returns the set of distinct values.
func NewFloatSetFrom(values []float64) FloatSet {
	s := make(FloatSet, len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func (s FloatSet) String() string {
	elems := s.Elements()
	parts := make([]string, len(elems))
	for i, x := range elems {
		parts[i] = fmt.Sprintf("%g", x)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Add adds x to s.
func (s FloatSet) Add(x float64) {
	s[x] = struct{}{}
}

// Remove removes all elements of t from s. (Set difference)
func (s FloatSet) Remove(t FloatSet) {
	for x := range t {
		delete(s, x)
	}
}

// Elements returns the elements of s in increasing order.
func (s FloatSet) Elements() []float64 {
	elems := make([]float64, 0, len(s))
	for x := range s {
		elems = append(elems, x)
	}
	sort.Float64s(elems)
	return elems
}
