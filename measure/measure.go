// SPDX-License-Identifier: MIT
//
// File: measure.go
// Role: The Measure sum type and its total order.

package measure

import (
	"encoding/json"
	"strconv"
	"strings"
)

// topLabel is the textual form of Top in String, JSON and YAML output.
const topLabel = "top"

// Measure is either a vector of naturals or Top. The zero value is the
// empty vector, which is only meaningful for games without priorities.
type Measure struct {
	top bool
	vec []int
}

// Top returns the distinguished greatest measure.
func Top() Measure { return Measure{top: true} }

// Vector returns a vector measure holding a copy of components.
func Vector(components ...int) Measure {
	vec := make([]int, len(components))
	copy(vec, components)
	return Measure{vec: vec}
}

// IsTop reports whether m is Top.
func (m Measure) IsTop() bool { return m.top }

// Components returns a copy of the vector components, or nil for Top.
func (m Measure) Components() []int {
	if m.top {
		return nil
	}
	out := make([]int, len(m.vec))
	copy(out, m.vec)
	return out
}

// Len returns the number of components, 0 for Top.
func (m Measure) Len() int { return len(m.vec) }

// At returns component i. It panics for Top or an out-of-range index.
func (m Measure) At(i int) int {
	if m.top {
		panic("measure: At on Top")
	}
	return m.vec[i]
}

// Equal reports whether Compare(m, o) == 0.
func (m Measure) Equal(o Measure) bool { return Compare(m, o) == 0 }

// String renders Top as "top" and vectors as "(c0,c1,...)".
func (m Measure) String() string {
	if m.top {
		return topLabel
	}
	var b strings.Builder
	b.WriteByte('(')
	for i, c := range m.vec {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(c))
	}
	b.WriteByte(')')
	return b.String()
}

// MarshalJSON encodes Top as the string "top" and vectors as arrays.
func (m Measure) MarshalJSON() ([]byte, error) {
	if m.top {
		return json.Marshal(topLabel)
	}
	if m.vec == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(m.vec)
}

// MarshalYAML mirrors MarshalJSON for gopkg.in/yaml.v3.
func (m Measure) MarshalYAML() (interface{}, error) {
	if m.top {
		return topLabel, nil
	}
	return m.Components(), nil
}

// Compare returns -1, 0 or +1 as a is less than, equal to or greater than b.
// Vectors compare lexicographically from index 0; a shorter vector that is a
// prefix of a longer one is smaller. Top is greater than every vector.
//
// Complexity: O(min(len a, len b)).
func Compare(a, b Measure) int {
	switch {
	case a.top && b.top:
		return 0
	case a.top:
		return 1
	case b.top:
		return -1
	}
	n := min(len(a.vec), len(b.vec))
	for i := 0; i < n; i++ {
		if a.vec[i] != b.vec[i] {
			if a.vec[i] < b.vec[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a.vec) < len(b.vec):
		return -1
	case len(a.vec) > len(b.vec):
		return 1
	}
	return 0
}

// Max returns the greater of a and b, preferring a on ties.
func Max(a, b Measure) Measure {
	if Compare(b, a) > 0 {
		return b
	}
	return a
}

// Min returns the smaller of a and b, preferring a on ties.
func Min(a, b Measure) Measure {
	if Compare(b, a) < 0 {
		return b
	}
	return a
}
