package direction

import (
	"iter"
	"math/bits"
	"strings"
)

// Set is a set of directions. With only eight possible directions, a set
// packs into a single byte, one bit per direction in enum order.
type Set uint8

const (
	// Values is the set of all eight directions.
	Values Set = 0b11111111

	// Cardinal is the set of the four cardinal directions.
	Cardinal Set = 0b01010101

	// Ordinal is the set of the four ordinal directions.
	Ordinal Set = 0b10101010
)

// SetOf builds a Set from the given directions.
func SetOf(dirs ...Direction) Set {
	var s Set
	for _, d := range dirs {
		s |= 1 << d
	}
	return s
}

// Contains reports whether the set contains d.
func (s Set) Contains(d Direction) bool {
	return s&(1<<d) != 0
}

// Union returns the set of directions in either s or other.
func (s Set) Union(other Set) Set {
	return s | other
}

// Intersection returns the set of directions in both s and other.
func (s Set) Intersection(other Set) Set {
	return s & other
}

// Difference returns the set of directions in s but not in other.
func (s Set) Difference(other Set) Set {
	return s &^ other
}

// Subset reports whether every direction in s is also in other.
func (s Set) Subset(other Set) bool {
	return s&other == s
}

// Superset reports whether every direction in other is also in s.
func (s Set) Superset(other Set) bool {
	return other.Subset(s)
}

// Len returns the number of directions in the set.
func (s Set) Len() int {
	return bits.OnesCount8(uint8(s))
}

// IsEmpty reports whether the set contains no directions.
func (s Set) IsEmpty() bool {
	return s == 0
}

// All iterates the directions in the set in enum order, East first.
func (s Set) All() iter.Seq[Direction] {
	return func(yield func(Direction) bool) {
		for d := East; d <= SouthEast; d++ {
			if s.Contains(d) && !yield(d) {
				return
			}
		}
	}
}

// String formats the set as "{East, North}".
func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for d := range s.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(d.String())
	}
	b.WriteByte('}')
	return b.String()
}
