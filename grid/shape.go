package grid

import (
	"encoding/binary"
	"hash/maphash"
	"iter"
	"slices"
)

// shapeSeed is the process-wide seed for shape and container digests.
// Hashes are stable within a process, not across processes.
var shapeSeed = maphash.MakeSeed()

// Shape is a finite, unordered, deduplicated set of coordinates of one
// topology. Shapes are value-like: the set algebra never mutates its
// operands. The zero value is the empty shape.
type Shape[C comparable] struct {
	set map[C]struct{}
}

// NewShape builds a shape from the given coordinates.
func NewShape[C comparable](coords ...C) Shape[C] {
	s := Shape[C]{set: make(map[C]struct{}, len(coords))}
	for _, c := range coords {
		s.set[c] = struct{}{}
	}
	return s
}

// CollectShape builds a shape from a coordinate sequence.
func CollectShape[C comparable](seq iter.Seq[C]) Shape[C] {
	s := Shape[C]{set: make(map[C]struct{})}
	for c := range seq {
		s.set[c] = struct{}{}
	}
	return s
}

// Len returns the number of coordinates in the shape.
func (s Shape[C]) Len() int {
	return len(s.set)
}

// IsEmpty reports whether the shape contains no coordinates.
func (s Shape[C]) IsEmpty() bool {
	return len(s.set) == 0
}

// Contains reports whether the shape contains the coordinate.
func (s Shape[C]) Contains(c C) bool {
	_, ok := s.set[c]
	return ok
}

// IsSubshape reports whether every coordinate of s is in other.
func (s Shape[C]) IsSubshape(other Shape[C]) bool {
	if len(s.set) > len(other.set) {
		return false
	}
	for c := range s.set {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// IsSupershape reports whether every coordinate of other is in s.
func (s Shape[C]) IsSupershape(other Shape[C]) bool {
	return other.IsSubshape(s)
}

// IsDisjoint reports whether the two shapes share no coordinate.
func (s Shape[C]) IsDisjoint(other Shape[C]) bool {
	small, large := s, other
	if len(large.set) < len(small.set) {
		small, large = large, small
	}
	for c := range small.set {
		if large.Contains(c) {
			return false
		}
	}
	return true
}

// Union returns a new shape with the coordinates of both operands.
func (s Shape[C]) Union(other Shape[C]) Shape[C] {
	out := Shape[C]{set: make(map[C]struct{}, len(s.set)+len(other.set))}
	for c := range s.set {
		out.set[c] = struct{}{}
	}
	for c := range other.set {
		out.set[c] = struct{}{}
	}
	return out
}

// Difference returns a new shape with the coordinates of s that are not in
// other.
func (s Shape[C]) Difference(other Shape[C]) Shape[C] {
	out := Shape[C]{set: make(map[C]struct{}, len(s.set))}
	for c := range s.set {
		if !other.Contains(c) {
			out.set[c] = struct{}{}
		}
	}
	return out
}

// All iterates the coordinates of the shape in unspecified order.
func (s Shape[C]) All() iter.Seq[C] {
	return func(yield func(C) bool) {
		for c := range s.set {
			if !yield(c) {
				return
			}
		}
	}
}

// Equal reports whether the two shapes contain the same coordinates.
func (s Shape[C]) Equal(other Shape[C]) bool {
	return len(s.set) == len(other.set) && s.IsSubshape(other)
}

// Hash returns a digest of the shape that is independent of insertion and
// iteration order: the per-coordinate digests are sorted before being
// combined.
func (s Shape[C]) Hash() uint64 {
	digests := make([]uint64, 0, len(s.set))
	for c := range s.set {
		digests = append(digests, maphash.Comparable(shapeSeed, c))
	}
	return combineDigests(digests)
}

func combineDigests(digests []uint64) uint64 {
	slices.Sort(digests)
	var h maphash.Hash
	h.SetSeed(shapeSeed)
	var buf [8]byte
	for _, d := range digests {
		binary.LittleEndian.PutUint64(buf[:], d)
		h.Write(buf[:])
	}
	return h.Sum64()
}

// TranslateShape returns the shape moved by offset. It is defined only for
// module coordinates, which is why it is a function rather than a Shape
// method.
func TranslateShape[C interface {
	comparable
	Add(C) C
}](s Shape[C], offset C) Shape[C] {
	out := Shape[C]{set: make(map[C]struct{}, len(s.set))}
	for c := range s.set {
		out.set[c.Add(offset)] = struct{}{}
	}
	return out
}
