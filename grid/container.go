package grid

import (
	"hash/maphash"
	"iter"
)

// ShapeContainer associates a value with each coordinate of a finite
// region, one entry per coordinate. It supports the same membership
// queries as Shape plus lookup, insert, and replace. The zero value is the
// empty container.
type ShapeContainer[C comparable, V comparable] struct {
	m map[C]V
}

// NewShapeContainer returns an empty container.
func NewShapeContainer[C comparable, V comparable]() ShapeContainer[C, V] {
	return ShapeContainer[C, V]{m: make(map[C]V)}
}

// ContainerFromShape binds the same value to every coordinate of a shape.
func ContainerFromShape[C comparable, V comparable](s Shape[C], v V) ShapeContainer[C, V] {
	sc := ShapeContainer[C, V]{m: make(map[C]V, s.Len())}
	for c := range s.All() {
		sc.m[c] = v
	}
	return sc
}

// CollectContainer builds a container from a sequence of coordinate-value
// pairs. Later pairs replace earlier ones with the same coordinate.
func CollectContainer[C comparable, V comparable](seq iter.Seq2[C, V]) ShapeContainer[C, V] {
	sc := ShapeContainer[C, V]{m: make(map[C]V)}
	for c, v := range seq {
		sc.m[c] = v
	}
	return sc
}

// Len returns the number of entries.
func (sc ShapeContainer[C, V]) Len() int {
	return len(sc.m)
}

// IsEmpty reports whether the container has no entries.
func (sc ShapeContainer[C, V]) IsEmpty() bool {
	return len(sc.m) == 0
}

// Contains reports whether the container has an entry for the coordinate.
func (sc ShapeContainer[C, V]) Contains(c C) bool {
	_, ok := sc.m[c]
	return ok
}

// Get returns the value bound to the coordinate, reporting false if there
// is none.
func (sc ShapeContainer[C, V]) Get(c C) (V, bool) {
	v, ok := sc.m[c]
	return v, ok
}

// Insert binds a value to the coordinate, returning the previous value and
// whether one was replaced.
func (sc *ShapeContainer[C, V]) Insert(c C, v V) (V, bool) {
	if sc.m == nil {
		sc.m = make(map[C]V)
	}
	old, ok := sc.m[c]
	sc.m[c] = v
	return old, ok
}

// Delete removes the entry for the coordinate, if any.
func (sc *ShapeContainer[C, V]) Delete(c C) {
	delete(sc.m, c)
}

// AsShape returns the shape of the container's coordinates.
func (sc ShapeContainer[C, V]) AsShape() Shape[C] {
	s := Shape[C]{set: make(map[C]struct{}, len(sc.m))}
	for c := range sc.m {
		s.set[c] = struct{}{}
	}
	return s
}

// Difference returns a new container holding the entries of sc whose
// coordinates are not in other.
func (sc ShapeContainer[C, V]) Difference(other ShapeContainer[C, V]) ShapeContainer[C, V] {
	out := ShapeContainer[C, V]{m: make(map[C]V, len(sc.m))}
	for c, v := range sc.m {
		if !other.Contains(c) {
			out.m[c] = v
		}
	}
	return out
}

// All iterates the entries in unspecified order.
func (sc ShapeContainer[C, V]) All() iter.Seq2[C, V] {
	return func(yield func(C, V) bool) {
		for c, v := range sc.m {
			if !yield(c, v) {
				return
			}
		}
	}
}

// Equal reports whether the two containers hold the same entries.
func (sc ShapeContainer[C, V]) Equal(other ShapeContainer[C, V]) bool {
	if len(sc.m) != len(other.m) {
		return false
	}
	for c, v := range sc.m {
		if ov, ok := other.m[c]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Hash returns an order-independent digest of the container's entries.
func (sc ShapeContainer[C, V]) Hash() uint64 {
	type entry struct {
		c C
		v V
	}
	digests := make([]uint64, 0, len(sc.m))
	for c, v := range sc.m {
		digests = append(digests, maphash.Comparable(shapeSeed, entry{c, v}))
	}
	return combineDigests(digests)
}

// TranslateContainer returns the container with every coordinate moved by
// offset. Defined only for module coordinates.
func TranslateContainer[C interface {
	comparable
	Add(C) C
}, V comparable](sc ShapeContainer[C, V], offset C) ShapeContainer[C, V] {
	out := ShapeContainer[C, V]{m: make(map[C]V, len(sc.m))}
	for c, v := range sc.m {
		out.m[c.Add(offset)] = v
	}
	return out
}
