// Package grid defines the shared vocabulary of the tessellated-plane
// coordinate systems: the Coord interface every topology implements, the
// ModuleCoord refinement for topologies whose coordinates form an algebraic
// module, the SizedGrid interface for screen-space geometry, and the types
// those interfaces exchange.
//
// Screen space uses geom.Point so that consumers can interoperate with the
// wider 2-D geometry ecosystem without conversion.
package grid

import (
	"fmt"
	"iter"

	"github.com/ctessum/geom"

	"tessella/direction"
)

// Point is a position in 2-D screen space.
type Point = geom.Point

// Edge is a directed boundary segment of a cell polygon in screen space.
type Edge struct {
	From, To Point
}

// DirectionType distinguishes directions aligned to a cell's faces from
// directions aligned to its vertices. Some topologies allow different
// direction sets for each.
type DirectionType uint8

const (
	// Face marks directions that cross a cell edge.
	Face DirectionType = iota
	// Vertex marks directions that cross a cell corner.
	Vertex
)

// Opposite returns the other DirectionType.
func (t DirectionType) Opposite() DirectionType {
	if t == Face {
		return Vertex
	}
	return Face
}

// String returns "Face" or "Vertex".
func (t DirectionType) String() string {
	switch t {
	case Face:
		return "Face"
	case Vertex:
		return "Vertex"
	default:
		panic(fmt.Sprintf("grid: invalid direction type %d", uint8(t)))
	}
}

// Color is one of the four cell colors. Every topology's coloring
// guarantees that no two face-adjacent coordinates share a Color.
type Color uint8

const (
	ColorA Color = 1 + iota
	ColorB
	ColorC
	ColorD
)

// ColorFromIndex converts an index in [1, 4] to a Color. It reports false
// for indexes outside the valid color range.
func ColorFromIndex(n int) (Color, bool) {
	if n < 1 || n > 4 {
		return 0, false
	}
	return Color(n), true
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorA:
		return "ColorA"
	case ColorB:
		return "ColorB"
	case ColorC:
		return "ColorC"
	case ColorD:
		return "ColorD"
	default:
		panic(fmt.Sprintf("grid: invalid color value %d", uint8(c)))
	}
}

// MustColor converts a computed color index, panicking on an index outside
// the valid range: the per-topology formulas only produce indexes in 1..4,
// so anything else is a bug.
func MustColor(n int) Color {
	c, ok := ColorFromIndex(n)
	if !ok {
		panic(fmt.Sprintf("grid: unexpected fill color index %d", n))
	}
	return c
}

// Range bounds the number of elements a direction or axis iterator
// produces. The zero value is unbounded.
type Range struct {
	limit   int
	bounded bool
}

// Count returns a Range producing at most n elements.
func Count(n int) Range {
	return Range{limit: n, bounded: true}
}

// Unbounded returns a Range with no limit.
func Unbounded() Range {
	return Range{}
}

// Done reports whether iteration is complete after index elements.
func (r Range) Done(index int) bool {
	return r.bounded && index >= r.limit
}

// Coord is the interface every grid coordinate implements. C is the
// concrete coordinate type itself and A its axis type.
//
// Grids are oriented so that the angle π/2 points "up", along the positive
// y axis of screen space.
type Coord[C comparable, A comparable] interface {
	comparable
	fmt.Stringer

	// IsOrigin reports whether the coordinate is the topology's origin.
	IsOrigin() bool

	// Distance returns the number of face-direction steps between the two
	// coordinates. It equals the length of PathIter minus one.
	Distance(other C) int

	// AngleToDirection converts an angle in radians to the nearest allowed
	// direction of the given type for this coordinate.
	AngleToDirection(t DirectionType, angle float64) direction.Direction

	// DirectionAngle converts an allowed direction to the angle, in
	// radians, of actual movement between cell centers. It reports false
	// for a direction not allowed under t from this coordinate. The angle
	// need not match the compass angle: on a hexagonal grid, moving
	// NorthEast crosses cells at π/6, not π/4.
	DirectionAngle(t DirectionType, d direction.Direction) (float64, bool)

	// MoveInDirection returns the neighboring coordinate in the given
	// direction, reporting false if the direction is not allowed.
	MoveInDirection(t DirectionType, d direction.Direction) (C, bool)

	// MoveOnAxis returns the neighboring coordinate along the given axis,
	// in its positive or negative orientation.
	MoveOnAxis(axis A, positive bool) C

	// AllowedDirection reports whether d is a valid direction of type t
	// from this coordinate.
	AllowedDirection(t DirectionType, d direction.Direction) bool

	// AllowedDirections returns the set of valid directions of type t from
	// this coordinate.
	AllowedDirections(t DirectionType) direction.Set

	// DirectionIter returns the lazy sequence of coordinates obtained by
	// starting at this coordinate and stepping repeatedly in d. The
	// sequence is empty if d is not allowed; otherwise its first element
	// is the coordinate itself. The sequence is restartable.
	DirectionIter(t DirectionType, d direction.Direction, r Range) iter.Seq[C]

	// PathIter returns the inclusive sequence of coordinates from this
	// coordinate to other, using only face-direction steps. Its length is
	// exactly Distance(other)+1.
	PathIter(other C) iter.Seq[C]

	// AxisIter is DirectionIter parameterized by an axis and a sign.
	AxisIter(axis A, positive bool, r Range) iter.Seq[C]

	// ArrayOffset converts the coordinate to a pair of offsets suitable
	// for indexing a 2-D array. Each topology provides the inverse as a
	// package-level FromArrayOffset constructor, and the two round-trip
	// exactly.
	ArrayOffset() (int, int)

	// Color returns the coordinate's four-coloring value, which differs
	// from the color of every face-adjacent coordinate.
	Color() Color

	// RotateClockwise rotates the coordinate about the origin by one step
	// of the topology's rotational symmetry.
	RotateClockwise() C

	// RotateCounterclockwise is the inverse of RotateClockwise.
	RotateCounterclockwise() C

	// Rotate applies RotateClockwise steps times; negative steps rotate
	// counter-clockwise, and zero is the identity.
	Rotate(steps int) C

	// Reflect reflects the coordinate across the given axis. Reflection is
	// an involution.
	Reflect(axis A) C
}

// ModuleCoord refines Coord for topologies whose coordinates form an
// algebraic module: vector-like addition with the origin as identity,
// negation, and scalar multiplication. Square and hexagonal coordinates
// qualify; triangular coordinates do not, as their orientation flag has no
// identity-preserving combination rule.
type ModuleCoord[C comparable, A comparable] interface {
	Coord[C, A]

	// Neg returns the additive inverse.
	Neg() C

	// Add returns the sum of the two coordinates.
	Add(other C) C

	// Sub returns the difference of the two coordinates.
	Sub(other C) C

	// Scale returns the coordinate multiplied by a signed integer.
	Scale(n int) C

	// OffsetInDirection returns the raw displacement for one step in the
	// given direction, reporting false if the direction is not allowed.
	// Iterators advance by this offset instead of re-dispatching per step.
	OffsetInDirection(t DirectionType, d direction.Direction) (C, bool)

	// OffsetOnAxis returns the raw displacement for one step on the axis.
	OffsetOnAxis(axis A, positive bool) C
}

// SizedGrid extends a topology's abstract coordinates with a concrete cell
// size, fixing the mapping between grid coordinates and screen space. The
// single linear scale is the inradius of a cell.
type SizedGrid[C comparable] interface {
	// Inradius is the radius of the largest circle inscribed in a cell.
	Inradius() float64

	// Circumradius is the radius of the smallest circle containing a
	// cell. It is always at least the inradius.
	Circumradius() float64

	// EdgeLength is the length of one cell edge.
	EdgeLength() float64

	// Vertices returns the cell's corner points, each consecutive pair
	// separated by EdgeLength.
	Vertices(c C) []Point

	// Edges maps each allowed face direction of the cell to its boundary
	// segment.
	Edges(c C) map[direction.Direction]Edge

	// GridToScreen returns the screen-space center of the coordinate.
	GridToScreen(c C) Point

	// ScreenToGrid returns the coordinate whose cell contains the point.
	// It is the (approximate) inverse of GridToScreen.
	ScreenToGrid(p Point) C

	// CoordIntersectsRect reports whether the cell polygon of c intersects
	// the axis-aligned rectangle. Touching edges do not intersect.
	CoordIntersectsRect(c C, min, max Point) bool

	// ScreenRectToGrid returns a lazy sequence of every coordinate whose
	// cell intersects the axis-aligned rectangle. It reports false if min
	// is not component-wise less than or equal to max.
	ScreenRectToGrid(min, max Point) (iter.Seq[C], bool)
}

// RotateSteps applies a clockwise rotation steps times; negative steps
// rotate counter-clockwise. Topologies use it to implement Rotate.
func RotateSteps[C interface {
	RotateClockwise() C
	RotateCounterclockwise() C
}](c C, steps int) C {
	for ; steps > 0; steps-- {
		c = c.RotateClockwise()
	}
	for ; steps < 0; steps++ {
		c = c.RotateCounterclockwise()
	}
	return c
}

// EmptySeq returns a sequence producing no elements.
func EmptySeq[C any]() iter.Seq[C] {
	return func(yield func(C) bool) {}
}

// OffsetIter returns the sequence start, start+offset, start+2·offset, ...
// bounded by r. Module-coordinate topologies implement their direction and
// axis iterators with it.
func OffsetIter[C interface{ Add(C) C }](start, offset C, r Range) iter.Seq[C] {
	return func(yield func(C) bool) {
		c := start
		for i := 0; !r.Done(i); i++ {
			if !yield(c) {
				return
			}
			c = c.Add(offset)
		}
	}
}
