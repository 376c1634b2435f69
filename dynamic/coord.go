// Package dynamic provides coordinate and grid types that dispatch at
// runtime to one of the concrete tessellations. Code that must switch
// between square, hexagonal and triangular grids while the program runs
// cannot be generic over the coordinate type; this package wraps the three
// concrete types behind a single pair of Coord and Axis values tagged with
// their Kind.
//
// Operations that combine two values, such as Distance or Reflect, panic
// when the operands come from different kinds. Mixing kinds is a
// programming error, not a recoverable condition.
//
// The dynamic Coord implements grid.Coord but not grid.ModuleCoord: the
// triangular tessellation has no module structure, so the wrapper cannot
// promise one either. Callers that need module operations should check
// Kind.IsModular and unwrap to the concrete type.
package dynamic

import (
	"fmt"
	"iter"

	"tessella/direction"
	"tessella/grid"
	"tessella/hex"
	"tessella/square"
	"tessella/triangle"
)

// Kind identifies one of the concrete tessellations.
type Kind uint8

const (
	Square Kind = iota
	Hex
	Triangle
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case Square:
		return "Square"
	case Hex:
		return "Hex"
	case Triangle:
		return "Triangle"
	default:
		panic(fmt.Sprintf("dynamic: invalid kind %d", uint8(k)))
	}
}

// NumVertices returns the number of vertices of one cell of this kind.
func (k Kind) NumVertices() int {
	switch k {
	case Square:
		return 4
	case Hex:
		return 6
	case Triangle:
		return 3
	default:
		panic(fmt.Sprintf("dynamic: invalid kind %d", uint8(k)))
	}
}

// Axes returns the axes of this kind, wrapped as dynamic Axis values.
func (k Kind) Axes() []Axis {
	switch k {
	case Square:
		axes := make([]Axis, 0, len(square.Axes))
		for _, a := range square.Axes {
			axes = append(axes, SquareAxis(a))
		}
		return axes
	case Hex:
		axes := make([]Axis, 0, len(hex.Axes))
		for _, a := range hex.Axes {
			axes = append(axes, HexAxis(a))
		}
		return axes
	case Triangle:
		axes := make([]Axis, 0, len(triangle.Axes))
		for _, a := range triangle.Axes {
			axes = append(axes, TriangleAxis(a))
		}
		return axes
	default:
		panic(fmt.Sprintf("dynamic: invalid kind %d", uint8(k)))
	}
}

// IsModular reports whether coordinates of this kind form an algebraic
// module. Triangular coordinates do not.
func (k Kind) IsModular() bool {
	return k == Square || k == Hex
}

// Axis is a runtime-dispatched grid axis. The zero value is the square
// X axis.
type Axis struct {
	kind Kind
	sq   square.Axis
	hx   hex.Axis
	tr   triangle.Axis
}

// SquareAxis wraps a square grid axis.
func SquareAxis(a square.Axis) Axis {
	return Axis{kind: Square, sq: a}
}

// HexAxis wraps a hexagonal grid axis.
func HexAxis(a hex.Axis) Axis {
	return Axis{kind: Hex, hx: a}
}

// TriangleAxis wraps a triangular grid axis.
func TriangleAxis(a triangle.Axis) Axis {
	return Axis{kind: Triangle, tr: a}
}

// Kind returns the tessellation the axis belongs to.
func (a Axis) Kind() Kind {
	return a.kind
}

// String returns the wrapped axis's name.
func (a Axis) String() string {
	switch a.kind {
	case Square:
		return a.sq.String()
	case Hex:
		return a.hx.String()
	case Triangle:
		return a.tr.String()
	default:
		panic(fmt.Sprintf("dynamic: invalid axis kind %d", uint8(a.kind)))
	}
}

// Coord is a runtime-dispatched grid coordinate. The zero value is the
// square origin.
type Coord struct {
	kind Kind
	sq   square.Coord
	hx   hex.Coord
	tr   triangle.Coord
}

// FromSquare wraps a square coordinate.
func FromSquare(c square.Coord) Coord {
	return Coord{kind: Square, sq: c}
}

// FromHex wraps a hexagonal coordinate.
func FromHex(c hex.Coord) Coord {
	return Coord{kind: Hex, hx: c}
}

// FromTriangle wraps a triangular coordinate.
func FromTriangle(c triangle.Coord) Coord {
	return Coord{kind: Triangle, tr: c}
}

// Origin returns the origin coordinate of the given kind.
func Origin(kind Kind) Coord {
	switch kind {
	case Square:
		return FromSquare(square.Origin())
	case Hex:
		return FromHex(hex.Origin())
	case Triangle:
		return FromTriangle(triangle.Origin())
	default:
		panic(fmt.Sprintf("dynamic: invalid kind %d", uint8(kind)))
	}
}

// FromArrayOffset converts array offsets back to a coordinate of the given
// kind. It inverts Coord.ArrayOffset for that kind.
func FromArrayOffset(kind Kind, x, y int) Coord {
	switch kind {
	case Square:
		return FromSquare(square.FromArrayOffset(x, y))
	case Hex:
		return FromHex(hex.FromArrayOffset(x, y))
	case Triangle:
		return FromTriangle(triangle.FromArrayOffset(x, y))
	default:
		panic(fmt.Sprintf("dynamic: invalid kind %d", uint8(kind)))
	}
}

// Kind returns the tessellation the coordinate belongs to.
func (c Coord) Kind() Kind {
	return c.kind
}

// Square returns the wrapped square coordinate, reporting false if the
// coordinate is of another kind.
func (c Coord) Square() (square.Coord, bool) {
	return c.sq, c.kind == Square
}

// Hex returns the wrapped hexagonal coordinate, reporting false if the
// coordinate is of another kind.
func (c Coord) Hex() (hex.Coord, bool) {
	return c.hx, c.kind == Hex
}

// Triangle returns the wrapped triangular coordinate, reporting false if
// the coordinate is of another kind.
func (c Coord) Triangle() (triangle.Coord, bool) {
	return c.tr, c.kind == Triangle
}

// String returns the wrapped coordinate's representation.
func (c Coord) String() string {
	switch c.kind {
	case Square:
		return c.sq.String()
	case Hex:
		return c.hx.String()
	case Triangle:
		return c.tr.String()
	default:
		panic(fmt.Sprintf("dynamic: invalid coordinate kind %d", uint8(c.kind)))
	}
}

// IsOrigin reports whether the coordinate is its tessellation's origin.
func (c Coord) IsOrigin() bool {
	switch c.kind {
	case Square:
		return c.sq.IsOrigin()
	case Hex:
		return c.hx.IsOrigin()
	default:
		return c.tr.IsOrigin()
	}
}

// Distance returns the number of face steps between the two coordinates.
// It panics if the coordinates are of different kinds.
func (c Coord) Distance(other Coord) int {
	if c.kind != other.kind {
		panic(mismatch("compute distance between", c.kind, other.kind))
	}
	switch c.kind {
	case Square:
		return c.sq.Distance(other.sq)
	case Hex:
		return c.hx.Distance(other.hx)
	default:
		return c.tr.Distance(other.tr)
	}
}

// AngleToDirection converts an angle in radians to the nearest allowed
// direction of the given type for this coordinate.
func (c Coord) AngleToDirection(t grid.DirectionType, angle float64) direction.Direction {
	switch c.kind {
	case Square:
		return c.sq.AngleToDirection(t, angle)
	case Hex:
		return c.hx.AngleToDirection(t, angle)
	default:
		return c.tr.AngleToDirection(t, angle)
	}
}

// DirectionAngle converts an allowed direction to its movement angle,
// reporting false for a direction not allowed from this coordinate.
func (c Coord) DirectionAngle(t grid.DirectionType, d direction.Direction) (float64, bool) {
	switch c.kind {
	case Square:
		return c.sq.DirectionAngle(t, d)
	case Hex:
		return c.hx.DirectionAngle(t, d)
	default:
		return c.tr.DirectionAngle(t, d)
	}
}

// MoveInDirection returns the neighboring coordinate in the given
// direction, reporting false if the direction is not allowed.
func (c Coord) MoveInDirection(t grid.DirectionType, d direction.Direction) (Coord, bool) {
	switch c.kind {
	case Square:
		moved, ok := c.sq.MoveInDirection(t, d)
		return FromSquare(moved), ok
	case Hex:
		moved, ok := c.hx.MoveInDirection(t, d)
		return FromHex(moved), ok
	default:
		moved, ok := c.tr.MoveInDirection(t, d)
		return FromTriangle(moved), ok
	}
}

// MoveOnAxis returns the neighboring coordinate along the axis. It panics
// if the axis belongs to a different kind than the coordinate.
func (c Coord) MoveOnAxis(axis Axis, positive bool) Coord {
	if c.kind != axis.kind {
		panic(axisMismatch("move", c.kind, axis.kind))
	}
	switch c.kind {
	case Square:
		return FromSquare(c.sq.MoveOnAxis(axis.sq, positive))
	case Hex:
		return FromHex(c.hx.MoveOnAxis(axis.hx, positive))
	default:
		return FromTriangle(c.tr.MoveOnAxis(axis.tr, positive))
	}
}

// AllowedDirection reports whether d is a valid direction of type t from
// this coordinate.
func (c Coord) AllowedDirection(t grid.DirectionType, d direction.Direction) bool {
	return c.AllowedDirections(t).Contains(d)
}

// AllowedDirections returns the set of valid directions of type t from
// this coordinate.
func (c Coord) AllowedDirections(t grid.DirectionType) direction.Set {
	switch c.kind {
	case Square:
		return c.sq.AllowedDirections(t)
	case Hex:
		return c.hx.AllowedDirections(t)
	default:
		return c.tr.AllowedDirections(t)
	}
}

// DirectionIter returns the lazy sequence of coordinates stepping
// repeatedly in d, starting with the coordinate itself. The sequence is
// empty if d is not allowed.
func (c Coord) DirectionIter(t grid.DirectionType, d direction.Direction, r grid.Range) iter.Seq[Coord] {
	switch c.kind {
	case Square:
		return wrapSeq(c.sq.DirectionIter(t, d, r), FromSquare)
	case Hex:
		return wrapSeq(c.hx.DirectionIter(t, d, r), FromHex)
	default:
		return wrapSeq(c.tr.DirectionIter(t, d, r), FromTriangle)
	}
}

// PathIter returns the inclusive sequence of coordinates from this
// coordinate to other, using only face steps. It panics if the
// coordinates are of different kinds.
func (c Coord) PathIter(other Coord) iter.Seq[Coord] {
	if c.kind != other.kind {
		panic(mismatch("build a path between", c.kind, other.kind))
	}
	switch c.kind {
	case Square:
		return wrapSeq(c.sq.PathIter(other.sq), FromSquare)
	case Hex:
		return wrapSeq(c.hx.PathIter(other.hx), FromHex)
	default:
		return wrapSeq(c.tr.PathIter(other.tr), FromTriangle)
	}
}

// AxisIter is DirectionIter parameterized by an axis and a sign. It panics
// if the axis belongs to a different kind than the coordinate.
func (c Coord) AxisIter(axis Axis, positive bool, r grid.Range) iter.Seq[Coord] {
	if c.kind != axis.kind {
		panic(axisMismatch("iterate", c.kind, axis.kind))
	}
	switch c.kind {
	case Square:
		return wrapSeq(c.sq.AxisIter(axis.sq, positive, r), FromSquare)
	case Hex:
		return wrapSeq(c.hx.AxisIter(axis.hx, positive, r), FromHex)
	default:
		return wrapSeq(c.tr.AxisIter(axis.tr, positive, r), FromTriangle)
	}
}

// ArrayOffset converts the coordinate to a pair of 2-D array offsets.
func (c Coord) ArrayOffset() (int, int) {
	switch c.kind {
	case Square:
		return c.sq.ArrayOffset()
	case Hex:
		return c.hx.ArrayOffset()
	default:
		return c.tr.ArrayOffset()
	}
}

// Color returns the coordinate's coloring value.
func (c Coord) Color() grid.Color {
	switch c.kind {
	case Square:
		return c.sq.Color()
	case Hex:
		return c.hx.Color()
	default:
		return c.tr.Color()
	}
}

// RotateClockwise rotates the coordinate about the origin by one step of
// its tessellation's rotational symmetry.
func (c Coord) RotateClockwise() Coord {
	switch c.kind {
	case Square:
		return FromSquare(c.sq.RotateClockwise())
	case Hex:
		return FromHex(c.hx.RotateClockwise())
	default:
		return FromTriangle(c.tr.RotateClockwise())
	}
}

// RotateCounterclockwise is the inverse of RotateClockwise.
func (c Coord) RotateCounterclockwise() Coord {
	switch c.kind {
	case Square:
		return FromSquare(c.sq.RotateCounterclockwise())
	case Hex:
		return FromHex(c.hx.RotateCounterclockwise())
	default:
		return FromTriangle(c.tr.RotateCounterclockwise())
	}
}

// Rotate applies RotateClockwise steps times; negative steps rotate
// counter-clockwise.
func (c Coord) Rotate(steps int) Coord {
	return grid.RotateSteps(c, steps)
}

// Reflect reflects the coordinate across the axis. It panics if the axis
// belongs to a different kind than the coordinate.
func (c Coord) Reflect(axis Axis) Coord {
	if c.kind != axis.kind {
		panic(axisMismatch("reflect", c.kind, axis.kind))
	}
	switch c.kind {
	case Square:
		return FromSquare(c.sq.Reflect(axis.sq))
	case Hex:
		return FromHex(c.hx.Reflect(axis.hx))
	default:
		return FromTriangle(c.tr.Reflect(axis.tr))
	}
}

// Ring returns the set of coordinates at exactly radius face steps from
// the origin of the given kind.
func Ring(kind Kind, radius int) grid.Shape[Coord] {
	switch kind {
	case Square:
		return grid.CollectShape(wrapSeq(square.Ring(radius).All(), FromSquare))
	case Hex:
		return grid.CollectShape(wrapSeq(hex.Ring(radius).All(), FromHex))
	case Triangle:
		return grid.CollectShape(wrapSeq(triangle.Ring(radius).All(), FromTriangle))
	default:
		panic(fmt.Sprintf("dynamic: invalid kind %d", uint8(kind)))
	}
}

// RangeShape returns the set of coordinates within radius rings of the
// origin of the given kind.
func RangeShape(kind Kind, radius int) grid.Shape[Coord] {
	switch kind {
	case Square:
		return grid.CollectShape(wrapSeq(square.RangeShape(radius).All(), FromSquare))
	case Hex:
		return grid.CollectShape(wrapSeq(hex.RangeShape(radius).All(), FromHex))
	case Triangle:
		return grid.CollectShape(wrapSeq(triangle.RangeShape(radius).All(), FromTriangle))
	default:
		panic(fmt.Sprintf("dynamic: invalid kind %d", uint8(kind)))
	}
}

// wrapSeq lifts a sequence of concrete coordinates into dynamic ones
// without materializing it.
func wrapSeq[C any](seq iter.Seq[C], wrap func(C) Coord) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for c := range seq {
			if !yield(wrap(c)) {
				return
			}
		}
	}
}

func mismatch(op string, a, b Kind) string {
	return fmt.Sprintf("dynamic: cannot %s %v and %v coordinates", op, a, b)
}

func axisMismatch(op string, c, a Kind) string {
	return fmt.Sprintf("dynamic: cannot %s a %v coordinate on a %v axis", op, c, a)
}

func assertCoord[C grid.Coord[C, A], A comparable]() {}

var _ = assertCoord[Coord, Axis]
