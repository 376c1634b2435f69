// Package square implements coordinates and cell geometry for the
// Manhattan square tiling. Coordinates are plain 2-D integer vectors and
// form an algebraic module, so the package also provides the vector-like
// arithmetic of grid.ModuleCoord.
package square

import (
	"fmt"
	"iter"
	"math"

	"tessella/direction"
	"tessella/grid"
)

// Axis names one of the two independent lines of translation of a square
// grid.
type Axis uint8

const (
	X Axis = iota
	Y
)

// Axes lists the axes of a square grid.
var Axes = []Axis{X, Y}

// String returns "X" or "Y".
func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	default:
		panic(fmt.Sprintf("square: invalid axis %d", uint8(a)))
	}
}

// The allowed movement directions are the same from every coordinate of a
// square grid: cardinal directions cross faces, ordinal ones cross
// vertices.
var (
	allowedFaceDirections = direction.SetOf(
		direction.North, direction.East, direction.South, direction.West)
	allowedVertexDirections = direction.SetOf(
		direction.NorthEast, direction.SouthEast, direction.SouthWest, direction.NorthWest)
)

// Coord is a coordinate of the square tiling.
type Coord struct {
	X, Y int
}

// New returns the coordinate at (x, y).
func New(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Origin returns the additive identity coordinate.
func Origin() Coord {
	return Coord{}
}

// FromArrayOffset converts 2-D array offsets to a coordinate. For a square
// grid the two are identical.
func FromArrayOffset(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String formats the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// IsOrigin reports whether the coordinate is the origin.
func (c Coord) IsOrigin() bool {
	return c == Coord{}
}

// Distance returns the Manhattan distance between the two coordinates.
func (c Coord) Distance(other Coord) int {
	return grid.Abs(other.X-c.X) + grid.Abs(other.Y-c.Y)
}

// AngleToDirection converts an angle in radians to the nearest allowed
// direction of the given type. The mapping is the same for every
// coordinate.
func (c Coord) AngleToDirection(t grid.DirectionType, angle float64) direction.Direction {
	if t == grid.Vertex {
		// Vertex directions sit an octant counter-clockwise of the face
		// direction found for the offset angle.
		return c.AngleToDirection(grid.Face, angle-math.Pi/4).CounterClockwise()
	}
	octant := normalizeAngle(angle) / (math.Pi / 4)
	switch {
	case octant >= 7 || octant < 1:
		return direction.East
	case octant < 3:
		return direction.North
	case octant < 5:
		return direction.West
	default:
		return direction.South
	}
}

// DirectionAngle converts an allowed direction to its movement angle,
// reporting false for disallowed directions. On a square grid every
// allowed direction moves at its compass angle.
func (c Coord) DirectionAngle(t grid.DirectionType, d direction.Direction) (float64, bool) {
	if !c.AllowedDirection(t, d) {
		return 0, false
	}
	return d.Angle(), true
}

// MoveInDirection returns the neighboring coordinate in the given
// direction, reporting false if the direction is not allowed.
func (c Coord) MoveInDirection(t grid.DirectionType, d direction.Direction) (Coord, bool) {
	offset, ok := c.OffsetInDirection(t, d)
	if !ok {
		return Coord{}, false
	}
	return c.Add(offset), true
}

// MoveOnAxis returns the neighboring coordinate along the given axis.
func (c Coord) MoveOnAxis(axis Axis, positive bool) Coord {
	return c.Add(c.OffsetOnAxis(axis, positive))
}

// AllowedDirection reports whether d is valid under t. The answer is the
// same from every coordinate.
func (c Coord) AllowedDirection(t grid.DirectionType, d direction.Direction) bool {
	return c.AllowedDirections(t).Contains(d)
}

// AllowedDirections returns the valid directions under t.
func (c Coord) AllowedDirections(t grid.DirectionType) direction.Set {
	if t == grid.Face {
		return allowedFaceDirections
	}
	return allowedVertexDirections
}

// DirectionIter returns the sequence of coordinates stepping repeatedly in
// d, starting at c. The sequence is empty if d is disallowed.
func (c Coord) DirectionIter(t grid.DirectionType, d direction.Direction, r grid.Range) iter.Seq[Coord] {
	offset, ok := c.OffsetInDirection(t, d)
	if !ok {
		return grid.EmptySeq[Coord]()
	}
	return grid.OffsetIter(c, offset, r)
}

// AxisIter returns the sequence of coordinates stepping repeatedly along
// the axis.
func (c Coord) AxisIter(axis Axis, positive bool, r grid.Range) iter.Seq[Coord] {
	return grid.OffsetIter(c, c.OffsetOnAxis(axis, positive), r)
}

// ArrayOffset converts the coordinate to 2-D array offsets. For a square
// grid the two are identical.
func (c Coord) ArrayOffset() (int, int) {
	return c.X, c.Y
}

// Color returns the coordinate's two-coloring: face-adjacent squares
// alternate colors like a checkerboard.
func (c Coord) Color() grid.Color {
	return grid.MustColor(grid.Mod(c.X+c.Y, 2) + 1)
}

// RotateClockwise rotates the coordinate a quarter turn about the origin.
func (c Coord) RotateClockwise() Coord {
	return Coord{X: -c.Y, Y: c.X}
}

// RotateCounterclockwise is the inverse of RotateClockwise.
func (c Coord) RotateCounterclockwise() Coord {
	return Coord{X: c.Y, Y: -c.X}
}

// Rotate applies steps quarter turns, clockwise for positive steps.
func (c Coord) Rotate(steps int) Coord {
	return grid.RotateSteps(c, steps)
}

// Reflect reflects the coordinate across the given axis.
func (c Coord) Reflect(axis Axis) Coord {
	if axis == X {
		return Coord{X: -c.X, Y: c.Y}
	}
	return Coord{X: c.X, Y: -c.Y}
}

// Neg returns the additive inverse.
func (c Coord) Neg() Coord {
	return Coord{X: -c.X, Y: -c.Y}
}

// Add returns the sum of the two coordinates.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Sub returns the difference of the two coordinates.
func (c Coord) Sub(other Coord) Coord {
	return Coord{X: c.X - other.X, Y: c.Y - other.Y}
}

// Scale returns the coordinate multiplied by n.
func (c Coord) Scale(n int) Coord {
	return Coord{X: c.X * n, Y: c.Y * n}
}

// OffsetInDirection returns the raw displacement for one step in the given
// direction, reporting false if the direction is not allowed.
func (c Coord) OffsetInDirection(t grid.DirectionType, d direction.Direction) (Coord, bool) {
	type key struct {
		t grid.DirectionType
		d direction.Direction
	}
	switch (key{t, d}) {
	case key{grid.Face, direction.North}:
		return Coord{0, 1}, true
	case key{grid.Face, direction.East}:
		return Coord{1, 0}, true
	case key{grid.Face, direction.South}:
		return Coord{0, -1}, true
	case key{grid.Face, direction.West}:
		return Coord{-1, 0}, true
	case key{grid.Vertex, direction.NorthEast}:
		return Coord{1, 1}, true
	case key{grid.Vertex, direction.SouthEast}:
		return Coord{1, -1}, true
	case key{grid.Vertex, direction.SouthWest}:
		return Coord{-1, -1}, true
	case key{grid.Vertex, direction.NorthWest}:
		return Coord{-1, 1}, true
	default:
		return Coord{}, false
	}
}

// OffsetOnAxis returns the raw displacement for one step along the axis.
func (c Coord) OffsetOnAxis(axis Axis, positive bool) Coord {
	var d direction.Direction
	switch {
	case axis == Y && positive:
		d = direction.North
	case axis == Y && !positive:
		d = direction.South
	case axis == X && positive:
		d = direction.East
	default:
		d = direction.West
	}
	offset, _ := c.OffsetInDirection(grid.Face, d)
	return offset
}

// PathIter returns the inclusive straight-line path from c to other using
// face steps. At each step it moves along whichever axis minimizes the
// error against the linear interpolation between the endpoints, biased
// towards the x axis when both errors are equal.
func (c Coord) PathIter(other Coord) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		steps := c.Distance(other)
		dx := grid.Sign(other.X - c.X)
		dy := grid.Sign(other.Y - c.Y)
		cur := c
		for i := 0; i <= steps; i++ {
			if !yield(cur) {
				return
			}
			if i == steps {
				return
			}
			t := float64(i+1) / float64(steps)
			tx := grid.Lerp(float64(c.X), float64(other.X), t)
			ty := grid.Lerp(float64(c.Y), float64(other.Y), t)
			errX := math.Inf(1)
			if dx != 0 {
				errX = math.Hypot(tx-float64(cur.X+dx), ty-float64(cur.Y))
			}
			errY := math.Inf(1)
			if dy != 0 {
				errY = math.Hypot(tx-float64(cur.X), ty-float64(cur.Y+dy))
			}
			if errX <= errY {
				cur.X += dx
			} else {
				cur.Y += dy
			}
		}
	}
}

// Ring returns the shape of coordinates at exactly the given distance-like
// radius from the origin, tracing the square's boundary corner to corner.
func Ring(radius int) grid.Shape[Coord] {
	if radius == 0 {
		return grid.NewShape(Origin())
	}
	return grid.Ring(New(radius, radius), Y, Y, Axes, -1)
}

// RangeShape returns the filled shape of every coordinate within the given
// radius of the origin.
func RangeShape(radius int) grid.Shape[Coord] {
	return grid.CollectShape(func(yield func(Coord) bool) {
		for x := -radius; x <= radius; x++ {
			for y := -radius; y <= radius; y++ {
				if !yield(New(x, y)) {
					return
				}
			}
		}
	})
}

// normalizeAngle maps an angle into [0, 2π).
func normalizeAngle(angle float64) float64 {
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func assertCoord[C grid.ModuleCoord[C, A], A comparable]() {}

var _ = assertCoord[Coord, Axis]
