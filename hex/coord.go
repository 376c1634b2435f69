// Package hex implements coordinates and cell geometry for the flat-topped
// hexagonal tiling, using the axial coordinate system described at
// https://www.redblobgames.com/grids/hexagons/. Coordinates form an
// algebraic module, so the package also provides the vector-like arithmetic
// of grid.ModuleCoord.
package hex

import (
	"fmt"
	"iter"
	"math"

	"tessella/direction"
	"tessella/grid"
)

// Axis names one of the three symmetry axes of a hexagonal grid.
type Axis uint8

const (
	Q Axis = iota
	R
	S
)

// Axes lists the axes of a hexagonal grid.
var Axes = []Axis{Q, R, S}

// String returns "Q", "R" or "S".
func (a Axis) String() string {
	switch a {
	case Q:
		return "Q"
	case R:
		return "R"
	case S:
		return "S"
	default:
		panic(fmt.Sprintf("hex: invalid axis %d", uint8(a)))
	}
}

// The allowed movement directions are the same from every coordinate of a
// hexagonal grid. A flat-topped hexagon has no East or West face, and no
// North or South vertex.
var (
	allowedFaceDirections = direction.SetOf(
		direction.North, direction.NorthEast, direction.SouthEast,
		direction.South, direction.SouthWest, direction.NorthWest)
	allowedVertexDirections = direction.SetOf(
		direction.NorthEast, direction.East, direction.SouthEast,
		direction.SouthWest, direction.West, direction.NorthWest)
)

// Coord is an axial coordinate of the hexagonal tiling.
type Coord struct {
	Q, R int
}

// New returns the coordinate at axial (q, r).
func New(q, r int) Coord {
	return Coord{Q: q, R: r}
}

// Origin returns the additive identity coordinate.
func Origin() Coord {
	return Coord{}
}

// FromArrayOffset converts 2-D array offsets back to an axial coordinate,
// undoing the even-q vertical layout of ArrayOffset.
func FromArrayOffset(x, y int) Coord {
	return Coord{Q: x, R: y - (x+(x&1))/2}
}

// Cube is the cube-coordinate form of a hex coordinate. Its components
// always sum to zero.
type Cube struct {
	X, Y, Z int
}

// Cube returns the cube form of the coordinate, with X = Q and Z = R.
func (c Coord) Cube() Cube {
	return Cube{X: c.Q, Y: -c.Q - c.R, Z: c.R}
}

// FromCube converts a cube coordinate back to axial form. It panics if the
// components do not sum to zero.
func FromCube(c Cube) Coord {
	if c.X+c.Y+c.Z != 0 {
		panic(fmt.Sprintf("hex: cube coordinate %v does not sum to zero", c))
	}
	return Coord{Q: c.X, R: c.Z}
}

// hexRound rounds fractional cube components to the nearest hex, fixing up
// whichever rounded component drifted furthest so the result still sums to
// zero.
func hexRound(x, y, z float64) Cube {
	rx := math.Round(x)
	ry := math.Round(y)
	rz := math.Round(z)
	dx := math.Abs(rx - x)
	dy := math.Abs(ry - y)
	dz := math.Abs(rz - z)
	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}
	return Cube{X: int(rx), Y: int(ry), Z: int(rz)}
}

// String formats the coordinate as "(q,r)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Q, c.R)
}

// IsOrigin reports whether the coordinate is the origin.
func (c Coord) IsOrigin() bool {
	return c == Coord{}
}

// Distance returns the number of face steps between the two coordinates.
func (c Coord) Distance(other Coord) int {
	dq := c.Q - other.Q
	dr := c.R - other.R
	return (grid.Abs(dq) + grid.Abs(dr) + grid.Abs(dq+dr)) / 2
}

// AngleToDirection converts an angle in radians to the nearest allowed
// direction of the given type. The mapping is the same for every
// coordinate.
func (c Coord) AngleToDirection(t grid.DirectionType, angle float64) direction.Direction {
	norm := normalizeAngle(angle)
	if t == grid.Face {
		hextant := norm / (math.Pi / 3)
		switch {
		case hextant < 1:
			return direction.NorthEast
		case hextant < 2:
			return direction.North
		case hextant < 3:
			return direction.NorthWest
		case hextant < 4:
			return direction.SouthWest
		case hextant < 5:
			return direction.South
		default:
			return direction.SouthEast
		}
	}
	dodecant := norm / (math.Pi / 6)
	switch {
	case dodecant > 11 || dodecant < 1:
		return direction.East
	case dodecant < 3:
		return direction.NorthEast
	case dodecant < 5:
		return direction.NorthWest
	case dodecant < 7:
		return direction.West
	case dodecant < 9:
		return direction.SouthWest
	default:
		return direction.SouthEast
	}
}

// DirectionAngle converts an allowed direction to its movement angle,
// reporting false for disallowed directions. Diagonal face moves cross at
// multiples of π/6 rather than their compass angles.
func (c Coord) DirectionAngle(t grid.DirectionType, d direction.Direction) (float64, bool) {
	if t == grid.Face {
		switch d {
		case direction.NorthEast:
			return math.Pi / 6, true
		case direction.NorthWest:
			return 5 * math.Pi / 6, true
		case direction.SouthWest:
			return 7 * math.Pi / 6, true
		case direction.SouthEast:
			return 11 * math.Pi / 6, true
		case direction.North, direction.South:
			return d.Angle(), true
		default:
			return 0, false
		}
	}
	switch d {
	case direction.NorthEast:
		return math.Pi / 3, true
	case direction.NorthWest:
		return 2 * math.Pi / 3, true
	case direction.SouthWest:
		return 4 * math.Pi / 3, true
	case direction.SouthEast:
		return 5 * math.Pi / 3, true
	case direction.East, direction.West:
		return d.Angle(), true
	default:
		return 0, false
	}
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

// PathIter returns the inclusive straight-line path from c to other,
// produced by sampling the segment between the two cell centers in cube
// space and rounding each sample to its containing hex.
func (c Coord) PathIter(other Coord) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		steps := c.Distance(other)
		a, b := c.Cube(), other.Cube()
		if steps == 0 {
			yield(c)
			return
		}
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			cube := hexRound(
				grid.Lerp(float64(a.X), float64(b.X), t),
				grid.Lerp(float64(a.Y), float64(b.Y), t),
				grid.Lerp(float64(a.Z), float64(b.Z), t),
			)
			if !yield(FromCube(cube)) {
				return
			}
		}
	}
}

// AxisIter returns the sequence of coordinates stepping repeatedly along
// the axis.
func (c Coord) AxisIter(axis Axis, positive bool, r grid.Range) iter.Seq[Coord] {
	return grid.OffsetIter(c, c.OffsetOnAxis(axis, positive), r)
}

// ArrayOffset converts the coordinate to 2-D array offsets using the
// even-q vertical layout: each odd column is shoved down half a cell.
func (c Coord) ArrayOffset() (int, int) {
	return c.Q, c.R + (c.Q+(c.Q&1))/2
}

// Color returns the coordinate's three-coloring: face-adjacent hexes
// always differ.
func (c Coord) Color() grid.Color {
	x, y := c.ArrayOffset()
	return grid.MustColor(grid.Mod(y+grid.Mod(x, 2), 3) + 1)
}

// RotateClockwise rotates the coordinate a sixth turn about the origin by
// negating and cycling its cube components.
func (c Coord) RotateClockwise() Coord {
	cube := c.Cube()
	return FromCube(Cube{X: -cube.Z, Y: -cube.X, Z: -cube.Y})
}

// RotateCounterclockwise is the inverse of RotateClockwise.
func (c Coord) RotateCounterclockwise() Coord {
	cube := c.Cube()
	return FromCube(Cube{X: -cube.Y, Y: -cube.Z, Z: -cube.X})
}

// Rotate applies steps sixth turns, clockwise for positive steps.
func (c Coord) Rotate(steps int) Coord {
	return grid.RotateSteps(c, steps)
}

// Reflect reflects the coordinate across the given axis by swapping the
// other two cube components.
func (c Coord) Reflect(axis Axis) Coord {
	cube := c.Cube()
	switch axis {
	case Q:
		return FromCube(Cube{X: cube.X, Y: cube.Z, Z: cube.Y})
	case R:
		return FromCube(Cube{X: cube.Y, Y: cube.X, Z: cube.Z})
	default:
		return FromCube(Cube{X: cube.Z, Y: cube.Y, Z: cube.X})
	}
}

// Neg returns the additive inverse.
func (c Coord) Neg() Coord {
	return Coord{Q: -c.Q, R: -c.R}
}

// Add returns the sum of the two coordinates.
func (c Coord) Add(other Coord) Coord {
	return Coord{Q: c.Q + other.Q, R: c.R + other.R}
}

// Sub returns the difference of the two coordinates.
func (c Coord) Sub(other Coord) Coord {
	return Coord{Q: c.Q - other.Q, R: c.R - other.R}
}

// Scale returns the coordinate multiplied by n.
func (c Coord) Scale(n int) Coord {
	return Coord{Q: c.Q * n, R: c.R * n}
}

// OffsetInDirection returns the raw displacement for one step in the given
// direction, reporting false if the direction is not allowed.
func (c Coord) OffsetInDirection(t grid.DirectionType, d direction.Direction) (Coord, bool) {
	type key struct {
		t grid.DirectionType
		d direction.Direction
	}
	switch (key{t, d}) {
	case key{grid.Face, direction.NorthEast}:
		return Coord{1, 0}, true
	case key{grid.Face, direction.North}:
		return Coord{0, 1}, true
	case key{grid.Face, direction.NorthWest}:
		return Coord{-1, 1}, true
	case key{grid.Face, direction.SouthWest}:
		return Coord{-1, 0}, true
	case key{grid.Face, direction.South}:
		return Coord{0, -1}, true
	case key{grid.Face, direction.SouthEast}:
		return Coord{1, -1}, true
	case key{grid.Vertex, direction.East}:
		return Coord{2, -1}, true
	case key{grid.Vertex, direction.NorthEast}:
		return Coord{1, 1}, true
	case key{grid.Vertex, direction.NorthWest}:
		return Coord{-1, 2}, true
	case key{grid.Vertex, direction.West}:
		return Coord{-2, 1}, true
	case key{grid.Vertex, direction.SouthWest}:
		return Coord{-1, -1}, true
	case key{grid.Vertex, direction.SouthEast}:
		return Coord{1, -2}, true
	default:
		return Coord{}, false
	}
}

// OffsetOnAxis returns the raw displacement for one step on the axis. The
// Q axis runs North, R runs NorthEast and S runs SouthEast.
func (c Coord) OffsetOnAxis(axis Axis, positive bool) Coord {
	var d direction.Direction
	switch {
	case axis == Q && positive:
		d = direction.North
	case axis == Q && !positive:
		d = direction.South
	case axis == R && positive:
		d = direction.NorthEast
	case axis == R && !positive:
		d = direction.SouthWest
	case axis == S && positive:
		d = direction.SouthEast
	default:
		d = direction.NorthWest
	}
	offset, _ := c.OffsetInDirection(grid.Face, d)
	return offset
}

// Ring returns the shape of coordinates at exactly the given distance from
// the origin.
func Ring(radius int) grid.Shape[Coord] {
	if radius == 0 {
		return grid.NewShape(Origin())
	}
	return grid.Ring(New(radius, 0), Q, Q, Axes, -1)
}

// RangeShape returns the filled shape of every coordinate within the given
// distance of the origin.
func RangeShape(radius int) grid.Shape[Coord] {
	return grid.CollectShape(func(yield func(Coord) bool) {
		for q := -radius; q <= radius; q++ {
			for r := -radius; r <= radius; r++ {
				if grid.Abs(q+r) > radius {
					continue
				}
				if !yield(New(q, r)) {
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
