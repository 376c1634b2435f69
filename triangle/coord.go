// Package triangle implements coordinates and cell geometry for the
// triangular tiling, following the "lane" coordinate system described at
// https://www.boristhebrave.com/2021/05/23/triangle-grids/. Each
// coordinate pairs a 2-D position with the direction its triangle points.
//
// Unlike square and hexagonal coordinates, triangular coordinates do not
// form an algebraic module: there is no pointing-preserving addition with
// an identity, so the package implements grid.Coord but not
// grid.ModuleCoord.
package triangle

import (
	"fmt"
	"iter"
	"math"

	"tessella/direction"
	"tessella/grid"
)

// Axis names one of the three lane axes of a triangular grid.
type Axis uint8

const (
	A Axis = iota
	B
	C
)

// Axes lists the axes of a triangular grid.
var Axes = []Axis{A, B, C}

// String returns "A", "B" or "C".
func (a Axis) String() string {
	switch a {
	case A:
		return "A"
	case B:
		return "B"
	case C:
		return "C"
	default:
		panic(fmt.Sprintf("triangle: invalid axis %d", uint8(a)))
	}
}

// Pointing is the direction a triangular cell points.
type Pointing uint8

const (
	// Up points along the positive y axis.
	Up Pointing = iota
	// Down points along the negative y axis.
	Down
)

// Opposite returns the other Pointing.
func (p Pointing) Opposite() Pointing {
	if p == Up {
		return Down
	}
	return Up
}

// String returns "∆" or "∇".
func (p Pointing) String() string {
	switch p {
	case Up:
		return "∆"
	case Down:
		return "∇"
	default:
		panic(fmt.Sprintf("triangle: invalid pointing %d", uint8(p)))
	}
}

// The allowed movement directions depend only on which way the triangle
// points. Vertex directions are the face directions of the opposite
// pointing.
var (
	allowedDirectionsUp = direction.SetOf(
		direction.NorthEast, direction.South, direction.NorthWest)
	allowedDirectionsDown = direction.SetOf(
		direction.SouthWest, direction.North, direction.SouthEast)
)

// Coord is a coordinate of the triangular tiling.
type Coord struct {
	X, Y     int
	Pointing Pointing
}

// New returns the coordinate at (x, y) with the given pointing.
func New(x, y int, p Pointing) Coord {
	return Coord{X: x, Y: y, Pointing: p}
}

// Origin returns the upward triangle at (0, 0).
func Origin() Coord {
	return Coord{}
}

// FromArrayOffset converts 2-D array offsets to a coordinate. Each array
// row interleaves upward and downward triangles, so a grid x position
// spans two array columns.
func FromArrayOffset(x, y int) Coord {
	rem := grid.Mod(x, 2)
	p := Up
	if rem != 0 {
		p = Down
	}
	return Coord{X: (x - rem) / 2, Y: y, Pointing: p}
}

// IsUp reports whether the triangle points up.
func (c Coord) IsUp() bool {
	return c.Pointing == Up
}

// cube is the three-lane form of a triangular coordinate. Components sum
// to 2 for upward triangles and 1 for downward ones.
type cube struct {
	x, y, z int
}

func (c Coord) cube() cube {
	offset := 1
	if c.Pointing == Up {
		offset = 2
	}
	return cube{x: c.X, y: c.Y, z: offset - c.X - c.Y}
}

func fromCube(v cube) Coord {
	sum := v.x + v.y + v.z
	if sum != 1 && sum != 2 {
		panic(fmt.Sprintf("triangle: lane coordinate (%d,%d,%d) sums to %d", v.x, v.y, v.z, sum))
	}
	p := Down
	if sum == 2 {
		p = Up
	}
	return Coord{X: sum - v.y - v.z, Y: sum - v.x - v.z, Pointing: p}
}

// String formats the coordinate as "(x,y,∆)" or "(x,y,∇)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%v)", c.X, c.Y, c.Pointing)
}

// IsOrigin reports whether the coordinate is the upward triangle at the
// origin.
func (c Coord) IsOrigin() bool {
	return c == Coord{}
}

// Distance returns the number of face steps between the two coordinates,
// the L1 distance between their lane forms.
func (c Coord) Distance(other Coord) int {
	a, b := c.cube(), other.cube()
	return grid.Abs(b.x-a.x) + grid.Abs(b.y-a.y) + grid.Abs(b.z-a.z)
}

// AngleToDirection converts an angle in radians to the nearest allowed
// direction of the given type. The mapping depends only on the pointing.
func (c Coord) AngleToDirection(t grid.DirectionType, angle float64) direction.Direction {
	p := c.Pointing
	if t == grid.Vertex {
		p = p.Opposite()
	}
	dodecant := normalizeAngle(angle) / (math.Pi / 6)
	if p == Up {
		switch {
		case dodecant >= 11 || dodecant < 3:
			return direction.NorthEast
		case dodecant < 7:
			return direction.NorthWest
		default:
			return direction.South
		}
	}
	switch {
	case dodecant >= 9 || dodecant < 1:
		return direction.SouthEast
	case dodecant < 4:
		return direction.North
	default:
		return direction.SouthWest
	}
}

// DirectionAngle converts an allowed direction to its movement angle,
// reporting false for disallowed directions. Diagonal moves cross at
// multiples of π/6 rather than their compass angles.
func (c Coord) DirectionAngle(t grid.DirectionType, d direction.Direction) (float64, bool) {
	p := c.Pointing
	if t == grid.Vertex {
		p = p.Opposite()
	}
	if p == Up {
		switch d {
		case direction.NorthEast:
			return math.Pi / 6, true
		case direction.NorthWest:
			return 5 * math.Pi / 6, true
		case direction.South:
			return d.Angle(), true
		default:
			return 0, false
		}
	}
	switch d {
	case direction.SouthWest:
		return 7 * math.Pi / 6, true
	case direction.SouthEast:
		return 11 * math.Pi / 6, true
	case direction.North:
		return d.Angle(), true
	default:
		return 0, false
	}
}

// MoveInDirection returns the neighboring coordinate in the given
// direction, reporting false if the direction is not allowed from this
// coordinate. Every move inverts the pointing.
func (c Coord) MoveInDirection(t grid.DirectionType, d direction.Direction) (Coord, bool) {
	type key struct {
		t grid.DirectionType
		p Pointing
		d direction.Direction
	}
	var dx, dy int
	switch (key{t, c.Pointing, d}) {
	case key{grid.Face, Up, direction.NorthEast}:
		dx, dy = 0, 0
	case key{grid.Face, Up, direction.South}:
		dx, dy = 0, -1
	case key{grid.Face, Up, direction.NorthWest}:
		dx, dy = -1, 0
	case key{grid.Face, Down, direction.North}:
		dx, dy = 0, 1
	case key{grid.Face, Down, direction.SouthEast}:
		dx, dy = 1, 0
	case key{grid.Face, Down, direction.SouthWest}:
		dx, dy = 0, 0
	case key{grid.Vertex, Up, direction.North}:
		dx, dy = -1, 1
	case key{grid.Vertex, Up, direction.SouthEast}:
		dx, dy = 1, -1
	case key{grid.Vertex, Up, direction.SouthWest}:
		dx, dy = -1, -1
	case key{grid.Vertex, Down, direction.South}:
		dx, dy = 1, -1
	case key{grid.Vertex, Down, direction.NorthWest}:
		dx, dy = -1, 1
	case key{grid.Vertex, Down, direction.NorthEast}:
		dx, dy = 1, 1
	default:
		return Coord{}, false
	}
	return Coord{X: c.X + dx, Y: c.Y + dy, Pointing: c.Pointing.Opposite()}, true
}

// MoveOnAxis returns the neighboring coordinate along the given lane
// axis. Every move inverts the pointing.
func (c Coord) MoveOnAxis(axis Axis, positive bool) Coord {
	type key struct {
		p        Pointing
		a        Axis
		positive bool
	}
	var dx, dy int
	switch (key{c.Pointing, axis, positive}) {
	case key{Up, A, true}:
		dx, dy = 0, 0
	case key{Up, A, false}:
		dx, dy = 0, -1
	case key{Up, B, true}:
		dx, dy = 0, 0
	case key{Up, B, false}:
		dx, dy = -1, 0
	case key{Up, C, true}:
		dx, dy = -1, 0
	case key{Up, C, false}:
		dx, dy = 0, -1
	case key{Down, A, true}:
		dx, dy = 0, 1
	case key{Down, A, false}:
		dx, dy = 0, 0
	case key{Down, B, true}:
		dx, dy = 1, 0
	case key{Down, B, false}:
		dx, dy = 0, 0
	case key{Down, C, true}:
		dx, dy = 0, 1
	default: // Down, C, false
		dx, dy = 1, 0
	}
	return Coord{X: c.X + dx, Y: c.Y + dy, Pointing: c.Pointing.Opposite()}
}

// AllowedDirection reports whether d is valid under t from this
// coordinate.
func (c Coord) AllowedDirection(t grid.DirectionType, d direction.Direction) bool {
	return c.AllowedDirections(t).Contains(d)
}

// AllowedDirections returns the valid directions under t. Vertex moves
// use the face directions of the opposite pointing.
func (c Coord) AllowedDirections(t grid.DirectionType) direction.Set {
	p := c.Pointing
	if t == grid.Vertex {
		p = p.Opposite()
	}
	if p == Up {
		return allowedDirectionsUp
	}
	return allowedDirectionsDown
}

// DirectionIter returns the sequence of coordinates stepping repeatedly in
// d. Because each step inverts the pointing, the direction type alternates
// between face and vertex as the walk proceeds. The sequence is empty if d
// is disallowed from the start.
func (c Coord) DirectionIter(t grid.DirectionType, d direction.Direction, r grid.Range) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		cur, ct := c, t
		for i := 0; !r.Done(i); i++ {
			if !cur.AllowedDirection(ct, d) {
				return
			}
			if !yield(cur) {
				return
			}
			cur, _ = cur.MoveInDirection(ct, d)
			ct = ct.Opposite()
		}
	}
}

// PathIter returns the inclusive straight-line path from c to other using
// face steps. Triangular coordinates are not a linear space, so the path
// interpolates between the two cell centers in screen space and at each
// step takes the neighbor closest to the interpolated point.
func (c Coord) PathIter(other Coord) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		g := NewSizedGrid(1)
		steps := c.Distance(other)
		if steps == 0 {
			yield(c)
			return
		}
		start := g.GridToScreen(c)
		end := g.GridToScreen(other)
		cur := c
		for i := 0; i <= steps; i++ {
			if !yield(cur) {
				return
			}
			if i == steps {
				return
			}
			t := float64(i+1) / float64(steps)
			tx := grid.Lerp(start.X, end.X, t)
			ty := grid.Lerp(start.Y, end.Y, t)
			best, bestErr := cur, math.Inf(1)
			for d := range cur.AllowedDirections(grid.Face).All() {
				n, _ := cur.MoveInDirection(grid.Face, d)
				p := g.GridToScreen(n)
				if e := math.Hypot(tx-p.X, ty-p.Y); e < bestErr {
					best, bestErr = n, e
				}
			}
			cur = best
		}
	}
}

// AxisIter returns the sequence of coordinates stepping repeatedly along
// the lane axis.
func (c Coord) AxisIter(axis Axis, positive bool, r grid.Range) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		cur := c
		for i := 0; !r.Done(i); i++ {
			if !yield(cur) {
				return
			}
			cur = cur.MoveOnAxis(axis, positive)
		}
	}
}

// ArrayOffset converts the coordinate to 2-D array offsets. Each array row
// interleaves upward and downward triangles.
func (c Coord) ArrayOffset() (int, int) {
	xOffset := 0
	if c.Pointing == Down {
		xOffset = 1
	}
	return c.X*2 + xOffset, c.Y
}

// Color returns the coordinate's two-coloring: upward and downward
// triangles alternate.
func (c Coord) Color() grid.Color {
	x, y := c.ArrayOffset()
	return grid.MustColor(grid.Mod(x+2*y, 2) + 1)
}

// The rotation and reflection transforms permute lane components relative
// to the upward triangle at the origin, whose offset lane form is zero.

// RotateClockwise rotates the coordinate a third turn about the center of
// the origin cell.
func (c Coord) RotateClockwise() Coord {
	v := c.offsetCube()
	return fromOffsetCube(cube{x: v.z, y: v.x, z: v.y})
}

// RotateCounterclockwise is the inverse of RotateClockwise.
func (c Coord) RotateCounterclockwise() Coord {
	v := c.offsetCube()
	return fromOffsetCube(cube{x: v.y, y: v.z, z: v.x})
}

// Rotate applies steps third turns, clockwise for positive steps.
func (c Coord) Rotate(steps int) Coord {
	return grid.RotateSteps(c, steps)
}

// Reflect reflects the coordinate across the given lane axis.
func (c Coord) Reflect(axis Axis) Coord {
	v := c.offsetCube()
	switch axis {
	case A:
		return fromOffsetCube(cube{x: v.x, y: v.z, z: v.y})
	case B:
		return fromOffsetCube(cube{x: v.z, y: v.y, z: v.x})
	default:
		return fromOffsetCube(cube{x: v.y, y: v.x, z: v.z})
	}
}

func (c Coord) offsetCube() cube {
	v := c.cube()
	return cube{x: v.x, y: v.y, z: v.z - 2}
}

func fromOffsetCube(v cube) Coord {
	return fromCube(cube{x: v.x, y: v.y, z: v.z + 2})
}

// Ring returns the shape of coordinates at exactly the given distance-like
// radius from the origin: the boundary cells of the upward triangle of
// side 2·radius+1 centered on the origin cell.
func Ring(radius int) grid.Shape[Coord] {
	switch radius {
	case 0:
		return grid.NewShape(Origin())
	case 1:
		// The corner-walking ring would retrace the origin several
		// times; rings of successive radii should stay disjoint.
		return grid.NewShape(
			New(0, 0, Down),
			New(0, -1, Down),
			New(-1, 0, Down),
		)
	default:
		return grid.Ring(New(radius-1, radius-1, Down), B, A, Axes, 1)
	}
}

// RangeShape returns the filled shape of every coordinate within the given
// radius of the origin.
func RangeShape(radius int) grid.Shape[Coord] {
	s := grid.NewShape[Coord]()
	for r := 0; r <= radius; r++ {
		s = s.Union(Ring(r))
	}
	return s
}

// normalizeAngle maps an angle into [0, 2π).
func normalizeAngle(angle float64) float64 {
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func assertCoord[C grid.Coord[C, A], A comparable]() {}

var _ = assertCoord[Coord, Axis]
