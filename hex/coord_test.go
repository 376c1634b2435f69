package hex

import (
	"math"
	"slices"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"tessella/direction"
	"tessella/grid"
)

func collect(seq func(func(Coord) bool)) []Coord {
	var out []Coord
	seq(func(c Coord) bool {
		out = append(out, c)
		return true
	})
	return out
}

func TestMoveInDirection(t *testing.T) {
	tests := []struct {
		dirType grid.DirectionType
		dir     direction.Direction
		want    Coord
		ok      bool
	}{
		{grid.Face, direction.NorthEast, New(1, 0), true},
		{grid.Face, direction.North, New(0, 1), true},
		{grid.Face, direction.NorthWest, New(-1, 1), true},
		{grid.Face, direction.SouthWest, New(-1, 0), true},
		{grid.Face, direction.South, New(0, -1), true},
		{grid.Face, direction.SouthEast, New(1, -1), true},
		{grid.Face, direction.East, Coord{}, false},
		{grid.Face, direction.West, Coord{}, false},
		{grid.Vertex, direction.East, New(2, -1), true},
		{grid.Vertex, direction.NorthEast, New(1, 1), true},
		{grid.Vertex, direction.NorthWest, New(-1, 2), true},
		{grid.Vertex, direction.West, New(-2, 1), true},
		{grid.Vertex, direction.SouthWest, New(-1, -1), true},
		{grid.Vertex, direction.SouthEast, New(1, -2), true},
		{grid.Vertex, direction.North, Coord{}, false},
		{grid.Vertex, direction.South, Coord{}, false},
	}
	for _, tt := range tests {
		got, ok := Origin().MoveInDirection(tt.dirType, tt.dir)
		if ok != tt.ok || got != tt.want {
			t.Errorf("MoveInDirection(%v, %v) = %v, %v; want %v, %v",
				tt.dirType, tt.dir, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMoveOppositeRoundTrip(t *testing.T) {
	start := New(-2, 4)
	for _, dirType := range []grid.DirectionType{grid.Face, grid.Vertex} {
		for d := range start.AllowedDirections(dirType).All() {
			moved, ok := start.MoveInDirection(dirType, d)
			if !ok {
				t.Fatalf("MoveInDirection(%v, %v) not allowed", dirType, d)
			}
			back, ok := moved.MoveInDirection(dirType, d.Opposite())
			if !ok || back != start {
				t.Errorf("moving %v then %v: got %v, %v; want %v", d, d.Opposite(), back, ok, start)
			}
		}
	}
}

func TestAllowedDirections(t *testing.T) {
	c := New(1, -3)
	face := c.AllowedDirections(grid.Face)
	vertex := c.AllowedDirections(grid.Vertex)
	if face.Len() != 6 || vertex.Len() != 6 {
		t.Fatalf("direction set sizes = %d, %d; want 6, 6", face.Len(), vertex.Len())
	}
	if face.Contains(direction.East) || face.Contains(direction.West) {
		t.Error("a flat-topped hexagon has no east or west face")
	}
	if vertex.Contains(direction.North) || vertex.Contains(direction.South) {
		t.Error("a flat-topped hexagon has no north or south vertex")
	}
}

func TestCubeRoundTrip(t *testing.T) {
	for _, c := range []Coord{Origin(), New(3, -1), New(-2, 5)} {
		cube := c.Cube()
		if cube.X+cube.Y+cube.Z != 0 {
			t.Errorf("Cube(%v) = %v does not sum to zero", c, cube)
		}
		if got := FromCube(cube); got != c {
			t.Errorf("FromCube(Cube(%v)) = %v", c, got)
		}
	}
}

func TestFromCubePanicsOnBadSum(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FromCube accepted a cube coordinate not summing to zero")
		}
	}()
	FromCube(Cube{X: 1, Y: 1, Z: 1})
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b Coord
		want int
	}{
		{Origin(), Origin(), 0},
		{Origin(), New(1, -1), 1},
		{Origin(), New(2, -1), 2},
		{Origin(), New(0, 3), 3},
		{Origin(), New(-2, -1), 3},
		{New(1, 1), New(-1, 2), 2},
	}
	for _, tt := range tests {
		if got := tt.a.Distance(tt.b); got != tt.want {
			t.Errorf("Distance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := tt.b.Distance(tt.a); got != tt.want {
			t.Errorf("Distance(%v, %v) = %d, want %d", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestModuleAlgebra(t *testing.T) {
	a := New(2, -1)
	b := New(-3, 2)
	if got := a.Add(b); got != New(-1, 1) {
		t.Errorf("Add = %v, want (-1,1)", got)
	}
	if got := a.Sub(b); got != New(5, -3) {
		t.Errorf("Sub = %v, want (5,-3)", got)
	}
	if got := a.Add(a.Neg()); !got.IsOrigin() {
		t.Errorf("Add(Neg) = %v, want origin", got)
	}
	if got := a.Scale(-2); got != New(-4, 2) {
		t.Errorf("Scale(-2) = %v, want (-4,2)", got)
	}
	if got := Origin().Add(a); got != a {
		t.Errorf("origin is not an additive identity: %v", got)
	}
}

func TestRotation(t *testing.T) {
	c := New(1, 0)
	if got := c.RotateClockwise(); got != New(0, 1) {
		t.Errorf("RotateClockwise = %v, want (0,1)", got)
	}
	for _, c := range []Coord{New(1, 0), New(2, -3), New(-1, 4)} {
		if got := c.RotateClockwise().RotateCounterclockwise(); got != c {
			t.Errorf("rotation inverse: got %v, want %v", got, c)
		}
		if got := c.Rotate(6); got != c {
			t.Errorf("Rotate(6) = %v, want identity", got)
		}
		if got := c.Rotate(-2); got != c.Rotate(4) {
			t.Errorf("Rotate(-2) = %v, want Rotate(4) = %v", got, c.Rotate(4))
		}
		if got, want := c.RotateClockwise().Distance(Origin()), c.Distance(Origin()); got != want {
			t.Errorf("rotation changed distance from origin: %d, want %d", got, want)
		}
	}
}

func TestReflect(t *testing.T) {
	// Reflecting across Q swaps the other two cube components.
	if got := New(2, 0).Reflect(Q); got != New(2, -2) {
		t.Errorf("Reflect(Q) = %v, want (2,-2)", got)
	}
	c := New(3, -1)
	for _, axis := range Axes {
		if got := c.Reflect(axis).Reflect(axis); got != c {
			t.Errorf("Reflect(%v) twice = %v, want %v", axis, got, c)
		}
		if got, want := c.Reflect(axis).Distance(Origin()), c.Distance(Origin()); got != want {
			t.Errorf("Reflect(%v) changed distance from origin: %d, want %d", axis, got, want)
		}
	}
}

func TestColor(t *testing.T) {
	for _, c := range []Coord{Origin(), New(2, -1), New(-3, 1), New(4, 4), New(-1, -5)} {
		if c.Color() > grid.ColorC {
			t.Errorf("hex coloring of %v used %v; only three colors are needed", c, c.Color())
		}
		for d := range c.AllowedDirections(grid.Face).All() {
			n, _ := c.MoveInDirection(grid.Face, d)
			if n.Color() == c.Color() {
				t.Errorf("face neighbors %v and %v share color %v", c, n, c.Color())
			}
		}
	}
}

func TestArrayOffsetRoundTrip(t *testing.T) {
	for q := -4; q <= 4; q++ {
		for r := -4; r <= 4; r++ {
			c := New(q, r)
			x, y := c.ArrayOffset()
			if got := FromArrayOffset(x, y); got != c {
				t.Errorf("FromArrayOffset(ArrayOffset(%v)) = %v", c, got)
			}
		}
	}
}

func TestAngleToDirection(t *testing.T) {
	tests := []struct {
		dirType grid.DirectionType
		angle   float64
		want    direction.Direction
	}{
		{grid.Face, math.Pi / 6, direction.NorthEast},
		{grid.Face, math.Pi / 2, direction.North},
		{grid.Face, 5 * math.Pi / 6, direction.NorthWest},
		{grid.Face, 7 * math.Pi / 6, direction.SouthWest},
		{grid.Face, 3 * math.Pi / 2, direction.South},
		{grid.Face, 11 * math.Pi / 6, direction.SouthEast},
		{grid.Face, -math.Pi / 2, direction.South},
		{grid.Vertex, 0, direction.East},
		{grid.Vertex, math.Pi / 3, direction.NorthEast},
		{grid.Vertex, 2 * math.Pi / 3, direction.NorthWest},
		{grid.Vertex, math.Pi, direction.West},
		{grid.Vertex, 4 * math.Pi / 3, direction.SouthWest},
		{grid.Vertex, 5 * math.Pi / 3, direction.SouthEast},
		{grid.Vertex, 2*math.Pi - 0.01, direction.East},
	}
	for _, tt := range tests {
		if got := Origin().AngleToDirection(tt.dirType, tt.angle); got != tt.want {
			t.Errorf("AngleToDirection(%v, %v) = %v, want %v", tt.dirType, tt.angle, got, tt.want)
		}
	}
}

func TestDirectionAngle(t *testing.T) {
	tests := []struct {
		dirType grid.DirectionType
		dir     direction.Direction
		want    float64
		ok      bool
	}{
		{grid.Face, direction.NorthEast, math.Pi / 6, true},
		{grid.Face, direction.North, math.Pi / 2, true},
		{grid.Face, direction.SouthEast, 11 * math.Pi / 6, true},
		{grid.Face, direction.East, 0, false},
		{grid.Vertex, direction.NorthEast, math.Pi / 3, true},
		{grid.Vertex, direction.East, 0, true},
		{grid.Vertex, direction.North, 0, false},
	}
	for _, tt := range tests {
		angle, ok := Origin().DirectionAngle(tt.dirType, tt.dir)
		if ok != tt.ok || (ok && !scalar.EqualWithinAbs(angle, tt.want, 1e-12)) {
			t.Errorf("DirectionAngle(%v, %v) = %v, %v; want %v, %v",
				tt.dirType, tt.dir, angle, ok, tt.want, tt.ok)
		}
	}
}

func TestDirectionAngleMatchesScreenMovement(t *testing.T) {
	// The reported movement angle is the actual screen-space bearing
	// between adjacent cell centers.
	g := NewSizedGrid(1)
	for _, dirType := range []grid.DirectionType{grid.Face, grid.Vertex} {
		for d := range Origin().AllowedDirections(dirType).All() {
			angle, ok := Origin().DirectionAngle(dirType, d)
			if !ok {
				t.Fatalf("DirectionAngle(%v, %v) not allowed", dirType, d)
			}
			n, _ := Origin().MoveInDirection(dirType, d)
			p := g.GridToScreen(n)
			bearing := math.Mod(math.Atan2(p.Y, p.X)+2*math.Pi, 2*math.Pi)
			if !scalar.EqualWithinAbs(bearing, math.Mod(angle, 2*math.Pi), 1e-6) {
				t.Errorf("%v %v: movement bearing %v, reported angle %v", dirType, d, bearing, angle)
			}
		}
	}
}

func TestDirectionIter(t *testing.T) {
	got := collect(Origin().DirectionIter(grid.Face, direction.NorthEast, grid.Count(3)))
	want := []Coord{New(0, 0), New(1, 0), New(2, 0)}
	if !slices.Equal(got, want) {
		t.Errorf("DirectionIter(NorthEast, 3) = %v, want %v", got, want)
	}
	if got := collect(Origin().DirectionIter(grid.Face, direction.East, grid.Count(3))); len(got) != 0 {
		t.Errorf("disallowed direction yielded %v", got)
	}
}

func TestAxisIter(t *testing.T) {
	tests := []struct {
		axis     Axis
		positive bool
		want     Coord
	}{
		{Q, true, New(0, 1)},
		{Q, false, New(0, -1)},
		{R, true, New(1, 0)},
		{R, false, New(-1, 0)},
		{S, true, New(1, -1)},
		{S, false, New(-1, 1)},
	}
	for _, tt := range tests {
		got := collect(Origin().AxisIter(tt.axis, tt.positive, grid.Count(2)))
		want := []Coord{Origin(), tt.want}
		if !slices.Equal(got, want) {
			t.Errorf("AxisIter(%v, %v) = %v, want %v", tt.axis, tt.positive, got, want)
		}
		if step := Origin().MoveOnAxis(tt.axis, tt.positive); step != tt.want {
			t.Errorf("MoveOnAxis(%v, %v) = %v, want %v", tt.axis, tt.positive, step, tt.want)
		}
	}
}

func TestPathIter(t *testing.T) {
	if got := collect(Origin().PathIter(Origin())); !slices.Equal(got, []Coord{Origin()}) {
		t.Errorf("PathIter to self = %v, want just the origin", got)
	}
	got := collect(Origin().PathIter(New(3, 0)))
	want := []Coord{New(0, 0), New(1, 0), New(2, 0), New(3, 0)}
	if !slices.Equal(got, want) {
		t.Errorf("PathIter along an axis = %v, want %v", got, want)
	}
}

func TestPathLengthMatchesDistance(t *testing.T) {
	pairs := [][2]Coord{
		{New(-2, 1), New(3, -1)},
		{Origin(), New(-3, -2)},
		{New(1, 1), New(1, 1)},
	}
	for _, p := range pairs {
		path := collect(p[0].PathIter(p[1]))
		if len(path) != p[0].Distance(p[1])+1 {
			t.Errorf("path %v -> %v has %d coords, want %d", p[0], p[1], len(path), p[0].Distance(p[1])+1)
		}
		if path[0] != p[0] || path[len(path)-1] != p[1] {
			t.Errorf("path %v -> %v has endpoints %v, %v", p[0], p[1], path[0], path[len(path)-1])
		}
		for i := 1; i < len(path); i++ {
			if path[i-1].Distance(path[i]) != 1 {
				t.Errorf("path step %v -> %v is not a face move", path[i-1], path[i])
			}
		}
	}
}

func TestRing(t *testing.T) {
	if got := Ring(0); got.Len() != 1 || !got.Contains(Origin()) {
		t.Errorf("Ring(0) = %v, want just the origin", got)
	}
	for radius := 1; radius <= 3; radius++ {
		ring := Ring(radius)
		if got, want := ring.Len(), 6*radius; got != want {
			t.Errorf("Ring(%d) has %d coords, want %d", radius, got, want)
		}
		for c := range ring.All() {
			if d := c.Distance(Origin()); d != radius {
				t.Errorf("Ring(%d) contains %v at distance %d", radius, c, d)
			}
		}
	}
}

func TestRangeShape(t *testing.T) {
	if got := RangeShape(0); got.Len() != 1 || !got.Contains(Origin()) {
		t.Errorf("RangeShape(0) = %v, want just the origin", got)
	}
	for radius := 1; radius <= 3; radius++ {
		r := RangeShape(radius)
		// Centered hexagonal numbers: 1 + 6·(1 + 2 + ... + radius).
		want := 1 + 3*radius*(radius+1)
		if got := r.Len(); got != want {
			t.Errorf("RangeShape(%d) has %d coords, want %d", radius, got, want)
		}
		if !Ring(radius).IsSubshape(r) {
			t.Errorf("Ring(%d) should be contained in RangeShape(%d)", radius, radius)
		}
		for c := range r.All() {
			if c.Distance(Origin()) > radius {
				t.Errorf("RangeShape(%d) contains %v beyond the radius", radius, c)
			}
		}
		if !r.IsDisjoint(Ring(radius + 1)) {
			t.Errorf("RangeShape(%d) and Ring(%d) should be disjoint", radius, radius+1)
		}
	}
}
