package triangle

import (
	"math"
	"testing"

	"github.com/ctessum/geom"
	"gonum.org/v1/gonum/floats/scalar"

	"tessella/direction"
	"tessella/grid"
)

const tolerance = 1e-9

func TestSizedGridMeasures(t *testing.T) {
	g := NewSizedGrid(1.5)
	if got := g.Inradius(); got != 1.5 {
		t.Errorf("Inradius = %v, want 1.5", got)
	}
	if got := g.Circumradius(); !scalar.EqualWithinAbs(got, 3, tolerance) {
		t.Errorf("Circumradius = %v, want 3", got)
	}
	want := 9 / math.Sqrt(3)
	if got := g.EdgeLength(); !scalar.EqualWithinAbs(got, want, tolerance) {
		t.Errorf("EdgeLength = %v, want %v", got, want)
	}
	if g.Circumradius() < g.Inradius() {
		t.Error("circumradius must be at least the inradius")
	}
}

func TestGridToScreen(t *testing.T) {
	g := NewSizedGrid(1)
	tests := []struct {
		c    Coord
		want grid.Point
	}{
		{Origin(), grid.Point{X: 0, Y: 0}},
		{New(0, 0, Down), grid.Point{X: math.Sqrt(3), Y: 1}},
		{New(-1, 0, Down), grid.Point{X: -math.Sqrt(3), Y: 1}},
		{New(0, -1, Down), grid.Point{X: 0, Y: -2}},
		{New(1, 0, Up), grid.Point{X: 2 * math.Sqrt(3), Y: 0}},
	}
	for _, tt := range tests {
		got := g.GridToScreen(tt.c)
		if !scalar.EqualWithinAbs(got.X, tt.want.X, tolerance) ||
			!scalar.EqualWithinAbs(got.Y, tt.want.Y, tolerance) {
			t.Errorf("GridToScreen(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestScreenToGridRoundTrip(t *testing.T) {
	g := NewSizedGrid(2)
	coords := []Coord{
		Origin(), New(0, 0, Down), New(3, -1, Up), New(-2, 4, Down), New(1, 1, Up),
	}
	for _, c := range coords {
		center := g.GridToScreen(c)
		if got := g.ScreenToGrid(center); got != c {
			t.Errorf("ScreenToGrid(GridToScreen(%v)) = %v", c, got)
		}
		// Points within the inradius of the center stay in the cell.
		off := grid.Point{X: center.X + 1.2, Y: center.Y - 1.2}
		if got := g.ScreenToGrid(off); got != c {
			t.Errorf("ScreenToGrid(%v) = %v, want %v", off, got, c)
		}
	}
}

func TestVertices(t *testing.T) {
	g := NewSizedGrid(1)
	for _, c := range []Coord{Origin(), New(0, 0, Down), New(-2, 1, Up)} {
		vertices := g.Vertices(c)
		if len(vertices) != 3 {
			t.Fatalf("got %d vertices, want 3", len(vertices))
		}
		center := g.GridToScreen(c)
		for _, v := range vertices {
			d := math.Hypot(v.X-center.X, v.Y-center.Y)
			if !scalar.EqualWithinAbs(d, g.Circumradius(), tolerance) {
				t.Errorf("vertex %v at distance %v from center, want %v", v, d, g.Circumradius())
			}
		}
		for i, v := range vertices {
			next := vertices[(i+1)%len(vertices)]
			d := math.Hypot(next.X-v.X, next.Y-v.Y)
			if !scalar.EqualWithinAbs(d, g.EdgeLength(), tolerance) {
				t.Errorf("edge %v -> %v has length %v, want %v", v, next, d, g.EdgeLength())
			}
		}
		poly := geom.Polygon{vertices}
		if center.Within(poly) != geom.Inside {
			t.Errorf("center %v not inside cell polygon of %v", center, c)
		}
	}

	// The apex of an upward triangle is straight above the center.
	apex := g.Vertices(Origin())[0]
	if !scalar.EqualWithinAbs(apex.X, 0, tolerance) || !scalar.EqualWithinAbs(apex.Y, 2, tolerance) {
		t.Errorf("apex of the origin cell = %v, want (0,2)", apex)
	}
}

func TestEdges(t *testing.T) {
	g := NewSizedGrid(1)

	up := g.Edges(Origin())
	if len(up) != 3 {
		t.Fatalf("got %d edges, want 3", len(up))
	}
	for _, d := range []direction.Direction{direction.NorthWest, direction.South, direction.NorthEast} {
		if _, ok := up[d]; !ok {
			t.Errorf("upward cell missing %v edge", d)
		}
	}
	// The south edge is the cell bottom, at y = -inradius.
	south := up[direction.South]
	if !scalar.EqualWithinAbs(south.From.Y, -1, tolerance) ||
		!scalar.EqualWithinAbs(south.To.Y, -1, tolerance) {
		t.Errorf("south edge %v should lie at y=-1", south)
	}

	down := g.Edges(New(0, 0, Down))
	for _, d := range []direction.Direction{direction.North, direction.SouthWest, direction.SouthEast} {
		if _, ok := down[d]; !ok {
			t.Errorf("downward cell missing %v edge", d)
		}
	}
	// The shared boundary between the origin cell and its NorthEast
	// neighbor is the neighbor's SouthWest edge.
	ne := up[direction.NorthEast]
	sw := down[direction.SouthWest]
	if !(pointsClose(ne.From, sw.To) && pointsClose(ne.To, sw.From)) &&
		!(pointsClose(ne.From, sw.From) && pointsClose(ne.To, sw.To)) {
		t.Errorf("NorthEast edge %v and neighbor SouthWest edge %v are not the same segment", ne, sw)
	}
}

func pointsClose(a, b grid.Point) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tolerance) && scalar.EqualWithinAbs(a.Y, b.Y, tolerance)
}

func TestCoordIntersectsRect(t *testing.T) {
	g := NewSizedGrid(1)
	tests := []struct {
		name     string
		c        Coord
		min, max grid.Point
		want     bool
	}{
		{"containing", Origin(), grid.Point{X: -3, Y: -3}, grid.Point{X: 3, Y: 3}, true},
		{"inside", Origin(), grid.Point{X: -0.2, Y: -0.6}, grid.Point{X: 0.2, Y: -0.2}, true},
		{"separated", Origin(), grid.Point{X: 4, Y: 0}, grid.Point{X: 5, Y: 1}, false},
		// The origin cell bottom lies at y = -1; a rectangle below it
		// only touches.
		{"touching", Origin(), grid.Point{X: -1, Y: -2}, grid.Point{X: 1, Y: -1}, false},
		// A rectangle beside the slanted NE edge, overlapping the
		// bounding box but not the triangle.
		{"beside slant", Origin(), grid.Point{X: 1.2, Y: 1.2}, grid.Point{X: 1.7, Y: 1.9}, false},
	}
	for _, tt := range tests {
		if got := g.CoordIntersectsRect(tt.c, tt.min, tt.max); got != tt.want {
			t.Errorf("%s: CoordIntersectsRect(%v, %v, %v) = %v, want %v",
				tt.name, tt.c, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestScreenRectToGrid(t *testing.T) {
	g := NewSizedGrid(1)

	seq, ok := g.ScreenRectToGrid(grid.Point{X: -0.2, Y: -0.6}, grid.Point{X: 0.2, Y: -0.2})
	if !ok {
		t.Fatal("valid rect reported not ok")
	}
	if got := grid.CollectShape(seq); !got.Equal(grid.NewShape(Origin())) {
		t.Errorf("ScreenRectToGrid = %v, want just the origin", got)
	}

	if _, ok := g.ScreenRectToGrid(grid.Point{X: 0, Y: 1}, grid.Point{X: 1, Y: 0}); ok {
		t.Error("inverted rect should report not ok")
	}

	// Sound and complete against a brute-force sweep of nearby cells.
	min, max := grid.Point{X: -2.6, Y: -1.9}, grid.Point{X: 3.1, Y: 2.4}
	seq, ok = g.ScreenRectToGrid(min, max)
	if !ok {
		t.Fatal("valid rect reported not ok")
	}
	got := grid.CollectShape(seq)
	for c := range got.All() {
		if !g.CoordIntersectsRect(c, min, max) {
			t.Errorf("enumerated %v does not intersect rect", c)
		}
	}
	for c := range RangeShape(4).All() {
		if g.CoordIntersectsRect(c, min, max) && !got.Contains(c) {
			t.Errorf("missing %v, which intersects rect", c)
		}
	}
}
