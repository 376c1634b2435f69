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

// SizedGrid dispatches screen-space geometry to the sized grid of one
// concrete tessellation. Operations taking a coordinate panic when the
// coordinate's kind differs from the grid's.
type SizedGrid struct {
	kind Kind
	sq   *square.SizedGrid
	hx   *hex.SizedGrid
	tr   *triangle.SizedGrid
}

// NewSizedGrid returns a sized grid of the given kind whose cells have the
// given inradius.
func NewSizedGrid(kind Kind, inradius float64) *SizedGrid {
	switch kind {
	case Square:
		return &SizedGrid{kind: Square, sq: square.NewSizedGrid(inradius)}
	case Hex:
		return &SizedGrid{kind: Hex, hx: hex.NewSizedGrid(inradius)}
	case Triangle:
		return &SizedGrid{kind: Triangle, tr: triangle.NewSizedGrid(inradius)}
	default:
		panic(fmt.Sprintf("dynamic: invalid kind %d", uint8(kind)))
	}
}

// Kind returns the tessellation the grid belongs to.
func (g *SizedGrid) Kind() Kind {
	return g.kind
}

// Inradius is the radius of the largest circle inscribed in a cell.
func (g *SizedGrid) Inradius() float64 {
	switch g.kind {
	case Square:
		return g.sq.Inradius()
	case Hex:
		return g.hx.Inradius()
	default:
		return g.tr.Inradius()
	}
}

// Circumradius is the radius of the smallest circle containing a cell.
func (g *SizedGrid) Circumradius() float64 {
	switch g.kind {
	case Square:
		return g.sq.Circumradius()
	case Hex:
		return g.hx.Circumradius()
	default:
		return g.tr.Circumradius()
	}
}

// EdgeLength is the length of one cell edge.
func (g *SizedGrid) EdgeLength() float64 {
	switch g.kind {
	case Square:
		return g.sq.EdgeLength()
	case Hex:
		return g.hx.EdgeLength()
	default:
		return g.tr.EdgeLength()
	}
}

// Vertices returns the corner points of the coordinate's cell.
func (g *SizedGrid) Vertices(c Coord) []grid.Point {
	g.check("compute vertices of", c)
	switch g.kind {
	case Square:
		return g.sq.Vertices(c.sq)
	case Hex:
		return g.hx.Vertices(c.hx)
	default:
		return g.tr.Vertices(c.tr)
	}
}

// Edges maps each allowed face direction of the coordinate's cell to its
// boundary segment.
func (g *SizedGrid) Edges(c Coord) map[direction.Direction]grid.Edge {
	g.check("compute edges of", c)
	switch g.kind {
	case Square:
		return g.sq.Edges(c.sq)
	case Hex:
		return g.hx.Edges(c.hx)
	default:
		return g.tr.Edges(c.tr)
	}
}

// GridToScreen returns the screen-space center of the coordinate.
func (g *SizedGrid) GridToScreen(c Coord) grid.Point {
	g.check("project", c)
	switch g.kind {
	case Square:
		return g.sq.GridToScreen(c.sq)
	case Hex:
		return g.hx.GridToScreen(c.hx)
	default:
		return g.tr.GridToScreen(c.tr)
	}
}

// ScreenToGrid returns the coordinate whose cell contains the point.
func (g *SizedGrid) ScreenToGrid(p grid.Point) Coord {
	switch g.kind {
	case Square:
		return FromSquare(g.sq.ScreenToGrid(p))
	case Hex:
		return FromHex(g.hx.ScreenToGrid(p))
	default:
		return FromTriangle(g.tr.ScreenToGrid(p))
	}
}

// CoordIntersectsRect reports whether the coordinate's cell intersects the
// axis-aligned rectangle. Touching edges do not intersect.
func (g *SizedGrid) CoordIntersectsRect(c Coord, min, max grid.Point) bool {
	g.check("intersect", c)
	switch g.kind {
	case Square:
		return g.sq.CoordIntersectsRect(c.sq, min, max)
	case Hex:
		return g.hx.CoordIntersectsRect(c.hx, min, max)
	default:
		return g.tr.CoordIntersectsRect(c.tr, min, max)
	}
}

// ScreenRectToGrid returns a lazy sequence of every coordinate whose cell
// intersects the axis-aligned rectangle, reporting false if min is not
// component-wise less than or equal to max.
func (g *SizedGrid) ScreenRectToGrid(min, max grid.Point) (iter.Seq[Coord], bool) {
	switch g.kind {
	case Square:
		seq, ok := g.sq.ScreenRectToGrid(min, max)
		return wrapSeq(seq, FromSquare), ok
	case Hex:
		seq, ok := g.hx.ScreenRectToGrid(min, max)
		return wrapSeq(seq, FromHex), ok
	default:
		seq, ok := g.tr.ScreenRectToGrid(min, max)
		return wrapSeq(seq, FromTriangle), ok
	}
}

func (g *SizedGrid) check(op string, c Coord) {
	if g.kind != c.kind {
		panic(fmt.Sprintf("dynamic: cannot %s a %v coordinate on a %v grid", op, c.kind, g.kind))
	}
}

func assertSizedGrid[G grid.SizedGrid[C], C comparable]() {}

var _ = assertSizedGrid[*SizedGrid, Coord]
