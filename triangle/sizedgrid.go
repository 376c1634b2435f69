package triangle

import (
	"iter"
	"math"

	"tessella/direction"
	"tessella/grid"
)

// Lane basis vectors: the screen directions in which each lane index
// grows, at unit length.
var (
	basisA = grid.Point{X: math.Cos(11 * math.Pi / 6), Y: math.Sin(11 * math.Pi / 6)}
	basisB = grid.Point{X: 0, Y: 1}
	basisC = grid.Point{X: math.Cos(7 * math.Pi / 6), Y: math.Sin(7 * math.Pi / 6)}
)

// SizedGrid fixes the screen-space geometry of a triangular grid from a
// single cell inradius. Cell centers are linear combinations of the three
// lane basis vectors, offset so the upward triangle at the origin is
// centered on screen (0, 0).
type SizedGrid struct {
	inradius float64
}

// NewSizedGrid returns a SizedGrid whose cells have the given inradius.
func NewSizedGrid(inradius float64) *SizedGrid {
	return &SizedGrid{inradius: inradius}
}

// Inradius returns the radius of the largest circle inscribed in a cell.
func (g *SizedGrid) Inradius() float64 {
	return g.inradius
}

// Circumradius returns the radius of the smallest circle containing a
// cell. For an equilateral triangle it is twice the inradius.
func (g *SizedGrid) Circumradius() float64 {
	return 2 * g.inradius
}

// EdgeLength returns the length of one cell edge.
func (g *SizedGrid) EdgeLength() float64 {
	return 6 * g.inradius / math.Sqrt(3)
}

// Vertices returns the cell's corner points counter-clockwise, starting
// from the apex for upward triangles and the north-eastern corner for
// downward ones.
func (g *SizedGrid) Vertices(c Coord) []grid.Point {
	start := math.Pi / 6
	if c.Pointing == Up {
		start = math.Pi / 2
	}
	center := g.GridToScreen(c)
	r := g.Circumradius()
	vertices := make([]grid.Point, 3)
	for i := range vertices {
		angle := start + float64(i)*(2*math.Pi/3)
		vertices[i] = grid.Point{
			X: center.X + r*math.Cos(angle),
			Y: center.Y + r*math.Sin(angle),
		}
	}
	return vertices
}

// Edges maps each allowed face direction of the cell to its boundary
// segment.
func (g *SizedGrid) Edges(c Coord) map[direction.Direction]grid.Edge {
	edges := grid.PolygonEdges(g.Vertices(c))
	if c.Pointing == Up {
		return map[direction.Direction]grid.Edge{
			direction.NorthWest: edges[0],
			direction.South:     edges[1],
			direction.NorthEast: edges[2],
		}
	}
	return map[direction.Direction]grid.Edge{
		direction.North:     edges[0],
		direction.SouthWest: edges[1],
		direction.SouthEast: edges[2],
	}
}

// GridToScreen returns the screen-space center of the coordinate.
func (g *SizedGrid) GridToScreen(c Coord) grid.Point {
	v := c.offsetCube()
	r := g.Circumradius()
	return grid.Point{
		X: r * (basisA.X*float64(v.x) + basisB.X*float64(v.y) + basisC.X*float64(v.z)),
		Y: r * (basisA.Y*float64(v.x) + basisB.Y*float64(v.y) + basisC.Y*float64(v.z)),
	}
}

// ScreenToGrid returns the coordinate whose cell contains the point. The
// lane index along each axis is recovered by projecting onto that axis
// and dividing by the lane height.
func (g *SizedGrid) ScreenToGrid(p grid.Point) Coord {
	height := g.inradius + g.Circumradius()
	ox := p.X - g.EdgeLength()
	oy := p.Y - g.Circumradius()
	return fromCube(cube{
		x: int(math.Ceil((basisA.X*ox + basisA.Y*oy) / height)),
		y: int(math.Ceil((basisB.X*ox + basisB.Y*oy) / height)),
		z: int(math.Ceil((basisC.X*ox + basisC.Y*oy) / height)),
	})
}

// CoordIntersectsRect reports whether the cell polygon of c intersects the
// axis-aligned rectangle. Touching edges do not intersect.
func (g *SizedGrid) CoordIntersectsRect(c Coord, min, max grid.Point) bool {
	return grid.ConvexPolyIntersectsRect(g.Vertices(c), min, max)
}

// ScreenRectToGrid returns the coordinates whose cells intersect the
// axis-aligned rectangle. It reports false if min is not component-wise
// less than or equal to max.
//
// Each horizontal strip of a triangular grid alternates upward and
// downward cells, which is exactly a walk along the positive B axis. The
// enumeration widens the corner coordinates by one cell, walks each strip
// and keeps the cells that actually intersect the rectangle.
func (g *SizedGrid) ScreenRectToGrid(min, max grid.Point) (iter.Seq[Coord], bool) {
	if min.X > max.X || min.Y > max.Y {
		return grid.EmptySeq[Coord](), false
	}
	lo := g.ScreenToGrid(min).MoveOnAxis(B, false)
	hi := g.ScreenToGrid(max).MoveOnAxis(B, true)
	rowLength := (hi.X-lo.X)*2 + (hi.Y - lo.Y) + 2
	return func(yield func(Coord) bool) {
		for row := lo; row.Y <= hi.Y; {
			cur := row
			for i := 0; i < rowLength; i++ {
				if g.CoordIntersectsRect(cur, min, max) && !yield(cur) {
					return
				}
				cur = cur.MoveOnAxis(B, true)
			}
			if row.IsUp() {
				row, _ = row.MoveInDirection(grid.Vertex, direction.North)
			} else {
				row, _ = row.MoveInDirection(grid.Face, direction.North)
			}
		}
	}, true
}

func assertSizedGrid[G grid.SizedGrid[C], C comparable]() {}

var _ = assertSizedGrid[*SizedGrid, Coord]
