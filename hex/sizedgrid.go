package hex

import (
	"fmt"
	"iter"
	"math"

	"gonum.org/v1/gonum/mat"

	"tessella/direction"
	"tessella/grid"
)

// SizedGrid fixes the screen-space geometry of a flat-topped hexagonal
// grid from a single cell inradius. Cell centers sit at basis·(q, r),
// where the basis skews the r axis so that rows interleave.
type SizedGrid struct {
	inradius float64
	basis    *mat.Dense
	inverse  *mat.Dense
}

// NewSizedGrid returns a SizedGrid whose cells have the given inradius.
func NewSizedGrid(inradius float64) *SizedGrid {
	// The columns are the screen offsets of one step on q and one step on
	// r, in units of the circumradius.
	circum := 2 * inradius / math.Sqrt(3)
	s := circum * math.Sqrt(3)
	basis := mat.NewDense(2, 2, []float64{
		s * math.Cos(math.Pi/6), s * math.Cos(math.Pi/2),
		s * math.Sin(math.Pi/6), s * math.Sin(math.Pi/2),
	})
	inverse := mat.NewDense(2, 2, nil)
	if err := inverse.Inverse(basis); err != nil {
		panic(fmt.Sprintf("hex: non-invertible basis for inradius %v: %v", inradius, err))
	}
	return &SizedGrid{inradius: inradius, basis: basis, inverse: inverse}
}

// Inradius returns the radius of the largest circle inscribed in a cell.
func (g *SizedGrid) Inradius() float64 {
	return g.inradius
}

// Circumradius returns the radius of the smallest circle containing a
// cell, the distance from the center to a corner.
func (g *SizedGrid) Circumradius() float64 {
	return 2 * g.inradius / math.Sqrt(3)
}

// EdgeLength returns the length of one cell edge. For a regular hexagon it
// equals the circumradius.
func (g *SizedGrid) EdgeLength() float64 {
	return g.Circumradius()
}

// Vertices returns the cell's corner points counter-clockwise from the
// eastern corner.
func (g *SizedGrid) Vertices(c Coord) []grid.Point {
	center := g.GridToScreen(c)
	r := g.Circumradius()
	vertices := make([]grid.Point, 6)
	for i := range vertices {
		angle := float64(i) * math.Pi / 3
		vertices[i] = grid.Point{
			X: center.X + r*math.Cos(angle),
			Y: center.Y + r*math.Sin(angle),
		}
	}
	return vertices
}

// Edges maps each face direction to the boundary segment it crosses.
func (g *SizedGrid) Edges(c Coord) map[direction.Direction]grid.Edge {
	edges := grid.PolygonEdges(g.Vertices(c))
	return map[direction.Direction]grid.Edge{
		direction.NorthEast: edges[0],
		direction.North:     edges[1],
		direction.NorthWest: edges[2],
		direction.SouthWest: edges[3],
		direction.South:     edges[4],
		direction.SouthEast: edges[5],
	}
}

// GridToScreen returns the screen-space center of the coordinate.
func (g *SizedGrid) GridToScreen(c Coord) grid.Point {
	var v mat.VecDense
	v.MulVec(g.basis, mat.NewVecDense(2, []float64{float64(c.Q), float64(c.R)}))
	return grid.Point{X: v.AtVec(0), Y: v.AtVec(1)}
}

// ScreenToGrid returns the coordinate whose cell contains the point,
// rounding the fractional axial position in cube space.
func (g *SizedGrid) ScreenToGrid(p grid.Point) Coord {
	var v mat.VecDense
	v.MulVec(g.inverse, mat.NewVecDense(2, []float64{p.X, p.Y}))
	q, r := v.AtVec(0), v.AtVec(1)
	return FromCube(hexRound(q, -q-r, r))
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
// Rows of a flat-topped hexagonal grid zigzag in screen space, so the
// enumeration expands the corner coordinates by one cell, walks each row
// alternating SouthEast and NorthEast steps, and keeps the cells that
// actually intersect the rectangle.
func (g *SizedGrid) ScreenRectToGrid(min, max grid.Point) (iter.Seq[Coord], bool) {
	if min.X > max.X || min.Y > max.Y {
		return grid.EmptySeq[Coord](), false
	}
	lo, _ := g.ScreenToGrid(min).MoveInDirection(grid.Face, direction.SouthWest)
	hi, _ := g.ScreenToGrid(max).MoveInDirection(grid.Face, direction.NorthEast)
	rowLength := hi.Q - lo.Q + 1
	endR := hi.R + (hi.Q-lo.Q)/2 + 1
	return func(yield func(Coord) bool) {
		for row := lo; row.R <= endR; row = row.Add(Coord{0, 1}) {
			cur := row
			for i := 0; i < rowLength; i++ {
				if g.CoordIntersectsRect(cur, min, max) && !yield(cur) {
					return
				}
				if i%2 == 0 {
					cur = cur.Add(Coord{1, -1})
				} else {
					cur = cur.Add(Coord{1, 0})
				}
			}
		}
	}, true
}

func assertSizedGrid[G grid.SizedGrid[C], C comparable]() {}

var _ = assertSizedGrid[*SizedGrid, Coord]
