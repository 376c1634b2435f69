package square

import (
	"fmt"
	"iter"
	"math"

	"gonum.org/v1/gonum/mat"

	"tessella/direction"
	"tessella/grid"
)

// SizedGrid fixes the screen-space geometry of a square grid from a single
// cell inradius. Cell centers sit at basis·(x, y) where the basis scales
// each axis by the cell width.
type SizedGrid struct {
	inradius float64
	basis    *mat.Dense
	inverse  *mat.Dense
}

// NewSizedGrid returns a SizedGrid whose cells have the given inradius.
func NewSizedGrid(inradius float64) *SizedGrid {
	w := 2 * inradius
	basis := mat.NewDense(2, 2, []float64{
		w, 0,
		0, w,
	})
	inverse := mat.NewDense(2, 2, nil)
	if err := inverse.Inverse(basis); err != nil {
		panic(fmt.Sprintf("square: non-invertible basis for inradius %v: %v", inradius, err))
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
	return g.inradius * math.Sqrt2
}

// EdgeLength returns the length of one cell edge.
func (g *SizedGrid) EdgeLength() float64 {
	return 2 * g.inradius
}

// Vertices returns the cell's corner points counter-clockwise from the
// north-east corner.
func (g *SizedGrid) Vertices(c Coord) []grid.Point {
	center := g.GridToScreen(c)
	r := g.Circumradius()
	vertices := make([]grid.Point, 4)
	for i := range vertices {
		angle := math.Pi/4 + float64(i)*math.Pi/2
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
		direction.North: edges[0],
		direction.West:  edges[1],
		direction.South: edges[2],
		direction.East:  edges[3],
	}
}

// GridToScreen returns the screen-space center of the coordinate.
func (g *SizedGrid) GridToScreen(c Coord) grid.Point {
	var v mat.VecDense
	v.MulVec(g.basis, mat.NewVecDense(2, []float64{float64(c.X), float64(c.Y)}))
	return grid.Point{X: v.AtVec(0), Y: v.AtVec(1)}
}

// ScreenToGrid returns the coordinate whose cell contains the point.
func (g *SizedGrid) ScreenToGrid(p grid.Point) Coord {
	var v mat.VecDense
	v.MulVec(g.inverse, mat.NewVecDense(2, []float64{p.X, p.Y}))
	return Coord{
		X: int(math.Round(v.AtVec(0))),
		Y: int(math.Round(v.AtVec(1))),
	}
}

// CoordIntersectsRect reports whether the cell polygon of c intersects the
// axis-aligned rectangle. Touching edges do not intersect.
func (g *SizedGrid) CoordIntersectsRect(c Coord, min, max grid.Point) bool {
	return grid.ConvexPolyIntersectsRect(g.Vertices(c), min, max)
}

// ScreenRectToGrid returns the coordinates whose cells intersect the
// axis-aligned rectangle, sweeping row by row. It reports false if min is
// not component-wise less than or equal to max.
func (g *SizedGrid) ScreenRectToGrid(min, max grid.Point) (iter.Seq[Coord], bool) {
	if min.X > max.X || min.Y > max.Y {
		return grid.EmptySeq[Coord](), false
	}
	lo := g.ScreenToGrid(min)
	hi := g.ScreenToGrid(max)
	return func(yield func(Coord) bool) {
		for y := lo.Y; y <= hi.Y; y++ {
			for x := lo.X; x <= hi.X; x++ {
				if !yield(New(x, y)) {
					return
				}
			}
		}
	}, true
}

func assertSizedGrid[G grid.SizedGrid[C], C comparable]() {}

var _ = assertSizedGrid[*SizedGrid, Coord]
