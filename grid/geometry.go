package grid

import (
	"fmt"
	"math"
)

// intervalEpsilon is the slack used when comparing projected intervals, so
// that polygons exactly touching a rectangle edge do not count as
// intersecting.
const intervalEpsilon = 1e-9

// PolygonEdges converts a polygon's vertices into its edges, including the
// closing edge from the last vertex back to the first. It panics if fewer
// than three vertices are given.
func PolygonEdges(vertices []Point) []Edge {
	if len(vertices) < 3 {
		panic(fmt.Sprintf("grid: polygon must have at least 3 vertices, got %d", len(vertices)))
	}
	edges := make([]Edge, len(vertices))
	for i, v := range vertices {
		next := vertices[(i+1)%len(vertices)]
		edges[i] = Edge{From: v, To: next}
	}
	return edges
}

// projectVertices projects vertices onto a candidate axis and returns the
// minimum and maximum of the projections.
func projectVertices(vertices []Point, axis Point) (float64, float64) {
	min := math.Inf(1)
	max := math.Inf(-1)
	for _, v := range vertices {
		dot := v.X*axis.X + v.Y*axis.Y
		min = math.Min(min, dot)
		max = math.Max(max, dot)
	}
	return min, max
}

// ConvexPolyIntersectsRect reports whether a convex polygon intersects an
// axis-aligned rectangle, using a specialization of the separating axis
// theorem: the candidate axes are the rectangle's two axes plus the normal
// of every polygon edge. Touching does not count as intersecting.
func ConvexPolyIntersectsRect(polygon []Point, min, max Point) bool {
	if len(polygon) < 3 {
		panic(fmt.Sprintf("grid: polygon must have at least 3 vertices, got %d", len(polygon)))
	}

	rect := []Point{min, {X: max.X, Y: min.Y}, max, {X: min.X, Y: max.Y}}

	// separated reports whether axis separates the two vertex sets. The
	// interval overlap check is strict so that touching is not overlap.
	separated := func(axis Point) bool {
		pmin, pmax := projectVertices(polygon, axis)
		rmin, rmax := projectVertices(rect, axis)
		return pmax <= rmin+intervalEpsilon || rmax <= pmin+intervalEpsilon
	}

	for _, axis := range []Point{{X: 1}, {Y: 1}} {
		if separated(axis) {
			return false
		}
	}

	for _, e := range PolygonEdges(polygon) {
		dx := e.To.X - e.From.X
		dy := e.To.Y - e.From.Y
		if dx*dx+dy*dy <= intervalEpsilon {
			continue
		}
		if separated(Point{X: -dy, Y: dx}) {
			return false
		}
	}

	return true
}
