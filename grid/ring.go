package grid

// Ring builds the set of coordinates on the boundary of a regular region
// by alternately rotating to find the next corner and walking the axis
// between corners. It generalizes over any coordinate supporting rotation
// and axis movement, so each topology's ring and filled-range helpers
// share it.
//
// The walk starts at a corner coordinate and cycles through the
// topology's axes beginning with startAxis; each time the cycle is about
// to revisit flipAxis, the walking sign flips. rotationStep is the Rotate
// argument producing the next corner from the current one.
func Ring[C Coord[C, A], A comparable](start C, startAxis, flipAxis A, axes []A, rotationStep int) Shape[C] {
	coords := make(map[C]struct{})

	idx := 0
	for axes[idx] != startAxis {
		idx++
	}

	current := start
	sign := false
	for {
		corner := current.Rotate(rotationStep)
		axis := axes[idx%len(axes)]
		idx++

		next := current
		for {
			coords[next] = struct{}{}
			stepped := next.MoveOnAxis(axis, sign)
			if stepped == corner {
				break
			}
			next = stepped
		}

		current = corner
		if current == start {
			break
		}
		if axes[idx%len(axes)] == flipAxis {
			sign = !sign
		}
	}

	return Shape[C]{set: coords}
}
