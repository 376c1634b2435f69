// Package direction provides an eight-way compass direction and a compact
// set type for groups of directions. Directions are ordered
// counter-clockwise starting at East so that multiplying a direction's
// value by π/4 yields its angle in radians.
package direction

import (
	"fmt"
	"math"
)

// Direction is one of the eight compass directions: the four cardinal
// directions plus the four ordinal (intercardinal) ones.
type Direction uint8

const (
	East Direction = iota
	NorthEast
	North
	NorthWest
	West
	SouthWest
	South
	SouthEast
)

// Count is the number of distinct directions.
const Count = 8

// FromIndex converts a raw index to a Direction. It panics if the index is
// outside [0, 8); an out-of-range index is a caller bug, not input to be
// validated.
func FromIndex(i int) Direction {
	if i < 0 || i >= Count {
		panic(fmt.Sprintf("direction: invalid direction index %d", i))
	}
	return Direction(i)
}

// String returns the long name of the direction, e.g. "NorthEast".
func (d Direction) String() string {
	switch d {
	case East:
		return "East"
	case NorthEast:
		return "NorthEast"
	case North:
		return "North"
	case NorthWest:
		return "NorthWest"
	case West:
		return "West"
	case SouthWest:
		return "SouthWest"
	case South:
		return "South"
	case SouthEast:
		return "SouthEast"
	default:
		panic(fmt.Sprintf("direction: invalid direction value %d", uint8(d)))
	}
}

// ShortString returns the abbreviated name of the direction, e.g. "NE".
func (d Direction) ShortString() string {
	switch d {
	case East:
		return "E"
	case NorthEast:
		return "NE"
	case North:
		return "N"
	case NorthWest:
		return "NW"
	case West:
		return "W"
	case SouthWest:
		return "SW"
	case South:
		return "S"
	case SouthEast:
		return "SE"
	default:
		panic(fmt.Sprintf("direction: invalid direction value %d", uint8(d)))
	}
}

// Parse converts a long ("NorthEast") or short ("NE") direction name to a
// Direction.
func Parse(s string) (Direction, error) {
	for d := East; d <= SouthEast; d++ {
		if s == d.String() || s == d.ShortString() {
			return d, nil
		}
	}
	return 0, fmt.Errorf("direction: unknown direction name %q", s)
}

// Clockwise returns the next direction clockwise from d.
func (d Direction) Clockwise() Direction {
	return (d + Count - 1) % Count
}

// CounterClockwise returns the next direction counter-clockwise from d.
func (d Direction) CounterClockwise() Direction {
	return (d + 1) % Count
}

// Opposite returns the direction opposite d.
func (d Direction) Opposite() Direction {
	return (d + Count/2) % Count
}

// Angle returns the angle of the direction in radians, measured
// counter-clockwise from East.
func (d Direction) Angle() float64 {
	return float64(d) * (math.Pi / 4)
}

// IsCardinal reports whether d is one of the four cardinal directions.
func (d Direction) IsCardinal() bool {
	return Cardinal.Contains(d)
}

// IsOrdinal reports whether d is one of the four ordinal directions.
func (d Direction) IsOrdinal() bool {
	return Ordinal.Contains(d)
}
