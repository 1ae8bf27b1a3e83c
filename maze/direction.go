package maze

import (
	"fmt"
	"strings"
)

// Direction is one of the four compass directions a walker can take from a cell.
type Direction int

const (
	North Direction = iota // North moves to the previous row.
	South                  // South moves to the next row.
	East                   // East moves to the next column.
	West                   // West moves to the previous column.
)

// directions lists every Direction in declaration order.
var directions = [4]Direction{North, South, East, West}

// Directions returns the four directions in declaration order.
func Directions() []Direction {
	return directions[:]
}

// Valid reports whether d is one of the four compass directions.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// Opposite returns the direction pointing back across the same edge.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	panic(fmt.Sprintf("maze: invalid direction %d", int(d)))
}

// String returns the capitalised name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection converts a direction name or its first letter, in any case, into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, nil
	case "south", "s":
		return South, nil
	case "east", "e":
		return East, nil
	case "west", "w":
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}
