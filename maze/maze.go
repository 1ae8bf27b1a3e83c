package maze

import (
	"fmt"
	"math/rand"
	"time"
)

// Options tunes maze construction. A nil *Options uses every default.
type Options struct {
	Start *CellPosition // Root of the carving traversal (nil = (0,0))
	Goal  *CellPosition // Goal marker (nil = bottom-right cell)
	Rand  Shuffler      // Random source (nil = math/rand seeded from Seed)
	Seed  int64         // Seed used when Rand is nil (0 = time based)
}

// Maze is a perfect maze over a rows×cols grid. It is immutable once New returns.
type Maze struct {
	grid  *grid
	start CellPosition
	goal  CellPosition
}

// New allocates a rows×cols grid and carves it into a perfect maze rooted at the start cell.
// Returns ErrInvalidDimensions if rows or cols is below 1 and ErrOutOfBounds if the start
// or goal lies outside the grid.
func New(rows, cols int, opts *Options) (*Maze, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if opts == nil {
		opts = &Options{}
	}

	g := newGrid(rows, cols)

	start := CellPosition{Row: 0, Col: 0}
	if opts.Start != nil {
		start = *opts.Start
	}
	if !g.inBounds(start) {
		return nil, fmt.Errorf("%w: start %s in %dx%d grid", ErrOutOfBounds, start, rows, cols)
	}

	goal := CellPosition{Row: rows - 1, Col: cols - 1}
	if opts.Goal != nil {
		goal = *opts.Goal
	}
	if !g.inBounds(goal) {
		return nil, fmt.Errorf("%w: goal %s in %dx%d grid", ErrOutOfBounds, goal, rows, cols)
	}

	rng := opts.Rand
	if rng == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	g.carve(start, rng)

	return &Maze{
		grid:  g,
		start: start,
		goal:  goal,
	}, nil
}

// Rows returns the number of rows in the maze.
func (m *Maze) Rows() int {
	return m.grid.rows
}

// Cols returns the number of columns in the maze.
func (m *Maze) Cols() int {
	return m.grid.cols
}

// Start returns the cell carving started from.
func (m *Maze) Start() CellPosition {
	return m.start
}

// Goal returns the goal cell.
func (m *Maze) Goal() CellPosition {
	return m.goal
}

// InBound reports whether pos lies inside the maze.
func (m *Maze) InBound(pos CellPosition) bool {
	return m.grid.inBounds(pos)
}

// EdgeAt reports whether the edge leaving pos towards d is a passage.
// Returns ErrOutOfBounds when pos is outside the maze or no edge exists in that direction,
// and ErrInvalidDirection for an unknown direction.
func (m *Maze) EdgeAt(pos CellPosition, d Direction) (bool, error) {
	return m.grid.edge(pos, d)
}

// Move steps from pos towards d. It returns false and pos unchanged when there is no
// passage that way, including at the border of the maze.
func (m *Maze) Move(pos CellPosition, d Direction) (bool, CellPosition) {
	open, err := m.grid.edge(pos, d)
	if err != nil || !open {
		return false, pos
	}
	return true, pos.neighbor(d)
}

// Exits lists the directions with a passage out of pos, in declaration order.
func (m *Maze) Exits(pos CellPosition) []Direction {
	var exits []Direction
	for _, d := range directions {
		if open, err := m.grid.edge(pos, d); err == nil && open {
			exits = append(exits, d)
		}
	}
	return exits
}

// Passages returns the number of open edges. A carved maze always has rows*cols-1.
func (m *Maze) Passages() int {
	return m.grid.passages()
}
