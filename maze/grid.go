package maze

import "fmt"

// axis names the edge array an edge lives in.
type axis int

const (
	horizontal axis = iota // edges crossing a row boundary (North/South)
	vertical               // edges crossing a column boundary (East/West)
)

// grid is the flat-array edge model of a rows×cols maze.
//
// The horizontal array holds (rows-1)*cols flags; the edge between (r-1,c) and (r,c)
// lives at cols*(r-1)+c. The vertical array holds rows*(cols-1) flags; the edge between
// (r,c-1) and (r,c) lives at r*(cols-1)+(c-1). A true flag is a passage.
type grid struct {
	rows, cols int
	horizontal []bool
	vertical   []bool
}

func newGrid(rows, cols int) *grid {
	return &grid{
		rows:       rows,
		cols:       cols,
		horizontal: make([]bool, (rows-1)*cols),
		vertical:   make([]bool, rows*(cols-1)),
	}
}

func (g *grid) inBounds(pos CellPosition) bool {
	return pos.Row >= 0 && pos.Row < g.rows && pos.Col >= 0 && pos.Col < g.cols
}

// cellIndex maps pos to its row-major index: row*cols + col.
func (g *grid) cellIndex(pos CellPosition) int {
	return pos.Row*g.cols + pos.Col
}

// cellAt converts a row-major index back to a position.
func (g *grid) cellAt(idx int) CellPosition {
	return CellPosition{Row: idx / g.cols, Col: idx % g.cols}
}

func (g *grid) edges(a axis) []bool {
	if a == horizontal {
		return g.horizontal
	}
	return g.vertical
}

// edgeIndex locates the edge leaving pos towards d.
// It fails with ErrOutOfBounds when pos is outside the grid or d points past the border.
func (g *grid) edgeIndex(pos CellPosition, d Direction) (axis, int, error) {
	if !g.inBounds(pos) {
		return 0, 0, fmt.Errorf("%w: cell %s in %dx%d grid", ErrOutOfBounds, pos, g.rows, g.cols)
	}

	switch d {
	case North:
		if pos.Row == 0 {
			return 0, 0, g.borderErr(pos, d)
		}
		return horizontal, g.cols*(pos.Row-1) + pos.Col, nil
	case South:
		if pos.Row == g.rows-1 {
			return 0, 0, g.borderErr(pos, d)
		}
		return horizontal, g.cols*pos.Row + pos.Col, nil
	case East:
		if pos.Col == g.cols-1 {
			return 0, 0, g.borderErr(pos, d)
		}
		return vertical, pos.Row*(g.cols-1) + pos.Col, nil
	case West:
		if pos.Col == 0 {
			return 0, 0, g.borderErr(pos, d)
		}
		return vertical, pos.Row*(g.cols-1) + pos.Col - 1, nil
	}

	return 0, 0, fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
}

func (g *grid) borderErr(pos CellPosition, d Direction) error {
	return fmt.Errorf("%w: no %s edge at %s", ErrOutOfBounds, d, pos)
}

// edgeCells is the inverse of edgeIndex. It returns the two cells joined by the edge,
// the north or west one first.
func (g *grid) edgeCells(a axis, idx int) (CellPosition, CellPosition, error) {
	if idx < 0 || idx >= len(g.edges(a)) {
		return CellPosition{}, CellPosition{}, fmt.Errorf("%w: edge index %d", ErrOutOfBounds, idx)
	}

	if a == horizontal {
		south := CellPosition{Row: idx/g.cols + 1, Col: idx % g.cols}
		return south.neighbor(North), south, nil
	}

	east := CellPosition{Row: idx / (g.cols - 1), Col: idx%(g.cols-1) + 1}
	return east.neighbor(West), east, nil
}

// edge reports whether the edge leaving pos towards d is a passage.
func (g *grid) edge(pos CellPosition, d Direction) (bool, error) {
	a, idx, err := g.edgeIndex(pos, d)
	if err != nil {
		return false, err
	}
	return g.edges(a)[idx], nil
}

// setEdge marks the edge leaving pos towards d as a passage (true) or a wall (false).
func (g *grid) setEdge(pos CellPosition, d Direction, passage bool) error {
	a, idx, err := g.edgeIndex(pos, d)
	if err != nil {
		return err
	}
	g.edges(a)[idx] = passage
	return nil
}

// passages counts the open edges across both arrays.
func (g *grid) passages() int {
	n := 0
	for _, open := range g.horizontal {
		if open {
			n++
		}
	}
	for _, open := range g.vertical {
		if open {
			n++
		}
	}
	return n
}
