package maze

import "strings"

// String provides a textual representation of the maze.
//
// Every line is 2*cols+1 characters wide. Walls render as '-' and '|', passages as
// spaces, '+' marks wall corners, and the start and goal cells show 'S' and 'G'.
// When start and goal coincide the cell shows 'S'. There is no trailing newline.
func (m *Maze) String() string {
	g := m.grid
	var sb strings.Builder
	sb.Grow((2*g.rows + 1) * (2*g.cols + 2))

	border := "+" + strings.Repeat("-", 2*g.cols-1) + "+"
	sb.WriteString(border + "\n")

	for row := 0; row < g.rows; row++ {
		// Wall line above the row
		if row > 0 {
			sb.WriteByte('|')
			base := g.cols * (row - 1)
			for col := 0; col < g.cols; col++ {
				if g.horizontal[base+col] {
					sb.WriteByte(' ')
				} else {
					sb.WriteByte('-')
				}
				if col < g.cols-1 {
					sb.WriteByte('+')
				}
			}
			sb.WriteString("|\n")
		}

		// Cell line
		sb.WriteByte('|')
		base := row * (g.cols - 1)
		for col := 0; col < g.cols; col++ {
			if col > 0 {
				if g.vertical[base+col-1] {
					sb.WriteByte(' ')
				} else {
					sb.WriteByte('|')
				}
			}
			sb.WriteByte(m.marker(CellPosition{Row: row, Col: col}))
		}
		sb.WriteString("|\n")
	}

	sb.WriteString(border)
	return sb.String()
}

func (m *Maze) marker(pos CellPosition) byte {
	switch pos {
	case m.start:
		return 'S'
	case m.goal:
		return 'G'
	}
	return ' '
}

// ConnectivityMap rasterizes the maze into a (2*rows-1)×(2*cols-1) grid of 0/1 values.
//
// Even/even positions are cell centres and always 1. A position with one odd coordinate
// sits between two cells and is 1 iff that edge is a passage. Odd/odd positions are wall
// corners and always 0.
func (m *Maze) ConnectivityMap() [][]uint8 {
	g := m.grid
	height, width := 2*g.rows-1, 2*g.cols-1

	out := make([][]uint8, height)
	for r := range out {
		out[r] = make([]uint8, width)
	}

	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			out[2*row][2*col] = 1
			if col > 0 && g.vertical[row*(g.cols-1)+col-1] {
				out[2*row][2*col-1] = 1
			}
			if row > 0 && g.horizontal[g.cols*(row-1)+col] {
				out[2*row-1][2*col] = 1
			}
		}
	}

	return out
}
