package maze

// Shuffler is the random source used while carving. *rand.Rand from math/rand and
// math/rand/v2 both satisfy it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// carve turns the all-wall grid into a perfect maze rooted at start using an iterative
// randomized depth-first backtracker.
//
// A popped cell that still has unvisited neighbours is pushed back before its
// neighbours, so every child is explored before the cell is revisited.
func (g *grid) carve(start CellPosition, rng Shuffler) {
	visited := make([]bool, g.rows*g.cols)
	stack := []CellPosition{start}
	visited[g.cellIndex(start)] = true

	for len(stack) > 0 {
		cell := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if g.hasUnvisitedNeighbor(cell, visited) {
			stack = append(stack, cell)
		}

		order := directions
		rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})

		for _, d := range order {
			next := cell.neighbor(d)
			if !g.inBounds(next) || visited[g.cellIndex(next)] {
				continue
			}
			// cannot fail: next is in bounds so the edge exists
			_ = g.setEdge(cell, d, true)
			visited[g.cellIndex(next)] = true
			stack = append(stack, next)
		}
	}
}

func (g *grid) hasUnvisitedNeighbor(cell CellPosition, visited []bool) bool {
	for _, d := range directions {
		next := cell.neighbor(d)
		if g.inBounds(next) && !visited[g.cellIndex(next)] {
			return true
		}
	}
	return false
}
