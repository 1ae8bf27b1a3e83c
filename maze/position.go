package maze

import (
	"fmt"
	"strconv"
	"strings"
)

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int `json:"row"` // Row index of the cell
	Col int `json:"col"` // Column index of the cell
}

// GetRow returns the row index of the cell.
func (cp CellPosition) GetRow() int {
	return cp.Row
}

// GetCol returns the column index of the cell.
func (cp CellPosition) GetCol() int {
	return cp.Col
}

// String formats the position as "(row,col)".
func (cp CellPosition) String() string {
	return fmt.Sprintf("(%d,%d)", cp.Row, cp.Col)
}

// ParsePosition reads a position written as "row,col", optionally wrapped in parentheses
// as String prints it. Bounds are not checked.
func ParsePosition(s string) (CellPosition, error) {
	s = strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(s), "("), ")")
	rawRow, rawCol, ok := strings.Cut(s, ",")
	if !ok {
		return CellPosition{}, fmt.Errorf("maze: position %q is not row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rawRow))
	if err != nil {
		return CellPosition{}, fmt.Errorf("maze: position row: %w", err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(rawCol))
	if err != nil {
		return CellPosition{}, fmt.Errorf("maze: position col: %w", err)
	}
	return CellPosition{Row: row, Col: col}, nil
}

// neighbor returns the cell one step away in direction d. The result is not bounds checked.
func (cp CellPosition) neighbor(d Direction) CellPosition {
	switch d {
	case North:
		return CellPosition{Row: cp.Row - 1, Col: cp.Col}
	case South:
		return CellPosition{Row: cp.Row + 1, Col: cp.Col}
	case East:
		return CellPosition{Row: cp.Row, Col: cp.Col + 1}
	case West:
		return CellPosition{Row: cp.Row, Col: cp.Col - 1}
	}
	panic(fmt.Sprintf("maze: invalid direction %d", int(d)))
}
