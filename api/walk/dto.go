package walkapi

import (
	"time"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
)

// StartRequest asks for a new walk. Omitted start, goal or seed take the maze defaults.
type StartRequest struct {
	Rows  int                `json:"rows" binding:"required,min=1"`
	Cols  int                `json:"cols" binding:"required,min=1"`
	Start *maze.CellPosition `json:"start"`
	Goal  *maze.CellPosition `json:"goal"`
	Seed  int64              `json:"seed"`
}

// MoveRequest carries one step. Direction is a name ("north") or its first letter.
type MoveRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// WalkResponse describes a walk and the maze it runs on.
type WalkResponse struct {
	ID        string            `json:"id"`
	Rows      int               `json:"rows"`
	Cols      int               `json:"cols"`
	Start     maze.CellPosition `json:"start"`
	Goal      maze.CellPosition `json:"goal"`
	Seed      int64             `json:"seed"`
	Position  maze.CellPosition `json:"position"`
	Steps     int               `json:"steps"`
	Finished  bool              `json:"finished"`
	Exits     []string          `json:"exits"`
	Maze      string            `json:"maze"`
	CreatedAt time.Time         `json:"created_at"`
}

// MoveResponse reports the result of a step.
type MoveResponse struct {
	Moved    bool              `json:"moved"`
	Position maze.CellPosition `json:"position"`
	Steps    int               `json:"steps"`
	Finished bool              `json:"finished"`
}

// MapResponse holds the connectivity map as numbers rather than base64 rows.
type MapResponse struct {
	Rows int     `json:"rows"`
	Cols int     `json:"cols"`
	Map  [][]int `json:"map"`
}

func newWalkResponse(w *domain.Walk, m *maze.Maze) *WalkResponse {
	exits := []string{}
	for _, d := range m.Exits(w.Position) {
		exits = append(exits, d.String())
	}

	return &WalkResponse{
		ID:        w.ID.String(),
		Rows:      w.Rows,
		Cols:      w.Cols,
		Start:     w.Start,
		Goal:      w.Goal,
		Seed:      w.Seed,
		Position:  w.Position,
		Steps:     w.Steps,
		Finished:  w.Finished,
		Exits:     exits,
		Maze:      m.String(),
		CreatedAt: w.CreatedAt,
	}
}

func newMapResponse(m *maze.Maze) *MapResponse {
	cm := m.ConnectivityMap()
	rows := make([][]int, len(cm))
	for r, line := range cm {
		rows[r] = make([]int, len(line))
		for c, v := range line {
			rows[r][c] = int(v)
		}
	}
	return &MapResponse{Rows: len(cm), Cols: len(cm[0]), Map: rows}
}
