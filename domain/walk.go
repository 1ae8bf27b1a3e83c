package domain

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// ErrWalkNotFound indicates a walk that never existed or has expired.
var ErrWalkNotFound = errors.New("walk not found")

// Walk is a navigation session over a maze. The maze itself is never stored: Rows, Cols,
// Start, Goal and Seed regenerate it exactly.
type Walk struct {
	ID        uuid.UUID         `json:"id"`
	OwnerID   uuid.UUID         `json:"owner_id"`
	Rows      int               `json:"rows"`
	Cols      int               `json:"cols"`
	Start     maze.CellPosition `json:"start"`
	Goal      maze.CellPosition `json:"goal"`
	Seed      int64             `json:"seed"`
	Position  maze.CellPosition `json:"position"`
	Steps     int               `json:"steps"`
	Finished  bool              `json:"finished"`
	CreatedAt time.Time         `json:"created_at"`
}

// Maze regenerates the walk's maze.
func (w *Walk) Maze() (*maze.Maze, error) {
	start, goal := w.Start, w.Goal
	return maze.New(w.Rows, w.Cols, &maze.Options{
		Start: &start,
		Goal:  &goal,
		Seed:  w.Seed,
	})
}

// Advance records one successful step to pos and marks the walk finished on the goal.
func (w *Walk) Advance(pos maze.CellPosition) {
	w.Position = pos
	w.Steps++
	if pos == w.Goal {
		w.Finished = true
	}
}
