package i

import (
	"context"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// WalkRequest describes the maze a new walk runs on. Nil positions take the maze
// defaults and a zero Seed draws a fresh one.
type WalkRequest struct {
	Rows  int
	Cols  int
	Start *maze.CellPosition
	Goal  *maze.CellPosition
	Seed  int64
}

// WalkService manages walks owned by users.
type WalkService interface {
	// Start creates a walk positioned on the maze start cell.
	Start(ctx context.Context, owner uuid.UUID, req WalkRequest) (*domain.Walk, *maze.Maze, error)

	// Get returns a walk together with its regenerated maze.
	Get(ctx context.Context, owner, id uuid.UUID) (*domain.Walk, *maze.Maze, error)

	// Move tries one step and reports whether the walker moved.
	Move(ctx context.Context, owner, id uuid.UUID, d maze.Direction) (bool, *domain.Walk, error)

	// Delete abandons a walk.
	Delete(ctx context.Context, owner, id uuid.UUID) error
}
