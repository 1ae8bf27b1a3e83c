package main

import (
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-maze/maze"
)

const walkerGlyph = '@'

// game is the walking state shown on screen. It knows nothing about the terminal.
type game struct {
	rows, cols int
	seed       int64
	start      *maze.CellPosition
	goal       *maze.CellPosition

	m     *maze.Maze
	pos   maze.CellPosition
	steps int
	bumps int
	done  bool
}

func newGame(rows, cols int, seed int64, start, goal *maze.CellPosition) (*game, error) {
	g := &game{rows: rows, cols: cols, seed: seed, start: start, goal: goal}
	if err := g.reset(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// reset carves a fresh maze from seed and puts the walker back on the start cell.
func (g *game) reset(seed int64) error {
	m, err := maze.New(g.rows, g.cols, &maze.Options{Start: g.start, Goal: g.goal, Seed: seed})
	if err != nil {
		return err
	}
	g.m = m
	g.seed = seed
	g.pos = m.Start()
	g.steps, g.bumps = 0, 0
	g.done = g.pos == m.Goal()
	return nil
}

// step moves the walker one cell if a passage allows it.
func (g *game) step(d maze.Direction) bool {
	if g.done {
		return false
	}
	moved, next := g.m.Move(g.pos, d)
	if !moved {
		g.bumps++
		return false
	}
	g.pos = next
	g.steps++
	if g.pos == g.m.Goal() {
		g.done = true
	}
	return true
}

// lines returns the text rendering with the walker drawn over its cell.
func (g *game) lines() []string {
	lines := strings.Split(g.m.String(), "\n")
	y, x := cellOrigin(g.pos)
	row := []byte(lines[y])
	row[x] = walkerGlyph
	lines[y] = string(row)
	return lines
}

func (g *game) status() string {
	if g.done {
		return fmt.Sprintf("Reached the goal in %d steps (%d bumps). n: new maze  q: quit", g.steps, g.bumps)
	}
	return fmt.Sprintf("%s  steps %d  exits %s  seed %d", g.pos, g.steps, exitNames(g.m.Exits(g.pos)), g.seed)
}

// cellOrigin maps a cell to its character in the text rendering.
func cellOrigin(p maze.CellPosition) (int, int) {
	return 2*p.Row + 1, 2*p.Col + 1
}

func exitNames(ds []maze.Direction) string {
	names := make([]string, len(ds))
	for i, d := range ds {
		names[i] = strings.ToLower(d.String()[:1])
	}
	return strings.Join(names, "")
}
