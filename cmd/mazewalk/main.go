// Command mazewalk lets you walk a maze in the terminal.
//
// Arrow keys or h/j/k/l move the walker, n carves a new maze, q or Esc quits.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/beka-birhanu/vinom-maze/config"
	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

var (
	wallStyle   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	markStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	walkerStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	doneStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
)

func main() {
	log, err := logger.New("MAZEWALK", config.ColorMagenta, os.Stderr)
	if err != nil {
		logrus.Fatalf("creating logger: %v", err)
	}
	defaults := config.LoadMazeDefaults()

	rows := flag.Int("rows", defaults.Rows, "number of rows")
	cols := flag.Int("cols", defaults.Cols, "number of columns")
	seed := flag.Int64("seed", defaults.Seed, "random seed, 0 for a random one")
	start := flag.String("start", "", "start cell as row,col (default 0,0)")
	goal := flag.String("goal", "", "goal cell as row,col (default bottom-right)")
	flag.Parse()

	startPos, err := optionalPosition(*start)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
	goalPos, err := optionalPosition(*goal)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = rand.Int63()
	}
	g, err := newGame(*rows, *cols, *seed, startPos, goalPos)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Error(fmt.Sprintf("creating screen: %v", err))
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		log.Error(fmt.Sprintf("initializing screen: %v", err))
		os.Exit(1)
	}
	defer screen.Fini()

	loop(screen, g, log)
}

func optionalPosition(s string) (*maze.CellPosition, error) {
	if s == "" {
		return nil, nil
	}
	p, err := maze.ParsePosition(s)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func loop(screen tcell.Screen, g *game, log *logger.Logger) {
	draw(screen, g)
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if quitKey(ev) {
				return
			}
			if d, ok := keyDirection(ev); ok {
				g.step(d)
			} else if ev.Key() == tcell.KeyRune && ev.Rune() == 'n' {
				if err := g.reset(rand.Int63()); err != nil {
					log.Error(err.Error())
					return
				}
			}
		case nil:
			return
		}
		draw(screen, g)
	}
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// keyDirection maps arrow keys and vi keys to directions.
func keyDirection(ev *tcell.EventKey) (maze.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return maze.North, true
	case tcell.KeyDown:
		return maze.South, true
	case tcell.KeyRight:
		return maze.East, true
	case tcell.KeyLeft:
		return maze.West, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			return maze.North, true
		case 'j':
			return maze.South, true
		case 'l':
			return maze.East, true
		case 'h':
			return maze.West, true
		}
	}
	return 0, false
}

func draw(screen tcell.Screen, g *game) {
	screen.Clear()

	lines := g.lines()
	for y, line := range lines {
		for x, ch := range line {
			style := wallStyle
			switch ch {
			case walkerGlyph:
				style = walkerStyle
			case 'S', 'G':
				style = markStyle
			}
			screen.SetContent(x, y, ch, nil, style)
		}
	}

	style := statusStyle
	if g.done {
		style = doneStyle
	}
	for x, ch := range g.status() {
		screen.SetContent(x, len(lines)+1, ch, nil, style)
	}

	screen.Show()
}
