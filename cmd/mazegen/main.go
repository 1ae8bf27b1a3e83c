// Command mazegen carves one maze, prints its text rendering and optionally exports
// it as an image.
//
//	mazegen -rows 20 -cols 40 -seed 7 -out maze.png -size 800x400
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/beka-birhanu/vinom-maze/config"
	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/raster"
	"github.com/sirupsen/logrus"
)

type options struct {
	rows, cols    int
	seed          int64
	start, goal   string
	out           string
	width, height int
	kernel        string
	quiet         bool
}

func main() {
	log, err := logger.New("MAZEGEN", config.ColorBlue, os.Stderr)
	if err != nil {
		logrus.Fatalf("creating logger: %v", err)
	}

	if err := run(os.Args[1:], os.Stdout, config.LoadMazeDefaults()); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Error(err.Error())
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer, defaults config.MazeDefaults) error {
	opts, err := parseFlags(args, defaults)
	if err != nil {
		return err
	}

	mazeOpts := &maze.Options{Seed: opts.seed}
	if opts.start != "" {
		p, err := maze.ParsePosition(opts.start)
		if err != nil {
			return err
		}
		mazeOpts.Start = &p
	}
	if opts.goal != "" {
		p, err := maze.ParsePosition(opts.goal)
		if err != nil {
			return err
		}
		mazeOpts.Goal = &p
	}

	m, err := maze.New(opts.rows, opts.cols, mazeOpts)
	if err != nil {
		return err
	}

	if !opts.quiet {
		fmt.Fprintln(stdout, m.String())
	}

	if opts.out == "" {
		return nil
	}
	return export(m, opts)
}

func parseFlags(args []string, defaults config.MazeDefaults) (*options, error) {
	fs := flag.NewFlagSet("mazegen", flag.ContinueOnError)

	opts := &options{}
	var size string
	fs.IntVar(&opts.rows, "rows", defaults.Rows, "number of rows")
	fs.IntVar(&opts.cols, "cols", defaults.Cols, "number of columns")
	fs.Int64Var(&opts.seed, "seed", defaults.Seed, "random seed, 0 for a time based one")
	fs.StringVar(&opts.start, "start", "", "start cell as row,col (default 0,0)")
	fs.StringVar(&opts.goal, "goal", "", "goal cell as row,col (default bottom-right)")
	fs.StringVar(&opts.out, "out", "", "write an image here; the extension picks png, bmp or tiff")
	fs.StringVar(&size, "size", "1024x1024", "image size as WIDTHxHEIGHT")
	fs.StringVar(&opts.kernel, "kernel", "box", "resampling kernel: "+strings.Join(raster.Kernels(), ", "))
	fs.BoolVar(&opts.quiet, "q", false, "do not print the text rendering")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	w, h, err := parseSize(size)
	if err != nil {
		return nil, err
	}
	opts.width, opts.height = w, h
	return opts, nil
}

func parseSize(s string) (int, int, error) {
	rawW, rawH, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q is not WIDTHxHEIGHT", s)
	}
	w, err := strconv.Atoi(rawW)
	if err != nil {
		return 0, 0, fmt.Errorf("size width: %w", err)
	}
	h, err := strconv.Atoi(rawH)
	if err != nil {
		return 0, 0, fmt.Errorf("size height: %w", err)
	}
	return w, h, nil
}

func export(m *maze.Maze, opts *options) error {
	format := raster.FormatFromPath(opts.out)

	img, err := raster.Render(m.ConnectivityMap(), raster.Options{
		Width:  opts.width,
		Height: opts.height,
		Kernel: opts.kernel,
	})
	if err != nil {
		return err
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return err
	}

	if err := raster.Encode(f, img, format); err != nil {
		_ = f.Close()
		_ = os.Remove(opts.out)
		return err
	}
	return f.Close()
}
