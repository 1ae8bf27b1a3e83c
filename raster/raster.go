// Package raster turns a maze connectivity map into a grayscale image and encodes it.
//
// It depends only on the [][]uint8 map produced by maze.Maze.ConnectivityMap: cells and
// open passages become white pixels, walls and corners black.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

const (
	defaultSize   = 1024
	defaultKernel = "box"
	maxSize       = 8192
)

var (
	ErrEmptyMap       = errors.New("raster: connectivity map is empty")
	ErrNonRectangular = errors.New("raster: connectivity map rows differ in length")
	ErrInvalidSize    = errors.New("raster: invalid image size")
	ErrUnknownKernel  = errors.New("raster: unknown resampling kernel")
	ErrUnknownFormat  = errors.New("raster: unknown image format")
)

// kernels maps a resampling name to its scaler. On an upscale a box filter of half-pixel
// support covers exactly the source pixel under each output pixel centre, whatever the
// factor, so "box" is nearest neighbour sampled at pixel centres.
var kernels = map[string]draw.Scaler{
	"box":        draw.NearestNeighbor,
	"nearest":    draw.NearestNeighbor,
	"bilinear":   draw.BiLinear,
	"approx":     draw.ApproxBiLinear,
	"catmullrom": draw.CatmullRom,
}

// Options controls the output image. Zero values fall back to a 1024×1024 box-scaled image.
type Options struct {
	Width  int    // Output width in pixels
	Height int    // Output height in pixels
	Kernel string // Resampling kernel: box, nearest, bilinear, approx, catmullrom
}

// Kernels returns the accepted kernel names.
func Kernels() []string {
	return []string{"box", "nearest", "bilinear", "approx", "catmullrom"}
}

// Render paints the connectivity map at one pixel per entry and scales it to the
// requested size.
func Render(cm [][]uint8, opts Options) (*image.Gray, error) {
	if len(cm) == 0 || len(cm[0]) == 0 {
		return nil, ErrEmptyMap
	}
	w, h := len(cm[0]), len(cm)
	for _, row := range cm {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	if opts.Width == 0 {
		opts.Width = defaultSize
	}
	if opts.Height == 0 {
		opts.Height = defaultSize
	}
	if opts.Width < 0 || opts.Height < 0 || opts.Width > maxSize || opts.Height > maxSize {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}
	if opts.Kernel == "" {
		opts.Kernel = defaultKernel
	}
	scaler, ok := kernels[strings.ToLower(opts.Kernel)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKernel, opts.Kernel)
	}

	src := image.NewGray(image.Rect(0, 0, w, h))
	for y, row := range cm {
		for x, v := range row {
			if v != 0 {
				src.Pix[y*src.Stride+x] = 0xff
			}
		}
	}

	dst := image.NewGray(image.Rect(0, 0, opts.Width, opts.Height))
	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// FormatFromPath picks the encoding from a file extension, defaulting to png.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	}
	return "png"
}

// Encode writes img to w as png, bmp or tiff.
func Encode(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff", "tif":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
