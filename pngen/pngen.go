// Package pngen writes PNG images from in-memory pixel grids.
//
// It supports the minimum conformant subset: 8- or 16-bit grayscale or
// truecolor, no interlacing, filter type None on every scanline, and a
// single IDAT chunk compressed with zlib at either no compression or
// best compression. The whole image is held in memory; this is a small
// personal encoder, not a streaming codec.
package pngen

import (
	"compress/zlib"
	"errors"
	"fmt"
	"strings"
)

// ColorType is the PNG header color-type code.
type ColorType int

const (
	Grayscale ColorType = 0
	RGB       ColorType = 2
)

func (c ColorType) String() string {
	switch c {
	case Grayscale:
		return "Grayscale"
	case RGB:
		return "RGB"
	default:
		return fmt.Sprintf("ColorType(%d)", int(c))
	}
}

// channels returns samples per pixel for the color type.
func (c ColorType) channels() int {
	if c == RGB {
		return 3
	}
	return 1
}

// Pixel is one RGB sample. Each channel must fit the encoder's bit
// depth: 0..255 for depth 8, 0..65535 for depth 16.
type Pixel struct {
	R, G, B uint16
}

var (
	// ErrInvalidParameter reports an unsupported bit depth or a
	// destination name without a .png extension.
	ErrInvalidParameter = errors.New("pngen: invalid parameter")

	// ErrMalformedInput reports an empty grid, ragged rows, or a
	// channel value that does not fit the configured bit depth.
	ErrMalformedInput = errors.New("pngen: malformed input")
)

// Encoder holds a validated image and its output configuration.
// It is immutable after construction; no I/O happens until Make or
// EncodeTo.
type Encoder struct {
	filename string
	depth    int
	color    ColorType
	level    int // zlib compression level
	gray     [][]uint16
	rgb      [][]Pixel
	width    int
	height   int
}

// NewGrayscale builds an encoder for a grayscale grid. Rows must be
// non-empty and of equal length, depth must be 8 or 16, and every
// sample must fit the depth.
func NewGrayscale(filename string, data [][]uint16, depth int, compress bool) (*Encoder, error) {
	e := &Encoder{
		filename: filename,
		depth:    depth,
		color:    Grayscale,
		level:    compressionLevel(compress),
		gray:     data,
	}
	if err := e.validate(len(data), func(i int) int { return len(data[i]) }); err != nil {
		return nil, err
	}
	max := maxSample(depth)
	for y, row := range data {
		for x, v := range row {
			if v > max {
				return nil, fmt.Errorf("%w: sample %d at (%d,%d) exceeds %d-bit range", ErrMalformedInput, v, x, y, depth)
			}
		}
	}
	return e, nil
}

// NewRGB builds an encoder for an RGB grid under the same rules as
// NewGrayscale, applied per channel.
func NewRGB(filename string, data [][]Pixel, depth int, compress bool) (*Encoder, error) {
	e := &Encoder{
		filename: filename,
		depth:    depth,
		color:    RGB,
		level:    compressionLevel(compress),
		rgb:      data,
	}
	if err := e.validate(len(data), func(i int) int { return len(data[i]) }); err != nil {
		return nil, err
	}
	max := maxSample(depth)
	for y, row := range data {
		for x, p := range row {
			if p.R > max || p.G > max || p.B > max {
				return nil, fmt.Errorf("%w: pixel at (%d,%d) exceeds %d-bit range", ErrMalformedInput, x, y, depth)
			}
		}
	}
	return e, nil
}

// validate checks depth, extension and grid shape, and derives
// width/height from the grid.
func (e *Encoder) validate(rows int, rowLen func(int) int) error {
	if e.depth != 8 && e.depth != 16 {
		return fmt.Errorf("%w: depth must be 8 or 16, got %d", ErrInvalidParameter, e.depth)
	}
	if !strings.HasSuffix(e.filename, ".png") {
		return fmt.Errorf("%w: filename %q must end with .png", ErrInvalidParameter, e.filename)
	}
	if rows == 0 || rowLen(0) == 0 {
		return fmt.Errorf("%w: empty image grid", ErrMalformedInput)
	}
	e.width = rowLen(0)
	e.height = rows
	for i := 1; i < rows; i++ {
		if rowLen(i) != e.width {
			return fmt.Errorf("%w: row %d has %d pixels, want %d", ErrMalformedInput, i, rowLen(i), e.width)
		}
	}
	return nil
}

// Width returns the image width in pixels.
func (e *Encoder) Width() int { return e.width }

// Height returns the image height in pixels.
func (e *Encoder) Height() int { return e.height }

func (e *Encoder) String() string {
	return fmt.Sprintf("PNG Encoder: %s, %d x %d, %d bit, %s",
		e.filename, e.width, e.height, e.depth, e.color)
}

func compressionLevel(compress bool) int {
	if compress {
		return zlib.BestCompression
	}
	return zlib.NoCompression
}

func maxSample(depth int) uint16 {
	if depth == 8 {
		return 0xff
	}
	return 0xffff
}
