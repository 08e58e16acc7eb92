package graphics2d

import (
	"math"

	"github.com/rick-howell/ricklib/pngen"
)

// Named 8-bit colors.
var (
	Black     = pngen.Pixel{R: 0, G: 0, B: 0}
	White     = pngen.Pixel{R: 255, G: 255, B: 255}
	Red       = pngen.Pixel{R: 255, G: 0, B: 0}
	Green     = pngen.Pixel{R: 0, G: 255, B: 0}
	Blue      = pngen.Pixel{R: 0, G: 0, B: 255}
	Yellow    = pngen.Pixel{R: 255, G: 255, B: 0}
	Cyan      = pngen.Pixel{R: 0, G: 255, B: 255}
	Magenta   = pngen.Pixel{R: 255, G: 0, B: 255}
	Gray      = pngen.Pixel{R: 128, G: 128, B: 128}
	LightGray = pngen.Pixel{R: 192, G: 192, B: 192}
	DarkGray  = pngen.Pixel{R: 64, G: 64, B: 64}
	Orange    = pngen.Pixel{R: 255, G: 165, B: 0}
	Pink      = pngen.Pixel{R: 255, G: 192, B: 203}
	Purple    = pngen.Pixel{R: 128, G: 0, B: 128}
	Brown     = pngen.Pixel{R: 165, G: 42, B: 42}
)

// Angle2RGB maps an angle in [-pi, pi] onto a color wheel with channel
// values in [0, max]. For vectors in R2, math.Atan2(y, x) gives the
// angle. Out-of-range angles are clamped.
func Angle2RGB(angle float64, max uint16) pngen.Pixel {
	if angle < -math.Pi {
		angle = -math.Pi
	} else if angle > math.Pi {
		angle = math.Pi
	}
	x := (angle + math.Pi) / (2 * math.Pi)
	m := float64(max)
	channel := func(phase float64) uint16 {
		return uint16(m * (1 + math.Cos(2*math.Pi*(x-phase))) / 2)
	}
	return pngen.Pixel{R: channel(0), G: channel(1.0 / 3), B: channel(2.0 / 3)}
}

// Frame is a width x height raster of RGB pixels, origin top-left.
// Writes outside the bounds are silently dropped, which keeps drawing
// loops free of edge checks.
type Frame struct {
	width  int
	height int
	depth  int
	pix    [][]pngen.Pixel
}

// NewFrame builds a frame filled with black at the given bit depth
// (8 or 16; depth is only used at export time).
func NewFrame(width, height, depth int) *Frame {
	pix := make([][]pngen.Pixel, height)
	for y := range pix {
		pix[y] = make([]pngen.Pixel, width)
	}
	return &Frame{width: width, height: height, depth: depth, pix: pix}
}

func (f *Frame) Width() int  { return f.width }
func (f *Frame) Height() int { return f.height }

// Set writes a pixel; out-of-bounds coordinates are ignored.
func (f *Frame) Set(x, y int, c pngen.Pixel) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pix[y][x] = c
}

// At reads a pixel; out-of-bounds coordinates return black.
func (f *Frame) At(x, y int) pngen.Pixel {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Black
	}
	return f.pix[y][x]
}

// Fill paints the whole frame one color.
func (f *Frame) Fill(c pngen.Pixel) {
	for y := range f.pix {
		for x := range f.pix[y] {
			f.pix[y][x] = c
		}
	}
}

// Grid exposes the underlying rows, ready for the PNG encoder.
func (f *Frame) Grid() [][]pngen.Pixel {
	return f.pix
}

// DrawLine draws a Bresenham line from (x1,y1) to (x2,y2), thickened
// perpendicular to the major axis.
func (f *Frame) DrawLine(x1, y1, x2, y2 int, c pngen.Pixel, width int) {
	if width < 1 {
		width = 1
	}
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	x, y := x1, y1
	sx := sign(x2 - x1)
	sy := sign(y2 - y1)

	if dx > dy {
		err := float64(dx) / 2
		for x != x2 {
			for i := -width / 2; i <= width/2; i++ {
				f.Set(x, y+i, c)
			}
			err -= float64(dy)
			if err < 0 {
				y += sy
				err += float64(dx)
			}
			x += sx
		}
	} else {
		err := float64(dy) / 2
		for y != y2 {
			for i := -width / 2; i <= width/2; i++ {
				f.Set(x+i, y, c)
			}
			err -= float64(dx)
			if err < 0 {
				x += sx
				err += float64(dy)
			}
			y += sy
		}
	}
	for i := -width / 2; i <= width/2; i++ {
		f.Set(x+i, y, c)
	}
}

// DrawCircle paints a filled circle centered at (x0,y0).
func (f *Frame) DrawCircle(x0, y0, radius int, c pngen.Pixel) {
	r2 := radius * radius
	for y := y0 - radius; y <= y0+radius; y++ {
		for x := x0 - radius; x <= x0+radius; x++ {
			if (x-x0)*(x-x0)+(y-y0)*(y-y0) <= r2 {
				f.Set(x, y, c)
			}
		}
	}
}

// ExportPNG writes the frame to a .png file via the pngen encoder.
func (f *Frame) ExportPNG(filename string, compress bool) error {
	enc, err := pngen.NewRGB(filename, f.pix, f.depth, compress)
	if err != nil {
		return err
	}
	return enc.Make()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	return -1
}
