package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rick-howell/ricklib/graphics2d"
	"github.com/rick-howell/ricklib/pngen"
	"github.com/spf13/cobra"
)

var (
	renderOut      string
	renderDepth    int
	renderSize     int
	renderCompress bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write demo images through the built-in PNG encoder",
	Long: `Renders three demo images into the output directory:

  gradient.png  horizontal grayscale ramp
  bars.png      six-band RGB color ramp
  rings.png     concentric circles drawn with graphics2d`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", ".", "output directory")
	renderCmd.Flags().IntVar(&renderDepth, "depth", 8, "bit depth (8 or 16)")
	renderCmd.Flags().IntVar(&renderSize, "size", 256, "image size in pixels")
	renderCmd.Flags().BoolVar(&renderCompress, "compress", true, "use best compression")
	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	if err := os.MkdirAll(renderOut, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	outputs := []struct {
		name string
		make func(path string) error
	}{
		{"gradient.png", renderGradient},
		{"bars.png", renderBars},
		{"rings.png", renderRings},
	}
	for _, out := range outputs {
		path := filepath.Join(renderOut, out.name)
		if err := out.make(path); err != nil {
			return fmt.Errorf("render %s: %w", out.name, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		fmt.Printf("  %-14s %dx%d  %s\n", out.name, renderSize, renderSize, formatBytes(info.Size()))
	}
	return nil
}

func maxForDepth(depth int) uint16 {
	if depth == 8 {
		return 0xff
	}
	return 0xffff
}

// renderGradient writes a left-to-right grayscale ramp.
func renderGradient(path string) error {
	max := uint64(maxForDepth(renderDepth))
	grid := make([][]uint16, renderSize)
	for y := range grid {
		row := make([]uint16, renderSize)
		for x := range row {
			row[x] = uint16(max * uint64(x) / uint64(renderSize))
		}
		grid[y] = row
	}
	enc, err := pngen.NewGrayscale(path, grid, renderDepth, renderCompress)
	if err != nil {
		return err
	}
	logVerbose("%s", enc)
	return enc.Make()
}

// renderBars writes six vertical color bands, each ramping from black
// to full intensity.
func renderBars(path string) error {
	max := maxForDepth(renderDepth)
	band := renderSize / 6
	if band < 1 {
		band = 1
	}
	grid := make([][]pngen.Pixel, renderSize)
	for y := range grid {
		row := make([]pngen.Pixel, renderSize)
		for x := range row {
			m := uint16(uint64(max) * uint64(x%band) / uint64(band))
			switch x / band {
			case 0:
				row[x] = pngen.Pixel{R: m}
			case 1:
				row[x] = pngen.Pixel{R: m, G: m}
			case 2:
				row[x] = pngen.Pixel{G: m}
			case 3:
				row[x] = pngen.Pixel{G: m, B: m}
			case 4:
				row[x] = pngen.Pixel{B: m}
			default:
				row[x] = pngen.Pixel{R: m, B: m}
			}
		}
		grid[y] = row
	}
	enc, err := pngen.NewRGB(path, grid, renderDepth, renderCompress)
	if err != nil {
		return err
	}
	logVerbose("%s", enc)
	return enc.Make()
}

// renderRings draws concentric filled circles over a diagonal.
func renderRings(path string) error {
	f := graphics2d.NewFrame(renderSize, renderSize, renderDepth)
	f.Fill(graphics2d.White)
	c := renderSize / 2
	f.DrawLine(0, 0, renderSize-1, renderSize-1, graphics2d.Black, 4)
	f.DrawCircle(c, c, renderSize/2, graphics2d.Red)
	f.DrawCircle(c, c, renderSize*3/8, graphics2d.Green)
	f.DrawCircle(c, c, renderSize/4, graphics2d.Blue)
	return f.ExportPNG(path, renderCompress)
}
