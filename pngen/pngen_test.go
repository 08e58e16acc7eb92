package pngen

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func grayGrid(w, h int, max uint16) [][]uint16 {
	data := make([][]uint16, h)
	for y := range data {
		row := make([]uint16, w)
		for x := range row {
			row[x] = uint16(uint64(max) * uint64(x) / uint64(w))
		}
		data[y] = row
	}
	return data
}

func rgbGrid(w, h int, max uint16) [][]Pixel {
	data := make([][]Pixel, h)
	for y := range data {
		row := make([]Pixel, w)
		for x := range row {
			v := uint16(uint64(max) * uint64(x) / uint64(w))
			row[x] = Pixel{R: v, G: max - v, B: uint16(y)}
		}
		data[y] = row
	}
	return data
}

func encode(t *testing.T, e *Encoder) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := e.EncodeTo(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

// chunk is one parsed chunk of an encoded stream.
type chunk struct {
	typ     string
	payload []byte
	crc     uint32
}

// parseChunks splits an encoded stream into chunks, checking the
// signature first.
func parseChunks(t *testing.T, stream []byte) []chunk {
	t.Helper()
	sig := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	if !bytes.HasPrefix(stream, sig) {
		t.Fatalf("missing PNG signature, got % x", stream[:8])
	}
	rest := stream[8:]
	var chunks []chunk
	for len(rest) > 0 {
		if len(rest) < 12 {
			t.Fatalf("truncated chunk: %d trailing bytes", len(rest))
		}
		n := binary.BigEndian.Uint32(rest[0:4])
		if len(rest) < int(12+n) {
			t.Fatalf("chunk length %d exceeds remaining %d bytes", n, len(rest)-12)
		}
		chunks = append(chunks, chunk{
			typ:     string(rest[4:8]),
			payload: rest[8 : 8+n],
			crc:     binary.BigEndian.Uint32(rest[8+n : 12+n]),
		})
		rest = rest[12+n:]
	}
	return chunks
}

// rawScanlines decompresses the IDAT payload.
func rawScanlines(t *testing.T, stream []byte) []byte {
	t.Helper()
	for _, c := range parseChunks(t, stream) {
		if c.typ != "IDAT" {
			continue
		}
		zr, err := zlib.NewReader(bytes.NewReader(c.payload))
		if err != nil {
			t.Fatalf("IDAT is not a zlib stream: %v", err)
		}
		defer zr.Close()
		raw, err := io.ReadAll(zr)
		if err != nil {
			t.Fatalf("decompress IDAT: %v", err)
		}
		return raw
	}
	t.Fatal("no IDAT chunk in stream")
	return nil
}

func TestSignatureAllModes(t *testing.T) {
	sig := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	for _, depth := range []int{8, 16} {
		g, err := NewGrayscale("g.png", grayGrid(4, 3, maxSample(depth)), depth, false)
		if err != nil {
			t.Fatalf("gray depth %d: %v", depth, err)
		}
		if got := encode(t, g)[:8]; !bytes.Equal(got, sig) {
			t.Errorf("gray depth %d signature: % x", depth, got)
		}
		r, err := NewRGB("r.png", rgbGrid(4, 3, maxSample(depth)), depth, false)
		if err != nil {
			t.Fatalf("rgb depth %d: %v", depth, err)
		}
		if got := encode(t, r)[:8]; !bytes.Equal(got, sig) {
			t.Errorf("rgb depth %d signature: % x", depth, got)
		}
	}
}

func TestChunkOrderAndCRC(t *testing.T) {
	e, err := NewRGB("t.png", rgbGrid(7, 5, 255), 8, true)
	if err != nil {
		t.Fatal(err)
	}
	chunks := parseChunks(t, encode(t, e))

	want := []string{"IHDR", "IDAT", "IEND"}
	if len(chunks) != len(want) {
		t.Fatalf("got %d chunks, want %d", len(chunks), len(want))
	}
	for i, c := range chunks {
		if c.typ != want[i] {
			t.Errorf("chunk %d: got %s, want %s", i, c.typ, want[i])
		}
		sum := crc32.NewIEEE()
		sum.Write([]byte(c.typ))
		sum.Write(c.payload)
		if sum.Sum32() != c.crc {
			t.Errorf("chunk %s: crc %08x, recomputed %08x", c.typ, c.crc, sum.Sum32())
		}
	}
	if n := len(chunks[2].payload); n != 0 {
		t.Errorf("IEND payload: %d bytes, want 0", n)
	}
}

func TestHeaderDimensions(t *testing.T) {
	e, err := NewGrayscale("t.png", grayGrid(13, 21, 255), 8, false)
	if err != nil {
		t.Fatal(err)
	}
	ihdr := parseChunks(t, encode(t, e))[0]
	if w := binary.BigEndian.Uint32(ihdr.payload[0:4]); w != 13 {
		t.Errorf("IHDR width: got %d, want 13", w)
	}
	if h := binary.BigEndian.Uint32(ihdr.payload[4:8]); h != 21 {
		t.Errorf("IHDR height: got %d, want 21", h)
	}
}

func TestDeterministic(t *testing.T) {
	grid := rgbGrid(16, 16, 65535)
	for _, compress := range []bool{false, true} {
		a, err := NewRGB("a.png", grid, 16, compress)
		if err != nil {
			t.Fatal(err)
		}
		b, err := NewRGB("a.png", grid, 16, compress)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(encode(t, a), encode(t, b)) {
			t.Errorf("compress=%v: two encodes of the same grid differ", compress)
		}
	}
}

func TestCompressionTogglePreservesScanlines(t *testing.T) {
	grid := grayGrid(32, 8, 255)
	plain, err := NewGrayscale("p.png", grid, 8, false)
	if err != nil {
		t.Fatal(err)
	}
	best, err := NewGrayscale("p.png", grid, 8, true)
	if err != nil {
		t.Fatal(err)
	}
	rawPlain := rawScanlines(t, encode(t, plain))
	rawBest := rawScanlines(t, encode(t, best))
	if !bytes.Equal(rawPlain, rawBest) {
		t.Error("raw scanlines differ between compression levels")
	}
}

func TestScenario1x1Gray(t *testing.T) {
	e, err := NewGrayscale("t.png", [][]uint16{{128}}, 8, false)
	if err != nil {
		t.Fatal(err)
	}
	stream := encode(t, e)

	wantIHDR := []byte{0, 0, 0, 1, 0, 0, 0, 1, 0x08, 0, 0, 0, 0}
	if got := parseChunks(t, stream)[0].payload; !bytes.Equal(got, wantIHDR) {
		t.Errorf("IHDR payload:\n got  % x\n want % x", got, wantIHDR)
	}
	if got := rawScanlines(t, stream); !bytes.Equal(got, []byte{0x00, 0x80}) {
		t.Errorf("raw scanline: got % x, want 00 80", got)
	}
}

func TestScenario2x1RGB(t *testing.T) {
	e, err := NewRGB("t.png", [][]Pixel{{{R: 255}, {G: 255}}}, 8, false)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x00, 0xff, 0x00, 0x00, 0x00, 0xff, 0x00}
	if got := rawScanlines(t, encode(t, e)); !bytes.Equal(got, want) {
		t.Errorf("raw scanline:\n got  % x\n want % x", got, want)
	}
}

func TestBoundarySamples(t *testing.T) {
	e, err := NewRGB("t.png", [][]Pixel{{{R: 65535, G: 0, B: 65535}}}, 16, false)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x00, 0xff, 0xff, 0x00, 0x00, 0xff, 0xff}
	if got := rawScanlines(t, encode(t, e)); !bytes.Equal(got, want) {
		t.Errorf("16-bit scanline:\n got  % x\n want % x", got, want)
	}

	z, err := NewGrayscale("t.png", [][]uint16{{0}}, 8, false)
	if err != nil {
		t.Fatal(err)
	}
	if got := rawScanlines(t, encode(t, z)); !bytes.Equal(got, []byte{0x00, 0x00}) {
		t.Errorf("zero sample: got % x, want 00 00", got)
	}
}

// TestDecodeRoundTrip pushes the output through the stdlib decoder and
// compares every pixel against the source grid.
func TestDecodeRoundTrip(t *testing.T) {
	t.Run("gray8", func(t *testing.T) {
		grid := grayGrid(33, 17, 255)
		e, err := NewGrayscale("t.png", grid, 8, true)
		if err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(bytes.NewReader(encode(t, e)))
		if err != nil {
			t.Fatalf("stdlib rejects output: %v", err)
		}
		gray, ok := img.(*image.Gray)
		if !ok {
			t.Fatalf("decoded as %T, want *image.Gray", img)
		}
		for y := 0; y < 17; y++ {
			for x := 0; x < 33; x++ {
				if got := gray.GrayAt(x, y).Y; uint16(got) != grid[y][x] {
					t.Fatalf("pixel (%d,%d): got %d, want %d", x, y, got, grid[y][x])
				}
			}
		}
	})

	t.Run("gray16", func(t *testing.T) {
		grid := grayGrid(9, 9, 65535)
		e, err := NewGrayscale("t.png", grid, 16, false)
		if err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(bytes.NewReader(encode(t, e)))
		if err != nil {
			t.Fatalf("stdlib rejects output: %v", err)
		}
		gray, ok := img.(*image.Gray16)
		if !ok {
			t.Fatalf("decoded as %T, want *image.Gray16", img)
		}
		for y := 0; y < 9; y++ {
			for x := 0; x < 9; x++ {
				if got := gray.Gray16At(x, y).Y; got != grid[y][x] {
					t.Fatalf("pixel (%d,%d): got %d, want %d", x, y, got, grid[y][x])
				}
			}
		}
	})

	t.Run("rgb8", func(t *testing.T) {
		grid := rgbGrid(12, 7, 255)
		e, err := NewRGB("t.png", grid, 8, true)
		if err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(bytes.NewReader(encode(t, e)))
		if err != nil {
			t.Fatalf("stdlib rejects output: %v", err)
		}
		for y := 0; y < 7; y++ {
			for x := 0; x < 12; x++ {
				r, g, b, _ := img.At(x, y).RGBA()
				want := grid[y][x]
				if uint16(r>>8) != want.R || uint16(g>>8) != want.G || uint16(b>>8) != want.B {
					t.Fatalf("pixel (%d,%d): got (%d,%d,%d), want %v", x, y, r>>8, g>>8, b>>8, want)
				}
			}
		}
	})
}

func TestConstructionErrors(t *testing.T) {
	ok := [][]uint16{{1, 2}, {3, 4}}
	cases := []struct {
		name     string
		filename string
		data     [][]uint16
		depth    int
		want     error
	}{
		{"bad depth", "a.png", ok, 12, ErrInvalidParameter},
		{"bad extension", "a.bmp", ok, 8, ErrInvalidParameter},
		{"empty grid", "a.png", nil, 8, ErrMalformedInput},
		{"empty row", "a.png", [][]uint16{{}}, 8, ErrMalformedInput},
		{"ragged rows", "a.png", [][]uint16{{1, 2}, {3}}, 8, ErrMalformedInput},
		{"out of range", "a.png", [][]uint16{{256}}, 8, ErrMalformedInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGrayscale(tc.filename, tc.data, tc.depth, false)
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}

	_, err := NewRGB("a.png", [][]Pixel{{{R: 300}}}, 8, false)
	if !errors.Is(err, ErrMalformedInput) {
		t.Errorf("RGB out of range: got %v, want ErrMalformedInput", err)
	}
}

func TestMakeWritesFileAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	e, err := NewRGB(path, rgbGrid(8, 8, 255), 8, true)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Make(); err != nil {
		t.Fatalf("make: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("output does not decode: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}
}

func TestStringSummary(t *testing.T) {
	e, err := NewGrayscale("pic.png", grayGrid(3, 2, 255), 8, false)
	if err != nil {
		t.Fatal(err)
	}
	want := "PNG Encoder: pic.png, 3 x 2, 8 bit, Grayscale"
	if got := e.String(); got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
}

func BenchmarkEncodeRGB(b *testing.B) {
	grid := rgbGrid(256, 256, 255)
	e, err := NewRGB("b.png", grid, 8, true)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.EncodeTo(io.Discard)
	}
}
