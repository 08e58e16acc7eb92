package pngen

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// EncodeTo writes the complete PNG stream: signature, IHDR, one IDAT,
// IEND. The writer is caller-owned; on error the stream is truncated
// and must be discarded.
func (e *Encoder) EncodeTo(w io.Writer) error {
	if _, err := w.Write(pngSignature); err != nil {
		return fmt.Errorf("write signature: %w", err)
	}
	if err := writeChunk(w, "IHDR", e.header()); err != nil {
		return err
	}
	payload, err := e.imageData()
	if err != nil {
		return err
	}
	if err := writeChunk(w, "IDAT", payload); err != nil {
		return err
	}
	return writeChunk(w, "IEND", nil)
}

// Make writes the PNG to the configured filename. The destination is
// opened only here, never at construction. Output goes to a .tmp
// sibling first and is renamed into place after a clean close, so a
// failed encode never leaves a truncated .png behind.
func (e *Encoder) Make() error {
	tmp := e.filename + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create %s: %w", tmp, err)
	}
	if err := e.EncodeTo(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, e.filename); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename to %s: %w", e.filename, err)
	}
	return nil
}

// header builds the 13-byte IHDR payload.
func (e *Encoder) header() []byte {
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(e.width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(e.height))
	ihdr[8] = byte(e.depth)
	ihdr[9] = byte(e.color)
	// compression, filter and interlace methods are all fixed to 0.
	return ihdr
}

// imageData compresses the raw scanlines into the IDAT payload.
func (e *Encoder) imageData() ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, e.level)
	if err != nil {
		return nil, fmt.Errorf("zlib writer: %w", err)
	}
	if _, err := zw.Write(e.scanlines()); err != nil {
		return nil, fmt.Errorf("compress scanlines: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("flush zlib: %w", err)
	}
	return buf.Bytes(), nil
}

// scanlines serializes the pixel grid: per row, a zero filter byte
// followed by big-endian samples at 1 or 2 bytes per channel. The
// byte layout is the only thing that differs between color modes.
func (e *Encoder) scanlines() []byte {
	bytesPerSample := e.depth / 8
	rowLen := 1 + e.width*e.color.channels()*bytesPerSample
	raw := make([]byte, 0, rowLen*e.height)

	for y := 0; y < e.height; y++ {
		raw = append(raw, 0) // filter type None
		switch e.color {
		case Grayscale:
			for _, v := range e.gray[y] {
				raw = appendSample(raw, v, bytesPerSample)
			}
		case RGB:
			for _, p := range e.rgb[y] {
				raw = appendSample(raw, p.R, bytesPerSample)
				raw = appendSample(raw, p.G, bytesPerSample)
				raw = appendSample(raw, p.B, bytesPerSample)
			}
		}
	}
	return raw
}

func appendSample(dst []byte, v uint16, size int) []byte {
	if size == 2 {
		dst = append(dst, byte(v>>8))
	}
	return append(dst, byte(v))
}
