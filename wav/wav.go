// Package wav reads and writes PCM WAV files with the canonical
// 44-byte header: RIFF/WAVE, a 16-byte fmt chunk (audio format 1),
// then a single data chunk. Samples cross the API as float64 in
// [-1, 1]; on disk they are little-endian signed integers at 16, 24
// or 32 bits. Stereo data is interleaved left/right.
package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	DefaultSampleRate = 44100
	DefaultBitDepth   = 16

	Mono   = 1
	Stereo = 2
)

var (
	// ErrInvalidParameter reports an unsupported bit depth, channel
	// count or sample rate.
	ErrInvalidParameter = errors.New("wav: invalid parameter")

	// ErrMalformedInput reports a stream that is not a PCM WAV or is
	// truncated mid-sample.
	ErrMalformedInput = errors.New("wav: malformed input")
)

// Config describes the PCM layout of a stream.
type Config struct {
	SampleRate int
	BitDepth   int
	Channels   int
}

// DefaultConfig is 44.1 kHz, 16-bit, mono.
func DefaultConfig() Config {
	return Config{SampleRate: DefaultSampleRate, BitDepth: DefaultBitDepth, Channels: Mono}
}

func (c Config) validate() error {
	switch c.BitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: bit depth must be 16, 24 or 32, got %d", ErrInvalidParameter, c.BitDepth)
	}
	if c.Channels != Mono && c.Channels != Stereo {
		return fmt.Errorf("%w: channels must be 1 or 2, got %d", ErrInvalidParameter, c.Channels)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidParameter, c.SampleRate)
	}
	return nil
}

// Encode writes a complete WAV stream. Samples outside [-1, 1] are
// hard-clipped before quantization.
func Encode(w io.Writer, samples []float64, cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	bytesPerSample := cfg.BitDepth / 8
	dataBytes := len(samples) * bytesPerSample

	if err := writeHeader(w, cfg, dataBytes); err != nil {
		return err
	}

	maxVal := float64(int64(1)<<(cfg.BitDepth-1) - 1)
	buf := make([]byte, 0, dataBytes)
	for _, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		v := int64(s * maxVal)
		for i := 0; i < bytesPerSample; i++ {
			buf = append(buf, byte(v>>(8*i)))
		}
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("write samples: %w", err)
	}
	return nil
}

// Export writes samples to a WAV file.
func Export(filename string, samples []float64, cfg Config) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	if err := Encode(f, samples, cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeHeader emits the 44-byte canonical header.
func writeHeader(w io.Writer, cfg Config, dataBytes int) error {
	var hdr bytes.Buffer
	hdr.WriteString("RIFF")
	binary.Write(&hdr, binary.LittleEndian, uint32(36+dataBytes))
	hdr.WriteString("WAVE")
	hdr.WriteString("fmt ")
	binary.Write(&hdr, binary.LittleEndian, uint32(16)) // fmt chunk size
	binary.Write(&hdr, binary.LittleEndian, uint16(1))  // PCM
	binary.Write(&hdr, binary.LittleEndian, uint16(cfg.Channels))
	binary.Write(&hdr, binary.LittleEndian, uint32(cfg.SampleRate))
	byteRate := cfg.SampleRate * cfg.Channels * cfg.BitDepth / 8
	binary.Write(&hdr, binary.LittleEndian, uint32(byteRate))
	blockAlign := cfg.Channels * cfg.BitDepth / 8
	binary.Write(&hdr, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&hdr, binary.LittleEndian, uint16(cfg.BitDepth))
	hdr.WriteString("data")
	binary.Write(&hdr, binary.LittleEndian, uint32(dataBytes))

	if _, err := w.Write(hdr.Bytes()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return nil
}

// Decode reads a canonical-header WAV stream and returns the
// normalized channels. For mono input the right slice is empty.
func Decode(r io.Reader) (left, right []float64, cfg Config, err error) {
	var hdr [44]byte
	if _, err = io.ReadFull(r, hdr[:]); err != nil {
		return nil, nil, cfg, fmt.Errorf("%w: short header: %v", ErrMalformedInput, err)
	}
	if string(hdr[0:4]) != "RIFF" || string(hdr[8:12]) != "WAVE" {
		return nil, nil, cfg, fmt.Errorf("%w: not a RIFF/WAVE stream", ErrMalformedInput)
	}
	if string(hdr[12:16]) != "fmt " || string(hdr[36:40]) != "data" {
		return nil, nil, cfg, fmt.Errorf("%w: non-canonical chunk layout", ErrMalformedInput)
	}
	if format := binary.LittleEndian.Uint16(hdr[20:22]); format != 1 {
		return nil, nil, cfg, fmt.Errorf("%w: audio format %d is not PCM", ErrMalformedInput, format)
	}

	cfg.Channels = int(binary.LittleEndian.Uint16(hdr[22:24]))
	cfg.SampleRate = int(binary.LittleEndian.Uint32(hdr[24:28]))
	cfg.BitDepth = int(binary.LittleEndian.Uint16(hdr[34:36]))
	if err = cfg.validate(); err != nil {
		return nil, nil, cfg, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, cfg, fmt.Errorf("read samples: %w", err)
	}
	bytesPerSample := cfg.BitDepth / 8
	frame := bytesPerSample * cfg.Channels
	if len(data)%frame != 0 {
		return nil, nil, cfg, fmt.Errorf("%w: %d data bytes is not a whole number of frames", ErrMalformedInput, len(data))
	}

	maxVal := float64(int64(1)<<(cfg.BitDepth-1) - 1)
	for i := 0; i < len(data); i += frame {
		left = append(left, float64(readSigned(data[i:i+bytesPerSample]))/maxVal)
		if cfg.Channels == Stereo {
			right = append(right, float64(readSigned(data[i+bytesPerSample:i+frame]))/maxVal)
		}
	}
	return left, right, cfg, nil
}

// Import reads a WAV file and returns the normalized channels.
func Import(filename string) (left, right []float64, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", filename, err)
	}
	defer f.Close()
	left, right, _, err = Decode(f)
	return left, right, err
}

// readSigned decodes a little-endian signed integer of 2, 3 or 4
// bytes.
func readSigned(b []byte) int64 {
	var v int64
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | int64(b[i])
	}
	shift := 64 - 8*len(b)
	return v << shift >> shift
}
