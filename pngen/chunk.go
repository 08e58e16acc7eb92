package pngen

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
)

// pngSignature is the fixed 8-byte magic that opens every PNG stream.
var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// writeChunk frames one chunk: 4-byte big-endian payload length, the
// 4-byte ASCII type code, the payload, and a big-endian CRC-32 over
// type code plus payload. Every chunk in the stream goes through here,
// including IEND with its empty payload.
func writeChunk(w io.Writer, typ string, payload []byte) error {
	if len(typ) != 4 {
		return fmt.Errorf("pngen: chunk type %q is not 4 bytes", typ)
	}
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(len(payload)))
	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("write %s length: %w", typ, err)
	}

	sum := crc32.NewIEEE()
	body := io.MultiWriter(w, sum)
	if _, err := io.WriteString(body, typ); err != nil {
		return fmt.Errorf("write %s type: %w", typ, err)
	}
	if _, err := body.Write(payload); err != nil {
		return fmt.Errorf("write %s payload: %w", typ, err)
	}
	if _, err := w.Write(sum.Sum(buf[:0])); err != nil {
		return fmt.Errorf("write %s crc: %w", typ, err)
	}
	return nil
}
