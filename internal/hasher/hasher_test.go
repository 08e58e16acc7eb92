package hasher

import (
	"bytes"
	"testing"
)

func TestContentHashStable(t *testing.T) {
	data := []byte("the quick brown fox")
	a := ContentHash(data, 16)
	b := ContentHash(data, 16)
	if a != b {
		t.Errorf("hash not deterministic: %s vs %s", a, b)
	}
	if len(a) != 16 {
		t.Errorf("hash length: got %d, want 16", len(a))
	}
	if short := ContentHash(data, 8); short != a[:8] {
		t.Errorf("truncation: got %s, want prefix of %s", short, a)
	}
}

func TestContentHashDiffers(t *testing.T) {
	if ContentHash([]byte("a"), 16) == ContentHash([]byte("b"), 16) {
		t.Error("different inputs produced the same hash")
	}
}

func TestContentHashReader(t *testing.T) {
	data := []byte("stream me")
	want := ContentHash(data, 16)
	got, err := ContentHashReader(bytes.NewReader(data), 16)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("reader hash %s != slice hash %s", got, want)
	}
}
