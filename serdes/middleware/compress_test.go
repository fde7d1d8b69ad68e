package middleware

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func TestCompressRoundTrip(t *testing.T) {
	c := NewCompress(zstd.SpeedDefault)
	payload := bytes.Repeat([]byte("hello world "), 100)

	framed, err := c.Forward(payload)
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}
	if len(framed) >= len(payload) {
		t.Fatalf("compressed size %d not smaller than input %d", len(framed), len(payload))
	}

	got, err := c.Backward(framed)
	if err != nil {
		t.Fatalf("Backward: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("round trip mismatch")
	}
}

func TestCompressZeroLevelDefaultsToSpeedDefault(t *testing.T) {
	c := NewCompress(0)
	if c.level != zstd.SpeedDefault {
		t.Fatalf("level = %v, want SpeedDefault", c.level)
	}
}
