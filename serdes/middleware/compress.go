// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package middleware provides optional bytes-to-bytes transforms for
// chaining around a chanio Serializer/Deserializer: compression,
// authentication, and checksum integrity (spec §4.3).
package middleware

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"chanproto.dev/chanio"
)

// Compress is a chanio.ByteTransform that zstd-compresses on Forward and
// decompresses on Backward.
type Compress struct {
	level zstd.EncoderLevel
}

// NewCompress returns a Compress transform at the given zstd level. A zero
// value of level resolves to zstd.SpeedDefault.
func NewCompress(level zstd.EncoderLevel) Compress {
	if level == 0 {
		level = zstd.SpeedDefault
	}
	return Compress{level: level}
}

// Forward compresses b.
func (c Compress) Forward(b []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(c.level))
	if err != nil {
		return nil, fmt.Errorf("chanio/middleware: new zstd encoder: %w", err)
	}
	defer enc.Close()
	return enc.EncodeAll(b, nil), nil
}

// Backward decompresses b.
func (c Compress) Backward(b []byte) ([]byte, error) {
	dec, err := zstd.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("chanio/middleware: new zstd decoder: %w", err)
	}
	defer dec.Close()
	out, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("chanio/middleware: zstd decode: %w", err)
	}
	return out, nil
}

var _ chanio.ByteTransform = Compress{}
