// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package middleware

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"chanproto.dev/chanio"
)

// Checksum is a chanio.ByteTransform that appends an 8-byte xxhash64 of the
// payload on Forward and verifies/strips it on Backward. This guards the
// application payload end-to-end; it is distinct from the per-packet
// Internet Checksum carried in every wire header (header.go), which only
// covers one packet's header bytes.
type Checksum struct{}

// NewChecksum returns a Checksum transform.
func NewChecksum() Checksum { return Checksum{} }

// Forward appends xxhash64(b) to b, big-endian.
func (Checksum) Forward(b []byte) ([]byte, error) {
	sum := xxhash.Sum64(b)
	out := make([]byte, len(b)+8)
	copy(out, b)
	binary.BigEndian.PutUint64(out[len(b):], sum)
	return out, nil
}

// Backward verifies the trailing xxhash64 of b and returns b with it stripped.
func (Checksum) Backward(b []byte) ([]byte, error) {
	if len(b) < 8 {
		return nil, fmt.Errorf("chanio/middleware: checksum: input shorter than digest")
	}
	payload, got := b[:len(b)-8], binary.BigEndian.Uint64(b[len(b)-8:])
	if xxhash.Sum64(payload) != got {
		return nil, fmt.Errorf("chanio/middleware: checksum: mismatch")
	}
	return payload, nil
}

var _ chanio.ByteTransform = Checksum{}
