// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package middleware

import (
	"fmt"

	"golang.org/x/crypto/blake2b"

	"chanproto.dev/chanio"
)

// macSize is blake2b-256's digest size.
const macSize = 32

// Auth is a chanio.ByteTransform that appends a keyed BLAKE2b MAC on
// Forward and verifies/strips it on Backward, guarding against tampering by
// anything downstream of the application (the wire header's own checksum
// only guards against accidental corruption, see header.go).
type Auth struct {
	key []byte
}

// NewAuth returns an Auth transform keyed by key. key is used directly as
// the BLAKE2b key, so it must be at most 64 bytes.
func NewAuth(key []byte) Auth {
	return Auth{key: key}
}

func (a Auth) mac(b []byte) ([]byte, error) {
	h, err := blake2b.New256(a.key)
	if err != nil {
		return nil, fmt.Errorf("chanio/middleware: new blake2b: %w", err)
	}
	h.Write(b)
	return h.Sum(nil), nil
}

// Forward appends a MAC of b to b.
func (a Auth) Forward(b []byte) ([]byte, error) {
	sum, err := a.mac(b)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b)+macSize)
	copy(out, b)
	copy(out[len(b):], sum)
	return out, nil
}

// Backward verifies the trailing MAC of b and returns b with it stripped.
func (a Auth) Backward(b []byte) ([]byte, error) {
	if len(b) < macSize {
		return nil, fmt.Errorf("chanio/middleware: auth: input shorter than mac")
	}
	payload, gotMAC := b[:len(b)-macSize], b[len(b)-macSize:]
	wantMAC, err := a.mac(payload)
	if err != nil {
		return nil, err
	}
	if !constantTimeEqual(gotMAC, wantMAC) {
		return nil, fmt.Errorf("chanio/middleware: auth: mac mismatch")
	}
	return payload, nil
}

func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}

var _ chanio.ByteTransform = Auth{}
