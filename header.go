// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chanio

import (
	"encoding/binary"

	"chanproto.dev/chanio/internal/checksum"
)

// ProtocolVersion is the fixed wire version this package speaks. A header
// whose version field does not match is a VersionMismatchError.
const ProtocolVersion uint16 = 0xFD3F

// HeaderSize is the fixed byte length of every packet header.
const HeaderSize = 8

// MaxPacketSize is the largest a header's length field may declare.
const MaxPacketSize = 1<<16 - 1

// MaxPayloadSize is the largest payload a single packet may carry.
const MaxPayloadSize = MaxPacketSize - HeaderSize

// flagMoreData marks a packet as a non-terminal fragment of its frame.
const flagMoreData uint8 = 1 << 7

// flagReservedMask covers bits 0-6, which must be zero on the wire.
const flagReservedMask uint8 = 0x7F

// Header is the fixed 8-byte structure preceding every packet.
type Header struct {
	Version  uint16
	Length   uint16
	Checksum uint16
	Flags    uint8
	ID       uint8
}

// MoreData reports whether the MORE_DATA flag is set.
func (h Header) MoreData() bool { return h.Flags&flagMoreData != 0 }

// PayloadLen returns the payload length implied by Length.
func (h Header) PayloadLen() int { return int(h.Length) - HeaderSize }

// putHeader encodes a header into dst[:HeaderSize] for a packet with the
// given frame id, payload length, and continuation flag. It computes and
// patches the checksum field.
func putHeader(dst []byte, id uint8, payloadLen int, more bool) {
	_ = dst[HeaderSize-1] // bounds check hint, mirrors teacher's fixed-slice style
	binary.BigEndian.PutUint16(dst[0:2], ProtocolVersion)
	binary.BigEndian.PutUint16(dst[2:4], uint16(HeaderSize+payloadLen))
	dst[4], dst[5] = 0, 0
	var flags uint8
	if more {
		flags = flagMoreData
	}
	dst[6] = flags
	dst[7] = id
	sum := checksum.Sum16(dst[:HeaderSize])
	binary.BigEndian.PutUint16(dst[4:6], sum)
}

// decodeHeader parses and validates an 8-byte candidate header, in the
// order mandated by spec §4.1: checksum, then version, then length, then
// flags.
func decodeHeader(src []byte) (Header, error) {
	if !checksum.Verify16(src[:HeaderSize]) {
		return Header{}, ErrChecksumMismatch
	}
	version := binary.BigEndian.Uint16(src[0:2])
	if version != ProtocolVersion {
		return Header{}, &VersionMismatchError{Expected: ProtocolVersion, Got: version}
	}
	length := binary.BigEndian.Uint16(src[2:4])
	if length < HeaderSize {
		return Header{}, ErrInvalidLength
	}
	flags := src[6]
	if flags&flagReservedMask != 0 {
		return Header{}, ErrInvalidFlags
	}
	return Header{
		Version:  version,
		Length:   length,
		Checksum: binary.BigEndian.Uint16(src[4:6]),
		Flags:    flags,
		ID:       src[7],
	}, nil
}
