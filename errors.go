// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chanio

import (
	"errors"
	"fmt"
)

// Kind classifies a chanio error.
type Kind uint8

const (
	KindIO Kind = iota
	KindVersionMismatch
	KindChecksumMismatch
	KindInvalidLength
	KindInvalidFlags
	KindOutOfOrder
	KindPayloadTooLarge
	KindSerde
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindVersionMismatch:
		return "version_mismatch"
	case KindChecksumMismatch:
		return "checksum_mismatch"
	case KindInvalidLength:
		return "invalid_length"
	case KindInvalidFlags:
		return "invalid_flags"
	case KindOutOfOrder:
		return "out_of_order"
	case KindPayloadTooLarge:
		return "payload_too_large"
	case KindSerde:
		return "serde"
	default:
		return "unknown"
	}
}

// Error is the error type returned by Sender and Receiver operations.
type Error struct {
	Kind Kind
	msg  string
	err  error // wrapped cause, if any
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("chanio: %s: %v", e.msg, e.err)
	}
	return "chanio: " + e.msg
}

func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is a *Error with the same Kind, so callers can
// write errors.Is(err, chanio.ErrPayloadTooLarge) against the sentinel values below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newErr(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, msg: msg, err: cause}
}

// Sentinel values for errors.Is comparisons against the Kind-bearing
// protocol errors. Fields on these zero values are not meaningful; compare
// only on Kind via Error.Is.
var (
	// ErrChecksumMismatch means a decoded header's Internet Checksum did not verify.
	ErrChecksumMismatch = newErr(KindChecksumMismatch, "checksum mismatch", nil)
	// ErrInvalidLength means a header's length field is out of range.
	ErrInvalidLength = newErr(KindInvalidLength, "invalid length", nil)
	// ErrInvalidFlags means a header set a reserved flag bit.
	ErrInvalidFlags = newErr(KindInvalidFlags, "invalid flags", nil)
	// ErrPayloadTooLarge means the accumulated payload for one frame exceeded MaxPayload.
	ErrPayloadTooLarge = newErr(KindPayloadTooLarge, "payload too large", nil)
)

// VersionMismatchError reports a header whose version field does not match
// the configured protocol version. Fatal; poisons the direction.
type VersionMismatchError struct {
	Expected, Got uint16
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("chanio: version mismatch: expected %#04x, got %#04x", e.Expected, e.Got)
}

func (e *VersionMismatchError) Is(target error) bool {
	_, ok := target.(*VersionMismatchError)
	return ok
}

// OutOfOrderError reports a frame id that did not match the receiver's
// expected next id. Fatal; poisons the direction.
type OutOfOrderError struct {
	Expected, Got uint8
}

func (e *OutOfOrderError) Error() string {
	return fmt.Sprintf("chanio: out of order: expected id %d, got %d", e.Expected, e.Got)
}

func (e *OutOfOrderError) Is(target error) bool {
	_, ok := target.(*OutOfOrderError)
	return ok
}

// SerdeError wraps a Serializer/Deserializer failure. Non-fatal: it never
// poisons a direction because the transport position is still consistent.
type SerdeError struct {
	Err error
}

func (e *SerdeError) Error() string { return fmt.Sprintf("chanio: serde: %v", e.Err) }
func (e *SerdeError) Unwrap() error { return e.Err }
func (e *SerdeError) Is(target error) bool {
	_, ok := target.(*SerdeError)
	return ok
}

// ioErr wraps an underlying transport error. Whether it poisons depends on
// the cause: a clean EOF at the very start of a Recv call does not,
// everything else mid-frame does. See receiver.go/sender.go.
func ioErr(cause error) *Error {
	return newErr(KindIO, "io", cause)
}

// ErrInterrupted is the sentinel a Reader/Writer implementation may return
// (matched with errors.Is) to request that chanio retry the same operation
// transparently, analogous to POSIX EINTR. chanio never returns it to callers.
var ErrInterrupted = errors.New("chanio: interrupted")
