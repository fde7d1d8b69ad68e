// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package chanio provides a bidirectional, typed message exchange layer over
// arbitrary byte-oriented transports.
//
// Semantics and design:
//   - Wire format: each message is split into one or more fixed-header
//     packets sharing a monotonically increasing frame id, the last of
//     which clears the MORE_DATA flag. See header.go.
//   - Non-blocking first: ErrWouldBlock from the underlying transport is a
//     control-flow signal, not a fatal error — Send/Recv preserve their
//     in-progress cursor across it and resume on the next call.
//   - Typed serialization: Serializer[T]/Deserializer[T] decouple the wire
//     framing from the message encoding; transform.go lets callers chain
//     byte-level middleware (compression, checksums, authentication) around
//     either one.
//   - Fatal transport or protocol errors poison a Sender or Receiver: once
//     latched, every subsequent call on that direction returns the same
//     error. The two directions of a Channel poison independently.
package chanio

import "io"

// Channel pairs a Sender and Receiver of possibly different types over one
// connection, for the common case of a duplex byte stream carrying both
// directions of traffic (spec §1, "bidirectional").
type Channel[S, R any] struct {
	Tx *Sender[S]
	Rx *Receiver[R]
}

// ReadWriter is the minimum a transport must satisfy to back a Channel.
type ReadWriter interface {
	io.Reader
	io.Writer
	io.Closer
}

// NewChannel builds a Channel over rw, serializing outbound values of type S
// with s and deserializing inbound values of type R with d. The same Options
// apply to both directions.
func NewChannel[S, R any](rw ReadWriter, s Serializer[S], d Deserializer[R], opts ...Option) *Channel[S, R] {
	return &Channel[S, R]{
		Tx: NewSender[S](rw, s, opts...),
		Rx: NewReceiver[R](rw, d, opts...),
	}
}

// Send serializes and writes v; see Sender.Send.
func (c *Channel[S, R]) Send(v S) error { return c.Tx.Send(v) }

// Recv reads and deserializes the next value; see Receiver.Recv.
func (c *Channel[S, R]) Recv() (R, error) { return c.Rx.Recv() }
