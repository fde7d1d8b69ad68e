// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chanio

import (
	"io"

	"go.uber.org/zap"
)

type recvPhase uint8

const (
	recvPhaseHeader recvPhase = iota
	recvPhasePayload
)

// Receiver reads packets from r, validates them, accumulates payloads
// across a frame, and deserializes the result with d. A Receiver
// exclusively owns r and its deserializer for its lifetime; concurrent Recv
// calls on the same Receiver are not supported (see spec §5).
type Receiver[T any] struct {
	r io.Reader
	d Deserializer[T]
	rt retrier

	expectedID uint8
	maxPayload int64
	poison     error
	logger     *zap.Logger
	stats      StatsHook

	// Resumable state machine, mirroring spec §4.5's S0-S5 and the
	// teacher's forward.go explicit-state-field pattern, so a nonblocking
	// transport can suspend Recv mid-header or mid-payload and resume it on
	// the next call without losing progress.
	phase       recvPhase
	hdr         [HeaderSize]byte
	hdrOff      int
	haveFrameID bool
	frameID     uint8
	packetCount int
	curHeader   Header
	payloadDst  []byte
	payloadOff  int
	accum       growBuffer
}

// NewReceiver returns a Receiver reading framed messages from r, using d to
// deserialize the reassembled payload of each frame.
func NewReceiver[T any](r io.Reader, d Deserializer[T], opts ...Option) *Receiver[T] {
	o := resolveOptions(opts)
	return &Receiver[T]{
		r:          r,
		d:          d,
		rt:         retrier{delay: o.RetryDelay},
		maxPayload: o.MaxPayload,
		logger:     o.Logger,
		stats:      o.Stats,
	}
}

// Recv reads one frame's worth of packets and deserializes the
// reassembled payload. A clean end-of-stream before any byte of a fresh
// frame has been read returns io.EOF, unpoisoned, so callers can treat it
// as graceful shutdown; any other end-of-stream poisons the direction with
// io.ErrUnexpectedEOF wrapped in an IO error.
func (rc *Receiver[T]) Recv() (T, error) {
	var zero T

	for {
		if rc.poison != nil {
			return zero, rc.poison
		}

		switch rc.phase {
		case recvPhaseHeader:
			atFrameStart := rc.hdrOff == 0 && !rc.haveFrameID
			n, err := readOnce(rc.r, rc.hdr[rc.hdrOff:HeaderSize], rc.rt)
			rc.hdrOff += n
			if err != nil {
				if err == ErrWouldBlock {
					return zero, err
				}
				if err == io.EOF {
					if atFrameStart && n == 0 {
						return zero, io.EOF
					}
					return zero, rc.failIO(io.ErrUnexpectedEOF)
				}
				return zero, rc.failIO(err)
			}
			if rc.hdrOff < HeaderSize {
				continue
			}

			hdr, herr := decodeHeader(rc.hdr[:])
			rc.hdrOff = 0
			if herr != nil {
				return zero, rc.failProtocol(herr)
			}
			if !rc.haveFrameID {
				rc.frameID = hdr.ID
				rc.haveFrameID = true
				rc.packetCount = 0
				if hdr.ID != rc.expectedID {
					e := &OutOfOrderError{Expected: rc.expectedID, Got: hdr.ID}
					return zero, rc.failProtocol(e)
				}
			} else if hdr.ID != rc.frameID {
				e := &OutOfOrderError{Expected: rc.frameID, Got: hdr.ID}
				return zero, rc.failProtocol(e)
			}
			rc.packetCount++
			rc.curHeader = hdr

			payloadLen := hdr.PayloadLen()
			if rc.maxPayload > 0 && int64(rc.accum.len())+int64(payloadLen) > rc.maxPayload {
				return zero, rc.failProtocol(ErrPayloadTooLarge)
			}
			rc.payloadDst = rc.accum.grow(payloadLen)
			rc.payloadOff = 0
			rc.phase = recvPhasePayload

		case recvPhasePayload:
			need := len(rc.payloadDst)
			for rc.payloadOff < need {
				n, err := readOnce(rc.r, rc.payloadDst[rc.payloadOff:need], rc.rt)
				rc.payloadOff += n
				if err != nil {
					if err == ErrWouldBlock {
						return zero, err
					}
					if err == io.EOF {
						return zero, rc.failIO(io.ErrUnexpectedEOF)
					}
					return zero, rc.failIO(err)
				}
			}

			if rc.curHeader.MoreData() {
				rc.phase = recvPhaseHeader
				continue
			}

			frameID := rc.frameID
			packets := rc.packetCount
			rc.expectedID++
			rc.haveFrameID = false
			rc.phase = recvPhaseHeader

			data := rc.accum.bytes()
			v, derr := rc.d.Deserialize(data)
			rc.accum.reset()
			if derr != nil {
				return zero, &SerdeError{Err: derr}
			}
			rc.stats.OnFrameReceived(frameID, packets)
			return v, nil
		}
	}
}

func (rc *Receiver[T]) failIO(cause error) error {
	e := ioErr(cause)
	rc.poison = e
	rc.stats.OnPoison(KindIO, e)
	logPoison(rc.logger, "recv", rc.frameID, e)
	return e
}

func (rc *Receiver[T]) failProtocol(err error) error {
	rc.poison = err
	kind := KindIO
	switch err.(type) {
	case *VersionMismatchError:
		kind = KindVersionMismatch
	case *OutOfOrderError:
		kind = KindOutOfOrder
	case *Error:
		kind = err.(*Error).Kind
	}
	rc.stats.OnPoison(kind, err)
	logPoison(rc.logger, "recv", rc.frameID, err)
	return err
}
