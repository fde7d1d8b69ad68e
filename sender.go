// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chanio

import (
	"io"

	"go.uber.org/zap"
)

type sendPhase uint8

const (
	sendPhaseHeader sendPhase = iota
	sendPhasePayload
)

// Sender serializes values of type T and writes them to w as one or more
// framed packets sharing a monotonically increasing id. A Sender exclusively
// owns w and its serializer for its lifetime; concurrent Send calls on the
// same Sender are not supported (see spec §5).
type Sender[T any] struct {
	w io.Writer
	s Serializer[T]
	r retrier

	nextID uint8
	poison error
	logger *zap.Logger
	stats  StatsHook

	// In-flight frame state, resumable across ErrWouldBlock returns so a
	// nonblocking transport can suspend Send and resume it on the next call
	// exactly where it left off (spec §4.4, §5 "suspension points").
	inFlight   bool
	serialized []byte
	chunkIdx   int
	chunkCount int
	phase      sendPhase
	hdr        [HeaderSize]byte
	hdrOff     int
	payloadOff int
}

// NewSender returns a Sender writing framed messages to w, using s to
// serialize each value.
func NewSender[T any](w io.Writer, s Serializer[T], opts ...Option) *Sender[T] {
	o := resolveOptions(opts)
	return &Sender[T]{
		w:      w,
		s:      s,
		r:      retrier{delay: o.RetryDelay},
		logger: o.Logger,
		stats:  o.Stats,
	}
}

// Send serializes v and writes it as a frame. next_id advances only after
// the whole frame has been written, so the sender's notion of "next id"
// never diverges from the last frame it actually completed. ErrWouldBlock
// leaves the frame in flight without poisoning: the next Send call resumes
// it where it stopped and does not serialize its own argument. Any other
// I/O error poisons the Sender: later Send calls return that same error and
// write nothing, so the unfinished frame's id is not reused.
func (s *Sender[T]) Send(v T) error {
	if s.poison != nil {
		return s.poison
	}

	if !s.inFlight {
		data, err := s.s.Serialize(v)
		if err != nil {
			return &SerdeError{Err: err}
		}
		s.serialized = data
		s.chunkCount = chunkCount(len(data))
		s.chunkIdx = 0
		s.phase = sendPhaseHeader
		s.hdrOff = 0
		s.payloadOff = 0
		s.inFlight = true
	}

	for s.chunkIdx < s.chunkCount {
		start, end := chunkBounds(s.chunkIdx, len(s.serialized))
		more := s.chunkIdx < s.chunkCount-1

		if s.phase == sendPhaseHeader {
			if s.hdrOff == 0 {
				putHeader(s.hdr[:], s.nextID, end-start, more)
			}
			n, err := writeOnce(s.w, s.hdr[s.hdrOff:HeaderSize], s.r)
			s.hdrOff += n
			if err != nil {
				return s.fail(err)
			}
			if s.hdrOff < HeaderSize {
				continue
			}
			s.phase = sendPhasePayload
		}

		chunk := s.serialized[start:end]
		for s.payloadOff < len(chunk) {
			n, err := writeOnce(s.w, chunk[s.payloadOff:], s.r)
			s.payloadOff += n
			if err != nil {
				return s.fail(err)
			}
		}

		s.chunkIdx++
		s.hdrOff = 0
		s.payloadOff = 0
		s.phase = sendPhaseHeader
	}

	frameID := s.nextID
	s.nextID++
	s.inFlight = false
	packets := s.chunkCount
	s.serialized = nil
	s.stats.OnFrameSent(frameID, packets)
	return nil
}

// fail surfaces an I/O error, returning ErrWouldBlock unpoisoned so the
// caller can resume, and poisoning the direction for anything else.
func (s *Sender[T]) fail(err error) error {
	if err == ErrWouldBlock {
		return err
	}
	wrapped := ioErr(err)
	s.poison = wrapped
	s.stats.OnPoison(KindIO, wrapped)
	logPoison(s.logger, "send", s.nextID, wrapped)
	return wrapped
}
