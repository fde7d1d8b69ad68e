// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chanio

import (
	"bytes"
	"math/rand"
	"testing"
)

// TestSendRecvRoundTripsRandomizedPayloadSizes is the spec §8 property test:
// recv(send(v)) == v, swept over randomized payload sizes from zero up to
// several times MaxPayloadSize so both the single-packet and multi-packet
// frame paths get exercised, not just one hand-picked length.
func TestSendRecvRoundTripsRandomizedPayloadSizes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const trials = 64
	const maxMultiple = 3

	for i := 0; i < trials; i++ {
		size := rng.Intn(maxMultiple*MaxPayloadSize + 1)
		payload := make([]byte, size)
		rng.Read(payload)

		var buf bytes.Buffer
		s := NewSender[[]byte](&buf, rawCodec{})
		if err := s.Send(payload); err != nil {
			t.Fatalf("size %d: Send: %v", size, err)
		}

		rc := NewReceiver[[]byte](&buf, rawCodec{})
		got, err := rc.Recv()
		if err != nil {
			t.Fatalf("size %d: Recv: %v", size, err)
		}
		if !bytes.Equal(got, payload) {
			t.Fatalf("size %d: round trip mismatch, len got=%d want=%d", size, len(got), len(payload))
		}
	}
}

// TestSendRecvRoundTripsRandomizedConsecutiveFrames checks the same property
// holds across a run of consecutive frames sharing one Sender/Receiver pair,
// so frame id wraparound bookkeeping is exercised alongside payload sizing.
func TestSendRecvRoundTripsRandomizedConsecutiveFrames(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	const frames = 300
	const maxMultiple = 2

	var buf bytes.Buffer
	s := NewSender[[]byte](&buf, rawCodec{})
	rc := NewReceiver[[]byte](&buf, rawCodec{})

	payloads := make([][]byte, frames)
	for i := range payloads {
		size := rng.Intn(maxMultiple*MaxPayloadSize + 1)
		p := make([]byte, size)
		rng.Read(p)
		payloads[i] = p
		if err := s.Send(p); err != nil {
			t.Fatalf("frame %d (size %d): Send: %v", i, size, err)
		}
	}

	for i, want := range payloads {
		got, err := rc.Recv()
		if err != nil {
			t.Fatalf("frame %d: Recv: %v", i, err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("frame %d: round trip mismatch, len got=%d want=%d", i, len(got), len(want))
		}
	}
}
