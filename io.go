// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chanio

import (
	"errors"
	"io"
	"runtime"
	"time"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock means "no further progress without waiting". It is the
// cooperative-I/O control-flow signal from spec §4.2: an expected,
// non-failure outcome that a Sender/Receiver surfaces to its caller instead
// of blocking, so the caller can resume later by calling Send/Recv again.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrMore means "this completion is usable and more completions will
// follow immediately" — a multi-shot transport's way of saying the n bytes
// just returned are good, but it was not the terminal read/write of the
// underlying call. Unlike ErrWouldBlock it never implies a wait: readOnce
// and writeOnce absorb it internally rather than surfacing it, since chanio
// never relies on a single Read/Write being the last word on a frame.
var ErrMore = iox.ErrMore

// retrier holds the retry-on-WouldBlock policy shared by a Sender and
// Receiver, mirroring hayabusa-cloud-framer's RetryDelay knob.
type retrier struct {
	delay time.Duration
}

// wait applies the configured policy after a WouldBlock outcome. It returns
// whether the caller should retry the I/O call; false means "return
// ErrWouldBlock to our own caller now".
func (r retrier) wait() bool {
	if r.delay < 0 {
		return false
	}
	if r.delay == 0 {
		runtime.Gosched()
		return true
	}
	time.Sleep(r.delay)
	return true
}

// readOnce performs a single logical Read against rd, retrying internally
// on ErrInterrupted and on ErrWouldBlock per the retry policy. It never
// loops to fill p; partial progress (short reads) is legal and returned to
// the caller for its own resumable state tracking.
func readOnce(rd io.Reader, p []byte, r retrier) (int, error) {
	for {
		n, err := rd.Read(p)
		if len(p) != 0 && n == 0 && err == nil {
			// Guard against Readers that violate the io.Reader contract.
			return 0, io.ErrNoProgress
		}
		if errors.Is(err, ErrMore) {
			if n > 0 {
				return n, nil
			}
			continue
		}
		if n > 0 {
			if errors.Is(err, ErrInterrupted) || (errors.Is(err, ErrWouldBlock) && r.delay >= 0) {
				return n, nil
			}
			return n, err
		}
		if errors.Is(err, ErrInterrupted) {
			continue
		}
		if errors.Is(err, ErrWouldBlock) {
			if r.wait() {
				continue
			}
			return n, err
		}
		return n, err
	}
}

// writeOnce performs a single logical Write against wr, with the same
// retry semantics as readOnce.
func writeOnce(wr io.Writer, p []byte, r retrier) (int, error) {
	for {
		n, err := wr.Write(p)
		if len(p) != 0 && n == 0 && err == nil {
			return 0, io.ErrShortWrite
		}
		if errors.Is(err, ErrMore) {
			if n > 0 {
				return n, nil
			}
			continue
		}
		if n > 0 {
			if errors.Is(err, ErrInterrupted) || (errors.Is(err, ErrWouldBlock) && r.delay >= 0) {
				return n, nil
			}
			return n, err
		}
		if errors.Is(err, ErrInterrupted) {
			continue
		}
		if errors.Is(err, ErrWouldBlock) {
			if r.wait() {
				continue
			}
			return n, err
		}
		return n, err
	}
}
