// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chanio

import "io"

// duplexPipe joins an io.Pipe reader half and writer half into one
// ReadWriter, for use as an in-memory transport (spec §1, "in-memory
// duplex").
type duplexPipe struct {
	*io.PipeReader
	*io.PipeWriter
}

// Close closes both halves of the pipe. Defined explicitly because
// *io.PipeReader and *io.PipeWriter both have a Close method, which would
// otherwise be ambiguous on the embedding struct.
func (p duplexPipe) Close() error {
	rerr := p.PipeReader.Close()
	werr := p.PipeWriter.Close()
	if rerr != nil {
		return rerr
	}
	return werr
}

// NewPipe returns a synchronous in-memory ReadWriter suitable for testing a
// Channel without a real network connection. Writes block until a
// corresponding read drains them, matching io.Pipe's semantics.
func NewPipe() ReadWriter {
	r, w := io.Pipe()
	return duplexPipe{PipeReader: r, PipeWriter: w}
}

// NewDuplexPair returns two ReadWriters, each one's writes visible as the
// other's reads, forming a connected pair of endpoints for two Channels
// talking to each other in-process.
func NewDuplexPair() (a, b ReadWriter) {
	ar, bw := io.Pipe()
	br, aw := io.Pipe()
	return duplexPipe{PipeReader: ar, PipeWriter: aw}, duplexPipe{PipeReader: br, PipeWriter: bw}
}
