package chanio

import (
	"bytes"
	"testing"
)

// onceBlockingReader returns ErrWouldBlock for every other call and only
// yields a single byte of real progress on the alternating call, forcing
// Recv to resume many times across one frame.
type onceBlockingReader struct {
	src     *bytes.Reader
	blocked bool
}

func (r *onceBlockingReader) Read(p []byte) (int, error) {
	if !r.blocked {
		r.blocked = true
		return 0, ErrWouldBlock
	}
	r.blocked = false
	if len(p) > 1 {
		p = p[:1]
	}
	return r.src.Read(p)
}

// onceBlockingWriter mirrors onceBlockingReader for the write side.
type onceBlockingWriter struct {
	dst     *bytes.Buffer
	blocked bool
}

func (w *onceBlockingWriter) Write(p []byte) (int, error) {
	if !w.blocked {
		w.blocked = true
		return 0, ErrWouldBlock
	}
	w.blocked = false
	if len(p) > 1 {
		p = p[:1]
	}
	return w.dst.Write(p)
}

func TestSenderResumesAcrossManyWouldBlockReturns(t *testing.T) {
	var dst bytes.Buffer
	w := &onceBlockingWriter{dst: &dst}
	s := NewSender[[]byte](w, rawCodec{}, WithNonblock())

	payload := []byte("resumable payload that spans several single-byte writes")
	for {
		err := s.Send(payload)
		if err == nil {
			break
		}
		if err != ErrWouldBlock {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	hdr, err := decodeHeader(dst.Bytes()[:HeaderSize])
	if err != nil {
		t.Fatalf("decode header: %v", err)
	}
	if hdr.PayloadLen() != len(payload) {
		t.Fatalf("payload len = %d, want %d", hdr.PayloadLen(), len(payload))
	}
	if !bytes.Equal(dst.Bytes()[HeaderSize:], payload) {
		t.Fatalf("payload mismatch after resumed send")
	}
}

func TestReceiverResumesAcrossManyWouldBlockReturns(t *testing.T) {
	var buf bytes.Buffer
	writeFrame(&buf, 0, []byte("resumable payload that spans several single-byte reads"))

	r := &onceBlockingReader{src: bytes.NewReader(buf.Bytes())}
	rc := NewReceiver[[]byte](r, rawCodec{}, WithNonblock())

	var got []byte
	for {
		v, err := rc.Recv()
		if err == nil {
			got = v
			break
		}
		if err != ErrWouldBlock {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if string(got) != "resumable payload that spans several single-byte reads" {
		t.Fatalf("got %q", got)
	}
}
