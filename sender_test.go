package chanio

import (
	"bytes"
	"testing"
)

func TestSenderWritesWellFormedFrame(t *testing.T) {
	var buf bytes.Buffer
	s := NewSender[[]byte](&buf, rawCodec{})

	if err := s.Send([]byte("hello")); err != nil {
		t.Fatalf("Send: %v", err)
	}

	hdr, err := decodeHeader(buf.Bytes()[:HeaderSize])
	if err != nil {
		t.Fatalf("decode header: %v", err)
	}
	if hdr.MoreData() {
		t.Fatalf("single-packet frame should not set MORE_DATA")
	}
	if hdr.ID != 0 {
		t.Fatalf("first frame id = %d, want 0", hdr.ID)
	}
	payload := buf.Bytes()[HeaderSize:]
	if string(payload) != "hello" {
		t.Fatalf("payload = %q, want %q", payload, "hello")
	}
}

func TestSenderAdvancesFrameIDAndWraps(t *testing.T) {
	var buf bytes.Buffer
	s := NewSender[[]byte](&buf, rawCodec{})

	for i := 0; i < 257; i++ {
		buf.Reset()
		if err := s.Send([]byte("x")); err != nil {
			t.Fatalf("Send #%d: %v", i, err)
		}
		hdr, err := decodeHeader(buf.Bytes()[:HeaderSize])
		if err != nil {
			t.Fatalf("decode header #%d: %v", i, err)
		}
		if want := uint8(i % 256); hdr.ID != want {
			t.Fatalf("Send #%d: id = %d, want %d", i, hdr.ID, want)
		}
	}
}

func TestSenderSplitsMultiPacketFrame(t *testing.T) {
	var buf bytes.Buffer
	s := NewSender[[]byte](&buf, rawCodec{})

	data := make([]byte, MaxPayloadSize+10)
	if err := s.Send(data); err != nil {
		t.Fatalf("Send: %v", err)
	}

	hdr1, err := decodeHeader(buf.Bytes()[:HeaderSize])
	if err != nil {
		t.Fatalf("decode first header: %v", err)
	}
	if !hdr1.MoreData() {
		t.Fatalf("first packet of split frame must set MORE_DATA")
	}
	if hdr1.PayloadLen() != MaxPayloadSize {
		t.Fatalf("first payload len = %d, want %d", hdr1.PayloadLen(), MaxPayloadSize)
	}

	secondStart := HeaderSize + MaxPayloadSize
	hdr2, err := decodeHeader(buf.Bytes()[secondStart : secondStart+HeaderSize])
	if err != nil {
		t.Fatalf("decode second header: %v", err)
	}
	if hdr2.MoreData() {
		t.Fatalf("terminal packet must not set MORE_DATA")
	}
	if hdr2.ID != hdr1.ID {
		t.Fatalf("split frame packets must share id: %d != %d", hdr2.ID, hdr1.ID)
	}
	if hdr2.PayloadLen() != 10 {
		t.Fatalf("second payload len = %d, want 10", hdr2.PayloadLen())
	}
}

func TestSenderPoisonsAfterFatalIOError(t *testing.T) {
	s := NewSender[[]byte](failingWriter{}, rawCodec{})

	err1 := s.Send([]byte("a"))
	if err1 == nil {
		t.Fatalf("expected error from failing writer")
	}
	err2 := s.Send([]byte("b"))
	if err2 != err1 {
		t.Fatalf("second Send should return the same poisoned error")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errPermanent }

var errPermanent = newErr(KindIO, "boom", nil)
