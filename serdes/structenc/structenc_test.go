package structenc

import (
	"strings"
	"testing"
)

type record struct {
	ID   int32
	Name string `struc:"[16]byte"`
}

func TestCodecRoundTrip(t *testing.T) {
	c := New[record]()
	b, err := c.Serialize(&record{ID: 42, Name: "widget"})
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	got, err := c.Deserialize(b)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if got.ID != 42 {
		t.Fatalf("ID = %d, want 42", got.ID)
	}
	if strings.TrimRight(got.Name, "\x00") != "widget" {
		t.Fatalf("Name = %q, want %q", got.Name, "widget")
	}
}
