package binary

import (
	"bytes"
	"strings"
	"testing"
)

func TestSafeReader_ReadAt_Success(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)))

	buf := make([]byte, 2)
	err := sr.ReadAt(buf, 0, "test read")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if buf[0] != 0x01 || buf[1] != 0x02 {
		t.Errorf("expected [0x01, 0x02], got [0x%02x, 0x%02x]", buf[0], buf[1])
	}
}

func TestSafeReader_ReadAt_OutOfBounds(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)))

	buf := make([]byte, 2)
	err := sr.ReadAt(buf, 10, "out of bounds read")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if !strings.Contains(err.Error(), "out of bounds read") {
		t.Errorf("error should contain context: %v", err)
	}
}

func TestSafeReader_ReadAt_Overrun(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)))

	buf := make([]byte, 3)
	err := sr.ReadAt(buf, 2, "overrun read")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestSafeReader_ReadU32(t *testing.T) {
	data := []byte{0x00, 0x00, 0x00, 0x0d}
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)))

	val, err := sr.ReadU32(0, "chunk length")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != 13 {
		t.Errorf("expected 13, got %d", val)
	}
}

func TestSafeReader_Remaining(t *testing.T) {
	sr := NewSafeReader(bytes.NewReader(make([]byte, 10)), 10)

	if got := sr.Remaining(4); got != 6 {
		t.Errorf("Remaining(4) = %d, want 6", got)
	}
	if got := sr.Remaining(10); got != 0 {
		t.Errorf("Remaining(10) = %d, want 0", got)
	}
	if got := sr.Remaining(20); got != 0 {
		t.Errorf("Remaining(20) = %d, want 0", got)
	}
}

func TestReader_Sequential(t *testing.T) {
	// length, type, one data byte
	data := []byte{0x00, 0x00, 0x00, 0x01, 'r', 'u', 'S', 'T', 0xab}
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)))
	r := NewReader(sr, 0)

	length, err := r.ReadU32("length")
	if err != nil {
		t.Fatalf("ReadU32: %v", err)
	}
	if length != 1 {
		t.Errorf("length = %d, want 1", length)
	}

	typ, err := r.ReadBytes(4, "type")
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	if string(typ) != "ruST" {
		t.Errorf("type = %q, want %q", typ, "ruST")
	}

	if r.Offset() != 8 {
		t.Errorf("offset = %d, want 8", r.Offset())
	}

	payload, err := r.ReadBytes(int(length), "data")
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	if payload[0] != 0xab {
		t.Errorf("data = %#x, want 0xab", payload[0])
	}
}

func TestReader_ReadBytes_ZeroLength(t *testing.T) {
	sr := NewSafeReader(bytes.NewReader([]byte{0x01}), 1)
	r := NewReader(sr, 1) // at end of buffer

	buf, err := r.ReadBytes(0, "empty data")
	if err != nil {
		t.Fatalf("zero-length read should succeed at EOF: %v", err)
	}
	if len(buf) != 0 {
		t.Errorf("expected empty slice, got %d bytes", len(buf))
	}
}
