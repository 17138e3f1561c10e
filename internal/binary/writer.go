package binary

import (
	"encoding/binary"
	"io"
)

// SafeWriter wraps io.Writer with position tracking. All multi-byte values
// are written big-endian, as PNG requires.
type SafeWriter struct {
	w      io.Writer
	offset int64
}

// NewSafeWriter creates a new SafeWriter.
func NewSafeWriter(w io.Writer) *SafeWriter {
	return &SafeWriter{w: w}
}

// Offset returns the number of bytes written so far.
func (sw *SafeWriter) Offset() int64 {
	return sw.offset
}

// WriteBytes writes raw bytes to the underlying writer.
func (sw *SafeWriter) WriteBytes(b []byte) error {
	n, err := sw.w.Write(b)
	sw.offset += int64(n)
	return err
}

// WriteU32 writes a big-endian uint32.
func (sw *SafeWriter) WriteU32(val uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], val)
	return sw.WriteBytes(buf[:])
}
