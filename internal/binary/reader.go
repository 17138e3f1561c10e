// Package binary provides bounds-checked big-endian reading and writing
// primitives for PNG chunk framing.
package binary

import (
	"encoding/binary"
	"fmt"
	"io"
)

// SafeReader wraps io.ReaderAt with bounds checking and helpful error
// messages. PNG is big-endian throughout, so no byte-order parameter is
// exposed.
type SafeReader struct {
	r    io.ReaderAt
	size int64
}

// NewSafeReader creates a new SafeReader over size bytes of r.
func NewSafeReader(r io.ReaderAt, size int64) *SafeReader {
	return &SafeReader{
		r:    r,
		size: size,
	}
}

// Size returns the total number of readable bytes.
func (sr *SafeReader) Size() int64 {
	return sr.size
}

// Remaining returns the number of bytes available at and after off.
func (sr *SafeReader) Remaining(off int64) int64 {
	if off >= sr.size {
		return 0
	}
	return sr.size - off
}

// ReadAt fills b from the given offset, with context for error messages.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	if off < 0 || off >= sr.size {
		return fmt.Errorf("offset %d out of bounds (size: %d) while reading %s",
			off, sr.size, what)
	}

	if off+int64(len(b)) > sr.size {
		return fmt.Errorf("read of %d bytes at offset %d would exceed size %d while reading %s",
			len(b), off, sr.size, what)
	}

	n, err := sr.r.ReadAt(b, off)
	if err != nil && err != io.EOF {
		return fmt.Errorf("read %s at offset %d: %w", what, off, err)
	}

	if n < len(b) {
		return fmt.Errorf("short read for %s at offset %d: got %d bytes, expected %d",
			what, off, n, len(b))
	}

	return nil
}

// ReadU32 reads a big-endian uint32 at the given offset.
func (sr *SafeReader) ReadU32(off int64, what string) (uint32, error) {
	var buf [4]byte
	if err := sr.ReadAt(buf[:], off, what); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// Reader provides sequential reading with automatic offset tracking.
type Reader struct {
	*SafeReader
	offset int64
}

// NewReader creates a new Reader starting at the given offset.
func NewReader(sr *SafeReader, offset int64) *Reader {
	return &Reader{
		SafeReader: sr,
		offset:     offset,
	}
}

// ReadU32 reads a big-endian uint32 and advances the offset.
func (r *Reader) ReadU32(what string) (uint32, error) {
	val, err := r.SafeReader.ReadU32(r.offset, what)
	if err != nil {
		return 0, err
	}
	r.offset += 4
	return val, nil
}

// ReadBytes reads length bytes and advances the offset.
func (r *Reader) ReadBytes(length int, what string) ([]byte, error) {
	buf := make([]byte, length)
	if length == 0 {
		return buf, nil
	}
	if err := r.SafeReader.ReadAt(buf, r.offset, what); err != nil {
		return nil, err
	}
	r.offset += int64(length)
	return buf, nil
}

// Offset returns the current offset.
func (r *Reader) Offset() int64 {
	return r.offset
}
