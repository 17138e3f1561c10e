package png

import (
	"bytes"

	"github.com/shepherd1530/PNGCrypt/internal/binary"
	"github.com/shepherd1530/PNGCrypt/internal/types"
)

// Sequence is the ordered chunk list of one PNG stream.
//
// Parse guarantees the first chunk is IHDR and the last is IEND. A
// Sequence is owned by a single operation; mutation helpers work in place
// and the result is re-serialized with Bytes.
type Sequence struct {
	chunks []types.Chunk
}

// Chunks returns the chunks in stream order. The returned slice must not
// be modified.
func (s *Sequence) Chunks() []types.Chunk {
	return s.chunks
}

// Len returns the number of chunks in the sequence.
func (s *Sequence) Len() int {
	return len(s.chunks)
}

// Insert places the chunk immediately before the terminating IEND chunk,
// leaving the IHDR/palette/IDAT ordering required by the format untouched.
func (s *Sequence) Insert(c types.Chunk) {
	at := len(s.chunks) - 1 // before IEND
	s.chunks = append(s.chunks[:at], append([]types.Chunk{c}, s.chunks[at:]...)...)
}

// Find returns the first chunk with the given type code.
func (s *Sequence) Find(ct types.ChunkType) (types.Chunk, bool) {
	for _, c := range s.chunks {
		if c.Type == ct {
			return c, true
		}
	}
	return types.Chunk{}, false
}

// RemoveFirst excises the first chunk with the given type code, preserving
// the order of all other chunks, and returns the removed chunk.
func (s *Sequence) RemoveFirst(ct types.ChunkType) (types.Chunk, bool) {
	for i, c := range s.chunks {
		if c.Type == ct {
			s.chunks = append(s.chunks[:i], s.chunks[i+1:]...)
			return c, true
		}
	}
	return types.Chunk{}, false
}

// Bytes serializes the sequence: the 8-byte signature followed by each
// chunk's encoding in order. For any well-formed input not mutated since
// Parse, Bytes returns the original buffer byte for byte.
func (s *Sequence) Bytes() ([]byte, error) {
	size := int64(len(Signature))
	for _, c := range s.chunks {
		size += chunkOverhead + int64(len(c.Data))
	}

	buf := bytes.NewBuffer(make([]byte, 0, size))
	sw := binary.NewSafeWriter(buf)

	if err := sw.WriteBytes(Signature[:]); err != nil {
		return nil, err
	}
	for _, c := range s.chunks {
		if err := EncodeChunk(sw, c); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}
