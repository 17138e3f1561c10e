package png

import (
	"bytes"

	"github.com/shepherd1530/PNGCrypt/internal/binary"
	"github.com/shepherd1530/PNGCrypt/internal/types"
)

// Signature is the fixed 8-byte sequence every PNG file starts with.
var Signature = [8]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

// Parse walks the byte buffer and produces the ordered chunk sequence.
//
// The signature is verified first (NotPNGError on mismatch), then chunks
// are decoded from offset 8 until an IEND chunk is consumed. The first
// chunk must be IHDR. Exhausting the buffer before IEND yields a
// TruncatedStreamError.
//
// Chunk semantics beyond IHDR/IEND placement are not interpreted: any
// non-standard chunk passes through opaquely, which is what lets embedded
// secret chunks survive unrelated PNG tooling.
func Parse(data []byte) (*Sequence, error) {
	if len(data) < len(Signature) || !bytes.Equal(data[:len(Signature)], Signature[:]) {
		return nil, &types.NotPNGError{Reason: "missing PNG signature"}
	}

	sr := binary.NewSafeReader(bytes.NewReader(data), int64(len(data)))

	seq := &Sequence{}
	offset := int64(len(Signature))
	for {
		if sr.Remaining(offset) == 0 {
			return nil, &types.TruncatedStreamError{Offset: offset}
		}

		chunk, consumed, err := DecodeChunk(sr, offset)
		if err != nil {
			return nil, err
		}
		offset += consumed

		if len(seq.chunks) == 0 && chunk.Type != types.TypeIHDR {
			return nil, &types.NotPNGError{Reason: "first chunk is not IHDR"}
		}

		seq.chunks = append(seq.chunks, chunk)

		if chunk.Type == types.TypeIEND {
			return seq, nil
		}
	}
}
