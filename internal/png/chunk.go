// Package png implements the PNG chunk codec and chunk stream parser.
//
// The package deals only in container structure: length-prefixed chunks,
// their CRCs, and their ordering. Pixel data (IDAT) is carried opaquely and
// never interpreted.
package png

import (
	"fmt"
	"hash/crc32"

	"github.com/shepherd1530/PNGCrypt/internal/binary"
	"github.com/shepherd1530/PNGCrypt/internal/types"
)

// Chunk framing overhead: 4-byte length + 4-byte type + 4-byte CRC.
const chunkOverhead = 12

// checksum computes the PNG CRC-32 (IEEE polynomial) over type and data.
func checksum(ct types.ChunkType, data []byte) uint32 {
	crc := crc32.ChecksumIEEE(ct[:])
	return crc32.Update(crc, crc32.IEEETable, data)
}

// NewChunk builds a chunk with a freshly computed CRC over type and data.
func NewChunk(ct types.ChunkType, data []byte) types.Chunk {
	return types.Chunk{
		Type: ct,
		Data: data,
		CRC:  checksum(ct, data),
	}
}

// DecodeChunk reads one chunk starting at off and returns it along with the
// number of bytes consumed.
//
// The stored CRC is verified against a checksum computed over type and
// data; any mismatch, length overrun, or over-limit length yields a
// MalformedChunkError.
func DecodeChunk(sr *binary.SafeReader, off int64) (types.Chunk, int64, error) {
	r := binary.NewReader(sr, off)

	if sr.Remaining(off) < chunkOverhead {
		return types.Chunk{}, 0, &types.MalformedChunkError{
			Offset: off,
			Reason: fmt.Sprintf("%d bytes remaining, need at least %d for chunk framing",
				sr.Remaining(off), chunkOverhead),
		}
	}

	length, err := r.ReadU32("chunk length")
	if err != nil {
		return types.Chunk{}, 0, &types.MalformedChunkError{Offset: off, Reason: err.Error()}
	}

	if length > types.MaxChunkLength {
		return types.Chunk{}, 0, &types.MalformedChunkError{
			Offset: off,
			Reason: fmt.Sprintf("declared length %d exceeds maximum %d", length, uint32(types.MaxChunkLength)),
		}
	}

	if sr.Remaining(off) < chunkOverhead+int64(length) {
		return types.Chunk{}, 0, &types.MalformedChunkError{
			Offset: off,
			Reason: fmt.Sprintf("declared length %d exceeds remaining %d bytes",
				length, sr.Remaining(off)-chunkOverhead),
		}
	}

	typeBytes, err := r.ReadBytes(4, "chunk type")
	if err != nil {
		return types.Chunk{}, 0, &types.MalformedChunkError{Offset: off, Reason: err.Error()}
	}
	var ct types.ChunkType
	copy(ct[:], typeBytes)

	data, err := r.ReadBytes(int(length), "chunk data")
	if err != nil {
		return types.Chunk{}, 0, &types.MalformedChunkError{Offset: off, Reason: err.Error()}
	}

	storedCRC, err := r.ReadU32("chunk CRC")
	if err != nil {
		return types.Chunk{}, 0, &types.MalformedChunkError{Offset: off, Reason: err.Error()}
	}

	if computed := checksum(ct, data); computed != storedCRC {
		return types.Chunk{}, 0, &types.MalformedChunkError{
			Offset: off,
			Reason: fmt.Sprintf("CRC mismatch for %s: stored %08x, computed %08x",
				ct, storedCRC, computed),
		}
	}

	return types.Chunk{Type: ct, Data: data, CRC: storedCRC}, r.Offset() - off, nil
}

// EncodeChunk writes the chunk's wire form: big-endian length, type code,
// data, and a freshly computed CRC over type and data.
//
// Deterministic and side-effect free given identical input.
func EncodeChunk(sw *binary.SafeWriter, c types.Chunk) error {
	if err := sw.WriteU32(c.Length()); err != nil {
		return fmt.Errorf("write chunk length: %w", err)
	}
	if err := sw.WriteBytes(c.Type[:]); err != nil {
		return fmt.Errorf("write chunk type: %w", err)
	}
	if err := sw.WriteBytes(c.Data); err != nil {
		return fmt.Errorf("write chunk data: %w", err)
	}
	if err := sw.WriteU32(checksum(c.Type, c.Data)); err != nil {
		return fmt.Errorf("write chunk CRC: %w", err)
	}
	return nil
}
