// Package types defines the chunk model and error taxonomy shared across
// the library.
package types

// ChunkType is a 4-byte PNG chunk type code.
//
// Each byte is an ASCII letter; bit 5 of each byte (the case bit) carries
// the PNG chunk property flags.
type ChunkType [4]byte

// Well-known critical chunk types.
var (
	TypeIHDR = ChunkType{'I', 'H', 'D', 'R'}
	TypeIDAT = ChunkType{'I', 'D', 'A', 'T'}
	TypeIEND = ChunkType{'I', 'E', 'N', 'D'}
)

// String returns the type code as a 4-character string, e.g. "IHDR".
func (ct ChunkType) String() string {
	return string(ct[:])
}

// Critical reports whether the chunk is required for image decoding
// (uppercase first letter).
func (ct ChunkType) Critical() bool {
	return ct[0]&0x20 == 0
}

// Public reports whether the type is registered in the PNG specification
// (uppercase second letter). Embedded secret chunks are private.
func (ct ChunkType) Public() bool {
	return ct[1]&0x20 == 0
}

// ReservedValid reports whether the reserved bit conforms to the current
// PNG specification (uppercase third letter).
func (ct ChunkType) ReservedValid() bool {
	return ct[2]&0x20 == 0
}

// SafeToCopy reports whether editors that do not recognize the chunk may
// copy it to a modified image (lowercase fourth letter).
func (ct ChunkType) SafeToCopy() bool {
	return ct[3]&0x20 != 0
}

// Valid reports whether all four bytes are ASCII letters and the reserved
// bit conforms to the current PNG specification.
func (ct ChunkType) Valid() bool {
	for _, b := range ct {
		if !isLetter(b) {
			return false
		}
	}
	return ct.ReservedValid()
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// MaxChunkLength is the largest data length a chunk may declare (2^31-1,
// per the PNG specification).
const MaxChunkLength = 1<<31 - 1

// Chunk is one length-prefixed, checksummed record of a PNG stream.
//
// CRC covers Type and Data; Length always equals len(Data). Both are kept
// explicit so a decoded chunk can be re-serialized byte-identically.
type Chunk struct {
	Type ChunkType
	Data []byte
	CRC  uint32
}

// Length returns the declared data length of the chunk.
func (c Chunk) Length() uint32 {
	return uint32(len(c.Data))
}
