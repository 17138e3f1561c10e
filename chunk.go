package pngcrypt

import (
	"github.com/shepherd1530/PNGCrypt/internal/types"
)

// Chunk is an alias to types.Chunk.
// Re-exporting from internal/types to expose chunk inspection (see
// Image.Chunks) without leaking the internal packages.
type Chunk = types.Chunk

// ChunkType is an alias to types.ChunkType.
type ChunkType = types.ChunkType
