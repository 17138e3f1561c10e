package pngcrypt

import (
	"github.com/shepherd1530/PNGCrypt/internal/types"
)

// NotPNGError is an alias to types.NotPNGError.
// Re-exporting from internal/types keeps the error taxonomy public.
type NotPNGError = types.NotPNGError

// MalformedChunkError is an alias to types.MalformedChunkError.
// Covers length overruns and CRC mismatches found while walking chunks.
type MalformedChunkError = types.MalformedChunkError

// TruncatedStreamError is an alias to types.TruncatedStreamError.
// Returned when a chunk stream ends before IEND.
type TruncatedStreamError = types.TruncatedStreamError

// InvalidTokenError is an alias to types.InvalidTokenError.
// Returned for tokens failing the alphabet/length check, before any scan.
type InvalidTokenError = types.InvalidTokenError

// TokenNotFoundError is an alias to types.TokenNotFoundError.
// Returned when a well-formed token matches no chunk in the image.
type TokenNotFoundError = types.TokenNotFoundError

// EmptyPayloadError is an alias to types.EmptyPayloadError.
// Returned when Embed is called with a zero-length payload.
type EmptyPayloadError = types.EmptyPayloadError
