package types

import "fmt"

// NotPNGError is returned when the input does not start with the PNG
// signature, or the stream does not open with an IHDR chunk.
type NotPNGError struct {
	Reason string
}

func (e *NotPNGError) Error() string {
	return fmt.Sprintf("not a PNG: %s", e.Reason)
}

// MalformedChunkError is returned when a chunk cannot be decoded: its
// declared length overruns the buffer, exceeds the format maximum, or its
// stored CRC does not match the checksum computed over type and data.
type MalformedChunkError struct {
	Offset int64
	Reason string
}

func (e *MalformedChunkError) Error() string {
	return fmt.Sprintf("malformed chunk at offset %d: %s", e.Offset, e.Reason)
}

// TruncatedStreamError is returned when the chunk stream ends before an
// IEND chunk is seen.
type TruncatedStreamError struct {
	Offset int64
}

func (e *TruncatedStreamError) Error() string {
	return fmt.Sprintf("truncated stream: no IEND chunk before offset %d", e.Offset)
}

// InvalidTokenError is returned when a token fails the alphabet/length
// check, before any chunk scan is attempted.
type InvalidTokenError struct {
	Token  string
	Reason string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token %q: %s", e.Token, e.Reason)
}

// TokenNotFoundError is returned when a well-formed token matches no chunk
// in the image.
type TokenNotFoundError struct {
	Token string
}

func (e *TokenNotFoundError) Error() string {
	return fmt.Sprintf("token %q: no matching chunk found", e.Token)
}

// EmptyPayloadError is returned when Embed is called with a zero-length
// payload.
type EmptyPayloadError struct{}

func (e *EmptyPayloadError) Error() string {
	return "empty payload: nothing to embed"
}
