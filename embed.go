package pngcrypt

import (
	"github.com/shepherd1530/PNGCrypt/internal/png"
	"github.com/shepherd1530/PNGCrypt/internal/token"
	"github.com/shepherd1530/PNGCrypt/internal/types"
)

// Embed hides a payload in the image and returns the token needed to
// recover it.
//
// A fresh token is generated, a chunk typed by that token is built with
// the raw payload as its data (one copy, no transformation), and the chunk
// is inserted immediately before IEND. Critical chunk ordering is never
// disturbed.
//
// Returns EmptyPayloadError for a zero-length payload.
func (img *Image) Embed(payload []byte) (string, error) {
	if len(payload) == 0 {
		return "", &types.EmptyPayloadError{}
	}

	tok, ct, err := img.gen.New()
	if err != nil {
		return "", err
	}

	img.seq.Insert(png.NewChunk(ct, payload))

	return tok, nil
}

// Extract recovers the payload embedded under the given token.
//
// The token is validated before any scan (InvalidTokenError), then the
// first chunk whose type code matches the token wins; if two independently
// generated tokens ever collide on a type code, the earlier chunk is
// returned. Read-only: the image is not modified.
//
// Returns TokenNotFoundError when no chunk matches.
func (img *Image) Extract(tok string) ([]byte, error) {
	ct, err := token.Derive(tok)
	if err != nil {
		return nil, err
	}

	c, ok := img.seq.Find(ct)
	if !ok {
		return nil, &types.TokenNotFoundError{Token: tok}
	}

	return c.Data, nil
}

// Strip excises the chunk embedded under the given token and returns its
// payload.
//
// All other chunks keep their order and bytes. Like Extract, the first
// matching chunk wins. The mutation is in-memory only; call Save or Bytes
// to commit it.
//
// Returns TokenNotFoundError when no chunk matches.
func (img *Image) Strip(tok string) ([]byte, error) {
	ct, err := token.Derive(tok)
	if err != nil {
		return nil, err
	}

	c, ok := img.seq.RemoveFirst(ct)
	if !ok {
		return nil, &types.TokenNotFoundError{Token: tok}
	}

	return c.Data, nil
}

// Embed is the byte-level embedding operation: parse, generate a token,
// insert the secret chunk before IEND, re-serialize.
//
// Returns the rewritten PNG bytes and the token.
func Embed(src, payload []byte, opts ...Option) ([]byte, string, error) {
	img, err := OpenBytes(src, opts...)
	if err != nil {
		return nil, "", err
	}

	tok, err := img.Embed(payload)
	if err != nil {
		return nil, "", err
	}

	out, err := img.Bytes()
	if err != nil {
		return nil, "", err
	}

	return out, tok, nil
}

// Extract is the byte-level lookup operation: parse, derive the chunk type
// from the token, return the matching chunk's data.
//
// The source bytes are not modified.
func Extract(src []byte, tok string) ([]byte, error) {
	img, err := OpenBytes(src)
	if err != nil {
		return nil, err
	}

	return img.Extract(tok)
}

// Strip is the byte-level removal operation: parse, excise the first
// matching chunk, re-serialize.
//
// Returns the cleaned PNG bytes and the removed payload, mirroring
// Extract's result while additionally committing the removal.
func Strip(src []byte, tok string) ([]byte, []byte, error) {
	img, err := OpenBytes(src)
	if err != nil {
		return nil, nil, err
	}

	payload, err := img.Strip(tok)
	if err != nil {
		return nil, nil, err
	}

	out, err := img.Bytes()
	if err != nil {
		return nil, nil, err
	}

	return out, payload, nil
}
