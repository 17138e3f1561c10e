// Package pngcrypt embeds secret messages in PNG images as custom
// ancillary chunks.
//
// A secret is stored as one private chunk inserted immediately before the
// IEND chunk. The image stays byte-decodable by every standard PNG reader;
// pixel data is never touched. Embedding returns a short 4-letter token,
// and that token is the only key needed later to extract or strip the
// secret from the same (or a redistributed) file.
//
// # Quick Start
//
// Embedding and recovering a message:
//
//	img, err := pngcrypt.Open("photo.png")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	token, err := img.Embed([]byte("meet at dawn"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := img.SaveAs("photo-secret.png"); err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("token:", token) // e.g. "xqRT"
//
//	// Later, possibly in another process:
//	img, _ = pngcrypt.Open("photo-secret.png")
//	msg, _ := img.Extract(token)
//
// # How It Works
//
// The token doubles as the chunk type code of the embedded chunk. No side
// database maps tokens to locations: given only the token, the matching
// chunk type is re-derived and the chunk stream is scanned for it. Tokens
// are generated with the case pattern lower-lower-upper-upper, which marks
// the chunk ancillary and private under the PNG type-code convention, so
// decoders that do not recognize it skip it safely.
//
// # Byte-Level API
//
// Embed, Extract, and Strip also exist as pure bytes-in/bytes-out
// functions for callers that manage their own I/O:
//
//	out, token, err := pngcrypt.Embed(src, []byte("hello"))
//	msg, err := pngcrypt.Extract(out, token)
//	cleaned, msg, err := pngcrypt.Strip(out, token)
//
// # Error Handling
//
// All failures are typed and permanent for a given input: NotPNGError,
// MalformedChunkError (includes CRC mismatches), TruncatedStreamError,
// InvalidTokenError, TokenNotFoundError, EmptyPayloadError. Corruption or
// a wrong token are never retried or auto-corrected.
//
// # Limitations
//
//   - Payloads are stored as raw bytes; encryption is a roadmap item.
//   - Two independently generated tokens can collide on the same type
//     code; lookups return the first match.
package pngcrypt
