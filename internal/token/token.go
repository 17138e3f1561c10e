// Package token generates secret tokens and maps them to PNG chunk type
// codes.
//
// A token is four ASCII letters and doubles as the type code of the chunk
// that carries the secret: the mapping is the identity, so the token alone
// is enough to relocate a chunk later with no side database. Generated
// tokens follow the case pattern lower-lower-upper-upper, which marks the
// chunk ancillary, private, and reserved-bit-valid under the PNG type-code
// convention.
package token

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/shepherd1530/PNGCrypt/internal/types"
)

// Length is the token length in characters.
const Length = 4

// caseMask selects bit 5 of an ASCII letter, which encodes both the letter
// case and the PNG chunk property flag for that position.
const caseMask = 0x20

// lowercase[i] reports whether position i of a generated token is forced
// lowercase. First letter lowercase = ancillary, second = private; third
// stays uppercase (reserved bit), fourth uppercase = not safe to copy.
var lowercase = [Length]bool{true, true, false, false}

// Generator produces tokens from an injected random source.
//
// The zero value is not usable; construct with NewGenerator. Passing a
// deterministic reader makes token generation reproducible in tests.
type Generator struct {
	rand io.Reader
}

// NewGenerator creates a Generator reading randomness from r. A nil r
// falls back to crypto/rand.
func NewGenerator(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}
	return &Generator{rand: r}
}

// New generates a fresh token and its derived chunk type code.
//
// Each position samples one of 26 letters, then the case bit is masked to
// the fixed pattern rather than sampled, so every generated chunk type is
// ancillary and private regardless of the random draw.
func (g *Generator) New() (string, types.ChunkType, error) {
	var raw [Length]byte
	if _, err := io.ReadFull(g.rand, raw[:]); err != nil {
		return "", types.ChunkType{}, fmt.Errorf("read random bytes: %w", err)
	}

	var ct types.ChunkType
	for i, b := range raw {
		letter := 'A' + b%26
		if lowercase[i] {
			letter |= caseMask
		}
		ct[i] = letter
	}

	return ct.String(), ct, nil
}

// Derive recomputes the chunk type code for a previously issued token.
//
// Pure inverse of New's mapping: the token characters are the type-code
// bytes. Returns InvalidTokenError if the token is not exactly four ASCII
// letters.
func Derive(tok string) (types.ChunkType, error) {
	if len(tok) != Length {
		return types.ChunkType{}, &types.InvalidTokenError{
			Token:  tok,
			Reason: fmt.Sprintf("must be %d characters, got %d", Length, len(tok)),
		}
	}

	var ct types.ChunkType
	for i := 0; i < Length; i++ {
		b := tok[i]
		if !((b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')) {
			return types.ChunkType{}, &types.InvalidTokenError{
				Token:  tok,
				Reason: fmt.Sprintf("character %q at position %d is not an ASCII letter", b, i),
			}
		}
		ct[i] = b
	}

	return ct, nil
}
