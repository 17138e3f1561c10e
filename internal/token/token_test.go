package token

import (
	"bytes"
	"errors"
	"testing"

	"github.com/shepherd1530/PNGCrypt/internal/types"
)

func TestGenerator_New_Deterministic(t *testing.T) {
	// 0, 1, 2, 3 map to letters a, b, c, d before case masking
	gen := NewGenerator(bytes.NewReader([]byte{0, 1, 2, 3}))

	tok, ct, err := gen.New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if tok != "abCD" {
		t.Errorf("token = %q, want %q", tok, "abCD")
	}
	if ct.String() != tok {
		t.Errorf("chunk type %s does not equal token %s", ct, tok)
	}
}

func TestGenerator_New_CasePattern(t *testing.T) {
	// Bytes chosen to produce uppercase letters without masking; the
	// generator must still force the lower-lower-upper-upper pattern.
	gen := NewGenerator(bytes.NewReader([]byte{25, 25, 25, 25}))

	tok, ct, err := gen.New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if tok != "zzZZ" {
		t.Errorf("token = %q, want %q", tok, "zzZZ")
	}
	if ct.Critical() {
		t.Error("generated chunk type must be ancillary")
	}
	if ct.Public() {
		t.Error("generated chunk type must be private")
	}
	if !ct.ReservedValid() {
		t.Error("generated chunk type must keep the reserved bit valid")
	}
	if ct.SafeToCopy() {
		t.Error("generated chunk type must not be safe-to-copy")
	}
}

func TestGenerator_New_CryptoRandDefault(t *testing.T) {
	gen := NewGenerator(nil)

	tok, ct, err := gen.New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if len(tok) != Length {
		t.Fatalf("token length = %d, want %d", len(tok), Length)
	}
	if !ct.Valid() {
		t.Errorf("generated chunk type %s is not valid", ct)
	}
}

func TestDerive_InverseOfNew(t *testing.T) {
	gen := NewGenerator(bytes.NewReader([]byte{7, 19, 0, 11}))

	tok, ct, err := gen.New()
	if err != nil {
		t.Fatal(err)
	}

	derived, err := Derive(tok)
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	if derived != ct {
		t.Errorf("Derive(%q) = %s, want %s", tok, derived, ct)
	}
}

func TestDerive_Invalid(t *testing.T) {
	tests := []struct {
		name string
		tok  string
	}{
		{"too short", "abC"},
		{"too long", "abCDE"},
		{"empty", ""},
		{"digit", "ab1D"},
		{"punctuation", "ab-D"},
		{"non-ascii", "abÇD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Derive(tt.tok)
			var invalid *types.InvalidTokenError
			if !errors.As(err, &invalid) {
				t.Fatalf("Derive(%q): expected InvalidTokenError, got %v", tt.tok, err)
			}
		})
	}
}

func TestDerive_AcceptsAnyLetterCase(t *testing.T) {
	// Lookup accepts any 4-letter token, not just generated patterns
	ct, err := Derive("RuSt")
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	if ct.String() != "RuSt" {
		t.Errorf("Derive = %s, want RuSt", ct)
	}
}

func TestGenerator_New_ExhaustedSource(t *testing.T) {
	gen := NewGenerator(bytes.NewReader([]byte{1, 2})) // fewer than Length bytes

	if _, _, err := gen.New(); err == nil {
		t.Error("expected error from exhausted random source")
	}
}
