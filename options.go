package pngcrypt

import "io"

// Option configures behavior when opening images.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	img, err := pngcrypt.Open("photo.png",
//	    pngcrypt.WithRandSource(rng),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening images.
type openOptions struct {
	randSource io.Reader // Randomness for token generation (nil = crypto/rand)
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		randSource: nil, // crypto/rand
	}
}

// WithRandSource injects the random source used for token generation.
//
// By default tokens are drawn from crypto/rand. Injecting a deterministic
// reader makes Embed reproducible, which is the intended way to test code
// built on this package. The source is read four bytes per generated
// token.
//
// Example:
//
//	img, err := pngcrypt.Open("photo.png",
//	    pngcrypt.WithRandSource(bytes.NewReader(seed)),
//	)
func WithRandSource(r io.Reader) Option {
	return func(o *openOptions) {
		o.randSource = r
	}
}
