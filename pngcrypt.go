package pngcrypt

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/shepherd1530/PNGCrypt/internal/png"
	"github.com/shepherd1530/PNGCrypt/internal/token"
)

// Image represents a parsed PNG with its ordered chunk sequence.
//
// An Image owns its chunk sequence exclusively: Embed and Strip mutate the
// in-memory sequence, and nothing is written to disk until Save or SaveAs.
// The whole file is read up front; there is no open handle to release.
//
//	img, err := pngcrypt.Open("photo.png")
//	if err != nil {
//		return err
//	}
//	token, err := img.Embed([]byte("secret"))
type Image struct {
	// Path to the source file ("" when opened from a byte buffer)
	Path string

	// Size of the source in bytes
	Size int64

	// Internal state (unexported)
	seq *png.Sequence    // Parsed chunk sequence
	gen *token.Generator // Token source for Embed
}

// Open reads and parses a PNG file.
//
// The file content is read fully into memory and the chunk stream is
// validated eagerly: signature first, then every chunk's CRC as it is
// walked. Pixel data is carried opaquely, never decoded.
//
// Options can be provided to customize behavior:
//
//	img, err := pngcrypt.Open("photo.png",
//	    pngcrypt.WithRandSource(rng),
//	)
func Open(path string, opts ...Option) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	img, err := OpenBytes(data, opts...)
	if err != nil {
		return nil, err
	}
	img.Path = path

	return img, nil
}

// OpenBytes parses a PNG from an in-memory buffer.
//
// Same validation as Open; the buffer is not retained after parsing.
func OpenBytes(data []byte, opts ...Option) (*Image, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	seq, err := png.Parse(data)
	if err != nil {
		return nil, err
	}

	return &Image{
		Size: int64(len(data)),
		seq:  seq,
		gen:  token.NewGenerator(options.randSource),
	}, nil
}

// Chunks returns the image's chunks in stream order.
//
// Useful for inspection tooling; the returned slice must not be modified.
func (img *Image) Chunks() []Chunk {
	return img.seq.Chunks()
}

// Bytes serializes the image back to a complete PNG byte stream.
func (img *Image) Bytes() ([]byte, error) {
	return img.seq.Bytes()
}

// OpenMany opens multiple PNG files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any file
// fails to open, an error is returned and all results are discarded.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	images, err := pngcrypt.OpenMany(ctx, paths...)
func OpenMany(ctx context.Context, paths ...string) ([]*Image, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Image, len(paths))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			img, err := Open(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = img
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
