package pngcrypt

import (
	"fmt"
	"os"
	"path/filepath"
)

// Save writes the image back to its original path.
//
// This is an atomic operation: the serialized stream goes to a temporary
// file first, then a rename replaces the original. If any step fails, the
// original file remains unchanged.
//
// Options can be provided to customize save behavior:
//
//	err := img.Save(
//	    pngcrypt.WithBackup(".bak"),
//	    pngcrypt.WithValidation(),
//	)
//
// Returns an error if the image was opened from bytes and has no path.
func (img *Image) Save(opts ...SaveOption) error {
	if img.Path == "" {
		return fmt.Errorf("image has no path: use SaveAs")
	}
	return img.SaveAs(img.Path, opts...)
}

// SaveAs writes the image to a new location.
//
// Atomic like Save: writes to a temporary file in the destination
// directory, syncs it, then renames over the output path. Any partially
// written data is cleaned up on failure.
func (img *Image) SaveAs(outputPath string, opts ...SaveOption) error {
	options := defaultSaveOptions()
	for _, opt := range opts {
		opt(options)
	}

	data, err := img.Bytes()
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	// Get original file's mod time if we need to preserve it
	var origInfo os.FileInfo
	if options.preserveModTime {
		if info, statErr := os.Stat(outputPath); statErr == nil {
			origInfo = info
		}
	}

	// Temp file in the same directory as the output, so rename is atomic
	outputDir := filepath.Dir(outputPath)
	tempFile, err := os.CreateTemp(outputDir, ".pngcrypt-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()
			_ = os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	// Backup the current output file before replacing it
	if options.backupSuffix != "" {
		backupPath := outputPath + options.backupSuffix
		if _, err := os.Stat(outputPath); err == nil {
			if err := os.Rename(outputPath, backupPath); err != nil {
				return fmt.Errorf("create backup: %w", err)
			}
		}
	}

	if err := os.Rename(tempPath, outputPath); err != nil {
		return fmt.Errorf("rename temp to output: %w", err)
	}

	success = true

	if options.preserveModTime && origInfo != nil {
		_ = os.Chtimes(outputPath, origInfo.ModTime(), origInfo.ModTime())
	}

	if options.validate {
		if err := img.validateWrittenFile(outputPath); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	return nil
}

// validateWrittenFile re-opens the written file and checks that its chunk
// stream parses and matches the in-memory sequence.
func (img *Image) validateWrittenFile(path string) error {
	written, err := Open(path)
	if err != nil {
		return fmt.Errorf("re-open: %w", err)
	}

	if got, want := len(written.Chunks()), len(img.Chunks()); got != want {
		return fmt.Errorf("chunk count mismatch: got %d, want %d", got, want)
	}

	return nil
}
