package pngcrypt

// SaveOption configures behavior when saving images.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	err := img.Save(
//	    pngcrypt.WithBackup(".bak"),
//	    pngcrypt.WithValidation(),
//	)
type SaveOption func(*saveOptions)

// saveOptions holds configuration for saving images.
type saveOptions struct {
	backupSuffix    string // Suffix for backup file (e.g., ".bak")
	validate        bool   // Re-parse after write to verify
	preserveModTime bool   // Keep original modification time
}

// defaultSaveOptions returns the default configuration for saving.
func defaultSaveOptions() *saveOptions {
	return &saveOptions{
		backupSuffix:    "",
		validate:        false,
		preserveModTime: false,
	}
}

// WithBackup creates a backup of the original file before saving.
//
// The backup file will have the specified suffix appended to the original
// filename. For example, WithBackup(".bak") will create "photo.png.bak"
// before replacing "photo.png". An existing backup is overwritten.
//
// Example:
//
//	err := img.Save(pngcrypt.WithBackup(".bak"))
func WithBackup(suffix string) SaveOption {
	return func(o *saveOptions) {
		o.backupSuffix = suffix
	}
}

// WithValidation re-parses the file after writing to verify integrity.
//
// After saving, the written file is re-opened and its chunk stream walked
// (signature and every CRC re-checked). This adds overhead but provides
// confidence that the written image is decodable.
//
// Example:
//
//	err := img.Save(pngcrypt.WithValidation())
func WithValidation() SaveOption {
	return func(o *saveOptions) {
		o.validate = true
	}
}

// WithPreserveModTime keeps the original file modification time.
//
// By default, saving updates the file's modification time to the current
// time. Preserving the original timestamp makes an embedded secret less
// conspicuous to casual inspection.
//
// Example:
//
//	err := img.Save(pngcrypt.WithPreserveModTime())
func WithPreserveModTime() SaveOption {
	return func(o *saveOptions) {
		o.preserveModTime = true
	}
}
