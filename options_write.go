package naklo

// SaveOption configures behavior when saving audio files.
//
// Example:
//
//	err := file.Save(
//	    naklo.WithBackup(".bak"),
//	    naklo.WithValidation(),
//	)
type SaveOption func(*saveOptions)

// saveOptions holds configuration for saving files.
type saveOptions struct {
	backupSuffix    string // Suffix for backup file (e.g., ".bak")
	validate        bool   // Re-read after write to verify
	preserveModTime bool   // Keep original modification time
	keepExisting    bool   // Append to the file's existing tags
}

func defaultSaveOptions() *saveOptions {
	return &saveOptions{}
}

// WithBackup keeps the original file under its name plus suffix.
// WithBackup(".bak") leaves "01.flac.bak" next to the new "01.flac".
// An existing backup is overwritten.
func WithBackup(suffix string) SaveOption {
	return func(o *saveOptions) {
		o.backupSuffix = suffix
	}
}

// WithValidation reads the tags back after writing and fails if any
// queued tag is missing.
func WithValidation() SaveOption {
	return func(o *saveOptions) {
		o.validate = true
	}
}

// WithPreserveModTime keeps the original file modification time.
func WithPreserveModTime() SaveOption {
	return func(o *saveOptions) {
		o.preserveModTime = true
	}
}

// WithKeepExisting appends the queued tags to the tags already in the
// file instead of replacing them.
func WithKeepExisting() SaveOption {
	return func(o *saveOptions) {
		o.keepExisting = true
	}
}
