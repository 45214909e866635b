package repositories

import "context"

// ArchiverRepository creates and extracts gzip-compressed tarballs.
type ArchiverRepository interface {
	// Compress archives the whole content of srcDir into dest, with entry
	// paths relative to srcDir.
	Compress(ctx context.Context, srcDir, dest string) error

	// Extract unpacks archive into destDir.
	Extract(ctx context.Context, archive, destDir string) error
}
