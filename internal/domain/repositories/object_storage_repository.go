package repositories

import (
	"context"

	"github.com/rios0rios0/gilthub/internal/domain/entities"
)

// ObjectStorageRepository copies files to and from an object-storage bucket
// using a named credential profile.
type ObjectStorageRepository interface {
	// Upload copies file under the prefix dest, keeping the file name as the last key segment.
	Upload(ctx context.Context, file string, dest entities.BucketLocation, profile string) error

	// Download copies the object src into the directory dir, keeping its name.
	Download(ctx context.Context, src entities.BucketLocation, dir, profile string) error
}
