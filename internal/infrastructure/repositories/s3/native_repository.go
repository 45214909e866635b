package s3

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gilthub/internal/domain/entities"
)

const archiveContentType = "application/gzip"

// NativeRepository talks to S3 in-process with minio-go. Credentials come
// from the named profile of the AWS shared credentials file.
type NativeRepository struct {
	settings entities.S3Settings
}

// NewNativeRepository creates a repository for the configured endpoint.
func NewNativeRepository(settings entities.S3Settings) *NativeRepository {
	return &NativeRepository{settings: settings}
}

// Upload puts file under dest, keeping its base name.
func (it *NativeRepository) Upload(
	ctx context.Context, file string, dest entities.BucketLocation, profile string,
) error {
	client, err := it.client(profile)
	if err != nil {
		return err
	}

	object := uploadLocation(file, dest)
	//nolint:exhaustruct // Minimal PutObjectOptions initialization with required fields only
	info, err := client.FPutObject(ctx, object.Bucket, object.Key, file, minio.PutObjectOptions{
		ContentType: archiveContentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to %s: %w", file, object, err)
	}

	logger.Debugf("Uploaded %d bytes to %s (etag %s)", info.Size, object, info.ETag)
	return nil
}

// Download gets src into dir, keeping the last segment of its key as file name.
func (it *NativeRepository) Download(
	ctx context.Context, src entities.BucketLocation, dir, profile string,
) error {
	if src.Key == "" {
		return fmt.Errorf("archive location %s has no object key", src)
	}

	client, err := it.client(profile)
	if err != nil {
		return err
	}

	target := downloadTarget(src, dir)
	//nolint:exhaustruct // zero GetObjectOptions fetches the whole object
	if getErr := client.FGetObject(ctx, src.Bucket, src.Key, target, minio.GetObjectOptions{}); getErr != nil {
		return fmt.Errorf("failed to download %s: %w", src, getErr)
	}
	return nil
}

// client builds a client for profile. A client that cannot be built is a
// configuration problem, not a failed transfer.
func (it *NativeRepository) client(profile string) (*minio.Client, error) {
	if it.settings.Endpoint == "" {
		return nil, entities.NewLaunchError("create S3 client", errors.New("no endpoint configured"))
	}

	//nolint:exhaustruct // Minimal Options initialization with required fields only
	client, err := minio.New(it.settings.Endpoint, &minio.Options{
		Creds:  credentials.NewFileAWSCredentials(it.settings.CredentialsFile, profile),
		Secure: !it.settings.Insecure,
		Region: it.settings.Region,
	})
	if err != nil {
		return nil, entities.NewLaunchError("create S3 client", err)
	}
	return client, nil
}

func uploadLocation(file string, dest entities.BucketLocation) entities.BucketLocation {
	return dest.Join(filepath.Base(file))
}

func downloadTarget(src entities.BucketLocation, dir string) string {
	return filepath.Join(dir, path.Base(src.Key))
}
