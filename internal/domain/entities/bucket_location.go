package entities

import (
	"errors"
	"strings"
)

const s3Scheme = "s3://"

// BucketLocation is an object-storage location split into bucket and key.
// The key is empty for a bucket root and may be a prefix or a full object key.
type BucketLocation struct {
	Bucket string
	Key    string
}

// ParseBucketLocation accepts "bucket", "bucket/prefix", or the same with an
// "s3://" scheme. Leading and trailing slashes of the key are dropped.
func ParseBucketLocation(raw string) (BucketLocation, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(raw), s3Scheme)
	bucket, key, _ := strings.Cut(trimmed, "/")
	if bucket == "" {
		return BucketLocation{}, errors.New("bucket location has no bucket name: " + raw)
	}
	return BucketLocation{Bucket: bucket, Key: strings.Trim(key, "/")}, nil
}

// String renders the location as an s3:// URL.
func (l BucketLocation) String() string {
	if l.Key == "" {
		return s3Scheme + l.Bucket
	}
	return s3Scheme + l.Bucket + "/" + l.Key
}

// PrefixURL renders the location as a "directory" URL ending in a slash, so
// copying a file there keeps the file's own name as the last key segment.
func (l BucketLocation) PrefixURL() string {
	return l.String() + "/"
}

// Join returns the location of name under this location's key.
func (l BucketLocation) Join(name string) BucketLocation {
	if l.Key == "" {
		return BucketLocation{Bucket: l.Bucket, Key: name}
	}
	return BucketLocation{Bucket: l.Bucket, Key: l.Key + "/" + name}
}
