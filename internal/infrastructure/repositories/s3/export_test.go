//go:build unit

package s3

var (
	UploadLocation = uploadLocation
	DownloadTarget = downloadTarget
)
