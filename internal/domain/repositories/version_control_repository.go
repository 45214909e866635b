package repositories

import "context"

// VersionControlRepository abstracts the git operations of both pipelines.
// Implementations return *entities.LaunchError when the operation could not
// be started at all; any other error means the operation ran and failed.
type VersionControlRepository interface {
	// CloneBare makes a bare clone of url into the existing empty directory dir.
	CloneBare(ctx context.Context, url, dir string) error

	// PushMirror pushes every ref of the bare repository in dir to url,
	// making the remote's refs match exactly, deletions included.
	PushMirror(ctx context.Context, dir, url string) error
}
