package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rios0rios0/gilthub/internal/domain/entities"
	"github.com/rios0rios0/gilthub/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/gilthub/internal/infrastructure/repositories"
)

// Archive is the interface for the archive command.
type Archive interface {
	// Execute returns the archived repository name, a *entities.StageError
	// when a step failed, or a *entities.LaunchError when a step could not start.
	Execute(ctx context.Context, settings *entities.Settings, invocation entities.Invocation) (string, error)
}

// ArchiveCommand clones a repository, compresses it and uploads the tarball:
// clone → compress → upload, stopping at the first failing stage.
type ArchiveCommand struct {
	driverRegistry *infraRepos.DriverRegistry
	reporter       repositories.Reporter
}

// NewArchiveCommand creates a new ArchiveCommand.
func NewArchiveCommand(
	driverRegistry *infraRepos.DriverRegistry,
	reporter repositories.Reporter,
) *ArchiveCommand {
	return &ArchiveCommand{
		driverRegistry: driverRegistry,
		reporter:       reporter,
	}
}

// Execute archives invocation.Source (a clone URL) to invocation.Destination
// (a bucket with an optional key prefix).
func (it *ArchiveCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	invocation entities.Invocation,
) (string, error) {
	toolchain, err := it.driverRegistry.Get(settings)
	if err != nil {
		return "", entities.NewLaunchError("initialize driver", err)
	}
	log := runLogger(entities.ModeArchive, settings)

	cloneDir, err := toolchain.Workspace.Acquire()
	if err != nil {
		return "", err
	}
	defer cloneDir.Release()

	it.reporter.Step("Cloning", invocation.Source, cloneDir.Path)
	cloneErr := toolchain.VersionControl.CloneBare(ctx, invocation.Source, cloneDir.Path)
	it.reporter.Separator()
	if cloneErr != nil {
		return "", stageFailure(log, entities.StageClone, cloneErr)
	}

	repoName := entities.ArchiveRepositoryName(invocation.Source)
	archiveName := entities.ArchiveFileName(repoName)

	compressDir, err := toolchain.Workspace.Acquire()
	if err != nil {
		return "", err
	}
	defer compressDir.Release()

	archivePath := filepath.Join(compressDir.Path, archiveName)
	log.Debugf("Compressing %s into %s", cloneDir.Path, archivePath)
	compressErr := toolchain.Archiver.Compress(ctx, cloneDir.Path, archivePath)
	it.reporter.Separator()
	if compressErr != nil {
		return "", stageFailure(log, entities.StageCompress, compressErr)
	}

	it.reporter.Announce(fmt.Sprintf("Uploading %s to S3", archiveName))
	destination, err := entities.ParseBucketLocation(invocation.Destination)
	if err != nil {
		return "", stageFailure(log, entities.StageUpload, err)
	}
	profile := invocation.ResolvedProfile()
	if uploadErr := toolchain.ObjectStorage.Upload(ctx, archivePath, destination, profile); uploadErr != nil {
		return "", stageFailure(log, entities.StageUpload, uploadErr)
	}

	log.Infof("Archived %s to %s using profile %q", repoName, destination.Join(archiveName), profile)
	return repoName, nil
}
