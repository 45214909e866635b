package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rios0rios0/gilthub/internal/domain/entities"
	"github.com/rios0rios0/gilthub/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/gilthub/internal/infrastructure/repositories"
)

// Restore is the interface for the restore command.
type Restore interface {
	// Execute returns the restored archive name, a *entities.StageError
	// when a step failed, or a *entities.LaunchError when a step could not start.
	Execute(ctx context.Context, settings *entities.Settings, invocation entities.Invocation) (string, error)
}

// RestoreCommand downloads an archived repository, extracts it and mirrors it
// into a remote: download → un-compress → restore, stopping at the first failure.
type RestoreCommand struct {
	driverRegistry *infraRepos.DriverRegistry
	reporter       repositories.Reporter
}

// NewRestoreCommand creates a new RestoreCommand.
func NewRestoreCommand(
	driverRegistry *infraRepos.DriverRegistry,
	reporter repositories.Reporter,
) *RestoreCommand {
	return &RestoreCommand{
		driverRegistry: driverRegistry,
		reporter:       reporter,
	}
}

// Execute restores invocation.Source (a bucket archive location) into
// invocation.Destination (an empty remote git repository).
func (it *RestoreCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	invocation entities.Invocation,
) (string, error) {
	toolchain, err := it.driverRegistry.Get(settings)
	if err != nil {
		return "", entities.NewLaunchError("initialize driver", err)
	}
	log := runLogger(entities.ModeRestore, settings)

	extractDir, err := toolchain.Workspace.Acquire()
	if err != nil {
		return "", err
	}
	defer extractDir.Release()

	it.reporter.Step("Downloading", invocation.Source, extractDir.Path)
	source, err := entities.ParseBucketLocation(invocation.Source)
	if err != nil {
		return "", stageFailure(log, entities.StageDownload, err)
	}
	profile := invocation.ResolvedProfile()
	downloadErr := toolchain.ObjectStorage.Download(ctx, source, extractDir.Path, profile)
	it.reporter.Separator()
	if downloadErr != nil {
		return "", stageFailure(log, entities.StageDownload, downloadErr)
	}

	repoName := entities.RestoreRepositoryName(invocation.Source)

	archivePath := filepath.Join(extractDir.Path, repoName)
	log.Debugf("Extracting %s into %s", archivePath, extractDir.Path)
	extractErr := toolchain.Archiver.Extract(ctx, archivePath, extractDir.Path)
	it.reporter.Separator()
	if extractErr != nil {
		return "", stageFailure(log, entities.StageUncompress, extractErr)
	}

	it.reporter.Announce(fmt.Sprintf("Restoring %s to %s", repoName, invocation.Destination))
	if pushErr := toolchain.VersionControl.PushMirror(ctx, extractDir.Path, invocation.Destination); pushErr != nil {
		return "", stageFailure(log, entities.StageRestore, pushErr)
	}

	log.Infof("Restored %s to %s using profile %q", repoName, invocation.Destination, profile)
	return repoName, nil
}
