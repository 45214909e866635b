package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gilthub/internal/domain/commands"
	"github.com/rios0rios0/gilthub/internal/domain/entities"
	"github.com/rios0rios0/gilthub/internal/domain/repositories"
)

// ArchiveController handles the "archive" subcommand.
type ArchiveController struct {
	command  commands.Archive
	reporter repositories.Reporter
}

// NewArchiveController creates a new ArchiveController.
func NewArchiveController(command commands.Archive, reporter repositories.Reporter) *ArchiveController {
	return &ArchiveController{command: command, reporter: reporter}
}

// GetBind returns the Cobra command metadata for the archive controller.
func (it *ArchiveController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "archive [-p <profile>] <git-clone-url> <bucket-url>",
		Short: "Archive a git repository to an S3 bucket",
		Long: `Clone a git repository (bare), compress it into <name>.tar.gz
and upload the archive to the given bucket and optional key prefix.

Please make sure to create the S3 bucket first.`,
		Example: "  gilthub archive git@github.com:gilt/scala-1-day.git s3://github-repo-archive",
		NArgs:   2, //nolint:mnd // clone URL + bucket URL
	}
}

// Execute runs the archive pipeline and reports its outcome.
func (it *ArchiveController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Fatalf("Error archiving git repository: %v", err)
		return
	}

	invocation := newInvocation(cmd, entities.ModeArchive, args, settings)
	name, runErr := it.command.Execute(ctx, settings, invocation)
	report(it.reporter, entities.ModeArchive, name, runErr)
}

// AddFlags adds the archive-specific flags to the given Cobra command.
func (it *ArchiveController) AddFlags(cmd *cobra.Command) {
	addProfileFlag(cmd)
}
