package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gilthub/internal/domain/commands"
	"github.com/rios0rios0/gilthub/internal/domain/entities"
	"github.com/rios0rios0/gilthub/internal/domain/repositories"
)

// RestoreController handles the "restore" subcommand.
type RestoreController struct {
	command  commands.Restore
	reporter repositories.Reporter
}

// NewRestoreController creates a new RestoreController.
func NewRestoreController(command commands.Restore, reporter repositories.Reporter) *RestoreController {
	return &RestoreController{command: command, reporter: reporter}
}

// GetBind returns the Cobra command metadata for the restore controller.
func (it *RestoreController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "restore [-p <profile>] <bucket-archive-url> <git-repo-url>",
		Short: "Restore an archived git repository from an S3 bucket",
		Long: `Download a <name>.tar.gz archive made by "gilthub archive",
extract it and mirror-push every ref and tag into the given repository.

Please make sure to create the empty remote git repository first.`,
		Example: "  gilthub restore s3://github-repo-archive/scala-1-day.tar.gz git@github.com:grahamar/scala-1-day.git",
		NArgs:   2, //nolint:mnd // archive URL + repository URL
	}
}

// Execute runs the restore pipeline and reports its outcome.
func (it *RestoreController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Fatalf("Error restoring git repository: %v", err)
		return
	}

	invocation := newInvocation(cmd, entities.ModeRestore, args, settings)
	name, runErr := it.command.Execute(ctx, settings, invocation)
	report(it.reporter, entities.ModeRestore, name, runErr)
}

// AddFlags adds the restore-specific flags to the given Cobra command.
func (it *RestoreController) AddFlags(cmd *cobra.Command) {
	addProfileFlag(cmd)
}
