package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gilthub/internal"
)

// flagged is implemented by controllers that own subcommand-specific flags.
type flagged interface {
	AddFlags(cmd *cobra.Command)
}

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "gilthub",
		Short: "Archive/restore a git repository to/from an AWS S3 bucket",
		Long: `Archive/restore a git repository to/from an AWS S3 bucket.

	Archiving: Please make sure to create the S3 bucket first.
	Restoring: Please make sure to create the empty remote git repository first.`,
		Example: `  gilthub archive git@github.com:gilt/scala-1-day.git s3://github-repo-archive
  gilthub restore s3://github-repo-archive/scala-1-day.tar.gz git@github.com:grahamar/scala-1-day.git`,
		SilenceErrors: true,
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().String("driver", "",
		"Tooling driver: cli (git, tar and aws executables) or native (in-process libraries)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:     bind.Use,
			Short:   bind.Short,
			Long:    bind.Long,
			Example: bind.Example,
			Args:    cobra.ExactArgs(bind.NArgs),
			Run: func(command *cobra.Command, arguments []string) {
				ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		if fc, ok := ctrl.(flagged); ok {
			fc.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	cobraRoot := buildRootCommand()

	// Add all subcommands
	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'gilthub': %s", err)
	}
}
