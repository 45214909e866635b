package controllers

import (
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gilthub/internal/domain/entities"
	"github.com/rios0rios0/gilthub/internal/domain/repositories"
)

// loadSettings resolves the settings of a run from --config (or the default
// locations), then applies the --driver and --verbose overrides.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	driver, _ := cmd.Flags().GetString("driver")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	cfgPath := configPath
	if cfgPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debugf("Using default settings: %v", err)
		}
		cfgPath = found
	}

	settings := entities.DefaultSettings()
	if cfgPath != "" {
		logger.Debugf("Using config file: %s", cfgPath)
		loaded, err := entities.NewSettings(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		settings = loaded
	}

	if driver != "" {
		settings.Driver = driver
		if err := settings.Validate(); err != nil {
			return nil, err
		}
	}
	return settings, nil
}

// newInvocation builds the invocation of a subcommand from its two positional
// arguments; an empty --profile falls back to the settings' profile.
func newInvocation(
	cmd *cobra.Command,
	mode entities.Mode,
	args []string,
	settings *entities.Settings,
) entities.Invocation {
	profile, _ := cmd.Flags().GetString("profile")
	if profile == "" {
		profile = settings.Profile
	}

	return entities.Invocation{
		Mode:        mode,
		Profile:     profile,
		Source:      args[0],
		Destination: args[1],
	}
}

// report prints the outcome of a run. Errors other than stage failures are
// unrecoverable and end the process without a report line.
func report(reporter repositories.Reporter, mode entities.Mode, name string, err error) {
	if err == nil {
		reporter.Success(mode, name)
		return
	}

	var stageErr *entities.StageError
	if errors.As(err, &stageErr) {
		logger.Debugf("Stage %s failed: %v", stageErr.Stage, stageErr.Cause)
		reporter.Failure(mode, stageErr)
		return
	}

	logger.Fatalf("Error %s git repository: %v", mode.Gerund(), err)
}

func addProfileFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("profile", "p", "",
		"The AWS profile to use, if you have multiple profiles "+
			"you can use this option to specify the named profile to use")
}
