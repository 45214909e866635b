package commands

import (
	"errors"

	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gilthub/internal/domain/entities"
)

// stageFailure turns the error of a step into the stage's failure.
// Launch errors pass through untouched: they are never stage failures.
func stageFailure(log *logger.Entry, stage entities.Stage, err error) error {
	var launchErr *entities.LaunchError
	if errors.As(err, &launchErr) {
		return err
	}

	log.WithField("stage", stage.String()).Debugf("Stage failed: %v", err)
	return entities.NewStageError(stage, err)
}

func runLogger(mode entities.Mode, settings *entities.Settings) *logger.Entry {
	return logger.WithFields(logger.Fields{
		"run_id": uuid.NewString(),
		"mode":   string(mode),
		"driver": settings.Driver,
	})
}
