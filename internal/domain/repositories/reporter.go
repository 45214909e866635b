package repositories

import "github.com/rios0rios0/gilthub/internal/domain/entities"

// Reporter prints the user-facing lines of a run.
type Reporter interface {
	// Step announces a step about to run, e.g. "Cloning <subject> to <target>".
	Step(action, subject, target string)
	// Announce prints a single-colour progress line, e.g. "Uploading widget.tar.gz to S3".
	Announce(message string)
	// Separator ends the output of a finished step with a blank line.
	Separator()

	// Success prints the final line of a successful run.
	Success(mode entities.Mode, name string)

	// Failure prints the final line of a run that stopped at a failed stage.
	Failure(mode entities.Mode, err error)
}
