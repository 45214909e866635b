//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/gilthub/internal/domain/entities"
	"github.com/rios0rios0/gilthub/internal/domain/repositories"
)

// SpyReporter implements repositories.Reporter, recording every line it was asked to print.
type SpyReporter struct {
	Steps         []StepCall
	Announcements []string
	Separators    int
	Successes     []SuccessCall
	Failures      []FailureCall
}

// StepCall records a single invocation of Step.
type StepCall struct {
	Action  string
	Subject string
	Target  string
}

// SuccessCall records a single invocation of Success.
type SuccessCall struct {
	Mode entities.Mode
	Name string
}

// FailureCall records a single invocation of Failure.
type FailureCall struct {
	Mode entities.Mode
	Err  error
}

var _ repositories.Reporter = (*SpyReporter)(nil)

func (s *SpyReporter) Step(action, subject, target string) {
	s.Steps = append(s.Steps, StepCall{Action: action, Subject: subject, Target: target})
}

func (s *SpyReporter) Announce(message string) {
	s.Announcements = append(s.Announcements, message)
}

func (s *SpyReporter) Separator() {
	s.Separators++
}

func (s *SpyReporter) Success(mode entities.Mode, name string) {
	s.Successes = append(s.Successes, SuccessCall{Mode: mode, Name: name})
}

func (s *SpyReporter) Failure(mode entities.Mode, err error) {
	s.Failures = append(s.Failures, FailureCall{Mode: mode, Err: err})
}
