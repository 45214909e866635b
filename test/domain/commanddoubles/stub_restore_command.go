//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gilthub/internal/domain/commands"
	"github.com/rios0rios0/gilthub/internal/domain/entities"
)

// StubRestoreCommand is a stub implementation of commands.Restore.
type StubRestoreCommand struct {
	ExecuteCallCount int
	ExecuteName      string
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastInvocation   entities.Invocation
}

var _ commands.Restore = (*StubRestoreCommand)(nil)

func (s *StubRestoreCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	invocation entities.Invocation,
) (string, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastInvocation = invocation
	return s.ExecuteName, s.ExecuteErr
}
