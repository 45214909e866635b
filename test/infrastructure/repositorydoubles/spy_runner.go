//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gilthub/internal/infrastructure/repositories/process"
)

// SpyRunner implements process.Runner without starting anything.
type SpyRunner struct {
	RunErr error
	Calls  []RunCall
}

// RunCall records a single invocation of Run.
type RunCall struct {
	Dir  string
	Name string
	Args []string
}

var _ process.Runner = (*SpyRunner)(nil)

func (s *SpyRunner) Run(_ context.Context, dir, name string, args ...string) error {
	s.Calls = append(s.Calls, RunCall{Dir: dir, Name: name, Args: args})
	return s.RunErr
}
