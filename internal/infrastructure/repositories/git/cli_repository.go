package git

import (
	"context"

	"github.com/rios0rios0/gilthub/internal/infrastructure/repositories/process"
)

// CLIRepository runs the git executable.
type CLIRepository struct {
	runner process.Runner
	binary string
}

// NewCLIRepository creates a repository running binary through runner.
func NewCLIRepository(runner process.Runner, binary string) *CLIRepository {
	return &CLIRepository{runner: runner, binary: binary}
}

// CloneBare runs `git clone --bare <url> <dir>`.
func (it *CLIRepository) CloneBare(ctx context.Context, url, dir string) error {
	return it.runner.Run(ctx, "", it.binary, "clone", "--bare", url, dir)
}

// PushMirror runs `git push --mirror <url>` inside dir.
func (it *CLIRepository) PushMirror(ctx context.Context, dir, url string) error {
	return it.runner.Run(ctx, dir, it.binary, "push", "--mirror", url)
}
