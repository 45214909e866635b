package tarball

import (
	"context"

	"github.com/rios0rios0/gilthub/internal/infrastructure/repositories/process"
)

// CLIRepository runs the tar executable.
type CLIRepository struct {
	runner process.Runner
	binary string
}

// NewCLIRepository creates a repository running binary through runner.
func NewCLIRepository(runner process.Runner, binary string) *CLIRepository {
	return &CLIRepository{runner: runner, binary: binary}
}

// Compress runs `tar -zcf <dest> .` inside srcDir so entry paths are relative.
func (it *CLIRepository) Compress(ctx context.Context, srcDir, dest string) error {
	return it.runner.Run(ctx, srcDir, it.binary, "-zcf", dest, ".")
}

// Extract runs `tar -zxf <archive>` inside destDir.
func (it *CLIRepository) Extract(ctx context.Context, archive, destDir string) error {
	return it.runner.Run(ctx, destDir, it.binary, "-zxf", archive)
}
