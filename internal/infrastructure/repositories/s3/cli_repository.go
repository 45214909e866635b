package s3

import (
	"context"
	"path/filepath"

	"github.com/rios0rios0/gilthub/internal/domain/entities"
	"github.com/rios0rios0/gilthub/internal/infrastructure/repositories/process"
)

// CLIRepository runs the aws executable.
type CLIRepository struct {
	runner process.Runner
	binary string
}

// NewCLIRepository creates a repository running binary through runner.
func NewCLIRepository(runner process.Runner, binary string) *CLIRepository {
	return &CLIRepository{runner: runner, binary: binary}
}

// Upload runs `aws s3 cp <file> s3://<bucket>/<prefix>/ --profile <profile>`.
func (it *CLIRepository) Upload(
	ctx context.Context, file string, dest entities.BucketLocation, profile string,
) error {
	return it.runner.Run(ctx, "", it.binary, "s3", "cp", file, dest.PrefixURL(), "--profile", profile)
}

// Download runs `aws s3 cp s3://<bucket>/<key> <dir>/ --profile <profile>`.
func (it *CLIRepository) Download(
	ctx context.Context, src entities.BucketLocation, dir, profile string,
) error {
	target := dir + string(filepath.Separator)
	return it.runner.Run(ctx, "", it.binary, "s3", "cp", src.String(), target, "--profile", profile)
}
