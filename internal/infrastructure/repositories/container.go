package repositories

import (
	"os"

	"github.com/klauspost/compress/gzip"
	"go.uber.org/dig"

	"github.com/rios0rios0/gilthub/internal/domain/entities"
	gitRepo "github.com/rios0rios0/gilthub/internal/infrastructure/repositories/git"
	"github.com/rios0rios0/gilthub/internal/infrastructure/repositories/process"
	s3Repo "github.com/rios0rios0/gilthub/internal/infrastructure/repositories/s3"
	tarRepo "github.com/rios0rios0/gilthub/internal/infrastructure/repositories/tarball"
	"github.com/rios0rios0/gilthub/internal/infrastructure/repositories/workspace"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(func() *DriverRegistry {
		reg := NewDriverRegistry()
		reg.Register(entities.DriverCLI, NewCLIToolchain)
		reg.Register(entities.DriverNative, NewNativeToolchain)
		return reg
	})
}

// NewCLIToolchain shells out to git, tar and aws, sharing this process's output.
func NewCLIToolchain(settings *entities.Settings) (*Toolchain, error) {
	runner := process.NewStdioRunner()
	return &Toolchain{
		VersionControl: gitRepo.NewCLIRepository(runner, settings.Binaries.Git),
		Archiver:       tarRepo.NewCLIRepository(runner, settings.Binaries.Tar),
		ObjectStorage:  s3Repo.NewCLIRepository(runner, settings.Binaries.AWS),
		Workspace:      workspace.NewTempWorkspaceRepository(settings.TempDir),
	}, nil
}

// NewNativeToolchain uses go-git, an in-process tar.gz codec and minio-go.
func NewNativeToolchain(settings *entities.Settings) (*Toolchain, error) {
	return &Toolchain{
		VersionControl: gitRepo.NewNativeRepository(os.Stderr),
		Archiver:       tarRepo.NewNativeRepository(gzip.DefaultCompression),
		ObjectStorage:  s3Repo.NewNativeRepository(settings.S3),
		Workspace:      workspace.NewTempWorkspaceRepository(settings.TempDir),
	}, nil
}
