//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rios0rios0/gilthub/internal/domain/entities"
	"github.com/rios0rios0/gilthub/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/gilthub/internal/infrastructure/repositories"
)

// CallJournal records the order in which spies were invoked.
type CallJournal struct {
	Entries []string
}

func (j *CallJournal) record(entry string) {
	if j != nil {
		j.Entries = append(j.Entries, entry)
	}
}

// SpyVersionControlRepository implements repositories.VersionControlRepository as a configurable spy.
type SpyVersionControlRepository struct {
	Journal *CallJournal

	// --- CloneBare ---
	CloneErr   error
	CloneCalls []CloneCall

	// --- PushMirror ---
	PushErr   error
	PushCalls []PushCall
}

// CloneCall records a single invocation of CloneBare.
type CloneCall struct {
	URL string
	Dir string
}

// PushCall records a single invocation of PushMirror.
type PushCall struct {
	Dir string
	URL string
}

var _ repositories.VersionControlRepository = (*SpyVersionControlRepository)(nil)

func (s *SpyVersionControlRepository) CloneBare(_ context.Context, url, dir string) error {
	s.Journal.record("clone")
	s.CloneCalls = append(s.CloneCalls, CloneCall{URL: url, Dir: dir})
	return s.CloneErr
}

func (s *SpyVersionControlRepository) PushMirror(_ context.Context, dir, url string) error {
	s.Journal.record("push")
	s.PushCalls = append(s.PushCalls, PushCall{Dir: dir, URL: url})
	return s.PushErr
}

// SpyArchiverRepository implements repositories.ArchiverRepository as a configurable spy.
type SpyArchiverRepository struct {
	Journal *CallJournal

	// --- Compress ---
	CompressErr   error
	CompressCalls []CompressCall

	// --- Extract ---
	ExtractErr   error
	ExtractCalls []ExtractCall
}

// CompressCall records a single invocation of Compress.
type CompressCall struct {
	SrcDir string
	Dest   string
}

// ExtractCall records a single invocation of Extract.
type ExtractCall struct {
	Archive string
	DestDir string
}

var _ repositories.ArchiverRepository = (*SpyArchiverRepository)(nil)

func (s *SpyArchiverRepository) Compress(_ context.Context, srcDir, dest string) error {
	s.Journal.record("compress")
	s.CompressCalls = append(s.CompressCalls, CompressCall{SrcDir: srcDir, Dest: dest})
	return s.CompressErr
}

func (s *SpyArchiverRepository) Extract(_ context.Context, archive, destDir string) error {
	s.Journal.record("extract")
	s.ExtractCalls = append(s.ExtractCalls, ExtractCall{Archive: archive, DestDir: destDir})
	return s.ExtractErr
}

// SpyObjectStorageRepository implements repositories.ObjectStorageRepository as a configurable spy.
type SpyObjectStorageRepository struct {
	Journal *CallJournal

	// --- Upload ---
	UploadErr   error
	UploadCalls []TransferCall

	// --- Download ---
	DownloadErr   error
	DownloadCalls []TransferCall
}

// TransferCall records a single Upload or Download.
type TransferCall struct {
	Path     string // local file (upload) or directory (download)
	Location entities.BucketLocation
	Profile  string
}

var _ repositories.ObjectStorageRepository = (*SpyObjectStorageRepository)(nil)

func (s *SpyObjectStorageRepository) Upload(
	_ context.Context, file string, dest entities.BucketLocation, profile string,
) error {
	s.Journal.record("upload")
	s.UploadCalls = append(s.UploadCalls, TransferCall{Path: file, Location: dest, Profile: profile})
	return s.UploadErr
}

func (s *SpyObjectStorageRepository) Download(
	_ context.Context, src entities.BucketLocation, dir, profile string,
) error {
	s.Journal.record("download")
	s.DownloadCalls = append(s.DownloadCalls, TransferCall{Path: dir, Location: src, Profile: profile})
	return s.DownloadErr
}

// SpyWorkspaceRepository implements repositories.WorkspaceRepository, handing
// out fake paths below Root and counting releases.
type SpyWorkspaceRepository struct {
	Root       string
	AcquireErr error
	Acquired   []string
	Released   []string
}

var _ repositories.WorkspaceRepository = (*SpyWorkspaceRepository)(nil)

func (s *SpyWorkspaceRepository) Acquire() (*entities.Workspace, error) {
	if s.AcquireErr != nil {
		return nil, s.AcquireErr
	}
	path := filepath.Join(s.Root, fmt.Sprintf("ws-%d", len(s.Acquired)+1))
	s.Acquired = append(s.Acquired, path)
	return entities.NewWorkspace(path, func() {
		s.Released = append(s.Released, path)
	}), nil
}

// SpyToolchain bundles one spy per toolchain repository sharing a journal.
type SpyToolchain struct {
	Journal        *CallJournal
	VersionControl *SpyVersionControlRepository
	Archiver       *SpyArchiverRepository
	ObjectStorage  *SpyObjectStorageRepository
	Workspace      *SpyWorkspaceRepository
}

// NewSpyToolchain creates spies whose workspaces live under root.
func NewSpyToolchain(root string) *SpyToolchain {
	journal := &CallJournal{}
	return &SpyToolchain{
		Journal:        journal,
		VersionControl: &SpyVersionControlRepository{Journal: journal},
		Archiver:       &SpyArchiverRepository{Journal: journal},
		ObjectStorage:  &SpyObjectStorageRepository{Journal: journal},
		Workspace:      &SpyWorkspaceRepository{Root: root},
	}
}

// Toolchain returns the spies as an infrastructure toolchain.
func (s *SpyToolchain) Toolchain() *infraRepos.Toolchain {
	return &infraRepos.Toolchain{
		VersionControl: s.VersionControl,
		Archiver:       s.Archiver,
		ObjectStorage:  s.ObjectStorage,
		Workspace:      s.Workspace,
	}
}

// Registry returns a driver registry serving the spies under driver.
func (s *SpyToolchain) Registry(driver string) *infraRepos.DriverRegistry {
	reg := infraRepos.NewDriverRegistry()
	reg.Register(driver, func(_ *entities.Settings) (*infraRepos.Toolchain, error) {
		return s.Toolchain(), nil
	})
	return reg
}
