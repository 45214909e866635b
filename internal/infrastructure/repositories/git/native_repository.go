package git

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	logger "github.com/sirupsen/logrus"
)

const anonymousRemote = "anonymous"

// mirrorRefSpec maps every local ref onto the same remote ref, forcing updates.
const mirrorRefSpec = config.RefSpec("+refs/*:refs/*")

// NativeRepository performs git operations in-process with go-git.
// SSH URLs authenticate through the running ssh-agent, as go-git does by default.
type NativeRepository struct {
	progress io.Writer
}

// NewNativeRepository creates a repository writing transfer progress to progress (may be nil).
func NewNativeRepository(progress io.Writer) *NativeRepository {
	return &NativeRepository{progress: progress}
}

// CloneBare clones url into dir as a bare repository holding every remote ref
// under its own name, which is what `git clone --bare` gives for branches and tags.
func (it *NativeRepository) CloneBare(ctx context.Context, url, dir string) error {
	//nolint:exhaustruct // Minimal CloneOptions initialization with required fields only
	_, err := gogit.PlainCloneContext(ctx, dir, true, &gogit.CloneOptions{
		URL:      url,
		Mirror:   true,
		Progress: it.progress,
	})
	if err != nil {
		return fmt.Errorf("failed to clone %s: %w", url, err)
	}
	return nil
}

// PushMirror pushes all refs of the repository in dir to url and deletes
// remote refs that do not exist locally, like `git push --mirror`.
func (it *NativeRepository) PushMirror(ctx context.Context, dir, url string) error {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return fmt.Errorf("failed to open repository in %s: %w", dir, err)
	}

	//nolint:exhaustruct // Minimal RemoteConfig initialization with required fields only
	remote, err := repo.CreateRemoteAnonymous(&config.RemoteConfig{
		Name: anonymousRemote,
		URLs: []string{url},
	})
	if err != nil {
		return fmt.Errorf("failed to configure remote %s: %w", url, err)
	}

	deletions, err := staleRefSpecs(ctx, repo, remote)
	if err != nil {
		return fmt.Errorf("failed to list refs of %s: %w", url, err)
	}

	//nolint:exhaustruct // Minimal PushOptions initialization with required fields only
	err = remote.PushContext(ctx, &gogit.PushOptions{
		RemoteName: anonymousRemote,
		RefSpecs:   append([]config.RefSpec{mirrorRefSpec}, deletions...),
		Progress:   it.progress,
	})
	if errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		logger.Infof("%s is already up to date", url)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to push to %s: %w", url, err)
	}
	return nil
}

// staleRefSpecs returns one delete refspec per remote ref missing locally.
func staleRefSpecs(ctx context.Context, repo *gogit.Repository, remote *gogit.Remote) ([]config.RefSpec, error) {
	//nolint:exhaustruct // zero ListOptions lists every advertised ref
	remoteRefs, err := remote.ListContext(ctx, &gogit.ListOptions{})
	if errors.Is(err, transport.ErrEmptyRemoteRepository) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var specs []config.RefSpec
	for _, ref := range remoteRefs {
		name := ref.Name()
		if !strings.HasPrefix(name.String(), "refs/") || strings.HasSuffix(name.String(), "^{}") {
			continue
		}

		_, localErr := repo.Reference(name, false)
		if errors.Is(localErr, plumbing.ErrReferenceNotFound) {
			logger.Debugf("Deleting %s, it no longer exists locally", name)
			specs = append(specs, config.RefSpec(":"+name.String()))
			continue
		}
		if localErr != nil {
			return nil, localErr
		}
	}
	return specs, nil
}
