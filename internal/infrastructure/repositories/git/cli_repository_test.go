//go:build unit

package git_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gilthub/internal/infrastructure/repositories/git"
	doubles "github.com/rios0rios0/gilthub/test/infrastructure/repositorydoubles"
)

func TestCLIRepository(t *testing.T) {
	t.Parallel()

	t.Run("should run a bare clone into the directory", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &doubles.SpyRunner{}
		repo := git.NewCLIRepository(runner, "/usr/bin/git")

		// when
		err := repo.CloneBare(context.Background(), "git@example.com:org/widget.git", "/tmp/ws-1")

		// then
		require.NoError(t, err)
		assert.Equal(t, []doubles.RunCall{{
			Name: "/usr/bin/git",
			Args: []string{"clone", "--bare", "git@example.com:org/widget.git", "/tmp/ws-1"},
		}}, runner.Calls)
	})

	t.Run("should run a mirror push inside the directory", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &doubles.SpyRunner{}
		repo := git.NewCLIRepository(runner, "git")

		// when
		err := repo.PushMirror(context.Background(), "/tmp/ws-1", "git@example.com:org/widget2.git")

		// then
		require.NoError(t, err)
		assert.Equal(t, []doubles.RunCall{{
			Dir:  "/tmp/ws-1",
			Name: "git",
			Args: []string{"push", "--mirror", "git@example.com:org/widget2.git"},
		}}, runner.Calls)
	})

	t.Run("should return the runner error", func(t *testing.T) {
		t.Parallel()

		// given
		runErr := errors.New("git exited with status 128")
		repo := git.NewCLIRepository(&doubles.SpyRunner{RunErr: runErr}, "git")

		// when
		err := repo.CloneBare(context.Background(), "git@example.com:org/widget.git", "/tmp/ws-1")

		// then
		require.ErrorIs(t, err, runErr)
	})
}
