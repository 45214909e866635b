//go:build unit

package entities_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gilthub/internal/domain/entities"
)

func TestStageMessages(t *testing.T) {
	t.Parallel()

	t.Run("should map every stage to its fixed message", func(t *testing.T) {
		t.Parallel()

		// given
		want := map[entities.Stage]string{
			entities.StageClone:      "Unable to clone repository.",
			entities.StageCompress:   "Unable to compress repository.",
			entities.StageUpload:     "Unable to upload archived repository to S3.",
			entities.StageDownload:   "Unable to download archived repository.",
			entities.StageUncompress: "Unable to un-compress repository.",
			entities.StageRestore:    "Unable to restore repository.",
		}

		for stage, message := range want {
			// when
			err := entities.NewStageError(stage, errors.New("exit status 1"))

			// then
			assert.Equal(t, message, err.Error())
			assert.Equal(t, message, stage.Message())
		}
	})
}

func TestStageError(t *testing.T) {
	t.Parallel()

	t.Run("should match ErrStageFailed and its cause", func(t *testing.T) {
		t.Parallel()

		// given
		cause := errors.New("exit status 128")
		err := fmt.Errorf("wrapped: %w", entities.NewStageError(entities.StageClone, cause))

		// when
		var stageErr *entities.StageError
		found := errors.As(err, &stageErr)

		// then
		require.True(t, found)
		assert.Equal(t, entities.StageClone, stageErr.Stage)
		require.ErrorIs(t, err, entities.ErrStageFailed)
		require.ErrorIs(t, err, cause)
	})

	t.Run("should match ErrStageFailed without a cause", func(t *testing.T) {
		t.Parallel()

		// when
		err := entities.NewStageError(entities.StageUpload, nil)

		// then
		require.ErrorIs(t, err, entities.ErrStageFailed)
	})
}

func TestLaunchError(t *testing.T) {
	t.Parallel()

	t.Run("should describe the operation and unwrap its cause", func(t *testing.T) {
		t.Parallel()

		// given
		cause := errors.New("executable file not found in $PATH")

		// when
		err := entities.NewLaunchError("run git", cause)

		// then
		assert.Equal(t, "failed to run git: executable file not found in $PATH", err.Error())
		require.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, entities.ErrStageFailed)
	})
}

func TestWorkspace(t *testing.T) {
	t.Parallel()

	t.Run("should release exactly once", func(t *testing.T) {
		t.Parallel()

		// given
		releases := 0
		ws := entities.NewWorkspace("/tmp/ws", func() { releases++ })

		// when
		ws.Release()
		ws.Release()

		// then
		assert.Equal(t, 1, releases)
	})

	t.Run("should tolerate a nil workspace", func(t *testing.T) {
		t.Parallel()

		// given
		var ws *entities.Workspace

		// when / then
		assert.NotPanics(t, ws.Release)
	})
}
