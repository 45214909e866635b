//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	logger "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gilthub/internal/domain/entities"
)

// discoveryTree changes into an empty working directory with an empty HOME.
func discoveryTree(t *testing.T) (string, string) {
	t.Helper()

	work := t.TempDir()
	home := t.TempDir()
	t.Chdir(work)
	t.Setenv("HOME", home)
	return work, home
}

func touch(t *testing.T, path string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o600))
}

//nolint:paralleltest // changes the working directory and HOME
func TestFindConfigFile(t *testing.T) {
	t.Run("should prefer the working directory over the home directory", func(t *testing.T) {
		// given
		_, home := discoveryTree(t)
		touch(t, "gilthub.yaml")
		touch(t, filepath.Join(home, ".gilthub.yaml"))

		// when
		path, err := entities.FindConfigFile()

		// then
		require.NoError(t, err)
		assert.Equal(t, "gilthub.yaml", path)
	})

	t.Run("should prefer the dotted YAML name over the HCL name", func(t *testing.T) {
		// given
		discoveryTree(t)
		touch(t, "gilthub.hcl")
		touch(t, ".gilthub.yaml")

		// when
		path, err := entities.FindConfigFile()

		// then
		require.NoError(t, err)
		assert.Equal(t, ".gilthub.yaml", path)
	})

	t.Run("should look in .config before configs", func(t *testing.T) {
		// given
		discoveryTree(t)
		touch(t, filepath.Join("configs", ".gilthub.yaml"))
		touch(t, filepath.Join(".config", "gilthub.hcl"))

		// when
		path, err := entities.FindConfigFile()

		// then
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(".config", "gilthub.hcl"), path)
	})

	t.Run("should fall back to the home directory and then its .config", func(t *testing.T) {
		// given
		_, home := discoveryTree(t)
		touch(t, filepath.Join(home, ".config", "gilthub.yml"))

		// when
		fromConfig, configErr := entities.FindConfigFile()
		touch(t, filepath.Join(home, "gilthub.yml"))
		fromHome, homeErr := entities.FindConfigFile()

		// then
		require.NoError(t, configErr)
		require.NoError(t, homeErr)
		assert.Equal(t, filepath.Join(home, ".config", "gilthub.yml"), fromConfig)
		assert.Equal(t, filepath.Join(home, "gilthub.yml"), fromHome)
	})

	t.Run("should fail when no location holds a config file", func(t *testing.T) {
		// given
		discoveryTree(t)

		// when
		path, err := entities.FindConfigFile()

		// then
		require.Error(t, err)
		assert.Empty(t, path)
		assert.Contains(t, err.Error(), "config file not found")
	})
}

//nolint:paralleltest // inspects the standard logger
func TestNewSettingsUnsetVariable(t *testing.T) {
	t.Run("should warn and expand an unset variable to nothing", func(t *testing.T) {
		// given
		hook := test.NewGlobal()
		t.Cleanup(func() { logger.StandardLogger().ReplaceHooks(make(logger.LevelHooks)) })
		t.Setenv("GILTHUB_TEST_UNSET_PROFILE", "")
		path := writeSettingsFile(t, "gilthub.yaml", "profile: ${GILTHUB_TEST_UNSET_PROFILE}\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Empty(t, settings.Profile)
		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, logger.WarnLevel, hook.LastEntry().Level)
		assert.Contains(t, hook.LastEntry().Message, "GILTHUB_TEST_UNSET_PROFILE")
	})
}
