//go:build unit

package repositories_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gilthub/internal/domain/entities"
	"github.com/rios0rios0/gilthub/internal/infrastructure/repositories"
	"github.com/rios0rios0/gilthub/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/gilthub/test/infrastructure/repositorydoubles"
)

func TestDriverRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should register and retrieve a driver by name", func(t *testing.T) {
		t.Parallel()

		// given
		spies := doubles.NewSpyToolchain(t.TempDir())
		reg := spies.Registry("spy")
		settings := entitybuilders.NewSettingsBuilder().WithDriver("spy").BuildSettings()

		// when
		toolchain, err := reg.Get(settings)

		// then
		require.NoError(t, err)
		assert.Same(t, spies.VersionControl, toolchain.VersionControl)
		assert.Same(t, spies.Archiver, toolchain.Archiver)
	})

	t.Run("should return error for unknown driver", func(t *testing.T) {
		t.Parallel()

		// given
		reg := repositories.NewDriverRegistry()
		reg.Register(entities.DriverNative, repositories.NewNativeToolchain)
		reg.Register(entities.DriverCLI, repositories.NewCLIToolchain)
		settings := entitybuilders.NewSettingsBuilder().WithDriver("nonexistent").BuildSettings()

		// when
		toolchain, err := reg.Get(settings)

		// then
		require.Error(t, err)
		assert.Nil(t, toolchain)
		assert.Equal(t, `unknown driver "nonexistent" (known: cli, native)`, err.Error())
	})

	t.Run("should wrap factory errors", func(t *testing.T) {
		t.Parallel()

		// given
		reg := repositories.NewDriverRegistry()
		reg.Register("broken", func(_ *entities.Settings) (*repositories.Toolchain, error) {
			return nil, errors.New("no endpoint")
		})
		settings := entitybuilders.NewSettingsBuilder().WithDriver("broken").BuildSettings()

		// when
		_, err := reg.Get(settings)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), `failed to initialize driver "broken"`)
	})

	t.Run("should list registered driver names in order", func(t *testing.T) {
		t.Parallel()

		// given
		reg := repositories.NewDriverRegistry()
		reg.Register(entities.DriverNative, repositories.NewNativeToolchain)
		reg.Register(entities.DriverCLI, repositories.NewCLIToolchain)

		// when
		names := reg.Names()

		// then
		assert.Equal(t, []string{"cli", "native"}, names)
	})
}

func TestToolchains(t *testing.T) {
	t.Parallel()

	t.Run("should build every repository of the cli toolchain", func(t *testing.T) {
		t.Parallel()

		// when
		toolchain, err := repositories.NewCLIToolchain(entities.DefaultSettings())

		// then
		require.NoError(t, err)
		assert.NotNil(t, toolchain.VersionControl)
		assert.NotNil(t, toolchain.Archiver)
		assert.NotNil(t, toolchain.ObjectStorage)
		assert.NotNil(t, toolchain.Workspace)
	})

	t.Run("should build every repository of the native toolchain", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entitybuilders.NewSettingsBuilder().WithDriver(entities.DriverNative).BuildSettings()

		// when
		toolchain, err := repositories.NewNativeToolchain(settings)

		// then
		require.NoError(t, err)
		assert.NotNil(t, toolchain.VersionControl)
		assert.NotNil(t, toolchain.Archiver)
		assert.NotNil(t, toolchain.ObjectStorage)
		assert.NotNil(t, toolchain.Workspace)
	})
}
