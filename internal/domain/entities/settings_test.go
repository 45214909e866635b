//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gilthub/internal/domain/entities"
)

func writeSettingsFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	t.Run("should default to the cli driver and standard executables", func(t *testing.T) {
		t.Parallel()

		// when
		settings := entities.DefaultSettings()

		// then
		assert.Equal(t, entities.DriverCLI, settings.Driver)
		assert.Equal(t, entities.Binaries{Git: "git", Tar: "tar", AWS: "aws"}, settings.Binaries)
		assert.Empty(t, settings.Profile)
		require.NoError(t, settings.Validate())
	})
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestNewSettings(t *testing.T) {
	t.Run("should load a YAML file on top of the defaults", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettingsFile(t, "gilthub.yaml", `
profile: archive-admin
temp_dir: /var/tmp/gilthub
binaries:
  git: /usr/local/bin/git
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "archive-admin", settings.Profile)
		assert.Equal(t, entities.DriverCLI, settings.Driver)
		assert.Equal(t, "/var/tmp/gilthub", settings.TempDir)
		assert.Equal(t, "/usr/local/bin/git", settings.Binaries.Git)
		assert.Equal(t, "tar", settings.Binaries.Tar)
		assert.Equal(t, "aws", settings.Binaries.AWS)
	})

	t.Run("should expand environment variables in YAML values", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("GILTHUB_TEST_YAML_PROFILE", "from-env")
		path := writeSettingsFile(t, ".gilthub.yml", "profile: ${GILTHUB_TEST_YAML_PROFILE}\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "from-env", settings.Profile)
	})

	t.Run("should load an HCL file with env references", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("GILTHUB_TEST_HCL_PROFILE", "hcl-profile")
		path := writeSettingsFile(t, "gilthub.hcl", `
profile = env.GILTHUB_TEST_HCL_PROFILE
driver  = "native"

s3 {
  endpoint = "minio.local:9000"
  region   = "eu-west-1"
  insecure = true
}
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "hcl-profile", settings.Profile)
		assert.Equal(t, entities.DriverNative, settings.Driver)
		assert.Equal(t, "minio.local:9000", settings.S3.Endpoint)
		assert.Equal(t, "eu-west-1", settings.S3.Region)
		assert.True(t, settings.S3.Insecure)
		assert.Equal(t, "git", settings.Binaries.Git)
	})

	t.Run("should decode YAML and HCL into the same settings", func(t *testing.T) {
		t.Parallel()

		// given
		yamlPath := writeSettingsFile(t, "gilthub.yaml", `
profile: shared
binaries:
  tar: gtar
`)
		hclPath := writeSettingsFile(t, "gilthub.hcl", `
profile = "shared"
binaries {
  tar = "gtar"
}
`)

		// when
		fromYAML, yamlErr := entities.NewSettings(yamlPath)
		fromHCL, hclErr := entities.NewSettings(hclPath)

		// then
		require.NoError(t, yamlErr)
		require.NoError(t, hclErr)
		assert.Equal(t, fromYAML, fromHCL)
	})

	t.Run("should fail for an unknown driver", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettingsFile(t, "gilthub.yaml", "driver: ftp\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Nil(t, settings)
		assert.Contains(t, err.Error(), "driver must be")
	})

	t.Run("should fail when a cli executable is blank", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettingsFile(t, "gilthub.yaml", "binaries:\n  aws: \"\"\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "binaries")
	})

	t.Run("should fail when the native driver has no endpoint", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettingsFile(t, "gilthub.yaml", "driver: native\ns3:\n  endpoint: \"\"\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "s3.endpoint")
	})

	t.Run("should fail when the file does not exist", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.NewSettings(filepath.Join(t.TempDir(), "missing.yaml"))

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("should fail on malformed HCL", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSettingsFile(t, "gilthub.hcl", "profile = \n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}
