//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/gilthub/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	profile string
	driver  string
	tempDir string
}

// NewSettingsBuilder creates a new settings builder on top of the default settings.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		driver:      entities.DriverCLI,
	}
}

// WithProfile sets the fallback profile.
func (b *SettingsBuilder) WithProfile(profile string) *SettingsBuilder {
	b.profile = profile
	return b
}

// WithDriver sets the driver name.
func (b *SettingsBuilder) WithDriver(driver string) *SettingsBuilder {
	b.driver = driver
	return b
}

// WithTempDir sets the workspace root.
func (b *SettingsBuilder) WithTempDir(dir string) *SettingsBuilder {
	b.tempDir = dir
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	settings := entities.DefaultSettings()
	settings.Profile = b.profile
	settings.Driver = b.driver
	settings.TempDir = b.tempDir
	return settings
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.profile = ""
	b.driver = entities.DriverCLI
	b.tempDir = ""
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		profile:     b.profile,
		driver:      b.driver,
		tempDir:     b.tempDir,
	}
}
