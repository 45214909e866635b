package repositories

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rios0rios0/gilthub/internal/domain/entities"
	domainRepos "github.com/rios0rios0/gilthub/internal/domain/repositories"
)

// Toolchain is the set of repositories a pipeline runs against.
type Toolchain struct {
	VersionControl domainRepos.VersionControlRepository
	Archiver       domainRepos.ArchiverRepository
	ObjectStorage  domainRepos.ObjectStorageRepository
	Workspace      domainRepos.WorkspaceRepository
}

// DriverFactory builds a Toolchain from the loaded settings.
type DriverFactory func(settings *entities.Settings) (*Toolchain, error)

// DriverRegistry manages all registered driver implementations.
type DriverRegistry struct {
	drivers map[string]DriverFactory
}

// NewDriverRegistry creates an empty driver registry.
func NewDriverRegistry() *DriverRegistry {
	return &DriverRegistry{
		drivers: make(map[string]DriverFactory),
	}
}

// Register adds a driver factory under the given name (e.g. "cli").
func (r *DriverRegistry) Register(name string, factory DriverFactory) {
	r.drivers[name] = factory
}

// Get returns the toolchain of the driver named in settings.
func (r *DriverRegistry) Get(settings *entities.Settings) (*Toolchain, error) {
	factory, ok := r.drivers[settings.Driver]
	if !ok {
		return nil, fmt.Errorf("unknown driver %q (known: %s)", settings.Driver, strings.Join(r.Names(), ", "))
	}

	toolchain, err := factory(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize driver %q: %w", settings.Driver, err)
	}
	return toolchain, nil
}

// Names returns the sorted list of registered driver names.
func (r *DriverRegistry) Names() []string {
	names := make([]string, 0, len(r.drivers))
	for name := range r.drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
