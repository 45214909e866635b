package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
// Settings and invocations are built per command run by the controllers.
func RegisterProviders(_ *dig.Container) error {
	return nil
}
