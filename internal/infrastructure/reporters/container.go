package reporters

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/gilthub/internal/domain/repositories"
)

// RegisterProviders registers the console reporter with the DIG container.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(func() repositories.Reporter {
		return NewStdoutReporter()
	})
}
