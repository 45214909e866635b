package repositories

import "github.com/rios0rios0/gilthub/internal/domain/entities"

// WorkspaceRepository hands out scratch directories.
type WorkspaceRepository interface {
	// Acquire creates a new empty directory. The caller owns it and must
	// defer its Release.
	Acquire() (*entities.Workspace, error)
}
