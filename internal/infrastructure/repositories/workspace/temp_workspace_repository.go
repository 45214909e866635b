package workspace

import (
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gilthub/internal/domain/entities"
)

const dirPattern = "gilthub-*"

// TempWorkspaceRepository creates scratch directories under a root directory.
type TempWorkspaceRepository struct {
	root string
}

// NewTempWorkspaceRepository creates a repository rooted at root, or at the
// OS temporary directory when root is empty.
func NewTempWorkspaceRepository(root string) *TempWorkspaceRepository {
	return &TempWorkspaceRepository{root: root}
}

func (it *TempWorkspaceRepository) Acquire() (*entities.Workspace, error) {
	dir, err := os.MkdirTemp(it.root, dirPattern)
	if err != nil {
		return nil, entities.NewLaunchError("create temp dir", err)
	}
	logger.Debugf("Acquired workspace %s", dir)

	return entities.NewWorkspace(dir, func() {
		if removeErr := os.RemoveAll(dir); removeErr != nil {
			logger.Warnf("Failed to remove workspace %s: %v", dir, removeErr)
			return
		}
		logger.Debugf("Released workspace %s", dir)
	}), nil
}
