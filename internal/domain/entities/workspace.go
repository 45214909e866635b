package entities

// Workspace is a scratch directory owned by exactly one pipeline run.
// Release must be deferred right after acquisition; it is safe to call twice.
type Workspace struct {
	Path    string
	release func()
}

// NewWorkspace wraps an existing directory together with its release function.
func NewWorkspace(path string, release func()) *Workspace {
	return &Workspace{Path: path, release: release}
}

// Release removes the workspace. Later calls do nothing.
func (w *Workspace) Release() {
	if w == nil || w.release == nil {
		return
	}
	release := w.release
	w.release = nil
	release()
}
