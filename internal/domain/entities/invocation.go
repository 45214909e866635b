package entities

// DefaultProfile is the named cloud credential profile used when none is given.
const DefaultProfile = "default"

// Invocation is the parsed command-line request.
// Source and Destination mean clone URL and bucket URL for ModeArchive,
// and bucket archive URL and git repository URL for ModeRestore.
type Invocation struct {
	Mode        Mode
	Profile     string
	Source      string
	Destination string
}

// ResolveProfile returns profile unchanged, or DefaultProfile when it is empty.
func ResolveProfile(profile string) string {
	if profile == "" {
		return DefaultProfile
	}
	return profile
}

// ResolvedProfile is ResolveProfile applied to the invocation's profile.
func (i Invocation) ResolvedProfile() string {
	return ResolveProfile(i.Profile)
}
