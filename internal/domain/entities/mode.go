package entities

// Mode selects which pipeline an invocation runs.
type Mode string

const (
	ModeArchive Mode = "archive"
	ModeRestore Mode = "restore"
)

// PastTense returns the verb used in success reports ("archived", "restored").
func (m Mode) PastTense() string {
	switch m {
	case ModeArchive:
		return "archived"
	case ModeRestore:
		return "restored"
	default:
		return string(m)
	}
}

// Gerund returns the verb used in failure reports ("archiving", "restoring").
func (m Mode) Gerund() string {
	switch m {
	case ModeArchive:
		return "archiving"
	case ModeRestore:
		return "restoring"
	default:
		return string(m)
	}
}
