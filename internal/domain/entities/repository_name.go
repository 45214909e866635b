package entities

import "strings"

const (
	gitSuffix     = ".git"
	ArchiveSuffix = ".tar.gz"
)

// ArchiveRepositoryName derives the repository name from a clone URL:
// the final path segment, whitespace trimmed, with one trailing ".git" removed.
//
//	git@example.com:org/widget.git → widget
func ArchiveRepositoryName(cloneURL string) string {
	return strings.TrimSpace(strings.TrimSuffix(baseSegment(cloneURL), gitSuffix))
}

// RestoreRepositoryName derives the repository name from a bucket archive
// location. Unlike ArchiveRepositoryName the suffix is kept, so
// s3://bucket/widget.tar.gz yields "widget.tar.gz".
func RestoreRepositoryName(archiveURL string) string {
	return baseSegment(archiveURL)
}

// ArchiveFileName is the name of the archive produced for a repository.
func ArchiveFileName(repoName string) string {
	return repoName + ArchiveSuffix
}

// baseSegment behaves like basename(1) on the trimmed input, except that an
// input made only of slashes yields "" instead of "/".
func baseSegment(raw string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	return strings.TrimSpace(trimmed)
}
