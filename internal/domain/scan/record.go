// Package scan discovers version-controlled project directories under a set of
// roots and classifies them by last-commit age.
package scan

import (
	"context"
	"time"
)

// Record describes one discovered repository. It is created by the scanner and
// read-only afterward; only AttachCleanables fills the Cleanables field, once.
type Record struct {
	Path       string
	Name       string
	LastCommit time.Time // zero when the repository's history is unreadable or empty
	Subject    string
	RemoteSlug string // "owner/repo" when a GitHub origin is configured

	Cleanables []CleanableEntry
}

// HasCommit reports whether a last-commit timestamp is known.
func (r Record) HasCommit() bool {
	return !r.LastCommit.IsZero()
}

// DaysStale returns whole days since the last commit.
func (r Record) DaysStale(now time.Time) int {
	if !r.HasCommit() {
		return 0
	}
	return int(now.Sub(r.LastCommit).Hours() / 24)
}

// TotalCleanableSize sums the sizes of all attached cleanable entries.
func (r Record) TotalCleanableSize() int64 {
	var total int64
	for _, entry := range r.Cleanables {
		total += entry.SizeBytes
	}
	return total
}

// CleanableEntry is a regenerable-artifact directory inside a repository. The
// size is a snapshot taken at discovery time.
type CleanableEntry struct {
	Path      string
	Name      string
	SizeBytes int64
}

// Metadata is what the version-control reader knows about one repository.
type Metadata struct {
	LastCommit time.Time
	Subject    string
	HasCommit  bool
	RemoteSlug string
}

// MetadataReader reads commit and remote information for a repository path.
// A history-less repository yields HasCommit=false with a nil error.
type MetadataReader interface {
	Read(ctx context.Context, repoPath string) (Metadata, error)
}
