// Package reclaim performs the gated, reversible deletion of selected paths
// and, when asked, their remote repositories.
package reclaim

import "context"

type Status string

const (
	StatusSkippedDryRun      Status = "skipped-dry-run"
	StatusMoved              Status = "moved"
	StatusMoveFailed         Status = "move-failed"
	StatusRemoteDeleted      Status = "remote-deleted"
	StatusRemoteDeleteFailed Status = "remote-delete-failed"
	StatusRemoteSkipped      Status = "remote-skipped"
)

// Item is one confirmed selection: a repository path in nuke mode, a
// cleanable directory path in clean mode. RemoteSlug is set only for nuke
// items with a configured GitHub origin.
type Item struct {
	Path       string
	RemoteSlug string
}

// RemoteMode states what should happen to an item's remote repository.
type RemoteMode int

const (
	// RemoteNone: remote deletion was never requested for this run.
	RemoteNone RemoteMode = iota
	// RemoteSkip: requested but not consented to; no network call is made.
	RemoteSkip
	// RemoteDelete: requested and separately confirmed.
	RemoteDelete
)

type Options struct {
	// Execute must be set explicitly; the zero value is a dry run.
	Execute bool
	Remote  RemoteMode
}

// Mover moves a path into a recoverable holding area.
type Mover interface {
	Move(ctx context.Context, path string) error
}

// RemoteDeleter deletes a named remote repository.
type RemoteDeleter interface {
	Delete(ctx context.Context, slug string) error
}

// Outcome records what happened to one item. Local and remote results are
// independent: a moved item with a failed remote delete is a valid final
// state and is never rolled back.
type Outcome struct {
	Path      string
	Local     Status
	LocalErr  error
	Remote    Status // empty when no remote step applies to the item
	RemoteErr error
}

type Executor struct {
	mover   Mover
	deleter RemoteDeleter
}

func NewExecutor(mover Mover, deleter RemoteDeleter) *Executor {
	return &Executor{mover: mover, deleter: deleter}
}

// Execute processes every item exactly once. One item's failure never stops
// the rest of the batch, and nothing is retried.
func (e *Executor) Execute(ctx context.Context, items []Item, opts Options) []Outcome {
	outcomes := make([]Outcome, 0, len(items))
	for _, item := range items {
		outcomes = append(outcomes, e.executeOne(ctx, item, opts))
	}
	return outcomes
}

func (e *Executor) executeOne(ctx context.Context, item Item, opts Options) Outcome {
	out := Outcome{Path: item.Path}
	if !opts.Execute {
		out.Local = StatusSkippedDryRun
		return out
	}

	if err := e.mover.Move(ctx, item.Path); err != nil {
		out.Local = StatusMoveFailed
		out.LocalErr = err
	} else {
		out.Local = StatusMoved
	}

	switch opts.Remote {
	case RemoteNone:
		return out
	case RemoteSkip:
		out.Remote = StatusRemoteSkipped
		return out
	}

	// Remote deletion happens only after the local move succeeded and only
	// when the item actually has a remote.
	if out.Local != StatusMoved || item.RemoteSlug == "" {
		out.Remote = StatusRemoteSkipped
		return out
	}
	if err := e.deleter.Delete(ctx, item.RemoteSlug); err != nil {
		out.Remote = StatusRemoteDeleteFailed
		out.RemoteErr = err
	} else {
		out.Remote = StatusRemoteDeleted
	}
	return out
}

// Tally counts outcomes per status for the final report.
type Tally map[Status]int

func Summarize(outcomes []Outcome) Tally {
	tally := Tally{}
	for _, out := range outcomes {
		if out.Local != "" {
			tally[out.Local]++
		}
		if out.Remote != "" {
			tally[out.Remote]++
		}
	}
	return tally
}

// AllFailed reports whether every attempted operation failed. This is the
// only condition under which the process signals failure; partial success is
// reported item by item but exits clean.
func (t Tally) AllFailed() bool {
	attempted := t[StatusMoved] + t[StatusMoveFailed] + t[StatusRemoteDeleted] + t[StatusRemoteDeleteFailed]
	failed := t[StatusMoveFailed] + t[StatusRemoteDeleteFailed]
	return attempted > 0 && failed == attempted
}
