package reclaim

import (
	"context"
	"errors"
)

// State is the position of a run inside the confirmation machine:
// Listing → Selected → ConfirmLocal → ConfirmRemote (optional) → Executing → Done.
type State int

const (
	StateListing State = iota
	StateSelected
	StateConfirmLocal
	StateConfirmRemote
	StateExecuting
	StateDone
)

var (
	ErrBadState        = errors.New("flow: transition not allowed in current state")
	ErrAlreadyExecuted = errors.New("flow: selection already executed")
)

// Flow gates a single batch of items behind explicit confirmations.
// Execution happens at most once per flow; a new run needs a new flow.
type Flow struct {
	state           State
	items           []Item
	remoteRequested bool
	remoteConfirmed bool
	executed        bool
	outcomes        []Outcome
}

// NewFlow starts at Listing. remoteRequested marks that the operator asked
// for remote deletion on this run; consent is still collected separately.
func NewFlow(remoteRequested bool) *Flow {
	return &Flow{state: StateListing, remoteRequested: remoteRequested}
}

func (f *Flow) State() State {
	return f.state
}

// Finalize fixes the selection. An empty selection ends the flow immediately
// with no outcomes and no confirmation stages.
func (f *Flow) Finalize(items []Item) error {
	if f.state != StateListing {
		return ErrBadState
	}
	if len(items) == 0 {
		f.state = StateDone
		return nil
	}
	f.items = append([]Item(nil), items...)
	f.state = StateSelected
	return nil
}

// NeedsRemoteConfirm reports whether a separate remote confirmation stage is
// required: remote deletion was requested and at least one selected item has
// a remote identity.
func (f *Flow) NeedsRemoteConfirm() bool {
	if !f.remoteRequested {
		return false
	}
	for _, item := range f.items {
		if item.RemoteSlug != "" {
			return true
		}
	}
	return false
}

// ConfirmLocal records the operator's answer to the local-deletion prompt.
// Declining ends the flow with no side effects. Approval never implies
// remote consent.
func (f *Flow) ConfirmLocal(approved bool) error {
	if f.state != StateSelected {
		return ErrBadState
	}
	f.state = StateConfirmLocal
	if !approved {
		f.state = StateDone
		return nil
	}
	if f.NeedsRemoteConfirm() {
		f.state = StateConfirmRemote
		return nil
	}
	f.state = StateExecuting
	return nil
}

// ConfirmRemote records the separate remote consent. Declining keeps the run
// going but downgrades remote handling to skip.
func (f *Flow) ConfirmRemote(approved bool) error {
	if f.state != StateConfirmRemote {
		return ErrBadState
	}
	f.remoteConfirmed = approved
	f.state = StateExecuting
	return nil
}

// Execute runs the batch through the executor, at most once per flow.
func (f *Flow) Execute(ctx context.Context, executor *Executor, execute bool) error {
	if f.executed {
		return ErrAlreadyExecuted
	}
	if f.state != StateExecuting {
		return ErrBadState
	}
	f.executed = true

	remote := RemoteNone
	if f.remoteRequested {
		remote = RemoteSkip
		if f.remoteConfirmed {
			remote = RemoteDelete
		}
	}
	f.outcomes = executor.Execute(ctx, f.items, Options{Execute: execute, Remote: remote})
	f.state = StateDone
	return nil
}

// Outcomes is valid once the flow reaches Done.
func (f *Flow) Outcomes() []Outcome {
	return f.outcomes
}

func (f *Flow) Items() []Item {
	return f.items
}
