package reclaim

import (
	"context"
	"errors"
	"testing"
)

func TestFlowEmptySelectionEndsImmediately(t *testing.T) {
	flow := NewFlow(true)
	if err := flow.Finalize(nil); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if flow.State() != StateDone {
		t.Fatalf("state = %v, want Done", flow.State())
	}
	if len(flow.Outcomes()) != 0 {
		t.Fatalf("empty selection must produce no outcomes")
	}
	// No confirmation stage is reachable after a no-op selection.
	if err := flow.ConfirmLocal(true); !errors.Is(err, ErrBadState) {
		t.Fatalf("ConfirmLocal after Done = %v, want ErrBadState", err)
	}
}

func TestFlowDeclineLocalLeavesEverythingUntouched(t *testing.T) {
	mover := &fakeMover{}
	deleter := &fakeDeleter{}
	exec := NewExecutor(mover, deleter)

	flow := NewFlow(true)
	if err := flow.Finalize([]Item{{Path: "/work/c", RemoteSlug: "o/c"}}); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if err := flow.ConfirmLocal(false); err != nil {
		t.Fatalf("ConfirmLocal: %v", err)
	}
	if flow.State() != StateDone {
		t.Fatalf("state = %v, want Done after decline", flow.State())
	}
	if err := flow.Execute(context.Background(), exec, true); !errors.Is(err, ErrBadState) {
		t.Fatalf("Execute after decline = %v, want ErrBadState", err)
	}
	if len(mover.calls) != 0 || len(deleter.calls) != 0 {
		t.Fatalf("decline must leave filesystem and remote untouched")
	}
}

func TestFlowLocalConsentNeverImpliesRemote(t *testing.T) {
	mover := &fakeMover{}
	deleter := &fakeDeleter{}
	exec := NewExecutor(mover, deleter)

	flow := NewFlow(true)
	if err := flow.Finalize([]Item{{Path: "/work/c", RemoteSlug: "o/c"}}); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if err := flow.ConfirmLocal(true); err != nil {
		t.Fatalf("ConfirmLocal: %v", err)
	}
	if flow.State() != StateConfirmRemote {
		t.Fatalf("state = %v, want ConfirmRemote", flow.State())
	}
	if err := flow.ConfirmRemote(false); err != nil {
		t.Fatalf("ConfirmRemote: %v", err)
	}
	if err := flow.Execute(context.Background(), exec, true); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	outcomes := flow.Outcomes()
	if outcomes[0].Local != StatusMoved || outcomes[0].Remote != StatusRemoteSkipped {
		t.Fatalf("outcome = %+v, want moved + remote-skipped", outcomes[0])
	}
	if len(deleter.calls) != 0 {
		t.Fatalf("declined remote consent must make no network call")
	}
}

func TestFlowSkipsRemoteStageWhenNoItemHasRemote(t *testing.T) {
	flow := NewFlow(true)
	if err := flow.Finalize([]Item{{Path: "/work/c"}}); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if flow.NeedsRemoteConfirm() {
		t.Fatalf("no selected item has a remote; stage must be skipped")
	}
	if err := flow.ConfirmLocal(true); err != nil {
		t.Fatalf("ConfirmLocal: %v", err)
	}
	if flow.State() != StateExecuting {
		t.Fatalf("state = %v, want Executing", flow.State())
	}
}

func TestFlowExecutesAtMostOnce(t *testing.T) {
	mover := &fakeMover{}
	exec := NewExecutor(mover, &fakeDeleter{})

	flow := NewFlow(false)
	if err := flow.Finalize([]Item{{Path: "/work/a"}}); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if err := flow.ConfirmLocal(true); err != nil {
		t.Fatalf("ConfirmLocal: %v", err)
	}
	if err := flow.Execute(context.Background(), exec, true); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if err := flow.Execute(context.Background(), exec, true); !errors.Is(err, ErrAlreadyExecuted) {
		t.Fatalf("second Execute = %v, want ErrAlreadyExecuted", err)
	}
	if len(mover.calls) != 1 {
		t.Fatalf("mover calls = %v, want exactly one", mover.calls)
	}
}

func TestFlowDryRunOutcomes(t *testing.T) {
	mover := &fakeMover{}
	exec := NewExecutor(mover, &fakeDeleter{})

	flow := NewFlow(false)
	if err := flow.Finalize([]Item{{Path: "/work/a"}, {Path: "/work/b"}}); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if err := flow.ConfirmLocal(true); err != nil {
		t.Fatalf("ConfirmLocal: %v", err)
	}
	if err := flow.Execute(context.Background(), exec, false); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, out := range flow.Outcomes() {
		if out.Local != StatusSkippedDryRun {
			t.Fatalf("outcome = %+v, want skipped-dry-run", out)
		}
	}
	if len(mover.calls) != 0 {
		t.Fatalf("dry run must not move anything")
	}
}
