package journal

import (
	"testing"
	"time"

	"emberfall/ui/internal/telemetry"
)

func TestAppendAndDrainPatches(t *testing.T) {
	j := New(4, telemetry.Nop())

	j.AppendPatch(Patch{Kind: PatchInventorySlot, Source: "s", Version: 1})
	j.AppendPatch(Patch{Kind: PatchDialogueStatus, Source: "s", Version: 2})
	if j.PendingPatches() != 2 {
		t.Fatalf("expected 2 pending patches, got %d", j.PendingPatches())
	}

	drained := j.DrainPatches()
	if len(drained) != 2 {
		t.Fatalf("expected 2 drained patches, got %d", len(drained))
	}
	if drained[0].Kind != PatchInventorySlot || drained[1].Kind != PatchDialogueStatus {
		t.Fatalf("expected patches drained in append order, got %d then %d", drained[0].Kind, drained[1].Kind)
	}
	if j.PendingPatches() != 0 {
		t.Fatalf("expected buffer cleared, %d pending", j.PendingPatches())
	}
	if j.DrainPatches() != nil {
		t.Fatalf("expected nil drain from an empty buffer")
	}
}

func TestRecordKeyframeEvictsOldestAtCapacity(t *testing.T) {
	counters := telemetry.NewCounters()
	j := New(2, counters)

	now := time.Now()
	first := j.RecordKeyframe(now, "a")
	j.RecordKeyframe(now, "b")
	j.RecordKeyframe(now, "c")

	frames := j.Keyframes()
	if len(frames) != 2 {
		t.Fatalf("expected ring capped at 2 frames, got %d", len(frames))
	}
	if frames[0].State != "b" || frames[1].State != "c" {
		t.Fatalf("expected oldest frame evicted, got %v then %v", frames[0].State, frames[1].State)
	}
	if first != 1 || frames[1].Sequence != 3 {
		t.Fatalf("expected monotonic sequences, first=%d last=%d", first, frames[1].Sequence)
	}
	if drops := counters.Snapshot().JournalDrops; drops != 1 {
		t.Fatalf("expected one recorded eviction, got %d", drops)
	}
}

func TestRecordKeyframeZeroCapacityStoresNothing(t *testing.T) {
	j := New(0, telemetry.Nop())

	seq := j.RecordKeyframe(time.Now(), "a")
	if seq != 1 {
		t.Fatalf("expected sequence 1, got %d", seq)
	}
	if frames := j.Keyframes(); len(frames) != 0 {
		t.Fatalf("expected no frames retained, got %d", len(frames))
	}
}

func TestResetClearsBuffersButKeepsSequence(t *testing.T) {
	j := New(4, telemetry.Nop())

	j.AppendPatch(Patch{Kind: PatchInventorySlot})
	j.RecordKeyframe(time.Now(), "a")
	j.Reset()

	if j.PendingPatches() != 0 {
		t.Fatalf("expected patches cleared")
	}
	if len(j.Keyframes()) != 0 {
		t.Fatalf("expected keyframes cleared")
	}
	if seq := j.RecordKeyframe(time.Now(), "b"); seq != 2 {
		t.Fatalf("expected sequence to continue past reset, got %d", seq)
	}
}

func TestNilJournalIsSafe(t *testing.T) {
	var j *Journal

	j.AppendPatch(Patch{Kind: PatchInventorySlot})
	if j.DrainPatches() != nil {
		t.Fatalf("expected nil drain")
	}
	if j.PendingPatches() != 0 {
		t.Fatalf("expected zero pending")
	}
	if seq := j.RecordKeyframe(time.Now(), "a"); seq != 0 {
		t.Fatalf("expected zero sequence, got %d", seq)
	}
	j.Reset()
}
