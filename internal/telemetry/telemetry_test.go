package telemetry

import "testing"

func TestCountersAccumulate(t *testing.T) {
	counters := NewCounters()

	counters.RecordInvalidIndex("move_item")
	counters.RecordInvalidIndex("select_slot")
	counters.RecordStackClamp("iron-sword", 2)
	counters.RecordStackClamp("iron-sword", 0)
	counters.RecordJournalDrop("journal_keyframe_evicted")
	counters.RecordNotification("inventory.item_added")

	snapshot := counters.Snapshot()
	if snapshot.InvalidIndexes != 2 {
		t.Fatalf("expected 2 invalid indexes, got %d", snapshot.InvalidIndexes)
	}
	if snapshot.StackClamps != 2 || snapshot.ClampedOverflow != 2 {
		t.Fatalf("expected 2 clamps with overflow 2, got %d / %d", snapshot.StackClamps, snapshot.ClampedOverflow)
	}
	if snapshot.JournalDrops != 1 || snapshot.NotificationsOut != 1 {
		t.Fatalf("expected 1 drop and 1 notification, got %d / %d", snapshot.JournalDrops, snapshot.NotificationsOut)
	}
}

func TestNopDiscardsEverything(t *testing.T) {
	nop := Nop()
	nop.RecordInvalidIndex("x")
	nop.RecordStackClamp("y", 3)
	nop.RecordJournalDrop("z")
	nop.RecordNotification("w")
}
