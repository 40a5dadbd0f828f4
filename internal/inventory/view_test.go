package inventory

import (
	"context"
	"testing"

	"emberfall/ui/internal/items"
)

func TestSelectSlotAndClearSelection(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	engine.AddItem(ctx, "healing-tonic", 5)
	engine.SelectSlot(0)

	def, ok := engine.SelectedItem()
	if !ok {
		t.Fatalf("expected a selected item")
	}
	if def.ID != "healing-tonic" {
		t.Fatalf("expected healing-tonic selected, got %q", def.ID)
	}

	engine.ClearSelection()
	if _, ok := engine.SelectedItem(); ok {
		t.Fatalf("expected selection cleared")
	}
}

func TestSelectSlotOutOfRangeNoOp(t *testing.T) {
	engine := newTestEngine(t)

	version := engine.Version()
	engine.SelectSlot(-3)
	engine.SelectSlot(DefaultMaxSlots)
	if engine.Version() != version {
		t.Fatalf("expected out-of-range selects to leave version at %d, got %d", version, engine.Version())
	}
}

func TestSelectedItemOnEmptySlotReadsAsNothing(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	engine.AddItem(ctx, "healing-tonic", 1)
	engine.SelectSlot(0)
	engine.UseItem(ctx, 0)

	if _, ok := engine.SelectedItem(); ok {
		t.Fatalf("expected no selection once the slot emptied")
	}
	if snapshot := engine.Snapshot(); snapshot.SelectedSlot != nil {
		t.Fatalf("expected snapshot to hide the stale selection")
	}
}

func TestSetViewModeRejectsUnknownMode(t *testing.T) {
	engine := newTestEngine(t)

	engine.SetViewMode(ViewModeList)
	if engine.Snapshot().ViewMode != ViewModeList {
		t.Fatalf("expected list mode active")
	}

	version := engine.Version()
	engine.SetViewMode(ViewMode("carousel"))
	if engine.Snapshot().ViewMode != ViewModeList {
		t.Fatalf("expected unknown mode to be ignored")
	}
	if engine.Version() != version {
		t.Fatalf("expected rejected mode to leave version at %d", version)
	}
}

func TestSetActiveCategoryFiltersVisibleSlotsWithoutMovingThem(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	engine.AddItem(ctx, "iron-sword", 1)
	engine.AddItem(ctx, "healing-tonic", 3)
	engine.AddItem(ctx, "copper-ore", 8)

	engine.SetActiveCategory(FilterFor(items.CategoryConsumable))
	visible := engine.VisibleSlots()
	if !visible[0].Empty() || !visible[2].Empty() {
		t.Fatalf("expected non-consumable slots hidden, got %q and %q", visible[0].Item, visible[2].Item)
	}
	if visible[1].Item != "healing-tonic" || visible[1].Quantity != 3 {
		t.Fatalf("expected tonic visible at its original index, got %q x%d", visible[1].Item, visible[1].Quantity)
	}

	// Underlying storage keeps every stack in place.
	slot0, _ := engine.Slot(0)
	if slot0.Item != "iron-sword" {
		t.Fatalf("expected filter to leave storage untouched, slot 0 holds %q", slot0.Item)
	}

	engine.SetActiveCategory(FilterAll)
	visible = engine.VisibleSlots()
	if visible[0].Item != "iron-sword" || visible[2].Item != "copper-ore" {
		t.Fatalf("expected all slots visible again")
	}
}

func TestParseFilterAcceptsAllAndCategories(t *testing.T) {
	if filter, ok := ParseFilter("all"); !ok || filter != FilterAll {
		t.Fatalf("expected 'all' to parse, got %q ok=%v", filter, ok)
	}
	if filter, ok := ParseFilter("weapon"); !ok || filter != FilterFor(items.CategoryWeapon) {
		t.Fatalf("expected 'weapon' to parse, got %q ok=%v", filter, ok)
	}
	if _, ok := ParseFilter("potions"); ok {
		t.Fatalf("expected unknown filter to be rejected")
	}
}

func TestCountByCategory(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	engine.AddItem(ctx, "healing-tonic", 15) // two slots
	engine.AddItem(ctx, "iron-sword", 1)
	engine.AddItem(ctx, "copper-ore", 2)

	counts := engine.CountByCategory()
	if counts[items.CategoryConsumable] != 2 {
		t.Fatalf("expected 2 consumable slots, got %d", counts[items.CategoryConsumable])
	}
	if counts[items.CategoryWeapon] != 1 {
		t.Fatalf("expected 1 weapon slot, got %d", counts[items.CategoryWeapon])
	}
	if counts[items.CategoryMaterial] != 1 {
		t.Fatalf("expected 1 material slot, got %d", counts[items.CategoryMaterial])
	}
}
