package inventory

import (
	"context"

	"emberfall/ui/internal/items"
	"emberfall/ui/internal/journal"
	invevents "emberfall/ui/logging/inventory"
)

// AddItem places quantity of the given item id into the inventory. Stackable
// items first top up partially-filled stacks in index order, then spill into
// empty slots one stack at a time. Returns false when the id is unknown, the
// quantity is not positive, or the inventory ran out of room before the full
// quantity was placed; stack top-ups committed before a full inventory stand.
//
// Non-stackable items occupy one slot each and the final empty-slot write is
// clamped to a single unit: requesting more silently truncates the remainder.
// The clamp is a known boundary policy, reported through telemetry only.
func (e *Engine) AddItem(ctx context.Context, id items.ID, quantity int) bool {
	if quantity <= 0 {
		return false
	}
	def, ok := e.cfg.Catalog.DefinitionFor(id)
	if !ok {
		return false
	}

	remaining := quantity
	patches := make([]journal.Patch, 0, 2)
	type write struct {
		index    int
		quantity int
	}
	var fresh []write

	if def.Stackable {
		for i := range e.slots {
			if remaining == 0 {
				break
			}
			slot := &e.slots[i]
			if slot.Item != id || slot.Quantity >= def.MaxStack {
				continue
			}
			take := def.MaxStack - slot.Quantity
			if take > remaining {
				take = remaining
			}
			slot.Quantity += take
			remaining -= take
			patches = append(patches, e.slotPatch(i))
		}
	}

	full := false
	for remaining > 0 {
		index := e.firstEmptySlot()
		if index < 0 {
			full = true
			break
		}
		amount := remaining
		if def.Stackable {
			if amount > def.MaxStack {
				amount = def.MaxStack
			}
		} else if amount > 1 {
			e.cfg.Telemetry.RecordStackClamp(string(id), amount-1)
			amount = 1
			remaining = 1
		}
		e.slots[index] = Slot{Item: id, Quantity: amount}
		remaining -= amount
		patches = append(patches, e.slotPatch(index))
		fresh = append(fresh, write{index: index, quantity: amount})
	}

	if len(patches) > 0 {
		e.commit(patches...)
	}
	for _, w := range fresh {
		invevents.ItemAdded(ctx, e.cfg.Publisher, e.source, e.version, invevents.ItemAddedPayload{
			ItemID:    string(id),
			Quantity:  w.quantity,
			SlotIndex: w.index,
		})
		e.cfg.Telemetry.RecordNotification(string(invevents.EventItemAdded))
	}
	if full {
		invevents.InventoryFull(ctx, e.cfg.Publisher, e.source, e.version, invevents.InventoryFullPayload{
			ItemID:   string(id),
			Quantity: remaining,
		})
		e.cfg.Telemetry.RecordNotification(string(invevents.EventInventoryFull))
		return false
	}
	return true
}

// RemoveItem decrements the stack at the given slot, clearing the slot when
// the quantity reaches zero. Empty slots and out-of-range indices no-op.
func (e *Engine) RemoveItem(ctx context.Context, index, quantity int) {
	if !e.validIndex("remove_item", index) {
		return
	}
	if quantity <= 0 {
		return
	}
	slot := e.slots[index]
	if slot.Empty() {
		return
	}

	removed := quantity
	if removed > slot.Quantity {
		removed = slot.Quantity
	}
	next := slot.Quantity - quantity
	if next <= 0 {
		e.slots[index] = Slot{}
	} else {
		e.slots[index].Quantity = next
	}
	e.commit(e.slotPatch(index))

	invevents.ItemRemoved(ctx, e.cfg.Publisher, e.source, e.version, invevents.ItemRemovedPayload{
		ItemID:    string(slot.Item),
		Quantity:  removed,
		SlotIndex: index,
	})
	e.cfg.Telemetry.RecordNotification(string(invevents.EventItemRemoved))
}

// MoveItem moves or merges between two slots. Same stackable item id merges
// with overflow: the destination takes up to its max stack and any remainder
// stays at the source. Everything else is a full swap, empty slots included.
func (e *Engine) MoveItem(ctx context.Context, from, to int) {
	if !e.validIndex("move_item", from) || !e.validIndex("move_item", to) {
		return
	}
	if from == to {
		return
	}

	src := e.slots[from]
	dst := e.slots[to]

	if !src.Empty() && src.Item == dst.Item {
		if def, ok := e.cfg.Catalog.DefinitionFor(src.Item); ok && def.Stackable {
			combined := src.Quantity + dst.Quantity
			if combined <= def.MaxStack {
				e.slots[to].Quantity = combined
				e.slots[from] = Slot{}
			} else {
				e.slots[to].Quantity = def.MaxStack
				e.slots[from].Quantity = combined - def.MaxStack
			}
			e.commit(e.slotPatch(from), e.slotPatch(to))
			return
		}
	}

	e.slots[from], e.slots[to] = dst, src
	e.commit(e.slotPatch(from), e.slotPatch(to))
}

// UseItem reports a use request for the effects system to interpret.
// Consumables are additionally decremented by one regardless of what the
// effects system does with the notification.
func (e *Engine) UseItem(ctx context.Context, index int) {
	if !e.validIndex("use_item", index) {
		return
	}
	slot := e.slots[index]
	if slot.Empty() {
		return
	}

	invevents.ItemUsed(ctx, e.cfg.Publisher, e.source, e.version, invevents.ItemUsedPayload{
		ItemID:    string(slot.Item),
		SlotIndex: index,
	})
	e.cfg.Telemetry.RecordNotification(string(invevents.EventItemUsed))

	if def, ok := e.cfg.Catalog.DefinitionFor(slot.Item); ok && def.Category == items.CategoryConsumable {
		e.RemoveItem(ctx, index, 1)
	}
}

// Reset clears every slot and the selection. Filters and view mode persist
// across sessions, so they are left alone.
func (e *Engine) Reset(ctx context.Context) {
	patches := make([]journal.Patch, 0, len(e.slots))
	for i := range e.slots {
		if e.slots[i].Empty() {
			continue
		}
		e.slots[i] = Slot{}
		patches = append(patches, e.slotPatch(i))
	}
	if e.selected != -1 {
		e.selected = -1
		patches = append(patches, journal.Patch{
			Kind:    journal.PatchInventorySelection,
			Payload: journal.SelectionPayload{},
		})
	}
	if len(patches) == 0 {
		return
	}
	e.commit(patches...)
}

func (e *Engine) firstEmptySlot() int {
	for i := range e.slots {
		if e.slots[i].Empty() {
			return i
		}
	}
	return -1
}
