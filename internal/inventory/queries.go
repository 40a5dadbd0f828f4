package inventory

import "emberfall/ui/internal/items"

// Derived queries are recomputed on demand; nothing here is cached or stored.

// UsedSlots counts occupied slots.
func (e *Engine) UsedSlots() int {
	used := 0
	for i := range e.slots {
		if !e.slots[i].Empty() {
			used++
		}
	}
	return used
}

// CountByCategory tallies occupied slots per item category. Empty slots are
// excluded; unknown item ids (catalog drift) land under misc.
func (e *Engine) CountByCategory() map[items.Category]int {
	counts := make(map[items.Category]int)
	for i := range e.slots {
		if e.slots[i].Empty() {
			continue
		}
		category := items.CategoryMisc
		if def, ok := e.cfg.Catalog.DefinitionFor(e.slots[i].Item); ok {
			category = def.Category
		}
		counts[category]++
	}
	return counts
}

// VisibleSlots returns the slot array as the active filter presents it:
// filtered-out slots render as empty without mutating underlying storage,
// so slot indices stay stable for drag-and-drop.
func (e *Engine) VisibleSlots() []Slot {
	visible := make([]Slot, len(e.slots))
	if e.category == FilterAll {
		copy(visible, e.slots)
		return visible
	}
	for i := range e.slots {
		slot := e.slots[i]
		if slot.Empty() {
			continue
		}
		def, ok := e.cfg.Catalog.DefinitionFor(slot.Item)
		if !ok || !e.category.matches(def.Category) {
			continue
		}
		visible[i] = slot
	}
	return visible
}

// TotalQuantity sums the given item id across all slots.
func (e *Engine) TotalQuantity(id items.ID) int {
	total := 0
	for i := range e.slots {
		if e.slots[i].Item == id {
			total += e.slots[i].Quantity
		}
	}
	return total
}

// SelectedItem resolves the definition under the selected index. A selection
// pointing at a slot that became empty reads as nothing selected.
func (e *Engine) SelectedItem() (items.Definition, bool) {
	if e.selected < 0 || e.selected >= len(e.slots) {
		return items.Definition{}, false
	}
	slot := e.slots[e.selected]
	if slot.Empty() {
		return items.Definition{}, false
	}
	return e.cfg.Catalog.DefinitionFor(slot.Item)
}

// Slot returns a copy of one slot.
func (e *Engine) Slot(index int) (Slot, bool) {
	if index < 0 || index >= len(e.slots) {
		return Slot{}, false
	}
	return e.slots[index], true
}

// Slots returns a copy of the full slot array.
func (e *Engine) Slots() []Slot {
	slots := make([]Slot, len(e.slots))
	copy(slots, e.slots)
	return slots
}
