package inventory

import (
	"emberfall/ui/internal/items"
	"emberfall/ui/internal/journal"
)

// ViewMode selects the inventory screen layout.
type ViewMode string

const (
	ViewModeGrid ViewMode = "grid"
	ViewModeList ViewMode = "list"
)

// ParseViewMode validates a view mode string received from the UI.
func ParseViewMode(value string) (ViewMode, bool) {
	switch ViewMode(value) {
	case ViewModeGrid, ViewModeList:
		return ViewMode(value), true
	default:
		return "", false
	}
}

// Filter is the active category filter: FilterAll or one item category.
type Filter string

const FilterAll Filter = "all"

// FilterFor returns the filter matching a single category.
func FilterFor(category items.Category) Filter {
	return Filter(category)
}

// ParseFilter validates a filter string received from the UI.
func ParseFilter(value string) (Filter, bool) {
	if Filter(value) == FilterAll {
		return FilterAll, true
	}
	if category, ok := items.ParseCategory(value); ok {
		return Filter(category), true
	}
	return "", false
}

func (f Filter) matches(category items.Category) bool {
	return f == FilterAll || f == Filter(category)
}

// SelectSlot marks a slot as selected for the detail panel. Out-of-range
// indices no-op; selecting the already-selected slot is a no-op too.
func (e *Engine) SelectSlot(index int) {
	if !e.validIndex("select_slot", index) {
		return
	}
	if e.selected == index {
		return
	}
	e.selected = index
	e.commit(journal.Patch{
		Kind:    journal.PatchInventorySelection,
		Payload: journal.SelectionPayload{SlotIndex: &index},
	})
}

// ClearSelection resets to nothing-selected.
func (e *Engine) ClearSelection() {
	if e.selected == -1 {
		return
	}
	e.selected = -1
	e.commit(journal.Patch{
		Kind:    journal.PatchInventorySelection,
		Payload: journal.SelectionPayload{},
	})
}

// SetViewMode stores the grid/list toggle. Invalid modes no-op.
func (e *Engine) SetViewMode(mode ViewMode) {
	if mode != ViewModeGrid && mode != ViewModeList {
		return
	}
	if e.mode == mode {
		return
	}
	e.mode = mode
	e.commit(e.viewPatch())
}

// SetActiveCategory stores the category filter. Invalid filters no-op.
func (e *Engine) SetActiveCategory(filter Filter) {
	if _, ok := ParseFilter(string(filter)); !ok {
		return
	}
	if e.category == filter {
		return
	}
	e.category = filter
	e.commit(e.viewPatch())
}

func (e *Engine) viewPatch() journal.Patch {
	return journal.Patch{
		Kind: journal.PatchInventoryView,
		Payload: journal.ViewPayload{
			Category: string(e.category),
			ViewMode: string(e.mode),
		},
	}
}
