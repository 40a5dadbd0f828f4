// Package inventory implements the slot/stack management engine behind the
// inventory screen. One engine instance is exclusively owned by one logical
// game session and mutated only through its public operations; concurrent
// callers are serialized by the surrounding UI loop.
package inventory

import (
	"emberfall/ui/internal/items"
	"emberfall/ui/internal/journal"
	"emberfall/ui/internal/telemetry"
	"emberfall/ui/logging"
)

// DefaultMaxSlots matches the inventory grid shipped in the HUD layout.
const DefaultMaxSlots = 40

// Slot is one fixed storage position holding zero or one item stack. The
// invariant is item set ⇔ quantity in [1, maxStack]; an empty slot is the
// zero value.
type Slot struct {
	Item     items.ID `json:"item,omitempty"`
	Quantity int      `json:"quantity"`
}

// Empty reports whether the slot holds no stack.
func (s Slot) Empty() bool {
	return s.Item == ""
}

// Config captures the collaborators injected into an engine instance.
type Config struct {
	SessionID string
	MaxSlots  int
	Catalog   *items.Catalog
	Publisher logging.Publisher
	Journal   *journal.Journal
	Telemetry telemetry.Telemetry
}

func (cfg Config) normalized() Config {
	normalized := cfg
	if normalized.SessionID == "" {
		normalized.SessionID = "session"
	}
	if normalized.MaxSlots <= 0 {
		normalized.MaxSlots = DefaultMaxSlots
	}
	if normalized.Catalog == nil {
		normalized.Catalog = items.NewCatalog()
	}
	if normalized.Publisher == nil {
		normalized.Publisher = logging.NopPublisher()
	}
	if normalized.Telemetry == nil {
		normalized.Telemetry = telemetry.Nop()
	}
	return normalized
}

// Engine owns the slot array and the presentational view state.
type Engine struct {
	cfg    Config
	source logging.SourceRef

	slots    []Slot
	selected int
	category Filter
	mode     ViewMode
	version  uint64

	subscribers map[uint64]func(Snapshot)
	nextSub     uint64
}

// NewEngine constructs an inventory engine with every slot empty.
func NewEngine(cfg Config) *Engine {
	normalized := cfg.normalized()
	return &Engine{
		cfg: normalized,
		source: logging.SourceRef{
			ID:   normalized.SessionID,
			Kind: logging.SourceKindInventory,
		},
		slots:       make([]Slot, normalized.MaxSlots),
		selected:    -1,
		category:    FilterAll,
		mode:        ViewModeGrid,
		subscribers: make(map[uint64]func(Snapshot)),
	}
}

// MaxSlots reports the fixed slot count.
func (e *Engine) MaxSlots() int {
	return len(e.slots)
}

// Version reports the mutation counter; it increases by one per committed
// state change.
func (e *Engine) Version() uint64 {
	return e.version
}

// Snapshot is a point-in-time copy of the engine state handed to listeners.
type Snapshot struct {
	Slots          []Slot   `json:"slots"`
	SelectedSlot   *int     `json:"selectedSlot"`
	ActiveCategory Filter   `json:"activeCategory"`
	ViewMode       ViewMode `json:"viewMode"`
	Version        uint64   `json:"version"`
}

// Snapshot returns a copy of the current state. The selection is reported as
// nothing-selected when the selected slot is empty.
func (e *Engine) Snapshot() Snapshot {
	slots := make([]Slot, len(e.slots))
	copy(slots, e.slots)
	snapshot := Snapshot{
		Slots:          slots,
		ActiveCategory: e.category,
		ViewMode:       e.mode,
		Version:        e.version,
	}
	if e.selected >= 0 && !e.slots[e.selected].Empty() {
		index := e.selected
		snapshot.SelectedSlot = &index
	}
	return snapshot
}

// Subscribe registers a listener invoked with a fresh snapshot after every
// committed mutation. The returned function cancels the registration.
func (e *Engine) Subscribe(listener func(Snapshot)) func() {
	if listener == nil {
		return func() {}
	}
	e.nextSub++
	id := e.nextSub
	e.subscribers[id] = listener
	return func() {
		delete(e.subscribers, id)
	}
}

// commit bumps the version, stamps and appends the staged patches, and
// notifies listeners. Every committed mutation funnels through here.
func (e *Engine) commit(patches ...journal.Patch) {
	e.version++
	if e.cfg.Journal != nil {
		for _, patch := range patches {
			patch.Source = e.cfg.SessionID
			patch.Version = e.version
			e.cfg.Journal.AppendPatch(patch)
		}
	}
	if len(e.subscribers) == 0 {
		return
	}
	snapshot := e.Snapshot()
	for _, listener := range e.subscribers {
		listener(snapshot)
	}
}

func (e *Engine) slotPatch(index int) journal.Patch {
	slot := e.slots[index]
	return journal.Patch{
		Kind: journal.PatchInventorySlot,
		Payload: journal.SlotPayload{
			SlotIndex: index,
			ItemID:    string(slot.Item),
			Quantity:  slot.Quantity,
		},
	}
}

func (e *Engine) validIndex(op string, index int) bool {
	if index >= 0 && index < len(e.slots) {
		return true
	}
	e.cfg.Telemetry.RecordInvalidIndex(op)
	return false
}
