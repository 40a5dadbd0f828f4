// Package journal accumulates the granular change patches the engines emit so
// the renderer can re-render from diffs, with a rolling keyframe buffer for
// rehydration after a missed frame.
package journal

import (
	"sync"
	"time"
)

// Telemetry captures the metrics adapter used by the journal to report drops.
type Telemetry interface {
	RecordJournalDrop(metric string)
}

// PatchKind identifies the type of diff entry.
type PatchKind int

const (
	// PatchInventorySlot updates a single inventory slot.
	PatchInventorySlot PatchKind = iota + 1
	// PatchInventorySelection updates the selected slot index.
	PatchInventorySelection
	// PatchInventoryView updates the category filter or view mode.
	PatchInventoryView
	// PatchDialogueLine replaces the current dialogue line.
	PatchDialogueLine
	// PatchDialogueStatus updates the dialogue progression status.
	PatchDialogueStatus
)

// Patch represents a diff entry that can be applied to the rendered state.
type Patch struct {
	Kind    PatchKind `json:"kind"`
	Source  string    `json:"source"`
	Version uint64    `json:"version"`
	Payload any       `json:"payload,omitempty"`
}

// SlotPayload captures one slot's contents after a mutation.
type SlotPayload struct {
	SlotIndex int    `json:"slotIndex"`
	ItemID    string `json:"itemId,omitempty"`
	Quantity  int    `json:"quantity"`
}

// SelectionPayload captures the selected slot; a nil index means no selection.
type SelectionPayload struct {
	SlotIndex *int `json:"slotIndex"`
}

// ViewPayload captures the presentational filter state.
type ViewPayload struct {
	Category string `json:"category"`
	ViewMode string `json:"viewMode"`
}

// LinePayload captures the current dialogue line; an empty id means cleared.
type LinePayload struct {
	LineID  string `json:"lineId,omitempty"`
	Speaker string `json:"speaker,omitempty"`
	Text    string `json:"text,omitempty"`
	Choices int    `json:"choices,omitempty"`
}

// StatusPayload captures the dialogue progression status.
type StatusPayload struct {
	Status string `json:"status"`
}

// Keyframe stores a full engine snapshot for diff recovery.
type Keyframe struct {
	Sequence uint64    `json:"sequence"`
	Recorded time.Time `json:"recorded"`
	State    any       `json:"state"`
}

const metricKeyframeEvicted = "journal_keyframe_evicted"

// Journal buffers patches between renderer drains and keeps the most recent
// keyframes. Engines append from the UI thread; the renderer drains from its
// own loop, so access is guarded.
type Journal struct {
	mu        sync.RWMutex
	patches   []Patch
	keyframes []Keyframe
	maxFrames int
	nextSeq   uint64
	telemetry Telemetry
}

// New constructs a journal retaining up to keyframeCapacity keyframes.
func New(keyframeCapacity int, telemetry Telemetry) *Journal {
	if keyframeCapacity < 0 {
		keyframeCapacity = 0
	}
	return &Journal{
		patches:   make([]Patch, 0),
		keyframes: make([]Keyframe, 0, keyframeCapacity),
		maxFrames: keyframeCapacity,
		telemetry: telemetry,
	}
}

// AppendPatch records a patch for the next drain.
func (j *Journal) AppendPatch(p Patch) {
	if j == nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.patches = append(j.patches, p)
}

// DrainPatches returns all staged patches and clears the buffer.
func (j *Journal) DrainPatches() []Patch {
	if j == nil {
		return nil
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	if len(j.patches) == 0 {
		return nil
	}
	drained := make([]Patch, len(j.patches))
	copy(drained, j.patches)
	j.patches = j.patches[:0]
	return drained
}

// PendingPatches reports how many patches are staged without draining them.
func (j *Journal) PendingPatches() int {
	if j == nil {
		return 0
	}
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.patches)
}

// RecordKeyframe stores a full snapshot, evicting the oldest frame when the
// ring is at capacity. Returns the assigned sequence number.
func (j *Journal) RecordKeyframe(recorded time.Time, state any) uint64 {
	if j == nil {
		return 0
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.nextSeq++
	frame := Keyframe{Sequence: j.nextSeq, Recorded: recorded, State: state}
	if j.maxFrames == 0 {
		return frame.Sequence
	}
	if len(j.keyframes) >= j.maxFrames {
		evict := len(j.keyframes) - j.maxFrames + 1
		j.keyframes = append(j.keyframes[:0], j.keyframes[evict:]...)
		if j.telemetry != nil {
			j.telemetry.RecordJournalDrop(metricKeyframeEvicted)
		}
	}
	j.keyframes = append(j.keyframes, frame)
	return frame.Sequence
}

// Keyframes returns a copy of the retained frames, oldest first.
func (j *Journal) Keyframes() []Keyframe {
	if j == nil {
		return nil
	}
	j.mu.RLock()
	defer j.mu.RUnlock()
	copied := make([]Keyframe, len(j.keyframes))
	copy(copied, j.keyframes)
	return copied
}

// Reset drops all staged patches and keyframes. Sequence numbers keep
// increasing so consumers can detect the discontinuity.
func (j *Journal) Reset() {
	if j == nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.patches = j.patches[:0]
	j.keyframes = j.keyframes[:0]
}
