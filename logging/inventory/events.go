package inventory

import (
	"context"

	"emberfall/ui/logging"
)

const (
	// EventItemAdded is emitted when a stack is written into an empty slot.
	EventItemAdded logging.EventType = "inventory.item_added"
	// EventItemRemoved is emitted when quantity leaves a slot.
	EventItemRemoved logging.EventType = "inventory.item_removed"
	// EventItemUsed is emitted when the player uses a slot; the effects
	// system interprets the item, the engine only reports it.
	EventItemUsed logging.EventType = "inventory.item_used"
	// EventInventoryFull is emitted when an add is rejected for lack of space.
	EventInventoryFull logging.EventType = "inventory.full"
)

// ItemAddedPayload describes a committed slot write.
type ItemAddedPayload struct {
	ItemID    string `json:"itemId"`
	Quantity  int    `json:"quantity"`
	SlotIndex int    `json:"slotIndex"`
}

// ItemRemovedPayload carries the pre-removal item reference.
type ItemRemovedPayload struct {
	ItemID    string `json:"itemId"`
	Quantity  int    `json:"quantity"`
	SlotIndex int    `json:"slotIndex"`
}

// ItemUsedPayload describes a use request for the effects system.
type ItemUsedPayload struct {
	ItemID    string `json:"itemId"`
	SlotIndex int    `json:"slotIndex"`
}

// InventoryFullPayload describes the rejected add.
type InventoryFullPayload struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// ItemAdded publishes an item_added notification.
func ItemAdded(ctx context.Context, pub logging.Publisher, source logging.SourceRef, version uint64, payload ItemAddedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventItemAdded,
		Source:   source,
		Version:  version,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryInventory,
		Payload:  payload,
	})
}

// ItemRemoved publishes an item_removed notification.
func ItemRemoved(ctx context.Context, pub logging.Publisher, source logging.SourceRef, version uint64, payload ItemRemovedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventItemRemoved,
		Source:   source,
		Version:  version,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryInventory,
		Payload:  payload,
	})
}

// ItemUsed publishes an item_used notification.
func ItemUsed(ctx context.Context, pub logging.Publisher, source logging.SourceRef, version uint64, payload ItemUsedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventItemUsed,
		Source:   source,
		Version:  version,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryInventory,
		Payload:  payload,
	})
}

// InventoryFull publishes a rejected-add notification.
func InventoryFull(ctx context.Context, pub logging.Publisher, source logging.SourceRef, version uint64, payload InventoryFullPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventInventoryFull,
		Source:   source,
		Version:  version,
		Severity: logging.SeverityWarn,
		Category: logging.CategoryInventory,
		Payload:  payload,
	})
}
