// Package telemetry exposes the counters the state engines report into. The
// UI shell decides whether they end up on a debug overlay or nowhere at all.
package telemetry

import "sync/atomic"

// Telemetry captures the metrics surface required by the engines and journal.
type Telemetry interface {
	RecordInvalidIndex(op string)
	RecordStackClamp(itemID string, overflow int)
	RecordJournalDrop(metric string)
	RecordNotification(eventType string)
}

type nop struct{}

func (nop) RecordInvalidIndex(string)    {}
func (nop) RecordStackClamp(string, int) {}
func (nop) RecordJournalDrop(string)     {}
func (nop) RecordNotification(string)    {}

// Nop returns a telemetry implementation that discards every record.
func Nop() Telemetry {
	return nop{}
}

// Counters is the default Telemetry implementation backed by atomics.
type Counters struct {
	invalidIndexes   atomic.Uint64
	stackClamps      atomic.Uint64
	clampedOverflow  atomic.Uint64
	journalDrops     atomic.Uint64
	notificationsOut atomic.Uint64
}

// Snapshot is a point-in-time copy of every counter.
type Snapshot struct {
	InvalidIndexes   uint64 `json:"invalidIndexes"`
	StackClamps      uint64 `json:"stackClamps"`
	ClampedOverflow  uint64 `json:"clampedOverflow"`
	JournalDrops     uint64 `json:"journalDrops"`
	NotificationsOut uint64 `json:"notificationsOut"`
}

func NewCounters() *Counters {
	return &Counters{}
}

func (c *Counters) RecordInvalidIndex(string) {
	c.invalidIndexes.Add(1)
}

func (c *Counters) RecordStackClamp(_ string, overflow int) {
	c.stackClamps.Add(1)
	if overflow > 0 {
		c.clampedOverflow.Add(uint64(overflow))
	}
}

func (c *Counters) RecordJournalDrop(string) {
	c.journalDrops.Add(1)
}

func (c *Counters) RecordNotification(string) {
	c.notificationsOut.Add(1)
}

func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		InvalidIndexes:   c.invalidIndexes.Load(),
		StackClamps:      c.stackClamps.Load(),
		ClampedOverflow:  c.clampedOverflow.Load(),
		JournalDrops:     c.journalDrops.Load(),
		NotificationsOut: c.notificationsOut.Load(),
	}
}
