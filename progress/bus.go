package progress

import "time"

// progressCoalesceWindow is the minimum spacing between enqueued "progress"
// events: no more than one is enqueued per window.
const progressCoalesceWindow = 5 * time.Millisecond

// Sink is anything a stage can push events into. engine.Optimize accepts a
// Sink so callers may substitute a test double; *Bus is the production
// implementation.
type Sink interface {
	Push(e Event)
}

// Bus is a single-producer/single-consumer ordered event queue with
// non-blocking push and a per-kind drop policy:
//   - "progress" events are throttled (at most one per 5ms); a push inside
//     the window is dropped. If the channel is full, the event is held
//     outside the channel rather than enqueued. The next push that passes
//     the throttle first tries to flush the held event and, if the channel
//     is still full, replaces it; nothing already queued is ever evicted.
//   - every other event kind is never dropped; Push blocks briefly if the
//     channel is momentarily full.
//
// Bus assumes a single producer goroutine; lastProgress and pending are
// read/written without synchronization for that reason, matching the
// one-goroutine-per-job model.
type Bus struct {
	ch           chan Event
	lastProgress time.Time
	pending      *Event // most recent progress event that missed the channel
}

// NewBus returns a Bus with the given channel capacity. A capacity of 0
// is valid (every push either succeeds immediately against a waiting
// consumer or falls back to the drop/block policy below).
func NewBus(capacity int) *Bus {
	return &Bus{ch: make(chan Event, capacity)}
}

// Events returns the read side of the bus, for the single consumer to range over.
func (b *Bus) Events() <-chan Event { return b.ch }

// Close closes the underlying channel. Callers must push Complete() before
// calling Close, and must not call Push afterward.
func (b *Bus) Close() { close(b.ch) }

// Push enqueues e according to its per-kind drop policy.
func (b *Bus) Push(e Event) {
	if e.Type == EventProgress {
		b.pushProgress(e)
		return
	}
	b.pushReliable(e)
}

// pushProgress applies the throttle-then-coalesce policy for "progress"
// events. It never evicts anything already queued: a non-"progress" event
// sitting at the channel's head is never at risk from this path. If the
// channel is full, e replaces whatever progress event was already waiting
// in pending (itself dropped, since it is now stale) and is retried by the
// next call to pushProgress or pushReliable.
func (b *Bus) pushProgress(e Event) {
	now := time.Now()
	if !b.lastProgress.IsZero() && now.Sub(b.lastProgress) < progressCoalesceWindow {
		return // coalesced: too soon since the last enqueued progress event
	}
	b.lastProgress = now

	b.flushPending()
	select {
	case b.ch <- e:
	default:
		b.pending = &e
	}
}

// pushReliable enqueues e, blocking if the channel is momentarily full.
// Never silently drops. A pending progress event is flushed first, on a
// best-effort basis, so reliable events do not starve it indefinitely.
func (b *Bus) pushReliable(e Event) {
	b.flushPending()
	b.ch <- e
}

// flushPending moves a held-back progress event into the channel if room
// has freed up since it was set aside.
func (b *Bus) flushPending() {
	if b.pending == nil {
		return
	}
	select {
	case b.ch <- *b.pending:
		b.pending = nil
	default:
	}
}
