package progress_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/plotopt/path"
	"github.com/katalvlaran/plotopt/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusCoalescesProgressEvents(t *testing.T) {
	bus := progress.NewBus(8)

	bus.Push(progress.GreedyProgress(1, 10, path.PlacementHistoryEntry{}))
	bus.Push(progress.GreedyProgress(2, 10, path.PlacementHistoryEntry{}))
	bus.Push(progress.GreedyProgress(3, 10, path.PlacementHistoryEntry{}))

	var got []progress.Event
	draining := true
	for draining {
		select {
		case e := <-bus.Events():
			got = append(got, e)
		default:
			draining = false
		}
	}
	// Issued back-to-back within the coalesce window: only the first lands.
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Current)
}

func TestBusNeverDropsResultEvents(t *testing.T) {
	bus := progress.NewBus(1)

	bus.Push(progress.FilterStart(3, 1.0, 50))
	first := <-bus.Events() // drain so the second push's blocking send has room
	bus.Push(progress.FilterResultEvent(3, 2, 1, []int{1}, 1.0, 50))
	second := <-bus.Events()

	assert.Equal(t, progress.EventFilterStart, first.Type)
	assert.Equal(t, progress.EventFilterResult, second.Type)
}

func TestBusSpacedProgressEventsAllLand(t *testing.T) {
	bus := progress.NewBus(8)

	bus.Push(progress.GreedyProgress(1, 10, path.PlacementHistoryEntry{}))
	time.Sleep(6 * time.Millisecond)
	bus.Push(progress.GreedyProgress(2, 10, path.PlacementHistoryEntry{}))

	first := <-bus.Events()
	second := <-bus.Events()
	assert.Equal(t, 1, first.Current)
	assert.Equal(t, 2, second.Current)
}

func TestBusProgressNeverEvictsQueuedReliableEvent(t *testing.T) {
	bus := progress.NewBus(1)

	// Fill the one slot with a reliable event, then try to push progress
	// while it's still sitting there unconsumed.
	bus.Push(progress.FilterResultEvent(1, 1, 0, nil, 1.0, 50))
	bus.Push(progress.GreedyProgress(1, 10, path.PlacementHistoryEntry{}))

	first := <-bus.Events()
	assert.Equal(t, progress.EventFilterResult, first.Type, "queued reliable event must survive a concurrent progress push")

	// The progress event had nowhere to go and is held as pending; once
	// room frees up, a later push flushes it ahead of the new one. Push
	// from a goroutine since pushReliable's blocking send needs a
	// concurrent drain once the flushed progress event occupies the slot.
	go bus.Push(progress.Complete())
	second := <-bus.Events()
	assert.Equal(t, progress.EventProgress, second.Type)
	third := <-bus.Events()
	assert.Equal(t, progress.EventComplete, third.Type)
}

func TestBusCloseStopsEvents(t *testing.T) {
	bus := progress.NewBus(1)
	bus.Push(progress.Complete())
	bus.Close()

	e, ok := <-bus.Events()
	require.True(t, ok)
	assert.Equal(t, progress.EventComplete, e.Type)

	_, ok = <-bus.Events()
	assert.False(t, ok)
}
