package progress

import "github.com/katalvlaran/plotopt/path"

// EventType discriminates the kinds of message the bus carries.
type EventType string

// Event type discriminators. Field names and values are a stable, external
// contract: do not rename without a corresponding wire version bump.
const (
	EventFilterStart  EventType = "filter_start"
	EventFilterResult EventType = "filter_result"
	EventProgress     EventType = "progress"
	EventGreedyResult EventType = "greedy_result"
	EventTwoOptStart  EventType = "twoopt_start"
	EventPhase2Result EventType = "phase2_result"
	EventLog          EventType = "log"
	EventComplete     EventType = "complete"
	EventPing         EventType = "ping"
)

// Event is the in-process representation of one progress-bus message. Only
// the fields relevant to Type are populated; the rest are zero values.
type Event struct {
	Type EventType

	// filter_start / filter_result
	PathCount           int
	PenWidth            float64
	VisibilityThreshold float64
	OriginalCount       int
	KeptCount           int
	RemovedCount        int
	RemovedIndices      []int

	// progress (greedy)
	Phase      int
	Current    int
	Total      int
	LatestPath path.PlacementHistoryEntry

	// greedy_result
	ProgressHistory []path.PlacementHistoryEntry
	OriginalDist    float64
	Phase1Dist      float64
	Paths           []path.Placement

	// phase2_result
	DistHistory []float64
	Iterations  int
	FinalDist   float64

	// log
	Msg string
}

// FilterStart builds a filter_start event.
func FilterStart(pathCount int, penWidth, visibilityThreshold float64) Event {
	return Event{Type: EventFilterStart, PathCount: pathCount, PenWidth: penWidth, VisibilityThreshold: visibilityThreshold}
}

// FilterResultEvent builds a filter_result event.
func FilterResultEvent(original, kept, removed int, removedIndices []int, penWidth, visibilityThreshold float64) Event {
	return Event{
		Type:                EventFilterResult,
		OriginalCount:       original,
		KeptCount:           kept,
		RemovedCount:        removed,
		RemovedIndices:      removedIndices,
		PenWidth:            penWidth,
		VisibilityThreshold: visibilityThreshold,
	}
}

// GreedyProgress builds a progress event for the greedy phase (phase=1).
func GreedyProgress(current, total int, latest path.PlacementHistoryEntry) Event {
	return Event{Type: EventProgress, Phase: 1, Current: current, Total: total, LatestPath: latest}
}

// GreedyResultEvent builds a greedy_result event.
func GreedyResultEvent(pathCount int, history []path.PlacementHistoryEntry, originalDist, phase1Dist float64, placements []path.Placement) Event {
	return Event{
		Type:            EventGreedyResult,
		PathCount:       pathCount,
		ProgressHistory: history,
		OriginalDist:    originalDist,
		Phase1Dist:      phase1Dist,
		Paths:           placements,
	}
}

// TwoOptStart builds a twoopt_start marker event.
func TwoOptStart() Event { return Event{Type: EventTwoOptStart} }

// Phase2ResultEvent builds a phase2_result event.
func Phase2ResultEvent(history []float64, iterations int, finalDist, originalDist float64, placements []path.Placement) Event {
	return Event{
		Type:         EventPhase2Result,
		DistHistory:  history,
		Iterations:   iterations,
		FinalDist:    finalDist,
		OriginalDist: originalDist,
		Paths:        placements,
	}
}

// Log builds a free-text log event.
func Log(msg string) Event { return Event{Type: EventLog, Msg: msg} }

// Complete builds a complete marker event.
func Complete() Event { return Event{Type: EventComplete} }

// Ping builds a heartbeat event.
func Ping() Event { return Event{Type: EventPing} }
