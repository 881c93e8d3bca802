package progress

import "github.com/katalvlaran/plotopt/path"

// WirePlacement is the JSON shape of a single (original_index, flipped)
// placement, used both for "paths" payloads and "latest_path".
type WirePlacement struct {
	OriginalIndex int  `json:"original_index"`
	Reversed      bool `json:"reversed"`
}

// WireEvent is the external, bit-exact JSON encoding of an Event. Field
// names and casing are a stable external contract; do not rename without a
// version bump. Every field except type uses omitempty so a given event
// type's wire payload only carries the fields relevant to it; a relevant
// field whose value is zero (e.g. removed_count 0, iterations 0) is omitted
// as well. latest_path is always present on "progress" events.
type WireEvent struct {
	Type string `json:"type"`

	PathCount           int     `json:"path_count,omitempty"`
	PenWidth            float64 `json:"pen_width,omitempty"`
	VisibilityThreshold float64 `json:"visibility_threshold,omitempty"`

	OriginalCount  int   `json:"original_count,omitempty"`
	KeptCount      int   `json:"kept_count,omitempty"`
	RemovedCount   int   `json:"removed_count,omitempty"`
	RemovedIndices []int `json:"removed_indices,omitempty"`

	Phase      int            `json:"phase,omitempty"`
	Current    int            `json:"current,omitempty"`
	Total      int            `json:"total,omitempty"`
	LatestPath *WirePlacement `json:"latest_path,omitempty"`

	ProgressHistory []WirePlacement `json:"progress_history,omitempty"`
	OriginalDist    float64         `json:"original_dist,omitempty"`
	Phase1Dist      float64         `json:"phase1_dist,omitempty"`
	Paths           []WirePlacement `json:"paths,omitempty"`

	DistHistory []float64 `json:"dist_history,omitempty"`
	Iterations  int       `json:"iterations,omitempty"`
	FinalDist   float64   `json:"final_dist,omitempty"`

	Msg string `json:"msg,omitempty"`
}

// ToWire converts an in-process Event to its external wire representation.
func ToWire(e Event) WireEvent {
	w := WireEvent{
		Type:                string(e.Type),
		PathCount:           e.PathCount,
		PenWidth:            e.PenWidth,
		VisibilityThreshold: e.VisibilityThreshold,
		OriginalCount:       e.OriginalCount,
		KeptCount:           e.KeptCount,
		RemovedCount:        e.RemovedCount,
		RemovedIndices:      e.RemovedIndices,
		Phase:               e.Phase,
		Current:             e.Current,
		Total:               e.Total,
		ProgressHistory:     wirePlacements(e.ProgressHistory),
		OriginalDist:        e.OriginalDist,
		Phase1Dist:          e.Phase1Dist,
		Paths:               wirePlacementsFromPaths(e.Paths),
		DistHistory:         e.DistHistory,
		Iterations:          e.Iterations,
		FinalDist:           e.FinalDist,
		Msg:                 e.Msg,
	}
	if e.Type == EventProgress {
		lp := WirePlacement{OriginalIndex: e.LatestPath.OriginalIndex, Reversed: e.LatestPath.Reversed}
		w.LatestPath = &lp
	}
	return w
}

func wirePlacements(entries []path.PlacementHistoryEntry) []WirePlacement {
	if entries == nil {
		return nil
	}
	out := make([]WirePlacement, len(entries))
	for i, e := range entries {
		out[i] = WirePlacement{OriginalIndex: e.OriginalIndex, Reversed: e.Reversed}
	}
	return out
}

func wirePlacementsFromPaths(placements []path.Placement) []WirePlacement {
	if placements == nil {
		return nil
	}
	out := make([]WirePlacement, len(placements))
	for i, p := range placements {
		out[i] = WirePlacement{OriginalIndex: p.OriginalIndex, Reversed: p.Flipped}
	}
	return out
}
