package engine

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/plotopt/filter"
	"github.com/katalvlaran/plotopt/greedy"
	"github.com/katalvlaran/plotopt/path"
	"github.com/katalvlaran/plotopt/progress"
	"github.com/katalvlaran/plotopt/twoopt"
)

// Optimize runs the full pipeline — ingress validation, Filter, Greedy,
// Two-opt, in that order — against paths and cfg, pushing progress onto
// sink as it goes. cancel is polled at every stage boundary and, inside
// Two-opt, at every pass boundary; a nil cancel channel means the job is
// never cancellable.
//
// Every error this returns is also logged through zerolog, keyed by a
// generated per-job correlation ID, before the error reaches the caller.
func Optimize(paths []path.Path, cfg path.Config, sink progress.Sink, cancel <-chan struct{}) (path.OptimizationResult, error) {
	logger := log.With().Str("job_id", uuid.NewString()).Logger()

	if len(paths) == 0 {
		logger.Warn().Err(path.ErrEmptyInput).Msg("optimize: rejected")
		return path.OptimizationResult{}, path.ErrEmptyInput
	}
	for i, p := range paths {
		if err := p.Validate(); err != nil {
			logger.Warn().Err(err).Int("path_index", i).Msg("optimize: rejected")
			return path.OptimizationResult{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		logger.Warn().Err(err).Msg("optimize: rejected")
		return path.OptimizationResult{}, err
	}

	if cancelled(cancel) {
		return cancelResult(sink, logger)
	}

	originalPenUp := path.Round1e9(path.PenUp(paths, identitySequence(paths)))

	sink.Push(progress.FilterStart(len(paths), cfg.PenWidth, cfg.VisibilityThreshold))
	filterResult := filter.Filter(paths, cfg)
	sink.Push(progress.FilterResultEvent(
		len(paths), len(filterResult.KeptIndices), len(filterResult.RemovedIndices),
		filterResult.RemovedIndices, cfg.PenWidth, cfg.VisibilityThreshold,
	))

	if cancelled(cancel) {
		return cancelResult(sink, logger)
	}

	greedySeq := greedy.Order(paths, filterResult.KeptIndices, sink)

	if cancelled(cancel) {
		return cancelResult(sink, logger)
	}

	refinedSeq, history, iterations, err := twoopt.Refine(paths, greedySeq, cfg.MaxIterations, sink, cancel)
	if err != nil {
		msg := "optimize: internal invariant violation"
		if errors.Is(err, path.ErrCancelled) {
			msg = "optimize: cancelled mid-run"
		}
		sink.Push(progress.Log(msg))
		sink.Push(progress.Complete())
		logger.Warn().Err(err).Msg(msg)
		return path.OptimizationResult{}, err
	}

	sink.Push(progress.Complete())

	return path.OptimizationResult{
		Sequence:      refinedSeq,
		PenUpHistory:  history,
		Iterations:    iterations,
		OriginalPenUp: originalPenUp,
		GreedyPenUp:   history[0],
		FinalPenUp:    history[len(history)-1],
	}, nil
}

func cancelled(cancel <-chan struct{}) bool {
	if cancel == nil {
		return false
	}
	select {
	case <-cancel:
		return true
	default:
		return false
	}
}

func cancelResult(sink progress.Sink, logger zerolog.Logger) (path.OptimizationResult, error) {
	sink.Push(progress.Log("cancelled"))
	sink.Push(progress.Complete())
	logger.Warn().Err(path.ErrCancelled).Msg("optimize: cancelled")
	return path.OptimizationResult{}, path.ErrCancelled
}

// identitySequence places every path, unflipped, in its original order —
// the baseline pen-up distance before any filtering or reordering.
func identitySequence(paths []path.Path) path.PathSequence {
	order := make([]path.Placement, len(paths))
	for i := range paths {
		order[i] = path.Placement{OriginalIndex: i}
	}
	return path.PathSequence{Order: order}
}
