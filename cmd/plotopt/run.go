package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/plotopt/engine"
	"github.com/katalvlaran/plotopt/path"
	"github.com/katalvlaran/plotopt/progress"
)

func newRunCmd() *cobra.Command {
	var input, output string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Optimize a single job file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runJob(cmd.Context(), input, output)
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "path to a job JSON file (required)")
	cmd.Flags().StringVar(&output, "output", "", "path to write the optimized result JSON (default: stdout)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

// runJob loads input, optimizes it, streams progress to the logger, and
// writes the result to output (stdout if empty). SIGINT/SIGTERM trip the
// job's cancellation channel.
func runJob(ctx context.Context, input, output string) error {
	jf, err := loadJob(input)
	if err != nil {
		return fmt.Errorf("loading %s: %w", input, err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus := progress.NewBus(64)
	done := make(chan struct{})

	var result path.OptimizationResult
	var optErr error
	go func() {
		defer close(done)
		result, optErr = engine.Optimize(jf.Paths, jf.Config, bus, ctx.Done())
		bus.Close()
	}()

	for e := range bus.Events() {
		logProgressEvent(input, e)
	}
	<-done

	if optErr != nil {
		return fmt.Errorf("optimizing %s: %w", input, optErr)
	}
	return writeResult(output, result)
}

func logProgressEvent(job string, e progress.Event) {
	entry := log.Info().Str("job", job).Str("event", string(e.Type))
	switch e.Type {
	case progress.EventLog:
		entry = entry.Str("msg", e.Msg)
	case progress.EventProgress:
		entry = entry.Int("current", e.Current).Int("total", e.Total)
	case progress.EventFilterResult:
		entry = entry.Int("kept", e.KeptCount).Int("removed", e.RemovedCount)
	case progress.EventPhase2Result:
		entry = entry.Int("iterations", e.Iterations).Float64("final_dist", e.FinalDist)
	}
	entry.Msg("progress")
}
