package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// newBatchCmd optimizes several job files concurrently, one engine
// instance (and one coordinate arena) per goroutine. Jobs are independent:
// there is no shared mutable state between them, so a failure in one job
// does not prevent the others from completing; the first error is what
// batch returns.
func newBatchCmd() *cobra.Command {
	var inputs []string
	var outputDir string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Optimize multiple job files concurrently",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var g errgroup.Group
			ctx := cmd.Context()
			for _, input := range inputs {
				input := input
				g.Go(func() error {
					output := ""
					if outputDir != "" {
						output = outputDir + "/" + outputName(input)
					}
					return runJob(ctx, input, output)
				})
			}
			return g.Wait()
		},
	}
	cmd.Flags().StringSliceVar(&inputs, "input", nil, "job JSON files to optimize concurrently (repeatable)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "directory to write each job's result JSON (default: stdout, interleaved)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func outputName(input string) string {
	base := input
	for i := len(input) - 1; i >= 0; i-- {
		if input[i] == '/' {
			base = input[i+1:]
			break
		}
	}
	return base + ".result.json"
}
