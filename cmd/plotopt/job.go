package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/viper"

	"github.com/katalvlaran/plotopt/path"
	"github.com/katalvlaran/plotopt/progress"
)

// jobFile is the on-disk shape of a single optimization job: the paths to
// order plus the config to order them with.
type jobFile struct {
	Paths  []path.Path `json:"paths"`
	Config path.Config `json:"config"`
}

// resultFile is the on-disk shape of a completed job, per the downstream
// contract: the final ordering as (original_index, flipped) pairs, plus
// the pen-up accounting.
type resultFile struct {
	Paths         []progress.WirePlacement `json:"paths"`
	PenUpHistory  []float64                `json:"pen_up_history"`
	Iterations    int                      `json:"iterations"`
	OriginalPenUp float64                  `json:"original_pen_up"`
	GreedyPenUp   float64                  `json:"greedy_pen_up"`
	FinalPenUp    float64                  `json:"final_pen_up"`
}

func loadJob(inputPath string) (jobFile, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return jobFile{}, err
	}
	var jf jobFile
	if err := json.Unmarshal(data, &jf); err != nil {
		return jobFile{}, err
	}
	if viper.ConfigFileUsed() != "" {
		// A --config file overrides any field it sets, merged over the job's
		// own Config via the same recognized keys (mapstructure tags on
		// path.Config).
		if err := viper.Unmarshal(&jf.Config); err != nil {
			return jobFile{}, err
		}
	}
	return jf, nil
}

func toResultFile(result path.OptimizationResult) resultFile {
	placements := make([]progress.WirePlacement, result.Sequence.Len())
	for i, pl := range result.Sequence.Order {
		placements[i] = progress.WirePlacement{OriginalIndex: pl.OriginalIndex, Reversed: pl.Flipped}
	}
	return resultFile{
		Paths:         placements,
		PenUpHistory:  result.PenUpHistory,
		Iterations:    result.Iterations,
		OriginalPenUp: result.OriginalPenUp,
		GreedyPenUp:   result.GreedyPenUp,
		FinalPenUp:    result.FinalPenUp,
	}
}

func writeResult(outputPath string, result path.OptimizationResult) error {
	data, err := json.MarshalIndent(toResultFile(result), "", "  ")
	if err != nil {
		return err
	}
	if outputPath == "" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
