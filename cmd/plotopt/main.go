// Command plotopt drives the toolpath optimization engine from the
// command line: load a job file (paths + config), run it through
// engine.Optimize, stream progress to stderr, and write the optimized
// ordering as JSON.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("plotopt: failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "plotopt",
		Short:         "Pen-plotter toolpath optimization engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("log-level", "info", "zerolog level: debug, info, warn, error")
	root.PersistentFlags().String("config", "", "optional config file (yaml/json/toml) merged over job Config via viper")
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return setupLogging(cmd)
	}

	root.AddCommand(newRunCmd(), newBatchCmd())
	return root
}

func setupLogging(cmd *cobra.Command) error {
	levelFlag, _ := cmd.Flags().GetString("log-level")
	level, err := zerolog.ParseLevel(levelFlag)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})

	if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return err
		}
	}
	return nil
}
