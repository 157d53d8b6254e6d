package main

import (
	"log"

	"github.com/spf13/cobra"

	"lifegrid/internal/app"
	"lifegrid/internal/config"
)

var configFile string

func main() {
	rootCmd := newRootCmd()
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a YAML config file")
	rootCmd.AddCommand(newBenchCmd(), newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lifegrid",
		Short: "interactive Game of Life on an unbounded plane",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootConfig(cmd)
			if err != nil {
				return err
			}
			return app.Run(cfg)
		},
	}

	def := config.Default()
	cmd.Flags().Int("width", def.Width, "window width in pixels")
	cmd.Flags().Int("height", def.Height, "window height in pixels")
	cmd.Flags().Float64("cell-size", def.CellSize, "cell size in world units")
	cmd.Flags().Int("tps", def.TPS, "ticks per second for the update loop")
	cmd.Flags().Float64("rate", def.Rate, "startup auto-step interval in seconds")
	cmd.Flags().Int64("seed", def.Seed, "soup seed for the G key")
	return cmd
}

// rootConfig loads the config file and lays explicitly-set flags over it.
func rootConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("height") {
		cfg.Height, _ = flags.GetInt("height")
	}
	if flags.Changed("cell-size") {
		cfg.CellSize, _ = flags.GetFloat64("cell-size")
	}
	if flags.Changed("tps") {
		cfg.TPS, _ = flags.GetInt("tps")
	}
	if flags.Changed("rate") {
		cfg.Rate, _ = flags.GetFloat64("rate")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	return cfg, nil
}
