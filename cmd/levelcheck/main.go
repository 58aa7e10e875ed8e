// levelcheck validates dreamhop level files and runs each level headless
// for a number of idle frames, reporting how the player fares.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/milk9111/dreamhop/config"
	"github.com/milk9111/dreamhop/game"
	"github.com/milk9111/dreamhop/levels"
	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagLevelsDir string
	flagFrames    int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "levelcheck",
	Short:        "Validate dreamhop levels and simulate them headless",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Check levels in this directory instead of the embedded set")
	rootCmd.Flags().IntVar(&flagFrames, "frames", 600, "Idle frames to simulate per level")
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "levelcheck"})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	catalog := levels.Embedded()
	if flagLevelsDir != "" {
		catalog = levels.Dir(flagLevelsDir)
	}

	failed := 0
	for i := 1; i <= cfg.Levels.Max; i++ {
		if err := checkLevel(logger, cfg, catalog, i); err != nil {
			logger.Error("level failed", "level", i, "error", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d levels failed", failed, cfg.Levels.Max)
	}
	return nil
}

func checkLevel(logger *log.Logger, cfg config.Config, catalog *levels.Catalog, index int) error {
	lvl, err := catalog.Load(index)
	if err != nil {
		return err
	}
	sim, err := game.New(cfg, catalog, game.WithStartLevel(index))
	if err != nil {
		return err
	}

	maxUnresolved := 0
	for i := 0; i < flagFrames && !sim.State().Terminal(); i++ {
		if err := sim.Step(game.Input{}); err != nil {
			return err
		}
		if f := sim.Frame(); f.Unresolved > maxUnresolved {
			maxUnresolved = f.Unresolved
		}
	}

	f := sim.Frame()
	logger.Info("level ok",
		"level", index,
		"name", lvl.Name,
		"platforms", len(lvl.Platforms),
		"enemies", len(lvl.Enemies),
		"pickups", len(lvl.Pickups),
		"frames", f.Tick,
		"phase", f.Phase,
		"health", f.HUD.Health,
		"unresolved", maxUnresolved,
	)
	if maxUnresolved > 0 {
		logger.Warn("overlaps left unresolved", "level", index, "max", maxUnresolved)
	}
	return nil
}
