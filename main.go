// dreamhop is a single-screen platformer: hop across five dream levels,
// dodge hive guard bees and stand on the puzzle block to move on.
//
// Usage:
//
//	dreamhop [--config path] [--levels-dir dir] [--level n] [--tps n] [--debug]
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dreamhop/config"
	"github.com/milk9111/dreamhop/game"
	"github.com/milk9111/dreamhop/levels"
	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagLevelsDir string
	flagLevel     int
	flagTPS       int
	flagDebug     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dreamhop",
	Short: "Dreamhop - a five level platformer",
	Long: `Dreamhop is a single-screen platformer. Collect dream essences, avoid
bee stingers and stand on the red puzzle block to finish each level.

Controls:
  Arrows / WASD   move and jump (space also jumps)
  R               restart the level
  N               new game (after game over or completion)
  P               pause
  Esc             quit`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Read levels from this directory and reload them on change")
	rootCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start at")
	rootCmd.Flags().IntVar(&flagTPS, "tps", 0, "Override simulation ticks per second")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Debug logging and hitbox outlines")
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "dreamhop",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagTPS > 0 {
		cfg.Screen.TPS = flagTPS
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if flagLevel < 1 || flagLevel > cfg.Levels.Max {
		return fmt.Errorf("--level must be between 1 and %d", cfg.Levels.Max)
	}

	catalog := levels.Embedded()
	if flagLevelsDir != "" {
		catalog = levels.Dir(flagLevelsDir)
	}
	if err := catalog.Check(cfg.Levels.Max); err != nil {
		return err
	}

	sim, err := game.New(cfg, catalog, game.WithLogger(logger), game.WithStartLevel(flagLevel))
	if err != nil {
		return err
	}

	var watcher *levels.Watcher
	if flagLevelsDir != "" {
		watcher, err = levels.NewWatcher(flagLevelsDir)
		if err != nil {
			logger.Warn("level hot reload disabled", "dir", flagLevelsDir, "error", err)
		} else {
			defer watcher.Close()
			logger.Info("watching levels", "dir", flagLevelsDir)
		}
	}

	g, err := NewGame(sim, cfg, logger, watcher, flagDebug)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(int(cfg.Screen.Width), int(cfg.Screen.Height))
	ebiten.SetWindowTitle("Dreamhop")
	ebiten.SetTPS(cfg.Screen.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
