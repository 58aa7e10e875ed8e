package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/dreamhop/config"
	"github.com/milk9111/dreamhop/game"
	"github.com/milk9111/dreamhop/levels"
)

// Game adapts the simulation to ebiten: it samples input, steps the
// simulation once per tick and draws the latest frame.
type Game struct {
	sim     *game.Simulation
	cfg     config.Config
	logger  *log.Logger
	watcher *levels.Watcher
	debug   bool

	paused  bool
	pending game.Command
	pauseUI *ebitenui.UI
	endUI   *ebitenui.UI

	frame    game.Frame
	renderer *renderer
}

func NewGame(sim *game.Simulation, cfg config.Config, logger *log.Logger, watcher *levels.Watcher, debug bool) (*Game, error) {
	r, err := newRenderer(cfg)
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	g := &Game{
		sim:      sim,
		cfg:      cfg,
		logger:   logger,
		watcher:  watcher,
		debug:    debug,
		renderer: r,
		frame:    sim.Frame(),
	}
	g.pauseUI = NewPauseUI(g, r.uiFace)
	g.endUI = NewEndUI(g, r.uiFace)
	return g, nil
}

// request queues a command for the next simulation step. Overlay buttons
// use it so commands go through the same path as keys.
func (g *Game) request(cmd game.Command) {
	g.pending = cmd
	g.paused = false
}

func (g *Game) Update() error {
	g.pollWatcher()

	in := readInput()
	terminal := g.sim.State().Terminal()
	switch {
	case g.paused:
		g.pauseUI.Update()
	case terminal:
		g.endUI.Update()
	}
	if g.pending != game.CommandNone {
		in.Command = g.pending
		g.pending = game.CommandNone
	}

	if pausePressed() && !terminal {
		g.paused = !g.paused
	}
	if g.paused {
		if in.Command == game.CommandNone {
			return nil
		}
		g.paused = false
	}

	if err := g.sim.Step(in); err != nil {
		if errors.Is(err, game.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	g.frame = g.sim.Frame()
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		name, ok := g.watcher.Poll()
		if !ok {
			break
		}
		idx, ok := levels.IndexFromPath(name)
		if !ok {
			continue
		}
		if err := g.sim.Reload(idx); err != nil {
			g.logger.Warn("level reload failed", "file", name, "error", err)
			continue
		}
		g.frame = g.sim.Frame()
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok && err != nil {
			g.logger.Warn("level watcher", "error", err)
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.draw(screen, g.frame, g.debug)

	switch {
	case g.paused:
		g.renderer.dim(screen)
		g.pauseUI.Draw(screen)
	case g.frame.HUD.GameOver || g.frame.HUD.GameComplete:
		g.endUI.Draw(screen)
	}

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.1f  FPS: %.1f  tick: %d  unresolved: %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), g.frame.Tick, g.frame.Unresolved), 10, int(g.cfg.Screen.Height)-20)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.Screen.Width), int(g.cfg.Screen.Height)
}
