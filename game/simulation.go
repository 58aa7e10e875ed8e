// Package game runs the platformer simulation: it owns the ECS world of the
// current level, the fixed system order and the level state machine, and
// exposes a frame snapshot for presentation.
package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/milk9111/dreamhop/config"
	"github.com/milk9111/dreamhop/ecs"
	"github.com/milk9111/dreamhop/ecs/component"
	"github.com/milk9111/dreamhop/ecs/entity"
	"github.com/milk9111/dreamhop/ecs/system"
	"github.com/milk9111/dreamhop/levels"
)

// ErrQuit is returned by Step when the quit command is received.
var ErrQuit = errors.New("game: quit")

// LevelSource provides level layouts by 1-based index.
type LevelSource interface {
	Load(index int) (*levels.Level, error)
}

type Option func(*Simulation)

// WithLogger sets the logger used for gameplay milestones.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStartLevel starts the first run at the given level instead of 1.
func WithStartLevel(level int) Option {
	return func(s *Simulation) {
		s.startLevel = level
	}
}

// Simulation is a deterministic, single-threaded game session. It is not
// safe for concurrent use.
type Simulation struct {
	cfg        config.Config
	source     LevelSource
	logger     *log.Logger
	startLevel int

	state     LevelState
	level     *levels.Level
	world     *ecs.World
	player    ecs.Entity
	scheduler *ecs.Scheduler
	collision *system.CollisionSystem
	enemies   *system.EnemySystem

	collected int
	tick      uint64
}

func New(cfg config.Config, source LevelSource, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if source == nil {
		return nil, fmt.Errorf("game: nil level source")
	}
	s := &Simulation{
		cfg:        cfg,
		source:     source,
		logger:     log.New(io.Discard),
		startLevel: 1,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.collision = system.NewCollisionSystem()
	s.enemies = system.NewEnemySystem(cfg)
	s.scheduler = ecs.NewScheduler(
		system.NewPlayerControllerSystem(),
		system.NewInvulnerableSystem(),
		system.NewKinematicSystem(cfg.Physics.Gravity, cfg.Screen.Width, cfg.Screen.Height),
		s.collision,
		s.enemies,
		system.NewProjectileSystem(cfg.Screen.Width, cfg.Screen.Height, cfg.Projectile.Margin),
		system.NewHazardSystem(cfg.Player.RecoveryFrames, cfg.Player.FlashInterval),
		system.NewProjectileObstacleSystem(),
		system.NewPickupCollectSystem(),
		system.NewExitTriggerSystem(cfg.Exit.ToleranceAbove, cfg.Exit.ToleranceBelow),
		system.NewWhiteFlashSystem(),
		system.NewAnimationSystem(),
	)

	s.state = NewLevelState(cfg.Levels.Max, cfg.Levels.CompleteDelay, s.startLevel)
	if err := s.loadLevel(s.state.Level); err != nil {
		return nil, err
	}
	return s, nil
}

// Step runs one frame. Commands are applied before the frame simulates.
// Nothing is simulated while the game is over or complete.
func (s *Simulation) Step(in Input) error {
	switch in.Command {
	case CommandQuit:
		return ErrQuit
	case CommandRestart:
		if err := s.Restart(); err != nil {
			return err
		}
	case CommandNewGame:
		if _, err := s.NewGame(); err != nil {
			return err
		}
	}

	if s.state.Terminal() {
		return nil
	}
	s.tick++

	if input, ok := ecs.Get(s.world, s.player, component.InputComponent.Kind()); ok {
		input.MoveX = in.moveX()
		input.Jump = in.Jump
	}

	s.scheduler.Update(s.world)
	if err := s.enemies.Err; err != nil {
		s.enemies.Err = nil
		return fmt.Errorf("game: enemy: %w", err)
	}

	sig := Signals{ExitActivated: s.exitActivated()}
	for _, evt := range s.world.Events().Drain() {
		switch evt.Type {
		case ecs.EventPlayerDied:
			sig.PlayerDied = true
		case ecs.EventPlayerDamaged:
			s.logger.Debug("player damaged", "amount", evt.Amount, "health", s.health())
		case ecs.EventPickupCollected:
			s.collected += evt.Amount
			s.logger.Debug("pickup collected", "total", s.collected)
		case ecs.EventProjectileFired:
			s.logger.Debug("projectile fired", "entity", evt.Entity)
		case ecs.EventProjectileBlocked:
			s.logger.Debug("projectile blocked", "entity", evt.Entity)
		case ecs.EventExitActivated:
			s.logger.Debug("puzzle block activated")
		case ecs.EventExitDeactivated:
			s.logger.Debug("puzzle block deactivated")
		}
	}

	next, transition := s.state.Tick(sig)
	s.state = next
	switch transition {
	case TransitionLevelComplete:
		s.logger.Info("level completed", "level", s.state.Level)
	case TransitionNextLevel:
		if err := s.loadLevel(s.state.Level); err != nil {
			return err
		}
	case TransitionGameOver:
		s.logger.Info("game over", "level", s.state.Level, "collected", s.collected)
	case TransitionGameComplete:
		s.logger.Info("game complete", "collected", s.collected)
	}
	return nil
}

// Restart rebuilds the current level and clears the completion timer, the
// terminal flags and the collected count.
func (s *Simulation) Restart() error {
	if err := s.loadLevel(s.state.Level); err != nil {
		return err
	}
	s.state = s.state.Restart()
	s.collected = 0
	s.logger.Info("level restarted", "level", s.state.Level)
	return nil
}

// NewGame starts over from level 1. It is ignored unless the game is over
// or complete, and reports whether it applied.
func (s *Simulation) NewGame() (bool, error) {
	next, ok := s.state.NewGame()
	if !ok {
		return false, nil
	}
	if err := s.loadLevel(next.Level); err != nil {
		return false, err
	}
	s.state = next
	s.collected = 0
	s.logger.Info("new game")
	return true, nil
}

// Reload restarts the current level when index names it. Used when a level
// file changes on disk.
func (s *Simulation) Reload(index int) error {
	if index != s.state.Level {
		return nil
	}
	if _, err := s.source.Load(index); err != nil {
		return fmt.Errorf("game: reload level %d: %w", index, err)
	}
	s.logger.Info("level file reloaded", "level", index)
	return s.Restart()
}

func (s *Simulation) State() LevelState { return s.state }

func (s *Simulation) Collected() int { return s.collected }

func (s *Simulation) Level() *levels.Level { return s.level }

func (s *Simulation) Tick() uint64 { return s.tick }

// World exposes the current level world. It is replaced on every level
// load, so callers must not keep it across steps.
func (s *Simulation) World() *ecs.World { return s.world }

// Player returns the player entity of the current world.
func (s *Simulation) Player() ecs.Entity { return s.player }

// loadLevel builds a fresh world for index. The current world is kept when
// loading fails.
func (s *Simulation) loadLevel(index int) error {
	lvl, err := s.source.Load(index)
	if err != nil {
		return fmt.Errorf("game: load level %d: %w", index, err)
	}
	w := ecs.NewWorld()
	player, err := entity.LoadLevelToWorld(w, s.cfg, lvl)
	if err != nil {
		return fmt.Errorf("game: build level %d: %w", index, err)
	}
	s.world, s.level, s.player = w, lvl, player
	s.collision.Unresolved = 0
	s.logger.Info("level loaded", "level", index, "name", lvl.Name)
	return nil
}

func (s *Simulation) exitActivated() bool {
	activated := false
	ecs.ForEach(s.world, component.ExitTriggerComponent.Kind(), func(_ ecs.Entity, exit *component.ExitTrigger) {
		activated = activated || exit.Activated
	})
	return activated
}

func (s *Simulation) health() int {
	if h, ok := ecs.Get(s.world, s.player, component.HealthComponent.Kind()); ok {
		return h.Current
	}
	return 0
}
