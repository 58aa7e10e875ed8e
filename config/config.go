// Package config holds the immutable tuning values of the simulation.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the complete set of tuning values. It is passed by value into
// constructors and never mutated afterwards.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Pickup     PickupConfig     `yaml:"pickup"`
	Exit       ExitConfig       `yaml:"exit"`
	Levels     LevelsConfig     `yaml:"levels"`
}

type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	TPS    int     `yaml:"tps"`
}

type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"`
}

type PlayerConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	MoveSpeed      float64 `yaml:"move_speed"`
	JumpStrength   float64 `yaml:"jump_strength"`
	MaxHealth      int     `yaml:"max_health"`
	RecoveryFrames int     `yaml:"recovery_frames"`
	FlashInterval  int     `yaml:"flash_interval"`
}

type EnemyConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	AttackRange     float64 `yaml:"attack_range"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	FireCooldown    int     `yaml:"fire_cooldown"`
	AttackFrames    int     `yaml:"attack_frames"`
}

type ProjectileConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Damage      int     `yaml:"damage"`
	Margin      float64 `yaml:"margin"`
	TrailLength int     `yaml:"trail_length"`
}

type PickupConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ExitConfig sets how far the player's feet may be above or below the top
// of the exit block and still count as standing on it.
type ExitConfig struct {
	ToleranceAbove float64 `yaml:"tolerance_above"`
	ToleranceBelow float64 `yaml:"tolerance_below"`
}

type LevelsConfig struct {
	Max           int `yaml:"max"`
	CompleteDelay int `yaml:"complete_delay"`
}

// Default returns the stock tuning.
func Default() Config {
	return Config{
		Screen:  ScreenConfig{Width: 800, Height: 600, TPS: 60},
		Physics: PhysicsConfig{Gravity: 0.8},
		Player: PlayerConfig{
			Width:          50,
			Height:         50,
			MoveSpeed:      5,
			JumpStrength:   -15,
			MaxHealth:      100,
			RecoveryFrames: 60,
			FlashInterval:  5,
		},
		Enemy: EnemyConfig{
			Width:           40,
			Height:          40,
			AttackRange:     300,
			ProjectileSpeed: 5,
			FireCooldown:    100,
			AttackFrames:    20,
		},
		Projectile: ProjectileConfig{Width: 20, Height: 8, Damage: 10, Margin: 50, TrailLength: 8},
		Pickup:     PickupConfig{Width: 30, Height: 30},
		Exit:       ExitConfig{ToleranceAbove: 5, ToleranceBelow: 10},
		Levels:     LevelsConfig{Max: 5, CompleteDelay: 180},
	}
}

// Validate rejects values the simulation cannot run with.
func (c Config) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{c.Screen.Width > 0 && c.Screen.Height > 0, "screen size must be positive"},
		{c.Screen.TPS > 0, "screen.tps must be positive"},
		{c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive"},
		{c.Player.Width <= c.Screen.Width && c.Player.Height <= c.Screen.Height, "player must fit on screen"},
		{c.Player.MaxHealth > 0, "player.max_health must be positive"},
		{c.Player.RecoveryFrames >= 0, "player.recovery_frames must not be negative"},
		{c.Enemy.Width > 0 && c.Enemy.Height > 0, "enemy size must be positive"},
		{c.Enemy.AttackRange >= 0, "enemy.attack_range must not be negative"},
		{c.Enemy.FireCooldown >= 0, "enemy.fire_cooldown must not be negative"},
		{c.Projectile.Width > 0 && c.Projectile.Height > 0, "projectile size must be positive"},
		{c.Projectile.Damage >= 0, "projectile.damage must not be negative"},
		{c.Projectile.Margin >= 0, "projectile.margin must not be negative"},
		{c.Pickup.Width > 0 && c.Pickup.Height > 0, "pickup size must be positive"},
		{c.Levels.Max > 0, "levels.max must be positive"},
		{c.Levels.CompleteDelay > 0, "levels.complete_delay must be positive"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalid, chk.what)
		}
	}
	return nil
}
