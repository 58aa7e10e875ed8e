package entity

import (
	"fmt"

	"github.com/milk9111/dreamhop/config"
	"github.com/milk9111/dreamhop/ecs"
	"github.com/milk9111/dreamhop/levels"
)

// LoadLevelToWorld populates an empty world from level data. Platforms,
// enemies and pickups are created in level order so iteration order matches
// the data. It returns the player entity.
func LoadLevelToWorld(w *ecs.World, cfg config.Config, lvl *levels.Level) (ecs.Entity, error) {
	if lvl == nil {
		return 0, fmt.Errorf("level: nil level")
	}
	if err := lvl.Validate(); err != nil {
		return 0, fmt.Errorf("level: %w", err)
	}
	for _, p := range lvl.Platforms {
		if _, err := NewPlatform(w, p); err != nil {
			return 0, err
		}
	}
	if _, err := NewExit(w, *lvl.Exit); err != nil {
		return 0, err
	}
	for _, p := range lvl.Pickups {
		if _, err := NewPickupAt(w, cfg, p.X, p.Y); err != nil {
			return 0, err
		}
	}
	for _, p := range lvl.Enemies {
		if _, err := NewEnemyAt(w, cfg, p.X, p.Y); err != nil {
			return 0, err
		}
	}
	return NewPlayerAt(w, cfg, lvl.PlayerStart.X, lvl.PlayerStart.Y)
}
