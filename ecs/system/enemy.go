package system

import (
	"github.com/milk9111/dreamhop/config"
	"github.com/milk9111/dreamhop/ecs"
	"github.com/milk9111/dreamhop/ecs/component"
	"github.com/milk9111/dreamhop/ecs/entity"
	"github.com/milk9111/dreamhop/physics"
)

// EnemySystem ticks fire cooldowns and shoots a projectile from each enemy
// whose cooldown is spent while the player is within range. Enemies are
// independent of each other.
type EnemySystem struct {
	cfg config.Config
	// Err holds the last projectile spawn failure.
	Err error
}

func NewEnemySystem(cfg config.Config) *EnemySystem {
	return &EnemySystem{cfg: cfg}
}

func (s *EnemySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	_, target, hasPlayer := playerRect(w)

	entities := w.Query(
		component.EnemyComponent.Kind(),
		component.CooldownComponent.Kind(),
	)
	for _, e := range entities {
		enemy, _ := ecs.Get(w, e, component.EnemyComponent.Kind())
		cd, _ := ecs.Get(w, e, component.CooldownComponent.Kind())

		if cd.Frames > 0 {
			cd.Frames--
		}
		if enemy.AttackFrames > 0 {
			enemy.AttackFrames--
		}
		if !hasPlayer || cd.Frames > 0 {
			continue
		}

		r, ok := bodyRect(w, e)
		if !ok {
			continue
		}
		origin := r.Center()
		aim := target.Center()
		if !physics.InRange(origin, aim, enemy.AttackRange) {
			continue
		}

		p, err := entity.NewProjectile(w, s.cfg, origin, aim, enemy.ProjectileSpeed)
		if err != nil {
			s.Err = err
			continue
		}
		cd.Frames = cd.Max
		enemy.AttackFrames = enemy.AttackDuration
		w.Events().Push(ecs.Event{Type: ecs.EventProjectileFired, Entity: p})
	}
}
