package system

import (
	"github.com/milk9111/dreamhop/ecs"
	"github.com/milk9111/dreamhop/ecs/component"
	"github.com/milk9111/dreamhop/physics"
)

// ProjectileSystem advances projectiles along their fixed velocity, keeps
// their trail and destroys the ones that left the extended playfield.
type ProjectileSystem struct {
	screenW float64
	screenH float64
	margin  float64
}

func NewProjectileSystem(screenW, screenH, margin float64) *ProjectileSystem {
	return &ProjectileSystem{screenW: screenW, screenH: screenH, margin: margin}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Projectile, t *component.Transform) {
		pos := physics.Advance(physics.Vec{X: t.X, Y: t.Y}, p.Vel)
		t.X, t.Y = pos.X, pos.Y
		p.Age++

		if p.TrailLength > 0 {
			p.Trail = append(p.Trail, pos)
			if over := len(p.Trail) - p.TrailLength; over > 0 {
				p.Trail = append(p.Trail[:0], p.Trail[over:]...)
			}
		}

		if physics.Expired(pos, s.screenW, s.screenH, s.margin) {
			ecs.DestroyEntity(w, e)
		}
	})
}

// ProjectileObstacleSystem destroys projectiles that hit a platform. The
// exit block does not stop projectiles.
type ProjectileObstacleSystem struct{}

func NewProjectileObstacleSystem() *ProjectileObstacleSystem {
	return &ProjectileObstacleSystem{}
}

func (s *ProjectileObstacleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	platforms := platformRects(w)
	if len(platforms) == 0 {
		return
	}
	for _, e := range w.Query(component.ProjectileComponent.Kind()) {
		r, ok := projectileRect(w, e)
		if !ok {
			continue
		}
		if physics.FirstOverlap(r, platforms) >= 0 {
			ecs.DestroyEntity(w, e)
			w.Events().Push(ecs.Event{Type: ecs.EventProjectileBlocked, Entity: e})
		}
	}
}
