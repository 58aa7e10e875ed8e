package entity

import (
	"github.com/milk9111/dreamhop/config"
	"github.com/milk9111/dreamhop/ecs"
	"github.com/milk9111/dreamhop/ecs/component"
	"github.com/milk9111/dreamhop/physics"
)

// NewProjectile spawns a stinger centered on origin and aimed at target.
func NewProjectile(w *ecs.World, cfg config.Config, origin, target physics.Vec, speed float64) (ecs.Entity, error) {
	pc := cfg.Projectile
	_, angle := physics.Aim(origin, target)
	return buildEntity(w, "projectile",
		with("projectile", component.ProjectileComponent.Kind(), &component.Projectile{
			Vel:         physics.SpawnVelocity(origin, target, speed),
			BaseAngle:   angle,
			TrailLength: pc.TrailLength,
		}),
		with("hazard", component.HazardComponent.Kind(), &component.Hazard{Damage: pc.Damage}),
		with("transform", component.TransformComponent.Kind(), &component.Transform{X: origin.X, Y: origin.Y}),
		with("body", component.BodyComponent.Kind(), &component.Body{Width: pc.Width, Height: pc.Height}),
		with("effect", component.EffectComponent.Kind(), &component.Effect{ScaleX: 1, ScaleY: 1, Rotation: angle}),
		with("sprite", component.SpriteComponent.Kind(), &component.Sprite{Key: SpriteProjectile}),
		with("render layer", component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: LayerProjectile}),
	)
}
