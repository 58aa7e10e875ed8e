package entity

import (
	"github.com/milk9111/dreamhop/config"
	"github.com/milk9111/dreamhop/ecs"
	"github.com/milk9111/dreamhop/ecs/component"
)

// NewEnemyAt places a hive guard bee with its top-left corner at (x, y). It
// starts with an empty cooldown and fires as soon as the player is in range.
func NewEnemyAt(w *ecs.World, cfg config.Config, x, y float64) (ecs.Entity, error) {
	ec := cfg.Enemy
	return buildEntity(w, "enemy",
		with("enemy", component.EnemyComponent.Kind(), &component.Enemy{
			AttackRange:     ec.AttackRange,
			ProjectileSpeed: ec.ProjectileSpeed,
			AttackDuration:  ec.AttackFrames,
		}),
		with("cooldown", component.CooldownComponent.Kind(), &component.Cooldown{Max: ec.FireCooldown}),
		with("transform", component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}),
		with("body", component.BodyComponent.Kind(), &component.Body{Width: ec.Width, Height: ec.Height}),
		with("animation", component.AnimationComponent.Kind(), &component.Animation{}),
		with("effect", component.EffectComponent.Kind(), &component.Effect{ScaleX: 1, ScaleY: 1}),
		with("sprite", component.SpriteComponent.Kind(), &component.Sprite{Key: SpriteEnemy}),
		with("render layer", component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: LayerEnemy}),
	)
}
