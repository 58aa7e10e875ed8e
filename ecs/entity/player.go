package entity

import (
	"github.com/milk9111/dreamhop/config"
	"github.com/milk9111/dreamhop/ecs"
	"github.com/milk9111/dreamhop/ecs/component"
)

func NewPlayerAt(w *ecs.World, cfg config.Config, x, y float64) (ecs.Entity, error) {
	pc := cfg.Player
	return buildEntity(w, "player",
		with("player tag", component.PlayerTagComponent.Kind(), &component.PlayerTag{}),
		with("player", component.PlayerComponent.Kind(), &component.Player{
			MoveSpeed:    pc.MoveSpeed,
			JumpStrength: pc.JumpStrength,
		}),
		with("input", component.InputComponent.Kind(), &component.Input{}),
		with("transform", component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}),
		with("velocity", component.VelocityComponent.Kind(), &component.Velocity{}),
		with("body", component.BodyComponent.Kind(), &component.Body{Width: pc.Width, Height: pc.Height}),
		with("gravity scale", component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: 1}),
		with("screen clamp", component.ScreenClampComponent.Kind(), &component.ScreenClamp{}),
		with("health", component.HealthComponent.Kind(), &component.Health{Current: pc.MaxHealth, Max: pc.MaxHealth}),
		with("invulnerable", component.InvulnerableComponent.Kind(), &component.Invulnerable{}),
		with("animation", component.AnimationComponent.Kind(), &component.Animation{}),
		with("effect", component.EffectComponent.Kind(), &component.Effect{ScaleX: 1, ScaleY: 1}),
		with("sprite", component.SpriteComponent.Kind(), &component.Sprite{Key: SpritePlayerIdle}),
		with("render layer", component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: LayerPlayer}),
	)
}
