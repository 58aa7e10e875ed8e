package entity

import (
	"github.com/milk9111/dreamhop/config"
	"github.com/milk9111/dreamhop/ecs"
	"github.com/milk9111/dreamhop/ecs/component"
)

func NewPickupAt(w *ecs.World, cfg config.Config, x, y float64) (ecs.Entity, error) {
	return buildEntity(w, "pickup",
		with("pickup", component.PickupComponent.Kind(), &component.Pickup{Value: 1}),
		with("transform", component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}),
		with("body", component.BodyComponent.Kind(), &component.Body{Width: cfg.Pickup.Width, Height: cfg.Pickup.Height}),
		with("animation", component.AnimationComponent.Kind(), &component.Animation{}),
		with("effect", component.EffectComponent.Kind(), &component.Effect{ScaleX: 1, ScaleY: 1}),
		with("sprite", component.SpriteComponent.Kind(), &component.Sprite{Key: SpritePickup}),
		with("render layer", component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: LayerPickup}),
	)
}
