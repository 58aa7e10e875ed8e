package entity

import (
	"github.com/milk9111/dreamhop/ecs"
	"github.com/milk9111/dreamhop/ecs/component"
	"github.com/milk9111/dreamhop/levels"
)

func NewPlatform(w *ecs.World, r levels.Rect) (ecs.Entity, error) {
	return buildEntity(w, "platform",
		with("platform tag", component.PlatformTagComponent.Kind(), &component.PlatformTag{}),
		with("transform", component.TransformComponent.Kind(), &component.Transform{X: r.X, Y: r.Y}),
		with("body", component.BodyComponent.Kind(), &component.Body{Width: r.Width, Height: r.Height}),
		with("sprite", component.SpriteComponent.Kind(), &component.Sprite{Key: SpritePlatform}),
		with("render layer", component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: LayerPlatform}),
	)
}

// NewExit creates the puzzle block. It is solid for the player but is not a
// platform, so projectiles pass through it.
func NewExit(w *ecs.World, r levels.Rect) (ecs.Entity, error) {
	return buildEntity(w, "exit",
		with("exit trigger", component.ExitTriggerComponent.Kind(), &component.ExitTrigger{}),
		with("transform", component.TransformComponent.Kind(), &component.Transform{X: r.X, Y: r.Y}),
		with("body", component.BodyComponent.Kind(), &component.Body{Width: r.Width, Height: r.Height}),
		with("animation", component.AnimationComponent.Kind(), &component.Animation{}),
		with("effect", component.EffectComponent.Kind(), &component.Effect{ScaleX: 1, ScaleY: 1}),
		with("sprite", component.SpriteComponent.Kind(), &component.Sprite{Key: SpriteExit}),
		with("render layer", component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: LayerExit}),
	)
}
