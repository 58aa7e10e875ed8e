package system

import (
	"math"

	"github.com/milk9111/dreamhop/ecs"
	"github.com/milk9111/dreamhop/ecs/component"
	"github.com/milk9111/dreamhop/ecs/entity"
)

const (
	walkCycleFrames = 8
	walkSquashPx    = 2.0
	walkTilt        = 3.0
	attackScale     = 1.2
)

// AnimationSystem derives per-frame visual effect parameters and sprite keys
// from simulation state. It never changes gameplay state.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.AnimationComponent.Kind(), func(_ ecs.Entity, anim *component.Animation) {
		anim.Timer++
	})

	ecs.ForEach2(w, component.EffectComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, fx *component.Effect, sprite *component.Sprite) {
		*fx = component.Effect{ScaleX: 1, ScaleY: 1}
		timer := 0
		if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
			timer = anim.Timer
		}
		t := float64(timer)

		if player, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
			animatePlayer(w, e, player, fx, sprite, timer)
			return
		}
		if enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind()); ok {
			fx.OffsetY = math.Sin(t*0.15) * 3
			flap := math.Sin(t*0.5)*0.1 + 1
			fx.ScaleX = flap
			fx.ScaleY = (2-flap)*0.5 + 0.5
			sprite.Key = entity.SpriteEnemy
			if enemy.AttackFrames > 0 {
				fx.ScaleX, fx.ScaleY = attackScale, attackScale
				fx.Tint = true
				sprite.Key = entity.SpriteEnemyAttack
			}
			return
		}
		if ecs.Has(w, e, component.PickupComponent.Kind()) {
			drift := t * 0.08
			fx.OffsetY = math.Sin(drift)*8 + math.Sin(drift*2)*3
			pulse := 1 + math.Sin(t*0.15)*0.2
			fx.ScaleX, fx.ScaleY = pulse, pulse
			fx.Hue = math.Mod(t*5, 360)
			fx.Glow = math.Sin(t*0.2)*0.5 + 0.5
			return
		}
		if p, ok := ecs.Get(w, e, component.ProjectileComponent.Kind()); ok {
			age := float64(p.Age)
			fx.Rotation = math.Mod(p.BaseAngle+age*10, 360)
			pulse := math.Sin(age*0.3)*0.1 + 1
			fx.ScaleX, fx.ScaleY = pulse, pulse
			return
		}
		if exit, ok := ecs.Get(w, e, component.ExitTriggerComponent.Kind()); ok {
			if exit.Activated {
				sprite.Key = entity.SpriteExitActivated
				return
			}
			sprite.Key = entity.SpriteExit
			fx.Glow = math.Abs(math.Sin(t * 0.05))
		}
	})
}

func animatePlayer(w *ecs.World, e ecs.Entity, player *component.Player, fx *component.Effect, sprite *component.Sprite, timer int) {
	t := float64(timer)
	sprite.FacingLeft = player.FacingLeft
	switch {
	case player.Jumping:
		sprite.Key = entity.SpritePlayerJump
		fx.Rotation = math.Sin(t*0.3) * 5
	case player.Moving:
		sprite.Key = entity.SpritePlayerWalk
		if timer%walkCycleFrames < walkCycleFrames/2 {
			if b, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok && b.Height > 0 {
				fx.ScaleY = (b.Height - walkSquashPx) / b.Height
			}
		}
		fx.Rotation = walkTilt
		if player.FacingLeft {
			fx.Rotation = -walkTilt
		}
	default:
		sprite.Key = entity.SpritePlayerIdle
		breath := 1 + math.Sin(t*0.1)*0.02
		fx.ScaleX, fx.ScaleY = breath, breath
	}
	if wf, ok := ecs.Get(w, e, component.WhiteFlashComponent.Kind()); ok {
		fx.Flash = wf.On
	}
}
