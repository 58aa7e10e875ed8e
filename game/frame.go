package game

import (
	"image/color"
	"slices"

	"github.com/milk9111/dreamhop/ecs"
	"github.com/milk9111/dreamhop/ecs/component"
	"github.com/milk9111/dreamhop/physics"
)

// EntityKind is the closed set of things the renderer draws.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindEnemy
	KindProjectile
	KindPickup
	KindPlatform
	KindExitTrigger
)

func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	case KindPickup:
		return "pickup"
	case KindPlatform:
		return "platform"
	case KindExitTrigger:
		return "exit_trigger"
	default:
		return "unknown"
	}
}

// Effect mirrors component.Effect for callers outside the simulation.
type Effect struct {
	OffsetX  float64
	OffsetY  float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	Flash    bool
	Tint     bool
	Hue      float64
	Glow     float64
}

// Descriptor is the renderable state of one entity. X/Y is the top-left of
// the collision box; Trail holds projectile center points, oldest first.
type Descriptor struct {
	Kind       EntityKind
	X, Y       float64
	Width      float64
	Height     float64
	FacingLeft bool
	Sprite     string
	Effect     Effect
	Trail      []physics.Vec
	// Active is the exit block's activation flag.
	Active bool
	Layer  int
}

type HUD struct {
	Health                int
	MaxHealth             int
	Collected             int
	Level                 int
	MaxLevels             int
	LevelName             string
	PuzzleActivated       bool
	LevelComplete         bool
	GameOver              bool
	GameComplete          bool
	SecondsUntilNextLevel int
	Background            color.NRGBA
}

// Frame is a copy of everything presentation needs after a step. It shares
// no memory with the simulation.
type Frame struct {
	Tick        uint64
	Phase       Phase
	Descriptors []Descriptor
	HUD         HUD
	// Unresolved counts overlaps the last collision pass could not separate.
	Unresolved int
}

// Frame snapshots the current world in draw order.
func (s *Simulation) Frame() Frame {
	f := Frame{
		Tick:       s.tick,
		Phase:      s.state.Phase(),
		Unresolved: s.collision.Unresolved,
	}

	for _, e := range s.world.Query(component.RenderLayerComponent.Kind()) {
		if d, ok := describe(s.world, e); ok {
			f.Descriptors = append(f.Descriptors, d)
		}
	}
	slices.SortStableFunc(f.Descriptors, func(a, b Descriptor) int {
		return a.Layer - b.Layer
	})

	f.HUD = HUD{
		Collected:             s.collected,
		Level:                 s.state.Level,
		MaxLevels:             s.state.MaxLevels,
		PuzzleActivated:       s.exitActivated(),
		LevelComplete:         s.state.Timer > 0,
		GameOver:              s.state.GameOver,
		GameComplete:          s.state.GameComplete,
		SecondsUntilNextLevel: s.state.SecondsUntilNextLevel(s.cfg.Screen.TPS),
	}
	if h, ok := ecs.Get(s.world, s.player, component.HealthComponent.Kind()); ok {
		f.HUD.Health, f.HUD.MaxHealth = h.Current, h.Max
	}
	if s.level != nil {
		f.HUD.LevelName = s.level.Name
		f.HUD.Background, _ = s.level.BackgroundColor()
	}
	return f
}

func kindOf(w *ecs.World, e ecs.Entity) (EntityKind, bool) {
	switch {
	case ecs.Has(w, e, component.PlayerComponent.Kind()):
		return KindPlayer, true
	case ecs.Has(w, e, component.EnemyComponent.Kind()):
		return KindEnemy, true
	case ecs.Has(w, e, component.ProjectileComponent.Kind()):
		return KindProjectile, true
	case ecs.Has(w, e, component.PickupComponent.Kind()):
		return KindPickup, true
	case ecs.Has(w, e, component.PlatformTagComponent.Kind()):
		return KindPlatform, true
	case ecs.Has(w, e, component.ExitTriggerComponent.Kind()):
		return KindExitTrigger, true
	default:
		return 0, false
	}
}

func describe(w *ecs.World, e ecs.Entity) (Descriptor, bool) {
	kind, ok := kindOf(w, e)
	if !ok {
		return Descriptor{}, false
	}
	t, tok := ecs.Get(w, e, component.TransformComponent.Kind())
	b, bok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !tok || !bok {
		return Descriptor{}, false
	}

	d := Descriptor{
		Kind:   kind,
		X:      t.X,
		Y:      t.Y,
		Width:  b.Width,
		Height: b.Height,
		Effect: Effect{ScaleX: 1, ScaleY: 1},
	}
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		d.Sprite = sprite.Key
		d.FacingLeft = sprite.FacingLeft
	}
	if fx, ok := ecs.Get(w, e, component.EffectComponent.Kind()); ok {
		d.Effect = Effect(*fx)
	}
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		d.Layer = layer.Index
	}

	switch kind {
	case KindProjectile:
		p, _ := ecs.Get(w, e, component.ProjectileComponent.Kind())
		r := physics.CenteredRect(t.X, t.Y, b.Width, b.Height)
		d.X, d.Y = r.X, r.Y
		d.Trail = slices.Clone(p.Trail)
	case KindExitTrigger:
		exit, _ := ecs.Get(w, e, component.ExitTriggerComponent.Kind())
		d.Active = exit.Activated
	case KindPlayer, KindEnemy, KindPickup, KindPlatform:
	}
	return d, true
}
