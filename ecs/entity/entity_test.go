package entity

import (
	"errors"
	"math"
	"testing"

	"github.com/milk9111/dreamhop/config"
	"github.com/milk9111/dreamhop/ecs"
	"github.com/milk9111/dreamhop/ecs/component"
	"github.com/milk9111/dreamhop/levels"
	"github.com/milk9111/dreamhop/physics"
)

func TestLoadLevelToWorld(t *testing.T) {
	cfg := config.Default()
	c := levels.Embedded()
	for i := 1; i <= cfg.Levels.Max; i++ {
		lvl, err := c.Load(i)
		if err != nil {
			t.Fatalf("load level %d: %v", i, err)
		}
		w := ecs.NewWorld()
		player, err := LoadLevelToWorld(w, cfg, lvl)
		if err != nil {
			t.Fatalf("level %d: %v", i, err)
		}

		counts := []struct {
			name string
			got  int
			want int
		}{
			{"platforms", ecs.Count(w, component.PlatformTagComponent.Kind()), len(lvl.Platforms)},
			{"enemies", ecs.Count(w, component.EnemyComponent.Kind()), len(lvl.Enemies)},
			{"pickups", ecs.Count(w, component.PickupComponent.Kind()), len(lvl.Pickups)},
			{"exits", ecs.Count(w, component.ExitTriggerComponent.Kind()), 1},
			{"players", ecs.Count(w, component.PlayerTagComponent.Kind()), 1},
		}
		for _, c := range counts {
			if c.got != c.want {
				t.Fatalf("level %d: expected %d %s, got %d", i, c.want, c.name, c.got)
			}
		}

		tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
		if tr.X != lvl.PlayerStart.X || tr.Y != lvl.PlayerStart.Y {
			t.Fatalf("level %d: player not at start", i)
		}
		h, _ := ecs.Get(w, player, component.HealthComponent.Kind())
		if h.Current != cfg.Player.MaxHealth || h.Max != cfg.Player.MaxHealth {
			t.Fatalf("level %d: expected full health, got %+v", i, h)
		}
	}
}

func TestPlatformsKeepLevelOrder(t *testing.T) {
	cfg := config.Default()
	lvl := &levels.Level{
		Platforms: []levels.Rect{
			{X: 0, Y: 550, Width: 800, Height: 50},
			{X: 10, Y: 20, Width: 30, Height: 40},
			{X: 5, Y: 6, Width: 7, Height: 8},
		},
		Exit: &levels.Rect{X: 1, Y: 1, Width: 2, Height: 2},
	}
	w := ecs.NewWorld()
	if _, err := LoadLevelToWorld(w, cfg, lvl); err != nil {
		t.Fatalf("load: %v", err)
	}
	var got []levels.Rect
	for _, e := range w.Query(component.PlatformTagComponent.Kind()) {
		tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		b, _ := ecs.Get(w, e, component.BodyComponent.Kind())
		got = append(got, levels.Rect{X: tr.X, Y: tr.Y, Width: b.Width, Height: b.Height})
	}
	for i := range lvl.Platforms {
		if got[i] != lvl.Platforms[i] {
			t.Fatalf("platform %d out of order: %+v", i, got)
		}
	}
}

func TestLoadLevelToWorldRejectsInvalid(t *testing.T) {
	w := ecs.NewWorld()
	_, err := LoadLevelToWorld(w, config.Default(), &levels.Level{Exit: &levels.Rect{Width: 1, Height: 1}})
	if !errors.Is(err, levels.ErrNoPlatforms) {
		t.Fatalf("expected ErrNoPlatforms, got %v", err)
	}
	if len(ecs.Entities(w)) != 0 {
		t.Fatalf("invalid level must not create entities")
	}
}

func TestNewProjectileAimsAtTarget(t *testing.T) {
	cfg := config.Default()
	w := ecs.NewWorld()
	e, err := NewProjectile(w, cfg, physics.Vec{X: 0, Y: 0}, physics.Vec{X: 0, Y: 100}, 5)
	if err != nil {
		t.Fatalf("new projectile: %v", err)
	}
	p, _ := ecs.Get(w, e, component.ProjectileComponent.Kind())
	if p.Vel != (physics.Vec{X: 0, Y: 5}) || math.Abs(p.BaseAngle-90) > 1e-9 {
		t.Fatalf("unexpected projectile %+v", p)
	}
	hz, _ := ecs.Get(w, e, component.HazardComponent.Kind())
	if hz.Damage != cfg.Projectile.Damage {
		t.Fatalf("expected damage %d, got %d", cfg.Projectile.Damage, hz.Damage)
	}
}

func TestBuildEntityDestroysOnFailure(t *testing.T) {
	w := ecs.NewWorld()
	_, err := buildEntity(w, "broken",
		with("transform", component.TransformComponent.Kind(), &component.Transform{}),
		with("body", component.BodyComponent.Kind(), nil),
	)
	if !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	if len(ecs.Entities(w)) != 0 {
		t.Fatalf("half-built entity must be destroyed")
	}
}
