package physics

import (
	"math"
	"math/rand"
	"testing"
)

const (
	testScreenW = 800
	testScreenH = 600
	testGravity = 0.8
)

func TestIntegrateAddsGravityEvenWhenGrounded(t *testing.T) {
	k := &Kinematic{Pos: Vec{X: 10, Y: 20}, Vel: Vec{X: 5, Y: 0}, Width: 50, Height: 50, Grounded: true}
	Integrate(k, testGravity)
	if k.Vel.Y != testGravity {
		t.Fatalf("expected vy=%v, got %v", testGravity, k.Vel.Y)
	}
	if k.Pos.X != 15 || math.Abs(k.Pos.Y-(20+testGravity)) > 1e-9 {
		t.Fatalf("unexpected position %+v", k.Pos)
	}
}

func TestClampToScreen(t *testing.T) {
	cases := []struct {
		name         string
		pos          Vec
		wantPos      Vec
		wantGrounded bool
	}{
		{"inside", Vec{X: 100, Y: 100}, Vec{X: 100, Y: 100}, false},
		{"left_edge", Vec{X: -4, Y: 100}, Vec{X: 0, Y: 100}, false},
		{"right_edge", Vec{X: 790, Y: 100}, Vec{X: 750, Y: 100}, false},
		{"below_floor", Vec{X: 100, Y: 560}, Vec{X: 100, Y: 550}, true},
		{"exactly_on_floor", Vec{X: 100, Y: 550}, Vec{X: 100, Y: 550}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			k := &Kinematic{Pos: c.pos, Vel: Vec{Y: 3}, Width: 50, Height: 50}
			got := ClampToScreen(k, testScreenW, testScreenH)
			if got != c.wantGrounded || k.Grounded != c.wantGrounded {
				t.Fatalf("grounded = %v (flag %v), want %v", got, k.Grounded, c.wantGrounded)
			}
			if k.Pos != c.wantPos {
				t.Fatalf("pos = %+v, want %+v", k.Pos, c.wantPos)
			}
			if c.wantGrounded && k.Vel.Y != 0 {
				t.Fatalf("expected vy zeroed on floor, got %v", k.Vel.Y)
			}
		})
	}
}

func TestPlayerLandsOnGroundPlatform(t *testing.T) {
	ground := []Rect{{X: 0, Y: 550, Width: 800, Height: 50}}
	k := &Kinematic{Pos: Vec{X: 100, Y: 500}, Width: 50, Height: 50}

	for frame := 0; frame < 120; frame++ {
		k.Grounded = false
		Integrate(k, testGravity)
		step := k.Vel
		ClampToScreen(k, testScreenW, testScreenH)
		ResolveAgainstPlatforms(k, step, ground)

		if k.Pos.Y != 500 || k.Vel.Y != 0 || !k.Grounded {
			t.Fatalf("frame %d: expected resting at y=500 grounded, got y=%v vy=%v grounded=%v", frame, k.Pos.Y, k.Vel.Y, k.Grounded)
		}
	}
}

func TestPlayerFallsOntoPlatform(t *testing.T) {
	ground := []Rect{{X: 0, Y: 550, Width: 800, Height: 50}}
	k := &Kinematic{Pos: Vec{X: 100, Y: 200}, Width: 50, Height: 50}

	landed := false
	for frame := 0; frame < 200 && !landed; frame++ {
		k.Grounded = false
		Integrate(k, testGravity)
		step := k.Vel
		ClampToScreen(k, testScreenW, testScreenH)
		res := ResolveAgainstPlatforms(k, step, ground)
		landed = res.Grounded
	}
	if !landed {
		t.Fatalf("player never landed")
	}
	if k.Pos.Y != 500 || k.Vel.Y != 0 {
		t.Fatalf("expected y=500 vy=0 after landing, got y=%v vy=%v", k.Pos.Y, k.Vel.Y)
	}
}

func TestResolveClassification(t *testing.T) {
	platform := Rect{X: 200, Y: 400, Width: 150, Height: 20}
	cases := []struct {
		name     string
		pos      Vec
		step     Vec
		wantKind ContactKind
		wantPos  Vec
	}{
		{"landing", Vec{X: 220, Y: 355}, Vec{X: 0, Y: 6}, ContactLanding, Vec{X: 220, Y: 350}},
		{"ceiling", Vec{X: 220, Y: 410}, Vec{X: 0, Y: -8}, ContactCeiling, Vec{X: 220, Y: 420}},
		{"side_moving_right", Vec{X: 155, Y: 390}, Vec{X: 5, Y: 0}, ContactSideLeft, Vec{X: 150, Y: 390}},
		{"side_moving_left", Vec{X: 345, Y: 390}, Vec{X: -5, Y: 0}, ContactSideRight, Vec{X: 350, Y: 390}},
		{"side_when_already_level_with_platform", Vec{X: 154, Y: 360}, Vec{X: 5, Y: 9}, ContactSideLeft, Vec{X: 150, Y: 360}},
		{"ledge_landing_while_moving_toward_edge", Vec{X: 158, Y: 360}, Vec{X: 5, Y: 12}, ContactLanding, Vec{X: 158, Y: 350}},
		{"ledge_landing_moving_left", Vec{X: 340, Y: 358}, Vec{X: -6, Y: 10}, ContactLanding, Vec{X: 340, Y: 350}},
		{"true_corner_prefers_shallow_side", Vec{X: 154, Y: 358}, Vec{X: 5, Y: 9}, ContactSideLeft, Vec{X: 150, Y: 358}},
		{"true_corner_prefers_shallow_landing", Vec{X: 160, Y: 352}, Vec{X: 12, Y: 5}, ContactLanding, Vec{X: 160, Y: 350}},
		{"landing_when_already_over_platform", Vec{X: 180, Y: 352}, Vec{X: 5, Y: 2}, ContactLanding, Vec{X: 180, Y: 350}},
		{"unresolved_without_horizontal_motion", Vec{X: 220, Y: 390}, Vec{X: 0, Y: 0}, ContactUnresolved, Vec{X: 220, Y: 390}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			k := &Kinematic{Pos: c.pos, Vel: c.step, Width: 50, Height: 50}
			res := ResolveAgainstPlatforms(k, c.step, []Rect{platform})
			if len(res.Contacts) != 1 || res.Contacts[0].Kind != c.wantKind {
				t.Fatalf("expected %v contact, got %+v", c.wantKind, res.Contacts)
			}
			if k.Pos != c.wantPos {
				t.Fatalf("pos = %+v, want %+v", k.Pos, c.wantPos)
			}
			if (c.wantKind == ContactLanding) != res.Grounded {
				t.Fatalf("grounded = %v for %v", res.Grounded, c.wantKind)
			}
			if c.wantKind == ContactUnresolved && res.Unresolved != 1 {
				t.Fatalf("expected unresolved count 1, got %d", res.Unresolved)
			}
		})
	}
}

func TestResolveUsesStepSnapshotNotCurrentVelocity(t *testing.T) {
	platform := Rect{X: 200, Y: 400, Width: 150, Height: 20}
	// Current velocity already zeroed by an earlier stage; the snapshot still
	// says the body was falling.
	k := &Kinematic{Pos: Vec{X: 220, Y: 355}, Width: 50, Height: 50}
	res := ResolveAgainstPlatforms(k, Vec{Y: 5}, []Rect{platform})
	if !res.Grounded || k.Pos.Y != 350 {
		t.Fatalf("expected landing from snapshot, got %+v pos=%+v", res, k.Pos)
	}
}

func TestResolveRetestsAgainstCorrectedRect(t *testing.T) {
	// The second platform only overlaps the body before the landing on the
	// first one moves it up.
	platforms := []Rect{
		{X: 0, Y: 550, Width: 800, Height: 50},
		{X: 90, Y: 552, Width: 20, Height: 10},
	}
	k := &Kinematic{Pos: Vec{X: 100, Y: 505}, Width: 50, Height: 50}
	res := ResolveAgainstPlatforms(k, Vec{X: 0, Y: 5}, platforms)
	if len(res.Contacts) != 1 || res.Contacts[0].Platform != 0 {
		t.Fatalf("expected only the first platform to be resolved, got %+v", res.Contacts)
	}
	if k.Rect().Intersects(platforms[0]) {
		t.Fatalf("body still overlaps first platform")
	}
}

func TestResolveLeavesNoOverlap(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	platform := Rect{X: 300, Y: 300, Width: 120, Height: 20}
	for i := 0; i < 2000; i++ {
		k := &Kinematic{
			Pos:    Vec{X: 240 + rng.Float64()*200, Y: 240 + rng.Float64()*100},
			Width:  50,
			Height: 50,
		}
		step := Vec{X: float64(rng.Intn(3)-1) * 5, Y: rng.Float64()*30 - 15}
		if !k.Rect().Intersects(platform) {
			continue
		}
		res := ResolveAgainstPlatforms(k, step, []Rect{platform})
		if res.Unresolved > 0 {
			continue
		}
		if k.Rect().Intersects(platform) {
			t.Fatalf("iteration %d: body %+v still overlaps %+v after %+v", i, k.Rect(), platform, res.Contacts)
		}
	}
}

func TestSpawnVelocity(t *testing.T) {
	v := SpawnVelocity(Vec{X: 0, Y: 0}, Vec{X: 30, Y: 40}, 5)
	if math.Abs(v.X-3) > 1e-9 || math.Abs(v.Y-4) > 1e-9 {
		t.Fatalf("expected (3,4), got %+v", v)
	}
	if got := SpawnVelocity(Vec{X: 12, Y: 9}, Vec{X: 12, Y: 9}, 5); got != (Vec{}) {
		t.Fatalf("expected zero velocity for coincident points, got %+v", got)
	}
	if math.Abs(v.Length()-5) > 1e-9 {
		t.Fatalf("expected speed 5, got %v", v.Length())
	}
}

func TestAim(t *testing.T) {
	cases := []struct {
		name   string
		target Vec
		angle  float64
	}{
		{"right", Vec{X: 10, Y: 0}, 0},
		{"down", Vec{X: 0, Y: 10}, 90},
		{"left", Vec{X: -10, Y: 0}, 180},
		{"up", Vec{X: 0, Y: -10}, -90},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dir, angle := Aim(Vec{}, c.target)
			if math.Abs(dir.Length()-1) > 1e-9 {
				t.Fatalf("expected unit direction, got %+v", dir)
			}
			if math.Abs(angle-c.angle) > 1e-9 {
				t.Fatalf("expected angle %v, got %v", c.angle, angle)
			}
		})
	}
	if dir, angle := Aim(Vec{X: 3, Y: 3}, Vec{X: 3, Y: 3}); dir != (Vec{}) || angle != 0 {
		t.Fatalf("expected zero aim for coincident points, got %+v %v", dir, angle)
	}
}

func TestProjectileEventuallyExpires(t *testing.T) {
	const margin = 50.0
	origin := Vec{X: 400, Y: 300}
	for _, speed := range []float64{0.5, 5, 17} {
		for deg := 0; deg < 360; deg += 15 {
			rad := float64(deg) * math.Pi / 180
			target := origin.Add(Vec{X: math.Cos(rad), Y: math.Sin(rad)}.Mult(100))
			vel := SpawnVelocity(origin, target, speed)
			pos := origin
			limit := int((testScreenW+2*margin)/speed) + 2
			frames := 0
			for !Expired(pos, testScreenW, testScreenH, margin) {
				pos = Advance(pos, vel)
				frames++
				if frames > limit {
					t.Fatalf("speed %v angle %d: not expired after %d frames (pos %+v)", speed, deg, frames, pos)
				}
			}
			outside := pos.X < -margin || pos.X > testScreenW+margin || pos.Y < -margin || pos.Y > testScreenH+margin
			if !outside {
				t.Fatalf("expired projectile is inside extended bounds: %+v", pos)
			}
		}
	}
}

func TestInRange(t *testing.T) {
	enemy := Vec{X: 420, Y: 320}
	player := Vec{X: 445, Y: 335}
	if !InRange(enemy, player, 300) {
		t.Fatalf("expected player in range")
	}
	if InRange(enemy, Vec{X: 800, Y: 320}, 300) {
		t.Fatalf("expected player out of range")
	}
}

func TestFirstOverlap(t *testing.T) {
	rects := []Rect{{X: 0, Y: 0, Width: 10, Height: 10}, {X: 20, Y: 0, Width: 10, Height: 10}, {X: 22, Y: 2, Width: 4, Height: 4}}
	if got := FirstOverlap(Rect{X: 21, Y: 1, Width: 6, Height: 6}, rects); got != 1 {
		t.Fatalf("expected index 1, got %d", got)
	}
	if got := FirstOverlap(Rect{X: 10, Y: 0, Width: 10, Height: 10}, rects); got != -1 {
		t.Fatalf("edge contact must not overlap, got %d", got)
	}
}

func TestStandingOn(t *testing.T) {
	block := Rect{X: 450, Y: 380, Width: 30, Height: 20}
	cases := []struct {
		name string
		body Rect
		want bool
	}{
		{"resting_on_top", Rect{X: 440, Y: 330, Width: 50, Height: 50}, true},
		{"slightly_above", Rect{X: 440, Y: 326, Width: 50, Height: 50}, true},
		{"too_high", Rect{X: 440, Y: 320, Width: 50, Height: 50}, false},
		{"sunk_within_tolerance", Rect{X: 440, Y: 340, Width: 50, Height: 50}, true},
		{"too_low", Rect{X: 440, Y: 345, Width: 50, Height: 50}, false},
		{"beside", Rect{X: 400, Y: 330, Width: 50, Height: 50}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			first := StandingOn(c.body, block, 5, 10)
			second := StandingOn(c.body, block, 5, 10)
			if first != c.want {
				t.Fatalf("StandingOn = %v, want %v", first, c.want)
			}
			if first != second {
				t.Fatalf("StandingOn is not idempotent")
			}
		})
	}
}
