package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/dreamhop/common"
)

// Vec is the simulation's 2D vector. It is cp's vector so aiming math can
// use Distance/Length directly.
type Vec = cp.Vector

// Kinematic is the mutable motion state of one body.
type Kinematic struct {
	Pos      Vec
	Vel      Vec
	Width    float64
	Height   float64
	Grounded bool
}

// Rect returns the body's bounding box at its current position.
func (k *Kinematic) Rect() Rect {
	return Rect{X: k.Pos.X, Y: k.Pos.Y, Width: k.Width, Height: k.Height}
}

// Integrate applies one frame of gravity and moves the body by its velocity.
// Gravity is added even when grounded; collision pushes the body back out.
func Integrate(k *Kinematic, gravity float64) {
	if k == nil {
		return
	}
	k.Vel.Y += gravity
	k.Pos = k.Pos.Add(k.Vel)
}

// ClampToScreen keeps the body inside the horizontal playfield and stops it
// on the bottom edge. It reports whether the body was stopped by the floor.
func ClampToScreen(k *Kinematic, screenW, screenH float64) bool {
	if k == nil {
		return false
	}
	k.Pos.X = common.Clamp(k.Pos.X, 0, screenW-k.Width)
	floor := screenH - k.Height
	if k.Pos.Y > floor {
		k.Pos.Y = floor
		k.Vel.Y = 0
		k.Grounded = true
		return true
	}
	return false
}
