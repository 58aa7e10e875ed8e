package physics

import "math"

// Aim returns the unit direction from origin to target and its angle in
// degrees. Coincident points yield a zero direction and angle.
func Aim(origin, target Vec) (Vec, float64) {
	delta := target.Sub(origin)
	dist := delta.Length()
	if dist == 0 {
		return Vec{}, 0
	}
	return delta.Mult(1 / dist), math.Atan2(delta.Y, delta.X) * 180 / math.Pi
}

// SpawnVelocity aims from origin at target and scales the unit direction by
// speed. Coincident points yield a zero velocity.
func SpawnVelocity(origin, target Vec, speed float64) Vec {
	dir, _ := Aim(origin, target)
	return dir.Mult(speed)
}

// Advance moves a projectile one frame along its fixed velocity.
func Advance(pos, vel Vec) Vec {
	return pos.Add(vel)
}

// Expired reports whether pos has left the playfield extended by margin on
// every side.
func Expired(pos Vec, screenW, screenH, margin float64) bool {
	return pos.X < -margin || pos.X > screenW+margin ||
		pos.Y < -margin || pos.Y > screenH+margin
}

// InRange reports whether two points are within radius of each other.
func InRange(a, b Vec, radius float64) bool {
	return a.Distance(b) <= radius
}

// FirstOverlap returns the index of the first rect r overlaps, or -1.
func FirstOverlap(r Rect, rects []Rect) int {
	for i, other := range rects {
		if r.Intersects(other) {
			return i
		}
	}
	return -1
}
