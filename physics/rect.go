package physics

// Rect is an axis-aligned box with a top-left origin.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

func (r Rect) Center() Vec {
	return Vec{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Intersects reports a strict overlap. Rects that only share an edge do not
// intersect, so a body resting on a platform is not colliding with it.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// CenteredRect builds a rect of the given size around (cx, cy).
func CenteredRect(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}
