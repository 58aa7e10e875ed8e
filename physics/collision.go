package physics

// ContactKind classifies how a platform was resolved.
type ContactKind int

const (
	ContactNone ContactKind = iota
	ContactLanding
	ContactCeiling
	ContactSideLeft  // pushed out to the platform's left edge
	ContactSideRight // pushed out to the platform's right edge
	ContactUnresolved
)

func (c ContactKind) String() string {
	switch c {
	case ContactLanding:
		return "landing"
	case ContactCeiling:
		return "ceiling"
	case ContactSideLeft:
		return "side_left"
	case ContactSideRight:
		return "side_right"
	case ContactUnresolved:
		return "unresolved"
	default:
		return "none"
	}
}

// Contact records the resolution applied against one platform.
type Contact struct {
	Platform int
	Kind     ContactKind
}

// Resolution summarizes one ResolveAgainstPlatforms pass.
type Resolution struct {
	Grounded   bool
	Contacts   []Contact
	Unresolved int
}

// ResolveAgainstPlatforms pushes the body out of every overlapping platform,
// visiting platforms in slice order. step is the velocity the body moved with
// this frame; classification uses it rather than the body's current velocity,
// which earlier contacts may already have zeroed.
//
// When a contact qualifies both vertically and horizontally, the axis the
// body already overlapped before the step decides it: prior horizontal
// overlap keeps the landing or ceiling, prior vertical overlap gives a side
// push. Only a true corner hit, overlapping on neither axis before the step,
// falls back to the smaller penetration.
func ResolveAgainstPlatforms(k *Kinematic, step Vec, platforms []Rect) Resolution {
	var res Resolution
	if k == nil {
		return res
	}
	for i, p := range platforms {
		r := k.Rect()
		if !r.Intersects(p) {
			continue
		}

		kind := classify(r, step, p)
		switch kind {
		case ContactLanding:
			k.Pos.Y = p.Y - k.Height
			k.Vel.Y = 0
			k.Grounded = true
			res.Grounded = true
		case ContactCeiling:
			k.Pos.Y = p.Bottom()
			k.Vel.Y = 0
		case ContactSideLeft:
			k.Pos.X = p.X - k.Width
		case ContactSideRight:
			k.Pos.X = p.Right()
		case ContactUnresolved:
			res.Unresolved++
		}
		res.Contacts = append(res.Contacts, Contact{Platform: i, Kind: kind})
	}
	return res
}

func classify(r Rect, step Vec, p Rect) ContactKind {
	vertical := ContactNone
	var penY float64
	switch {
	case step.Y > 0 && r.Y < p.Y:
		vertical = ContactLanding
		penY = r.Bottom() - p.Y
	case step.Y < 0 && r.Y > p.Y:
		vertical = ContactCeiling
		penY = p.Bottom() - r.Y
	}

	side := ContactNone
	var penX float64
	switch {
	case step.X > 0:
		side = ContactSideLeft
		penX = r.Right() - p.X
	case step.X < 0:
		side = ContactSideRight
		penX = p.Right() - r.X
	}

	if vertical != ContactNone && side != ContactNone {
		prev := Rect{X: r.X - step.X, Y: r.Y - step.Y, Width: r.Width, Height: r.Height}
		overX := prev.X < p.Right() && prev.Right() > p.X
		overY := prev.Y < p.Bottom() && prev.Bottom() > p.Y
		switch {
		case overX && !overY:
			return vertical
		case overY && !overX:
			return side
		case penX < penY:
			return side
		default:
			return vertical
		}
	}

	switch {
	case vertical != ContactNone:
		return vertical
	case side != ContactNone:
		return side
	default:
		return ContactUnresolved
	}
}
