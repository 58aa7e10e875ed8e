package component

// Invulnerable is the damage recovery timer. Frames counts down once per
// tick and never goes below zero; while it is above zero hits are ignored.
type Invulnerable struct {
	Frames int
}

var InvulnerableComponent = NewComponent[Invulnerable]()
