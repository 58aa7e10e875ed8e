package component

// Cooldown is a frame-based fire gate. Frames counts down to zero and is
// reset to Max by the system that consumes it.
type Cooldown struct {
	Frames int
	Max    int
}

var CooldownComponent = NewComponent[Cooldown]()
