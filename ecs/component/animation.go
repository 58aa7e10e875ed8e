package component

// Animation is the frame counter driving procedural effects.
type Animation struct {
	Timer int
}

var AnimationComponent = NewComponent[Animation]()
