package component

// WhiteFlash makes a sprite render as full white while active. Timing is
// frame-based: On toggles every Interval frames until Frames runs out.
type WhiteFlash struct {
	Frames   int
	Interval int
	Timer    int
	On       bool
}

var WhiteFlashComponent = NewComponent[WhiteFlash]()
