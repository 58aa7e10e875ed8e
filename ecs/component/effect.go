package component

// Effect holds the visual parameters derived each frame for the renderer.
// Offsets are in pixels, Rotation in degrees counterclockwise, Hue in
// [0,360) and Glow in [0,1].
type Effect struct {
	OffsetX  float64
	OffsetY  float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	Flash    bool
	Tint     bool
	Hue      float64
	Glow     float64
}

var EffectComponent = NewComponent[Effect]()
