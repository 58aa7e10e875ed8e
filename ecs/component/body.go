package component

// Body is the axis-aligned collision box size, anchored at Transform.
type Body struct {
	Width  float64
	Height float64
}

var BodyComponent = NewComponent[Body]()
