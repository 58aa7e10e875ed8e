package component

// Transform is the top-left corner of an entity's box in screen space.
// Projectiles are the exception: their Transform is the center point.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
