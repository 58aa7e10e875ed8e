package component

// Sprite selects the placeholder shape the renderer draws.
type Sprite struct {
	Key        string
	FacingLeft bool
}

var SpriteComponent = NewComponent[Sprite]()
