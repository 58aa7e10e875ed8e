package component

// Hazard damages the player on overlap and is consumed by the hit.
type Hazard struct {
	Damage int
}

var HazardComponent = NewComponent[Hazard]()
