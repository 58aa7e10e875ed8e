package component

// Pickup is a collectible worth Value toward the collected count.
type Pickup struct {
	Value int
}

var PickupComponent = NewComponent[Pickup]()
