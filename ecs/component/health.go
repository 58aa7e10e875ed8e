package component

// Health is clamped to [0, Max] by every system that changes it.
type Health struct {
	Current int
	Max     int
}

var HealthComponent = NewComponent[Health]()
