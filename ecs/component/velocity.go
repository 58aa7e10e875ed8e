package component

// Velocity is the per-frame displacement of a kinematic body. StepX/StepY
// hold the velocity the body actually moved with during the last
// integration, which is what collision resolution classifies against.
type Velocity struct {
	X     float64
	Y     float64
	StepX float64
	StepY float64
}

var VelocityComponent = NewComponent[Velocity]()
