package component

import "github.com/milk9111/dreamhop/physics"

// Projectile travels in a straight line. Vel is fixed at spawn; Trail keeps
// the most recent center points, oldest first.
type Projectile struct {
	Vel         physics.Vec
	BaseAngle   float64
	Age         int
	Trail       []physics.Vec
	TrailLength int
}

var ProjectileComponent = NewComponent[Projectile]()
