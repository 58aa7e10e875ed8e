package component

// Enemy is a stationary shooter. AttackFrames counts down the attack
// animation started by the last shot.
type Enemy struct {
	AttackRange     float64
	ProjectileSpeed float64
	AttackDuration  int
	AttackFrames    int
}

var EnemyComponent = NewComponent[Enemy]()
