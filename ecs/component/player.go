package component

type Player struct {
	MoveSpeed    float64
	JumpStrength float64
	Grounded     bool
	FacingLeft   bool
	Moving       bool
	Jumping      bool
}

var PlayerComponent = NewComponent[Player]()
