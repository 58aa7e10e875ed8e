package component

// ExitTrigger is the puzzle block. Activated is recomputed every frame.
type ExitTrigger struct {
	Activated bool
}

var ExitTriggerComponent = NewComponent[ExitTrigger]()
