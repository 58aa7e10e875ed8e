package game

// Command is a one-shot request carried by a frame's input.
type Command int

const (
	CommandNone Command = iota
	CommandRestart
	CommandNewGame
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandRestart:
		return "restart"
	case CommandNewGame:
		return "new_game"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Input is the held controls for one frame plus an optional command.
// When both directions are held, right wins.
type Input struct {
	Left    bool
	Right   bool
	Jump    bool
	Command Command
}

func (in Input) moveX() float64 {
	switch {
	case in.Right:
		return 1
	case in.Left:
		return -1
	default:
		return 0
	}
}
