package game

// Phase is the coarse state of the level state machine.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseLevelComplete
	PhaseGameOver
	PhaseGameComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseGameOver:
		return "game_over"
	case PhaseGameComplete:
		return "game_complete"
	default:
		return "unknown"
	}
}

// Transition is the side effect a Tick asks the caller to perform.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionLevelComplete
	TransitionNextLevel
	TransitionGameOver
	TransitionGameComplete
)

// Signals are the facts a frame of simulation reports to the state machine.
type Signals struct {
	ExitActivated bool
	PlayerDied    bool
}

// LevelState tracks level progression. Timer is 0 while the level is
// running and counts frames since the exit was activated otherwise.
// GameOver and GameComplete are absorbing until a command resets them.
type LevelState struct {
	Level        int
	MaxLevels    int
	Delay        int
	Timer        int
	GameOver     bool
	GameComplete bool
}

func NewLevelState(maxLevels, delay, level int) LevelState {
	if level < 1 || level > maxLevels {
		level = 1
	}
	return LevelState{Level: level, MaxLevels: maxLevels, Delay: delay}
}

func (s LevelState) Phase() Phase {
	switch {
	case s.GameOver:
		return PhaseGameOver
	case s.GameComplete:
		return PhaseGameComplete
	case s.Timer > 0:
		return PhaseLevelComplete
	default:
		return PhaseRunning
	}
}

// Terminal reports whether no simulation should run.
func (s LevelState) Terminal() bool {
	return s.GameOver || s.GameComplete
}

// Tick advances the state machine by one simulated frame. Death wins over
// level completion within the same frame. Once started, the completion
// timer runs to Delay whether or not the exit stays activated.
func (s LevelState) Tick(sig Signals) (LevelState, Transition) {
	if s.Terminal() {
		return s, TransitionNone
	}
	if sig.PlayerDied {
		s.GameOver = true
		s.Timer = 0
		return s, TransitionGameOver
	}
	if s.Timer == 0 {
		if sig.ExitActivated {
			s.Timer = 1
			return s, TransitionLevelComplete
		}
		return s, TransitionNone
	}
	if s.Timer < s.Delay {
		s.Timer++
		return s, TransitionNone
	}
	s.Timer = 0
	if s.Level < s.MaxLevels {
		s.Level++
		return s, TransitionNextLevel
	}
	s.GameComplete = true
	return s, TransitionGameComplete
}

// Restart clears progress on the current level and any terminal flag.
func (s LevelState) Restart() LevelState {
	s.Timer = 0
	s.GameOver = false
	s.GameComplete = false
	return s
}

// NewGame returns to level 1. It only applies from a terminal state.
func (s LevelState) NewGame() (LevelState, bool) {
	if !s.Terminal() {
		return s, false
	}
	return LevelState{Level: 1, MaxLevels: s.MaxLevels, Delay: s.Delay}, true
}

// SecondsUntilNextLevel is the countdown shown while the level is complete.
func (s LevelState) SecondsUntilNextLevel(tps int) int {
	if s.Timer == 0 || tps <= 0 {
		return 0
	}
	left := s.Delay/tps - s.Timer/tps
	if left < 0 {
		return 0
	}
	return left
}
