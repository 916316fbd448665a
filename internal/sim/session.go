package sim

type GameState int

const (
	StateIdle     GameState = iota // not started
	StatePlaying                   // main gameplay
	StateLevelWon                  // player outgrew everyone
	StateGameOver                  // player absorbed or can no longer win
	StateGameWon                   // every level cleared; terminal
)

func (s GameState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateLevelWon:
		return "level-won"
	case StateGameOver:
		return "game-over"
	case StateGameWon:
		return "game-won"
	}
	return "unknown"
}

var transitions = map[GameState][]GameState{
	StateIdle:     {StatePlaying},
	StatePlaying:  {StateLevelWon, StateGameOver},
	StateLevelWon: {StatePlaying, StateGameWon},
	StateGameOver: {StatePlaying},
}

// CanTransition reports whether from → to is a legal lifecycle step.
func CanTransition(from, to GameState) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Session is the lifecycle record.
type Session struct {
	State             GameState
	CurrentLevel      int
	ReadyToTryAgainAt float64 // ms; input before this does not advance the state
	Attempt           int     // generation count, mixed into the level seed
}

// Ready reports whether the restart cooldown has passed.
func (s *Session) Ready(now float64) bool {
	return now >= s.ReadyToTryAgainAt
}

// transition moves to the next state; illegal steps are ignored and reported false.
func (s *Session) transition(to GameState) bool {
	if !CanTransition(s.State, to) {
		return false
	}
	s.State = to
	return true
}
