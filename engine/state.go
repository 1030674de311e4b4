package engine

// State is the state of an Engine.
type State int32

const (
	Idle State = iota
	Computing
	Applying
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Computing:
		return "computing"
	case Applying:
		return "applying"
	}
	return "<unknown state>"
}

// transitions lists the legal state transitions.
var transitions = map[State][]State{
	Idle:      {Computing},
	Computing: {Idle, Applying},
	Applying:  {Idle},
}

func legal(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// enter moves the engine from state from to state to. It fails if the
// engine is not in state from. Illegal transitions are programming errors.
func (e *Engine) enter(from, to State) bool {
	assertThat(legal(from, to), "illegal transition %s → %s", from, to)
	if !e.state.CompareAndSwap(int32(from), int32(to)) {
		return false
	}
	tracer().Debugf("%s → %s", from, to)
	return true
}

// State returns the engine's current state.
func (e *Engine) State() State {
	return State(e.state.Load())
}
