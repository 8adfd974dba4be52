package rl

// State of the environment that the policy observes.
type State interface {
	// Indexed by the Hash
	// Should be deterministic
	Hash() string
	// Actions possible from the state
	Actions() []Action
}

// An Action the policy can take.
type Action interface {
	// Index of the action
	// Should be deterministic
	Hash() string
}

// StepResult is one transition. State is nil when Terminal is set.
type StepResult struct {
	State    State
	Reward   float64
	Terminal bool
}

type Environment interface {
	// Reset called at the start of each episode
	Reset() (State, error)
	Step(Action) (StepResult, error)
}

type Policy interface {
	NextAction(step int, state State, actions []Action) (Action, bool)
	Update(step int, state State, action Action, reward float64, nextState State, terminal bool)
	UpdateEpisode(episode int, trace *Trace)
	Reset()
}
