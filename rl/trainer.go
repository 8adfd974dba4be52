package rl

import "fmt"

// DefaultHorizon bounds the decisions per episode. A blackjack round
// resolves well inside this, the guard exists for misbehaving
// environments.
const DefaultHorizon = 32

type TrainerConfig struct {
	Episodes    int
	Horizon     int
	Policy      Policy
	Environment Environment
}

// Trainer runs the policy against the environment for the configured
// number of independent episodes. The policy is the only state carried
// across episodes.
type Trainer struct {
	config *TrainerConfig
	// collects the traces of the run
	// Only populated if the Run function is invoked
	traces      []*Trace
	policy      Policy
	environment Environment
}

func NewTrainer(config *TrainerConfig) *Trainer {
	if config.Horizon <= 0 {
		config.Horizon = DefaultHorizon
	}
	return &Trainer{
		config:      config,
		traces:      make([]*Trace, config.Episodes),
		policy:      config.Policy,
		environment: config.Environment,
	}
}

func (t *Trainer) Traces() []*Trace {
	return t.traces
}

// Run the trainer for the configured number of episodes
func (t *Trainer) Run() error {
	for i := 0; i < t.config.Episodes; i++ {
		trace, err := t.runEpisode(i)
		if err != nil {
			return fmt.Errorf("episode %d: %w", i, err)
		}
		t.traces[i] = trace
	}
	return nil
}

// run a single episode and return the resulting trace
func (t *Trainer) runEpisode(episode int) (*Trace, error) {
	state, err := t.environment.Reset()
	if err != nil {
		return nil, err
	}
	trace := NewTrace()

	for i := 0; i < t.config.Horizon; i++ {
		actions := state.Actions()
		if len(actions) == 0 {
			break
		}
		nextAction, ok := t.policy.NextAction(i, state, actions)
		if !ok {
			break
		}
		res, err := t.environment.Step(nextAction)
		if err != nil {
			return nil, err
		}
		t.policy.Update(i, state, nextAction, res.Reward, res.State, res.Terminal)
		trace.Append(state, nextAction, res.Reward, res.State)

		if res.Terminal {
			break
		}
		state = res.State
	}
	t.policy.UpdateEpisode(episode, trace)

	return trace, nil
}
