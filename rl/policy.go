package rl

import (
	"encoding/json"
	"fmt"

	"golang.org/x/exp/rand"
)

const (
	DefaultAlpha = 0.3
	DefaultGamma = 0.95
	DefaultDecay = 0.9999

	// EpsilonFloor bounds exploration decay from below.
	EpsilonFloor = 0.1
)

// QPolicy is an epsilon-greedy tabular Q-learning policy: with
// probability epsilon it explores uniformly, otherwise it exploits the
// best-known action. Epsilon decays once per episode down to
// EpsilonFloor.
type QPolicy struct {
	qTable  *QTable
	alpha   float64
	gamma   float64
	epsilon float64
	decay   float64
	rand    *rand.Rand
}

var _ Policy = &QPolicy{}

func NewQPolicy(alpha, gamma, epsilon, decay float64, rng *rand.Rand) *QPolicy {
	return &QPolicy{
		qTable:  NewQTable(),
		alpha:   alpha,
		gamma:   gamma,
		epsilon: epsilon,
		decay:   decay,
		rand:    rng,
	}
}

func (p *QPolicy) Reset() {
	p.qTable = NewQTable()
}

func (p *QPolicy) Epsilon() float64 {
	return p.epsilon
}

// SetEpsilon overrides exploration, e.g. 0 for pure exploitation when
// replaying a trained policy.
func (p *QPolicy) SetEpsilon(epsilon float64) {
	p.epsilon = epsilon
}

func (p *QPolicy) TableStates() int {
	return p.qTable.States()
}

func (p *QPolicy) NextAction(step int, state State, actions []Action) (Action, bool) {
	if len(actions) == 0 {
		return nil, false
	}
	if p.rand.Float64() < p.epsilon {
		return actions[p.rand.Intn(len(actions))], true
	}

	actionsMap := make(map[string]Action, len(actions))
	availableActions := make([]string, len(actions))
	for i, a := range actions {
		aHash := a.Hash()
		actionsMap[aHash] = a
		availableActions[i] = aHash
	}
	best := p.qTable.BestAction(state.Hash(), availableActions, 0)
	if best == "" {
		return nil, false
	}
	return actionsMap[best], true
}

// Update applies the one-step rule
// Q[s][a] <- (1-alpha)*Q[s][a] + alpha*(reward + gamma*max Q[s']),
// with max Q[s'] = 0 on a terminal transition.
func (p *QPolicy) Update(step int, state State, action Action, reward float64, nextState State, terminal bool) {
	stateHash := state.Hash()
	actionHash := action.Hash()

	nextMax := 0.0
	if !terminal {
		nextMax = p.qTable.Max(nextState.Hash(), 0)
	}
	curVal := p.qTable.Get(stateHash, actionHash, 0)
	nextVal := (1-p.alpha)*curVal + p.alpha*(reward+p.gamma*nextMax)
	p.qTable.Set(stateHash, actionHash, nextVal)
}

// UpdateEpisode decays exploration: epsilon <- max(floor, epsilon*decay).
func (p *QPolicy) UpdateEpisode(episode int, trace *Trace) {
	p.epsilon = p.epsilon * p.decay
	if p.epsilon < EpsilonFloor {
		p.epsilon = EpsilonFloor
	}
}

type policySnapshot struct {
	Alpha   float64                       `json:"alpha"`
	Gamma   float64                       `json:"gamma"`
	Epsilon float64                       `json:"epsilon"`
	Decay   float64                       `json:"decay"`
	QTable  map[string]map[string]float64 `json:"q_table"`
}

// Snapshot serializes the policy's table, epsilon and hyperparameters
// to an opaque byte stream.
func (p *QPolicy) Snapshot() ([]byte, error) {
	return json.Marshal(policySnapshot{
		Alpha:   p.alpha,
		Gamma:   p.gamma,
		Epsilon: p.epsilon,
		Decay:   p.decay,
		QTable:  p.qTable.Entries(),
	})
}

// RestoreQPolicy rebuilds a policy from a Snapshot byte stream. The
// restored table and epsilon are value-identical to what was saved.
func RestoreQPolicy(data []byte, rng *rand.Rand) (*QPolicy, error) {
	var snap policySnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("restore policy: %w", err)
	}
	p := NewQPolicy(snap.Alpha, snap.Gamma, snap.Epsilon, snap.Decay, rng)
	p.qTable = NewQTableFrom(snap.QTable)
	return p, nil
}
