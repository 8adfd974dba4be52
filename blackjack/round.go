package blackjack

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/Styx-mls/BlackJack-q-learning/rl"
)

// Move is one of the two player decisions.
type Move struct {
	Name string
}

var _ rl.Action = &Move{}

func (m *Move) Hash() string {
	return m.Name
}

var (
	Hit   = &Move{"hit"}
	Stand = &Move{"stand"}

	// Moves lists the actions in tie-break order: hit wins ties.
	Moves = []rl.Action{Hit, Stand}
)

// RoundState is what the policy observes: the player's hand total and
// the value of the dealer's upcard.
type RoundState struct {
	PlayerTotal int
	DealerUp    int
}

var _ rl.State = &RoundState{}

func (s *RoundState) Hash() string {
	return fmt.Sprintf("(%d, %d)", s.PlayerTotal, s.DealerUp)
}

func (s *RoundState) Actions() []rl.Action {
	return Moves
}

// Outcome of a completed round.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeBust
	OutcomeWin
	OutcomeLoss
	OutcomePush
)

func (o Outcome) String() string {
	switch o {
	case OutcomeBust:
		return "bust"
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	case OutcomePush:
		return "push"
	}
	return "none"
}

// Rewards emitted by the round engine. A hit that survives pays out
// immediately; settlement pays out once, on the stand action.
const (
	RewardSafeHit = 1.0
	RewardBust    = -1.0
	RewardWin     = 1.0
	RewardLoss    = -0.5
	RewardPush    = 0.5
)

// Reward is the terminal reward for the outcome.
func (o Outcome) Reward() float64 {
	switch o {
	case OutcomeBust:
		return RewardBust
	case OutcomeWin:
		return RewardWin
	case OutcomeLoss:
		return RewardLoss
	case OutcomePush:
		return RewardPush
	}
	return 0
}

// RoundEnv runs one blackjack round per episode: deal, player turn,
// dealer turn, settlement.
type RoundEnv struct {
	rng     *rand.Rand
	deck    *Deck
	player  *Participant
	dealer  *Dealer
	outcome Outcome
}

var _ rl.Environment = &RoundEnv{}

func NewRoundEnv(rng *rand.Rand) *RoundEnv {
	return &RoundEnv{rng: rng}
}

// Reset starts a fresh round: new shuffled deck, two cards each. The
// deck is shuffled once; no reshuffle mid-round.
func (e *RoundEnv) Reset() (rl.State, error) {
	e.deck = NewDeck()
	e.deck.Shuffle(e.rng)
	e.player = &Participant{}
	e.dealer = &Dealer{}
	e.outcome = OutcomeNone
	for i := 0; i < 2; i++ {
		if err := e.player.Draw(e.deck); err != nil {
			return nil, err
		}
		if err := e.dealer.Draw(e.deck); err != nil {
			return nil, err
		}
	}
	return e.state(), nil
}

func (e *RoundEnv) state() *RoundState {
	return &RoundState{
		PlayerTotal: e.player.Total(),
		DealerUp:    UpcardValue(e.dealer.Upcard()),
	}
}

// Step applies one player decision. A hit that busts ends the round at
// -1. A stand runs the dealer out and settles: dealer bust or lower
// total wins +1, equal totals push +0.5, higher total loses -0.5.
// A natural 21 off the deal gets no special case.
func (e *RoundEnv) Step(a rl.Action) (rl.StepResult, error) {
	switch a.Hash() {
	case Hit.Name:
		if err := e.player.Draw(e.deck); err != nil {
			return rl.StepResult{}, err
		}
		if e.player.IsBust() {
			e.outcome = OutcomeBust
			return rl.StepResult{Reward: e.outcome.Reward(), Terminal: true}, nil
		}
		return rl.StepResult{State: e.state(), Reward: RewardSafeHit}, nil
	case Stand.Name:
		for e.dealer.ShouldDraw() {
			if err := e.dealer.Draw(e.deck); err != nil {
				return rl.StepResult{}, err
			}
		}
		e.outcome = settle(e.player.Total(), e.dealer.Total())
		return rl.StepResult{Reward: e.outcome.Reward(), Terminal: true}, nil
	}
	return rl.StepResult{}, fmt.Errorf("unknown action %q", a.Hash())
}

// settle compares totals on the non-bust player path.
func settle(player, dealer int) Outcome {
	switch {
	case dealer > 21:
		return OutcomeWin
	case player > dealer:
		return OutcomeWin
	case player == dealer:
		return OutcomePush
	}
	return OutcomeLoss
}

func (e *RoundEnv) PlayerHand() Hand {
	return e.player.Hand()
}

func (e *RoundEnv) DealerHand() Hand {
	return e.dealer.Hand()
}

func (e *RoundEnv) DealerUpcard() Card {
	return e.dealer.Upcard()
}

// Outcome of the current round, OutcomeNone until terminal.
func (e *RoundEnv) Outcome() Outcome {
	return e.outcome
}

// TraceOutcome classifies a completed episode trace by its final
// transition.
func TraceOutcome(tr *rl.Trace) Outcome {
	_, action, reward, _, ok := tr.Last()
	if !ok {
		return OutcomeNone
	}
	switch action.Hash() {
	case Hit.Name:
		if reward == RewardBust {
			return OutcomeBust
		}
	case Stand.Name:
		switch reward {
		case RewardWin:
			return OutcomeWin
		case RewardLoss:
			return OutcomeLoss
		case RewardPush:
			return OutcomePush
		}
	}
	return OutcomeNone
}
