package blackjack

import (
	"fmt"
	"strconv"
)

// Suits in deck-construction order. Suit has no game-rule effect.
var Suits = []string{"♠", "♡", "♢", "♣"}

// Ranks in deck-construction order.
var Ranks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// Card is an immutable rank/suit pair.
type Card struct {
	Rank string
	Suit string
}

func (c Card) String() string {
	return c.Rank + c.Suit
}

// rankValue is the card's contribution before ace demotion:
// numerics as-is, faces 10, Ace 11. An unknown rank is an
// invariant violation since cards only come from NewDeck.
func rankValue(rank string) int {
	switch rank {
	case "A":
		return 11
	case "J", "Q", "K":
		return 10
	}
	v, err := strconv.Atoi(rank)
	if err != nil || v < 2 || v > 10 {
		panic(fmt.Sprintf("unknown card rank %q", rank))
	}
	return v
}

// UpcardValue maps the dealer's visible card to its state
// component: faces 10, Ace 11, numerics as-is.
func UpcardValue(c Card) int {
	return rankValue(c.Rank)
}
