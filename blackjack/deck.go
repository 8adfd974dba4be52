package blackjack

import (
	"errors"

	"golang.org/x/exp/rand"
)

// ErrEmptyDeck is returned when a deal is attempted with no cards left.
var ErrEmptyDeck = errors.New("deal from an empty deck")

// Deck is an ordered, consumable sequence of 52 unique cards.
type Deck struct {
	cards []Card
}

// NewDeck builds the canonical 52-card deck, unshuffled.
func NewDeck() *Deck {
	cards := make([]Card, 0, len(Suits)*len(Ranks))
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return &Deck{cards: cards}
}

// Shuffle permutes the remaining cards uniformly using the given source.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the front card. Cards never return to the
// deck within a round.
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, nil
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}
