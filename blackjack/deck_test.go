package blackjack

import (
	"errors"
	"testing"

	"golang.org/x/exp/rand"
)

func TestDeckDealsAllCardsOnce(t *testing.T) {
	deck := NewDeck()
	deck.Shuffle(rand.New(rand.NewSource(42)))

	if deck.Remaining() != 52 {
		t.Fatalf("fresh deck has %d cards, want 52", deck.Remaining())
	}

	seen := make(map[Card]bool)
	for i := 0; i < 52; i++ {
		c, err := deck.Deal()
		if err != nil {
			t.Fatalf("deal %d: %v", i, err)
		}
		if seen[c] {
			t.Errorf("card %s dealt twice", c)
		}
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Errorf("dealt %d distinct cards, want 52", len(seen))
	}

	if _, err := deck.Deal(); !errors.Is(err, ErrEmptyDeck) {
		t.Errorf("53rd deal returned %v, want ErrEmptyDeck", err)
	}
}

func TestDeckDealConsumesFront(t *testing.T) {
	deck := NewDeck()
	first := deck.cards[0]
	c, err := deck.Deal()
	if err != nil {
		t.Fatalf("deal: %v", err)
	}
	if c != first {
		t.Errorf("dealt %s, want front card %s", c, first)
	}
	if deck.Remaining() != 51 {
		t.Errorf("remaining = %d, want 51", deck.Remaining())
	}
}
