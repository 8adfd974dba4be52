package blackjack

import (
	"testing"
)

func cards(ranks ...string) Hand {
	h := make(Hand, len(ranks))
	for i, r := range ranks {
		h[i] = Card{Rank: r, Suit: Suits[i%len(Suits)]}
	}
	return h
}

func TestHandTotal(t *testing.T) {
	tests := []struct {
		ranks []string
		want  int
	}{
		{[]string{"2", "3"}, 5},
		{[]string{"A", "K"}, 21},
		{[]string{"A", "A", "9"}, 21},
		{[]string{"K", "Q", "2"}, 22},
		{[]string{"A", "5"}, 16},
		{[]string{"A", "A", "A", "8"}, 21},
		{[]string{"10", "9", "3"}, 22},
		{[]string{"A"}, 11},
		{[]string{}, 0},
	}
	for _, tc := range tests {
		if got := cards(tc.ranks...).Total(); got != tc.want {
			t.Errorf("Total(%v) = %d, want %d", tc.ranks, got, tc.want)
		}
	}
}

func TestHandTotalOrderIndependent(t *testing.T) {
	orderings := [][]string{
		{"A", "A", "9"},
		{"A", "9", "A"},
		{"9", "A", "A"},
	}
	for _, ranks := range orderings {
		if got := cards(ranks...).Total(); got != 21 {
			t.Errorf("Total(%v) = %d, want 21", ranks, got)
		}
	}
}

func TestUpcardValue(t *testing.T) {
	tests := []struct {
		rank string
		want int
	}{
		{"2", 2},
		{"7", 7},
		{"10", 10},
		{"J", 10},
		{"Q", 10},
		{"K", 10},
		{"A", 11},
	}
	for _, tc := range tests {
		if got := UpcardValue(Card{Rank: tc.rank, Suit: Suits[0]}); got != tc.want {
			t.Errorf("UpcardValue(%s) = %d, want %d", tc.rank, got, tc.want)
		}
	}
}

func TestRankValueUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for unknown rank")
		}
	}()
	rankValue("joker")
}
