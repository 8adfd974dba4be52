package blackjack

import "strings"

// Hand is the ordered sequence of cards held by a participant.
type Hand []Card

// Total evaluates the hand: each Ace starts at 11 and is demoted to 1
// while the total exceeds 21. Deterministic and order-independent.
func (h Hand) Total() int {
	total, aces := 0, 0
	for _, c := range h {
		if c.Rank == "A" {
			aces++
		}
		total += rankValue(c.Rank)
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
