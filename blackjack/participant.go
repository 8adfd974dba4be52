package blackjack

import "fmt"

// Participant is the hand-management capability shared by the dealer
// and the learning player. Bust status is derived from the hand, never
// stored.
type Participant struct {
	hand Hand
}

// Draw deals the top card of the deck into the hand.
func (p *Participant) Draw(d *Deck) error {
	c, err := d.Deal()
	if err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	p.hand = append(p.hand, c)
	return nil
}

func (p *Participant) Hand() Hand {
	return p.hand
}

func (p *Participant) Total() int {
	return p.hand.Total()
}

func (p *Participant) IsBust() bool {
	return p.hand.Total() > 21
}

// Dealer plays the fixed house policy.
type Dealer struct {
	Participant
}

// ShouldDraw holds while the total is 16 or less. A total of 17 or
// more stands, soft or not.
func (d *Dealer) ShouldDraw() bool {
	return d.Total() <= 16
}

// Upcard is the dealer's single visible card.
func (d *Dealer) Upcard() Card {
	return d.hand[0]
}
