package blackjack

import (
	"math/rand"

	"blackjack-lite/card"
)

// Shoe is the drawable pile for the session: one 52-card deck, rebuilt
// and reshuffled whenever it runs out, so Draw never fails.
type Shoe struct {
	cards card.CardList
	rng   *rand.Rand
}

func newShoe(rng *rand.Rand) *Shoe {
	return &Shoe{rng: rng}
}

// Reset rebuilds the full 52-card set and shuffles it.
func (s *Shoe) Reset() {
	s.cards.Init(DeckCards)
	s.cards.Shuffle(s.rng)
}

// Draw removes and returns the top card, transparently resetting an
// exhausted shoe first.
func (s *Shoe) Draw() card.Card {
	if s.cards.Count() == 0 {
		s.Reset()
	}
	return s.cards.PopCard()
}

func (s *Shoe) Count() int {
	return s.cards.Count()
}

// Remaining returns an ordered snapshot copy of the undrawn cards. The
// last element is the next card Draw will return.
func (s *Shoe) Remaining() []card.Card {
	return append([]card.Card{}, s.cards...)
}

// Restore replaces the shoe contents wholesale, preserving order.
func (s *Shoe) Restore(cards []card.Card) {
	s.cards.Init(cards)
}

// RestoreCodes replaces the shoe from 2-character card codes. Every
// code is decoded before anything is applied, so an invalid code
// leaves the shoe in its prior state.
func (s *Shoe) RestoreCodes(codes []string) error {
	cards := make([]card.Card, 0, len(codes))
	for _, code := range codes {
		c, err := card.ParseCode(code)
		if err != nil {
			return err
		}
		cards = append(cards, c)
	}
	s.cards.Init(cards)
	return nil
}
