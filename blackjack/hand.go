package blackjack

import "blackjack-lite/card"

// HandValue returns the best blackjack total for a hand: the sum of
// base values with aces demoted from 11 to 1, one at a time, while the
// total exceeds 21. Order-independent and free of hidden state.
func HandValue(cards []card.Card) int {
	total := 0
	aceCount := 0
	for _, c := range cards {
		total += c.BaseValue()
		if c.IsAce() {
			aceCount++
		}
	}
	for total > 21 && aceCount > 0 {
		total -= 10
		aceCount--
	}
	return total
}

// IsBlackjack reports a natural: exactly two cards totaling 21.
func IsBlackjack(cards []card.Card) bool {
	return len(cards) == 2 && HandValue(cards) == 21
}

func IsBusted(cards []card.Card) bool {
	return HandValue(cards) > 21
}

func handHasAce(cards []card.Card) bool {
	for _, c := range cards {
		if c.IsAce() {
			return true
		}
	}
	return false
}
