package blackjack

import "blackjack-lite/card"

// HandView is the read-only projection a Brain decides from.
type HandView struct {
	Cards    []card.Card
	Value    int
	Standing bool
	Busted   bool
}

// Brain is the single per-role capability: whether to draw another card
// when the turn comes around. Participants stay plain data aggregates
// with a Brain attached.
type Brain interface {
	ShouldHit(view HandView) bool
	// Name returns a human-readable identifier for debugging.
	Name() string
}

// humanBrain never auto-decides; the human is driven externally via
// Hit/Stand.
type humanBrain struct{}

func (humanBrain) ShouldHit(HandView) bool { return false }
func (humanBrain) Name() string            { return "human" }

// BotBrain draws until its hand reaches the configured threshold.
type BotBrain struct {
	Threshold int
}

func (b BotBrain) ShouldHit(view HandView) bool {
	return !view.Busted && !view.Standing && view.Value < b.Threshold
}

func (b BotBrain) Name() string { return "bot" }

// DealerBrain draws below 17 and on soft 17: a total of exactly 17
// while an ace is present in the hand.
type DealerBrain struct{}

func (DealerBrain) ShouldHit(view HandView) bool {
	if view.Busted || view.Standing {
		return false
	}
	if view.Value < 17 {
		return true
	}
	return view.Value == 17 && handHasAce(view.Cards)
}

func (DealerBrain) Name() string { return "dealer" }
