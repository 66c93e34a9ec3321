package blackjack

import (
	"math/rand"
	"testing"

	"blackjack-lite/card"
)

func TestShoeReset_FiftyTwoUniqueCards(t *testing.T) {
	s := newShoe(rand.New(rand.NewSource(7)))
	s.Reset()

	if s.Count() != 52 {
		t.Fatalf("fresh shoe holds %d cards, want 52", s.Count())
	}
	seen := make(map[card.Card]bool, 52)
	for _, c := range s.Remaining() {
		if seen[c] {
			t.Fatalf("duplicate card %s in fresh shoe", c.Code())
		}
		seen[c] = true
	}
}

func TestShoeDraw_AutoResetsWhenExhausted(t *testing.T) {
	s := newShoe(rand.New(rand.NewSource(7)))
	s.Reset()

	// Repeated draws across several deck's worth must never fail.
	for i := 0; i < 52*3; i++ {
		if c := s.Draw(); c == card.CardInvalid {
			t.Fatalf("draw %d returned an invalid card", i)
		}
	}
	if s.Count() == 52 {
		t.Fatal("shoe should be mid-deck after 156 draws")
	}
}

func TestShoeDraw_ReturnsTopCard(t *testing.T) {
	s := newShoe(rand.New(rand.NewSource(7)))
	s.Restore([]card.Card{card.CardHeart2, card.CardSpadeA, card.CardDiamondK})

	if c := s.Draw(); c != card.CardDiamondK {
		t.Fatalf("first draw %s, want KD (top of shoe)", c.Code())
	}
	if c := s.Draw(); c != card.CardSpadeA {
		t.Fatalf("second draw %s, want AS", c.Code())
	}
	if s.Count() != 1 {
		t.Fatalf("shoe count %d, want 1", s.Count())
	}
}

func TestShoeRestoreCodes_InvalidCodeLeavesShoeUntouched(t *testing.T) {
	s := newShoe(rand.New(rand.NewSource(7)))
	s.Restore([]card.Card{card.CardHeart2, card.CardSpadeA})
	before := s.Remaining()

	if err := s.RestoreCodes([]string{"KD", "XX", "2H"}); err == nil {
		t.Fatal("expected an error for card code XX")
	}

	after := s.Remaining()
	if len(before) != len(after) {
		t.Fatalf("shoe size changed on failed restore: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("shoe card %d changed on failed restore", i)
		}
	}
}

func TestShoeRestoreCodes_ReplacesInOrder(t *testing.T) {
	s := newShoe(rand.New(rand.NewSource(7)))
	s.Reset()

	if err := s.RestoreCodes([]string{"2H", "AS", "KD"}); err != nil {
		t.Fatalf("restore err: %v", err)
	}
	got := s.Remaining()
	want := []card.Card{card.CardHeart2, card.CardSpadeA, card.CardDiamondK}
	if len(got) != len(want) {
		t.Fatalf("restored shoe holds %d cards, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("restored card %d is %s, want %s", i, got[i].Code(), want[i].Code())
		}
	}
}
