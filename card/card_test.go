package card

import "testing"

func TestCodeParseCode_RoundTripAllCards(t *testing.T) {
	for suit := Spade; suit <= Diamond; suit++ {
		for rank := Card(1); rank <= 13; rank++ {
			c := Card(suit)<<4 | rank
			code := c.Code()
			if len(code) != 2 {
				t.Fatalf("card %v renders code %q", c, code)
			}
			back, err := ParseCode(code)
			if err != nil {
				t.Fatalf("ParseCode(%q) err: %v", code, err)
			}
			if back != c {
				t.Fatalf("ParseCode(%q) = %v, want %v", code, back, c)
			}
		}
	}
}

func TestParseCode_RejectsMalformedInput(t *testing.T) {
	bad := []string{"", "A", "AHX", "1H", "0S", "AX", "ah", "Ah", "aH", "A ", " H"}
	for _, code := range bad {
		if c, err := ParseCode(code); err == nil {
			t.Fatalf("ParseCode(%q) accepted as %v, want error", code, c)
		}
	}
}

func TestBaseValue(t *testing.T) {
	cases := []struct {
		card Card
		want int
	}{
		{CardSpadeA, 11},
		{CardHeart2, 2},
		{CardClub9, 9},
		{CardDiamondT, 10},
		{CardSpadeJ, 10},
		{CardHeartQ, 10},
		{CardClubK, 10},
	}
	for _, tc := range cases {
		if got := tc.card.BaseValue(); got != tc.want {
			t.Fatalf("%s base value %d, want %d", tc.card.Code(), got, tc.want)
		}
	}
}

func TestCardAccessors(t *testing.T) {
	c := CardDiamondQ
	if c.Rank() != 12 {
		t.Fatalf("QD rank %d, want 12", c.Rank())
	}
	if c.Suit() != Diamond {
		t.Fatalf("QD suit %v, want Diamonds", c.Suit())
	}
	if !CardHeartA.IsAce() || CardHeartK.IsAce() {
		t.Fatal("IsAce must hold for aces only")
	}
	if CardInvalid.Rank() != 0 || CardRear.Rank() != 0 {
		t.Fatal("sentinel cards have no rank")
	}
}

func TestCardListPopCard(t *testing.T) {
	var list CardList
	list.Add(CardSpadeA, CardHeart2)

	if c := list.PopCard(); c != CardHeart2 {
		t.Fatalf("pop returned %s, want 2H (last added)", c.Code())
	}
	if c := list.PopCard(); c != CardSpadeA {
		t.Fatalf("pop returned %s, want AS", c.Code())
	}
	if c := list.PopCard(); c != CardInvalid {
		t.Fatalf("pop on empty list returned %s, want invalid", c.Code())
	}
}
