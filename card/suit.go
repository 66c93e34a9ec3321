package card

type Suit byte

const (
	Spade Suit = iota
	Heart
	Club
	Diamond
)

// Char returns the single-letter suit code used in card codes.
func (s Suit) Char() byte {
	switch s {
	case Spade:
		return 'S'
	case Heart:
		return 'H'
	case Club:
		return 'C'
	case Diamond:
		return 'D'
	}
	return '?'
}

func (s Suit) String() string {
	switch s {
	case Spade:
		return "Spades"
	case Heart:
		return "Hearts"
	case Club:
		return "Clubs"
	case Diamond:
		return "Diamonds"
	}
	return "?"
}
