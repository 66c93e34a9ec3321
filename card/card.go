package card

// Card is a single playing card.
//
// Encoding:
// - high 4 bits: suit (0:Spade, 1:Heart, 2:Club, 3:Diamond)
// - low 4 bits: rank (1:A, 2..9, 10:T, 11:J, 12:Q, 13:K)
type Card byte

// InvalidCodeError reports a card code that is not a valid
// 2-character rank+suit pair.
type InvalidCodeError string

func (e InvalidCodeError) Error() string { return "invalid card code: " + string(e) }

var rankChars = [14]byte{0, 'A', '2', '3', '4', '5', '6', '7', '8', '9', 'T', 'J', 'Q', 'K'}

func (c Card) String() string {
	if c == CardInvalid {
		return "Invalid"
	}
	if c == CardRear {
		return "??"
	}
	return c.Code()
}

// Rank 1-13 (A=1, K=13).
func (c Card) Rank() byte {
	if c == CardInvalid || c == CardRear {
		return 0
	}
	return byte(c & 0x0F)
}

// Suit (0:Spade, 1:Heart, 2:Club, 3:Diamond).
func (c Card) Suit() Suit {
	return Suit(c >> 4)
}

func (c Card) IsAce() bool {
	return c.Rank() == 1
}

// BaseValue returns the blackjack point value of the card before any
// ace adjustment: numerals count face value, T/J/Q/K count 10 and an
// ace counts 11. Hand valuation demotes aces to 1 as needed.
func (c Card) BaseValue() int {
	r := int(c & 0x0F)
	switch {
	case r == 1:
		return 11
	case r >= 10:
		return 10
	default:
		return r
	}
}

// Code returns the 2-character rank+suit code, e.g. "AH" or "TD".
func (c Card) Code() string {
	r := c.Rank()
	if r == 0 {
		return "??"
	}
	return string([]byte{rankChars[r], c.Suit().Char()})
}

// ParseCode converts a strict 2-character code (such as "AH") back to a
// Card. Rank and suit are drawn from closed sets; anything else fails.
func ParseCode(code string) (Card, error) {
	if len(code) != 2 {
		return CardInvalid, InvalidCodeError(code)
	}

	var rank Card
	switch code[0] {
	case 'A':
		rank = 0x01
	case '2', '3', '4', '5', '6', '7', '8', '9':
		rank = Card(code[0] - '0')
	case 'T':
		rank = 0x0A
	case 'J':
		rank = 0x0B
	case 'Q':
		rank = 0x0C
	case 'K':
		rank = 0x0D
	default:
		return CardInvalid, InvalidCodeError(code)
	}

	var suitBase Card
	switch code[1] {
	case 'S':
		suitBase = 0x00
	case 'H':
		suitBase = 0x10
	case 'C':
		suitBase = 0x20
	case 'D':
		suitBase = 0x30
	default:
		return CardInvalid, InvalidCodeError(code)
	}

	return suitBase + rank, nil
}
