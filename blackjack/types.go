package blackjack

import "blackjack-lite/card"

// GameID tags score reports for this game.
const GameID = "blackjack"

// Seat identifies one of the four fixed table positions. Turn order is
// the seat order: the human acts first, then both bots, then the dealer.
type Seat int

const (
	SeatHuman Seat = iota
	SeatBot1
	SeatBot2
	SeatDealer
)

const NumSeats = 4

var SeatDictionary = map[Seat]string{
	SeatHuman:  "human",
	SeatBot1:   "bot1",
	SeatBot2:   "bot2",
	SeatDealer: "dealer",
}

func (s Seat) String() string {
	if name, ok := SeatDictionary[s]; ok {
		return name
	}
	return "?"
}

// DeckCards is the full 52-card set a fresh shoe is built from.
var DeckCards = []card.Card{
	card.CardSpadeA, card.CardSpade2, card.CardSpade3, card.CardSpade4, card.CardSpade5, card.CardSpade6,
	card.CardSpade7, card.CardSpade8, card.CardSpade9, card.CardSpadeT, card.CardSpadeJ, card.CardSpadeQ, card.CardSpadeK,
	card.CardHeartA, card.CardHeart2, card.CardHeart3, card.CardHeart4, card.CardHeart5, card.CardHeart6,
	card.CardHeart7, card.CardHeart8, card.CardHeart9, card.CardHeartT, card.CardHeartJ, card.CardHeartQ, card.CardHeartK,
	card.CardClubA, card.CardClub2, card.CardClub3, card.CardClub4, card.CardClub5, card.CardClub6,
	card.CardClub7, card.CardClub8, card.CardClub9, card.CardClubT, card.CardClubJ, card.CardClubQ, card.CardClubK,
	card.CardDiamondA, card.CardDiamond2, card.CardDiamond3, card.CardDiamond4, card.CardDiamond5, card.CardDiamond6,
	card.CardDiamond7, card.CardDiamond8, card.CardDiamond9, card.CardDiamondT, card.CardDiamondJ, card.CardDiamondQ, card.CardDiamondK,
}
