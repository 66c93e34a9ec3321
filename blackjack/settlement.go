package blackjack

// Outcome is how a betting seat finished the round.
type Outcome byte

const (
	OutcomeWin Outcome = iota
	OutcomeLose
	OutcomePush
	// OutcomeBlackjack marks a natural that was already paid when the
	// cards went out.
	OutcomeBlackjack
)

var OutcomeDictionary = map[Outcome]string{
	OutcomeWin:       "win",
	OutcomeLose:      "lose",
	OutcomePush:      "push",
	OutcomeBlackjack: "blackjack",
}

func (o Outcome) String() string {
	if name, ok := OutcomeDictionary[o]; ok {
		return name
	}
	return "?"
}

type ParticipantResult struct {
	Seat    Seat
	Name    string
	Outcome Outcome
	Bet     int
	Balance int
	Natural bool
	Busted  bool
}

// Settlement is the terminal report of a round: one result per betting
// seat plus the dealer's final standing and a user-facing message.
type Settlement struct {
	DealerValue   int
	DealerBusted  bool
	DealerNatural bool
	Results       [NumSeats - 1]ParticipantResult
	Message       string
}

// Result returns the entry for a betting seat.
func (s *Settlement) Result(seat Seat) ParticipantResult {
	return s.Results[seat]
}

func (s *Settlement) buildMessage() string {
	human := s.Results[SeatHuman]
	switch {
	case s.DealerNatural:
		if human.Outcome == OutcomePush {
			return "Both you and the dealer have Blackjack. Push."
		}
		return "Dealer has Blackjack. Everyone loses."
	case human.Outcome == OutcomeBlackjack:
		return "Blackjack! You win."
	case s.DealerBusted:
		return "Dealer busted! All non-busted players win."
	case human.Outcome == OutcomeWin:
		return "You win!"
	case human.Outcome == OutcomePush:
		return "Push (tie)."
	case human.Busted:
		return "You busted. Dealer wins."
	default:
		return "You lose."
	}
}
