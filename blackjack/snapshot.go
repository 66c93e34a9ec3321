package blackjack

import "blackjack-lite/card"

type ParticipantSnapshot struct {
	Seat     Seat
	Name     string
	Cards    []card.Card
	Value    int
	Balance  int
	Bet      int
	Standing bool
	Busted   bool
	Natural  bool
}

// Snapshot is a deep-copy, read-only projection of the round. Nothing
// in it aliases live engine state, so collaborators (renderers, the
// codec) can hold it across engine calls.
type Snapshot struct {
	TurnIndex    Seat
	RoundActive  bool
	MinBet       int
	Participants [NumSeats]ParticipantSnapshot
	ShoeCards    []card.Card
}

func (r *Round) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Snapshot{
		TurnIndex:   r.turnIndex,
		RoundActive: r.roundActive,
		MinBet:      r.cfg.MinBet,
		ShoeCards:   r.shoe.Remaining(),
	}
	for seat, p := range r.participants {
		s.Participants[seat] = ParticipantSnapshot{
			Seat:     Seat(seat),
			Name:     p.name,
			Cards:    append([]card.Card{}, p.hand...),
			Value:    HandValue(p.hand),
			Balance:  p.balance,
			Bet:      p.currentBet,
			Standing: p.standing,
			Busted:   p.busted,
			Natural:  p.HasBlackjack(),
		}
	}
	return s
}

// RoundState is the fully-decoded content of a save record, ready to
// be applied in one step. The codec builds and validates it; nothing
// here touches live state until Restore.
type RoundState struct {
	TurnIndex int
	Balances  [NumSeats]int
	Bets      [NumSeats - 1]int
	Hands     [NumSeats][]card.Card
	ShoeCards []card.Card
}

// Restore replaces the entire round with the given state. Busted flags
// are recomputed from the restored hands rather than trusted from the
// record, and betting seats holding a natural are re-marked resolved
// (they were paid when the cards went out). The restored round is
// live.
func (r *Round) Restore(st RoundState) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.turnIndex = Seat(st.TurnIndex)
	for seat, p := range r.participants {
		p.resetForNewRound()
		p.balance = st.Balances[seat]
		for _, c := range st.Hands[seat] {
			p.addCard(c)
		}
	}
	for seat := SeatHuman; seat <= SeatBot2; seat++ {
		p := r.participants[seat]
		p.currentBet = st.Bets[seat]
		if p.HasBlackjack() {
			p.settled = true
			p.stand()
		}
	}
	r.shoe.Restore(st.ShoeCards)
	r.roundActive = true
}
