package blackjack

import (
	"math/rand"
	"strconv"
	"sync"
	"time"
)

// Round is the single live round engine for a session. Turn order is
// fixed: human, bot1, bot2, dealer. All public operations are mutually
// exclusive; bot and dealer auto-play run to completion inside the
// call that triggered them.
type Round struct {
	cfg Config
	rng *rand.Rand

	mu sync.Mutex

	participants [NumSeats]*Participant
	shoe         *Shoe

	turnIndex   Seat
	roundActive bool
}

func NewRound(cfg Config) (*Round, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := &Round{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
	r.participants[SeatHuman] = newParticipant(cfg.PlayerName, cfg.StartingBalance, humanBrain{})
	r.participants[SeatBot1] = newParticipant("AI 1", cfg.StartingBalance, BotBrain{Threshold: cfg.Bot1Threshold})
	r.participants[SeatBot2] = newParticipant("AI 2", cfg.StartingBalance, BotBrain{Threshold: cfg.Bot2Threshold})
	r.participants[SeatDealer] = newParticipant("Dealer", 0, DealerBrain{})

	r.shoe = newShoe(r.rng)
	if len(cfg.DeckOverride) > 0 {
		r.shoe.Restore(cfg.DeckOverride)
	} else {
		r.shoe.Reset()
	}
	return r, nil
}

// ParseBet converts user-entered bet text. Non-numeric input is a
// distinct error from the range checks Deal performs.
func ParseBet(text string) (int, error) {
	bet, err := strconv.Atoi(text)
	if err != nil {
		return 0, &InvalidBetError{Reason: BetNonNumeric, Input: text}
	}
	return bet, nil
}

// Deal starts a new round: validates the bet, clears all hands, places
// the same bet for the three betting seats and deals two cards to
// every participant in strict round-robin order. The returned
// Settlement is non-nil when initial blackjacks end the round on the
// spot, or when a human natural hands the turn straight through the
// bots and dealer.
func (r *Round) Deal(bet int) (*Settlement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.roundActive {
		return nil, ErrRoundInProgress
	}
	human := r.participants[SeatHuman]
	if bet < r.cfg.MinBet {
		return nil, &InvalidBetError{Reason: BetBelowMinimum, Amount: bet, MinBet: r.cfg.MinBet}
	}
	if bet > human.balance {
		return nil, &InvalidBetError{Reason: BetExceedsBalance, Amount: bet, Balance: human.balance}
	}

	for _, p := range r.participants {
		p.resetForNewRound()
	}
	r.participants[SeatHuman].placeBet(bet)
	r.participants[SeatBot1].placeBet(bet)
	r.participants[SeatBot2].placeBet(bet)

	// One card to every seat, then the second. The interleave is part
	// of the save format: it fixes the shoe draw sequence.
	for i := 0; i < 2; i++ {
		for _, p := range r.participants {
			p.addCard(r.shoe.Draw())
		}
	}

	r.roundActive = true
	r.turnIndex = SeatHuman

	return r.resolveInitialBlackjacksLocked()
}

// resolveInitialBlackjacksLocked runs once, right after the deal.
//
// Dealer natural: the round ends for everyone, each betting seat
// pushing with its own natural or losing its bet. Otherwise every
// betting seat holding a natural is paid immediately and forced to
// stand; play continues for the rest, and when the human is among the
// resolved the turn moves straight on to the bots.
func (r *Round) resolveInitialBlackjacksLocked() (*Settlement, error) {
	dealer := r.participants[SeatDealer]
	if dealer.HasBlackjack() {
		return r.settleLocked(), nil
	}

	for seat := SeatHuman; seat <= SeatBot2; seat++ {
		p := r.participants[seat]
		if p.HasBlackjack() {
			p.winBet()
			p.stand()
			p.settled = true
		}
	}

	if r.participants[SeatHuman].settled && r.participants[SeatBot1].settled && r.participants[SeatBot2].settled {
		// Everyone is already paid; nothing left to play.
		return r.settleLocked(), nil
	}
	if r.participants[SeatHuman].settled {
		return r.advanceTurnLocked()
	}
	return nil, nil
}

// Hit draws one card for the human. A bust ends the human's turn
// automatically and the bots and dealer still play out.
func (r *Round) Hit() (*Settlement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.roundActive {
		return nil, ErrNoActiveRound
	}
	if r.turnIndex != SeatHuman {
		return nil, ErrOutOfTurn
	}

	human := r.participants[SeatHuman]
	human.addCard(r.shoe.Draw())
	if human.busted {
		return r.advanceTurnLocked()
	}
	return nil, nil
}

// Stand marks the human standing and advances the turn.
func (r *Round) Stand() (*Settlement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.roundActive {
		return nil, ErrNoActiveRound
	}
	if r.turnIndex != SeatHuman {
		return nil, ErrOutOfTurn
	}

	r.participants[SeatHuman].stand()
	return r.advanceTurnLocked()
}

// advanceTurnLocked moves the pointer forward through bot1, bot2 and
// the dealer. Seats resolved by an initial natural are skipped; the
// dealer's turn always ends in settlement.
func (r *Round) advanceTurnLocked() (*Settlement, error) {
	r.turnIndex++
	for r.turnIndex <= SeatDealer {
		p := r.participants[r.turnIndex]
		if r.turnIndex == SeatDealer {
			r.autoPlayLocked(p)
			return r.settleLocked(), nil
		}
		if !p.settled {
			r.autoPlayLocked(p)
		}
		r.turnIndex++
	}
	return nil, ErrInvalidState("turn pointer ran past the dealer")
}

func (r *Round) autoPlayLocked(p *Participant) {
	for p.shouldHit() {
		p.addCard(r.shoe.Draw())
	}
}

// settleLocked settles every betting seat against the dealer and ends
// the round. Seats already resolved by an initial natural keep the
// payout they received at deal time. For the rest the order is fixed:
// own bust loses, then dealer bust wins, then the value comparison.
func (r *Round) settleLocked() *Settlement {
	dealer := r.participants[SeatDealer]
	s := &Settlement{
		DealerValue:   dealer.HandValue(),
		DealerBusted:  dealer.busted,
		DealerNatural: dealer.HasBlackjack(),
	}

	for seat := SeatHuman; seat <= SeatBot2; seat++ {
		p := r.participants[seat]
		var outcome Outcome
		switch {
		case p.settled:
			outcome = OutcomeBlackjack
		case p.busted:
			p.loseBet()
			outcome = OutcomeLose
		case dealer.busted:
			p.winBet()
			outcome = OutcomeWin
		case p.HandValue() > s.DealerValue:
			p.winBet()
			outcome = OutcomeWin
		case p.HandValue() < s.DealerValue:
			p.loseBet()
			outcome = OutcomeLose
		default:
			p.pushBet()
			outcome = OutcomePush
		}
		s.Results[seat] = ParticipantResult{
			Seat:    seat,
			Name:    p.name,
			Outcome: outcome,
			Bet:     p.currentBet,
			Balance: p.balance,
			Natural: p.HasBlackjack(),
			Busted:  p.busted,
		}
	}

	r.roundActive = false
	s.Message = s.buildMessage()
	r.reportScoreLocked()
	return s
}

func (r *Round) reportScoreLocked() {
	if r.cfg.Reporter == nil {
		return
	}
	human := r.participants[SeatHuman]
	r.cfg.Reporter.ReportScore(GameID, human.name, human.balance)
}

// ReshuffleShoe rebuilds and reshuffles the shoe. A session-boundary
// operation: only legal between rounds.
func (r *Round) ReshuffleShoe() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.roundActive {
		return ErrRoundInProgress
	}
	r.shoe.Reset()
	return nil
}

// MinBet exposes the configured table minimum.
func (r *Round) MinBet() int {
	return r.cfg.MinBet
}
