package blackjack

import "blackjack-lite/card"

// Participant is one of the four table positions. Balance persists for
// the session; hand, bet and flags are rewritten every round by the
// engine.
type Participant struct {
	name  string
	brain Brain

	hand       card.CardList
	balance    int
	currentBet int

	standing bool
	busted   bool
	// settled marks a seat resolved before normal settlement (an
	// initial natural already paid or pushed).
	settled bool
}

func newParticipant(name string, balance int, brain Brain) *Participant {
	return &Participant{
		name:    name,
		balance: balance,
		brain:   brain,
	}
}

func (p *Participant) Name() string    { return p.name }
func (p *Participant) Balance() int    { return p.balance }
func (p *Participant) CurrentBet() int { return p.currentBet }
func (p *Participant) Standing() bool  { return p.standing }
func (p *Participant) Busted() bool    { return p.busted }

// Hand returns a snapshot copy; only the engine mutates the live hand.
func (p *Participant) Hand() []card.Card {
	return append([]card.Card{}, p.hand...)
}

func (p *Participant) HandValue() int {
	return HandValue(p.hand)
}

func (p *Participant) HasBlackjack() bool {
	return IsBlackjack(p.hand)
}

func (p *Participant) resetForNewRound() {
	p.hand = p.hand[:0]
	p.currentBet = 0
	p.standing = false
	p.busted = false
	p.settled = false
}

// addCard appends a card and caches the bust flag the instant the hand
// goes over 21.
func (p *Participant) addCard(c card.Card) {
	p.hand.Add(c)
	if HandValue(p.hand) > 21 {
		p.busted = true
	}
}

func (p *Participant) placeBet(amount int) {
	p.currentBet = amount
}

func (p *Participant) winBet()  { p.balance += p.currentBet }
func (p *Participant) loseBet() { p.balance -= p.currentBet }
func (p *Participant) pushBet() {} // no balance change

func (p *Participant) stand() { p.standing = true }

func (p *Participant) view() HandView {
	return HandView{
		Cards:    p.hand,
		Value:    HandValue(p.hand),
		Standing: p.standing,
		Busted:   p.busted,
	}
}

func (p *Participant) shouldHit() bool {
	return p.brain.ShouldHit(p.view())
}
