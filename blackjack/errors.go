package blackjack

import (
	"errors"
	"fmt"
)

var (
	ErrRoundInProgress = errors.New("round already in progress")
	ErrNoActiveRound   = errors.New("no active round")
	ErrOutOfTurn       = errors.New("action out of turn")
)

type InvalidStateError string

func (e InvalidStateError) Error() string { return "invalid state: " + string(e) }

func ErrInvalidState(msg string) error { return InvalidStateError(msg) }

// BetErrorReason distinguishes the ways a bet can be rejected.
type BetErrorReason byte

const (
	BetNonNumeric BetErrorReason = iota
	BetBelowMinimum
	BetExceedsBalance
)

type InvalidBetError struct {
	Reason  BetErrorReason
	Input   string // raw text, set when Reason is BetNonNumeric
	Amount  int
	MinBet  int
	Balance int
}

func (e *InvalidBetError) Error() string {
	switch e.Reason {
	case BetNonNumeric:
		return fmt.Sprintf("invalid bet: %q is not a number", e.Input)
	case BetBelowMinimum:
		return fmt.Sprintf("invalid bet: %d is below the minimum of %d", e.Amount, e.MinBet)
	case BetExceedsBalance:
		return fmt.Sprintf("invalid bet: %d exceeds balance %d", e.Amount, e.Balance)
	}
	return "invalid bet"
}
