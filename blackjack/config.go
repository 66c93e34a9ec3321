package blackjack

import (
	"fmt"

	"blackjack-lite/card"
)

const (
	DefaultStartingBalance = 1000
	DefaultMinBet          = 10
)

// Default hit thresholds give the two bots different risk profiles.
const (
	DefaultBot1Threshold = 16
	DefaultBot2Threshold = 18
)

// ScoreReporter receives the human's balance when a round settles.
// One-way notification; implementations must not block the round.
type ScoreReporter interface {
	ReportScore(gameID string, player string, score int)
}

type Config struct {
	// PlayerName labels the human seat ("Player" when empty).
	PlayerName string

	// StartingBalance for all three betting seats (default 1000).
	StartingBalance int

	// MinBet is the lowest accepted bet (default 10).
	MinBet int

	// Bot hit thresholds (defaults 16 and 18).
	Bot1Threshold int
	Bot2Threshold int

	// RNG seed (0 => time-based).
	Seed int64

	// DeckOverride fixes the initial shoe order instead of shuffling.
	// The last card is drawn first. Used by tests and replays.
	DeckOverride []card.Card

	// Reporter is notified with the human's balance at settlement.
	// May be nil.
	Reporter ScoreReporter
}

func (c *Config) applyDefaults() {
	if c.PlayerName == "" {
		c.PlayerName = "Player"
	}
	if c.StartingBalance == 0 {
		c.StartingBalance = DefaultStartingBalance
	}
	if c.MinBet == 0 {
		c.MinBet = DefaultMinBet
	}
	if c.Bot1Threshold == 0 {
		c.Bot1Threshold = DefaultBot1Threshold
	}
	if c.Bot2Threshold == 0 {
		c.Bot2Threshold = DefaultBot2Threshold
	}
}

func (c Config) validate() error {
	if c.StartingBalance < 0 {
		return fmt.Errorf("StartingBalance must be >= 0")
	}
	if c.MinBet <= 0 {
		return fmt.Errorf("MinBet must be > 0")
	}
	if c.Bot1Threshold < 2 || c.Bot1Threshold > 21 || c.Bot2Threshold < 2 || c.Bot2Threshold > 21 {
		return fmt.Errorf("bot thresholds must be in [2,21]: bot1=%d bot2=%d", c.Bot1Threshold, c.Bot2Threshold)
	}
	return nil
}
