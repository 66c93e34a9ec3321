// Package table hosts one blackjack round per connected client and
// translates JSON commands into engine calls. The dealer's hole card
// stays hidden until the dealer acts or the round settles.
package table

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"blackjack-lite/blackjack"
	"blackjack-lite/obscure"
	"blackjack-lite/save"

	"blackjack-lite/apps/server/internal/scores"
)

const hiddenCard = "??"

type Command struct {
	Cmd   string `json:"cmd"`
	Bet   string `json:"bet,omitempty"`
	Token string `json:"token,omitempty"`
}

type SeatView struct {
	Name     string   `json:"name"`
	Cards    []string `json:"cards"`
	Value    int      `json:"value,omitempty"`
	Balance  int      `json:"balance"`
	Bet      int      `json:"bet,omitempty"`
	Standing bool     `json:"standing,omitempty"`
	Busted   bool     `json:"busted,omitempty"`
}

type StateView struct {
	RoundActive bool       `json:"round_active"`
	YourTurn    bool       `json:"your_turn"`
	MinBet      int        `json:"min_bet"`
	Seats       []SeatView `json:"seats"`
}

type ResultView struct {
	Name    string `json:"name"`
	Outcome string `json:"outcome"`
	Balance int    `json:"balance"`
}

type SettlementView struct {
	DealerValue  int          `json:"dealer_value"`
	DealerBusted bool         `json:"dealer_busted"`
	Results      []ResultView `json:"results"`
	Message      string       `json:"message"`
}

type Envelope struct {
	Type       string          `json:"type"`
	State      *StateView      `json:"state,omitempty"`
	Settlement *SettlementView `json:"settlement,omitempty"`
	Token      string          `json:"token,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// Session is one client's table. Engine calls are serialized here as
// well because save and load span several of them.
type Session struct {
	mu    sync.Mutex
	round *blackjack.Round
	codec *obscure.Codec
}

// scoreReporter bridges the round engine's settlement callback to the
// scores store.
type scoreReporter struct {
	svc scores.Service
}

func (r scoreReporter) ReportScore(gameID, player string, score int) {
	r.svc.Record(gameID, player, score)
}

func New(playerName string, scoresService scores.Service) (*Session, error) {
	round, err := blackjack.NewRound(blackjack.Config{
		PlayerName: playerName,
		Reporter:   scoreReporter{svc: scoresService},
	})
	if err != nil {
		return nil, err
	}
	return &Session{
		round: round,
		codec: obscure.Default(),
	}, nil
}

// Handle runs one client command and returns the JSON response frame.
func (s *Session) Handle(data []byte) []byte {
	var cmd Command
	if err := json.Unmarshal(data, &cmd); err != nil {
		return marshalEnvelope(Envelope{Type: "error", Error: "invalid command format"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch cmd.Cmd {
	case "deal":
		return s.handleDeal(cmd.Bet)
	case "hit":
		return s.resolve(s.round.Hit())
	case "stand":
		return s.resolve(s.round.Stand())
	case "save":
		return s.handleSave()
	case "load":
		return s.handleLoad(cmd.Token)
	case "state":
		return s.stateFrame()
	default:
		return marshalEnvelope(Envelope{Type: "error", Error: fmt.Sprintf("unknown command %q", cmd.Cmd)})
	}
}

func (s *Session) handleDeal(betText string) []byte {
	bet, err := blackjack.ParseBet(betText)
	if err != nil {
		return errorFrame(err)
	}
	return s.resolve(s.round.Deal(bet))
}

func (s *Session) resolve(settle *blackjack.Settlement, err error) []byte {
	if err != nil {
		return errorFrame(err)
	}
	if settle != nil {
		return s.settlementFrame(settle)
	}
	return s.stateFrame()
}

func (s *Session) handleSave() []byte {
	snap := s.round.Snapshot()
	if !snap.RoundActive {
		return marshalEnvelope(Envelope{Type: "error", Error: "no round to save"})
	}
	token := save.Encode(snap, s.codec)
	return marshalEnvelope(Envelope{Type: "token", Token: token})
}

func (s *Session) handleLoad(token string) []byte {
	if err := save.Load(s.round, token, s.codec); err != nil {
		return errorFrame(err)
	}
	return s.stateFrame()
}

func (s *Session) stateFrame() []byte {
	state := buildStateView(s.round.Snapshot())
	return marshalEnvelope(Envelope{Type: "state", State: &state})
}

func (s *Session) settlementFrame(settle *blackjack.Settlement) []byte {
	state := buildStateView(s.round.Snapshot())
	view := SettlementView{
		DealerValue:  settle.DealerValue,
		DealerBusted: settle.DealerBusted,
		Message:      settle.Message,
	}
	for seat := blackjack.SeatHuman; seat <= blackjack.SeatBot2; seat++ {
		res := settle.Result(seat)
		view.Results = append(view.Results, ResultView{
			Name:    res.Name,
			Outcome: res.Outcome.String(),
			Balance: res.Balance,
		})
	}
	return marshalEnvelope(Envelope{Type: "settlement", State: &state, Settlement: &view})
}

func buildStateView(snap blackjack.Snapshot) StateView {
	state := StateView{
		RoundActive: snap.RoundActive,
		YourTurn:    snap.RoundActive && snap.TurnIndex == blackjack.SeatHuman,
		MinBet:      snap.MinBet,
	}
	for _, p := range snap.Participants {
		view := SeatView{
			Name:     p.Name,
			Balance:  p.Balance,
			Bet:      p.Bet,
			Standing: p.Standing,
			Busted:   p.Busted,
			Value:    p.Value,
		}
		for _, c := range p.Cards {
			view.Cards = append(view.Cards, c.Code())
		}
		if p.Seat == blackjack.SeatDealer && hideDealerHole(snap) && len(view.Cards) > 1 {
			for i := 1; i < len(view.Cards); i++ {
				view.Cards[i] = hiddenCard
			}
			view.Value = 0
			view.Busted = false
		}
		state.Seats = append(state.Seats, view)
	}
	return state
}

func hideDealerHole(snap blackjack.Snapshot) bool {
	return snap.RoundActive && snap.TurnIndex != blackjack.SeatDealer
}

func errorFrame(err error) []byte {
	var betErr *blackjack.InvalidBetError
	var loadErr *save.LoadError
	switch {
	case errors.As(err, &betErr), errors.As(err, &loadErr),
		errors.Is(err, blackjack.ErrRoundInProgress),
		errors.Is(err, blackjack.ErrNoActiveRound),
		errors.Is(err, blackjack.ErrOutOfTurn):
		return marshalEnvelope(Envelope{Type: "error", Error: err.Error()})
	default:
		return marshalEnvelope(Envelope{Type: "error", Error: "internal error"})
	}
}

func marshalEnvelope(env Envelope) []byte {
	data, err := json.Marshal(env)
	if err != nil {
		return []byte(`{"type":"error","error":"internal error"}`)
	}
	return data
}
