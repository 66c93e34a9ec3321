// Package save serializes a full blackjack round to one pipe-delimited
// text record and back, passing the record through an injected
// obfuscation transform to produce the copyable save token.
//
// Record layout (5 fields joined by '|'):
//
//	turnIndex | balances(4, ',') | bets(3, ',') | hands(4, ';') | deck(',')
//
// A hand segment is "-" when empty, otherwise 2-character card codes
// joined by ','.
package save

import (
	"fmt"
	"strconv"
	"strings"

	"blackjack-lite/blackjack"
	"blackjack-lite/card"
)

const (
	fieldSep     = "|"
	handSep      = ";"
	cardSep      = ","
	emptyHand    = "-"
	recordFields = 5
)

// Transform is the injected obfuscation collaborator. Reveal must
// return "" for input that is not one of its tokens, never panic, so
// the plaintext fallback path can activate.
type Transform interface {
	Obscure(text string) string
	Reveal(token string) string
}

// Encode renders the snapshot as a save token. A nil transform yields
// the plaintext record (the older save format).
func Encode(snap blackjack.Snapshot, t Transform) string {
	var sb strings.Builder

	sb.WriteString(strconv.Itoa(int(snap.TurnIndex)))
	sb.WriteString(fieldSep)

	balances := make([]string, 0, blackjack.NumSeats)
	for _, p := range snap.Participants {
		balances = append(balances, strconv.Itoa(p.Balance))
	}
	sb.WriteString(strings.Join(balances, cardSep))
	sb.WriteString(fieldSep)

	bets := make([]string, 0, blackjack.NumSeats-1)
	for seat := blackjack.SeatHuman; seat <= blackjack.SeatBot2; seat++ {
		bets = append(bets, strconv.Itoa(snap.Participants[seat].Bet))
	}
	sb.WriteString(strings.Join(bets, cardSep))
	sb.WriteString(fieldSep)

	hands := make([]string, 0, blackjack.NumSeats)
	for _, p := range snap.Participants {
		hands = append(hands, handSegment(p.Cards))
	}
	sb.WriteString(strings.Join(hands, handSep))
	sb.WriteString(fieldSep)

	sb.WriteString(strings.Join(card.CardList(snap.ShoeCards).Codes(), cardSep))

	record := sb.String()
	if t == nil {
		return record
	}
	return t.Obscure(record)
}

func handSegment(cards []card.Card) string {
	if len(cards) == 0 {
		return emptyHand
	}
	return strings.Join(card.CardList(cards).Codes(), cardSep)
}

// Decode reverses Encode. The transform's Reveal runs first; when it
// yields nothing usable the raw input is treated as an already-plain
// record (tokens from the older unobfuscated format). Validation is
// strict and the first failure rejects the whole record.
func Decode(token string, t Transform) (blackjack.RoundState, error) {
	var st blackjack.RoundState

	text := strings.TrimSpace(token)
	if text == "" {
		return st, &LoadError{Reason: "empty_input", Message: "save token is empty"}
	}

	record := ""
	if t != nil {
		record = t.Reveal(text)
	}
	if record == "" {
		record = text
	}

	parts := strings.Split(record, fieldSep)
	if len(parts) != recordFields {
		return st, &LoadError{
			Reason:  "bad_field_count",
			Message: fmt.Sprintf("expected %d fields, got %d", recordFields, len(parts)),
		}
	}

	turn, err := strconv.Atoi(parts[0])
	if err != nil || turn < 0 || turn >= blackjack.NumSeats {
		return st, &LoadError{
			Reason:  "bad_turn_index",
			Message: fmt.Sprintf("turn index %q is not in 0..%d", parts[0], blackjack.NumSeats-1),
			Err:     err,
		}
	}
	st.TurnIndex = turn

	balanceParts := strings.Split(parts[1], cardSep)
	if len(balanceParts) != blackjack.NumSeats {
		return st, &LoadError{
			Reason:  "bad_balance_count",
			Message: fmt.Sprintf("expected %d balances, got %d", blackjack.NumSeats, len(balanceParts)),
		}
	}
	for i, raw := range balanceParts {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return st, &LoadError{
				Reason:  "bad_balance",
				Message: fmt.Sprintf("balance %d is not a number: %q", i, raw),
				Err:     err,
			}
		}
		st.Balances[i] = v
	}

	betParts := strings.Split(parts[2], cardSep)
	if len(betParts) != blackjack.NumSeats-1 {
		return st, &LoadError{
			Reason:  "bad_bet_count",
			Message: fmt.Sprintf("expected %d bets, got %d", blackjack.NumSeats-1, len(betParts)),
		}
	}
	for i, raw := range betParts {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return st, &LoadError{
				Reason:  "bad_bet",
				Message: fmt.Sprintf("bet %d is not a number: %q", i, raw),
				Err:     err,
			}
		}
		st.Bets[i] = v
	}

	handParts := strings.Split(parts[3], handSep)
	if len(handParts) != blackjack.NumSeats {
		return st, &LoadError{
			Reason:  "bad_hand_count",
			Message: fmt.Sprintf("expected %d hand segments, got %d", blackjack.NumSeats, len(handParts)),
		}
	}
	for i, segment := range handParts {
		hand, err := parseHandSegment(segment)
		if err != nil {
			return st, err
		}
		st.Hands[i] = hand
	}

	if parts[4] != "" {
		deck, err := parseCards(strings.Split(parts[4], cardSep))
		if err != nil {
			return st, err
		}
		st.ShoeCards = deck
	}

	return st, nil
}

func parseHandSegment(segment string) ([]card.Card, error) {
	if segment == "" || segment == emptyHand {
		return nil, nil
	}
	return parseCards(strings.Split(segment, cardSep))
}

func parseCards(codes []string) ([]card.Card, error) {
	cards := make([]card.Card, 0, len(codes))
	for _, code := range codes {
		c, err := card.ParseCode(code)
		if err != nil {
			return nil, &LoadError{
				Reason:  "bad_card_code",
				Message: err.Error(),
				Err:     err,
			}
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Load decodes a token and applies it to the round in one step. The
// round is untouched unless the whole record decodes cleanly.
func Load(r *blackjack.Round, token string, t Transform) error {
	st, err := Decode(token, t)
	if err != nil {
		return err
	}
	r.Restore(st)
	return nil
}
