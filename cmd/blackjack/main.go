// Command blackjack runs a round of terminal blackjack against two
// bots and the dealer. A round in progress can be saved to a copyable
// token and resumed later with "load".
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"blackjack-lite/blackjack"
	"blackjack-lite/obscure"
	"blackjack-lite/save"
)

func main() {
	name := flag.String("name", "Player", "name for the human seat")
	flag.Parse()

	round, err := blackjack.NewRound(blackjack.Config{PlayerName: *name})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)
		os.Exit(1)
	}

	g := &game{
		round: round,
		codec: obscure.Default(),
		in:    bufio.NewScanner(os.Stdin),
	}
	g.run()
}

type game struct {
	round *blackjack.Round
	codec *obscure.Codec
	in    *bufio.Scanner
}

func (g *game) run() {
	fmt.Println("Welcome to Blackjack.")
	for {
		snap := g.round.Snapshot()
		if !snap.RoundActive {
			if !g.promptBetweenRounds(snap) {
				return
			}
			continue
		}
		if !g.promptDuringRound(snap) {
			return
		}
	}
}

// promptBetweenRounds handles the bet prompt and the session commands
// that are only legal with no round live. Returns false on quit.
func (g *game) promptBetweenRounds(snap blackjack.Snapshot) bool {
	human := snap.Participants[blackjack.SeatHuman]
	if human.Balance < snap.MinBet {
		fmt.Printf("You're out of money (balance %d, minimum bet %d). Game over.\n", human.Balance, snap.MinBet)
		return false
	}

	fmt.Printf("\nBalance: %d. Enter a bet (min %d), or: load <token>, quit\n> ", human.Balance, snap.MinBet)
	line, ok := g.readLine()
	if !ok {
		return false
	}

	switch {
	case line == "quit":
		return false
	case strings.HasPrefix(line, "load "):
		g.load(strings.TrimSpace(strings.TrimPrefix(line, "load ")))
		return true
	case line == "":
		return true
	}

	bet, err := blackjack.ParseBet(line)
	if err != nil {
		fmt.Println(err)
		return true
	}
	settle, err := g.round.Deal(bet)
	if err != nil {
		fmt.Println(err)
		return true
	}
	g.renderTable(g.round.Snapshot())
	if settle != nil {
		g.renderSettlement(settle)
	}
	return true
}

// promptDuringRound handles the human's turn. Returns false on quit.
func (g *game) promptDuringRound(snap blackjack.Snapshot) bool {
	g.renderTable(snap)
	fmt.Print("hit, stand, save or quit\n> ")
	line, ok := g.readLine()
	if !ok {
		return false
	}

	switch line {
	case "hit":
		settle, err := g.round.Hit()
		if err != nil {
			fmt.Println(err)
			return true
		}
		if settle != nil {
			g.renderTable(g.round.Snapshot())
			g.renderSettlement(settle)
		}
	case "stand":
		settle, err := g.round.Stand()
		if err != nil {
			fmt.Println(err)
			return true
		}
		g.renderTable(g.round.Snapshot())
		g.renderSettlement(settle)
	case "save":
		token := save.Encode(g.round.Snapshot(), g.codec)
		fmt.Printf("Save token (keep it somewhere safe):\n%s\n", token)
	case "quit":
		return false
	case "":
	default:
		fmt.Printf("unknown command %q\n", line)
	}
	return true
}

func (g *game) load(token string) {
	if err := save.Load(g.round, token, g.codec); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Game restored.")
}

func (g *game) readLine() (string, bool) {
	if !g.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(g.in.Text()), true
}

func (g *game) renderTable(snap blackjack.Snapshot) {
	fmt.Println()
	for _, p := range snap.Participants {
		if p.Seat == blackjack.SeatDealer && snap.RoundActive && snap.TurnIndex != blackjack.SeatDealer {
			fmt.Printf("%-8s %s ??\n", p.Name+":", firstCardCode(p))
			continue
		}
		fmt.Printf("%-8s %s (%d)%s\n", p.Name+":", handCodes(p), p.Value, marker(p))
	}
}

func firstCardCode(p blackjack.ParticipantSnapshot) string {
	if len(p.Cards) == 0 {
		return "-"
	}
	return p.Cards[0].Code()
}

func handCodes(p blackjack.ParticipantSnapshot) string {
	if len(p.Cards) == 0 {
		return "-"
	}
	codes := make([]string, 0, len(p.Cards))
	for _, c := range p.Cards {
		codes = append(codes, c.Code())
	}
	return strings.Join(codes, " ")
}

func marker(p blackjack.ParticipantSnapshot) string {
	switch {
	case p.Busted:
		return " BUST"
	case p.Natural:
		return " BLACKJACK"
	case p.Standing:
		return " stand"
	default:
		return ""
	}
}

func (g *game) renderSettlement(settle *blackjack.Settlement) {
	fmt.Println(settle.Message)
	for seat := blackjack.SeatHuman; seat <= blackjack.SeatBot2; seat++ {
		res := settle.Result(seat)
		fmt.Printf("%-8s %s, balance %d\n", res.Name+":", res.Outcome, res.Balance)
	}
}
