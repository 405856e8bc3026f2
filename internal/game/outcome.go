package game

import (
	"fmt"
	"strings"
)

// Outcome is a single player's result against the dealer. Outcomes are
// independent per player; there is no shared pot.
type Outcome int

const (
	OutcomeWin Outcome = iota
	OutcomeWinNatural
	OutcomeWinDealerBusted
	OutcomeLose
	OutcomeLoseBusted
	OutcomePush
)

// String returns the display form used in round summaries.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "Wins"
	case OutcomeWinNatural:
		return "Wins (Natural Blackjack!)"
	case OutcomeWinDealerBusted:
		return "Wins (Dealer Busted)"
	case OutcomeLose:
		return "Loses"
	case OutcomeLoseBusted:
		return "Loses (Busted)"
	case OutcomePush:
		return "Push (Tie)"
	default:
		return "unknown"
	}
}

// PlayerOutcome pairs a seated player with their resolved outcome.
type PlayerOutcome struct {
	Seat    Seat
	Name    string
	Outcome Outcome
}

// Outcomes resolves the finished round for both players in seat order.
// It is a pure function of the final hands and returns nil unless the
// round is finished.
func (g *Game) Outcomes() []PlayerOutcome {
	if g.status != StatusFinished {
		return nil
	}

	outcomes := make([]PlayerOutcome, 0, 2)
	for _, seat := range []Seat{SeatOne, SeatTwo} {
		player := g.players[seat]
		if player == nil {
			continue
		}
		outcomes = append(outcomes, PlayerOutcome{
			Seat:    seat,
			Name:    player.Name,
			Outcome: resolve(player.Hand, g.dealer),
		})
	}
	return outcomes
}

// resolve scores one player hand against the dealer hand. A dealer
// natural beats everything except a player natural, which pushes.
func resolve(player, dealer *Hand) Outcome {
	switch {
	case dealer.Natural && player.Natural:
		return OutcomePush
	case dealer.Natural:
		return OutcomeLose
	case player.Natural:
		return OutcomeWinNatural
	case player.Busted:
		return OutcomeLoseBusted
	case dealer.Busted:
		return OutcomeWinDealerBusted
	case player.Value > dealer.Value:
		return OutcomeWin
	case player.Value < dealer.Value:
		return OutcomeLose
	default:
		return OutcomePush
	}
}

// Summary formats the round result as one clause per player joined by
// " | ", e.g. `alice: Wins | bob: Loses (Busted)`.
func (g *Game) Summary() string {
	outcomes := g.Outcomes()
	clauses := make([]string, len(outcomes))
	for i, po := range outcomes {
		clauses[i] = fmt.Sprintf("%s: %s", po.Name, po.Outcome)
	}
	return strings.Join(clauses, " | ")
}
