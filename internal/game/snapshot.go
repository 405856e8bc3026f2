package game

import "github.com/lox/twentyone/internal/deck"

// SeatView is one seat's hand as seen by a specific recipient.
type SeatView struct {
	Name string `json:"name"`
	Seat string `json:"seat"`
	Hand *Hand  `json:"hand"`
}

// Snapshot is a recipient-specific view of the game. The recipient's
// own hand is complete; the opponent's is redacted; the dealer's cards
// carry their canonical face-up flags, so the hole card stays hidden
// from everyone until the dealer turn flips it.
type Snapshot struct {
	RoomID      string    `json:"roomId"`
	Status      string    `json:"status"`
	CurrentTurn string    `json:"currentTurn,omitempty"`
	You         *SeatView `json:"you,omitempty"`
	Opponent    *SeatView `json:"opponent,omitempty"`
	Dealer      *Hand     `json:"dealer"`
}

// SnapshotFor projects the canonical state for the recipient in the
// given seat. Every hand is deep-copied; nothing in the snapshot
// aliases the canonical cards, which may be mutated while the snapshot
// is being serialized. Built fresh on every broadcast, never cached.
func (g *Game) SnapshotFor(seat Seat) *Snapshot {
	snap := &Snapshot{
		RoomID: g.roomID,
		Status: g.status.String(),
		Dealer: dealerView(g.dealer),
	}

	if g.hasTurn {
		snap.CurrentTurn = g.turn.String()
	}

	if you := g.players[seat]; you != nil {
		snap.You = &SeatView{
			Name: you.Name,
			Seat: seat.String(),
			Hand: you.Hand.Clone(),
		}
	}

	if opp := g.players[seat.Other()]; opp != nil {
		snap.Opponent = &SeatView{
			Name: opp.Name,
			Seat: seat.Other().String(),
			Hand: redacted(opp.Hand),
		}
	}

	return snap
}

// dealerView clones the dealer's hand, withholding the natural flag
// while the hole card is still face down. The flag counts the hole card
// at deal time, so passing it through early would reveal the hidden
// card's value next to the visible up card. The flip restores it.
func dealerView(h *Hand) *Hand {
	clone := h.Clone()
	for _, c := range clone.Cards {
		if !c.FaceUp {
			clone.Natural = false
			break
		}
	}
	return clone
}

// redacted hides a hand from an opponent: each card becomes a face-down
// placeholder with zeroed suit and rank, the value reads zero and the
// natural flag is cleared. Busted passes through, since that boolean
// alone reveals no card identities.
func redacted(h *Hand) *Hand {
	return &Hand{
		Cards:  make([]deck.Card, len(h.Cards)),
		Busted: h.Busted,
	}
}
