package game

import (
	"strings"

	"github.com/lox/twentyone/internal/deck"
)

// Hand is an ordered sequence of cards for one player or the dealer.
// Cards keep their deal order, which matters for the natural check on
// the first two cards. Value, Busted and Natural are derived state:
// Value and Busted are recomputed from face-up cards after every
// mutation, while Natural is evaluated once at deal time.
type Hand struct {
	Cards   []deck.Card `json:"cards"`
	Value   int         `json:"value"`
	Busted  bool        `json:"busted"`
	Natural bool        `json:"natural"`
}

// NewHand creates an empty hand
func NewHand() *Hand {
	return &Hand{Cards: make([]deck.Card, 0, 6)}
}

// Add appends a card to the hand and recomputes the visible value.
func (h *Hand) Add(card deck.Card) {
	h.Cards = append(h.Cards, card)
	h.recompute()
}

// FlipAll turns every card face up and recomputes the value. Used when
// the dealer reveals the hole card.
func (h *Hand) FlipAll() {
	for i := range h.Cards {
		h.Cards[i].FaceUp = true
	}
	h.recompute()
}

// recompute derives Value and Busted from face-up cards only. Aces start
// at 1 and each is promoted to 11 while the total stays at or under 21,
// yielding the maximal non-busting total (or the all-aces-low total if
// even that busts).
func (h *Hand) recompute() {
	value := 0
	aces := 0
	for _, c := range h.Cards {
		if !c.FaceUp {
			continue
		}
		value += c.BaseValue()
		if c.IsAce() {
			aces++
		}
	}

	for i := 0; i < aces; i++ {
		if value+10 <= 21 {
			value += 10
		}
	}

	h.Value = value
	h.Busted = value > 21
}

// evaluateNatural flags a two-card 21. Called once immediately after the
// opening deal; the flag is never re-derived afterwards, so a hand that
// hits back to 21 stays non-natural. The dealer's hole card counts here
// even though it is still face down.
func (h *Hand) evaluateNatural() {
	if len(h.Cards) != 2 {
		return
	}

	value := 0
	aces := 0
	for _, c := range h.Cards {
		value += c.BaseValue()
		if c.IsAce() {
			aces++
		}
	}
	for i := 0; i < aces; i++ {
		if value+10 <= 21 {
			value += 10
		}
	}

	h.Natural = value == 21
}

// Clone returns a deep copy of the hand. Snapshots must never alias the
// canonical cards, which keep mutating while serializers read the copy.
func (h *Hand) Clone() *Hand {
	clone := &Hand{
		Cards:   make([]deck.Card, len(h.Cards)),
		Value:   h.Value,
		Busted:  h.Busted,
		Natural: h.Natural,
	}
	copy(clone.Cards, h.Cards)
	return clone
}

// String returns the hand as space-separated cards, face-down cards masked.
func (h *Hand) String() string {
	parts := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
