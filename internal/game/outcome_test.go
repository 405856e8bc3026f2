package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/randutil"
)

func naturalHand() *Hand {
	h := handOf(card(deck.Spades, deck.Ace), card(deck.Hearts, deck.King))
	h.evaluateNatural()
	return h
}

func TestResolve(t *testing.T) {
	twenty := handOf(card(deck.Spades, deck.King), card(deck.Hearts, deck.Queen))
	eighteen := handOf(card(deck.Clubs, deck.Ten), card(deck.Diamonds, deck.Eight))
	busted := handOf(
		card(deck.Spades, deck.King),
		card(deck.Hearts, deck.Queen),
		card(deck.Clubs, deck.Five),
	)

	tests := []struct {
		name     string
		player   *Hand
		dealer   *Hand
		expected Outcome
	}{
		{name: "higher value wins", player: twenty, dealer: eighteen, expected: OutcomeWin},
		{name: "lower value loses", player: eighteen, dealer: twenty, expected: OutcomeLose},
		{name: "equal values push", player: twenty, dealer: twenty, expected: OutcomePush},
		{name: "busted player loses even to busted dealer", player: busted, dealer: busted, expected: OutcomeLoseBusted},
		{name: "dealer bust wins", player: eighteen, dealer: busted, expected: OutcomeWinDealerBusted},
		{name: "natural beats twenty", player: naturalHand(), dealer: twenty, expected: OutcomeWinNatural},
		{name: "dealer natural beats twenty", player: twenty, dealer: naturalHand(), expected: OutcomeLose},
		{name: "both naturals push", player: naturalHand(), dealer: naturalHand(), expected: OutcomePush},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolve(tt.player, tt.dealer))
		})
	}
}

func TestOutcomesNilUntilFinished(t *testing.T) {
	g := newStartedGame(t, 13)
	assert.Nil(t, g.Outcomes())
	assert.Empty(t, g.Summary())
}

func TestSummaryFormat(t *testing.T) {
	g := New("room-1", randutil.New(13))
	g.AddPlayer("alice", SeatOne)
	g.AddPlayer("bob", SeatTwo)
	require.True(t, g.Start())

	g.Player(SeatOne).Hand = handOf(card(deck.Spades, deck.King), card(deck.Hearts, deck.Queen))
	g.Player(SeatTwo).Hand = handOf(
		card(deck.Clubs, deck.King),
		card(deck.Diamonds, deck.Queen),
		card(deck.Clubs, deck.Five),
	)
	hole := card(deck.Diamonds, deck.Eight)
	hole.FaceUp = false
	g.dealer = handOf(card(deck.Clubs, deck.Ten), hole)

	require.True(t, g.ProcessAction(SeatOne, ActionStand))
	// Player two is already busted; the defensive skip ends the round.
	require.Equal(t, StatusFinished, g.Status())

	assert.Equal(t, "alice: Wins | bob: Loses (Busted)", g.Summary())
}

func TestOutcomeStrings(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected string
	}{
		{OutcomeWin, "Wins"},
		{OutcomeWinNatural, "Wins (Natural Blackjack!)"},
		{OutcomeWinDealerBusted, "Wins (Dealer Busted)"},
		{OutcomeLose, "Loses"},
		{OutcomeLoseBusted, "Loses (Busted)"},
		{OutcomePush, "Push (Tie)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.outcome.String())
	}
}
