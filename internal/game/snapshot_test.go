package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/randutil"
)

func TestSnapshotShowsOwnHandInFull(t *testing.T) {
	g := newStartedGame(t, 21)

	snap := g.SnapshotFor(SeatOne)
	require.NotNil(t, snap.You)
	assert.Equal(t, "alice", snap.You.Name)
	assert.Equal(t, g.Player(SeatOne).Hand.Value, snap.You.Hand.Value)
	require.Len(t, snap.You.Hand.Cards, 2)
	for i, c := range snap.You.Hand.Cards {
		assert.Equal(t, g.Player(SeatOne).Hand.Cards[i], c)
		assert.True(t, c.FaceUp)
	}
}

func TestSnapshotRedactsOpponent(t *testing.T) {
	g := newStartedGame(t, 21)

	for _, seat := range []Seat{SeatOne, SeatTwo} {
		snap := g.SnapshotFor(seat)
		opp := snap.Opponent
		require.NotNil(t, opp, "seat %s", seat)

		real := g.Player(seat.Other()).Hand
		require.Len(t, opp.Hand.Cards, len(real.Cards))
		for _, c := range opp.Hand.Cards {
			assert.False(t, c.FaceUp, "opponent cards are never face up")
			assert.Zero(t, c.Rank, "opponent ranks are not leaked")
			assert.Zero(t, c.Suit, "opponent suits are not leaked")
		}
		assert.Zero(t, opp.Hand.Value, "opponent value reads zero")
		assert.False(t, opp.Hand.Natural, "opponent natural is hidden")
		assert.Equal(t, real.Busted, opp.Hand.Busted, "busted passes through")
	}
}

func TestSnapshotHidesDealerHoleCardUntilFlip(t *testing.T) {
	g := newStartedGame(t, 23)

	snap := g.SnapshotFor(SeatOne)
	require.Len(t, snap.Dealer.Cards, 2)
	assert.True(t, snap.Dealer.Cards[0].FaceUp)
	assert.False(t, snap.Dealer.Cards[1].FaceUp, "hole card hidden before dealer turn")

	require.True(t, g.ProcessAction(SeatOne, ActionStand))
	require.True(t, g.ProcessAction(SeatTwo, ActionStand))
	require.Equal(t, StatusFinished, g.Status())

	snap = g.SnapshotFor(SeatOne)
	for _, c := range snap.Dealer.Cards {
		assert.True(t, c.FaceUp, "dealer cards visible once the canonical state flips them")
	}
}

func TestSnapshotHidesDealerNaturalUntilFlip(t *testing.T) {
	g := newStartedGame(t, 29)

	hole := card(deck.Spades, deck.King)
	hole.FaceUp = false
	g.dealer = &Hand{Cards: []deck.Card{card(deck.Hearts, deck.Ace), hole}}
	g.dealer.recompute()
	g.dealer.evaluateNatural()
	require.True(t, g.dealer.Natural)

	snap := g.SnapshotFor(SeatOne)
	assert.False(t, snap.Dealer.Natural, "natural withheld while the hole card is down")

	g.dealer.FlipAll()
	snap = g.SnapshotFor(SeatOne)
	assert.True(t, snap.Dealer.Natural, "natural shown once the hand is revealed")
}

func TestSnapshotDoesNotAliasCanonicalState(t *testing.T) {
	g := newStartedGame(t, 25)
	snap := g.SnapshotFor(SeatOne)
	cardsBefore := len(snap.You.Hand.Cards)

	// Mutate the canonical hands after projecting.
	g.Player(SeatOne).Hand.Add(card(deck.Clubs, deck.Two))
	g.dealer.FlipAll()

	assert.Len(t, snap.You.Hand.Cards, cardsBefore, "snapshot hand does not grow")
	assert.False(t, snap.Dealer.Cards[1].FaceUp, "snapshot hole card stays hidden")
}

func TestSnapshotCurrentTurn(t *testing.T) {
	g := newStartedGame(t, 27)

	snap := g.SnapshotFor(SeatTwo)
	assert.Equal(t, "player1", snap.CurrentTurn)
	assert.Equal(t, "player_turn", snap.Status)

	require.True(t, g.ProcessAction(SeatOne, ActionStand))
	require.True(t, g.ProcessAction(SeatTwo, ActionStand))

	snap = g.SnapshotFor(SeatTwo)
	assert.Empty(t, snap.CurrentTurn, "no turn once finished")
	assert.Equal(t, "finished", snap.Status)
}

func TestSnapshotBeforeDeal(t *testing.T) {
	g := New("room-1", randutil.New(1))
	g.AddPlayer("alice", SeatOne)

	snap := g.SnapshotFor(SeatOne)
	assert.Equal(t, "waiting_for_players", snap.Status)
	require.NotNil(t, snap.You)
	assert.Empty(t, snap.You.Hand.Cards)
	assert.Nil(t, snap.Opponent)
	assert.Empty(t, snap.Dealer.Cards)
}
