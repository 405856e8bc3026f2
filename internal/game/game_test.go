package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/randutil"
)

func newStartedGame(t *testing.T, seed int64) *Game {
	t.Helper()

	g := New("room-1", randutil.New(seed))
	require.True(t, g.AddPlayer("alice", SeatOne))
	require.True(t, g.AddPlayer("bob", SeatTwo))
	require.True(t, g.Start())
	return g
}

func TestAddPlayer(t *testing.T) {
	g := New("room-1", randutil.New(1))

	require.True(t, g.AddPlayer("alice", SeatOne))

	// Rejoin with the same name is idempotent.
	assert.True(t, g.AddPlayer("alice", SeatOne))

	// A different name cannot take an occupied seat.
	assert.False(t, g.AddPlayer("mallory", SeatOne))
	assert.Equal(t, "alice", g.Player(SeatOne).Name)
}

func TestCanStartRequiresBothSeats(t *testing.T) {
	g := New("room-1", randutil.New(1))
	assert.False(t, g.CanStart())
	assert.False(t, g.Start())

	g.AddPlayer("alice", SeatOne)
	assert.False(t, g.CanStart())

	g.AddPlayer("bob", SeatTwo)
	assert.True(t, g.CanStart())
}

func TestStartDealsOpeningHands(t *testing.T) {
	g := newStartedGame(t, 7)

	assert.Equal(t, StatusPlayerTurn, g.Status())
	turn, ok := g.CurrentTurn()
	require.True(t, ok)
	assert.Equal(t, SeatOne, turn)

	for _, seat := range []Seat{SeatOne, SeatTwo} {
		hand := g.Player(seat).Hand
		require.Len(t, hand.Cards, 2, "seat %s", seat)
		for _, c := range hand.Cards {
			assert.True(t, c.FaceUp, "player cards are dealt face up")
		}
	}

	dealer := g.Dealer()
	require.Len(t, dealer.Cards, 2)
	assert.True(t, dealer.Cards[0].FaceUp, "dealer up card")
	assert.False(t, dealer.Cards[1].FaceUp, "dealer hole card")

	// 6 cards dealt from a fresh deck.
	assert.Equal(t, deck.Size-6, g.deck.Remaining())
}

func TestStartIsRejectedMidRound(t *testing.T) {
	g := newStartedGame(t, 7)
	assert.False(t, g.CanStart())
	assert.False(t, g.Start())
}

func TestTurnSequence(t *testing.T) {
	g := newStartedGame(t, 11)

	require.True(t, g.ProcessAction(SeatOne, ActionStand))
	turn, ok := g.CurrentTurn()
	require.True(t, ok)
	assert.Equal(t, SeatTwo, turn, "normal play always visits player two")

	require.True(t, g.ProcessAction(SeatTwo, ActionStand))
	assert.Equal(t, StatusFinished, g.Status())

	_, ok = g.CurrentTurn()
	assert.False(t, ok, "no current turn once player phase ends")
}

func TestOutOfTurnActionsAreRejected(t *testing.T) {
	g := newStartedGame(t, 11)

	assert.False(t, g.ProcessAction(SeatTwo, ActionHit), "not player two's turn")

	require.True(t, g.ProcessAction(SeatOne, ActionStand))
	assert.False(t, g.ProcessAction(SeatOne, ActionStand), "player one already stood")

	require.True(t, g.ProcessAction(SeatTwo, ActionStand))
	assert.False(t, g.ProcessAction(SeatTwo, ActionHit), "round is finished")
}

func TestActionsRejectedBeforeStart(t *testing.T) {
	g := New("room-1", randutil.New(1))
	g.AddPlayer("alice", SeatOne)
	assert.False(t, g.ProcessAction(SeatOne, ActionHit))
}

func TestBustingHitAdvancesTurn(t *testing.T) {
	g := newStartedGame(t, 3)

	// Any hit on a 21 busts, since the smallest card adds 1.
	g.Player(SeatOne).Hand = handOf(
		card(deck.Spades, deck.King),
		card(deck.Hearts, deck.Queen),
		card(deck.Clubs, deck.Ace),
	)

	require.True(t, g.ProcessAction(SeatOne, ActionHit))
	assert.True(t, g.Player(SeatOne).Hand.Busted)

	turn, ok := g.CurrentTurn()
	require.True(t, ok, "turn advances without a separate stand")
	assert.Equal(t, SeatTwo, turn)
}

func TestAdvanceSkipsBustedPlayerTwo(t *testing.T) {
	// The skip branch cannot trigger under normal sequencing; force the
	// precondition directly to pin down the safeguard's behavior.
	g := newStartedGame(t, 3)
	g.Player(SeatTwo).Hand = handOf(
		card(deck.Spades, deck.King),
		card(deck.Hearts, deck.Queen),
		card(deck.Clubs, deck.Five),
	)
	require.True(t, g.Player(SeatTwo).Hand.Busted)

	require.True(t, g.ProcessAction(SeatOne, ActionStand))
	assert.Equal(t, StatusFinished, g.Status(), "play skips straight through the dealer turn")
}

func TestDealerDrawsToSeventeen(t *testing.T) {
	g := newStartedGame(t, 5)

	// Rig the dealer low so the policy must draw at least once.
	hole := card(deck.Hearts, deck.Five)
	hole.FaceUp = false
	g.dealer = handOf(card(deck.Spades, deck.Six), hole)

	require.True(t, g.ProcessAction(SeatOne, ActionStand))
	require.True(t, g.ProcessAction(SeatTwo, ActionStand))

	require.Equal(t, StatusFinished, g.Status())
	dealer := g.Dealer()
	assert.Greater(t, len(dealer.Cards), 2, "dealer must draw on 11")
	if !dealer.Busted {
		assert.GreaterOrEqual(t, dealer.Value, 17)
	}
	for _, c := range dealer.Cards {
		assert.True(t, c.FaceUp, "all dealer cards revealed after the dealer turn")
	}
}

func TestDealerStandsOnSeventeen(t *testing.T) {
	g := newStartedGame(t, 5)

	hole := card(deck.Hearts, deck.Seven)
	hole.FaceUp = false
	g.dealer = handOf(card(deck.Spades, deck.Ten), hole)

	require.True(t, g.ProcessAction(SeatOne, ActionStand))
	require.True(t, g.ProcessAction(SeatTwo, ActionStand))

	assert.Len(t, g.Dealer().Cards, 2, "dealer stands on 17")
	assert.Equal(t, 17, g.Dealer().Value)
}

func TestReset(t *testing.T) {
	g := newStartedGame(t, 9)
	require.True(t, g.ProcessAction(SeatOne, ActionStand))
	require.True(t, g.ProcessAction(SeatTwo, ActionStand))
	require.Equal(t, StatusFinished, g.Status())

	g.Reset()

	assert.Equal(t, StatusWaiting, g.Status())
	_, ok := g.CurrentTurn()
	assert.False(t, ok)
	assert.Nil(t, g.Player(SeatOne), "reset vacates seats")
	assert.Nil(t, g.Player(SeatTwo))
	assert.Empty(t, g.Dealer().Cards)
	assert.Equal(t, deck.Size, g.deck.Remaining(), "fresh deck")

	// Re-seating the previous occupants allows a new round.
	require.True(t, g.AddPlayer("alice", SeatOne))
	require.True(t, g.AddPlayer("bob", SeatTwo))
	assert.True(t, g.CanStart())
}
