// Package game implements the core twenty-one (blackjack variant) logic
// for a single room: deck handling, hand valuation with flexible Ace
// scoring, two-player plus dealer turn sequencing, round resolution, and
// the per-recipient snapshot projection that hides the opponent's cards
// and the dealer hole card.
//
// The main type is Game, a pure in-memory state machine with no I/O.
// Callers are expected to serialize mutations against one Game (the room
// registry does this with a per-room lock) and to deliver the snapshots
// it produces over whatever transport they like.
//
// # Deterministic Testing
//
// Games accept an injected *rand.Rand so shuffles are reproducible:
//
//	g := game.New("room-1", randutil.New(42))
//	g.AddPlayer("alice", game.SeatOne)
//	g.AddPlayer("bob", game.SeatTwo)
//	g.Start()
//	g.ProcessAction(game.SeatOne, game.ActionStand)
package game
