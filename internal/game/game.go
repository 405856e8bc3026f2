package game

import (
	rand "math/rand/v2"

	"github.com/lox/twentyone/internal/deck"
)

// Status represents the phase of a round. Transitions are monotonic per
// round: Waiting -> Dealing -> PlayerTurn -> DealerTurn -> Finished,
// then Reset returns the game to Waiting.
type Status int

const (
	StatusWaiting Status = iota
	StatusDealing
	StatusPlayerTurn
	StatusDealerTurn
	StatusFinished
)

// String returns the string representation of a status
func (s Status) String() string {
	switch s {
	case StatusWaiting:
		return "waiting_for_players"
	case StatusDealing:
		return "dealing"
	case StatusPlayerTurn:
		return "player_turn"
	case StatusDealerTurn:
		return "dealer_turn"
	case StatusFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Seat is a fixed player slot within one room's round.
type Seat int

const (
	SeatOne Seat = iota
	SeatTwo
)

// String returns the string representation of a seat
func (s Seat) String() string {
	switch s {
	case SeatOne:
		return "player1"
	case SeatTwo:
		return "player2"
	default:
		return "unknown"
	}
}

// Other returns the opposing seat.
func (s Seat) Other() Seat {
	if s == SeatOne {
		return SeatTwo
	}
	return SeatOne
}

// Action is a player decision during their turn.
type Action int

const (
	ActionHit Action = iota
	ActionStand
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case ActionHit:
		return "hit"
	case ActionStand:
		return "stand"
	default:
		return "unknown"
	}
}

// ParseAction parses a wire action string ("hit" or "stand").
func ParseAction(s string) (Action, bool) {
	switch s {
	case "hit":
		return ActionHit, true
	case "stand":
		return ActionStand, true
	default:
		return 0, false
	}
}

// Player is a seated occupant and their current hand.
type Player struct {
	Name string
	Hand *Hand
}

// Game is the authoritative state machine for one room. It owns the
// deck, both player hands and the dealer hand. All methods are
// synchronous and in-memory; callers must serialize mutations.
type Game struct {
	roomID  string
	rng     *rand.Rand
	deck    *deck.Deck
	status  Status
	players map[Seat]*Player
	dealer  *Hand
	turn    Seat
	hasTurn bool
}

// New creates a game for a room with a freshly shuffled deck.
func New(roomID string, rng *rand.Rand) *Game {
	return &Game{
		roomID:  roomID,
		rng:     rng,
		deck:    deck.New(rng),
		status:  StatusWaiting,
		players: make(map[Seat]*Player, 2),
		dealer:  NewHand(),
	}
}

// RoomID returns the room identifier this game belongs to.
func (g *Game) RoomID() string {
	return g.roomID
}

// Status returns the current round phase.
func (g *Game) Status() Status {
	return g.status
}

// CurrentTurn returns the seat whose turn it is. The second return is
// false outside of PlayerTurn.
func (g *Game) CurrentTurn() (Seat, bool) {
	return g.turn, g.hasTurn
}

// Player returns the occupant of a seat, or nil if vacant.
func (g *Game) Player(seat Seat) *Player {
	return g.players[seat]
}

// Dealer returns the dealer's hand.
func (g *Game) Dealer() *Hand {
	return g.dealer
}

// AddPlayer seats a name. It is idempotent for a name already in the
// seat and fails if the seat is held by someone else. Seat ordering
// (first joiner SeatOne) is the caller's responsibility.
func (g *Game) AddPlayer(name string, seat Seat) bool {
	if existing := g.players[seat]; existing != nil {
		return existing.Name == name
	}

	g.players[seat] = &Player{Name: name, Hand: NewHand()}
	return true
}

// CanStart reports whether a round can be dealt: both seats occupied
// and no round in progress.
func (g *Game) CanStart() bool {
	return g.status == StatusWaiting && g.players[SeatOne] != nil && g.players[SeatTwo] != nil
}

// Start deals the opening hands: two face-up cards to each player in
// seat order, then the dealer's up card and face-down hole card.
// Naturals for all three hands are evaluated before anyone acts. Play
// begins with SeatOne.
func (g *Game) Start() bool {
	if !g.CanStart() {
		return false
	}

	g.status = StatusDealing

	for _, seat := range []Seat{SeatOne, SeatTwo} {
		hand := g.players[seat].Hand
		hand.Add(g.deck.Deal())
		hand.Add(g.deck.Deal())
	}

	g.dealer.Add(g.deck.Deal())
	hole := g.deck.Deal()
	hole.FaceUp = false
	g.dealer.Add(hole)

	g.players[SeatOne].Hand.evaluateNatural()
	g.players[SeatTwo].Hand.evaluateNatural()
	g.dealer.evaluateNatural()

	g.status = StatusPlayerTurn
	g.turn = SeatOne
	g.hasTurn = true
	return true
}

// ProcessAction applies a hit or stand for a seat. It reports false
// with no state change unless it is that seat's turn during PlayerTurn.
// A hit that busts the hand advances the turn immediately, as if the
// player had stood.
func (g *Game) ProcessAction(seat Seat, action Action) bool {
	if g.status != StatusPlayerTurn || !g.hasTurn || g.turn != seat {
		return false
	}

	player := g.players[seat]
	if player == nil {
		return false
	}

	switch action {
	case ActionHit:
		player.Hand.Add(g.deck.Deal())
		if player.Hand.Busted {
			g.advanceTurn()
		}
	case ActionStand:
		g.advanceTurn()
	default:
		return false
	}

	return true
}

// advanceTurn moves play from SeatOne to SeatTwo and from SeatTwo to
// the dealer. The SeatTwo-already-busted check on the first transition
// cannot trigger under normal sequencing (SeatTwo has not acted yet);
// it is kept as a safeguard against call-order changes.
func (g *Game) advanceTurn() {
	if g.turn == SeatOne {
		if p2 := g.players[SeatTwo]; p2 != nil && !p2.Hand.Busted {
			g.turn = SeatTwo
			return
		}
	}

	g.hasTurn = false
	g.playDealer()
}

// playDealer reveals the hole card and draws on the fixed policy: hit
// while under 17, stand at 17 or better, stop on bust. Finishes the
// round.
func (g *Game) playDealer() {
	g.status = StatusDealerTurn
	g.dealer.FlipAll()

	for g.dealer.Value < 17 && !g.dealer.Busted {
		g.dealer.Add(g.deck.Deal())
	}

	g.status = StatusFinished
}

// Reset reinitializes the game in place: fresh shuffled deck, cleared
// hands, vacated seats, status back to Waiting. Callers that want to
// keep the same occupants must re-seat them from their own records.
func (g *Game) Reset() {
	g.deck = deck.New(g.rng)
	g.players = make(map[Seat]*Player, 2)
	g.dealer = NewHand()
	g.status = StatusWaiting
	g.hasTurn = false
	g.turn = SeatOne
}
