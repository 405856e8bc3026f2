// Package room maps room identifiers to game instances and seat
// assignments. The registry serializes unrelated rooms independently:
// the registry lock only guards the room map, while each room carries
// its own mutex for engine mutations.
package room

import (
	"errors"
	rand "math/rand/v2"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/lox/twentyone/internal/game"
	"github.com/lox/twentyone/internal/randutil"
)

// ErrRoomFull is returned when a third distinct name tries to join.
var ErrRoomFull = errors.New("room is full")

// Occupant is a seated player within a room.
type Occupant struct {
	Name string
	Seat game.Seat
}

// Room pairs a game instance with its seat assignments. All game
// mutations for a room go through Do, which holds the room lock so
// inbound events against the same room never interleave.
type Room struct {
	id    string
	mu    sync.Mutex
	game  *game.Game
	seats map[string]game.Seat
}

// ID returns the room identifier.
func (r *Room) ID() string {
	return r.id
}

// Do runs fn against the room's game under the room lock.
func (r *Room) Do(fn func(g *game.Game)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.game)
}

// Join seats a player. Rejoining with an already-seated name returns
// the existing seat and rejoined=true without mutating anything. The
// first joiner takes SeatOne, the second SeatTwo; a third distinct name
// is rejected with ErrRoomFull before touching the game.
func (r *Room) Join(name string) (seat game.Seat, rejoined bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if seat, ok := r.seats[name]; ok {
		return seat, true, nil
	}
	if len(r.seats) >= 2 {
		return 0, false, ErrRoomFull
	}

	seat = game.SeatOne
	for _, taken := range r.seats {
		if taken == game.SeatOne {
			seat = game.SeatTwo
		}
	}

	if !r.game.AddPlayer(name, seat) {
		return 0, false, ErrRoomFull
	}
	r.seats[name] = seat
	return seat, false, nil
}

// SeatOf looks up a player's seat by name.
func (r *Room) SeatOf(name string) (game.Seat, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seat, ok := r.seats[name]
	return seat, ok
}

// Occupants returns the seated players in seat order.
func (r *Room) Occupants() []Occupant {
	r.mu.Lock()
	defer r.mu.Unlock()

	occupants := make([]Occupant, 0, len(r.seats))
	for _, want := range []game.Seat{game.SeatOne, game.SeatTwo} {
		for name, seat := range r.seats {
			if seat == want {
				occupants = append(occupants, Occupant{Name: name, Seat: seat})
			}
		}
	}
	return occupants
}

// Restart resets the game in place and re-seats the current occupants,
// so a fresh round can start with the same players.
func (r *Room) Restart() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.game.Reset()
	for name, seat := range r.seats {
		r.game.AddPlayer(name, seat)
	}
}

// Registry is a concurrency-safe mapping from room ID to Room. The
// coarse registry lock is held only for map operations.
type Registry struct {
	logger *log.Logger
	newRNG func() *rand.Rand
	mu     sync.RWMutex
	rooms  map[string]*Room
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *log.Logger) *Registry {
	return &Registry{
		logger: logger.WithPrefix("registry"),
		newRNG: randutil.NewFromTime,
		rooms:  make(map[string]*Room),
	}
}

// GetOrCreate returns the room for an ID, creating it (with a freshly
// shuffled deck) on first join.
func (reg *Registry) GetOrCreate(id string) *Room {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if room, ok := reg.rooms[id]; ok {
		return room
	}

	room := &Room{
		id:    id,
		game:  game.New(id, reg.newRNG()),
		seats: make(map[string]game.Seat, 2),
	}
	reg.rooms[id] = room
	reg.logger.Info("Created room", "room", id)
	return room
}

// Get returns an existing room.
func (reg *Registry) Get(id string) (*Room, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	room, ok := reg.rooms[id]
	return room, ok
}

// Remove drops a room from the registry.
func (reg *Registry) Remove(id string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if _, ok := reg.rooms[id]; ok {
		delete(reg.rooms, id)
		reg.logger.Info("Removed room", "room", id)
	}
}

// Len returns the number of active rooms.
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rooms)
}
