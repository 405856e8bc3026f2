package server

import (
	"errors"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/twentyone/internal/game"
	"github.com/lox/twentyone/internal/room"
)

// Session is the per-client connection state the service needs. It is
// satisfied by *Connection; tests substitute a fake.
type Session interface {
	SetPlayer(playerName string)
	GetPlayer() string
	SetRoom(roomID string)
	GetRoom() string
	SendMessage(msg *Message) error
}

// Broadcaster delivers messages to connections by room and player name.
// It is satisfied by *Server.
type Broadcaster interface {
	BroadcastToRoom(roomID string, msg *Message)
	SendToPlayer(roomID, playerName string, msg *Message) error
	RoomConnectionCount(roomID string) int
}

// GameService routes inbound room events through the registry, mutates
// the per-room game under the room lock, and hands the resulting
// projections to the broadcaster. The engine itself never talks to the
// transport.
type GameService struct {
	registry    *room.Registry
	broadcaster Broadcaster
	logger      *log.Logger
}

// NewGameService creates a new game service
func NewGameService(broadcaster Broadcaster, registry *room.Registry, logger *log.Logger) *GameService {
	return &GameService{
		registry:    registry,
		broadcaster: broadcaster,
		logger:      logger.WithPrefix("game-service"),
	}
}

// HandleJoin seats a player in a room, creating the room on first join,
// and starts the round once both seats fill.
func (gs *GameService) HandleJoin(sess Session, data JoinRoomData) {
	roomID := strings.TrimSpace(data.RoomID)
	playerName := strings.TrimSpace(data.PlayerName)
	if roomID == "" || playerName == "" {
		gs.sendError(sess, "invalid_request", errMissingIdentifiers)
		return
	}

	rm := gs.registry.GetOrCreate(roomID)
	seat, rejoined, err := rm.Join(playerName)
	if err != nil {
		if errors.Is(err, room.ErrRoomFull) {
			gs.sendError(sess, "room_full", errRoomFull)
			return
		}
		gs.sendError(sess, "join_failed", err.Error())
		return
	}

	sess.SetPlayer(playerName)
	sess.SetRoom(roomID)
	gs.logger.Info("Player joined room", "room", roomID, "player", playerName, "seat", seat, "rejoined", rejoined)

	if !rejoined {
		if msg, err := NewMessage(MessageTypePlayerJoined, PlayerJoinedData{
			PlayerName: playerName,
			Seat:       seat.String(),
		}); err == nil {
			gs.broadcaster.BroadcastToRoom(roomID, msg)
		}
	}

	started := false
	rm.Do(func(g *game.Game) {
		if g.CanStart() {
			started = g.Start()
		}
	})

	gs.broadcastState(rm)
	if started {
		gs.notifyTurn(rm)
	}
}

// HandleAction applies a hit or stand for the connection's player. Any
// illegal action is reported only to the caller and mutates nothing.
func (gs *GameService) HandleAction(sess Session, data PlayerActionData) {
	roomID := data.RoomID
	if roomID == "" {
		roomID = sess.GetRoom()
	}
	playerName := sess.GetPlayer()

	rm, ok := gs.registry.Get(roomID)
	if !ok {
		gs.sendError(sess, "invalid_action", errInvalidAction)
		return
	}

	seat, seated := rm.SeatOf(playerName)
	action, parsed := game.ParseAction(data.Action)
	if !seated || !parsed {
		gs.sendError(sess, "invalid_action", errInvalidAction)
		return
	}

	var (
		accepted bool
		finished bool
		summary  string
	)
	rm.Do(func(g *game.Game) {
		accepted = g.ProcessAction(seat, action)
		if accepted && g.Status() == game.StatusFinished {
			finished = true
			summary = g.Summary()
		}
	})

	if !accepted {
		gs.sendError(sess, "invalid_action", errInvalidAction)
		return
	}

	gs.logger.Info("Player action", "room", roomID, "player", playerName, "action", action)

	gs.broadcastState(rm)
	if finished {
		gs.sendRoundEnded(rm, summary)
	} else {
		gs.notifyTurn(rm)
	}
}

// HandleRestart resets the room's game in place, re-seats the known
// occupants and deals the next round if both are present.
func (gs *GameService) HandleRestart(sess Session, data RestartRoomData) {
	roomID := data.RoomID
	if roomID == "" {
		roomID = sess.GetRoom()
	}
	if strings.TrimSpace(roomID) == "" {
		gs.sendError(sess, "invalid_request", errMissingIdentifiers)
		return
	}

	rm, ok := gs.registry.Get(roomID)
	if !ok {
		gs.sendError(sess, "invalid_action", errInvalidAction)
		return
	}

	rm.Restart()
	gs.logger.Info("Room restarted", "room", roomID)

	started := false
	rm.Do(func(g *game.Game) {
		if g.CanStart() {
			started = g.Start()
		}
	})

	gs.broadcastState(rm)
	if started {
		gs.notifyTurn(rm)
	}
}

// HandleDisconnect garbage-collects a room once its last connection is
// gone. Seats are kept until then so a player can rejoin by name.
func (gs *GameService) HandleDisconnect(sess Session) {
	roomID := sess.GetRoom()
	if roomID == "" {
		return
	}

	if gs.broadcaster.RoomConnectionCount(roomID) == 0 {
		gs.registry.Remove(roomID)
		gs.logger.Info("Removed empty room", "room", roomID)
	}
}

// broadcastState sends each occupant their own projection. Snapshots
// are rebuilt per recipient under the room lock so they never observe a
// half-applied mutation.
func (gs *GameService) broadcastState(rm *room.Room) {
	occupants := rm.Occupants()
	rm.Do(func(g *game.Game) {
		for _, occ := range occupants {
			snap := g.SnapshotFor(occ.Seat)
			msg, err := NewMessage(MessageTypeStateUpdate, StateUpdateData{Snapshot: snap})
			if err != nil {
				gs.logger.Error("Failed to create state update", "error", err)
				continue
			}
			if err := gs.broadcaster.SendToPlayer(rm.ID(), occ.Name, msg); err != nil {
				gs.logger.Debug("Failed to send state update", "error", err, "player", occ.Name)
			}
		}
	})
}

// sendRoundEnded delivers the personalized final snapshot plus the
// summary line to every occupant.
func (gs *GameService) sendRoundEnded(rm *room.Room, summary string) {
	occupants := rm.Occupants()
	rm.Do(func(g *game.Game) {
		for _, occ := range occupants {
			msg, err := NewMessage(MessageTypeRoundEnded, RoundEndedData{
				Snapshot: g.SnapshotFor(occ.Seat),
				Summary:  summary,
			})
			if err != nil {
				gs.logger.Error("Failed to create round ended message", "error", err)
				continue
			}
			if err := gs.broadcaster.SendToPlayer(rm.ID(), occ.Name, msg); err != nil {
				gs.logger.Debug("Failed to send round ended", "error", err, "player", occ.Name)
			}
		}
	})
}

// notifyTurn broadcasts whose turn it is, if anyone's.
func (gs *GameService) notifyTurn(rm *room.Room) {
	var turnName string
	rm.Do(func(g *game.Game) {
		if seat, ok := g.CurrentTurn(); ok {
			if p := g.Player(seat); p != nil {
				turnName = p.Name
			}
		}
	})
	if turnName == "" {
		return
	}

	if msg, err := NewMessage(MessageTypeTurnNotice, TurnNoticeData{PlayerName: turnName}); err == nil {
		gs.broadcaster.BroadcastToRoom(rm.ID(), msg)
	}
}

func (gs *GameService) sendError(sess Session, code, message string) {
	msg, err := NewMessage(MessageTypeError, ErrorData{Code: code, Message: message})
	if err != nil {
		gs.logger.Error("Failed to create error message", "error", err)
		return
	}
	_ = sess.SendMessage(msg)
}
