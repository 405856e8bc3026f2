package server

import (
	"encoding/json"
	"time"

	"github.com/lox/twentyone/internal/game"
)

// Message represents the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(messageType MessageType, data interface{}) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// Client → Server Messages

type JoinRoomData struct {
	RoomID     string `json:"roomId"`
	PlayerName string `json:"playerName"`
}

type PlayerActionData struct {
	RoomID string `json:"roomId"`
	Action string `json:"action"`
}

type RestartRoomData struct {
	RoomID string `json:"roomId"`
}

// Server → Client Messages

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StateUpdateData carries a recipient-specific projection of the room's
// game. Snapshots are built fresh per recipient on every broadcast.
type StateUpdateData struct {
	Snapshot *game.Snapshot `json:"snapshot"`
}

type PlayerJoinedData struct {
	PlayerName string `json:"playerName"`
	Seat       string `json:"seat"`
}

type RoundEndedData struct {
	Snapshot *game.Snapshot `json:"snapshot"`
	Summary  string         `json:"summary"`
}

type TurnNoticeData struct {
	PlayerName string `json:"playerName"`
}

// Boundary validation messages. These are stable wire text; clients
// display them verbatim.
const (
	errMissingIdentifiers = "Room ID and player name are required."
	errRoomFull           = "Room is full. Maximum 2 players allowed."
	errInvalidAction      = "Invalid action. It may not be your turn or the game is not in progress."
)
