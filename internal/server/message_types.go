package server

// MessageType represents a WebSocket message type with type safety
type MessageType string

// WebSocket message type constants for the client-server protocol
const (
	// Client to server messages
	MessageTypeJoinRoom     MessageType = "join_room"
	MessageTypePlayerAction MessageType = "player_action"
	MessageTypeRestartRoom  MessageType = "restart_room"

	// Server to client messages
	MessageTypeStateUpdate  MessageType = "state_update"
	MessageTypePlayerJoined MessageType = "player_joined"
	MessageTypeRoundEnded   MessageType = "round_ended"
	MessageTypeTurnNotice   MessageType = "turn_notice"
	MessageTypeError        MessageType = "error"
)

// String returns the string representation of the message type
func (mt MessageType) String() string {
	return string(mt)
}
