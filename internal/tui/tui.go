// Package tui implements the interactive terminal client for
// twenty-one, rendering per-recipient snapshots received over the
// WebSocket protocol.
package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/twentyone/internal/client"
	"github.com/lox/twentyone/internal/game"
	"github.com/lox/twentyone/internal/server"
)

// Options configures the initial state of the TUI.
type Options struct {
	RoomID     string
	PlayerName string
}

// Model is the Bubble Tea model for the twenty-one client
type Model struct {
	client *client.Client
	logger *log.Logger

	logViewport viewport.Model
	actionInput textinput.Model

	gameLog    []string
	snapshot   *game.Snapshot
	summary    string
	roomID     string
	playerName string

	width       int
	height      int
	initialized bool
	quitting    bool
}

type serverMsg struct {
	msg *server.Message
}

type disconnectedMsg struct{}

// New creates a TUI model speaking to the given connected client.
func New(c *client.Client, logger *log.Logger, opts Options) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "join <room> <name> | hit | stand | restart | quit"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 60
	ti.Prompt = "> "

	return &Model{
		client:      c,
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		actionInput: ti,
		gameLog:     []string{},
		roomID:      opts.RoomID,
		playerName:  opts.PlayerName,
	}
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.waitForMessage()}
	if m.roomID != "" && m.playerName != "" {
		roomID, playerName := m.roomID, m.playerName
		cmds = append(cmds, func() tea.Msg {
			_ = m.client.JoinRoom(roomID, playerName)
			return nil
		})
	}
	return tea.Batch(cmds...)
}

// waitForMessage returns a command that waits for the next server message
func (m *Model) waitForMessage() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-m.client.Receive()
		if !ok {
			return disconnectedMsg{}
		}
		return serverMsg{msg: msg}
	}
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logViewport.Width = msg.Width - 2
		m.logViewport.Height = max(3, msg.Height-16)
		m.initialized = true

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			_ = m.client.Disconnect()
			return m, tea.Quit
		case "enter":
			command := strings.TrimSpace(m.actionInput.Value())
			m.actionInput.SetValue("")
			if cmd := m.processCommand(command); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}

	case serverMsg:
		m.handleServerMessage(msg.msg)
		cmds = append(cmds, m.waitForMessage())

	case disconnectedMsg:
		m.appendLog(ErrorStyle.Render("Disconnected from server."))
	}

	var cmd tea.Cmd
	m.actionInput, cmd = m.actionInput.Update(msg)
	cmds = append(cmds, cmd)
	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) processCommand(command string) tea.Cmd {
	if command == "" {
		return nil
	}

	fields := strings.Fields(command)
	switch fields[0] {
	case "join":
		if len(fields) != 3 {
			m.appendLog(ErrorStyle.Render("Usage: join <room> <name>"))
			return nil
		}
		m.roomID, m.playerName = fields[1], fields[2]
		if err := m.client.JoinRoom(m.roomID, m.playerName); err != nil {
			m.appendLog(ErrorStyle.Render("Join failed: " + err.Error()))
		}
	case "hit", "stand":
		if err := m.client.SendAction(m.roomID, fields[0]); err != nil {
			m.appendLog(ErrorStyle.Render("Action failed: " + err.Error()))
		}
	case "restart":
		m.summary = ""
		if err := m.client.RestartRoom(m.roomID); err != nil {
			m.appendLog(ErrorStyle.Render("Restart failed: " + err.Error()))
		}
	case "quit", "exit":
		m.quitting = true
		_ = m.client.Disconnect()
		return tea.Quit
	default:
		m.appendLog(ErrorStyle.Render("Unknown command: " + fields[0]))
	}
	return nil
}

func (m *Model) handleServerMessage(msg *server.Message) {
	switch msg.Type {
	case server.MessageTypeStateUpdate:
		var data server.StateUpdateData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			m.logger.Error("Failed to decode state update", "error", err)
			return
		}
		m.snapshot = data.Snapshot

	case server.MessageTypePlayerJoined:
		var data server.PlayerJoinedData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return
		}
		m.appendLog(fmt.Sprintf("%s joined as %s", data.PlayerName, data.Seat))

	case server.MessageTypeTurnNotice:
		var data server.TurnNoticeData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return
		}
		if data.PlayerName == m.playerName {
			m.appendLog(TurnStyle.Render("Your turn! (hit or stand)"))
		} else {
			m.appendLog(fmt.Sprintf("Waiting for %s...", data.PlayerName))
		}

	case server.MessageTypeRoundEnded:
		var data server.RoundEndedData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return
		}
		m.snapshot = data.Snapshot
		m.summary = data.Summary
		m.appendLog(SummaryStyle.Render(data.Summary))
		m.appendLog(InfoStyle.Render("Type 'restart' to play again."))

	case server.MessageTypeError:
		var data server.ErrorData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return
		}
		m.appendLog(ErrorStyle.Render(data.Message))

	default:
		m.logger.Debug("Unhandled message", "type", msg.Type)
	}
}

func (m *Model) appendLog(line string) {
	m.gameLog = append(m.gameLog, line)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.GotoBottom()
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(HeaderStyle.Render(" Twenty-One "))
	if m.roomID != "" {
		b.WriteString(InfoStyle.Render(fmt.Sprintf("  room=%s player=%s", m.roomID, m.playerName)))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderTable())
	b.WriteString("\n")
	b.WriteString(m.logViewport.View())
	b.WriteString("\n\n")
	b.WriteString(m.actionInput.View())

	return b.String()
}

func (m *Model) renderTable() string {
	if m.snapshot == nil {
		return InfoStyle.Render("Not in a game. Use: join <room> <name>") + "\n"
	}

	var b strings.Builder
	snap := m.snapshot

	b.WriteString(HandLabelStyle.Render("Dealer: "))
	b.WriteString(renderHand(snap.Dealer))
	b.WriteString("\n")

	if snap.You != nil {
		label := fmt.Sprintf("%s (you): ", snap.You.Name)
		b.WriteString(HandLabelStyle.Render(label))
		b.WriteString(renderHand(snap.You.Hand))
		if snap.CurrentTurn == snap.You.Seat {
			b.WriteString(TurnStyle.Render("  ← your turn"))
		}
		b.WriteString("\n")
	}

	if snap.Opponent != nil {
		label := fmt.Sprintf("%s: ", snap.Opponent.Name)
		b.WriteString(HandLabelStyle.Render(label))
		b.WriteString(renderHand(snap.Opponent.Hand))
		if snap.CurrentTurn == snap.Opponent.Seat {
			b.WriteString(TurnStyle.Render("  ← their turn"))
		}
		b.WriteString("\n")
	}

	if m.summary != "" {
		b.WriteString(SummaryStyle.Render(m.summary))
		b.WriteString("\n")
	}

	return b.String()
}

// renderHand draws a hand's cards with value and status markers.
func renderHand(h *game.Hand) string {
	if h == nil || len(h.Cards) == 0 {
		return InfoStyle.Render("(no cards)")
	}

	parts := make([]string, 0, len(h.Cards)+1)
	for _, c := range h.Cards {
		switch {
		case !c.FaceUp:
			parts = append(parts, HiddenCardStyle.Render("[??]"))
		case c.IsRed():
			parts = append(parts, RedCardStyle.Render("["+c.String()+"]"))
		default:
			parts = append(parts, BlackCardStyle.Render("["+c.String()+"]"))
		}
	}

	status := fmt.Sprintf(" = %d", h.Value)
	if h.Busted {
		status += ErrorStyle.Render(" BUST")
	}
	if h.Natural {
		status += SummaryStyle.Render(" BLACKJACK")
	}
	parts = append(parts, status)

	return strings.Join(parts, " ")
}
