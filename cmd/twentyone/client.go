package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/twentyone/cmd/twentyone/shared"
	"github.com/lox/twentyone/internal/client"
	"github.com/lox/twentyone/internal/tui"
)

type ClientCmd struct {
	Server string `help:"Server URL" default:"http://localhost:8080"`
	Room   string `help:"Room to join on startup"`
	Name   string `help:"Player name to join with"`
	Debug  bool   `help:"Enable debug logging"`
}

func (cmd *ClientCmd) Run() error {
	logger := shared.SetupLogger(cmd.Debug, "")

	c := client.NewClient(cmd.Server, logger)
	if err := c.Connect(); err != nil {
		return fmt.Errorf("failed to connect to %s: %w", cmd.Server, err)
	}
	defer c.Disconnect()

	model := tui.New(c, logger, tui.Options{
		RoomID:     cmd.Room,
		PlayerName: cmd.Name,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
