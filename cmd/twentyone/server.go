package main

import (
	"github.com/lox/twentyone/cmd/twentyone/shared"
	"github.com/lox/twentyone/internal/room"
	"github.com/lox/twentyone/internal/server"
	"golang.org/x/sync/errgroup"
)

type ServerCmd struct {
	Config string `help:"Path to HCL config file" default:"twentyone.hcl"`
	Addr   string `help:"Listen address override (host:port)"`
	Debug  bool   `help:"Enable debug logging"`
}

func (cmd *ServerCmd) Run() error {
	config, err := server.LoadServerConfig(cmd.Config)
	if err != nil {
		return err
	}

	logger := shared.SetupLogger(cmd.Debug, config.Server.LogLevel)

	addr := config.Addr()
	if cmd.Addr != "" {
		addr = cmd.Addr
	}

	srv := server.NewServer(addr, config.Server.AllowedOrigins, logger)
	registry := room.NewRegistry(logger)
	srv.SetGameService(server.NewGameService(srv, registry, logger))

	ctx := shared.SetupSignalHandler(logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Start()
	})
	g.Go(func() error {
		<-ctx.Done()
		return srv.Stop()
	})

	logger.Info("Server listening", "addr", addr)
	return g.Wait()
}
