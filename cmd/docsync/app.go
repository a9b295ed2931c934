package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/docsync/internal/client/api"
	"github.com/iudanet/docsync/internal/client/auth"
	"github.com/iudanet/docsync/internal/client/cli"
	"github.com/iudanet/docsync/internal/client/data"
	"github.com/iudanet/docsync/internal/client/iocli"
	"github.com/iudanet/docsync/internal/client/present"
	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/client/storage/boltdb"
	"github.com/iudanet/docsync/internal/client/sync"
	"github.com/iudanet/docsync/internal/config"
	"github.com/iudanet/docsync/internal/conflict"
	"github.com/iudanet/docsync/internal/logging"
)

// app связывает зависимости клиента на время одной команды
type app struct {
	cfg    *config.Client
	logger *slog.Logger
	store  *boltdb.Storage
	coord  *conflict.Coordinator
	cli    *cli.Cli
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.LoadClient(v)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		return nil, err
	}

	store, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	nodeID, err := resolveNodeID(ctx, store, cfg)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	io := iocli.NewStdio()
	apiClient := api.NewClient(cfg.ServerURL)

	coord := conflict.NewCoordinator(conflict.Config{
		SessionTimeout: cfg.Conflict.SessionTimeout,
		Retention:      cfg.Signal.Retention,
	}, logger)

	terminal := present.NewTerminal(io, present.StylesFor(os.Stdout), logger)
	presenter, err := present.New(present.Strategy(cfg.Conflict.Strategy), terminal)
	if err != nil {
		coord.Close()
		_ = store.Close()
		return nil, err
	}

	resolver := conflict.NewResolver(coord, presenter, cfg.Conflict.WaitTimeout, logger)

	syncService := sync.NewService(apiClient, store, store, store, resolver, sync.Config{
		NodeID:   nodeID,
		PickMode: cfg.Conflict.PickMode,
	}, logger)

	authService := auth.NewService(apiClient, store, cfg.ServerURL, logger)
	dataService := data.NewService(store, nodeID)

	logger.Debug("Client initialized",
		"server_url", cfg.ServerURL,
		"db_path", cfg.DBPath,
		"node_id", nodeID,
		"strategy", cfg.Conflict.Strategy)

	return &app{
		cfg:    cfg,
		logger: logger,
		store:  store,
		coord:  coord,
		cli:    cli.New(io, authService, dataService, syncService, store, Version),
	}, nil
}

func (a *app) Close() {
	a.coord.Close()
	if err := a.store.Close(); err != nil {
		a.logger.Error("Failed to close database", "error", err)
	}
}

// resolveNodeID: узел из токена устройства, затем из конфига, затем имя хоста
func resolveNodeID(ctx context.Context, store storage.AuthStorage, cfg *config.Client) (string, error) {
	authData, err := store.GetAuth(ctx)
	switch {
	case err == nil && authData.NodeID != "":
		return authData.NodeID, nil
	case err != nil && !errors.Is(err, storage.ErrAuthNotFound):
		return "", fmt.Errorf("failed to read device credentials: %w", err)
	}

	if cfg.NodeID != "" {
		return cfg.NodeID, nil
	}

	host, err := os.Hostname()
	if err != nil || host == "" {
		return "local", nil
	}
	return host, nil
}
