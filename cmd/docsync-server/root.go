package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iudanet/docsync/internal/config"
	"github.com/iudanet/docsync/internal/logging"
	"github.com/iudanet/docsync/internal/server/storage/sqlite"
)

var (
	v       = viper.New()
	cfgFile string
	initErr error
)

var rootCmd = &cobra.Command{
	Use:   "docsync-server",
	Short: "docsync replication server",
	Long: `docsync-server stores accepted document revisions, stamps them with a
Lamport timestamp and hands out device tokens for docsync clients.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initErr
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.config/docsync/server.yaml)")
	flags.String("db", "", "path to server database")
	flags.String("log-level", "", "log level: debug, info, warn, error")

	_ = v.BindPFlag("db_path", flags.Lookup("db"))
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
}

func initConfig() {
	config.SetServerDefaults(v)
	initErr = config.Init(v, cfgFile, "server")
}

// env зависимости, общие для всех команд сервера
type env struct {
	cfg    *config.Server
	logger *slog.Logger
	store  *sqlite.Storage
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, err := config.LoadServer(v)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		return nil, err
	}

	store, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	return &env{cfg: cfg, logger: logger, store: store}, nil
}

func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		e.logger.Error("Failed to close storage", "error", err)
	}
}
