package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	ossignal "os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/docsync/internal/server/handlers"
	"github.com/iudanet/docsync/internal/server/middleware"
	"github.com/iudanet/docsync/internal/token"
)

const (
	healthPath      = "/api/v1/health"
	syncPath        = "/api/v1/sync"
	shutdownTimeout = 10 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("listen", "", "listen address")
	_ = v.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := ossignal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer e.Close()

	tokens, err := token.NewService(e.cfg.JWTSecret, e.cfg.TokenTTL)
	if err != nil {
		return err
	}

	healthHandler := handlers.NewHealthHandler(e.logger, Version)
	syncHandler := handlers.NewSyncHandler(e.logger, e.store)

	mux := http.NewServeMux()
	mux.HandleFunc(healthPath, healthHandler.Health)
	mux.Handle(syncPath, middleware.Auth(e.logger, tokens, e.store, time.Now)(http.HandlerFunc(syncHandler.HandleSync)))

	mws := []middleware.Middleware{
		middleware.Recovery(e.logger),
		middleware.Logging(e.logger, healthPath),
	}
	if e.cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(e.cfg.RateLimit, time.Minute)
		defer limiter.Stop()
		mws = append(mws, limiter.Middleware(e.logger))
	}

	srv := &http.Server{
		Addr:              e.cfg.Listen,
		Handler:           middleware.Chain(mux, mws...),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		e.logger.Info("Server listening",
			"addr", e.cfg.Listen,
			"version", Version,
			"db_path", e.cfg.DBPath,
			"timestamp", e.store.CurrentTimestamp())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	e.logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	e.logger.Info("Server stopped")
	return nil
}
