// Package server ties configuration, dependencies and the HTTP listener
// together, and owns graceful shutdown.
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/lyra-school/lyra-web/internal/bootstrap"
)

// Server is the running HTTP frontend.
type Server struct {
	httpServer *http.Server
	logger     zerolog.Logger
}

// NewServer builds the fully wired server: config, logger, backend client,
// services, controllers and routes.
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, err
	}

	deps := bootstrap.BuildDependencies(cfg, lgr)
	router := bootstrap.SetupRouter(cfg, deps, lgr)

	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.Server.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: lgr,
	}, nil
}

// Run starts the listener and blocks until a shutdown signal arrives.
func (s *Server) Run() error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info().Str("addr", s.httpServer.Addr).Msg("Starting HTTP server")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		s.logger.Error().Err(err).Msg("HTTP server failed")
		return err
	case sig := <-quit:
		s.logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	return s.Shutdown()
}

// Shutdown drains in-flight requests before stopping.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error().Err(err).Msg("Graceful shutdown failed")
		return err
	}

	s.logger.Info().Msg("Server stopped")
	return nil
}
