package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/extra/redisprometheus/v9"

	"collection-console/internal/auth"
	"collection-console/internal/backend"
	"collection-console/internal/config"
	"collection-console/internal/metrics"
	"collection-console/internal/middlewares"
)

type Server struct {
	cfg         *config.Config
	logger      *slog.Logger
	appCtx      *middlewares.AppContext
	httpServer  *http.Server
	debugServer *http.Server
	cancel      context.CancelFunc
}

func New(cfg *config.Config) (*Server, error) {
	logger := setupLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())

	sessionManager, err := auth.NewSessionManager(logger, cfg)
	if err != nil {
		cancel()
		return nil, err
	}

	// The local login flow only exists outside production; behind the
	// load balancer the trusted header carries the token.
	var oidcProvider middlewares.OIDCProvider
	if cfg.Server.Environment == "local" {
		oidcProvider, err = auth.NewRealOIDCProvider(ctx, cfg.OIDC)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("failed to initialize oidc provider: %w", err)
		}
	}

	backendClient, err := backend.NewClient(cfg.Backend, logger)
	if err != nil {
		cancel()
		return nil, err
	}

	if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled && cfg.Sessions.Store == "redis" {
		client, err := auth.SessionRedisClient(logger, cfg)
		if err != nil {
			logger.Warn("failed to create redis client for metrics", "error", err)
		} else {
			collector := redisprometheus.NewCollector(metrics.Namespace, "sessions", client)
			if err := prometheus.Register(collector); err != nil {
				logger.Debug("failed to register redis sessions collector: already registered", "error", err)
			}
		}
	}

	appCtx := middlewares.NewAppContext(ctx, cfg, logger, sessionManager, oidcProvider, backendClient)

	router := setupRouter(appCtx)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	var debugServer *http.Server
	if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
		debugServer = &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Debug.Host, cfg.Server.Debug.Port),
			Handler: setupDebugRouter(),
		}
	}

	return &Server{
		cfg:         cfg,
		logger:      logger,
		appCtx:      appCtx,
		httpServer:  httpServer,
		debugServer: debugServer,
		cancel:      cancel,
	}, nil
}

func (s *Server) Start() error {
	go func() {
		s.logger.Info("Server Started", "port", s.cfg.Server.Port, "environment", s.cfg.Server.Environment)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server failed to start", "error", err)
			s.cancel()
		}
	}()

	if s.debugServer != nil {
		go func() {
			s.logger.Info("Debug server starting", "address", s.debugServer.Addr)
			if err := s.debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("Debug server failed to start", "error", err)
				s.cancel()
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		s.logger.Info("Shutdown signal received")
	case <-s.appCtx.Done():
		s.logger.Info("Context canceled")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	s.logger.Info("Shutting Down Server")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
		return err
	}

	if s.debugServer != nil {
		if err := s.debugServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Debug server forced to shutdown", "error", err)
		}
	}

	s.logger.Info("Server Exited")
	return nil
}
