package api

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"github.com/chanwatch/core/internal/api/handlers"
	"github.com/chanwatch/core/internal/api/middleware"
	"github.com/chanwatch/core/internal/api/websocket"
	"github.com/chanwatch/core/internal/multirun"
	"github.com/chanwatch/core/internal/orchestrator"
	"github.com/chanwatch/core/internal/signal"
	"github.com/chanwatch/core/internal/store"
)

// ServerConfig holds the demonstration server's HTTP configuration.
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	CORSOrigins     []string
}

// DefaultServerConfig returns the standard timeout/CORS defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:            ":8090",
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		CORSOrigins:     []string{"*"},
	}
}

// Server is the thin demonstration HTTP+WebSocket surface over an
// Orchestrator.
type Server struct {
	config       *ServerConfig
	echo         *echo.Echo
	orchestrator *orchestrator.Orchestrator
	coordinator  *multirun.Coordinator
	wsHub        *websocket.Hub
	wsSub        *store.Subscription
}

// NewServer wires the analyze/signals handlers and the WebSocket hub
// around a shared Orchestrator.
func NewServer(config *ServerConfig, orch *orchestrator.Orchestrator) *Server {
	if config == nil {
		config = DefaultServerConfig()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	server := &Server{
		config:       config,
		echo:         e,
		orchestrator: orch,
		coordinator:  multirun.New(orch),
		wsHub:        websocket.NewHub(),
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

func (s *Server) setupMiddleware() {
	s.echo.Use(echoMiddleware.Recover())
	s.echo.Use(middleware.Logger())
	s.echo.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: s.config.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	s.echo.Use(echoMiddleware.RequestID())
	s.echo.Use(echoMiddleware.Gzip())
}

func (s *Server) setupRoutes() {
	analyzeHandler := handlers.NewAnalyzeHandler(s.orchestrator)
	multiHandler := handlers.NewMultiHandler(s.coordinator)
	signalsHandler := handlers.NewSignalsHandler(s.orchestrator.Store)

	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	v1 := s.echo.Group("/api/v1")
	v1.POST("/analyze", analyzeHandler.Analyze)
	v1.POST("/analyze/multi", multiHandler.Analyze)
	v1.GET("/signals", signalsHandler.List)
	v1.POST("/signals/:id/ack", signalsHandler.Acknowledge)

	s.echo.GET("/ws", s.handleWebSocket)
}

func (s *Server) handleWebSocket(c echo.Context) error {
	return websocket.HandleConnection(c, s.wsHub, s.orchestrator.Store)
}

// Start runs the WebSocket hub, subscribes it to the store, and starts
// serving HTTP.
func (s *Server) Start() error {
	go s.wsHub.Run()

	sub := s.orchestrator.Store.Subscribe(func(signals []signal.Signal) {
		s.wsHub.BroadcastSignals(signals)
		s.wsHub.BroadcastToasts(s.orchestrator.Store.Toasts())
	})
	s.wsSub = sub

	log.Info().Str("port", s.config.Port).Msg("starting API server")
	return s.echo.Start(s.config.Port)
}

// Shutdown releases the store subscription, closes the WebSocket hub, and
// gracefully stops the HTTP server.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	if s.wsSub != nil {
		s.wsSub.Release()
	}
	s.wsHub.Close()

	log.Info().Msg("shutting down API server")
	return s.echo.Shutdown(ctx)
}

// Echo returns the underlying echo.Echo instance, useful for tests that
// want to drive requests without binding a real port.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
