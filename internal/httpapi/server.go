// Package httpapi serves the quiz over HTTP with gin.
//
// Routes:
//
//	POST /api/question  next question for the session in the body
//	POST /api/chat      final report for the transcript in the first message
//	GET  /healthz       liveness
//	GET  /metrics       Prometheus exposition
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/HendryAvila/ijin/internal/quiz"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

// Server is the HTTP transport for a quiz.Service.
type Server struct {
	svc      *quiz.Service
	logger   *slog.Logger
	metrics  *Metrics
	gatherer prometheus.Gatherer
	debug    bool
	engine   *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the access and error logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithMetrics records request metrics in m and serves g on /metrics.
func WithMetrics(m *Metrics, g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = m
		s.gatherer = g
	}
}

// WithDebug keeps gin's debug mode on.
func WithDebug(debug bool) Option {
	return func(s *Server) { s.debug = debug }
}

// New builds the router for svc.
func New(svc *quiz.Service, opts ...Option) *Server {
	s := &Server{svc: svc, gatherer: prometheus.DefaultGatherer}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	if !s.debug {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(requestID(), accessLog(s.logger), instrument(s.metrics), recovery(s.logger))

	api := engine.Group("/api")
	api.POST("/question", s.handleQuestion)
	api.POST("/chat", s.handleChat)

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	s.engine = engine
	return s
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
