// Package server exposes the HTTP ingress: the Telegram webhook and a health
// probe.
package server

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/safar/go-chat-store/internal/config"
	"github.com/safar/go-chat-store/internal/transport"
	"github.com/safar/go-chat-store/internal/transport/telegram"
	"go.uber.org/zap"
)

const (
	WebhookPath  = "/telegram/webhook"
	secretHeader = "X-Telegram-Bot-Api-Secret-Token"
)

type Server struct {
	srv     *http.Server
	handler transport.Handler
	secret  string
	logger  *zap.Logger
}

func New(cfg config.ServerConfig, secret string, handler transport.Handler, logger *zap.Logger) *Server {
	s := &Server{
		handler: handler,
		secret:  secret,
		logger:  logger.Named("http"),
	}
	s.srv = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      s.routes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLog)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST(WebhookPath, s.webhook)
	return r
}

func (s *Server) requestLog(c *gin.Context) {
	start := time.Now()
	c.Next()
	s.logger.Debug("http_request",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", c.Writer.Status()),
		zap.Duration("latency", time.Since(start)),
	)
}

// webhook hands the update to the dispatcher and answers 200 whatever
// happens downstream, so Telegram never redelivers a processed update.
// Undecodable bodies are acknowledged as well.
func (s *Server) webhook(c *gin.Context) {
	if s.secret != "" && subtle.ConstantTimeCompare([]byte(c.GetHeader(secretHeader)), []byte(s.secret)) != 1 {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		s.logger.Warn("read webhook body", zap.Error(err))
		c.Status(http.StatusOK)
		return
	}

	u, ok, err := telegram.Decode(body)
	switch {
	case err != nil:
		s.logger.Warn("undecodable update", zap.Error(err))
	case !ok:
		s.logger.Debug("ignored update kind")
	default:
		s.handler.Submit(c.Request.Context(), u)
	}
	c.Status(http.StatusOK)
}

// Handler exposes the routes for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Start listens in the background. Listen failures other than a clean
// shutdown are logged.
func (s *Server) Start() {
	go func() {
		s.logger.Info("http server starting", zap.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("http server failed", zap.Error(err))
		}
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server shutting down")
	return s.srv.Shutdown(ctx)
}
