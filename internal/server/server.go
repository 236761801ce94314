// Package server exposes the symptom engine over HTTP.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kuandriy/symptom-gate/internal/config"
	"github.com/kuandriy/symptom-gate/internal/engine"
)

const requestIDHeader = "X-Request-ID"

// Server routes HTTP requests to an engine.
type Server struct {
	engine *engine.Engine
	cfg    config.ServerConfig
	logger *slog.Logger
}

// New creates a server. A nil logger discards output.
func New(e *engine.Engine, cfg config.ServerConfig, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{engine: e, cfg: cfg, logger: logger}
}

// Router builds the gin handler with middleware and routes.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Logger(),
		gin.Recovery(),
		requestID(),
		limitBodySize(s.cfg.MaxBodyBytes),
		cors.New(cors.Config{
			AllowOrigins:  []string{"*"},
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", requestIDHeader},
			ExposeHeaders: []string{requestIDHeader},
			MaxAge:        12 * time.Hour,
		}),
	)

	router.GET("/healthz", s.health)
	router.GET("/api/get", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello, request ok"})
	})

	api := router.Group("/api")
	api.GET("/symptoms", s.listSymptoms)
	api.POST("/related_symptoms", s.relatedSymptoms)
	api.POST("/analyze_text", s.analyzeText)
	api.GET("/diseases/:name", s.disease)

	return router
}

// requestID tags every request with an X-Request-ID, keeping a well-formed
// incoming one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func limitBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// badRequest logs and answers a validation failure.
func (s *Server) badRequest(c *gin.Context, msg string, err error) {
	attrs := []any{"path", c.FullPath(), "request_id", c.GetString("requestID")}
	if err != nil {
		attrs = append(attrs, "error", err)
	}
	s.logger.Warn(msg, attrs...)
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
