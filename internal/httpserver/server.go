package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/trakzone/checkin-service/internal/auth"
	"github.com/trakzone/checkin-service/internal/config"
	"github.com/trakzone/checkin-service/internal/handlers"
)

// Pinger is the DB dependency of the readiness endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// requestLogger emits one structured line per request with a generated id.
func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqID := uuid.New().String()
		c.Header("X-Request-ID", reqID)

		c.Next()

		logger.Info().
			Str("request_id", reqID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}

// NewRouter wires public endpoints and token-protected APIs.
//
// Public:    /health /ready /register /login, event reads, QR, attendees
// Protected: /protected, POST /events, POST /checkin
func NewRouter(cfg config.Config, st handlers.Store, db Pinger, logger zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(logger.With().Str("component", "http").Logger()))

	// Liveness: confirms the process is running.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Readiness: confirms the DB dependency is reachable.
	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL, "checkin-service")

	public := r.Group("/")
	protected := r.Group("/")
	protected.Use(auth.Middleware(tokens))

	handlers.RegisterAuthRoutes(public, protected, st, tokens, cfg.UniqueEmail)
	handlers.RegisterEventRoutes(public, protected, st)
	handlers.RegisterCheckinRoutes(public, protected, st, cfg.BaseURL)

	return r
}
