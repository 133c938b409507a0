package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/trakzone/checkin-service/internal/config"
	"github.com/trakzone/checkin-service/internal/httpserver"
	"github.com/trakzone/checkin-service/internal/store"
)

// main boots the service: config → DB → schema → HTTP server.
func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Load runtime config from environment (DB_URL, JWT_SECRET, ...).
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config load failed")
	}

	// Connect to durable storage (Postgres) using a connection pool.
	db, err := store.NewPostgresStore(cfg.DBURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("db connect failed")
	}
	defer db.Close()

	// Ensure required tables/constraints exist so `docker compose up --build`
	// is enough.
	if err := db.EnsureSchema(); err != nil {
		logger.Fatal().Err(err).Msg("schema bootstrap failed")
	}

	router := httpserver.NewRouter(cfg, db, db, logger)

	logger.Info().Str("port", cfg.Port).Msg("server started")
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
