package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/openci/openci-backend/config"
	"github.com/openci/openci-backend/internal/storage/postgres"
)

// OpenDB connects to the configured database and, when enabled, applies
// the schema before any request is served.
func OpenDB(ctx context.Context, cfg *config.DatabaseConfig, logger zerolog.Logger) (*sql.DB, error) {
	db, err := postgres.NewConnection(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	if cfg.AutoMigrate {
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("db schema: %w", err)
		}
		logger.Info().Msg("database schema ensured")
	}

	logger.Info().
		Str("driver", cfg.Driver).
		Str("host", cfg.Host).
		Str("database", cfg.Name).
		Msg("database connected")
	return db, nil
}
