package app

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stpnv0/CourtBooker/internal/config"
	"github.com/stpnv0/CourtBooker/migrations"
	"github.com/wb-go/wbf/logger"
)

// Migrate applies a goose command (up, down or status) to the configured
// database.
func Migrate(ctx context.Context, cfg *config.Config, command string) error {
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	return migrate(ctx, cfg, log, command)
}

func migrate(ctx context.Context, cfg *config.Config, log logger.Logger, command string) error {
	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err = goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	switch command {
	case "up":
		err = goose.UpContext(ctx, db, ".")
	case "down":
		err = goose.DownContext(ctx, db, ".")
	case "status":
		err = goose.StatusContext(ctx, db, ".")
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
	if err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}

	log.Info("migrations finished", logger.String("command", command))
	return nil
}
