package config

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Vierra-Digital/Vierra-Website-sub000/migrations"
	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

type Database struct {
	*sqlx.DB
}

// NewDatabaseConnection connects and pings, retrying once per second up to retries times
func NewDatabaseConnection(dbDriver string, dbConnectionStr string, retries int) (*Database, error) {
	var database *sqlx.DB

	err := backoff.RetryNotify(
		func() error {
			var connectErr error
			database, connectErr = sqlx.Connect(dbDriver, dbConnectionStr)
			return connectErr
		},
		backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Second), uint64(retries)),
		func(retryErr error, t time.Duration) {
			slog.Warn("database not ready, retrying", "in", t, "error", retryErr)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := database.Ping(); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	slog.Info("database connected")
	return &Database{
		database,
	}, nil
}

// Migrate applies the embedded goose migrations
func (db *Database) Migrate(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db.DB.DB, "."); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}
	return nil
}

func (db *Database) Close() error {
	err := db.DB.Close()
	if err != nil {
		return fmt.Errorf("database close failed: %w", err)
	}

	return nil
}
