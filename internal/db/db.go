// internal/db/db.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS dashboard_sessions (
    session_id    TEXT PRIMARY KEY,
    access_token  TEXT NOT NULL DEFAULT '',
    refresh_token TEXT NOT NULL DEFAULT '',
    token_expiry  BIGINT NOT NULL DEFAULT 0,
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS campaign_status_events (
    id           BIGSERIAL PRIMARY KEY,
    campaign_id  TEXT NOT NULL,
    name         TEXT NOT NULL DEFAULT '',
    from_status  TEXT NOT NULL,
    to_status    TEXT NOT NULL,
    sent         INT NOT NULL DEFAULT 0,
    total        INT NOT NULL DEFAULT 0,
    observed_at  TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_campaign_status_events_campaign
    ON campaign_status_events (campaign_id, observed_at DESC)`

// Open connects to Postgres, pings it and ensures the session and status
// event tables exist.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	conn.SetMaxOpenConns(10)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := conn.ExecContext(ctx, schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	slog.Info("Connected to database")
	return conn, nil
}
