package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/unclebandit/campaign-dashboard/internal/session"
)

// SessionRepository stores dashboard token caches in Postgres, one row per
// browser session.
type SessionRepository struct {
	DB *sql.DB
}

func (r *SessionRepository) Load(ctx context.Context) (session.Tokens, error) {
	id := session.IDFromContext(ctx)
	if id == "" {
		return session.Tokens{}, nil
	}

	query := `
        SELECT access_token, refresh_token, token_expiry
        FROM dashboard_sessions WHERE session_id=$1
    `
	var t session.Tokens
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&t.AccessToken, &t.RefreshToken, &t.Expiry)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return session.Tokens{}, nil
		}
		return session.Tokens{}, fmt.Errorf("load session %s: %w", id, err)
	}
	return t, nil
}

func (r *SessionRepository) Save(ctx context.Context, t session.Tokens) error {
	id := session.IDFromContext(ctx)
	if id == "" {
		return errors.New("save session: missing session id")
	}

	query := `
        INSERT INTO dashboard_sessions (session_id, access_token, refresh_token, token_expiry, updated_at)
        VALUES ($1, $2, $3, $4, NOW())
        ON CONFLICT (session_id) DO UPDATE
        SET access_token=EXCLUDED.access_token,
            refresh_token=EXCLUDED.refresh_token,
            token_expiry=EXCLUDED.token_expiry,
            updated_at=NOW()
    `
	if _, err := r.DB.ExecContext(ctx, query, id, t.AccessToken, t.RefreshToken, t.Expiry); err != nil {
		return fmt.Errorf("save session %s: %w", id, err)
	}
	return nil
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	id := session.IDFromContext(ctx)
	if id == "" {
		return nil
	}
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM dashboard_sessions WHERE session_id=$1`, id); err != nil {
		return fmt.Errorf("clear session %s: %w", id, err)
	}
	return nil
}

// PurgeStale removes sessions not touched since the given age, e.g. "720 hours".
func (r *SessionRepository) PurgeStale(ctx context.Context, olderThan string) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		`DELETE FROM dashboard_sessions WHERE updated_at < NOW() - $1::interval`, olderThan)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

var _ session.Store = (*SessionRepository)(nil)
