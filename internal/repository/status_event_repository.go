package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/unclebandit/campaign-dashboard/internal/model"
)

// StatusEventRepository keeps the history of observed campaign status
// changes.
type StatusEventRepository struct {
	DB *sql.DB
}

func (r *StatusEventRepository) Insert(ctx context.Context, ev model.StatusEvent) error {
	query := `
        INSERT INTO campaign_status_events (campaign_id, name, from_status, to_status, sent, total, observed_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	sent, total := ev.Stats.Progress()
	_, err := r.DB.ExecContext(ctx, query, ev.CampaignID, ev.Name, ev.From, ev.To, sent, total, ev.ObservedAt)
	if err != nil {
		return fmt.Errorf("insert status event for %s: %w", ev.CampaignID, err)
	}
	return nil
}

// History returns a campaign's status changes, newest first.
func (r *StatusEventRepository) History(ctx context.Context, campaignID string, limit int) ([]model.StatusEvent, error) {
	query := `
        SELECT campaign_id, name, from_status, to_status, sent, total, observed_at
        FROM campaign_status_events
        WHERE campaign_id=$1
        ORDER BY observed_at DESC
        LIMIT $2
    `
	rows, err := r.DB.QueryContext(ctx, query, campaignID, limit)
	if err != nil {
		return nil, fmt.Errorf("query status history for %s: %w", campaignID, err)
	}
	defer rows.Close()

	var events []model.StatusEvent
	for rows.Next() {
		var ev model.StatusEvent
		if err := rows.Scan(&ev.CampaignID, &ev.Name, &ev.From, &ev.To, &ev.Stats.Sent, &ev.Stats.Total, &ev.ObservedAt); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
