package service

import (
	"context"
	"log/slog"
	"time"

	appErrors "github.com/unclebandit/campaign-dashboard/internal/errors"
	"github.com/unclebandit/campaign-dashboard/internal/model"
	"github.com/unclebandit/campaign-dashboard/internal/queue"
)

// DefaultPollInterval is the refresh rate while a campaign is sending.
const DefaultPollInterval = 3 * time.Second

// CampaignGetter is the one call a watcher needs.
type CampaignGetter interface {
	Get(ctx context.Context, id string) (*model.Campaign, error)
}

// CampaignWatcher polls a campaign while it is sending and publishes every
// status change on queue.TopicCampaignStatus.
type CampaignWatcher struct {
	Campaigns CampaignGetter
	Queue     queue.Queue
	Interval  time.Duration
	Logger    *slog.Logger
}

func NewCampaignWatcher(campaigns CampaignGetter, q queue.Queue, interval time.Duration) *CampaignWatcher {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &CampaignWatcher{
		Campaigns: campaigns,
		Queue:     q,
		Interval:  interval,
		Logger:    slog.Default(),
	}
}

// Watch fetches the campaign, then keeps refetching every Interval while its
// status is sending. onUpdate (optional) sees every fetched state. It returns
// the last state seen once the campaign stops sending, or ctx's error.
// Failed polls are logged and retried on the next tick, except 401s.
func (w *CampaignWatcher) Watch(ctx context.Context, id string, onUpdate func(*model.Campaign)) (*model.Campaign, error) {
	current, err := w.Campaigns.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if onUpdate != nil {
		onUpdate(current)
	}
	if !current.IsSending() {
		return current, nil
	}

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return current, ctx.Err()
		case <-ticker.C:
		}

		next, err := w.Campaigns.Get(ctx, id)
		if err != nil {
			if appErrors.IsUnauthorized(err) || ctx.Err() != nil {
				return current, err
			}
			w.Logger.Warn("Campaign poll failed", "campaign_id", id, "error", err)
			continue
		}
		if onUpdate != nil {
			onUpdate(next)
		}
		if next.Status != current.Status {
			w.publish(current.Status, next)
		}
		current = next
		if !current.IsSending() {
			return current, nil
		}
	}
}

func (w *CampaignWatcher) publish(from string, c *model.Campaign) {
	if w.Queue == nil {
		return
	}
	ev := model.StatusEvent{
		CampaignID: c.ID,
		Name:       c.Name,
		From:       from,
		To:         c.Status,
		Stats:      c.Stats,
		ObservedAt: time.Now().UTC(),
	}
	if err := w.Queue.Publish(queue.TopicCampaignStatus, ev); err != nil {
		w.Logger.Debug("Status event not delivered", "campaign_id", c.ID, "error", err)
	}
}
