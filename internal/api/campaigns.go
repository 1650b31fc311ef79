package api

import (
	"context"
	"net/http"
	"time"

	"github.com/unclebandit/campaign-dashboard/internal/model"
)

type CampaignsAPI struct{ c *Client }

type CampaignFilter struct {
	Status string
	Search string
}

type EmailQuery struct {
	Status string
	Page   int
	Limit  int
}

func (a *CampaignsAPI) List(ctx context.Context, f CampaignFilter) ([]model.Campaign, error) {
	var out []model.Campaign
	err := a.c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/campaigns",
		params: query("status", f.Status, "search", f.Search),
	}, &out)
	return out, err
}

func (a *CampaignsAPI) Get(ctx context.Context, id string) (*model.Campaign, error) {
	var out model.Campaign
	if err := a.c.do(ctx, request{method: http.MethodGet, path: path("/api/campaigns/%s", id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CampaignsAPI) Create(ctx context.Context, in model.CampaignInput) (*model.Campaign, error) {
	var out model.Campaign
	if err := a.c.do(ctx, request{method: http.MethodPost, path: "/api/campaigns", body: in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CampaignsAPI) Update(ctx context.Context, id string, in model.CampaignInput) (*model.Campaign, error) {
	var out model.Campaign
	if err := a.c.do(ctx, request{method: http.MethodPatch, path: path("/api/campaigns/%s", id), body: in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CampaignsAPI) Delete(ctx context.Context, id string) error {
	return a.c.do(ctx, request{method: http.MethodDelete, path: path("/api/campaigns/%s", id)}, nil)
}

// Schedule sends scheduledAt as RFC 3339 UTC.
func (a *CampaignsAPI) Schedule(ctx context.Context, id string, at time.Time, timezone string) (*model.Campaign, error) {
	var out model.Campaign
	err := a.c.do(ctx, request{
		method: http.MethodPost,
		path:   path("/api/campaigns/%s/schedule", id),
		body:   model.ScheduleRequest{ScheduledAt: at.UTC().Format(time.RFC3339), Timezone: timezone},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CampaignsAPI) Start(ctx context.Context, id string) error {
	return a.action(ctx, id, "start")
}

func (a *CampaignsAPI) Pause(ctx context.Context, id string) error {
	return a.action(ctx, id, "pause")
}

func (a *CampaignsAPI) Cancel(ctx context.Context, id string) error {
	return a.action(ctx, id, "cancel")
}

func (a *CampaignsAPI) Duplicate(ctx context.Context, id string) (*model.Campaign, error) {
	var out model.Campaign
	if err := a.c.do(ctx, request{method: http.MethodPost, path: path("/api/campaigns/%s/duplicate", id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CampaignsAPI) Emails(ctx context.Context, id string, q EmailQuery) (*model.Page[model.CampaignEmail], error) {
	var out model.Page[model.CampaignEmail]
	err := a.c.do(ctx, request{
		method: http.MethodGet,
		path:   path("/api/campaigns/%s/emails", id),
		params: query("status", q.Status, "page", itoa(q.Page), "limit", itoa(q.Limit)),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *CampaignsAPI) action(ctx context.Context, id, verb string) error {
	return a.c.do(ctx, request{method: http.MethodPost, path: path("/api/campaigns/%s/", id) + verb}, nil)
}
